//go:generate mockery --name DashboardService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_english_tutor/internal/model"
)

// DashboardService はダッシュボード・マイページ・レベル選択の表示データを返す。
// 永続化は無いので中身は固定値。
type DashboardService interface {
	GetDashboard(ctx context.Context) *model.DashboardResponse
	GetProfile(ctx context.Context) *model.ProfileResponse
	ListLevels(ctx context.Context) []model.Level
}

type dashboardService struct{}

func NewDashboardService() DashboardService {
	return &dashboardService{}
}

// LessonAction は進捗からボタンの種類を決める
func LessonAction(progress int) string {
	switch {
	case progress <= 0:
		return "start"
	case progress >= 100:
		return "review"
	default:
		return "continue"
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) *model.DashboardResponse {
	lessons := []model.Lesson{
		{ID: 1, Title: "Basic Greetings", Progress: 100},
		{ID: 2, Title: "Common Words", Progress: 75},
		{ID: 3, Title: "Family Members", Progress: 50},
		{ID: 4, Title: "Food & Drinks", Progress: 25},
		{ID: 5, Title: "Colors & Numbers", Progress: 0},
		{ID: 6, Title: "Daily Activities", Progress: 0},
	}
	for i := range lessons {
		lessons[i].Difficulty = model.DifficultyBeginner
		lessons[i].Action = LessonAction(lessons[i].Progress)
	}

	return &model.DashboardResponse{
		Stats: model.StudyStats{
			TotalLessons:     12,
			CompletedLessons: 3,
			Streak:           2,
			TotalHours:       4.5,
		},
		Lessons: lessons,
	}
}

func (s *dashboardService) GetProfile(ctx context.Context) *model.ProfileResponse {
	return &model.ProfileResponse{
		Profile: model.Profile{
			Name:             "English Learner",
			Email:            "learner@example.com",
			Level:            "Beginner",
			JoinDate:         "October 2024",
			TotalStudyTime:   "4.5 hours",
			CompletedLessons: 3,
			Streak:           2,
			Badges:           []string{"🌟 First Step", "📚 Word Master"},
		},
		Achievements: []model.Achievement{
			{ID: 1, Icon: "🎯", Title: "First Lesson", Description: "Complete your first lesson", Unlocked: true},
			{ID: 2, Icon: "📖", Title: "Vocabulary Pro", Description: "Learn 10 new words", Unlocked: true},
			{ID: 3, Icon: "🔥", Title: "2-Day Streak", Description: "Study for 2 days in a row", Unlocked: true},
			{ID: 4, Icon: "⭐", Title: "5-Day Streak", Description: "Study for 5 days in a row"},
			{ID: 5, Icon: "💎", Title: "Perfect Score", Description: "Get 100% on a quiz"},
			{ID: 6, Icon: "🏆", Title: "Dedicated Learner", Description: "Complete 10 lessons"},
		},
		RecentActivity: []model.Activity{
			{ID: 1, Activity: `Completed "Basic Greetings"`, Time: "2 hours ago", Icon: "✅"},
			{ID: 2, Activity: "Scored 80% on Vocabulary Quiz", Time: "1 day ago", Icon: "📝"},
			{ID: 3, Activity: "Learned 5 new words", Time: "2 days ago", Icon: "📖"},
			{ID: 4, Activity: `Started "Common Words" lesson`, Time: "2 days ago", Icon: "▶️"},
		},
	}
}

func (s *dashboardService) ListLevels(ctx context.Context) []model.Level {
	return []model.Level{
		{
			ID:          "beginner",
			Name:        "초급 (Beginner)",
			Description: "영어를 처음 시작하는 분들을 위한 레벨",
			Icon:        "🌱",
			Focus:       "기본 단어, 간단한 문장, 일상 회화",
		},
		{
			ID:          "intermediate",
			Name:        "중급 (Intermediate)",
			Description: "기본 회화가 가능한 분들을 위한 레벨",
			Icon:        "📚",
			Focus:       "다양한 표현, 복잡한 문장, 비즈니스 영어",
		},
		{
			ID:          "advanced",
			Name:        "고급 (Advanced)",
			Description: "유창한 영어 실력을 원하는 분들을 위한 레벨",
			Icon:        "🎓",
			Focus:       "고급 어휘, 원어민 수준 표현, 전문 영어",
		},
	}
}

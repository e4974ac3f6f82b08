// internal/model/dashboard.go
package model

// 以下はダッシュボード・マイページの表示用データ。すべて固定値で、計算はしない。

type StudyStats struct {
	TotalLessons     int     `json:"total_lessons"`
	CompletedLessons int     `json:"completed_lessons"`
	Streak           int     `json:"streak"`
	TotalHours       float64 `json:"total_hours"`
}

type Lesson struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Progress   int        `json:"progress"`
	Difficulty Difficulty `json:"difficulty"`
	Action     string     `json:"action"` // start | continue | review
}

type DashboardResponse struct {
	Stats   StudyStats `json:"stats"`
	Lessons []Lesson   `json:"lessons"`
}

type Profile struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Level            string   `json:"level"`
	JoinDate         string   `json:"join_date"`
	TotalStudyTime   string   `json:"total_study_time"`
	CompletedLessons int      `json:"completed_lessons"`
	Streak           int      `json:"streak"`
	Badges           []string `json:"badges"`
}

type Achievement struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type Activity struct {
	ID       int    `json:"id"`
	Activity string `json:"activity"`
	Time     string `json:"time"`
	Icon     string `json:"icon"`
}

type ProfileResponse struct {
	Profile        Profile       `json:"profile"`
	Achievements   []Achievement `json:"achievements"`
	RecentActivity []Activity    `json:"recent_activity"`
}

type Level struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Focus       string `json:"focus"`
}

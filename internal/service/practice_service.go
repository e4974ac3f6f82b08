//go:generate mockery --name PracticeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go_5_english_tutor/internal/model"
)

const practiceGreeting = "Hello! I'm your English conversation partner. I'm here to help you practice English through natural conversations. What would you like to talk about today?"

var practiceReplies = []string{
	"That's interesting! Can you tell me more about that?",
	"I see! How do you feel about that situation?",
	"That sounds great! What made you choose that?",
	"I understand. What would you do differently next time?",
	"That's a good point! Have you experienced something similar before?",
	"Interesting perspective! How did that make you feel?",
	"I see what you mean. What do you think about that?",
	"That's wonderful! Can you describe it in more detail?",
	"I get it! What was the most challenging part?",
	"That's amazing! How did you learn about that?",
}

var practiceTopics = []string{
	"Tell me about your hobbies",
	"What's your favorite food?",
	"Describe your dream vacation",
	"What's your job like?",
	"Tell me about your family",
}

var practiceTips = []string{
	"Try to use complete sentences",
	"Don't worry about making mistakes - practice makes perfect!",
	"Ask questions to keep the conversation flowing",
	"Use new vocabulary words you've learned",
}

// PracticeService は台本どおりに返す会話練習の相手。言語モデルは使わない。
type PracticeService interface {
	Intro(ctx context.Context) *model.PracticeIntroResponse
	Reply(ctx context.Context, req *model.PracticeMessageRequest) (*model.PracticeReply, error)
}

type practiceService struct {
	mu  sync.Mutex // rand.Rand はゴルーチン安全ではない
	rnd *rand.Rand
	now func() time.Time
}

// NewPracticeService の rnd が nil なら時刻で初期化する
func NewPracticeService(rnd *rand.Rand) PracticeService {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &practiceService{rnd: rnd, now: time.Now}
}

func (s *practiceService) Intro(ctx context.Context) *model.PracticeIntroResponse {
	return &model.PracticeIntroResponse{
		Greeting:        practiceGreeting,
		SuggestedTopics: append([]string(nil), practiceTopics...),
		Tips:            append([]string(nil), practiceTips...),
	}
}

func (s *practiceService) Reply(ctx context.Context, req *model.PracticeMessageRequest) (*model.PracticeReply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Message is required.", "message", model.ErrInvalidInput)
	}

	s.mu.Lock()
	text := practiceReplies[s.rnd.IntN(len(practiceReplies))]
	s.mu.Unlock()

	return &model.PracticeReply{
		Text:      text,
		Sender:    "ai",
		Timestamp: s.now().UTC(),
	}, nil
}

// internal/model/practice.go
package model

import "time"

// PracticeIntroResponse は会話練習の初期表示用
type PracticeIntroResponse struct {
	Greeting        string   `json:"greeting"`
	SuggestedTopics []string `json:"suggested_topics"`
	Tips            []string `json:"tips"`
}

// PracticeMessageRequest は会話練習の送信リクエスト
type PracticeMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// PracticeReply は会話相手の返答
type PracticeReply struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

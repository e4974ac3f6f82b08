// internal/model/tutor.go
package model

// ChatRole は会話履歴の発言者
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage は会話履歴の1件
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// TutorChatRequest はチューターへの送信リクエスト。
// フロントエンドとの互換のため JSON キーは camelCase。
type TutorChatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

// TutorChatResponse は成功時の応答。応答テキストが空でも message キーは必ず出す。
type TutorChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TutorChatErrorResponse は失敗時の応答
type TutorChatErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// TutorIntroResponse はチャット画面の初期表示用
type TutorIntroResponse struct {
	Greeting        string   `json:"greeting"`
	SuggestedTopics []string `json:"suggested_topics"`
	Configured      bool     `json:"configured"`
}

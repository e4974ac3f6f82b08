// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "english-tutor"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultTutorProvider  = "anthropic"
	DefaultTutorModel     = "claude-3-haiku-20240307"
	DefaultTutorMaxTokens = 1000

	DefaultQuizMaxSessions    = 10000
	DefaultQuizSessionIdleTTL = 2 * time.Hour
)

// LearnerIDHeader は認証無効時に学習者を識別するヘッダー
const LearnerIDHeader = "X-Learner-ID"

// PlaceholderAPIKey はサンプル .env に入っている値。未設定と同じ扱いにする
const PlaceholderAPIKey = "placeholder-key"

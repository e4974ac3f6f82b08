// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// BedrockConfig は provider が "bedrock" のときだけ使われる
type BedrockConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type TutorConfig struct {
	Provider  string        `mapstructure:"provider"` // anthropic | openai | bedrock
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Bedrock   BedrockConfig `mapstructure:"bedrock"`
}

// WordBankEntryConfig は config.yaml に直接書かれた単語1件
type WordBankEntryConfig struct {
	ID            int    `mapstructure:"id"`
	Term          string `mapstructure:"term"`
	Meaning       string `mapstructure:"meaning"`
	KoreanMeaning string `mapstructure:"korean_meaning"`
	Pronunciation string `mapstructure:"pronunciation"`
	Example       string `mapstructure:"example"`
	KoreanExample string `mapstructure:"korean_example"`
	Difficulty    string `mapstructure:"difficulty"`
}

// QuizConfig は学習者ごとのクイズセッションをメモリに何件、どれだけ持つか
type QuizConfig struct {
	MaxSessions    int           `mapstructure:"max_sessions"`
	SessionIdleTTL time.Duration `mapstructure:"session_idle_ttl"`
}

type WordBankConfig struct {
	XLSXPath  string                `mapstructure:"xlsx_path"`
	SheetName string                `mapstructure:"sheet_name"` // 空ならアクティブシート
	Entries   []WordBankEntryConfig `mapstructure:"entries"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Tutor    TutorConfig    `mapstructure:"tutor"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	WordBank WordBankConfig `mapstructure:"word_bank"`
}

var Cfg Config

// LoadConfig は .env → config.yaml → 環境変数 の順に読み込み、Cfg に反映します。
func LoadConfig(path string) error {
	// .env は無くてもよい
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("auth.enabled", "AUTH_ENABLED")
	_ = v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	_ = v.BindEnv("tutor.api_key", "ANTHROPIC_API_KEY", "APP_TUTOR_API_KEY")
	_ = v.BindEnv("word_bank.xlsx_path", "WORD_BANK_XLSX_PATH")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Tutor Provider: %s (model: %s)", Cfg.Tutor.Provider, Cfg.Tutor.Model)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れる
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 5 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		// LLM の応答待ちがあるので長めにとる
		cfg.Server.WriteTimeout = 90 * time.Second
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 120 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", LearnerIDHeader}
	}
	if cfg.Tutor.Provider == "" {
		cfg.Tutor.Provider = DefaultTutorProvider
	}
	if cfg.Tutor.Model == "" {
		cfg.Tutor.Model = defaultModelFor(cfg.Tutor.Provider)
	}
	if cfg.Tutor.BaseURL == "" {
		switch cfg.Tutor.Provider {
		case "openai":
			cfg.Tutor.BaseURL = "https://api.openai.com/v1"
		default:
			cfg.Tutor.BaseURL = "https://api.anthropic.com/v1"
		}
	}
	if cfg.Tutor.MaxTokens <= 0 {
		cfg.Tutor.MaxTokens = DefaultTutorMaxTokens
	}
	if cfg.Tutor.Timeout <= 0 {
		cfg.Tutor.Timeout = 60 * time.Second
	}
	if cfg.Tutor.Bedrock.Region == "" {
		cfg.Tutor.Bedrock.Region = "us-east-1"
	}
	if cfg.Quiz.MaxSessions <= 0 {
		cfg.Quiz.MaxSessions = DefaultQuizMaxSessions
	}
	if cfg.Quiz.SessionIdleTTL <= 0 {
		cfg.Quiz.SessionIdleTTL = DefaultQuizSessionIdleTTL
	}
}

func defaultModelFor(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o-mini"
	case "bedrock":
		return "anthropic.claude-3-haiku-20240307-v1:0"
	default:
		return DefaultTutorModel
	}
}

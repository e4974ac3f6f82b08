// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/handlers"
	"go_5_english_tutor/internal/metrics"
	"go_5_english_tutor/internal/quiz"
	"go_5_english_tutor/internal/repository"
	"go_5_english_tutor/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, os.Getenv("APP_ENV"), tempLogger)
	log.Println("Log Config Loaded...")
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 単語帳は起動時に一度だけ読み込む。不正なら起動しない
	entries, err := repository.LoadWordBank(config.Cfg.WordBank, logger)
	if err != nil {
		slog.Error("Error loading word bank", slog.Any("error", err))
		os.Exit(1)
	}
	wordRepo, err := repository.NewStaticWordBankRepository(entries)
	if err != nil {
		slog.Error("Error initializing word bank repository", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	m := metrics.New()
	completer := service.NewCompleter(&config.Cfg, logger)

	vocabularyService := service.NewVocabularyService(wordRepo, logger)
	quizService := service.NewQuizService(wordRepo, quiz.NewGenerator(nil), config.Cfg.Quiz, m, logger)
	tutorService := service.NewTutorService(completer, m, logger)
	practiceService := service.NewPracticeService(nil)
	dashboardService := service.NewDashboardService()

	router := handlers.NewRouter(&config.Cfg, handlers.Handlers{
		Vocabulary: handlers.NewVocabularyHandler(vocabularyService, logger),
		Quiz:       handlers.NewQuizHandler(quizService, logger),
		Tutor:      handlers.NewTutorHandler(tutorService, logger),
		Practice:   handlers.NewPracticeHandler(practiceService, logger),
		Dashboard:  handlers.NewDashboardHandler(dashboardService, logger),
		Health:     handlers.NewHealthHandler(wordRepo, tutorService.Configured(), logger),
	}, m, logger)

	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
	} else {
		slog.Warn("Authentication is disabled, learners are identified by header", slog.String("header", config.LearnerIDHeader))
	}

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  config.Cfg.Server.ReadTimeout,
		WriteTimeout: config.Cfg.Server.WriteTimeout,
		IdleTimeout:  config.Cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port), slog.Int("word_bank_size", wordRepo.Count()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のレベルと APP_ENV から slog ロガーを作る
func newLogger(level, appEnv string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo) // 不明な場合はInfo
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// cmd/wordbank/main.go
// 単語帳の Excel ファイルを作ったり検証したりするツール。
//
//	go run ./cmd/wordbank export -o words.xlsx   設定中の単語帳を書き出す
//	go run ./cmd/wordbank check -f words.xlsx    ファイルを読み込んで検証する
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/repository"

	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.RFC3339}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "export":
		err = runExport(os.Args[2:], logger)
	case "check":
		err = runCheck(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("wordbank failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordbank <export|check> [flags]")
}

// runExport は config.yaml で選ばれる単語帳 (無ければ組み込みの10語) を xlsx に書き出す
func runExport(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "words.xlsx", "output file")
	sheet := fs.String("sheet", "Sheet1", "sheet name")
	configDir := fs.String("config", "configs", "config directory")
	_ = fs.Parse(args)

	if err := config.LoadConfig(*configDir); err != nil {
		return err
	}
	entries, err := repository.LoadWordBank(config.Cfg.WordBank, logger)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := repository.WriteWordBankXLSX(f, *sheet, entries); err != nil {
		return err
	}
	logger.Info("Word bank exported", slog.String("file", *out), slog.Int("entries", len(entries)))
	return nil
}

// runCheck はファイルをサーバー起動時と同じ規則で検証する
func runCheck(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("f", "", "xlsx file to check")
	sheet := fs.String("sheet", "", "sheet name (default: active sheet)")
	_ = fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("-f is required")
	}

	entries, err := repository.LoadWordBankFromXLSX(*file, *sheet)
	if err != nil {
		return err
	}
	if err := repository.ValidateWordBank(entries); err != nil {
		return err
	}
	logger.Info("Word bank is valid", slog.String("file", *file), slog.Int("entries", len(entries)))
	return nil
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sunr3d/fshare/internal/config"
	"github.com/sunr3d/fshare/internal/entrypoint"
	"github.com/sunr3d/fshare/internal/logger"
)

func main() {
	var confFile string
	if len(os.Args) > 1 {
		confFile = os.Args[1]
	}

	cfg, err := config.Load(confFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка инициализации логгера: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("конфигурация загружена",
		zap.String("address", cfg.Address()),
		zap.String("upload_dir", cfg.UploadDir),
		zap.Int64("max_upload_size", cfg.MaxUploadSize),
		zap.String("auth_strategy", cfg.AuthStrategy),
	)

	if err := entrypoint.Run(cfg, log); err != nil {
		log.Error("сервис завершился с ошибкой", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

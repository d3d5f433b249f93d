package main

import (
	"os"

	"github.com/tempizhere/urlmap/internal/app"
	"github.com/tempizhere/urlmap/internal/config"
	"github.com/tempizhere/urlmap/internal/generator"
	"github.com/tempizhere/urlmap/internal/log"
	"github.com/tempizhere/urlmap/internal/repository"
	"github.com/tempizhere/urlmap/internal/service"
	"go.uber.org/zap"
)

func main() {
	// Получаем конфигурацию
	cfg := config.NewConfig()
	logger := log.NewLogger(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	// Собираем зависимости
	repo := repository.NewMemoryRepository(cfg.HashSize)
	gen := generator.NewDefault()
	svc := service.NewService(repo, gen, logger, cfg.MaxURLLen, cfg.MaxRetries)
	cli := app.NewApp(svc, os.Stdin, os.Stdout, logger, cfg.MaxURLLen)

	logger.Info("запуск",
		zap.Int("hash_size", cfg.HashSize),
		zap.Int("max_url_len", cfg.MaxURLLen),
		zap.Int("max_retries", cfg.MaxRetries))

	if err := cli.Run(); err != nil {
		logger.Error("ошибка чтения ввода", zap.Error(err))
	}
}

package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/tempizhere/urlmap/internal/repository"
	"github.com/tempizhere/urlmap/internal/service"
)

// Config содержит настройки приложения. Переменные окружения имеют приоритет
// над флагами командной строки.
type Config struct {
	MaxURLLen  int    `env:"URLMAP_MAX_URL_LEN"`
	HashSize   int    `env:"URLMAP_HASH_SIZE"`
	MaxRetries int    `env:"URLMAP_MAX_RETRIES"`
	LogLevel   string `env:"URLMAP_LOG_LEVEL"`
}

// NewConfig создаёт Config: регистрирует флаги командной строки, парсит их и
// накладывает поверх значения переменных окружения.
func NewConfig() *Config {
	cfg := &Config{}

	flag.IntVar(&cfg.MaxURLLen, "u", service.DefaultMaxURLLen, "maximum accepted URL length")
	flag.IntVar(&cfg.HashSize, "s", repository.DefaultHashSize, "bucket count of each hash index")
	flag.IntVar(&cfg.MaxRetries, "r", service.DefaultMaxRetries, "candidate limit per shorten call")
	flag.StringVar(&cfg.LogLevel, "l", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Ошибка загрузки конфигурации из env: %v\n", err)
	}

	// Валидация значений
	cfg.MaxURLLen = validatePositive(cfg.MaxURLLen, service.DefaultMaxURLLen)
	cfg.HashSize = validatePositive(cfg.HashSize, repository.DefaultHashSize)
	cfg.MaxRetries = validatePositive(cfg.MaxRetries, service.DefaultMaxRetries)
	cfg.LogLevel = validateLogLevel(cfg.LogLevel)

	return cfg
}

// validatePositive возвращает значение, если оно положительно, иначе fallback.
func validatePositive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// validateLogLevel приводит неизвестный уровень логирования к "info".
func validateLogLevel(level string) string {
	switch level {
	case "debug", "info", "warn", "error":
		return level
	}
	return "info"
}

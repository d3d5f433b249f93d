package service

import (
	"errors"
	"iter"

	"github.com/tempizhere/urlmap/internal/generator"
	"github.com/tempizhere/urlmap/internal/models"
	"github.com/tempizhere/urlmap/internal/repository"
	"go.uber.org/zap"
)

var (
	// ErrEmptyURL возвращается при попытке сократить пустой URL
	ErrEmptyURL = errors.New("empty URL")
	// ErrURLTooLong возвращается, если URL длиннее настроенного предела
	ErrURLTooLong = errors.New("URL is too long")
	// ErrNotFound возвращается, если короткий код отсутствует в хранилище
	ErrNotFound = errors.New("short code not found")
	// ErrSpaceExhausted возвращается, если за отведённое число попыток не
	// нашлось свободного кода
	ErrSpaceExhausted = errors.New("short code space exhausted")
)

// DefaultMaxURLLen задаёт предел длины длинного URL по умолчанию.
const DefaultMaxURLLen = 1024

// DefaultMaxRetries ограничивает число кандидатов на один вызов Shorten.
// Бесконечный перебор при исчерпании пространства кодов недопустим.
const DefaultMaxRetries = 10000

// Service реализует операции над отображением короткий код <-> длинный URL:
// идемпотентное сокращение, разрешение, удаление и перечисление. Является
// граничным слоем: проверяет длину входного URL и усекает короткий код до
// фиксированной длины до обращения к хранилищу.
type Service struct {
	repo       repository.Repository
	gen        *generator.Generator
	logger     *zap.Logger
	maxURLLen  int
	maxRetries int
}

// NewService создаёт новый экземпляр Service. Для maxURLLen и maxRetries,
// не больших нуля, берутся значения по умолчанию; nil-логгер заменяется
// заглушкой.
func NewService(repo repository.Repository, gen *generator.Generator, logger *zap.Logger, maxURLLen, maxRetries int) *Service {
	if maxURLLen <= 0 {
		maxURLLen = DefaultMaxURLLen
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:       repo,
		gen:        gen,
		logger:     logger,
		maxURLLen:  maxURLLen,
		maxRetries: maxRetries,
	}
}

// Shorten возвращает короткий код для длинного URL. Повторный вызов с тем же
// URL возвращает уже выданный код и не создаёт новую запись. Для нового URL
// перебираются кандидаты генератора, пока не найдётся свободный код; после
// maxRetries попыток возвращается ErrSpaceExhausted.
func (s *Service) Shorten(longURL string) (string, error) {
	if longURL == "" {
		return "", ErrEmptyURL
	}
	if len(longURL) > s.maxURLLen {
		return "", ErrURLTooLong
	}

	if rec, ok := s.repo.GetByURL(longURL); ok {
		return rec.ShortCode, nil
	}

	for i := 0; i < s.maxRetries; i++ {
		code := s.gen.Next()
		err := s.repo.Save(models.Record{ShortCode: code, LongURL: longURL})
		if err == nil {
			s.logger.Debug("выдан короткий код",
				zap.String("code", code),
				zap.Int("attempts", i+1))
			return code, nil
		}
		if errors.Is(err, repository.ErrCodeExists) {
			continue
		}
		return "", err
	}

	s.logger.Warn("не найден свободный короткий код",
		zap.Int("max_retries", s.maxRetries),
		zap.Int("records", s.repo.Len()))
	return "", ErrSpaceExhausted
}

// Resolve возвращает длинный URL по короткому коду. Код длиннее фиксированной
// ширины усекается; поиск выполняется только по точному совпадению.
func (s *Service) Resolve(code string) (string, error) {
	rec, ok := s.repo.GetByCode(truncateCode(code))
	if !ok {
		return "", ErrNotFound
	}
	return rec.LongURL, nil
}

// Delete удаляет запись по короткому коду из обоих индексов.
// Возвращает false, если код не найден.
func (s *Service) Delete(code string) bool {
	ok := s.repo.DeleteByCode(truncateCode(code))
	if ok {
		s.logger.Debug("запись удалена", zap.String("code", truncateCode(code)))
	}
	return ok
}

// DeleteByURL удаляет запись по длинному URL из обоих индексов.
// Возвращает false, если URL не найден.
func (s *Service) DeleteByURL(url string) bool {
	return s.repo.DeleteByURL(url)
}

// List перечисляет все пары (короткий код, длинный URL).
func (s *Service) List() iter.Seq2[string, string] {
	return s.repo.All()
}

// Stats возвращает диагностические счётчики хранилища.
func (s *Service) Stats() models.Stats {
	return s.repo.Stats()
}

// Clear очищает хранилище; используется при завершении работы.
func (s *Service) Clear() {
	s.repo.Clear()
}

// truncateCode усекает входную строку до фиксированной длины короткого кода.
func truncateCode(code string) string {
	if len(code) > generator.CodeLength {
		return code[:generator.CodeLength]
	}
	return code
}

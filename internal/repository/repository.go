package repository

import (
	"errors"
	"iter"

	"github.com/tempizhere/urlmap/internal/models"
)

// ErrURLExists возвращается при попытке сохранить длинный URL, который уже
// связан с другим коротким кодом.
var ErrURLExists = errors.New("URL already exists")

// ErrCodeExists возвращается при попытке сохранить запись с уже занятым
// коротким кодом.
var ErrCodeExists = errors.New("short code already exists")

// Repository определяет интерфейс двунаправленного хранилища записей:
// каждая запись доступна и по короткому коду, и по длинному URL
//
//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository
type Repository interface {
	// Save сохраняет запись в оба индекса либо возвращает ошибку занятости
	Save(rec models.Record) error
	// GetByCode возвращает запись по короткому коду и флаг существования
	GetByCode(code string) (models.Record, bool)
	// GetByURL возвращает запись по длинному URL и флаг существования
	GetByURL(url string) (models.Record, bool)
	// DeleteByCode удаляет запись по короткому коду из обоих индексов
	DeleteByCode(code string) bool
	// DeleteByURL удаляет запись по длинному URL из обоих индексов
	DeleteByURL(url string) bool
	// All перечисляет все записи в порядке обхода индекса коротких кодов
	All() iter.Seq2[string, string]
	// Stats возвращает заполненность корзин индексов и число записей
	Stats() models.Stats
	// Len возвращает количество живых записей
	Len() int
	// Clear очищает все данные в хранилище
	Clear()
}

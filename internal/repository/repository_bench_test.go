package repository

import (
	"strconv"
	"testing"

	"github.com/tempizhere/urlmap/internal/models"
)

// BenchmarkMemoryRepository_Save измеряет производительность вставки
func BenchmarkMemoryRepository_Save(b *testing.B) {
	repo := NewMemoryRepository(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := models.Record{
			ShortCode: "bch" + strconv.Itoa(i),
			LongURL:   "https://example.com/url/" + strconv.Itoa(i),
		}
		if err := repo.Save(rec); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMemoryRepository_GetByCode измеряет производительность поиска по коду
func BenchmarkMemoryRepository_GetByCode(b *testing.B) {
	repo := NewMemoryRepository(0)

	// Подготавливаем данные
	for i := 0; i < 1000; i++ {
		rec := models.Record{
			ShortCode: "bch" + strconv.Itoa(i),
			LongURL:   "https://example.com/url/" + strconv.Itoa(i),
		}
		if err := repo.Save(rec); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, exists := repo.GetByCode("bch" + strconv.Itoa(i%1000)); !exists {
			b.Fatal("record not found")
		}
	}
}

// BenchmarkMemoryRepository_GetByURL измеряет производительность поиска по URL
func BenchmarkMemoryRepository_GetByURL(b *testing.B) {
	repo := NewMemoryRepository(0)

	// Подготавливаем данные
	for i := 0; i < 1000; i++ {
		rec := models.Record{
			ShortCode: "bch" + strconv.Itoa(i),
			LongURL:   "https://example.com/url/" + strconv.Itoa(i),
		}
		if err := repo.Save(rec); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		url := "https://example.com/url/" + strconv.Itoa(i%1000)
		if _, exists := repo.GetByURL(url); !exists {
			b.Fatal("record not found")
		}
	}
}

// BenchmarkMemoryRepository_All измеряет производительность полного обхода
func BenchmarkMemoryRepository_All(b *testing.B) {
	repo := NewMemoryRepository(0)

	for i := 0; i < 1000; i++ {
		rec := models.Record{
			ShortCode: "bch" + strconv.Itoa(i),
			LongURL:   "https://example.com/url/" + strconv.Itoa(i),
		}
		if err := repo.Save(rec); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range repo.All() {
			n++
		}
		if n != 1000 {
			b.Fatal("unexpected record count")
		}
	}
}

// BenchmarkMemoryRepository_DeleteByCode измеряет производительность удаления
func BenchmarkMemoryRepository_DeleteByCode(b *testing.B) {
	repo := NewMemoryRepository(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		rec := models.Record{
			ShortCode: "bch" + strconv.Itoa(i),
			LongURL:   "https://example.com/url/" + strconv.Itoa(i),
		}
		if err := repo.Save(rec); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		if !repo.DeleteByCode(rec.ShortCode) {
			b.Fatal("record not found")
		}
	}
}

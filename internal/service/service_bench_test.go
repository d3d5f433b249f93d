package service

import (
	"strconv"
	"testing"

	"github.com/tempizhere/urlmap/internal/generator"
	"github.com/tempizhere/urlmap/internal/repository"
)

// BenchmarkService_Shorten измеряет производительность сокращения новых URL
func BenchmarkService_Shorten(b *testing.B) {
	repo := repository.NewMemoryRepository(0)
	svc := NewService(repo, generator.NewDefault(), nil, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		url := "https://example.com/bench/" + strconv.Itoa(i)
		if _, err := svc.Shorten(url); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkService_Shorten_Existing измеряет идемпотентный повторный вызов
func BenchmarkService_Shorten_Existing(b *testing.B) {
	repo := repository.NewMemoryRepository(0)
	svc := NewService(repo, generator.NewDefault(), nil, 0, 0)

	if _, err := svc.Shorten("https://example.com/hot"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Shorten("https://example.com/hot"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkService_Resolve измеряет производительность разрешения кода
func BenchmarkService_Resolve(b *testing.B) {
	repo := repository.NewMemoryRepository(0)
	svc := NewService(repo, generator.NewDefault(), nil, 0, 0)

	codes := make([]string, 1000)
	for i := range codes {
		code, err := svc.Shorten("https://example.com/bench/" + strconv.Itoa(i))
		if err != nil {
			b.Fatal(err)
		}
		codes[i] = code
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Resolve(codes[i%len(codes)]); err != nil {
			b.Fatal(err)
		}
	}
}

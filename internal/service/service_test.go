package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempizhere/urlmap/internal/generator"
	"github.com/tempizhere/urlmap/internal/models"
	"github.com/tempizhere/urlmap/internal/repository"
)

// newTestService собирает сервис поверх реального in-memory хранилища.
func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := repository.NewMemoryRepository(0)
	return NewService(repo, generator.NewDefault(), nil, 0, 0)
}

func TestService_Shorten_Idempotent(t *testing.T) {
	svc := newTestService(t)

	code1, err := svc.Shorten("https://example.com/page")
	require.NoError(t, err, "Shorten should not return error")

	code2, err := svc.Shorten("https://example.com/page")
	require.NoError(t, err, "Second Shorten should not return error")

	assert.Equal(t, code1, code2, "Same URL should always give the same code")
	assert.Equal(t, 1, svc.repo.Len(), "Repeated Shorten should not create records")
}

func TestService_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	urls := []string{
		"https://example.com",
		"https://example.com/",
		"http://a.com/path?query=1",
		"https://very.long.host.example.org/deeply/nested/path",
	}
	for _, url := range urls {
		code, err := svc.Shorten(url)
		require.NoError(t, err)

		resolved, err := svc.Resolve(code)
		require.NoError(t, err, "Resolve should find a freshly issued code")
		assert.Equal(t, url, resolved, "Round-trip should preserve the URL")
	}
}

func TestService_Uniqueness(t *testing.T) {
	svc := newTestService(t)

	seen := make(map[string]string)
	for i := 0; i < 500; i++ {
		url := fmt.Sprintf("https://example.com/page/%d", i)
		code, err := svc.Shorten(url)
		require.NoError(t, err)

		prev, dup := seen[code]
		assert.False(t, dup, "Code %q already issued for %q", code, prev)
		seen[code] = url
	}
}

func TestService_Shorten_FixedWidthCodes(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 100; i++ {
		code, err := svc.Shorten(fmt.Sprintf("https://example.com/%d", i))
		require.NoError(t, err)
		assert.Len(t, code, generator.CodeLength, "Code should have fixed width")
		assert.True(t, generator.ValidCode(code), "Code should use only alphabet symbols")
	}
}

func TestService_Shorten_Validation(t *testing.T) {
	repo := repository.NewMemoryRepository(0)
	svc := NewService(repo, generator.NewDefault(), nil, 16, 0)

	t.Run("Empty URL", func(t *testing.T) {
		_, err := svc.Shorten("")
		assert.ErrorIs(t, err, ErrEmptyURL)
	})

	t.Run("URL over the limit", func(t *testing.T) {
		_, err := svc.Shorten("https://example.com/too-long-for-limit")
		assert.ErrorIs(t, err, ErrURLTooLong)
		assert.Equal(t, 0, repo.Len(), "Rejected URL should not be stored")
	})

	t.Run("URL at the limit", func(t *testing.T) {
		_, err := svc.Shorten("https://ex.com/1") // ровно 16 символов
		assert.NoError(t, err)
	})
}

func TestService_Resolve(t *testing.T) {
	svc := newTestService(t)

	code, err := svc.Shorten("https://example.com")
	require.NoError(t, err)

	t.Run("Existing code", func(t *testing.T) {
		url, resolveErr := svc.Resolve(code)
		assert.NoError(t, resolveErr)
		assert.Equal(t, "https://example.com", url)
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, resolveErr := svc.Resolve("zzzzzzz")
		assert.ErrorIs(t, resolveErr, ErrNotFound)
	})

	t.Run("Overlong input is truncated", func(t *testing.T) {
		url, resolveErr := svc.Resolve(code + "garbage")
		assert.NoError(t, resolveErr, "Input longer than the code width should be truncated")
		assert.Equal(t, "https://example.com", url)
	})
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)

	// Сценарий: выдача, повтор, второй URL, разрешение, удаление
	c1, err := svc.Shorten("http://a.com")
	require.NoError(t, err)

	again, err := svc.Shorten("http://a.com")
	require.NoError(t, err)
	assert.Equal(t, c1, again, "Repeated Shorten should return the same code")

	c2, err := svc.Shorten("http://b.com")
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2, "Distinct URLs should get distinct codes")

	url, err := svc.Resolve(c1)
	require.NoError(t, err)
	assert.Equal(t, "http://a.com", url)

	assert.True(t, svc.Delete(c1), "Delete of existing code should succeed")

	_, err = svc.Resolve(c1)
	assert.ErrorIs(t, err, ErrNotFound, "Deleted code should not resolve")

	assert.False(t, svc.Delete(c1), "Second delete should fail")
}

func TestService_Delete_FreshRecordAfterwards(t *testing.T) {
	svc := newTestService(t)

	code, err := svc.Shorten("https://example.com")
	require.NoError(t, err)
	require.True(t, svc.Delete(code))
	require.Equal(t, 0, svc.repo.Len())

	// После удаления сокращение того же URL создаёт новую запись.
	// Код может совпасть со старым только если счётчик вернулся к тому же
	// значению, поэтому сравнивать коды нельзя.
	fresh, err := svc.Shorten("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, svc.repo.Len(), "A fresh record should be created")

	url, err := svc.Resolve(fresh)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", url)
}

func TestService_DeleteByURL(t *testing.T) {
	svc := newTestService(t)

	code, err := svc.Shorten("https://example.com")
	require.NoError(t, err)

	assert.True(t, svc.DeleteByURL("https://example.com"))
	assert.False(t, svc.DeleteByURL("https://example.com"), "Second delete should fail")

	_, err = svc.Resolve(code)
	assert.ErrorIs(t, err, ErrNotFound, "Record should be gone from both indexes")
}

func TestService_Shorten_SpaceExhausted(t *testing.T) {
	// Крошечный домен из четырёх кодов и жёсткий предел попыток
	gen, err := generator.New(4, 3)
	require.NoError(t, err)
	repo := repository.NewMemoryRepository(0)
	svc := NewService(repo, gen, nil, 0, 10)

	for i := 0; i < 4; i++ {
		_, shortenErr := svc.Shorten(fmt.Sprintf("https://example.com/%d", i))
		require.NoError(t, shortenErr, "Domain should hold four records")
	}

	_, err = svc.Shorten("https://example.com/one-too-many")
	assert.ErrorIs(t, err, ErrSpaceExhausted, "Exhausted domain should surface an error, not loop")
	assert.Equal(t, 4, repo.Len(), "Failed Shorten should not add records")
}

func TestService_Shorten_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("arena corrupted")
	mockRepo := repository.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetByURL("https://example.com").Return(models.Record{}, false)
	mockRepo.EXPECT().Save(gomock.Any()).Return(boom)

	svc := NewService(mockRepo, generator.NewDefault(), nil, 0, 0)

	_, err := svc.Shorten("https://example.com")
	assert.ErrorIs(t, err, boom, "Unexpected repository errors should pass through")
}

func TestService_List(t *testing.T) {
	svc := newTestService(t)

	want := map[string]string{}
	for i := 0; i < 5; i++ {
		url := fmt.Sprintf("https://example.com/%d", i)
		code, err := svc.Shorten(url)
		require.NoError(t, err)
		want[code] = url
	}

	got := map[string]string{}
	for code, url := range svc.List() {
		got[code] = url
	}
	assert.Equal(t, want, got, "List should enumerate every issued mapping")
}

func TestService_Clear(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Shorten("https://example.com")
	require.NoError(t, err)

	svc.Clear()
	assert.Equal(t, 0, svc.repo.Len(), "Store should be empty after Clear")
}

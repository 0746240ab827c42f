package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/logging"
	"github.com/rafabene/dealflow-backend/internal/testutil/fakes"
)

const publicURL = "https://proj.supabase.co/storage/v1/object/public"

func newTestStorage(api *fakes.ObjectStore) *S3Storage {
	return NewS3StorageWithClient(api, "contracts", publicURL+"/", logging.NewNopLogger())
}

func TestS3Storage_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("rejeita content-type diferente de PDF", func(t *testing.T) {
		api := fakes.NewObjectStore()
		_, err := newTestStorage(api).Upload(ctx, []byte("%PDF-1.4"), "image/png", 1, "user-a")

		assert.True(t, domainerrors.IsValidation(err))
		assert.Zero(t, api.Puts)
	})

	t.Run("rejeita arquivo de 11 MiB", func(t *testing.T) {
		api := fakes.NewObjectStore()
		_, err := newTestStorage(api).Upload(ctx, make([]byte, 11<<20), PDFContentType, 1, "user-a")

		var domainErr *domainerrors.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "validation.file_size", domainErr.Message)
		assert.Zero(t, api.Puts)
	})

	t.Run("aceita PDF de 5 MiB e retorna URL recuperável", func(t *testing.T) {
		api := fakes.NewObjectStore()
		storage := newTestStorage(api)

		fileURL, err := storage.Upload(ctx, make([]byte, 5<<20), PDFContentType, 42, "user-a")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(fileURL, publicURL+"/contracts/user-a/42/"))
		assert.True(t, strings.HasSuffix(fileURL, ".pdf"))

		key, ok := storage.KeyFromURL(fileURL)
		require.True(t, ok)
		data, ok := api.Object(key)
		require.True(t, ok)
		assert.Len(t, data, 5<<20)
	})

	t.Run("aceita exatamente 10 MiB", func(t *testing.T) {
		_, err := newTestStorage(fakes.NewObjectStore()).Upload(ctx, make([]byte, MaxFileSize), PDFContentType, 1, "user-a")
		assert.NoError(t, err)
	})

	t.Run("caminhos são únicos", func(t *testing.T) {
		storage := newTestStorage(fakes.NewObjectStore())
		a, err := storage.Upload(ctx, []byte("a"), PDFContentType, 1, "user-a")
		require.NoError(t, err)
		b, err := storage.Upload(ctx, []byte("a"), PDFContentType, 1, "user-a")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("propaga falha do storage", func(t *testing.T) {
		api := fakes.NewObjectStore()
		api.PutErr = errors.New("boom")
		_, err := newTestStorage(api).Upload(ctx, []byte("a"), PDFContentType, 1, "user-a")
		assert.Error(t, err)
		assert.False(t, domainerrors.IsValidation(err))
	})
}

func TestS3Storage_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("remove objeto pela URL pública", func(t *testing.T) {
		api := fakes.NewObjectStore()
		storage := newTestStorage(api)
		fileURL, err := storage.Upload(ctx, []byte("a"), PDFContentType, 7, "user-a")
		require.NoError(t, err)

		assert.True(t, storage.Delete(ctx, fileURL, "user-a"))
		assert.Zero(t, api.Len())
	})

	t.Run("retorna false quando o storage falha", func(t *testing.T) {
		api := fakes.NewObjectStore()
		api.DeleteErr = errors.New("unavailable")

		assert.False(t, newTestStorage(api).Delete(ctx, publicURL+"/contracts/user-a/1/x.pdf", "user-a"))
	})

	t.Run("retorna false para URL fora do bucket", func(t *testing.T) {
		api := fakes.NewObjectStore()
		assert.False(t, newTestStorage(api).Delete(ctx, "https://elsewhere.io/file.pdf", "user-a"))
		assert.Zero(t, api.Deletes)
	})

	t.Run("não remove objeto de outro usuário", func(t *testing.T) {
		api := fakes.NewObjectStore()
		storage := newTestStorage(api)
		fileURL, err := storage.Upload(ctx, []byte("a"), PDFContentType, 7, "user-a")
		require.NoError(t, err)

		assert.False(t, storage.Delete(ctx, fileURL, "user-b"))
		assert.False(t, storage.Delete(ctx, fileURL, ""))
		assert.Zero(t, api.Deletes)
		assert.Equal(t, 1, api.Len())
	})

	t.Run("não remove objeto com o bucket em outro host", func(t *testing.T) {
		api := fakes.NewObjectStore()
		storage := newTestStorage(api)
		fileURL, err := storage.Upload(ctx, []byte("a"), PDFContentType, 7, "user-a")
		require.NoError(t, err)
		key, ok := storage.KeyFromURL(fileURL)
		require.True(t, ok)

		assert.False(t, storage.Delete(ctx, "https://evil.io/contracts/"+key, "user-a"))
		assert.Zero(t, api.Deletes)
	})

	t.Run("não aceita usuário que é prefixo de outro", func(t *testing.T) {
		api := fakes.NewObjectStore()
		assert.False(t, newTestStorage(api).Delete(ctx, publicURL+"/contracts/user/a/1/x.pdf", "user"))
		assert.Zero(t, api.Deletes)
	})
}

func TestS3Storage_CanReference(t *testing.T) {
	storage := newTestStorage(fakes.NewObjectStore())

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"URL externa", "https://elsewhere.io/file.pdf", true},
		{"caminho relativo", "/uploads/file.pdf", true},
		{"arquivo do próprio usuário", publicURL + "/contracts/user-a/1/a.pdf", true},
		{"arquivo de outro usuário", publicURL + "/contracts/user-b/1/a.pdf", false},
		{"travessia de diretório", publicURL + "/contracts/user-a/../user-b/1/a.pdf", false},
		{"travessia escapada", publicURL + "/contracts/user-a/%2E%2E/user-b/a.pdf", false},
		{"chave vazia no bucket", publicURL + "/contracts/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, storage.CanReference(tt.url, "user-a"))
		})
	}
}

func TestS3Storage_KeyFromURL(t *testing.T) {
	storage := newTestStorage(fakes.NewObjectStore())

	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{"URL pública", publicURL + "/contracts/u/1/a.pdf", "u/1/a.pdf", true},
		{"remove query string", publicURL + "/contracts/u/1/a.pdf?token=abc", "u/1/a.pdf", true},
		{"decodifica escapes", publicURL + "/contracts/u%7C1/1/a.pdf", "u|1/1/a.pdf", true},
		{"caminho relativo", "/contracts/u/1/a.pdf", "", false},
		{"bucket em outro host", "https://x.io/contracts/u/1/a.pdf", "", false},
		{"sem bucket", "https://x.io/other/a.pdf", "", false},
		{"segmento ..", publicURL + "/contracts/u/../v/a.pdf", "", false},
		{"segmento vazio", publicURL + "/contracts/u//a.pdf", "", false},
		{"sem chave", publicURL + "/contracts/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := storage.KeyFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

package file

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error { return nil }

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

func TestSaveLeaveAttachment(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file under opaque name keeping the extension", func(t *testing.T) {
		store := &fakeStorage{}
		svc := NewFileService(store)

		url, err := svc.SaveLeaveAttachment(ctx, "Certificado Médico.PDF", strings.NewReader("pdf"))
		require.NoError(t, err)
		assert.Contains(t, url, "/uploads/licencias/")
		assert.True(t, strings.HasSuffix(url, ".pdf"))

		require.Len(t, store.uploads, 1)
		assert.NotContains(t, store.uploads[0], "Certificado")
	})

	t.Run("unsupported extension is a validation error", func(t *testing.T) {
		store := &fakeStorage{}
		svc := NewFileService(store)

		_, err := svc.SaveLeaveAttachment(ctx, "nota.docx", strings.NewReader("doc"))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "adjunto", verrs[0].Field)
		assert.Empty(t, store.uploads)
	})
}

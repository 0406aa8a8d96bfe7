package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Neicx/Kivo-Asistencia/internal/pkg/storage"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
	"github.com/google/uuid"
)

var leaveAttachmentExts = []string{".pdf", ".jpg", ".jpeg", ".png"}

// FileService stores uploaded justification documents under opaque
// server-generated names.
type FileService struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) *FileService {
	return &FileService{storage: fileStorage}
}

// SaveLeaveAttachment stores a leave justification file and returns its
// public URL. The original file name contributes only its extension.
func (s *FileService) SaveLeaveAttachment(ctx context.Context, fileName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExt(ext) {
		return "", validator.ValidationErrors{
			{Field: "adjunto", Message: "unsupported file type, expected pdf, jpg, jpeg or png"},
		}
	}

	path := fmt.Sprintf("licencias/%s%s", uuid.NewString(), ext)
	stored, err := s.storage.Upload(ctx, content, path, contentTypeFor(ext))
	if err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}

	return s.storage.GetURL(ctx, stored, 0)
}

func allowedExt(ext string) bool {
	for _, allowed := range leaveAttachmentExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}

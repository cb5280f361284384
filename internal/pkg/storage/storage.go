package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileStorage interface {
	// Upload stores a file and returns the object key it was stored under
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file is stored under the key
	Exists(ctx context.Context, key string) (bool, error)
}

// ObjectKey builds a collision-free storage key for an uploaded file,
// keeping the original extension so content type can be inferred later.
func ObjectKey(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return filepath.Join(prefix, uuid.NewString()+ext)
}

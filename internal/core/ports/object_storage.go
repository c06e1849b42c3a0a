package ports

import (
	"context"
	"io"
)

// ObjectStorage abstracts the blob store (MinIO in production).
type ObjectStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

// FileRepository persists file metadata; the bytes live in object storage.
type FileRepository interface {
	Create(ctx context.Context, file *domain.File) (*domain.File, error)
	FindByID(ctx context.Context, id string) (*domain.File, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) (*domain.Media, error)
	FindByPostID(ctx context.Context, postID string) ([]domain.Media, error)
}

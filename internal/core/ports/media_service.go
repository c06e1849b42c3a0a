package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type MediaService interface {
	Attach(ctx context.Context, postID, url string, t domain.MediaType) (*domain.Media, error)
	ListByPost(ctx context.Context, postID string) ([]domain.Media, error)
}

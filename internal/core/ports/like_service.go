package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type LikeService interface {
	Create(ctx context.Context, userID, postID string) (*domain.Like, error)
	ListByPost(ctx context.Context, postID string) ([]domain.Like, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Like, error)
	Delete(ctx context.Context, id string) error
}

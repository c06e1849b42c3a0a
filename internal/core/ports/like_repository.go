package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) (*domain.Like, error)
	FindByPostID(ctx context.Context, postID string) ([]domain.Like, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Like, error)
	FindByUserAndPost(ctx context.Context, userID, postID string) (*domain.Like, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

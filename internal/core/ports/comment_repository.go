package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindAll(ctx context.Context) ([]domain.Comment, error)
	FindByPostID(ctx context.Context, postID string) ([]domain.Comment, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Comment, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

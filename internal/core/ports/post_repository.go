package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Post, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}

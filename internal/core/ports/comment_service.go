package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type CommentService interface {
	Create(ctx context.Context, userID, postID, content string) (*domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

// FollowRepository persists directed follow edges. FindEdge looks up the
// ordered (follower, following) pair; the backing store keeps that pair unique.
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) (*domain.Follow, error)
	FindEdge(ctx context.Context, followerID, followingID string) (*domain.Follow, error)
	FindByFollowerID(ctx context.Context, followerID string) ([]domain.Follow, error)
	FindByFollowingID(ctx context.Context, followingID string) ([]domain.Follow, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

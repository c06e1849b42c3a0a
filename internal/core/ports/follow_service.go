package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type FollowService interface {
	// Follow creates the directed edge follower -> following. A duplicate
	// edge fails with domain.ErrAlreadyFollowing.
	Follow(ctx context.Context, followerID, followingID string) (*domain.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID string) error
	Followers(ctx context.Context, userID string) ([]domain.Follow, error)
	Following(ctx context.Context, userID string) ([]domain.Follow, error)
}

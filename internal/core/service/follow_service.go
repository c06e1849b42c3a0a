package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type FollowService struct {
	follows  ports.FollowRepository
	users    ports.UserRepository
	notifier ports.Notifier
}

// NewFollowService wires the follow flow. notifier may be nil; new followers
// then simply produce no notifications.
func NewFollowService(follows ports.FollowRepository, users ports.UserRepository, notifier ports.Notifier) *FollowService {
	return &FollowService{follows: follows, users: users, notifier: notifier}
}

// Follow creates the directed edge follower -> following. The ordered pair is
// unique: a duplicate request fails with ErrAlreadyFollowing.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID string) (*domain.Follow, error) {
	if followerID == followingID {
		return nil, domain.ErrSelfFollow
	}
	follower, err := s.users.FindByID(ctx, followerID)
	if err != nil {
		return nil, err
	}
	if exists, err := s.users.ExistsByID(ctx, followingID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrUserNotFound
	}

	if _, err := s.follows.FindEdge(ctx, followerID, followingID); err == nil {
		return nil, domain.ErrAlreadyFollowing
	} else if !errors.Is(err, domain.ErrFollowNotFound) {
		return nil, err
	}

	follow := &domain.Follow{
		ID:          uuid.NewString(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.follows.Create(ctx, follow)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ports.CreateNotificationInput{
			UserID:   followingID,
			EntityID: created.ID,
			Type:     domain.NotificationFollow,
			Content:  follower.Username + " started following you",
		})
	}
	return created, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID string) error {
	edge, err := s.follows.FindEdge(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	return s.follows.Delete(ctx, edge.ID)
}

func (s *FollowService) Followers(ctx context.Context, userID string) ([]domain.Follow, error) {
	return s.follows.FindByFollowingID(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID string) ([]domain.Follow, error) {
	return s.follows.FindByFollowerID(ctx, userID)
}

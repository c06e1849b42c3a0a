package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type LikeService struct {
	likes    ports.LikeRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	notifier ports.Notifier
}

// NewLikeService wires the like flow. notifier may be nil; likes then simply
// produce no notifications.
func NewLikeService(likes ports.LikeRepository, posts ports.PostRepository, users ports.UserRepository, notifier ports.Notifier) *LikeService {
	return &LikeService{likes: likes, posts: posts, users: users, notifier: notifier}
}

// Create records a like. A second like by the same user on the same post
// fails with ErrAlreadyLiked.
func (s *LikeService) Create(ctx context.Context, userID, postID string) (*domain.Like, error) {
	actor, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if _, err := s.likes.FindByUserAndPost(ctx, userID, postID); err == nil {
		return nil, domain.ErrAlreadyLiked
	} else if !errors.Is(err, domain.ErrLikeNotFound) {
		return nil, err
	}

	like := &domain.Like{
		ID:        uuid.NewString(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.likes.Create(ctx, like)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && post.UserID != userID {
		s.notifier.Notify(ports.CreateNotificationInput{
			UserID:   post.UserID,
			EntityID: created.ID,
			Type:     domain.NotificationLike,
			Content:  actor.Username + " liked your post",
		})
	}
	return created, nil
}

func (s *LikeService) ListByPost(ctx context.Context, postID string) ([]domain.Like, error) {
	if exists, err := s.posts.ExistsByID(ctx, postID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrPostNotFound
	}
	return s.likes.FindByPostID(ctx, postID)
}

func (s *LikeService) ListByUser(ctx context.Context, userID string) ([]domain.Like, error) {
	if exists, err := s.users.ExistsByID(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrUserNotFound
	}
	return s.likes.FindByUserID(ctx, userID)
}

func (s *LikeService) Delete(ctx context.Context, id string) error {
	if exists, err := s.likes.ExistsByID(ctx, id); err != nil {
		return err
	} else if !exists {
		return domain.ErrLikeNotFound
	}
	return s.likes.Delete(ctx, id)
}

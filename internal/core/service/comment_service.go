package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	notifier ports.Notifier
}

// NewCommentService wires the comment flow. notifier may be nil; comments then
// simply produce no notifications.
func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, notifier ports.Notifier) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, notifier: notifier}
}

func (s *CommentService) Create(ctx context.Context, userID, postID, content string) (*domain.Comment, error) {
	actor, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		PostID:    postID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && post.UserID != userID {
		s.notifier.Notify(ports.CreateNotificationInput{
			UserID:   post.UserID,
			EntityID: created.ID,
			Type:     domain.NotificationComment,
			Content:  actor.Username + " commented on your post",
		})
	}
	return created, nil
}

func (s *CommentService) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.FindAll(ctx)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	if exists, err := s.posts.ExistsByID(ctx, postID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrPostNotFound
	}
	return s.comments.FindByPostID(ctx, postID)
}

func (s *CommentService) ListByUser(ctx context.Context, userID string) ([]domain.Comment, error) {
	if exists, err := s.users.ExistsByID(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrUserNotFound
	}
	return s.comments.FindByUserID(ctx, userID)
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if exists, err := s.comments.ExistsByID(ctx, id); err != nil {
		return err
	} else if !exists {
		return domain.ErrCommentNotFound
	}
	return s.comments.Delete(ctx, id)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository
	users         ports.UserRepository
	posts         ports.PostRepository
	comments      ports.CommentRepository
	likes         ports.LikeRepository
	follows       ports.FollowRepository
}

func NewNotificationService(
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	posts ports.PostRepository,
	comments ports.CommentRepository,
	likes ports.LikeRepository,
	follows ports.FollowRepository,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		posts:         posts,
		comments:      comments,
		likes:         likes,
		follows:       follows,
	}
}

// Create stores a notification after checking that the referenced entity of
// the declared type actually exists.
func (s *NotificationService) Create(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	if exists, err := s.users.ExistsByID(ctx, in.UserID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrUserNotFound
	}

	var (
		exists bool
		err    error
	)
	switch in.Type {
	case domain.NotificationPost:
		exists, err = s.posts.ExistsByID(ctx, in.EntityID)
		if err == nil && !exists {
			err = domain.ErrPostNotFound
		}
	case domain.NotificationComment:
		exists, err = s.comments.ExistsByID(ctx, in.EntityID)
		if err == nil && !exists {
			err = domain.ErrCommentNotFound
		}
	case domain.NotificationLike:
		exists, err = s.likes.ExistsByID(ctx, in.EntityID)
		if err == nil && !exists {
			err = domain.ErrLikeNotFound
		}
	case domain.NotificationFollow:
		exists, err = s.follows.ExistsByID(ctx, in.EntityID)
		if err == nil && !exists {
			err = domain.ErrFollowNotFound
		}
	default:
		return nil, domain.ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		EntityID:  in.EntityID,
		Type:      in.Type,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	return s.notifications.Create(ctx, n)
}

func (s *NotificationService) Get(ctx context.Context, id string) (*domain.Notification, error) {
	return s.notifications.FindByID(ctx, id)
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if exists, err := s.users.ExistsByID(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrUserNotFound
	}
	return s.notifications.FindByUserID(ctx, userID)
}

func (s *NotificationService) ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	all, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *NotificationService) CountByUser(ctx context.Context, userID string) (int, error) {
	all, err := s.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *NotificationService) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	unread, err := s.ListUnreadByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

func (s *NotificationService) UpdateContent(ctx context.Context, id, content string) (*domain.Notification, error) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Content = content
	return s.notifications.Update(ctx, n)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string, read bool) (*domain.Notification, error) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Read = read
	return s.notifications.Update(ctx, n)
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if exists, err := s.notifications.ExistsByID(ctx, id); err != nil {
		return err
	} else if !exists {
		return domain.ErrNotificationNotFound
	}
	return s.notifications.Delete(ctx, id)
}

func (s *NotificationService) DeleteByUser(ctx context.Context, userID string) error {
	if exists, err := s.users.ExistsByID(ctx, userID); err != nil {
		return err
	} else if !exists {
		return domain.ErrUserNotFound
	}
	return s.notifications.DeleteByUserID(ctx, userID)
}

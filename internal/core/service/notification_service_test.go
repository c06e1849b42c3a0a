package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type notificationFixture struct {
	notifications *stubNotificationRepository
	users         *stubUserRepository
	posts         *stubPostRepository
	comments      *stubCommentRepository
	likes         *stubLikeRepository
	follows       *stubFollowRepository
}

func newNotificationFixture() *notificationFixture {
	return &notificationFixture{
		notifications: &stubNotificationRepository{},
		users: &stubUserRepository{
			existsByIDFn: func(ctx context.Context, id string) (bool, error) {
				return id == "u1", nil
			},
		},
		posts:    &stubPostRepository{},
		comments: &stubCommentRepository{},
		likes:    &stubLikeRepository{},
		follows:  &stubFollowRepository{},
	}
}

func (f *notificationFixture) service() *NotificationService {
	return NewNotificationService(f.notifications, f.users, f.posts, f.comments, f.likes, f.follows)
}

func TestNotificationService_Create(t *testing.T) {
	f := newNotificationFixture()
	f.likes.existsByIDFn = func(ctx context.Context, id string) (bool, error) {
		return id == "l1", nil
	}

	n, err := f.service().Create(context.Background(), ports.CreateNotificationInput{
		UserID:   "u1",
		EntityID: "l1",
		Type:     domain.NotificationLike,
		Content:  "alice liked your post",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.ID == "" || n.Read {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestNotificationService_Create_RecipientMissing(t *testing.T) {
	f := newNotificationFixture()

	_, err := f.service().Create(context.Background(), ports.CreateNotificationInput{
		UserID: "ghost", EntityID: "l1", Type: domain.NotificationLike,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNotificationService_Create_EntityMissing(t *testing.T) {
	f := newNotificationFixture()

	cases := []struct {
		typ  domain.NotificationType
		want error
	}{
		{domain.NotificationPost, domain.ErrPostNotFound},
		{domain.NotificationComment, domain.ErrCommentNotFound},
		{domain.NotificationLike, domain.ErrLikeNotFound},
		{domain.NotificationFollow, domain.ErrFollowNotFound},
	}
	for _, tc := range cases {
		_, err := f.service().Create(context.Background(), ports.CreateNotificationInput{
			UserID: "u1", EntityID: "gone", Type: tc.typ,
		})
		if !errors.Is(err, tc.want) {
			t.Fatalf("type %s: expected %v, got %v", tc.typ, tc.want, err)
		}
	}
}

func TestNotificationService_Create_UnknownType(t *testing.T) {
	f := newNotificationFixture()

	_, err := f.service().Create(context.Background(), ports.CreateNotificationInput{
		UserID: "u1", EntityID: "x", Type: domain.NotificationType("PIGEON"),
	})
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_UnreadFiltering(t *testing.T) {
	f := newNotificationFixture()
	f.notifications.findByUserIDFn = func(ctx context.Context, userID string) ([]domain.Notification, error) {
		return []domain.Notification{
			{ID: "n1", UserID: userID, Read: true},
			{ID: "n2", UserID: userID, Read: false},
			{ID: "n3", UserID: userID, Read: false},
		}, nil
	}
	svc := f.service()

	unread, err := svc.ListUnreadByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread, got %d", len(unread))
	}

	total, err := svc.CountByUser(context.Background(), "u1")
	if err != nil || total != 3 {
		t.Fatalf("expected total 3, got %d (%v)", total, err)
	}
	unreadCount, err := svc.CountUnreadByUser(context.Background(), "u1")
	if err != nil || unreadCount != 2 {
		t.Fatalf("expected 2 unread, got %d (%v)", unreadCount, err)
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	f := newNotificationFixture()
	f.notifications.findByIDFn = func(ctx context.Context, id string) (*domain.Notification, error) {
		return &domain.Notification{ID: id, UserID: "u1", Read: false}, nil
	}
	var updated *domain.Notification
	f.notifications.updateFn = func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
		updated = n
		return n, nil
	}

	n, err := f.service().MarkRead(context.Background(), "n1", true)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !n.Read || updated == nil || !updated.Read {
		t.Fatalf("read flag not persisted: %+v", n)
	}
}

func TestNotificationService_Delete_Missing(t *testing.T) {
	f := newNotificationFixture()

	if err := f.service().Delete(context.Background(), "gone"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

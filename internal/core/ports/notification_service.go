package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type CreateNotificationInput struct {
	UserID   string
	EntityID string
	Type     domain.NotificationType
	Content  string
}

type NotificationService interface {
	Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	Get(ctx context.Context, id string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	CountUnreadByUser(ctx context.Context, userID string) (int, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string, read bool) (*domain.Notification, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

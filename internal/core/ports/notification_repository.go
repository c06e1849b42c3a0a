package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

package domain

import (
	"errors"
	"time"
)

// NotificationType identifies which kind of entity a notification refers to.
type NotificationType string

const (
	NotificationPost    NotificationType = "POST"
	NotificationComment NotificationType = "COMMENT"
	NotificationLike    NotificationType = "LIKE"
	NotificationFollow  NotificationType = "FOLLOW"
)

func ParseNotificationType(s string) (NotificationType, bool) {
	switch NotificationType(s) {
	case NotificationPost, NotificationComment, NotificationLike, NotificationFollow:
		return NotificationType(s), true
	default:
		return "", false
	}
}

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	UserID    string           `json:"user_id" bson:"user_id"`
	EntityID  string           `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	Type      NotificationType `json:"type" bson:"type"`
	Content   string           `json:"content" bson:"content"`
	Read      bool             `json:"read" bson:"read"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}

package domain

import (
	"errors"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(s) {
	case MediaImage, MediaVideo:
		return MediaType(s), true
	default:
		return "", false
	}
}

var ErrMediaNotFound = errors.New("media not found")

// Media attaches an external asset URL to a post.
type Media struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	PostID    string    `json:"post_id" bson:"post_id"`
	URL       string    `json:"url" bson:"url"`
	Type      MediaType `json:"type" bson:"type"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrLikeNotFound = errors.New("like not found")
	ErrAlreadyLiked = errors.New("post already liked by this user")
)

type Like struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	PostID    string    `json:"post_id" bson:"post_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

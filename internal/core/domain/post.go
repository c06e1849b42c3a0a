package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a user-authored entry. FileID optionally references an uploaded
// file attachment by its storage uuid.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Content   string    `json:"content" bson:"content"`
	FileID    string    `json:"file_id,omitempty" bson:"file_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrFollowNotFound   = errors.New("follow relationship not found")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrSelfFollow       = errors.New("users cannot follow themselves")
)

// Follow is a directed edge: FollowerID follows FollowingID. The pair is
// unique; the repository enforces a compound unique index.
type Follow struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FollowerID  string    `json:"follower_id" bson:"follower_id"`
	FollowingID string    `json:"following_id" bson:"following_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

package ports

import (
	"context"
	"time"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type CreatePostInput struct {
	Content string
	FileID  string
}

// PostView is a post joined with its author's public fields.
type PostView struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Username       string    `json:"username"`
	FileID         string    `json:"file_id,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PostService interface {
	Create(ctx context.Context, username string, in CreatePostInput) (*PostView, error)
	GetByID(ctx context.Context, id string) (*PostView, error)
	ListAll(ctx context.Context) ([]PostView, error)
	// ListByUser applies the private-profile gate: when the target profile is
	// private, the viewer must be the target or an existing follower.
	ListByUser(ctx context.Context, targetUserID, viewerUsername string) ([]PostView, error)
	ListByUsername(ctx context.Context, username string) ([]PostView, error)
	Update(ctx context.Context, id, content string) (*PostView, error)
	Delete(ctx context.Context, id string) error
}

// PermissionService holds the ownership checks consulted by handlers before
// destructive operations.
type PermissionService interface {
	// CanDeletePost is fail-closed: a missing post yields false, not an error.
	CanDeletePost(ctx context.Context, p domain.Principal, postID string) bool
	CanModifyUser(p domain.Principal, targetUserID string) bool
}

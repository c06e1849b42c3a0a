package service

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

// PermissionService implements the ownership checks consulted by handlers
// before destructive operations.
type PermissionService struct {
	posts ports.PostRepository
}

func NewPermissionService(posts ports.PostRepository) *PermissionService {
	return &PermissionService{posts: posts}
}

// CanDeletePost allows admins unconditionally, otherwise the post's owner.
// A missing post yields false rather than an error: fail closed.
func (s *PermissionService) CanDeletePost(ctx context.Context, p domain.Principal, postID string) bool {
	if p.IsAdmin() {
		return true
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return false
	}
	return post.UserID == p.ID
}

// CanModifyUser allows a user to modify their own account, and admins any.
func (s *PermissionService) CanModifyUser(p domain.Principal, targetUserID string) bool {
	return p.IsAdmin() || p.ID == targetUserID
}

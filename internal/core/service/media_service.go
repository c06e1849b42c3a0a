package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type MediaService struct {
	media ports.MediaRepository
	posts ports.PostRepository
}

func NewMediaService(media ports.MediaRepository, posts ports.PostRepository) *MediaService {
	return &MediaService{media: media, posts: posts}
}

func (s *MediaService) Attach(ctx context.Context, postID, url string, t domain.MediaType) (*domain.Media, error) {
	if exists, err := s.posts.ExistsByID(ctx, postID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrPostNotFound
	}

	m := &domain.Media{
		ID:        uuid.NewString(),
		PostID:    postID,
		URL:       url,
		Type:      t,
		CreatedAt: time.Now().UTC(),
	}
	return s.media.Create(ctx, m)
}

func (s *MediaService) ListByPost(ctx context.Context, postID string) ([]domain.Media, error) {
	if exists, err := s.posts.ExistsByID(ctx, postID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrPostNotFound
	}
	return s.media.FindByPostID(ctx, postID)
}

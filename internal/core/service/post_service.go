package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pulse-social/pulse-api/internal/api/metrics"
	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

type PostService struct {
	posts   ports.PostRepository
	users   ports.UserRepository
	files   ports.FileRepository
	follows ports.FollowRepository
	log     zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	users ports.UserRepository,
	files ports.FileRepository,
	follows ports.FollowRepository,
	log zerolog.Logger,
) *PostService {
	return &PostService{posts: posts, users: users, files: files, follows: follows, log: log}
}

// Create stores a post authored by username. An attached file must already
// exist in the file store.
func (s *PostService) Create(ctx context.Context, username string, in ports.CreatePostInput) (*ports.PostView, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if in.FileID != "" {
		if _, err := s.files.FindByID(ctx, in.FileID); err != nil {
			return nil, err
		}
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Content:   in.Content,
		FileID:    in.FileID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.log.Info().Str("post_id", created.ID).Str("username", username).Msg("post created")

	return toPostView(created, user), nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	return toPostView(post, author), nil
}

func (s *PostService) ListAll(ctx context.Context) ([]ports.PostView, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toPostViews(ctx, posts)
}

// ListByUser lists a user's posts, applying the private-profile gate: when the
// target profile is private, the viewer must be the target themselves or hold
// an existing follow edge viewer -> target.
func (s *PostService) ListByUser(ctx context.Context, targetUserID, viewerUsername string) ([]ports.PostView, error) {
	viewer, err := s.users.FindByUsername(ctx, viewerUsername)
	if err != nil {
		return nil, err
	}
	target, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	if target.Private && viewer.ID != target.ID {
		if _, err := s.follows.FindEdge(ctx, viewer.ID, target.ID); err != nil {
			return nil, domain.ErrAccessDenied
		}
	}

	posts, err := s.posts.FindByUserID(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	views := make([]ports.PostView, len(posts))
	for i := range posts {
		views[i] = *toPostView(&posts[i], target)
	}
	return views, nil
}

func (s *PostService) ListByUsername(ctx context.Context, username string) ([]ports.PostView, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	views := make([]ports.PostView, len(posts))
	for i := range posts {
		views[i] = *toPostView(&posts[i], user)
	}
	return views, nil
}

func (s *PostService) Update(ctx context.Context, id, content string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Content = content

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, updated.UserID)
	if err != nil {
		return nil, err
	}
	return toPostView(updated, author), nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	exists, err := s.posts.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPostNotFound
	}
	return s.posts.Delete(ctx, id)
}

func (s *PostService) toPostViews(ctx context.Context, posts []domain.Post) ([]ports.PostView, error) {
	authors := make(map[string]*domain.User)
	views := make([]ports.PostView, 0, len(posts))
	for i := range posts {
		author, ok := authors[posts[i].UserID]
		if !ok {
			var err error
			author, err = s.users.FindByID(ctx, posts[i].UserID)
			if err != nil {
				// Orphaned post (author deleted); skip rather than fail the list.
				continue
			}
			authors[posts[i].UserID] = author
		}
		views = append(views, *toPostView(&posts[i], author))
	}
	return views, nil
}

func toPostView(p *domain.Post, author *domain.User) *ports.PostView {
	return &ports.PostView{
		ID:             p.ID,
		Content:        p.Content,
		Username:       author.Username,
		FileID:         p.FileID,
		ProfilePicture: author.ProfilePicture,
		CreatedAt:      p.CreatedAt,
	}
}

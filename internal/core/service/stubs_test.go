package service

import (
	"context"
	"sync"
	"time"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

// Repository stubs for the service tests. Unset functions fall back to
// not-found or echo behavior so each test only wires what it asserts on.

type stubUserRepository struct {
	createFn         func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	findAllFn        func(ctx context.Context) ([]domain.User, error)
	existsByIDFn     func(ctx context.Context, id string) (bool, error)
	updateFn         func(ctx context.Context, user *domain.User) (*domain.User, error)
	deleteFn         func(ctx context.Context, id string) error
}

func (s *stubUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.createFn == nil {
		return user, nil
	}
	return s.createFn(ctx, user)
}

func (s *stubUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.findByUsernameFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByUsernameFn(ctx, username)
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if s.findAllFn == nil {
		return nil, nil
	}
	return s.findAllFn(ctx)
}

func (s *stubUserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if s.existsByIDFn == nil {
		return false, nil
	}
	return s.existsByIDFn(ctx, id)
}

func (s *stubUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.updateFn == nil {
		return user, nil
	}
	return s.updateFn(ctx, user)
}

func (s *stubUserRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubPostRepository struct {
	createFn       func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	findByIDFn     func(ctx context.Context, id string) (*domain.Post, error)
	findAllFn      func(ctx context.Context) ([]domain.Post, error)
	findByUserIDFn func(ctx context.Context, userID string) ([]domain.Post, error)
	existsByIDFn   func(ctx context.Context, id string) (bool, error)
	updateFn       func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if s.createFn == nil {
		return post, nil
	}
	return s.createFn(ctx, post)
}

func (s *stubPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrPostNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubPostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	if s.findAllFn == nil {
		return nil, nil
	}
	return s.findAllFn(ctx)
}

func (s *stubPostRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Post, error) {
	if s.findByUserIDFn == nil {
		return nil, nil
	}
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubPostRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if s.existsByIDFn == nil {
		return false, nil
	}
	return s.existsByIDFn(ctx, id)
}

func (s *stubPostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if s.updateFn == nil {
		return post, nil
	}
	return s.updateFn(ctx, post)
}

func (s *stubPostRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubFollowRepository struct {
	createFn            func(ctx context.Context, follow *domain.Follow) (*domain.Follow, error)
	findEdgeFn          func(ctx context.Context, followerID, followingID string) (*domain.Follow, error)
	findByFollowerIDFn  func(ctx context.Context, followerID string) ([]domain.Follow, error)
	findByFollowingIDFn func(ctx context.Context, followingID string) ([]domain.Follow, error)
	existsByIDFn        func(ctx context.Context, id string) (bool, error)
	deleteFn            func(ctx context.Context, id string) error
}

func (s *stubFollowRepository) Create(ctx context.Context, follow *domain.Follow) (*domain.Follow, error) {
	if s.createFn == nil {
		return follow, nil
	}
	return s.createFn(ctx, follow)
}

func (s *stubFollowRepository) FindEdge(ctx context.Context, followerID, followingID string) (*domain.Follow, error) {
	if s.findEdgeFn == nil {
		return nil, domain.ErrFollowNotFound
	}
	return s.findEdgeFn(ctx, followerID, followingID)
}

func (s *stubFollowRepository) FindByFollowerID(ctx context.Context, followerID string) ([]domain.Follow, error) {
	if s.findByFollowerIDFn == nil {
		return nil, nil
	}
	return s.findByFollowerIDFn(ctx, followerID)
}

func (s *stubFollowRepository) FindByFollowingID(ctx context.Context, followingID string) ([]domain.Follow, error) {
	if s.findByFollowingIDFn == nil {
		return nil, nil
	}
	return s.findByFollowingIDFn(ctx, followingID)
}

func (s *stubFollowRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if s.existsByIDFn == nil {
		return false, nil
	}
	return s.existsByIDFn(ctx, id)
}

func (s *stubFollowRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubLikeRepository struct {
	createFn            func(ctx context.Context, like *domain.Like) (*domain.Like, error)
	findByPostIDFn      func(ctx context.Context, postID string) ([]domain.Like, error)
	findByUserIDFn      func(ctx context.Context, userID string) ([]domain.Like, error)
	findByUserAndPostFn func(ctx context.Context, userID, postID string) (*domain.Like, error)
	existsByIDFn        func(ctx context.Context, id string) (bool, error)
	deleteFn            func(ctx context.Context, id string) error
}

func (s *stubLikeRepository) Create(ctx context.Context, like *domain.Like) (*domain.Like, error) {
	if s.createFn == nil {
		return like, nil
	}
	return s.createFn(ctx, like)
}

func (s *stubLikeRepository) FindByPostID(ctx context.Context, postID string) ([]domain.Like, error) {
	if s.findByPostIDFn == nil {
		return nil, nil
	}
	return s.findByPostIDFn(ctx, postID)
}

func (s *stubLikeRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Like, error) {
	if s.findByUserIDFn == nil {
		return nil, nil
	}
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubLikeRepository) FindByUserAndPost(ctx context.Context, userID, postID string) (*domain.Like, error) {
	if s.findByUserAndPostFn == nil {
		return nil, domain.ErrLikeNotFound
	}
	return s.findByUserAndPostFn(ctx, userID, postID)
}

func (s *stubLikeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if s.existsByIDFn == nil {
		return false, nil
	}
	return s.existsByIDFn(ctx, id)
}

func (s *stubLikeRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubCommentRepository struct {
	createFn       func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	findAllFn      func(ctx context.Context) ([]domain.Comment, error)
	findByPostIDFn func(ctx context.Context, postID string) ([]domain.Comment, error)
	findByUserIDFn func(ctx context.Context, userID string) ([]domain.Comment, error)
	existsByIDFn   func(ctx context.Context, id string) (bool, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if s.createFn == nil {
		return comment, nil
	}
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepository) FindAll(ctx context.Context) ([]domain.Comment, error) {
	if s.findAllFn == nil {
		return nil, nil
	}
	return s.findAllFn(ctx)
}

func (s *stubCommentRepository) FindByPostID(ctx context.Context, postID string) ([]domain.Comment, error) {
	if s.findByPostIDFn == nil {
		return nil, nil
	}
	return s.findByPostIDFn(ctx, postID)
}

func (s *stubCommentRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Comment, error) {
	if s.findByUserIDFn == nil {
		return nil, nil
	}
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubCommentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if s.existsByIDFn == nil {
		return false, nil
	}
	return s.existsByIDFn(ctx, id)
}

func (s *stubCommentRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubNotificationRepository struct {
	createFn         func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.Notification, error)
	findByUserIDFn   func(ctx context.Context, userID string) ([]domain.Notification, error)
	updateFn         func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	existsByIDFn     func(ctx context.Context, id string) (bool, error)
	deleteFn         func(ctx context.Context, id string) error
	deleteByUserIDFn func(ctx context.Context, userID string) error
}

func (s *stubNotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if s.createFn == nil {
		return n, nil
	}
	return s.createFn(ctx, n)
}

func (s *stubNotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrNotificationNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	if s.findByUserIDFn == nil {
		return nil, nil
	}
	return s.findByUserIDFn(ctx, userID)
}

func (s *stubNotificationRepository) Update(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if s.updateFn == nil {
		return n, nil
	}
	return s.updateFn(ctx, n)
}

func (s *stubNotificationRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if s.existsByIDFn == nil {
		return false, nil
	}
	return s.existsByIDFn(ctx, id)
}

func (s *stubNotificationRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubNotificationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if s.deleteByUserIDFn == nil {
		return nil
	}
	return s.deleteByUserIDFn(ctx, userID)
}

type stubFileRepository struct {
	createFn   func(ctx context.Context, file *domain.File) (*domain.File, error)
	findByIDFn func(ctx context.Context, id string) (*domain.File, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubFileRepository) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	if s.createFn == nil {
		return file, nil
	}
	return s.createFn(ctx, file)
}

func (s *stubFileRepository) FindByID(ctx context.Context, id string) (*domain.File, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrFileNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubFileRepository) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

// memoryRegistry is an in-memory ports.TokenRegistry, standing in for the
// redis-backed one.
type memoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{sessions: make(map[string]domain.Session)}
}

func (r *memoryRegistry) Save(ctx context.Context, token string, session domain.Session, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = session
	return nil
}

func (r *memoryRegistry) Find(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrInvalidRefreshToken
	}
	return &session, nil
}

func (r *memoryRegistry) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *memoryRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// recordingNotifier captures notification jobs synchronously.
type recordingNotifier struct {
	mu   sync.Mutex
	jobs []ports.CreateNotificationInput
}

func (n *recordingNotifier) Notify(in ports.CreateNotificationInput) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.jobs = append(n.jobs, in)
}

func (n *recordingNotifier) recorded() []ports.CreateNotificationInput {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.CreateNotificationInput, len(n.jobs))
	copy(out, n.jobs)
	return out
}

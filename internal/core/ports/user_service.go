package ports

import (
	"context"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

type CreateUserInput struct {
	Username   string
	Email      string
	Password   string
	Role       domain.Role
	Salutation string
	Country    string
}

// UpdateUserInput carries optional profile changes; nil fields are untouched.
type UpdateUserInput struct {
	Username       *string
	Email          *string
	Salutation     *string
	Country        *string
	ProfilePicture *string
	Locked         *bool
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error
	SetVisibility(ctx context.Context, id string, private bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

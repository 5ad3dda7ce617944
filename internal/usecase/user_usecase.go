package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// RegisterUserInput carries the fields needed to register a new user
type RegisterUserInput struct {
	Name  string
	Phone string
	Email string
	Role  entity.UserRole
}

// UpdateUserInput carries optional profile fields; nil means keep the
// stored value
type UpdateUserInput struct {
	Name  *string
	Phone *string
	Email *string
}

// UserUsecase defines the interface for user management use cases
type UserUsecase interface {
	// RegisterUser creates a new user after phone validation and
	// duplicate-phone checks
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// GetUser retrieves a user by id
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// GetUserByPhone retrieves a user by phone number
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)

	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateProfile applies a partial update to a user profile
	UpdateProfile(ctx context.Context, userID string, input UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a user by id
	DeleteUser(ctx context.Context, userID string) error
}

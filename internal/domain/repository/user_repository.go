// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related storage operations.
type UserRepository interface {
	// FindAll retrieves every stored user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user by its unique id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByPhone retrieves a user by phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// Save upserts a user by id.
	Save(ctx context.Context, user *entity.User) error

	// DeleteByID removes a user by id.
	DeleteByID(ctx context.Context, id string) error
}

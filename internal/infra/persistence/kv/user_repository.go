package kv

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// FindAll retrieves every stored user.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	repo.store.Get(ctx, usersKey, &users)

	return users, nil
}

// FindByID retrieves a user by its unique id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	users, _ := repo.FindAll(ctx)
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByPhone retrieves a user by phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	users, _ := repo.FindAll(ctx)
	for _, user := range users {
		if user.Phone == phone {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Save upserts a user by id via linear scan-and-replace.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	users, _ := repo.FindAll(ctx)

	replaced := false
	for i, existing := range users {
		if existing.ID == user.ID {
			users[i] = user
			replaced = true

			break
		}
	}
	if !replaced {
		users = append(users, user)
	}

	if err := repo.store.Set(ctx, usersKey, users); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save user")
	}

	return nil
}

// DeleteByID removes a user by id.
func (repo *userRepository) DeleteByID(ctx context.Context, id string) error {
	users, _ := repo.FindAll(ctx)

	kept := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	if len(kept) == len(users) {
		return repository.ErrUserNotFound
	}

	if err := repo.store.Set(ctx, usersKey, kept); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to delete user")
	}

	return nil
}

// Package impl provides the concrete use case services.
package impl

import (
	"context"
	"regexp"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

// Taiwanese mobile numbers: 09 followed by eight digits.
var phonePattern = regexp.MustCompile(`^09\d{8}$`)

type userService struct {
	userRepo repository.UserRepository
	clock    service.Clock
	idGen    service.IDGenerator
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Clock    service.Clock
	IDGen    service.IDGenerator
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		clock:    params.Clock,
		idGen:    params.IDGen,
	}
}

// RegisterUser creates a new user after phone validation and
// duplicate-phone checks
func (s *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	existing, err := s.userRepo.FindByPhone(ctx, input.Phone)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by phone")
	}
	if existing != nil {
		return nil, domainerrors.ErrPhoneAlreadyRegistered
	}

	now := s.clock.Now()
	user := &entity.User{
		ID:        s.idGen.NewID("user"),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	return user, nil
}

// GetUser retrieves a user by id
func (s *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByPhone retrieves a user by phone number
func (s *userService) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return user, nil
}

// ListUsers retrieves all users
func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateProfile applies a partial update to a user profile; nil input
// fields keep their stored values
func (s *userService) UpdateProfile(ctx context.Context, userID string, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if input.Phone != nil && *input.Phone != user.Phone {
		if !phonePattern.MatchString(*input.Phone) {
			return nil, domainerrors.ErrInvalidPhone
		}
		other, err := s.userRepo.FindByPhone(ctx, *input.Phone)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by phone")
		}
		if other != nil {
			return nil, domainerrors.ErrPhoneAlreadyRegistered
		}
		user.Phone = *input.Phone
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	user.UpdatedAt = s.clock.Now()

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	return user, nil
}

// DeleteUser removes a user by id
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

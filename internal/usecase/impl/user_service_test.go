package impl

import (
	"context"
	"testing"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:  "Mei",
		Phone: "0912345678",
		Email: "mei@example.com",
		Role:  entity.RoleEndUser,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleEndUser, user.Role)
	assert.False(t, user.IsPremium)
	assert.Equal(t, env.clock.Now(), user.CreatedAt)
}

func TestUserService_RegisterUser_InvalidPhone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, phone := range []string{"", "12345", "0812345678", "09123456789", "09123abc78"} {
		_, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
			Name:  "Mei",
			Phone: phone,
			Role:  entity.RoleEndUser,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone, "phone %q", phone)
	}
}

func TestUserService_RegisterUser_DuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name: "Mei", Phone: "0912345678", Role: entity.RoleEndUser,
	})
	require.NoError(t, err)

	_, err = env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name: "Wen", Phone: "0912345678", Role: entity.RoleShopOwner,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestUserService_RegisterUser_InvalidRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Name: "Mei", Phone: "0912345678", Role: "superuser",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_UpdateProfilePartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name: "Mei", Phone: "0912345678", Email: "mei@example.com", Role: entity.RoleEndUser,
	})
	require.NoError(t, err)

	// Only the name changes; nil fields keep the stored values.
	updated, err := env.users.UpdateProfile(ctx, user.ID, usecase.UpdateUserInput{
		Name: strPtr("Mei-Ling"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mei-Ling", updated.Name)
	assert.Equal(t, "0912345678", updated.Phone)
	assert.Equal(t, "mei@example.com", updated.Email)
}

func TestUserService_UpdateProfile_PhoneTakenByOther(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name: "Mei", Phone: "0912345678", Role: entity.RoleEndUser,
	})
	require.NoError(t, err)
	other, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name: "Wen", Phone: "0987654321", Role: entity.RoleEndUser,
	})
	require.NoError(t, err)

	_, err = env.users.UpdateProfile(ctx, other.ID, usecase.UpdateUserInput{
		Phone: strPtr("0912345678"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.GetUser(context.Background(), "user_missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.RegisterUser(ctx, usecase.RegisterUserInput{
		Name: "Mei", Phone: "0912345678", Role: entity.RoleEndUser,
	})
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(ctx, user.ID))

	_, err = env.users.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	assert.ErrorIs(t, env.users.DeleteUser(ctx, user.ID), domainerrors.ErrUserNotFound)
}

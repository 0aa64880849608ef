package service

import (
	"context"
	"testing"

	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userService := NewUserService(db, store.NewUserStore(db))
	ctx := context.Background()

	user, err := userService.Register(ctx, "Organizer@SPPL.test", "", "sppl-pass")
	require.NoError(t, err)
	assert.Equal(t, "organizer@sppl.test", user.Email)
	assert.Equal(t, "organizer@sppl.test", user.Username)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "sppl-pass", *user.PasswordHash)

	_, err = userService.Register(ctx, "organizer@sppl.test", "", "another-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)

	authed, err := userService.Authenticate(ctx, "organizer@sppl.test", "sppl-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = userService.Authenticate(ctx, "organizer@sppl.test", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = userService.Authenticate(ctx, "nobody@sppl.test", "sppl-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userService := NewUserService(db, store.NewUserStore(db))
	ctx := context.Background()

	_, err := userService.Register(ctx, "not-an-email", "", "sppl-pass")
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)

	_, err = userService.Register(ctx, "organizer@sppl.test", "", "short")
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
}

func TestFindOrCreateUserByProvider(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userService := NewUserService(db, store.NewUserStore(db))
	ctx := context.Background()

	gothUser := goth.User{
		Provider:  "google",
		UserID:    "google-123",
		Email:     "organizer@sppl.test",
		Name:      "Organizer",
		AvatarURL: "https://lh3.example/avatar.png",
	}

	created, err := userService.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Nil(t, created.PasswordHash)

	found, err := userService.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// OAuth-only accounts cannot log in with a password.
	_, err = userService.Authenticate(ctx, "organizer@sppl.test", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

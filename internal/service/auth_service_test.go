package service

import (
	"context"
	"strings"
	"testing"

	"tasktracker/internal/auth"
	"tasktracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.auth.Register(ctx, Registration{
		Username:  "new_user",
		Email:     "New.User@Example.com",
		Password:  "secret1",
		FirstName: "New",
	})

	require.NoError(t, err)
	assert.Equal(t, "new_user", user.Username)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.NotEqual(t, "secret1", user.HashedPassword)
	assert.True(t, auth.CheckPassword(user.HashedPassword, "secret1"))

	_, err = f.auth.Register(ctx, Registration{Username: "new_user", Password: "secret2"})
	e := requireKind(t, err, KindConflict)
	assert.Contains(t, e.Fields, "username")
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		reg   Registration
		field string
	}{
		{"blank username", Registration{Username: " ", Password: "secret1"}, "username"},
		{"bad characters", Registration{Username: "john doe", Password: "secret1"}, "username"},
		{"too long", Registration{Username: strings.Repeat("a", 151), Password: "secret1"}, "username"},
		{"short password", Registration{Username: "john", Password: "12345"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Register(context.Background(), tt.reg)
			e := requireKind(t, err, KindValidation)
			assert.Contains(t, e.Fields, tt.field)
		})
	}
}

func TestAuthService_ObtainAndRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	john := f.user(t, "john_doe")

	pair, err := f.auth.Obtain(ctx, "john_doe", "password123")
	require.NoError(t, err)

	id, err := f.tokens.ParseToken(pair.Access, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, john.UUID, id)

	access, err := f.auth.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	id, err = f.tokens.ParseToken(access, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, john.UUID, id)

	// an access token is not a refresh token
	_, err = f.auth.Refresh(ctx, pair.Access)
	requireKind(t, err, KindUnauthenticated)

	_, err = f.auth.Refresh(ctx, "garbage")
	requireKind(t, err, KindUnauthenticated)
}

func TestAuthService_Obtain_Denied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.user(t, "john_doe")

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	inactive := &model.User{Username: "ghost", HashedPassword: hash}
	require.NoError(t, f.store.Users().Create(ctx, inactive))

	for _, creds := range [][2]string{
		{"john_doe", "wrong"},
		{"nobody", "password123"},
		{"ghost", "password123"},
	} {
		_, err := f.auth.Obtain(ctx, creds[0], creds[1])
		e := requireKind(t, err, KindUnauthenticated)
		assert.Equal(t, "No active account found with the given credentials", e.Message)
	}
}

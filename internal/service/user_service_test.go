package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	john := f.user(t, "john_doe")
	f.user(t, "jane_smith")
	f.user(t, "bob_wilson")

	page, err := f.users.List(ctx, john, "", PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Count)
	assert.Equal(t, "bob_wilson", page.Items[0].Username)

	page, err = f.users.List(ctx, john, "JANE", PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "jane_smith", page.Items[0].Username)

	got, err := f.users.Get(ctx, john, john.UUID)
	require.NoError(t, err)
	assert.Equal(t, "john_doe", got.Username)

	_, err = f.users.Get(ctx, john, uuid.New())
	requireKind(t, err, KindNotFound)

	_, err = f.users.List(ctx, nil, "", PageRequest{})
	requireKind(t, err, KindUnauthenticated)
}

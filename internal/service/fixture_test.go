package service

import (
	"context"
	"testing"
	"time"

	"tasktracker/internal/auth"
	"tasktracker/internal/model"
	"tasktracker/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memory.Store
	tasks    *TaskService
	comments *CommentService
	users    *UserService
	auth     *AuthService
	tokens   *auth.TokenManager
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.NewStore()
	f := &fixture{
		store: st,
		now:   time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		tokens: auth.NewTokenManager(auth.Config{
			Secret:     "test-secret",
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		}),
	}
	f.tasks = NewTaskService(st.Tasks(), st.Users())
	f.tasks.now = func() time.Time { return f.now }
	f.comments = NewCommentService(st.Comments(), st.Tasks())
	f.users = NewUserService(st.Users())
	f.auth = NewAuthService(st.Users(), f.tokens)
	return f
}

func (f *fixture) user(t *testing.T, username string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	u := &model.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: hash,
		IsActive:       true,
	}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u
}

func (f *fixture) task(t *testing.T, caller *model.User, title string, assignee *model.User) *model.Task {
	t.Helper()
	in := TaskInput{Title: title}
	if assignee != nil {
		id := assignee.UUID
		in.AssigneeUUID = &id
	}
	task, err := f.tasks.Create(context.Background(), caller, in)
	require.NoError(t, err)
	return task
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func boolPtr(b bool) *bool { return &b }

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, kind, e.Kind, e.Error())
	return e
}

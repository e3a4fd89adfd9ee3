package service

import (
	"context"
	"fmt"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

// UserService is the read-only user directory.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, caller *model.User, id uuid.UUID) (*model.User, error) {
	if caller == nil {
		return nil, NewUnauthenticated("")
	}
	u, err := s.users.FindByUUID(ctx, id)
	if err != nil {
		return nil, fromStore(err, "get user", "User", id.String())
	}
	return u, nil
}

// List matches search case-insensitively against username and email.
func (s *UserService) List(ctx context.Context, caller *model.User, search string, page PageRequest) (Page[model.User], error) {
	if caller == nil {
		return Page[model.User]{}, NewUnauthenticated("")
	}
	req := page.normalize()
	users, count, err := s.users.List(ctx, repository.UserQuery{Search: search, Page: req.window()})
	if err != nil {
		return Page[model.User]{}, fmt.Errorf("list users: %w", err)
	}
	return newPage(users, count, req)
}

package memory

import (
	"context"
	"sort"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

type Users struct {
	s *Store
}

func (r *Users) Create(ctx context.Context, user *model.User) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	r.s.stamp(&user.ID, &user.Identity)
	row := *user
	r.s.users[user.ID] = &row
	return nil
}

func (r *Users) FindByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	for _, u := range r.s.users {
		if u.UUID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *Users) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *Users) List(ctx context.Context, query repository.UserQuery) ([]model.User, int64, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	search := strings.TrimSpace(query.Search)
	res := []model.User{}
	for _, u := range r.s.users {
		if search != "" && !containsFold(u.Username, search) && !containsFold(u.Email, search) {
			continue
		}
		res = append(res, *u)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Username != res[j].Username {
			return res[i].Username < res[j].Username
		}
		return res[i].ID < res[j].ID
	})
	return window(res, query.Page), int64(len(res)), nil
}

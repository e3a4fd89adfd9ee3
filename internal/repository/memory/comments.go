package memory

import (
	"context"
	"sort"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

type Comments struct {
	s *Store
}

func (r *Comments) Create(ctx context.Context, comment *model.Comment) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	r.s.stamp(&comment.ID, &comment.Identity)
	row := *comment
	row.Task = nil
	row.Author = model.User{}
	r.s.comments[comment.ID] = &row
	return nil
}

func (r *Comments) hydrate(c *model.Comment) model.Comment {
	out := *c
	out.Author = r.s.userCopy(c.AuthorID)
	if t, ok := r.s.tasks[c.TaskID]; ok {
		task := r.s.hydrate(t)
		out.Task = &task
	}
	return out
}

func (r *Comments) FindByUUID(ctx context.Context, taskID uint, id uuid.UUID) (*model.Comment, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	for _, c := range r.s.comments {
		if c.TaskID == taskID && c.UUID == id {
			out := r.hydrate(c)
			return &out, nil
		}
	}
	return nil, repository.ErrCommentNotFound
}

func (r *Comments) ListByTask(ctx context.Context, taskID uint, page repository.Page) ([]model.Comment, int64, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	res := []model.Comment{}
	for _, c := range r.s.comments {
		if c.TaskID == taskID {
			res = append(res, r.hydrate(c))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return window(res, page), int64(len(res)), nil
}

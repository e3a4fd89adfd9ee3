package memory

import (
	"context"
	"strings"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

type Tasks struct {
	s *Store
}

func (r *Tasks) Create(ctx context.Context, task *model.Task) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	r.s.stamp(&task.ID, &task.Identity)
	r.s.tasks[task.ID] = strip(task)
	return nil
}

func (r *Tasks) find(id uuid.UUID) (*model.Task, bool) {
	for _, t := range r.s.tasks {
		if t.UUID == id {
			return t, true
		}
	}
	return nil, false
}

func (r *Tasks) FindByUUID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	t, ok := r.find(id)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	out := r.s.hydrate(t)
	return &out, nil
}

func (r *Tasks) List(ctx context.Context, query repository.TaskQuery) ([]model.Task, int64, error) {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	search := strings.TrimSpace(query.Search)
	res := []model.Task{}
	for _, t := range r.s.tasks {
		if query.CreatorID != nil && t.CreatorID != *query.CreatorID {
			continue
		}
		if query.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *query.AssigneeID) {
			continue
		}
		if query.IsCompleted != nil && t.IsCompleted != *query.IsCompleted {
			continue
		}
		if search != "" && !containsFold(t.Title, search) && !containsFold(t.Description, search) {
			continue
		}
		res = append(res, r.s.hydrate(t))
	}
	sortTasks(res, query.Ordering)
	return window(res, query.Page), int64(len(res)), nil
}

// Modify holds the store's write lock for the whole read-modify-write, which
// is the in-memory equivalent of the row lock.
func (r *Tasks) Modify(ctx context.Context, id uuid.UUID, fn func(task *model.Task) error) (*model.Task, error) {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	t, ok := r.find(id)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	working := r.s.hydrate(t)
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = t.ID
	working.Identity.UUID = t.UUID
	working.CreatedAt = t.CreatedAt
	working.UpdatedAt = r.s.now()
	r.s.tasks[t.ID] = strip(&working)

	out := r.s.hydrate(r.s.tasks[t.ID])
	return &out, nil
}

func (r *Tasks) Delete(ctx context.Context, task *model.Task) error {
	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	if _, ok := r.s.tasks[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.s.tasks, task.ID)
	for id, c := range r.s.comments {
		if c.TaskID == task.ID {
			delete(r.s.comments, id)
		}
	}
	return nil
}

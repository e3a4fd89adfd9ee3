package service

import (
	"context"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, query repository.UserQuery) ([]model.User, int64, error)
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindByUUID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, query repository.TaskQuery) ([]model.Task, int64, error)
	// Modify must run fn and persist its result atomically with respect to
	// other Modify calls on the same task.
	Modify(ctx context.Context, id uuid.UUID, fn func(task *model.Task) error) (*model.Task, error)
	Delete(ctx context.Context, task *model.Task) error
}

type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByUUID(ctx context.Context, taskID uint, id uuid.UUID) (*model.Comment, error)
	ListByTask(ctx context.Context, taskID uint, page repository.Page) ([]model.Comment, int64, error)
}

var (
	_ UserStore    = (*repository.UserRepository)(nil)
	_ TaskStore    = (*repository.TaskRepository)(nil)
	_ CommentStore = (*repository.CommentRepository)(nil)
)

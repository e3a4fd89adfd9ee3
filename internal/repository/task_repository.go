package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasktracker/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func withPeople(db *gorm.DB) *gorm.DB {
	return db.Preload("Creator").Preload("Assignee")
}

// Create adds a new task. Creator and Assignee must already exist; they are
// never written through the task.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// FindByUUID retrieves a task with its creator and assignee
func (r *TaskRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := withPeople(r.db.WithContext(ctx)).First(&task, "uuid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

// List returns one page of tasks matching query and the total match count.
func (r *TaskRepository) List(ctx context.Context, query TaskQuery) ([]model.Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if query.CreatorID != nil {
		q = q.Where("creator_id = ?", *query.CreatorID)
	}
	if query.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *query.AssigneeID)
	}
	if query.IsCompleted != nil {
		q = q.Where("is_completed = ?", *query.IsCompleted)
	}
	if s := strings.TrimSpace(query.Search); s != "" {
		like := likePattern(s)
		q = q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, like, like)
	}

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	ordering := query.Ordering
	if len(ordering) == 0 {
		ordering = DefaultTaskOrdering
	}
	for _, o := range ordering {
		col, ok := TaskOrderColumns[o.Field]
		if !ok {
			continue
		}
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: o.Desc})
	}
	// stable pages
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})

	var tasks []model.Task
	err := paginate(withPeople(q), query.Page).Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, count, nil
}

// Modify runs fn against the row locked for update and saves the result in
// the same transaction. An error from fn rolls everything back and is
// returned unchanged.
func (r *TaskRepository) Modify(ctx context.Context, id uuid.UUID, fn func(task *model.Task) error) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, "uuid = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("lock task: %w", err)
		}
		if err := withPeople(tx).First(&task, locked.ID).Error; err != nil {
			return fmt.Errorf("load task: %w", err)
		}

		if err := fn(&task); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&task).Error; err != nil {
			return fmt.Errorf("save task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task and its comments
func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.Comment{}).Error; err != nil {
			return fmt.Errorf("delete task comments: %w", err)
		}
		result := tx.Delete(&model.Task{}, task.ID)
		if result.Error != nil {
			return fmt.Errorf("delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

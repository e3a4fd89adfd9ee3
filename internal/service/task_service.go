package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tasktracker/internal/logger"
	"tasktracker/internal/metrics"
	"tasktracker/internal/model"
	"tasktracker/internal/patch"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskInput is the payload of a task creation.
type TaskInput struct {
	Title        string
	Description  string
	AssigneeUUID *uuid.UUID
	// Accepted for compatibility; a task created completed gets no
	// completion timestamp, that is only set by a transition.
	IsCompleted bool
}

// TaskPatch is a partial update. An explicit null assignee clears it.
type TaskPatch struct {
	Title        patch.Field[string]
	Description  patch.Field[string]
	IsCompleted  patch.Field[bool]
	AssigneeUUID patch.Field[uuid.UUID]
}

// TaskFilter narrows a task listing. Creator and assignee are public user
// UUIDs; one that matches no user narrows the listing to nothing.
type TaskFilter struct {
	CreatorUUID  *uuid.UUID
	AssigneeUUID *uuid.UUID
	IsCompleted  *bool
	Search       string
	Ordering     []repository.Order
	Page         PageRequest
}

type TaskService struct {
	tasks TaskStore
	users UserStore
	now   func() time.Time
}

func NewTaskService(tasks TaskStore, users UserStore) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", NewValidationError("title", "This field may not be blank.")
	}
	if utf8.RuneCountInString(title) > model.TitleMaxLength {
		return "", NewValidationError("title",
			fmt.Sprintf("Ensure this field has no more than %d characters.", model.TitleMaxLength))
	}
	return title, nil
}

// resolveAssignee fails the whole operation when the UUID matches nobody.
func (s *TaskService) resolveAssignee(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.users.FindByUUID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, NewValidationError("assignee_uuid", "User with this UUID does not exist.")
	}
	if err != nil {
		return nil, fmt.Errorf("resolve assignee: %w", err)
	}
	return u, nil
}

func (s *TaskService) Create(ctx context.Context, caller *model.User, in TaskInput) (*model.Task, error) {
	if err := Authorize(caller, nil, ActionCreate); err != nil {
		return nil, err
	}
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:       title,
		Description: in.Description,
		CreatorID:   caller.ID,
		Creator:     *caller,
		IsCompleted: in.IsCompleted,
	}
	if in.AssigneeUUID != nil {
		assignee, err := s.resolveAssignee(ctx, *in.AssigneeUUID)
		if err != nil {
			return nil, err
		}
		task.Assign(assignee)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	logger.Info("Service: task created",
		zap.String("task_uuid", task.UUID.String()),
		zap.String("creator_uuid", caller.UUID.String()))
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, caller *model.User, id uuid.UUID) (*model.Task, error) {
	if caller == nil {
		return nil, NewUnauthenticated("")
	}
	task, err := s.tasks.FindByUUID(ctx, id)
	if err != nil {
		return nil, fromStore(err, "get task", "Task", id.String())
	}
	if err := Authorize(caller, task, ActionRetrieve); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, caller *model.User, filter TaskFilter) (Page[model.Task], error) {
	if err := Authorize(caller, nil, ActionList); err != nil {
		return Page[model.Task]{}, err
	}
	req := filter.Page.normalize()
	query := repository.TaskQuery{
		IsCompleted: filter.IsCompleted,
		Search:      filter.Search,
		Ordering:    filter.Ordering,
		Page:        req.window(),
	}

	var matchesNothing bool
	if filter.CreatorUUID != nil {
		id, found, err := s.userKey(ctx, *filter.CreatorUUID)
		if err != nil {
			return Page[model.Task]{}, err
		}
		query.CreatorID = &id
		matchesNothing = matchesNothing || !found
	}
	if filter.AssigneeUUID != nil {
		id, found, err := s.userKey(ctx, *filter.AssigneeUUID)
		if err != nil {
			return Page[model.Task]{}, err
		}
		query.AssigneeID = &id
		matchesNothing = matchesNothing || !found
	}
	if matchesNothing {
		return newPage[model.Task](nil, 0, req)
	}

	tasks, count, err := s.tasks.List(ctx, query)
	if err != nil {
		return Page[model.Task]{}, fmt.Errorf("list tasks: %w", err)
	}
	return newPage(tasks, count, req)
}

// userKey translates a public UUID into the internal key used for filtering.
func (s *TaskService) userKey(ctx context.Context, id uuid.UUID) (uint, bool, error) {
	u, err := s.users.FindByUUID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolve filter user: %w", err)
	}
	return u.ID, true, nil
}

func (s *TaskService) validatePatch(p TaskPatch) (TaskPatch, error) {
	if p.Title.Set {
		if p.Title.Null {
			return p, NewValidationError("title", "This field may not be null.")
		}
		title, err := validateTitle(p.Title.Value)
		if err != nil {
			return p, err
		}
		p.Title.Value = title
	}
	if p.IsCompleted.Set && p.IsCompleted.Null {
		return p, NewValidationError("is_completed", "This field may not be null.")
	}
	return p, nil
}

// Update applies a partial update. Existence and permission are checked
// first so that a caller without rights gets 403 before any validation
// message; the permission check is repeated against the locked row.
func (s *TaskService) Update(ctx context.Context, caller *model.User, id uuid.UUID, p TaskPatch) (*model.Task, error) {
	if caller == nil {
		return nil, NewUnauthenticated("")
	}
	current, err := s.tasks.FindByUUID(ctx, id)
	if err != nil {
		return nil, fromStore(err, "get task", "Task", id.String())
	}
	if err := Authorize(caller, current, ActionUpdate); err != nil {
		return nil, err
	}

	p, err = s.validatePatch(p)
	if err != nil {
		return nil, err
	}
	var assignee *model.User
	if p.AssigneeUUID.Present() {
		assignee, err = s.resolveAssignee(ctx, p.AssigneeUUID.Value)
		if err != nil {
			return nil, err
		}
	}

	flipped := false
	updated, err := s.tasks.Modify(ctx, id, func(task *model.Task) error {
		if err := Authorize(caller, task, ActionUpdate); err != nil {
			return err
		}
		if p.Title.Present() {
			task.Title = p.Title.Value
		}
		if p.Description.Set {
			task.Description = p.Description.Value
		}
		if p.AssigneeUUID.Set {
			task.Assign(assignee)
		}
		if p.IsCompleted.Present() {
			flipped = task.SetCompleted(p.IsCompleted.Value, s.now())
		}
		return nil
	})
	if err != nil {
		return nil, fromStore(err, "update task", "Task", id.String())
	}

	if flipped {
		metrics.ObserveTransition(updated.IsCompleted)
		logger.Info("Service: task completion changed",
			zap.String("task_uuid", updated.UUID.String()),
			zap.Bool("is_completed", updated.IsCompleted))
	}
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if caller == nil {
		return NewUnauthenticated("")
	}
	task, err := s.tasks.FindByUUID(ctx, id)
	if err != nil {
		return fromStore(err, "get task", "Task", id.String())
	}
	if err := Authorize(caller, task, ActionDelete); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, task); err != nil {
		return fromStore(err, "delete task", "Task", id.String())
	}
	logger.Info("Service: task deleted",
		zap.String("task_uuid", id.String()),
		zap.String("caller_uuid", caller.UUID.String()))
	return nil
}

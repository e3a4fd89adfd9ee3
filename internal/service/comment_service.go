package service

import (
	"context"
	"fmt"
	"strings"

	"tasktracker/internal/model"

	"github.com/google/uuid"
)

// CommentService exposes the discussion under a task: any authenticated user
// may read and write it. Comments are never edited or removed here.
type CommentService struct {
	comments CommentStore
	tasks    TaskStore
}

func NewCommentService(comments CommentStore, tasks TaskStore) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

// Task resolves the task a discussion belongs to.
func (s *CommentService) Task(ctx context.Context, caller *model.User, taskID uuid.UUID) (*model.Task, error) {
	if err := Authorize(caller, nil, ActionComment); err != nil {
		return nil, err
	}
	task, err := s.tasks.FindByUUID(ctx, taskID)
	if err != nil {
		return nil, fromStore(err, "get task", "Task", taskID.String())
	}
	return task, nil
}

func (s *CommentService) Create(ctx context.Context, caller *model.User, taskID uuid.UUID, text string) (*model.Comment, error) {
	task, err := s.Task(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewValidationError("text", "This field may not be blank.")
	}

	comment := &model.Comment{
		TaskID:   task.ID,
		Task:     task,
		AuthorID: caller.ID,
		Author:   *caller,
		Text:     text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, caller *model.User, taskID, commentID uuid.UUID) (*model.Comment, error) {
	task, err := s.Task(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}
	comment, err := s.comments.FindByUUID(ctx, task.ID, commentID)
	if err != nil {
		return nil, fromStore(err, "get comment", "Comment", commentID.String())
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, caller *model.User, taskID uuid.UUID, page PageRequest) (Page[model.Comment], error) {
	task, err := s.Task(ctx, caller, taskID)
	if err != nil {
		return Page[model.Comment]{}, err
	}
	req := page.normalize()
	comments, count, err := s.comments.ListByTask(ctx, task.ID, req.window())
	if err != nil {
		return Page[model.Comment]{}, fmt.Errorf("list comments: %w", err)
	}
	return newPage(comments, count, req)
}

package handler

import (
	"time"

	"tasktracker/internal/model"

	"github.com/google/uuid"
)

type UserResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type TaskResponse struct {
	UUID        uuid.UUID     `json:"uuid"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Creator     UserResponse  `json:"creator"`
	Assignee    *UserResponse `json:"assignee"`
	IsCompleted bool          `json:"is_completed"`
	CompletedAt *time.Time    `json:"completed_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CommentResponse struct {
	UUID      uuid.UUID    `json:"uuid"`
	TaskUUID  uuid.UUID    `json:"task_uuid"`
	Author    UserResponse `json:"author"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PageResponse is the list envelope.
type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		UUID:      u.UUID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewTaskResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		UUID:        t.UUID,
		Title:       t.Title,
		Description: t.Description,
		Creator:     NewUserResponse(&t.Creator),
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
	if t.Assignee != nil {
		a := NewUserResponse(t.Assignee)
		resp.Assignee = &a
	}
	if t.CompletedAt != nil {
		ts := t.CompletedAt.UTC()
		resp.CompletedAt = &ts
	}
	return resp
}

func NewCommentResponse(cm *model.Comment, taskUUID uuid.UUID) CommentResponse {
	if cm.Task != nil {
		taskUUID = cm.Task.UUID
	}
	return CommentResponse{
		UUID:      cm.UUID,
		TaskUUID:  taskUUID,
		Author:    NewUserResponse(&cm.Author),
		Text:      cm.Text,
		CreatedAt: cm.CreatedAt.UTC(),
		UpdatedAt: cm.UpdatedAt.UTC(),
	}
}

// Package seed fills an empty database with demo users, tasks and comments.
// Running it again skips what already exists.
package seed

import (
	"context"
	"errors"
	"fmt"

	"tasktracker/internal/auth"
	"tasktracker/internal/logger"
	"tasktracker/internal/model"
	"tasktracker/internal/patch"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"go.uber.org/zap"
)

type userSeed struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Admin     bool
}

type taskSeed struct {
	Title       string
	Description string
	Creator     string
	Assignee    string
	Completed   bool
	Comments    []commentSeed
}

type commentSeed struct {
	Author string
	Text   string
}

var users = []userSeed{
	{Username: "admin", Email: "admin@example.com", Password: "admin123", FirstName: "Admin", LastName: "User", Admin: true},
	{Username: "john_doe", Email: "john@example.com", Password: "john123", FirstName: "John", LastName: "Doe"},
	{Username: "jane_smith", Email: "jane@example.com", Password: "jane123", FirstName: "Jane", LastName: "Smith"},
	{Username: "bob_wilson", Email: "bob@example.com", Password: "bob123", FirstName: "Bob", LastName: "Wilson"},
}

var tasks = []taskSeed{
	{
		Title:       "Setup development environment",
		Description: "Install all required dependencies and configure IDE",
		Creator:     "admin", Assignee: "john_doe", Completed: true,
		Comments: []commentSeed{
			{Author: "john_doe", Text: "Environment is set up and ready to go!"},
			{Author: "admin", Text: "Great job! Moving to the next phase."},
		},
	},
	{
		Title:       "Design database schema",
		Description: "Create ERD diagram and define all tables and relationships",
		Creator:     "admin", Assignee: "jane_smith", Completed: true,
		Comments: []commentSeed{
			{Author: "jane_smith", Text: "Initial schema design completed. Please review."},
			{Author: "admin", Text: "Looks good! Approved."},
		},
	},
	{
		Title:       "Implement authentication API",
		Description: "Create JWT authentication endpoints and user registration",
		Creator:     "john_doe", Assignee: "john_doe",
		Comments: []commentSeed{
			{Author: "john_doe", Text: "Working on JWT implementation. ETA: 2 days."},
		},
	},
	{
		Title:       "Write unit tests",
		Description: "Add comprehensive test coverage for all models and services",
		Creator:     "john_doe", Assignee: "bob_wilson",
		Comments: []commentSeed{
			{Author: "bob_wilson", Text: "Started writing tests for user models."},
		},
	},
	{
		Title:       "Create API documentation",
		Description: "Generate OpenAPI documentation with examples",
		Creator:     "jane_smith", Assignee: "jane_smith",
		Comments: []commentSeed{
			{Author: "jane_smith", Text: "Serving the swagger document from the API."},
		},
	},
	{
		Title:       "Setup CI/CD pipeline",
		Description: "Configure automated testing and deployment",
		Creator:     "admin",
		Comments: []commentSeed{
			{Author: "admin", Text: "Need to decide between GitHub Actions and GitLab CI."},
		},
	},
}

// Stores is what the seeder writes through.
type Stores struct {
	Users    service.UserStore
	Tasks    service.TaskStore
	Comments service.CommentStore
}

// Summary counts what a run created.
type Summary struct {
	Users    int
	Tasks    int
	Comments int
}

func Run(ctx context.Context, st Stores) (Summary, error) {
	var sum Summary
	taskSvc := service.NewTaskService(st.Tasks, st.Users)
	commentSvc := service.NewCommentService(st.Comments, st.Tasks)

	byName := make(map[string]*model.User, len(users))
	for _, us := range users {
		u, created, err := ensureUser(ctx, st.Users, us)
		if err != nil {
			return sum, err
		}
		byName[us.Username] = u
		if created {
			sum.Users++
		}
	}

	for _, ts := range tasks {
		creator := byName[ts.Creator]
		exists, err := taskExists(ctx, st.Tasks, creator, ts.Title)
		if err != nil {
			return sum, err
		}
		if exists {
			logger.Info("Seed: task already exists, skipping", zap.String("title", ts.Title))
			continue
		}

		in := service.TaskInput{Title: ts.Title, Description: ts.Description}
		if a, ok := byName[ts.Assignee]; ok {
			in.AssigneeUUID = &a.UUID
		}
		task, err := taskSvc.Create(ctx, creator, in)
		if err != nil {
			return sum, fmt.Errorf("seed task %q: %w", ts.Title, err)
		}
		if ts.Completed {
			if _, err := taskSvc.Update(ctx, creator, task.UUID, service.TaskPatch{IsCompleted: patch.Of(true)}); err != nil {
				return sum, fmt.Errorf("complete task %q: %w", ts.Title, err)
			}
		}
		sum.Tasks++
		logger.Info("Seed: task created",
			zap.String("title", ts.Title),
			zap.String("creator", ts.Creator),
			zap.String("assignee", ts.Assignee),
			zap.Bool("is_completed", ts.Completed))

		for _, cs := range ts.Comments {
			if _, err := commentSvc.Create(ctx, byName[cs.Author], task.UUID, cs.Text); err != nil {
				return sum, fmt.Errorf("seed comment on %q: %w", ts.Title, err)
			}
			sum.Comments++
		}
	}
	return sum, nil
}

func ensureUser(ctx context.Context, store service.UserStore, us userSeed) (*model.User, bool, error) {
	existing, err := store.FindByUsername(ctx, us.Username)
	if err == nil {
		logger.Info("Seed: user already exists, skipping", zap.String("username", us.Username))
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, fmt.Errorf("find user %q: %w", us.Username, err)
	}

	hash, err := auth.HashPassword(us.Password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		Username:       us.Username,
		Email:          us.Email,
		FirstName:      us.FirstName,
		LastName:       us.LastName,
		HashedPassword: hash,
		IsActive:       true,
		IsStaff:        us.Admin,
		IsSuperuser:    us.Admin,
	}
	if err := store.Create(ctx, u); err != nil {
		return nil, false, fmt.Errorf("create user %q: %w", us.Username, err)
	}
	logger.Info("Seed: user created", zap.String("username", us.Username), zap.Bool("admin", us.Admin))
	return u, true, nil
}

func taskExists(ctx context.Context, store service.TaskStore, creator *model.User, title string) (bool, error) {
	found, _, err := store.List(ctx, repository.TaskQuery{CreatorID: &creator.ID, Search: title})
	if err != nil {
		return false, fmt.Errorf("look up task %q: %w", title, err)
	}
	for _, t := range found {
		if t.Title == title {
			return true, nil
		}
	}
	return false, nil
}

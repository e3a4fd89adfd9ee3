package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_CreateAndFind(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	creator := createUser(t, db, "john_doe")
	assignee := createUser(t, db, "jane_smith")
	task := createTask(t, db, creator, "Write docs", assignee)

	assert.NotZero(t, task.ID)
	assert.NotEqual(t, uuid.Nil, task.UUID)
	assert.False(t, task.CreatedAt.IsZero())

	found, err := repo.FindByUUID(ctx, task.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Write docs", found.Title)
	assert.Equal(t, "john_doe", found.Creator.Username)
	require.NotNil(t, found.Assignee)
	assert.Equal(t, "jane_smith", found.Assignee.Username)
	assert.False(t, found.IsCompleted)
	assert.Nil(t, found.CompletedAt)
}

func TestTaskRepository_FindByUUID_NotFound(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)

	task, err := repo.FindByUUID(context.Background(), uuid.New())

	assert.Nil(t, task)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskRepository_List_Filters(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	john := createUser(t, db, "john_doe")
	jane := createUser(t, db, "jane_smith")
	createTask(t, db, john, "Alpha", jane)
	createTask(t, db, john, "Beta", nil)
	done := createTask(t, db, jane, "Gamma", john)
	_, err := repo.Modify(ctx, done.UUID, func(task *model.Task) error {
		task.SetCompleted(true, time.Now())
		return nil
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		query  repository.TaskQuery
		titles []string
	}{
		{"all", repository.TaskQuery{}, []string{"Gamma", "Beta", "Alpha"}},
		{"by creator", repository.TaskQuery{CreatorID: &john.ID}, []string{"Beta", "Alpha"}},
		{"by assignee", repository.TaskQuery{AssigneeID: &jane.ID}, []string{"Alpha"}},
		{"completed", repository.TaskQuery{IsCompleted: ptr(true)}, []string{"Gamma"}},
		{"open", repository.TaskQuery{IsCompleted: ptr(false)}, []string{"Beta", "Alpha"}},
		{"search", repository.TaskQuery{Search: "ALP"}, []string{"Alpha"}},
		{"creator and open", repository.TaskQuery{CreatorID: &jane.ID, IsCompleted: ptr(false)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, count, err := repo.List(ctx, tt.query)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.titles), count)
			assert.Equal(t, tt.titles, titles(tasks))
		})
	}
}

func TestTaskRepository_List_SearchEscapesWildcards(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)

	john := createUser(t, db, "john_doe")
	createTask(t, db, john, "100% done", nil)
	createTask(t, db, john, "1000 things", nil)

	tasks, count, err := repo.List(context.Background(), repository.TaskQuery{Search: "0%"})

	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, []string{"100% done"}, titles(tasks))
}

func TestTaskRepository_List_OrderingAndPages(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	john := createUser(t, db, "john_doe")
	for _, title := range []string{"Charlie", "Alpha", "Echo", "Bravo", "Delta"} {
		createTask(t, db, john, title, nil)
	}

	tasks, count, err := repo.List(ctx, repository.TaskQuery{
		Ordering: []repository.Order{{Field: "title"}},
		Page:     repository.Page{Offset: 2, Limit: 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
	assert.Equal(t, []string{"Charlie", "Delta"}, titles(tasks))

	tasks, _, err = repo.List(ctx, repository.TaskQuery{
		Ordering: []repository.Order{{Field: "title", Desc: true}, {Field: "bogus"}},
		Page:     repository.Page{Limit: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Echo"}, titles(tasks))
}

func TestTaskRepository_Modify(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	john := createUser(t, db, "john_doe")
	jane := createUser(t, db, "jane_smith")
	task := createTask(t, db, john, "Draft", jane)
	completedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	updated, err := repo.Modify(ctx, task.UUID, func(task *model.Task) error {
		task.Title = "Final"
		task.Assign(nil)
		task.SetCompleted(true, completedAt)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Nil(t, updated.Assignee)

	reloaded, err := repo.FindByUUID(ctx, task.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Final", reloaded.Title)
	assert.Nil(t, reloaded.AssigneeID)
	assert.True(t, reloaded.IsCompleted)
	require.NotNil(t, reloaded.CompletedAt)
	assert.True(t, completedAt.Equal(*reloaded.CompletedAt))
	assert.Equal(t, "john_doe", reloaded.Creator.Username)
}

func TestTaskRepository_Modify_ErrorRollsBack(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	john := createUser(t, db, "john_doe")
	task := createTask(t, db, john, "Keep me", nil)
	boom := errors.New("boom")

	_, err := repo.Modify(ctx, task.UUID, func(task *model.Task) error {
		task.Title = "Changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	reloaded, err := repo.FindByUUID(ctx, task.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", reloaded.Title)
}

func TestTaskRepository_Modify_NotFound(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)

	called := false
	_, err := repo.Modify(context.Background(), uuid.New(), func(*model.Task) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.False(t, called)
}

func TestTaskRepository_Delete(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	john := createUser(t, db, "john_doe")
	task := createTask(t, db, john, "Short lived", nil)
	other := createTask(t, db, john, "Stays", nil)
	createComment(t, db, task, john, "first")
	createComment(t, db, other, john, "second")

	require.NoError(t, repo.Delete(ctx, task))

	_, err := repo.FindByUUID(ctx, task.UUID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	var remaining int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	assert.ErrorIs(t, repo.Delete(ctx, task), repository.ErrTaskNotFound)
}

func TestUserRepository_Delete_Cascades(t *testing.T) {
	db := setupSQLite(t)
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	ctx := context.Background()

	john := createUser(t, db, "john_doe")
	jane := createUser(t, db, "jane_smith")
	owned := createTask(t, db, john, "John's task", jane)
	assigned := createTask(t, db, jane, "Jane's task", john)
	createComment(t, db, owned, jane, "on john's task")
	createComment(t, db, assigned, john, "john on jane's task")
	createComment(t, db, assigned, jane, "jane on her task")

	require.NoError(t, users.Delete(ctx, john))

	_, err := users.FindByUUID(ctx, john.UUID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = tasks.FindByUUID(ctx, owned.UUID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	kept, err := tasks.FindByUUID(ctx, assigned.UUID)
	require.NoError(t, err)
	assert.Nil(t, kept.AssigneeID)
	assert.Nil(t, kept.Assignee)

	var texts []string
	require.NoError(t, db.Model(&model.Comment{}).Order("id").Pluck("text", &texts).Error)
	assert.Equal(t, []string{"jane on her task"}, texts)
}

func TestUserRepository_SQLite_DuplicateUsername(t *testing.T) {
	db := setupSQLite(t)
	createUser(t, db, "john_doe")

	err := repository.NewUserRepository(db).Create(context.Background(), &model.User{
		Username:       "john_doe",
		HashedPassword: "x",
	})

	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUserRepository_SQLite_ListSearch(t *testing.T) {
	db := setupSQLite(t)
	repo := repository.NewUserRepository(db)

	createUser(t, db, "zed")
	createUser(t, db, "a_b")
	createUser(t, db, "axb")

	users, count, err := repo.List(context.Background(), repository.UserQuery{Search: "_"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, users, 1)
	assert.Equal(t, "a_b", users[0].Username)

	users, count, err = repo.List(context.Background(), repository.UserQuery{Page: repository.Page{Limit: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.Equal(t, "a_b", users[0].Username)
	assert.Equal(t, "axb", users[1].Username)
}

func ptr[T any](v T) *T { return &v }

func titles(tasks []model.Task) []string {
	var out []string
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

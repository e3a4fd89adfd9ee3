package repository_test

import (
	"context"
	"testing"

	"tasktracker/internal/auth"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection, one in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	u := &model.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: hash,
		IsActive:       true,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), u))
	return u
}

func createTask(t *testing.T, db *gorm.DB, creator *model.User, title string, assignee *model.User) *model.Task {
	t.Helper()
	task := &model.Task{Title: title, CreatorID: creator.ID}
	task.Assign(assignee)
	require.NoError(t, repository.NewTaskRepository(db).Create(context.Background(), task))
	return task
}

func createComment(t *testing.T, db *gorm.DB, task *model.Task, author *model.User, text string) *model.Comment {
	t.Helper()
	c := &model.Comment{TaskID: task.ID, AuthorID: author.ID, Text: text}
	require.NoError(t, repository.NewCommentRepository(db).Create(context.Background(), c))
	return c
}

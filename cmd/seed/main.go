package main

import (
	"context"
	"fmt"
	"os"

	"tasktracker/internal/config"
	"tasktracker/internal/logger"
	"tasktracker/internal/repository"
	"tasktracker/internal/seed"
	"tasktracker/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(true); err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := server.OpenDB(cfg)
	if err != nil {
		logger.Error("Seed: database unavailable", err)
		logger.Sync()
		os.Exit(1)
	}

	sum, err := seed.Run(context.Background(), seed.Stores{
		Users:    repository.NewUserRepository(db),
		Tasks:    repository.NewTaskRepository(db),
		Comments: repository.NewCommentRepository(db),
	})
	if err != nil {
		logger.Error("Seed: failed", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("Seed: completed",
		zap.Int("users", sum.Users),
		zap.Int("tasks", sum.Tasks),
		zap.Int("comments", sum.Comments))
}

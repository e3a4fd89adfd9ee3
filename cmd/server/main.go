package main

import (
	"fmt"
	"os"

	_ "tasktracker/docs"
	"tasktracker/internal/config"
	"tasktracker/internal/logger"
	"tasktracker/internal/server"
)

// @title           Task Tracker API
// @version         1.0
// @description     API for tracking tasks, their assignees and discussion.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogDevelopment); err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if !cfg.EnvFile {
		logger.Warn("Config: no .env file found, using system environment variables")
	}

	s, err := server.Init(cfg)
	if err != nil {
		logger.Error("Server: initialization failed", err)
		logger.Sync()
		os.Exit(1)
	}

	code := s.Run()
	logger.Sync()
	os.Exit(code)
}

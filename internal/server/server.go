package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"tasktracker/internal/auth"
	"tasktracker/internal/config"
	"tasktracker/internal/handler"
	"tasktracker/internal/logger"
	"tasktracker/internal/middleware"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Server: connected to database", zap.String("driver", cfg.DBDriver))

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	tokens := auth.NewTokenManager(auth.Config{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.JWTAccessTTL,
		RefreshTTL: cfg.JWTRefreshTTL,
	})

	switch cfg.GinMode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	r := NewEngine(handler.Routes{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, tokens)),
		Tasks:    handler.NewTaskHandler(service.NewTaskService(taskRepo, userRepo), handler.Pager{DefaultSize: cfg.PageSize}),
		Comments: handler.NewCommentHandler(service.NewCommentService(commentRepo, taskRepo), handler.Pager{DefaultSize: cfg.PageSize}),
		Users:    handler.NewUserHandler(service.NewUserService(userRepo), handler.Pager{DefaultSize: cfg.PageSize}),
	}, middleware.JWTAuthMiddleware(tokens, userRepo))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

// NewEngine builds the router with the ambient middleware, the API under
// /api and the operational endpoints.
func NewEngine(routes handler.Routes, authenticated gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(), middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(r.Group("/api"), authenticated)
	return r
}

// Run serves until SIGINT or SIGTERM, then drains the HTTP server and closes
// the database. The returned value is the process exit code.
func (s *Server) Run() int {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server: listening", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server: failed to listen", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("Server: shutting down")
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				sqlDB, err := s.DB.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		},
	)

	code := <-wait
	logger.Info("Server: exited", zap.Int("code", code))
	return code
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"todoapi/internal/config"
	"todoapi/internal/handler"
	"todoapi/internal/middleware"
	"todoapi/internal/models"
	"todoapi/internal/repository"
	"todoapi/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	log    *logrus.Logger
}

func NewServer(db *mongo.Database, cfg *config.Config, logger *zap.Logger, log *logrus.Logger) *Server {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	s := &Server{
		router: router,
		cfg:    cfg,
		log:    log,
	}

	s.setupRoutes(db, logger)

	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes(db *mongo.Database, logger *zap.Logger) {
	tokens := service.NewTokenManager(s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL)

	userRepo := repository.NewUserRepository(db, logger)
	authService := service.NewAuthService(userRepo, tokens, s.cfg.Auth.BcryptCost, logger)
	authHandler := handler.NewAuthHandler(authService, s.log)

	todoRepo := repository.NewTodoRepository(db, logger)
	todoService := service.NewTodoService(todoRepo, logger)
	todoHandler := handler.NewTodoHandler(todoService, s.log)

	RegisterRoutes(s.router, authHandler, todoHandler, tokens, logger)

	// Single-page client
	s.router.StaticFile("/", "./web/index.html")
	s.router.StaticFile("/app.js", "./web/app.js")
}

// RegisterRoutes wires the HTTP surface onto the given engine. Mutating todo
// routes stack RequireAuth before RequireRole so a missing token is always a
// 401, never a 403.
func RegisterRoutes(router *gin.Engine, authHandler handler.AuthHandler, todoHandler handler.TodoHandler, tokens *service.TokenManager, logger *zap.Logger) {
	// Ping route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	todos := router.Group("/todos")
	todos.Use(middleware.RequireAuth(tokens, logger))
	{
		todos.GET("", todoHandler.GetAllTodos)

		admin := todos.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin, logger))
		{
			admin.POST("", todoHandler.CreateTodo)
			admin.PUT("/:id", todoHandler.UpdateTodo)
			admin.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Server starting on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

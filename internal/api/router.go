package api

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todoapp/task-manager/internal/api/handler"
	"github.com/todoapp/task-manager/internal/api/middleware"
	"github.com/todoapp/task-manager/internal/core/ports"
	httpinfra "github.com/todoapp/task-manager/internal/infrastructure/http"
)

// Dependencies are the collaborators the router wires into handlers. DB and
// Redis are only used by the readiness probe and may be nil in tests.
type Dependencies struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Auth   ports.AuthService
	Tokens ports.TokenVerifier
	Tasks  ports.TaskService
	Logger zerolog.Logger
	HTTP   httpinfra.Options
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := httpinfra.NewRouter(deps.DB, deps.Redis, deps.Logger, deps.HTTP)
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	authHandler := handler.NewAuthHandler(deps.Auth)
	taskHandler := handler.NewTaskHandler(deps.Tasks)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Task routes (token required) ---
	tasks := e.Group("/tasks", middleware.Auth(deps.Tokens))
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return e
}

package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasktrack/internal/auth"
	"tasktrack/internal/config"
	"tasktrack/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	departmentHandler *handler.DepartmentHandler,
	eventHandler *handler.EventHandler,
	taskHandler *handler.TaskHandler,
	assignmentHandler *handler.AssignmentHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Authentication phase: every route below requires a verified bearer token.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	}))

	// Any authenticated identity
	secured.GET("/auth/profile", authHandler.Profile)
	secured.GET("/tasks/my-tasks", taskHandler.GetMyTasks)
	secured.GET("/tasks/:id", taskHandler.GetTask)

	// Administrator-only operations
	adminOnly := auth.RequireAdministrator()

	secured.POST("/auth/register", authHandler.Register, adminOnly)
	secured.GET("/users", userHandler.List, adminOnly)

	secured.POST("/tasks/upload-csv/:eventId", taskHandler.UploadCSV, adminOnly)
	secured.GET("/tasks/event/:eventId", taskHandler.GetEventTasks, adminOnly)

	departments := secured.Group("/departments", adminOnly)
	departments.POST("", departmentHandler.Create)
	departments.GET("", departmentHandler.List)
	departments.GET("/:id", departmentHandler.Get)
	departments.PATCH("/:id", departmentHandler.Update)
	departments.DELETE("/:id", departmentHandler.Remove)

	events := secured.Group("/events", adminOnly)
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)
	events.GET("/:id", eventHandler.Get)
	events.PATCH("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Remove)

	assignments := secured.Group("/assignments", adminOnly)
	assignments.POST("", assignmentHandler.Create)
	assignments.GET("/task/:taskId", assignmentHandler.FindByTask)
	assignments.DELETE("/:id", assignmentHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

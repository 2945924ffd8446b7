package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "tasktrack/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"tasktrack/internal/auth"
	"tasktrack/internal/cache"
	"tasktrack/internal/config"
	"tasktrack/internal/db"
	"tasktrack/internal/handler"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
	"tasktrack/internal/router"
	"tasktrack/internal/service"
)

// @title Event Task Coordination API
// @version 1.0
// @description Event-based task tracking: CSV task import, assignments, and role-gated access with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.UsingDefaultJWTSecret() {
		log.Println("WARNING: JWT_SECRET is not set; using the insecure development default. Never deploy like this.")
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Assignment{},
			&model.Task{},
			&model.Event{},
			&model.User{},
			&model.Department{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Event{},
		&model.Task{},
		&model.Assignment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	departmentRepo := repository.NewDepartmentRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	assignmentRepo := repository.NewAssignmentRepository(gormDB)

	// Initialize auth and services
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authService := service.NewAuthService(userRepo, departmentRepo, jwtService, cacheClient)
	userService := service.NewUserService(userRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	taskService := service.NewTaskService(eventRepo, taskRepo, service.NewCSVParser())
	assignmentService := service.NewAssignmentService(assignmentRepo, taskRepo, userRepo, departmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	eventHandler := handler.NewEventHandler(eventService)
	taskHandler := handler.NewTaskHandler(taskService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		departmentHandler,
		eventHandler,
		taskHandler,
		assignmentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

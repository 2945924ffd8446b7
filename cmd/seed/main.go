package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktrack/internal/config"
	"tasktrack/internal/db"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

const bcryptCost = 10

// seedUser pairs a user to create with the env var naming its password.
type seedUser struct {
	name        string
	emailEnv    string
	passwordEnv string
	role        string
	department  string // empty for administrators
}

var departments = []string{"Technical", "Logistics", "Operations", "HR"}

var users = []seedUser{
	{name: "Administrator", emailEnv: "SEED_ADMIN_EMAIL", passwordEnv: "SEED_ADMIN_PASSWORD", role: model.RoleAdministrator},
	{name: "Technical Member", emailEnv: "SEED_TECH_EMAIL", passwordEnv: "SEED_TECH_PASSWORD", role: model.RoleDepartmentMember, department: "Technical"},
	{name: "Logistics Member", emailEnv: "SEED_LOGISTICS_EMAIL", passwordEnv: "SEED_LOGISTICS_PASSWORD", role: model.RoleDepartmentMember, department: "Logistics"},
	{name: "Operations Member", emailEnv: "SEED_OPERATIONS_EMAIL", passwordEnv: "SEED_OPERATIONS_PASSWORD", role: model.RoleDepartmentMember, department: "Operations"},
	{name: "HR Member", emailEnv: "SEED_HR_EMAIL", passwordEnv: "SEED_HR_PASSWORD", role: model.RoleDepartmentMember, department: "HR"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Event{},
		&model.Task{},
		&model.Assignment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// All seed credentials must come from the environment. No defaults: a
	// missing variable aborts the whole run before anything is written.
	if missing := missingEnvVars(); len(missing) > 0 {
		log.Fatalf("Missing required seed credentials in environment: %v", missing)
	}

	ctx := context.Background()
	departmentRepo := repository.NewDepartmentRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	departmentIDs, err := seedDepartments(ctx, departmentRepo)
	if err != nil {
		log.Fatalf("Failed to seed departments: %v", err)
	}
	log.Printf("Departments ready: %d", len(departmentIDs))

	created, skipped, err := seedUsers(ctx, userRepo, departmentIDs)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users already present: %d", skipped)
}

func missingEnvVars() []string {
	var missing []string
	for _, u := range users {
		for _, key := range []string{u.emailEnv, u.passwordEnv} {
			if os.Getenv(key) == "" {
				missing = append(missing, key)
			}
		}
	}
	return missing
}

// seedDepartments upserts the bootstrap departments by name and returns their ids.
func seedDepartments(ctx context.Context, repo repository.DepartmentRepository) (map[string]uint, error) {
	ids := make(map[string]uint, len(departments))
	for _, name := range departments {
		existing, err := repo.FindByName(ctx, name)
		if err == nil {
			ids[name] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check department %s: %w", name, err)
		}

		department := &model.Department{Name: name}
		if err := repo.Create(ctx, department); err != nil {
			return nil, fmt.Errorf("create department %s: %w", name, err)
		}
		ids[name] = department.ID
	}
	return ids, nil
}

// seedUsers creates the bootstrap users, skipping emails that already exist.
func seedUsers(ctx context.Context, repo repository.UserRepository, departmentIDs map[string]uint) (created, skipped int, err error) {
	for _, u := range users {
		email := os.Getenv(u.emailEnv)
		password := os.Getenv(u.passwordEnv)

		existing, err := repo.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			skipped++
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, fmt.Errorf("check user %s: %w", email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return created, skipped, fmt.Errorf("hash password for %s: %w", email, err)
		}

		user := &model.User{
			Name:         u.name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         u.role,
		}
		if u.department != "" {
			id := departmentIDs[u.department]
			user.DepartmentID = &id
		}

		if err := repo.Create(ctx, user); err != nil {
			return created, skipped, fmt.Errorf("create user %s: %w", email, err)
		}
		created++
	}
	return created, skipped, nil
}

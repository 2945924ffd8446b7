package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktrack/internal/auth"
	"tasktrack/internal/cache"
	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

const bcryptCost = 10

const identityCacheTTL = 5 * time.Minute

// UserView is the identity shape returned by auth operations.
type UserView struct {
	ID           uint               `json:"id"`
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	Role         string             `json:"role"`
	DepartmentID *uint              `json:"department_id,omitempty"`
	Department   *DepartmentSummary `json:"department,omitempty"`
}

// RegisterInput carries the fields needed to create a user.
type RegisterInput struct {
	Email        string
	Password     string
	Name         string
	Role         string
	DepartmentID *uint
}

// AuthService handles credential verification, token issuance, and identity
// reconstruction.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *UserView, err error)
	Register(ctx context.Context, input RegisterInput) (*UserView, error)
	// ValidateUser reconstructs a live identity from a user id, typically the
	// subject claim of a verified token. It fails when the user no longer
	// exists, covering valid tokens that reference a deleted account.
	ValidateUser(ctx context.Context, userID uint) (*UserView, error)
}

type authService struct {
	userRepo       repository.UserRepository
	departmentRepo repository.DepartmentRepository
	jwtService     *auth.JWTService
	cache          *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	departmentRepo repository.DepartmentRepository,
	jwtService *auth.JWTService,
	cache *cache.Client,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		cache:          cache,
	}
}

func userView(u *model.User) *UserView {
	return &UserView{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		Department:   departmentSummary(u.Department),
	}
}

// Login verifies credentials and issues a signed token. An unknown email and a
// wrong password fail with the same error so responses never reveal whether an
// email is registered.
func (s *authService) Login(ctx context.Context, email, password string) (string, *UserView, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, userView(user), nil
}

// Register creates a user with a hashed password. The administrator-only
// restriction is enforced by the route's authorization phase, not here.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*UserView, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if input.DepartmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("check department existence: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	created, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load created user: %w", err)
	}
	return userView(created), nil
}

func (s *authService) cacheKey(userID uint) string {
	return fmt.Sprintf("identity:%d", userID)
}

// ValidateUser loads the live identity, with a short-lived cache in front of
// the database since it runs on every profile request.
func (s *authService) ValidateUser(ctx context.Context, userID uint) (*UserView, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached UserView
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	view := userView(user)
	if payload, err := json.Marshal(view); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, identityCacheTTL)
	}
	return view, nil
}

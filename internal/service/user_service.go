package service

import (
	"context"

	"tasktrack/internal/repository"
)

// UserService exposes user listing for administrators.
type UserService interface {
	List(ctx context.Context) ([]UserView, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]UserView, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, *userView(&users[i]))
	}
	return views, nil
}

package services

import (
	"fmt"

	"hotel-reservations/dto"
	"hotel-reservations/models"
	"hotel-reservations/repositories"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	return s.users.GetByID(userID)
}

func (s *UserService) GetByIDForAdmin(userID uint) (dto.UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// GetAllForAdmin returns all accounts sorted by id.
func (s *UserService) GetAllForAdmin() ([]dto.UserResponse, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserService) GetCurrent(userID uint) (dto.UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

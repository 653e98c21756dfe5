package services

import (
	"github.com/rlozl15/pypost/internal/models"
	"github.com/rlozl15/pypost/internal/permissions"
	"github.com/rlozl15/pypost/internal/repository"
)

// UserService handles public profile reads and owner-only profile updates
type UserService interface {
	GetProfile(userID uint) (*models.Profile, error)
	UpdateProfile(requester *models.User, userID uint, nickname, position, subjects string) (*models.Profile, error)
}

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile returns the profile of an account, readable by anyone
func (s *userService) GetProfile(userID uint) (*models.Profile, error) {
	return s.userRepo.FindProfileByUserID(userID)
}

// UpdateProfile updates nickname/position/subjects, owner only
func (s *userService) UpdateProfile(requester *models.User, userID uint, nickname, position, subjects string) (*models.Profile, error) {
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		return nil, err
	}

	if err := permissions.CanModify(requester, profile); err != nil {
		return nil, err
	}

	profile.Nickname = nickname
	profile.Position = position
	profile.Subjects = subjects

	if err := s.userRepo.UpdateProfile(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

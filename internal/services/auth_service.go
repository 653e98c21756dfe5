package services

import (
	"errors"

	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/models"
	"github.com/rlozl15/pypost/internal/repository"
	"github.com/rlozl15/pypost/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token resolution
type AuthService interface {
	Register(username, email, password, password2 string) (*models.User, error)
	Login(username, password string) (string, error)
	GetUserFromToken(value string) (*models.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates an AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register validates the input, creates the account with its token and empty
// profile, and returns the new user. Validation order: password confirmation,
// username uniqueness, email uniqueness, password strength.
func (s *authService) Register(username, email, password, password2 string) (*models.User, error) {
	if password != password2 {
		return nil, apperrors.NewValidation("password", "password fields do not match")
	}

	taken, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidation("username", "a user with that username already exists")
	}

	taken, err = s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidation("email", "a user with that email already exists")
	}

	if err := utils.ValidatePassword(password, username); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Register(user, utils.GenerateTokenValue()); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and returns the token issued at registration.
// Unknown usernames and wrong passwords fail the same way, as a validation
// error, so the response does not reveal whether the account exists.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewValidation("error", "unable to log in with provided credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.NewValidation("error", "unable to log in with provided credentials")
	}

	token, err := s.userRepo.FindTokenByUserID(user.ID)
	if err != nil {
		return "", err
	}

	return token.Value, nil
}

// GetUserFromToken resolves a bearer token to its user
func (s *authService) GetUserFromToken(value string) (*models.User, error) {
	user, err := s.userRepo.FindUserByTokenValue(value)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

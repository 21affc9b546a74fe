package services

import (
	"errors"
	"net/mail"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/apperrors"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/auth"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/dtos"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register validates the payload, hashes the password and creates the user.
// The plaintext password is never stored.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "Name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "Please include a valid email")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "Password must be 6 or more characters")
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "Role must be either candidate or employer")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.ErrConflict, "User with this email already exists")
		}
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns the matching user. The failure
// message is identical whether the email is unknown or the password is
// wrong, so callers can't probe which emails are registered.
func (s *UserService) Login(req *dtos.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrUnauthenticated, "Invalid credentials")
		}
		logger.Error().Err(err).Msg("Error looking up user for login")
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Invalid credentials")
	}
	return &user, nil
}

// GetByID resolves a token's embedded user id back to a live account.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrUnauthenticated, "Not authorized, user not found")
		}
		return nil, err
	}
	return &user, nil
}

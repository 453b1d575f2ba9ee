package services

import (
	"time"

	"devconnector_backend/internal/auth"
	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"
)

type UserService interface {
	Register(req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	CurrentUser(userID string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, jwtTTL time.Duration) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Register creates the user and returns a signed token. The avatar URL is
// derived deterministically from the email, and only the bcrypt hash of the
// password is stored.
func (s *UserServiceImpl) Register(req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Avatar:       auth.GravatarURL(req.Email),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user.ID)
}

func (s *UserServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user.ID)
}

func (s *UserServiceImpl) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) || apperrors.Is(err, repositories.ErrInvalidID) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}, nil
}

func (s *UserServiceImpl) issueToken(userID string) (*dto.TokenResponse, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{Token: token}, nil
}

package services

import (
	"errors"

	"travel_backend/internal/auth"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(db *gorm.DB, userID string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx := contextOf(db)
	emailAddr := models.NormalizeEmail(req.Email)

	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxWarn(ctx, "login failed", "email", emailAddr, "reason", "unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// same answer for a wrong password and a disabled account
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) || !user.Active {
		logger.CtxWarn(ctx, "login failed", "user_id", user.ID, "active", user.Active)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return &dto.LoginResponse{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *authService) Me(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}

package services

import (
	"servis_backend/internal/auth"
	"servis_backend/internal/models"
	"servis_backend/internal/repositories"
	"servis_backend/internal/services/dto"
	"servis_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(db *gorm.DB, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies the credentials and issues an access token. An unknown
// username and a wrong password fail with the same error, so the response
// never reveals which part was wrong.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:     true,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokens.ExpiresIn(),
	}, nil
}

// CurrentUser resolves the user behind a validated token.
func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

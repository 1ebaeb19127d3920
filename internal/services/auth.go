package services

import (
	"context"
	"errors"
	"fmt"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	"calibration-system/internal/repositories"
	apperrors "calibration-system/pkg/errors"
	"calibration-system/pkg/service"
	"calibration-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error)
	Me(ctx context.Context, userID int) (*entities.User, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtService service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		Username: payload.Username,
		FullName: payload.FullName,
		Password: hashed,
	}
	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("username %q is already taken: %w", payload.Username, apperrors.ErrConflict)
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", created.Username))
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(payload.Password, user.Password) {
		s.logger.Warn("failed login attempt", zap.String("username", payload.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User: dto.UserInfoDTO{
			Username: user.Username,
			FullName: user.FullName,
		},
	}, nil
}

func (s *AuthService) Me(ctx context.Context, userID int) (*entities.User, error) {
	return s.userRepo.FindUser(ctx, userID)
}

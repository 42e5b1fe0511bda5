package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/repositories"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/auth"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// validatePassword checks if password meets requirements
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidCredentials)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: password must contain at least one letter and one digit", apperrors.ErrInvalidCredentials)
	}

	return nil
}

// Login authenticates a user and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Do not reveal whether the email exists
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user for login: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	err = s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry())
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			TokenType:        "Bearer",
			ExpiresIn:        expiresIn,
			RefreshExpiresIn: refreshExpiresIn,
		},
		User: mapUserToResponse(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The used token is revoked so each refresh token works exactly once.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking used refresh token: %w", err)
	}

	accessToken, newRefreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	err = s.tokenRepo.CreateToken(ctx, newRefreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry())
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// Logout revokes the given refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}

	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			// Logout is idempotent
			return nil
		}
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	return nil
}

// GetProfile returns the profile of the authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := mapUserToResponse(user)
	return &resp, nil
}

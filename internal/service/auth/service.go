package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/auth"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthService(users user.Repository, jwtService jwt.Service) *AuthService {
	return &AuthService{users: users, jwt: jwtService}
}

// Login implements auth.Service.
func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.users.GetByRUT(ctx, req.RUT)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.tokenPair(u)
}

// Refresh implements auth.Service.
func (s *AuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	userID, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	if !u.IsActive() {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	return s.tokenPair(u)
}

func (s *AuthService) tokenPair(u user.User) (auth.TokenResponse, error) {
	access, accessExp, err := s.jwt.GenerateAccessToken(u.ID, u.RUT, u.WorkerID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, refreshExp, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	summary := auth.UserSummary{
		RUT:      u.RUT,
		Email:    u.Email,
		Role:     string(u.Role),
		Status:   string(u.Status),
		WorkerID: u.WorkerID,
	}
	if u.Worker != nil {
		summary.FirstNames = &u.Worker.FirstNames
		summary.LastNames = &u.Worker.LastNames
		summary.Position = u.Worker.Position
	}

	return auth.TokenResponse{
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: refreshExp,
		User:                  summary,
	}, nil
}

package auth

import (
	"context"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/user"
)

// AuthService defines account and session operations.
type AuthService interface {
	// Register creates an account after uniqueness checks on matricula and email.
	Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error)

	// Login verifies credentials and issues an access/refresh token pair.
	// Repeated failures from the same client are rate-limited.
	Login(ctx context.Context, req LoginRequest, clientKey string) (TokenResponse, user.UserResponse, error)

	// Refresh rotates a refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// rotated and revoked.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID int64, token string, expiresAt int64) error
	Get(ctx context.Context, token string) (userID int64, revoked bool, err error)
	Revoke(ctx context.Context, token string) error
}

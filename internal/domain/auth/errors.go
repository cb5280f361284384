package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid matricula or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrTooManyAttempts     = errors.New("too many failed login attempts, try again later")
)

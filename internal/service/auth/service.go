package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/auth"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/user"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/jwt"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/ratelimit"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.TxRunner
	user.UserRepository
	auth.RefreshTokenRepository
	jwt.Service
	limiter     ratelimit.AttemptLimiter
	maxAttempts int
	window      time.Duration
}

func NewAuthService(
	tx database.TxRunner,
	userRepository user.UserRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
	jwtService jwt.Service,
	limiter ratelimit.AttemptLimiter,
	maxAttempts int,
	window time.Duration,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:                     tx,
		UserRepository:         userRepository,
		RefreshTokenRepository: refreshTokenRepository,
		Service:                jwtService,
		limiter:                limiter,
		maxAttempts:            maxAttempts,
		window:                 window,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if _, err := a.UserRepository.GetByMatricula(ctx, req.Matricula); err == nil {
		return user.UserResponse{}, user.ErrMatriculaExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check matricula: %w", err)
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleStudent
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Matricula:    req.Matricula,
		PasswordHash: string(hash),
		Contact:      req.Contact,
		Email:        req.Email,
		Class:        req.Class,
		Period:       req.Period,
		Role:         role,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// Login implements auth.AuthService. clientKey identifies the caller for
// rate limiting, normally the remote IP.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, clientKey string) (auth.TokenResponse, user.UserResponse, error) {
	attempts, err := a.limiter.Count(ctx, clientKey)
	if err != nil {
		return auth.TokenResponse{}, user.UserResponse{}, fmt.Errorf("failed to read login attempts: %w", err)
	}
	if attempts >= int64(a.maxAttempts) {
		return auth.TokenResponse{}, user.UserResponse{}, auth.ErrTooManyAttempts
	}

	userData, err := a.UserRepository.GetByMatricula(ctx, req.Matricula)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, user.UserResponse{}, a.failedAttempt(ctx, clientKey)
		}
		return auth.TokenResponse{}, user.UserResponse{}, fmt.Errorf("failed to get user by matricula: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, user.UserResponse{}, a.failedAttempt(ctx, clientKey)
	}

	if err := a.limiter.Reset(ctx, clientKey); err != nil {
		return auth.TokenResponse{}, user.UserResponse{}, fmt.Errorf("failed to reset login attempts: %w", err)
	}

	tokenResponse, err := a.issueTokens(ctx, userData)
	if err != nil {
		return auth.TokenResponse{}, user.UserResponse{}, err
	}

	return tokenResponse, user.ToResponse(userData), nil
}

func (a *AuthServiceImpl) failedAttempt(ctx context.Context, clientKey string) error {
	if _, err := a.limiter.Hit(ctx, clientKey, a.window); err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return auth.ErrInvalidCredentials
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Matricula, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.TokenType = "bearer"

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.RefreshTokenRepository.Store(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Refresh implements auth.AuthService. The presented token is revoked and a
// fresh pair is issued, so a stolen refresh token stops working as soon as
// its owner uses it.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := token.Get("type"); tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, revoked, err := a.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := a.RefreshTokenRepository.Revoke(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Matricula, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.TokenType = "bearer"

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.RefreshTokenRepository.Store(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/auth"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.RefreshTokenRepository. expiresAt is a unix
// timestamp in seconds.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, userID int64, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, userID, token, time.Unix(expiresAt, 0).UTC())
	return err
}

// Get implements auth.RefreshTokenRepository. Expired rows report as
// revoked so callers only need one check.
func (r *refreshTokenRepositoryImpl) Get(ctx context.Context, token string) (int64, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, revoked_at IS NOT NULL OR expires_at < NOW()
		FROM refresh_tokens
		WHERE token = $1
	`

	var userID int64
	var revoked bool
	err := q.QueryRow(ctx, query, token).Scan(&userID, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, auth.ErrInvalidToken
		}
		return 0, false, err
	}

	return userID, revoked, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	_, err := q.Exec(ctx, query, token)
	return err
}

// This file defines the refresh-token session store.  Clients hold the raw
// token; rows keep only its SHA-256 hash, so a leaked table cannot be used
// to continue sessions.  Revocation writes a tombstone timestamp instead of
// deleting the row, leaving a record of ended sessions.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hausenergie/energymon/internal/model"
)

// ErrSessionInvalid is returned for refresh tokens that are unknown,
// expired or revoked.  The three cases fail identically so a caller cannot
// probe session state.
var ErrSessionInvalid = errors.New("session invalid")

// TokenRepo persists refresh-token sessions.
type TokenRepo struct {
	db *sql.DB
}

// NewTokenRepo constructs a TokenRepo with the provided DB handle.
func NewTokenRepo(db *sql.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// StoreRefresh opens a session: one row per issued refresh token, keyed by
// its hash.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?, ?, ?)",
		userID, tokenHash, expiresAt)
	return err
}

// ValidateRefresh resolves a token hash to the owning user id.  Unknown,
// expired and revoked sessions all return ErrSessionInvalid.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	var s model.RefreshToken
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, expires_at, revoked_at
		 FROM refresh_tokens WHERE token_hash = ? LIMIT 1`,
		tokenHash).Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.RevokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrSessionInvalid
	}
	if err != nil {
		return 0, err
	}
	if s.RevokedAt != nil || time.Now().UTC().After(s.ExpiresAt) {
		return 0, ErrSessionInvalid
	}
	return s.UserID, nil
}

// RevokeByHash ends the single session behind a token hash.  Already-revoked
// rows are left untouched so the original revocation time survives.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at = NOW() WHERE token_hash = ? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForUser ends every active session of a user at once, logging the
// user out across all devices.  Backs the bearer-only logout path.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = ? AND revoked_at IS NULL",
		userID)
	return err
}

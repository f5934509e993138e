package pg

import (
	"context"
	"database/sql"
	"time"

	"fleetid.org/internal/auth"
)

type sessionStore struct {
	s *Store
}

func (ss *sessionStore) Create(ctx context.Context, sess *auth.Session) error {
	return withRetry(ctx, func() error {
		_, err := ss.s.db.ExecContext(ctx, `
			insert into sessions (id, user_id, refresh_hash, issued_at, expires_at, revoked)
			values ($1, $2, $3, $4, $5, false)
		`, sess.ID, sess.UserID, sess.RefreshHash, sess.IssuedAt, sess.ExpiresAt)
		return mapError(err)
	})
}

func (ss *sessionStore) Find(ctx context.Context, id string) (*auth.Session, error) {
	var (
		sess     auth.Session
		lastSeen sql.NullTime
	)
	err := withRetry(ctx, func() error {
		row := ss.s.db.QueryRowContext(ctx, `
			select id, user_id, refresh_hash, issued_at, expires_at, last_seen_at, revoked
			from sessions
			where id = $1
		`, id)
		return mapError(row.Scan(&sess.ID, &sess.UserID, &sess.RefreshHash,
			&sess.IssuedAt, &sess.ExpiresAt, &lastSeen, &sess.Revoked))
	})
	if err != nil {
		return nil, err
	}
	if lastSeen.Valid {
		sess.LastSeenAt = lastSeen.Time
	}
	return &sess, nil
}

func (ss *sessionStore) Touch(ctx context.Context, id string, seen time.Time) error {
	return withRetry(ctx, func() error {
		_, err := ss.s.db.ExecContext(ctx, `
			update sessions set last_seen_at = $1 where id = $2
		`, seen, id)
		return mapError(err)
	})
}

// Revoke flips the session to revoked if it is still active. The guarded
// update serializes a refresh racing a revoke inside the database: only one
// caller observes the transition.
func (ss *sessionStore) Revoke(ctx context.Context, id string) (bool, error) {
	var revoked bool
	err := withRetry(ctx, func() error {
		res, err := ss.s.db.ExecContext(ctx, `
			update sessions set revoked = true
			where id = $1 and not revoked
		`, id)
		if err != nil {
			return mapError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		revoked = n > 0
		return nil
	})
	return revoked, err
}

func (ss *sessionStore) RevokeAllForUser(ctx context.Context, userID string) error {
	return withRetry(ctx, func() error {
		_, err := ss.s.db.ExecContext(ctx, `
			update sessions set revoked = true
			where user_id = $1 and not revoked
		`, userID)
		return mapError(err)
	})
}

func (ss *sessionStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	err := withRetry(ctx, func() error {
		res, err := ss.s.db.ExecContext(ctx, `
			delete from sessions where expires_at < $1
		`, before)
		if err != nil {
			return mapError(err)
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

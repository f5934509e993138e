// Package pg implements auth.Store on postgres through database/sql and the
// pgx stdlib driver. The pool bounds concurrent store access; callers block
// on their request context when the pool is exhausted.
package pg

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"math/rand"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"fleetid.org/internal/auth"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"

	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// Store holds the shared pool and exposes the auth substores.
type Store struct {
	db *sql.DB
}

var _ auth.Store = (*Store)(nil)

// Open connects to postgres and tunes the pool.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	// Tuned pool defaults; adjust under load tests
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing pool (tests use this with sqlmock).
func NewWithDB(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Users() auth.UserStore             { return &userStore{s} }
func (s *Store) Roles() auth.RoleStore             { return &roleStore{s} }
func (s *Store) Permissions() auth.PermissionStore { return &permStore{s} }
func (s *Store) Sessions() auth.SessionStore       { return &sessionStore{s} }

// withRetry runs fn with bounded retries on transient failures, then
// surfaces auth.ErrStoreUnavailable. Logical errors pass through untouched.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay*time.Duration(attempt) + time.Duration(rand.Int63n(int64(retryBaseDelay)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return errors.Join(auth.ErrStoreUnavailable, err)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// mapError translates driver errors into the auth taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return auth.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return auth.ErrConflict
		case pgErrForeignKeyViolation:
			return auth.ErrConflict
		}
	}
	return err
}

package auth

import "time"

const (
	userStatusActive   = "active"
	userStatusDisabled = "disabled"
)

const (
	UserStatusActive   = userStatusActive
	UserStatusDisabled = userStatusDisabled
)

// User represents a human or service account of the fleet platform.
// PasswordHash never leaves the process through any transport.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Active reports whether the account may authenticate and authorize.
func (u *User) Active() bool {
	return u != nil && u.Status == userStatusActive
}

// Role groups permissions under a stable name.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission is a fine-grained capability identified by a dotted key.
type Permission struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Assignment gives a user a role.
type Assignment struct {
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Session binds a token pair to a user. The access JWT carries the session
// id as its jti claim; RefreshHash is the SHA-256 of the refresh secret.
// ExpiresAt bounds the refresh lifetime; revocation is terminal.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	RefreshHash string    `json:"-"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	LastSeenAt  time.Time `json:"last_seen_at,omitempty"`
	Revoked     bool      `json:"revoked"`
}

// Expired reports whether the session's refresh window has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || now.After(s.ExpiresAt)
}

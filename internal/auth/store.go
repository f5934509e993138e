package auth

import (
	"context"
	"time"
)

// Store describes persistence operations required by the auth subsystem.
// Implementations map uniqueness violations to ErrConflict, missing rows to
// ErrNotFound and transient infrastructure failures to ErrStoreUnavailable.
type Store interface {
	Users() UserStore
	Roles() RoleStore
	Permissions() PermissionStore
	Sessions() SessionStore
}

// UserUpdate carries optional user mutations; nil fields are left untouched.
// Password holds an already-hashed value by the time it reaches the store.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Status   *string
}

// UserStore manages user records. Reads of disabled users succeed; the
// disabled flag is interpreted by callers, not by the store.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	Find(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*User, error)
	Delete(ctx context.Context, id string) error
}

// RoleStore manages roles and user-role assignments.
type RoleStore interface {
	Create(ctx context.Context, role *Role) error
	Find(ctx context.Context, id string) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, assignment Assignment) error
	Unassign(ctx context.Context, userID, roleID string) error
	Assignments(ctx context.Context, userID string) ([]Assignment, error)
	RolesForUser(ctx context.Context, userID string) ([]Role, error)
}

// PermissionStore manages the permission catalog and role bindings.
type PermissionStore interface {
	Ensure(ctx context.Context, perms []Permission) error
	List(ctx context.Context) ([]Permission, error)
	SetForRole(ctx context.Context, roleID string, keys []string) error
	ForRole(ctx context.Context, roleID string) ([]Permission, error)
	ForUser(ctx context.Context, userID string) ([]Permission, error)
}

// SessionStore manages session lifecycle. Revoke reports whether the call
// transitioned the session out of the active state; a revoke racing a
// refresh is decided by exactly one caller observing true.
type SessionStore interface {
	Create(ctx context.Context, sess *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	Touch(ctx context.Context, id string, seen time.Time) error
	Revoke(ctx context.Context, id string) (bool, error)
	RevokeAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

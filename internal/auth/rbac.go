package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetid.org/internal/ids"
)

// RBACService provides administrative operations over users, roles and
// permission sets. Security-relevant mutations (password change, disable)
// revoke every standing session for the affected user.
type RBACService struct {
	store Store
	now   func() time.Time
}

// NewRBACService constructs an RBACService.
func NewRBACService(store Store) (*RBACService, error) {
	if store == nil {
		return nil, errors.New("auth: store is required")
	}
	return &RBACService{store: store, now: time.Now}, nil
}

// CreateUser hashes the password and persists a new user record.
func (s *RBACService) CreateUser(ctx context.Context, name, email, password, status string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(strings.TrimSpace(password))
	if err != nil {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	now := s.now().UTC()
	user := &User{
		ID:           ids.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all user records.
func (s *RBACService) ListUsers(ctx context.Context) ([]*User, error) {
	return s.store.Users().List(ctx)
}

// GetUser returns a single user by id.
func (s *RBACService) GetUser(ctx context.Context, userID string) (*User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return s.store.Users().Find(ctx, userID)
}

// UpdateUser applies partial mutations. A password change or a transition
// to the disabled status invalidates all outstanding sessions immediately.
func (s *RBACService) UpdateUser(ctx context.Context, userID string, upd UserUpdate) (*User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		upd.Name = &name
	}
	if upd.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*upd.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
		}
		upd.Email = &email
	}
	revoke := false
	if upd.Status != nil {
		status, err := normalizeStatus(*upd.Status)
		if err != nil {
			return nil, err
		}
		upd.Status = &status
		revoke = revoke || status == userStatusDisabled
	}
	if upd.Password != nil {
		hash, err := HashPassword(strings.TrimSpace(*upd.Password))
		if err != nil {
			return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
		}
		upd.Password = &hash
		revoke = true
	}
	user, err := s.store.Users().Update(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	if revoke {
		if err := s.store.Sessions().RevokeAllForUser(ctx, userID); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// DeleteUser removes a user record. The store refuses while session history
// references the user; disable instead of delete for active accounts.
func (s *RBACService) DeleteUser(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return s.store.Users().Delete(ctx, userID)
}

// CreateRole creates a role, optionally with an initial permission set.
func (s *RBACService) CreateRole(ctx context.Context, name, description string, permissions []string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: role name is required", ErrInvalidInput)
	}
	now := s.now().UTC()
	role := &Role{
		ID:          ids.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Roles().Create(ctx, role); err != nil {
		return nil, err
	}
	if keys := dedupeStrings(permissions); len(keys) > 0 {
		if err := s.store.Permissions().SetForRole(ctx, role.ID, keys); err != nil {
			return nil, err
		}
	}
	return role, nil
}

// ListRoles returns all roles.
func (s *RBACService) ListRoles(ctx context.Context) ([]*Role, error) {
	return s.store.Roles().List(ctx)
}

// GetRole returns a role with its resolved permission set.
func (s *RBACService) GetRole(ctx context.Context, roleID string) (*Role, []Permission, error) {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return nil, nil, fmt.Errorf("%w: role_id is required", ErrInvalidInput)
	}
	role, err := s.store.Roles().Find(ctx, roleID)
	if err != nil {
		return nil, nil, err
	}
	perms, err := s.store.Permissions().ForRole(ctx, roleID)
	if err != nil {
		return nil, nil, err
	}
	return role, perms, nil
}

// UpdateRole renames or re-describes a role.
func (s *RBACService) UpdateRole(ctx context.Context, roleID, name, description string) (*Role, error) {
	roleID = strings.TrimSpace(roleID)
	name = strings.TrimSpace(name)
	if roleID == "" || name == "" {
		return nil, fmt.Errorf("%w: role_id and name are required", ErrInvalidInput)
	}
	role, err := s.store.Roles().Find(ctx, roleID)
	if err != nil {
		return nil, err
	}
	role.Name = name
	role.Description = strings.TrimSpace(description)
	role.UpdatedAt = s.now().UTC()
	if err := s.store.Roles().Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole removes a role and its assignments.
func (s *RBACService) DeleteRole(ctx context.Context, roleID string) error {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return fmt.Errorf("%w: role_id is required", ErrInvalidInput)
	}
	return s.store.Roles().Delete(ctx, roleID)
}

// SetRolePermissions atomically replaces a role's permission set.
func (s *RBACService) SetRolePermissions(ctx context.Context, roleID string, permissions []string) error {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return fmt.Errorf("%w: role_id is required", ErrInvalidInput)
	}
	return s.store.Permissions().SetForRole(ctx, roleID, dedupeStrings(permissions))
}

// ListPermissions returns the permission catalog.
func (s *RBACService) ListPermissions(ctx context.Context) ([]Permission, error) {
	return s.store.Permissions().List(ctx)
}

// AssignRole gives a user a role.
func (s *RBACService) AssignRole(ctx context.Context, userID, roleID string) (Assignment, error) {
	userID = strings.TrimSpace(userID)
	roleID = strings.TrimSpace(roleID)
	if userID == "" || roleID == "" {
		return Assignment{}, fmt.Errorf("%w: user_id and role_id are required", ErrInvalidInput)
	}
	assignment := Assignment{UserID: userID, RoleID: roleID, CreatedAt: s.now().UTC()}
	if err := s.store.Roles().Assign(ctx, assignment); err != nil {
		return Assignment{}, err
	}
	return assignment, nil
}

// UnassignRole removes a role from a user.
func (s *RBACService) UnassignRole(ctx context.Context, userID, roleID string) error {
	userID = strings.TrimSpace(userID)
	roleID = strings.TrimSpace(roleID)
	if userID == "" || roleID == "" {
		return fmt.Errorf("%w: user_id and role_id are required", ErrInvalidInput)
	}
	return s.store.Roles().Unassign(ctx, userID, roleID)
}

// Bootstrap seeds the builtin permission catalog, an admin role holding all
// of it, and, when the user table is empty, an initial admin account.
func (s *RBACService) Bootstrap(ctx context.Context, adminEmail, adminPassword string) error {
	if err := s.store.Permissions().Ensure(ctx, BuiltinPermissions); err != nil {
		return err
	}
	role, err := s.store.Roles().FindByName(ctx, AdminRoleName)
	if errors.Is(err, ErrNotFound) {
		role, err = s.CreateRole(ctx, AdminRoleName, "Full access to user management", nil)
	}
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(BuiltinPermissions))
	for _, p := range BuiltinPermissions {
		keys = append(keys, p.Key)
	}
	if err := s.store.Permissions().SetForRole(ctx, role.ID, keys); err != nil {
		return err
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	existing, err := s.store.Users().List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	admin, err := s.CreateUser(ctx, "Administrator", adminEmail, adminPassword, userStatusActive)
	if err != nil {
		return err
	}
	_, err = s.AssignRole(ctx, admin.ID, role.ID)
	return err
}

func normalizeStatus(status string) (string, error) {
	status = strings.TrimSpace(strings.ToLower(status))
	if status == "" {
		return userStatusActive, nil
	}
	if status != userStatusActive && status != userStatusDisabled {
		return "", fmt.Errorf("%w: unsupported status %s", ErrInvalidInput, status)
	}
	return status, nil
}

func dedupeStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := set[v]; ok {
			continue
		}
		set[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Package mem provides an in-memory auth.Store used by tests and
// single-node development runs. All mutations happen under the store lock,
// so the guarded session transitions behave like the transactional updates
// of the postgres adapter.
package mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/ids"
)

// Store implements auth.Store backed by process memory.
type Store struct {
	mu sync.RWMutex

	users        map[string]*auth.User
	usersByEmail map[string]string
	roles        map[string]*auth.Role
	rolesByName  map[string]string
	perms        map[string]*auth.Permission // by key
	rolePerms    map[string]map[string]struct{}
	assignments  map[string]map[string]auth.Assignment // userID -> roleID
	sessions     map[string]*auth.Session
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		users:        make(map[string]*auth.User),
		usersByEmail: make(map[string]string),
		roles:        make(map[string]*auth.Role),
		rolesByName:  make(map[string]string),
		perms:        make(map[string]*auth.Permission),
		rolePerms:    make(map[string]map[string]struct{}),
		assignments:  make(map[string]map[string]auth.Assignment),
		sessions:     make(map[string]*auth.Session),
	}
}

var _ auth.Store = (*Store)(nil)

func (s *Store) Users() auth.UserStore             { return (*userStore)(s) }
func (s *Store) Roles() auth.RoleStore             { return (*roleStore)(s) }
func (s *Store) Permissions() auth.PermissionStore { return (*permStore)(s) }
func (s *Store) Sessions() auth.SessionStore       { return (*sessionStore)(s) }

type userStore Store

func (s *userStore) Create(_ context.Context, u *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[u.Email]; ok {
		return auth.ErrConflict
	}
	cp := *u
	s.users[u.ID] = &cp
	s.usersByEmail[u.Email] = u.ID
	return nil
}

func (s *userStore) Find(_ context.Context, id string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}

func (s *userStore) List(_ context.Context) ([]*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*auth.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *userStore) Update(_ context.Context, id string, upd auth.UserUpdate) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	if upd.Email != nil && *upd.Email != u.Email {
		if _, taken := s.usersByEmail[*upd.Email]; taken {
			return nil, auth.ErrConflict
		}
		delete(s.usersByEmail, u.Email)
		u.Email = *upd.Email
		s.usersByEmail[u.Email] = id
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Password != nil {
		u.PasswordHash = *upd.Password
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (s *userStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return auth.ErrNotFound
	}
	for _, sess := range s.sessions {
		if sess.UserID == id {
			return auth.ErrConflict
		}
	}
	delete(s.usersByEmail, u.Email)
	delete(s.users, id)
	delete(s.assignments, id)
	return nil
}

type roleStore Store

func (s *roleStore) Create(_ context.Context, role *auth.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rolesByName[role.Name]; ok {
		return auth.ErrConflict
	}
	cp := *role
	s.roles[role.ID] = &cp
	s.rolesByName[role.Name] = role.ID
	return nil
}

func (s *roleStore) Find(_ context.Context, id string) (*auth.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.roles[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *roleStore) FindByName(_ context.Context, name string) (*auth.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.rolesByName[name]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *s.roles[id]
	return &cp, nil
}

func (s *roleStore) List(_ context.Context) ([]*auth.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*auth.Role, 0, len(s.roles))
	for _, r := range s.roles {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *roleStore) Update(_ context.Context, role *auth.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.roles[role.ID]
	if !ok {
		return auth.ErrNotFound
	}
	if role.Name != existing.Name {
		if _, taken := s.rolesByName[role.Name]; taken {
			return auth.ErrConflict
		}
		delete(s.rolesByName, existing.Name)
		s.rolesByName[role.Name] = role.ID
	}
	cp := *role
	s.roles[role.ID] = &cp
	return nil
}

func (s *roleStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.roles[id]
	if !ok {
		return auth.ErrNotFound
	}
	delete(s.rolesByName, r.Name)
	delete(s.roles, id)
	delete(s.rolePerms, id)
	for userID := range s.assignments {
		delete(s.assignments[userID], id)
	}
	return nil
}

func (s *roleStore) Assign(_ context.Context, assignment auth.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[assignment.UserID]; !ok {
		return auth.ErrNotFound
	}
	if _, ok := s.roles[assignment.RoleID]; !ok {
		return auth.ErrNotFound
	}
	if s.assignments[assignment.UserID] == nil {
		s.assignments[assignment.UserID] = make(map[string]auth.Assignment)
	}
	s.assignments[assignment.UserID][assignment.RoleID] = assignment
	return nil
}

func (s *roleStore) Unassign(_ context.Context, userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignments[userID][roleID]; !ok {
		return auth.ErrNotFound
	}
	delete(s.assignments[userID], roleID)
	return nil
}

func (s *roleStore) Assignments(_ context.Context, userID string) ([]auth.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]auth.Assignment, 0, len(s.assignments[userID]))
	for _, a := range s.assignments[userID] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoleID < out[j].RoleID })
	return out, nil
}

func (s *roleStore) RolesForUser(_ context.Context, userID string) ([]auth.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]auth.Role, 0, len(s.assignments[userID]))
	for roleID := range s.assignments[userID] {
		if r, ok := s.roles[roleID]; ok {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type permStore Store

func (s *permStore) Ensure(_ context.Context, perms []auth.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range perms {
		if _, ok := s.perms[p.Key]; ok {
			continue
		}
		cp := p
		if cp.ID == "" {
			cp.ID = ids.New()
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = time.Now().UTC()
		}
		s.perms[cp.Key] = &cp
	}
	return nil
}

func (s *permStore) List(_ context.Context) ([]auth.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]auth.Permission, 0, len(s.perms))
	for _, p := range s.perms {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *permStore) SetForRole(_ context.Context, roleID string, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[roleID]; !ok {
		return auth.ErrNotFound
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := s.perms[k]; !ok {
			return auth.ErrNotFound
		}
		set[k] = struct{}{}
	}
	s.rolePerms[roleID] = set
	return nil
}

func (s *permStore) ForRole(_ context.Context, roleID string) ([]auth.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.roles[roleID]; !ok {
		return nil, auth.ErrNotFound
	}
	out := make([]auth.Permission, 0, len(s.rolePerms[roleID]))
	for key := range s.rolePerms[roleID] {
		if p, ok := s.perms[key]; ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *permStore) ForUser(_ context.Context, userID string) ([]auth.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []auth.Permission
	for roleID := range s.assignments[userID] {
		for key := range s.rolePerms[roleID] {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if p, ok := s.perms[key]; ok {
				out = append(out, *p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

type sessionStore Store

func (s *sessionStore) Create(_ context.Context, sess *auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[sess.UserID]; !ok {
		return auth.ErrNotFound
	}
	if _, ok := s.sessions[sess.ID]; ok {
		return auth.ErrConflict
	}
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *sessionStore) Find(_ context.Context, id string) (*auth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *sessionStore) Touch(_ context.Context, id string, seen time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return auth.ErrNotFound
	}
	sess.LastSeenAt = seen
	return nil
}

func (s *sessionStore) Revoke(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.Revoked {
		return false, nil
	}
	sess.Revoked = true
	return true, nil
}

func (s *sessionStore) RevokeAllForUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			sess.Revoked = true
		}
	}
	return nil
}

func (s *sessionStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, sess := range s.sessions {
		if before.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

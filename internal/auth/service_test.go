package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/store/mem"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	svc   *auth.Service
	rbac  *auth.RBACService
	store *mem.Store
	clock *fakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := mem.New()
	clock := newFakeClock()
	svc, err := auth.NewService(store, "test-signing-secret", auth.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	rbac, err := auth.NewRBACService(store)
	if err != nil {
		t.Fatalf("new rbac: %v", err)
	}
	if err := svc.EnsureBuiltins(context.Background()); err != nil {
		t.Fatalf("ensure builtins: %v", err)
	}
	return &testEnv{svc: svc, rbac: rbac, store: store, clock: clock}
}

// createUser provisions a user holding the given permissions via a
// dedicated role.
func (e *testEnv) createUser(t *testing.T, email string, perms ...string) *auth.User {
	t.Helper()
	ctx := context.Background()
	user, err := e.rbac.CreateUser(ctx, "Test User", email, "hunter2hunter2", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if len(perms) > 0 {
		role, err := e.rbac.CreateRole(ctx, "role-for-"+email, "", perms)
		if err != nil {
			t.Fatalf("create role: %v", err)
		}
		if _, err := e.rbac.AssignRole(ctx, user.ID, role.ID); err != nil {
			t.Fatalf("assign role: %v", err)
		}
	}
	return user
}

func (e *testEnv) login(t *testing.T, email string) auth.TokenPair {
	t.Helper()
	pair, _, err := e.svc.Authenticate(context.Background(), email, "hunter2hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	return pair
}

func TestAuthenticateIssuesValidSession(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice@fleet.test", auth.PermVehicleBook)

	pair := env.login(t, "alice@fleet.test")
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token pair")
	}
	if !pair.AccessExpiresAt.After(env.clock.Now()) {
		t.Fatal("access token already expired")
	}

	_, principal, err := env.svc.Validate(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if principal.User.Email != "alice@fleet.test" {
		t.Fatalf("unexpected principal %q", principal.User.Email)
	}
	if !principal.HasPermission(auth.PermVehicleBook) {
		t.Fatal("principal lacks granted permission")
	}
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "bob@fleet.test")

	// Unknown email, wrong password and disabled account must be
	// indistinguishable.
	_, _, errUnknown := env.svc.Authenticate(context.Background(), "nobody@fleet.test", "whatever")
	_, _, errWrong := env.svc.Authenticate(context.Background(), "bob@fleet.test", "wrong-password")

	disabled := auth.UserStatusDisabled
	if _, err := env.rbac.UpdateUser(context.Background(), user.ID, auth.UserUpdate{Status: &disabled}); err != nil {
		t.Fatalf("disable user: %v", err)
	}
	_, _, errDisabled := env.svc.Authenticate(context.Background(), "bob@fleet.test", "hunter2hunter2")

	for name, err := range map[string]error{
		"unknown email":  errUnknown,
		"wrong password": errWrong,
		"disabled user":  errDisabled,
	} {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("%s: got %v, want ErrInvalidCredentials", name, err)
		}
	}
}

func TestRevokedSessionNeverResurrects(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "carol@fleet.test")
	pair := env.login(t, "carol@fleet.test")

	if err := env.svc.RevokeToken(context.Background(), pair.AccessToken); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	// Second revoke is a no-op, not an error.
	if err := env.svc.RevokeToken(context.Background(), pair.AccessToken); err != nil {
		t.Fatalf("second revoke: %v", err)
	}

	if _, _, err := env.svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("validate after revoke: got %v, want ErrSessionInvalid", err)
	}
	if _, _, err := env.svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("refresh after revoke: got %v, want ErrSessionInvalid", err)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "dave@fleet.test")
	old := env.login(t, "dave@fleet.test")

	fresh, _, err := env.svc.Refresh(context.Background(), old.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.AccessToken == old.AccessToken || fresh.RefreshToken == old.RefreshToken {
		t.Fatal("refresh returned the same tokens")
	}

	// The retired pair is dead on both paths.
	if _, _, err := env.svc.Validate(context.Background(), old.AccessToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("old access token still valid: %v", err)
	}
	if _, _, err := env.svc.Refresh(context.Background(), old.RefreshToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("old refresh token still valid: %v", err)
	}

	// The new pair works.
	if _, _, err := env.svc.Validate(context.Background(), fresh.AccessToken); err != nil {
		t.Fatalf("new access token invalid: %v", err)
	}
}

func TestRefreshWithTamperedSecretRetiresSession(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "eve@fleet.test")
	pair := env.login(t, "eve@fleet.test")

	id := strings.SplitN(pair.RefreshToken, ".", 2)[0]
	if _, _, err := env.svc.Refresh(context.Background(), id+".forged-secret"); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("tampered refresh: got %v, want ErrSessionInvalid", err)
	}
	// The session was retired; even the genuine token is now useless.
	if _, _, err := env.svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("genuine refresh after tamper: got %v, want ErrSessionInvalid", err)
	}
}

func TestAccessTokenExpiryAndRefreshWindow(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "frank@fleet.test")
	pair := env.login(t, "frank@fleet.test")

	env.clock.Advance(11 * time.Minute)
	if _, _, err := env.svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("expired access token: got %v, want ErrSessionInvalid", err)
	}

	// Still inside the refresh window.
	fresh, _, err := env.svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh inside window: %v", err)
	}

	env.clock.Advance(25 * time.Hour)
	if _, _, err := env.svc.Refresh(context.Background(), fresh.RefreshToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("refresh past window: got %v, want ErrSessionInvalid", err)
	}
}

func TestAuthorizeDecisions(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "grace@fleet.test", auth.PermVehicleBook)
	pair := env.login(t, "grace@fleet.test")
	ctx := context.Background()

	d, err := env.svc.Authorize(ctx, pair.AccessToken, auth.PermVehicleBook)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("expected allow, got deny %q", d.Reason)
	}
	if d.Principal.User.Email != "grace@fleet.test" {
		t.Fatalf("unexpected principal in decision: %q", d.Principal.User.Email)
	}

	d, err = env.svc.Authorize(ctx, pair.AccessToken, auth.PermRoleDelete)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if d.Allowed || d.Reason != auth.DenyInsufficientPermission {
		t.Fatalf("expected insufficient_permission, got %+v", d)
	}

	d, err = env.svc.Authorize(ctx, "garbage-token", auth.PermVehicleBook)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if d.Allowed || d.Reason != auth.DenySessionInvalid {
		t.Fatalf("expected session_invalid, got %+v", d)
	}

	if _, err := env.svc.Authorize(ctx, pair.AccessToken, "  "); !errors.Is(err, auth.ErrInvalidInput) {
		t.Fatalf("blank permission: got %v, want ErrInvalidInput", err)
	}
}

func TestDisablingUserInvalidatesStandingSessions(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "heidi@fleet.test", auth.PermVehicleBook)
	pair := env.login(t, "heidi@fleet.test")

	disabled := auth.UserStatusDisabled
	if _, err := env.rbac.UpdateUser(context.Background(), user.ID, auth.UserUpdate{Status: &disabled}); err != nil {
		t.Fatalf("disable: %v", err)
	}

	if _, _, err := env.svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("validate disabled user: got %v, want ErrSessionInvalid", err)
	}
	d, err := env.svc.Authorize(context.Background(), pair.AccessToken, auth.PermVehicleBook)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if d.Allowed || d.Reason != auth.DenySessionInvalid {
		t.Fatalf("disabled user must deny as session_invalid, got %+v", d)
	}
}

func TestPasswordChangeRevokesSessions(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "ivan@fleet.test")
	pair := env.login(t, "ivan@fleet.test")

	newPassword := "an-even-longer-password"
	if _, err := env.rbac.UpdateUser(context.Background(), user.ID, auth.UserUpdate{Password: &newPassword}); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := env.svc.Validate(context.Background(), pair.AccessToken); !errors.Is(err, auth.ErrSessionInvalid) {
		t.Fatalf("session survived password change: %v", err)
	}
	if _, _, err := env.svc.Authenticate(context.Background(), "ivan@fleet.test", newPassword); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestReapExpiredSessions(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "judy@fleet.test")
	env.login(t, "judy@fleet.test")

	n, err := env.svc.ReapExpired(context.Background())
	if err != nil {
		t.Fatalf("reap: %v", err)
	}
	if n != 0 {
		t.Fatalf("reaped %d live sessions", n)
	}

	env.clock.Advance(25 * time.Hour)
	n, err = env.svc.ReapExpired(context.Background())
	if err != nil {
		t.Fatalf("reap: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 reaped session, got %d", n)
	}
}

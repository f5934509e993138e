package auth_test

import (
	"context"
	"errors"
	"testing"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/store/mem"
)

func TestBootstrapSeedsAdmin(t *testing.T) {
	store := mem.New()
	rbac, err := auth.NewRBACService(store)
	if err != nil {
		t.Fatalf("new rbac: %v", err)
	}
	ctx := context.Background()

	if err := rbac.Bootstrap(ctx, "root@fleet.test", "bootstrap-password"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	perms, err := rbac.ListPermissions(ctx)
	if err != nil {
		t.Fatalf("list permissions: %v", err)
	}
	if len(perms) != len(auth.BuiltinPermissions) {
		t.Fatalf("expected %d builtin permissions, got %d", len(auth.BuiltinPermissions), len(perms))
	}

	users, err := rbac.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 bootstrap user, got %d", len(users))
	}

	svc, err := auth.NewService(store, "test-signing-secret")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	_, principal, err := svc.Authenticate(ctx, "root@fleet.test", "bootstrap-password")
	if err != nil {
		t.Fatalf("authenticate bootstrap admin: %v", err)
	}
	for _, p := range auth.BuiltinPermissions {
		if !principal.HasPermission(p.Key) {
			t.Fatalf("bootstrap admin lacks %s", p.Key)
		}
	}

	// Re-running bootstrap is idempotent and never adds a second admin.
	if err := rbac.Bootstrap(ctx, "root@fleet.test", "bootstrap-password"); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	users, _ = rbac.ListUsers(ctx)
	if len(users) != 1 {
		t.Fatalf("second bootstrap created users: %d", len(users))
	}
}

func TestCreateUserValidation(t *testing.T) {
	rbac, _ := auth.NewRBACService(mem.New())
	ctx := context.Background()

	cases := []struct {
		name, userName, email, password, status string
	}{
		{"empty name", "", "a@b.test", "password123", ""},
		{"bad email", "A", "not-an-email", "password123", ""},
		{"empty password", "A", "a@b.test", "", ""},
		{"bad status", "A", "a@b.test", "password123", "suspended"},
	}
	for _, tc := range cases {
		if _, err := rbac.CreateUser(ctx, tc.userName, tc.email, tc.password, tc.status); !errors.Is(err, auth.ErrInvalidInput) {
			t.Fatalf("%s: got %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestDuplicateEmailConflicts(t *testing.T) {
	rbac, _ := auth.NewRBACService(mem.New())
	ctx := context.Background()

	if _, err := rbac.CreateUser(ctx, "First", "dup@fleet.test", "password123", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := rbac.CreateUser(ctx, "Second", "DUP@fleet.test", "password123", ""); !errors.Is(err, auth.ErrConflict) {
		t.Fatalf("duplicate email: got %v, want ErrConflict", err)
	}
}

func TestSetRolePermissionsUnknownKey(t *testing.T) {
	store := mem.New()
	rbac, _ := auth.NewRBACService(store)
	ctx := context.Background()
	if err := store.Permissions().Ensure(ctx, auth.BuiltinPermissions); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	role, err := rbac.CreateRole(ctx, "dispatch", "", nil)
	if err != nil {
		t.Fatalf("create role: %v", err)
	}
	err = rbac.SetRolePermissions(ctx, role.ID, []string{auth.PermVehicleBook, "no.such.permission"})
	if !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("unknown key: got %v, want ErrNotFound", err)
	}
}

func TestDeleteUserBlockedBySessions(t *testing.T) {
	store := mem.New()
	rbac, _ := auth.NewRBACService(store)
	svc, _ := auth.NewService(store, "test-signing-secret")
	ctx := context.Background()

	user, err := rbac.CreateUser(ctx, "Kate", "kate@fleet.test", "password123", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Authenticate(ctx, "kate@fleet.test", "password123"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := rbac.DeleteUser(ctx, user.ID); !errors.Is(err, auth.ErrConflict) {
		t.Fatalf("delete with sessions: got %v, want ErrConflict", err)
	}
}

func TestUnassignRoleNotFound(t *testing.T) {
	rbac, _ := auth.NewRBACService(mem.New())
	if err := rbac.UnassignRole(context.Background(), "no-user", "no-role"); !errors.Is(err, auth.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

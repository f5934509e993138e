package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                              "/",
		"/metrics":                      "/metrics",
		"/v1/auth/login":                "/v1/auth/login",
		"/v1/users/01ABCDEF":            "/v1/users/:id",
		"/v1/users/01ABCDEF/roles":      "/v1/users/:id/roles",
		"/v1/roles/xyz/permissions":     "/v1/roles/:id/permissions",
		"/v1/roles/xyz?limit=10":        "/v1/roles/:id",
		"/v1/permissions":               "/v1/permissions",
		"/healthz":                      "/healthz",
		"/v1/vehicles/book":             "/v1/vehicles/book",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}

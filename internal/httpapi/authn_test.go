package httpapi

import "testing"

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"plain", "Bearer abc123", "abc123", false},
		{"lowercase scheme", "bearer abc123", "abc123", false},
		{"padded", "  Bearer   abc123  ", "abc123", false},
		{"empty", "", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"scheme only", "Bearer ", "", true},
	}
	for _, tc := range cases {
		got, err := extractBearerToken(tc.header)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsPublicPath(t *testing.T) {
	public := []string{"/v1/auth/login", "/v1/auth/refresh", "/healthz", "/readyz", "/metrics", "/v1/info", "/"}
	for _, p := range public {
		if !isPublicPath(p) {
			t.Fatalf("%s should be public", p)
		}
	}
	protected := []string{"/v1/users/me", "/v1/auth/logout", "/v1/users", "/v1/roles", "/v1/vehicles/book"}
	for _, p := range protected {
		if isPublicPath(p) {
			t.Fatalf("%s should require authentication", p)
		}
	}
}

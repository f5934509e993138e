package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/store/mem"
)

const (
	testAdminEmail    = "admin@fleet.test"
	testAdminPassword = "bootstrap-password"
)

type apiClient struct {
	baseURL string
	client  *http.Client
	t       *testing.T

	authSvc *auth.Service
	rbacSvc *auth.RBACService
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	store := mem.New()
	authSvc, err := auth.NewService(store, "test-signing-secret")
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	rbacSvc, err := auth.NewRBACService(store)
	if err != nil {
		t.Fatalf("rbac service: %v", err)
	}
	if err := rbacSvc.Bootstrap(context.Background(), testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	api := New(ReadyProbe{}, authSvc, rbacSvc, "test", WithRateLimit(1000, 1000))

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return &apiClient{
		baseURL: srv.URL,
		client:  srv.Client(),
		t:       t,
		authSvc: authSvc,
		rbacSvc: rbacSvc,
	}
}

func (c *apiClient) do(method, path string, body any, headers map[string]string) *http.Response {
	c.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
	}
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("do request: %v", err)
	}
	return resp
}

func (c *apiClient) post(path string, body any, headers map[string]string) *http.Response {
	return c.do(http.MethodPost, path, body, headers)
}

func (c *apiClient) get(path string, headers map[string]string) *http.Response {
	return c.do(http.MethodGet, path, nil, headers)
}

func (c *apiClient) login(email, password string) sessionResponse {
	c.t.Helper()
	resp := c.post("/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		c.t.Fatalf("unexpected login status: %d", resp.StatusCode)
	}
	session := decode[sessionResponse](c.t, resp)
	if session.AccessToken == "" || session.RefreshToken == "" {
		c.t.Fatal("empty token pair issued")
	}
	return session
}

func bearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decode[T any](t *testing.T, r *http.Response) T {
	t.Helper()
	defer r.Body.Close()
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthAndInfo(t *testing.T) {
	api := newTestAPI(t)

	resp := api.get("/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["service"] != serviceName {
		t.Fatalf("unexpected service name: %v", body["service"])
	}

	resp = api.get("/readyz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz status: %d", resp.StatusCode)
	}

	resp = api.get("/v1/info", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("info status: %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLoginLogoutFlow(t *testing.T) {
	api := newTestAPI(t)
	session := api.login(testAdminEmail, testAdminPassword)

	if session.User.Email != testAdminEmail {
		t.Fatalf("unexpected login identity: %q", session.User.Email)
	}
	if len(session.User.Permissions) != len(auth.BuiltinPermissions) {
		t.Fatalf("bootstrap admin should hold all builtin permissions, got %v", session.User.Permissions)
	}

	resp := api.get("/v1/users/me", bearerHeader(session.AccessToken))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status: %d", resp.StatusCode)
	}
	me := decode[userResponse](t, resp)
	if me.ID != session.User.ID {
		t.Fatalf("me returned different identity: %q vs %q", me.ID, session.User.ID)
	}

	resp = api.post("/v1/auth/logout", nil, bearerHeader(session.AccessToken))
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status: %d", resp.StatusCode)
	}
	resp.Body.Close()

	// The revoked token is dead for good.
	resp = api.get("/v1/users/me", bearerHeader(session.AccessToken))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: %d", resp.StatusCode)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	api := newTestAPI(t)

	respUnknown := api.post("/v1/auth/login", map[string]any{
		"email": "ghost@fleet.test", "password": "whatever",
	}, nil)
	respWrong := api.post("/v1/auth/login", map[string]any{
		"email": testAdminEmail, "password": "wrong-password",
	}, nil)

	if respUnknown.StatusCode != http.StatusUnauthorized || respWrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", respUnknown.StatusCode, respWrong.StatusCode)
	}
	bodyUnknown := decode[map[string]any](t, respUnknown)
	bodyWrong := decode[map[string]any](t, respWrong)
	if bodyUnknown["error"] != bodyWrong["error"] {
		t.Fatalf("error bodies differ: %v vs %v", bodyUnknown["error"], bodyWrong["error"])
	}
}

func TestRefreshRotation(t *testing.T) {
	api := newTestAPI(t)
	session := api.login(testAdminEmail, testAdminPassword)

	resp := api.post("/v1/auth/refresh", map[string]any{
		"refresh_token": session.RefreshToken,
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh status: %d", resp.StatusCode)
	}
	fresh := decode[sessionResponse](t, resp)
	if fresh.AccessToken == session.AccessToken {
		t.Fatal("refresh did not rotate the access token")
	}

	// The consumed refresh token cannot be replayed.
	resp = api.post("/v1/auth/refresh", map[string]any{
		"refresh_token": session.RefreshToken,
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("replayed refresh: %d", resp.StatusCode)
	}
}

func TestUserRoleAdministrationFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login(testAdminEmail, testAdminPassword)
	adminHdr := bearerHeader(admin.AccessToken)

	// Create a driver account.
	resp := api.post("/v1/users", map[string]any{
		"name":     "Dana Driver",
		"email":    "dana@fleet.test",
		"password": "driver-password",
	}, adminHdr)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user status: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc == "" {
		t.Fatal("missing Location header")
	}
	driver := decode[auth.User](t, resp)

	// Create a role carrying only the booking permission.
	resp = api.post("/v1/roles", map[string]any{
		"name":        "driver",
		"permissions": []string{auth.PermVehicleBook},
	}, adminHdr)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create role status: %d", resp.StatusCode)
	}
	role := decode[auth.Role](t, resp)

	resp = api.post("/v1/users/"+driver.ID+"/roles", map[string]any{
		"role_id": role.ID,
	}, adminHdr)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("assign role status: %d", resp.StatusCode)
	}
	resp.Body.Close()

	// The driver can book a vehicle but cannot see roles.
	drv := api.login("dana@fleet.test", "driver-password")
	drvHdr := bearerHeader(drv.AccessToken)

	resp = api.post("/v1/vehicles/book", map[string]any{"vehicle_id": "veh-42"}, drvHdr)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("book status: %d", resp.StatusCode)
	}
	booking := decode[map[string]any](t, resp)
	if id, _ := booking["booking_id"].(string); id == "" {
		t.Fatal("missing booking id")
	}

	resp = api.get("/v1/roles", drvHdr)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("driver listing roles: %d, want 403", resp.StatusCode)
	}

	// Disabling the driver kills the standing session.
	resp = api.do(http.MethodPatch, "/v1/users/"+driver.ID, map[string]any{
		"status": auth.UserStatusDisabled,
	}, adminHdr)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("disable status: %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = api.post("/v1/vehicles/book", map[string]any{"vehicle_id": "veh-42"}, drvHdr)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("disabled driver booking: %d, want 401", resp.StatusCode)
	}
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	api := newTestAPI(t)

	resp := api.get("/v1/users", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["error"] == "" {
		t.Fatal("expected error message")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodDelete, "/v1/auth/login", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Allow") != http.MethodPost {
		t.Fatalf("missing Allow header, got %q", resp.Header.Get("Allow"))
	}
}

func TestUnknownJSONFieldRejected(t *testing.T) {
	api := newTestAPI(t)

	resp := api.post("/v1/auth/login", map[string]any{
		"email":    testAdminEmail,
		"password": testAdminPassword,
		"extra":    true,
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestPermissionsCatalog(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login(testAdminEmail, testAdminPassword)

	resp := api.get("/v1/permissions", bearerHeader(admin.AccessToken))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("catalog status: %d", resp.StatusCode)
	}
	payload := decode[map[string][]auth.Permission](t, resp)
	found := false
	for _, p := range payload["permissions"] {
		if p.Key == auth.PermVehicleBook {
			found = true
		}
	}
	if !found {
		t.Fatalf("catalog missing %s: %+v", auth.PermVehicleBook, payload)
	}
}

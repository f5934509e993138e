package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetid.org/internal/ids"
)

const (
	defaultIssuer     = "fleetid"
	defaultAccessTTL  = 10 * time.Minute
	defaultRefreshTTL = 24 * time.Hour
)

// Service owns session issuance, validation, rotation, revocation and
// authorization decisions. Both transports call into it; neither carries
// policy of its own.
type Service struct {
	store  Store
	secret []byte
	issuer string

	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithIssuer overrides the token issuer claim.
func WithIssuer(issuer string) ServiceOption {
	return func(s *Service) {
		if v := strings.TrimSpace(issuer); v != "" {
			s.issuer = v
		}
	}
}

// WithAccessTTL configures access token lifetime.
func WithAccessTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.accessTTL = ttl
		}
	}
}

// WithRefreshTTL configures the session (refresh) lifetime.
func WithRefreshTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.refreshTTL = ttl
		}
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs a Service. The signing secret is required.
func NewService(store Store, secret string, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("auth: store is required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	svc := &Service{
		store:      store,
		secret:     []byte(secret),
		issuer:     defaultIssuer,
		accessTTL:  defaultAccessTTL,
		refreshTTL: defaultRefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// TokenPair is the result of authentication or refresh.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// EnsureBuiltins makes sure the predefined permission catalog exists.
func (s *Service) EnsureBuiltins(ctx context.Context) error {
	return s.store.Permissions().Ensure(ctx, BuiltinPermissions)
}

// Principal loads a user with resolved roles and permissions.
func (s *Service) Principal(ctx context.Context, userID string) (Principal, error) {
	user, err := s.store.Users().Find(ctx, userID)
	if err != nil {
		return Principal{}, err
	}
	roles, err := s.store.Roles().RolesForUser(ctx, userID)
	if err != nil {
		return Principal{}, err
	}
	perms, err := s.store.Permissions().ForUser(ctx, userID)
	if err != nil {
		return Principal{}, err
	}
	return NewPrincipal(user, roles, perms), nil
}

// Authenticate verifies credentials and issues a fresh session. Unknown
// email, wrong password and disabled account all fail with the same
// ErrInvalidCredentials so responses cannot enumerate login names.
func (s *Service) Authenticate(ctx context.Context, email, password string) (TokenPair, Principal, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return TokenPair{}, Principal{}, ErrInvalidCredentials
	}
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TokenPair{}, Principal{}, ErrInvalidCredentials
		}
		return TokenPair{}, Principal{}, err
	}
	if !CheckPassword(user.PasswordHash, password) || !user.Active() {
		return TokenPair{}, Principal{}, ErrInvalidCredentials
	}
	principal, err := s.Principal(ctx, user.ID)
	if err != nil {
		return TokenPair{}, Principal{}, err
	}
	pair, err := s.issueSession(ctx, principal)
	if err != nil {
		return TokenPair{}, Principal{}, err
	}
	return pair, principal, nil
}

// issueSession creates the session record and signs the token pair.
// Issuance is atomic: the single insert either lands or nothing exists.
func (s *Service) issueSession(ctx context.Context, principal Principal) (TokenPair, error) {
	now := s.now().UTC()
	secret, hash, err := newRefreshSecret()
	if err != nil {
		return TokenPair{}, err
	}
	sess := &Session{
		ID:          ids.New(),
		UserID:      principal.User.ID,
		RefreshHash: hash,
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.refreshTTL),
	}
	if err := s.store.Sessions().Create(ctx, sess); err != nil {
		return TokenPair{}, err
	}
	access, accessExp, err := s.signAccessToken(sess.ID, principal, now)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:      access,
		RefreshToken:     sess.ID + "." + secret,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: sess.ExpiresAt,
	}, nil
}

// Validate checks an access token against its session record. A revoked or
// expired session never validates again, regardless of the JWT signature.
func (s *Service) Validate(ctx context.Context, token string) (*Session, Principal, error) {
	claims, err := s.parseAccessToken(token)
	if err != nil {
		return nil, Principal{}, ErrSessionInvalid
	}
	sess, err := s.store.Sessions().Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, Principal{}, ErrSessionInvalid
		}
		return nil, Principal{}, err
	}
	now := s.now().UTC()
	if sess.Revoked || sess.Expired(now) || sess.UserID != claims.Subject {
		return nil, Principal{}, ErrSessionInvalid
	}
	principal, err := s.Principal(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, Principal{}, ErrSessionInvalid
		}
		return nil, Principal{}, err
	}
	if !principal.User.Active() {
		return nil, Principal{}, ErrSessionInvalid
	}
	// Best effort; validation must not fail on a lost last-seen update.
	_ = s.store.Sessions().Touch(ctx, sess.ID, now)
	return sess, principal, nil
}

// Refresh rotates a session: the presented refresh token is retired and a
// new session is issued for the same user. The old access and refresh
// tokens are invalid afterwards.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, Principal, error) {
	id, secret, err := splitRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, Principal{}, ErrSessionInvalid
	}
	sess, err := s.store.Sessions().Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TokenPair{}, Principal{}, ErrSessionInvalid
		}
		return TokenPair{}, Principal{}, err
	}
	now := s.now().UTC()
	if sess.Revoked || sess.Expired(now) {
		return TokenPair{}, Principal{}, ErrSessionInvalid
	}
	if !refreshSecretMatches(sess.RefreshHash, secret) {
		// A wrong secret for a live session smells like token theft;
		// retire the session instead of leaving it replayable.
		_, _ = s.store.Sessions().Revoke(ctx, sess.ID)
		return TokenPair{}, Principal{}, ErrSessionInvalid
	}
	principal, err := s.Principal(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TokenPair{}, Principal{}, ErrSessionInvalid
		}
		return TokenPair{}, Principal{}, err
	}
	if !principal.User.Active() {
		return TokenPair{}, Principal{}, ErrSessionInvalid
	}
	// The guarded revoke decides a refresh racing a revoke: whoever loses
	// sees false and the session cannot resurrect.
	rotated, err := s.store.Sessions().Revoke(ctx, sess.ID)
	if err != nil {
		return TokenPair{}, Principal{}, err
	}
	if !rotated {
		return TokenPair{}, Principal{}, ErrSessionInvalid
	}
	pair, err := s.issueSession(ctx, principal)
	if err != nil {
		return TokenPair{}, Principal{}, err
	}
	return pair, principal, nil
}

// RevokeToken revokes the session behind an access token. Revoking an
// already-revoked or expired session is a no-op.
func (s *Service) RevokeToken(ctx context.Context, token string) error {
	claims, err := s.parseAccessToken(token)
	if err != nil {
		return ErrSessionInvalid
	}
	_, err = s.store.Sessions().Revoke(ctx, claims.ID)
	return err
}

// RevokeSession revokes a session by id; idempotent.
func (s *Service) RevokeSession(ctx context.Context, sessionID string) error {
	_, err := s.store.Sessions().Revoke(ctx, sessionID)
	return err
}

// RevokeAllForUser invalidates every standing session for the user. Called
// on password change and on account disable.
func (s *Service) RevokeAllForUser(ctx context.Context, userID string) error {
	return s.store.Sessions().RevokeAllForUser(ctx, userID)
}

// Authorize evaluates (token, permission). Store failures surface as
// errors; every other outcome is a final Decision for this request.
func (s *Service) Authorize(ctx context.Context, token, permission string) (Decision, error) {
	permission = strings.TrimSpace(permission)
	if permission == "" {
		return Decision{}, fmt.Errorf("%w: permission is required", ErrInvalidInput)
	}
	_, principal, err := s.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionInvalid) {
			return Deny(DenySessionInvalid), nil
		}
		return Decision{}, err
	}
	if !principal.HasPermission(permission) {
		return Deny(DenyInsufficientPermission), nil
	}
	return Allow(principal), nil
}

// ReapExpired deletes sessions whose refresh window elapsed. Validation
// treats them as invalid either way; the reaper only reclaims storage.
func (s *Service) ReapExpired(ctx context.Context) (int64, error) {
	return s.store.Sessions().DeleteExpired(ctx, s.now().UTC())
}

// RunReaper periodically reaps expired sessions until ctx is cancelled.
func (s *Service) RunReaper(ctx context.Context, interval time.Duration, report func(int64, error)) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.ReapExpired(ctx)
			if report != nil {
				report(n, err)
			}
		}
	}
}

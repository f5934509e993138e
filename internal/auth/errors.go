package auth

import "errors"

var (
	ErrNotFound           = errors.New("auth: not found")
	ErrConflict           = errors.New("auth: already exists")
	ErrInvalidInput       = errors.New("auth: invalid input")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrSessionInvalid     = errors.New("auth: session invalid")
	ErrPermissionDenied   = errors.New("auth: insufficient permission")
	ErrStoreUnavailable   = errors.New("auth: store unavailable")
)

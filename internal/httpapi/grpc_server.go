package httpapi

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "fleetid.org/api/gen/go/fleetid/v1"
	"fleetid.org/internal/auth"
	"fleetid.org/internal/obs"
)

// GRPCServer implements the gRPC services defined in api/proto/fleetid/v1.
// It calls the same auth.Service the HTTP gateway uses, so a token yields
// the same verdict on both transports.
type GRPCServer struct {
	v1.UnimplementedAuthServiceServer
	v1.UnimplementedHealthServiceServer

	auth      *auth.Service
	readiness readinessChecker
	version   string
}

// NewGRPCServer creates the gRPC service wrapper.
func NewGRPCServer(authSvc *auth.Service, r readinessChecker, version string) *GRPCServer {
	return &GRPCServer{
		auth:      authSvc,
		readiness: r,
		version:   version,
	}
}

// ValidateToken resolves a token into its identity. Any invalid token comes
// back valid=false with empty identity fields; only a store outage is an
// RPC error.
func (s *GRPCServer) ValidateToken(ctx context.Context, req *v1.ValidateTokenRequest) (*v1.ValidateTokenResponse, error) {
	sess, principal, err := s.auth.Validate(ctx, req.GetToken())
	if err != nil {
		if errors.Is(err, auth.ErrSessionInvalid) {
			obs.ObserveValidation("grpc", "invalid")
			return &v1.ValidateTokenResponse{Valid: false}, nil
		}
		obs.ObserveValidation("grpc", "error")
		return nil, status.Errorf(codes.Unavailable, "token validation failed: %v", err)
	}
	obs.ObserveValidation("grpc", "ok")
	return &v1.ValidateTokenResponse{
		Valid:       true,
		UserId:      principal.User.ID,
		Roles:       principal.RoleNames(),
		Permissions: principal.PermissionKeys(),
		ExpiresAt:   sess.ExpiresAt.Unix(),
	}, nil
}

// Authorize answers (token, permission) with the same decision the HTTP
// gateway would make.
func (s *GRPCServer) Authorize(ctx context.Context, req *v1.AuthorizeRequest) (*v1.AuthorizeResponse, error) {
	decision, err := s.auth.Authorize(ctx, req.GetToken(), req.GetPermission())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		return nil, status.Errorf(codes.Unavailable, "authorization failed: %v", err)
	}
	resp := &v1.AuthorizeResponse{
		Allowed: decision.Allowed,
		Reason:  string(decision.Reason),
	}
	if decision.Allowed {
		resp.UserId = decision.Principal.User.ID
	}
	return resp, nil
}

// Check evaluates readiness. On failure returns gRPC Unavailable error.
func (s *GRPCServer) Check(ctx context.Context, _ *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	if err := s.readiness.Check(ctx); err != nil {
		obs.SetReady(false)
		return nil, status.Errorf(codes.Unavailable, "not ready: %v", err)
	}
	obs.SetReady(true)
	return &v1.HealthCheckResponse{
		Status:  "ok",
		Service: serviceName,
		Version: s.version,
	}, nil
}

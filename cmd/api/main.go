package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	v1 "fleetid.org/api/gen/go/fleetid/v1"
	"fleetid.org/internal/auth"
	"fleetid.org/internal/httpapi"
	"fleetid.org/internal/obs"
	"fleetid.org/internal/store/pg"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	dsn := os.Getenv("FLEETID_PG_DSN")
	if dsn == "" {
		log.Fatal("FLEETID_PG_DSN is required")
	}
	secret := os.Getenv("FLEETID_AUTH_SECRET")
	if secret == "" {
		log.Fatal("FLEETID_AUTH_SECRET is required")
	}

	store, err := pg.Open(dsn)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	var authOpts []auth.ServiceOption
	if ttl := durationEnv("FLEETID_ACCESS_TTL"); ttl > 0 {
		authOpts = append(authOpts, auth.WithAccessTTL(ttl))
	}
	if ttl := durationEnv("FLEETID_REFRESH_TTL"); ttl > 0 {
		authOpts = append(authOpts, auth.WithRefreshTTL(ttl))
	}

	authSvc, err := auth.NewService(store, secret, authOpts...)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	rbacSvc, err := auth.NewRBACService(store)
	if err != nil {
		log.Fatalf("rbac service: %v", err)
	}

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := rbacSvc.Bootstrap(bootCtx, os.Getenv("FLEETID_ADMIN_EMAIL"), os.Getenv("FLEETID_ADMIN_PASSWORD")); err != nil {
		bootCancel()
		log.Fatalf("bootstrap: %v", err)
	}
	bootCancel()

	probe := httpapi.ReadyProbe{DB: store.DB()}
	api := httpapi.New(probe, authSvc, rbacSvc, version)

	httpAddr := envOr("FLEETID_HTTP_ADDR", ":8080")
	grpcAddr := envOr("FLEETID_GRPC_ADDR", ":9090")

	srv := &http.Server{
		Addr:              httpAddr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	grpcImpl := httpapi.NewGRPCServer(authSvc, probe, version)
	v1.RegisterAuthServiceServer(grpcSrv, grpcImpl)
	v1.RegisterHealthServiceServer(grpcSrv, grpcImpl)

	reaperCtx, reaperCancel := context.WithCancel(context.Background())
	defer reaperCancel()
	go authSvc.RunReaper(reaperCtx, time.Hour, func(n int64, err error) {
		if err != nil {
			log.Printf("session reaper: %v", err)
			return
		}
		if n > 0 {
			log.Printf("session reaper: removed %d expired sessions", n)
		}
	})

	log.Printf("Starting fleetid-api %s http=%s grpc=%s", version, httpAddr, grpcAddr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http listen: %v", err)
		}
	}()
	go func() {
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			log.Fatalf("grpc listen: %v", err)
		}
		if err := grpcSrv.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	grpcSrv.GracefulStop()
	log.Println("Stopped")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return d
}

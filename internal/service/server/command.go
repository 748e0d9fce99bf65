package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	api "github.com/oshokin/ab-modules/internal/api/grpc/modules"
	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/logger"
	"github.com/oshokin/ab-modules/internal/service/session"
)

// Options controls the server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress overrides the listen address derived from the settings.
	ListenAddress string
	// Threshold overrides the alarm threshold from the settings when non-nil.
	Threshold *int
	// OnListen is called with the bound address once the listener is ready.
	OnListen func(addr net.Addr)
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until ctx is canceled or serving fails.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "server")

	// Load settings from configuration file.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Threshold from the command line overrides config.
	threshold := settings.Threshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}

	// Determine listen address from config or override.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create gRPC server with a fresh session behind the modules service.
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(api.UnaryLoggingInterceptor))
	api.RegisterModulesServiceServer(grpcServer, api.NewServer(session.New(threshold)))

	logger.InfoKV(ctx, "Server listening", "listen_address", lis.Addr().String(), "threshold", threshold)

	if opts.OnListen != nil {
		opts.OnListen(lis.Addr())
	}

	// Serve until the context is canceled, then stop gracefully.
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info(ctx, "gRPC server stopped")

	return nil
}

// resolveListenAddress uses override when set, otherwise binds every
// interface on the port of configAddr (e.g. "host:8080" -> ":8080").
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Fall back to the configured address.
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}

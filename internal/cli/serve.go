package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rentzila/e2e/internal/config"
	"github.com/rentzila/e2e/internal/fakeapi"
)

// FakeAPIDependencies holds everything needed to serve the fake backend
type FakeAPIDependencies struct {
	ServerConfig config.ServerConfig
	Handler      http.Handler
	Logger       *slog.Logger
}

// NewFakeAPIDependencies builds an in-memory fake backend seeded with the
// configured admin account
func NewFakeAPIDependencies(cfg config.ServerConfig, logger *slog.Logger) FakeAPIDependencies {
	admin := config.Account{Email: cfg.AdminEmail, Password: cfg.AdminPassword}
	server := fakeapi.New(admin, fakeapi.NewMemoryBackcallRepository(), logger)
	return FakeAPIDependencies{
		ServerConfig: cfg,
		Handler:      server.Handler(),
		Logger:       logger,
	}
}

// RunServe serves the fake backend until ctx is done or a shutdown signal arrives
func RunServe(ctx context.Context, deps FakeAPIDependencies) error {
	listener, server, err := listen(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serve(deps.Logger, server, listener)
	})
	g.Go(func() error {
		select {
		case sig := <-shutdown:
			deps.Logger.Info("received signal, shutting down fake api", "signal", sig)
		case <-ctx.Done():
			deps.Logger.Info("context done, shutting down fake api")
		}
		return shutdownServer(deps.Logger, server, 30*time.Second)
	})
	return g.Wait()
}

// StartServer creates the listener and serves the fake backend in the background
func StartServer(deps FakeAPIDependencies) (net.Listener, *http.Server, error) {
	listener, server, err := listen(deps)
	if err != nil {
		return nil, nil, err
	}

	go func() {
		if err := serve(deps.Logger, server, listener); err != nil {
			deps.Logger.Error("fake api server error", "error", err)
		}
	}()

	return listener, server, nil
}

func listen(deps FakeAPIDependencies) (net.Listener, *http.Server, error) {
	if deps.Handler == nil {
		return nil, nil, errors.New("fake api handler is required")
	}

	listener, err := net.Listen("tcp", deps.ServerConfig.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           deps.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return listener, server, nil
}

func serve(logger *slog.Logger, server *http.Server, listener net.Listener) error {
	logger.Info("fake api listening", "addr", listener.Addr().String())
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fake api server: %w", err)
	}
	return nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(logger *slog.Logger, server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(logger, server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(logger *slog.Logger, server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	logger.Info("received signal, shutting down fake api", "signal", sig)

	return shutdownServer(logger, server, shutdownTimeout)
}

func shutdownServer(logger *slog.Logger, server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// Force close once the grace period is over
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("fake api stopped")
	return nil
}

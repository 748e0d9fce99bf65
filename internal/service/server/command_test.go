package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/oshokin/ab-modules/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestResolveListenAddress covers override, port extraction and invalid input.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	got, err := resolveListenAddress("example.com:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", got)

	got, err = resolveListenAddress("example.com:8080", "127.0.0.1:9090")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", got)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// TestRun_StopsOnCancel starts the server on an ephemeral port and stops it via the context.
func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listening := make(chan net.Addr, 1)
	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, &Options{
			ConfigPath:    filepath.Join(t.TempDir(), "missing.yaml"),
			ListenAddress: "127.0.0.1:0",
			OnListen:      func(addr net.Addr) { listening <- addr },
		})
	}()

	select {
	case addr := <-listening:
		require.NotEmpty(t, addr.String())
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

// TestRun_InvalidSettings fails before listening.
func TestRun_InvalidSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, &config.Config{ServerAddress: "127.0.0.1:0"}))

	err := Run(context.Background(), &Options{
		ConfigPath:    path,
		ListenAddress: "256.0.0.1:bad",
	})
	require.Error(t, err)
}

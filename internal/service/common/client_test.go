//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	api "github.com/oshokin/ab-modules/internal/api/grpc/modules"
	"github.com/oshokin/ab-modules/internal/domain/alarm"
	"github.com/oshokin/ab-modules/internal/domain/calculator"
	"github.com/oshokin/ab-modules/internal/service/session"
)

const bufferSize = 1 << 20

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// startBufconn serves a fresh session over an in-memory listener and returns a connected client.
func startBufconn(t *testing.T, threshold int) *Client {
	t.Helper()

	lis := bufconn.Listen(bufferSize)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(api.UnaryLoggingInterceptor))
	api.RegisterModulesServiceServer(grpcServer, api.NewServer(session.New(threshold)))

	go func() {
		_ = grpcServer.Serve(lis) //nolint:errcheck // Stopped in cleanup.
	}()

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}

	client, err := Dial(
		context.Background(),
		"passthrough:///bufnet",
		WithCallTimeout(3*time.Second),
		WithDialOptions(grpc.WithContextDialer(dialer)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()

		grpcServer.Stop()
	})

	return client
}

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	_, ok := ctx.Deadline()
	require.False(t, ok)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_Close tolerates nil and unconnected clients.
func TestClient_Close(t *testing.T) {
	t.Parallel()

	var nilClient *Client

	require.NoError(t, nilClient.Close())
	require.NoError(t, new(Client).Close())
}

// TestClient_Roundtrip drives the demo scenario through a real gRPC stack.
func TestClient_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := startBufconn(t, 100)

	history, err := client.History(ctx)
	require.NoError(t, err)
	require.Empty(t, history)

	sum, err := client.Evaluate(ctx, calculator.OperationAdd, 15, 8)
	require.NoError(t, err)
	require.Equal(t, api.Evaluation{Value: 23, Triggered: false}, sum)

	product, err := client.Evaluate(ctx, calculator.OperationMultiply, 15, 8)
	require.NoError(t, err)
	require.Equal(t, api.Evaluation{Value: 120, Triggered: true}, product)

	// Latched: a small result keeps the alarm triggered.
	small, err := client.Evaluate(ctx, calculator.OperationSubtract, 1, 1)
	require.NoError(t, err)
	require.True(t, small.Triggered)

	history, err = client.History(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Addition: 15 + 8 = 23",
		"Multiplication: 15 * 8 = 120",
		"Subtraction: 1 - 1 = 0",
	}, history)

	snapshot, err := client.Alarm(ctx)
	require.NoError(t, err)
	require.Equal(t, api.AlarmSnapshot{Threshold: 100, State: alarm.StateTriggered, Triggered: true}, snapshot)
}

// TestClient_DivisionByZero maps the remote InvalidArgument status back to the domain error.
func TestClient_DivisionByZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := startBufconn(t, 0)

	_, err := client.Evaluate(ctx, calculator.OperationDivide, 10, 0)
	require.ErrorIs(t, err, calculator.ErrInvalidArgument)
	require.EqualError(t, err, "evaluate: divide: division by zero: invalid argument")

	history, err := client.History(ctx)
	require.NoError(t, err)
	require.Empty(t, history)

	snapshot, err := client.Alarm(ctx)
	require.NoError(t, err)
	require.False(t, snapshot.Triggered)
}

// TestFromStatus keeps the server message and only maps InvalidArgument.
func TestFromStatus(t *testing.T) {
	t.Parallel()

	err := fromStatus(status.Error(codes.InvalidArgument, "divide: division by zero: invalid argument"))
	require.ErrorIs(t, err, calculator.ErrInvalidArgument)
	require.EqualError(t, err, "divide: division by zero: invalid argument")

	internal := status.Error(codes.Internal, "unable to evaluate")
	require.Same(t, internal, fromStatus(internal))
	require.NotErrorIs(t, fromStatus(internal), calculator.ErrInvalidArgument)
}

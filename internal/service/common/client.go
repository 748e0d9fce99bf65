//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	api "github.com/oshokin/ab-modules/internal/api/grpc/modules"
	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/domain/calculator"
)

// Client wraps the modules service client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection.
	conn *grpc.ClientConn
	// api is the modules service client.
	api *api.ModulesServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// dialOptions are appended to the defaults used by Dial.
	dialOptions []grpc.DialOption
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithDialOptions appends extra gRPC dial options, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOptions = append(c.dialOptions, opts...)
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial creates a client for the modules server at address.
// The connection uses insecure transport credentials.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	client := &Client{
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	dialOptions := append(
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		client.dialOptions...,
	)

	conn, err := grpc.NewClient(address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial modules server: %w", err)
	}

	client.conn = conn
	client.api = api.NewModulesServiceClient(conn)

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Evaluate runs op remotely; the server records it and checks the alarm.
func (c *Client) Evaluate(ctx context.Context, op calculator.Operation, lhs, rhs int) (api.Evaluation, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := api.EncodeEvaluateRequest(api.EvaluateRequest{
		Operation: op,
		LHS:       lhs,
		RHS:       rhs,
	})

	response, err := c.api.Evaluate(callCtx, request)
	if err != nil {
		return api.Evaluation{}, fmt.Errorf("evaluate: %w", fromStatus(err))
	}

	evaluation, err := api.DecodeEvaluation(response)
	if err != nil {
		return api.Evaluation{}, fmt.Errorf("decode evaluation: %w", err)
	}

	return evaluation, nil
}

// History returns the server's recorded lines, oldest first.
func (c *Client) History(ctx context.Context) ([]string, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetHistory(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("get history: %w", fromStatus(err))
	}

	history, err := api.DecodeHistory(response)
	if err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	return history, nil
}

// Alarm returns the server's alarm snapshot.
func (c *Client) Alarm(ctx context.Context) (api.AlarmSnapshot, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetAlarm(callCtx, new(emptypb.Empty))
	if err != nil {
		return api.AlarmSnapshot{}, fmt.Errorf("get alarm: %w", fromStatus(err))
	}

	snapshot, err := api.DecodeAlarm(response)
	if err != nil {
		return api.AlarmSnapshot{}, fmt.Errorf("decode alarm: %w", err)
	}

	return snapshot, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

// invalidArgumentError carries a server InvalidArgument message verbatim
// while matching calculator.ErrInvalidArgument.
type invalidArgumentError struct {
	// message is the status message sent by the server.
	message string
}

func (e *invalidArgumentError) Error() string {
	return e.message
}

func (e *invalidArgumentError) Unwrap() error {
	return calculator.ErrInvalidArgument
}

// fromStatus turns InvalidArgument statuses back into calculator.ErrInvalidArgument.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return err
	}

	return &invalidArgumentError{message: st.Message()}
}

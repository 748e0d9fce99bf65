package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/domain/calculator"
	"github.com/oshokin/ab-modules/internal/logger"
	"github.com/oshokin/ab-modules/internal/service/common"
)

// Options configures the client commands.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Remote sends calculations to the server instead of evaluating locally.
	Remote bool
	// Out receives command output; os.Stdout when nil.
	Out io.Writer
}

// Calc evaluates lhs op rhs and prints "lhs op rhs = result".
// Remote calls also print a notice when the server's alarm is triggered.
func Calc(ctx context.Context, opts *Options, op calculator.Operation, lhs, rhs int) error {
	ctx = logger.WithName(ctx, "calc")
	out := output(opts)

	// Evaluate in-process unless the server was requested.
	if !opts.Remote {
		result, err := calculator.Apply(calculator.Calculator{}, op, lhs, rhs)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		_, err = fmt.Fprintf(out, "%d %s %d = %d\n", lhs, op.Symbol(), rhs, result)

		return err
	}

	return withClient(ctx, opts, func(client *common.Client) error {
		evaluation, err := client.Evaluate(ctx, op, lhs, rhs)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(out, "%d %s %d = %d\n", lhs, op.Symbol(), rhs, evaluation.Value); err != nil {
			return err
		}

		// The server's alarm is sticky, so the notice repeats on later calls.
		if evaluation.Triggered {
			_, err = fmt.Fprintln(out, "Notification: Result exceeded threshold!")
		}

		return err
	})
}

// History prints the server's recorded lines, one per row.
func History(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "history")
	out := output(opts)

	return withClient(ctx, opts, func(client *common.Client) error {
		history, err := client.History(ctx)
		if err != nil {
			return err
		}

		// Print entries oldest first.
		for _, entry := range history {
			if _, err = fmt.Fprintf(out, "- %s\n", entry); err != nil {
				return err
			}
		}

		return nil
	})
}

// Alarm prints the server's alarm threshold and state.
func Alarm(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm")
	out := output(opts)

	return withClient(ctx, opts, func(client *common.Client) error {
		snapshot, err := client.Alarm(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "threshold: %d, state: %s\n", snapshot.Threshold, snapshot.State)

		return err
	})
}

// withClient loads settings, dials the server and runs fn.
func withClient(ctx context.Context, opts *Options, fn func(*common.Client) error) error {
	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected", "server_address", serverAddress)

	return fn(client)
}

// output returns the configured writer or stdout.
func output(opts *Options) io.Writer {
	if opts.Out != nil {
		return opts.Out
	}

	return os.Stdout
}

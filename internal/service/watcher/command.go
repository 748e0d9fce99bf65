package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	api "github.com/oshokin/ab-modules/internal/api/grpc/modules"
	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/logger"
	"github.com/oshokin/ab-modules/internal/service/common"
)

// Options controls the watcher polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between alarm state checks.
	PollInterval time.Duration
	// Timeout overrides the per-RPC timeout from the settings when positive.
	Timeout time.Duration
	// Out receives the notification line; os.Stdout when nil.
	Out io.Writer
}

// DefaultPollInterval is used when Options.PollInterval is not positive.
const DefaultPollInterval = 5 * time.Second

// errAlarmTriggered stops the polling loop.
var errAlarmTriggered = errors.New("alarm triggered")

// alarmReader is the part of common.Client the watcher needs.
type alarmReader interface {
	Alarm(ctx context.Context) (api.AlarmSnapshot, error)
}

// Run polls the server's alarm and returns once it is triggered or ctx is canceled.
// Failed polls are logged and retried on the next tick.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "watcher")

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

	// Establish gRPC connection with the effective per-RPC timeout.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(callTimeout(cfg, opts)))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching alarm", "server_address", serverAddress)

	return watch(ctx, client, opts)
}

// watch checks immediately, then on every tick.
func watch(ctx context.Context, client alarmReader, opts *Options) error {
	// Fall back to the default interval for unset values.
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	// Setup polling ticker.
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Main polling loop until the alarm fires or the context is canceled.
	for {
		err := checkAlarm(ctx, client, out)

		switch {
		case errors.Is(err, errAlarmTriggered):
			return nil
		case err != nil:
			logger.ErrorKV(ctx, "Check alarm failed", "error", err)
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case <-ticker.C:
		}
	}
}

// callTimeout returns opts.Timeout when positive, otherwise the configured timeout.
func callTimeout(cfg *config.Config, opts *Options) time.Duration {
	if opts.Timeout > 0 {
		return opts.Timeout
	}

	return cfg.Timeout
}

// checkAlarm returns errAlarmTriggered after printing the notification.
func checkAlarm(ctx context.Context, client alarmReader, out io.Writer) error {
	snapshot, err := client.Alarm(ctx)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Alarm polled", "threshold", snapshot.Threshold, "state", snapshot.State.String())

	// Nothing to report while the alarm is idle.
	if !snapshot.Triggered {
		return nil
	}

	if _, err = fmt.Fprintf(out, "Notification: Result exceeded threshold %d!\n", snapshot.Threshold); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}

	return errAlarmTriggered
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ab-modules/internal/service/watcher"
)

var (
	// watchOptions collects the watch flags.
	watchOptions = new(watcher.Options)

	// watchCmd polls a server until its alarm is triggered.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Wait until the alarm of a running server is triggered.",
		Long: `Polls the server's alarm at a fixed interval and exits after printing a
notification once it has been triggered. Failed polls are logged and retried.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			watchOptions.ConfigPath = configPath
			watchOptions.Out = cmd.OutOrStdout()

			return watcher.Run(ctx, watchOptions)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	watchCmd.Flags().StringVarP(&watchOptions.ServerAddress, "server", "s", "", "server address override")
	watchCmd.Flags().
		DurationVarP(&watchOptions.PollInterval, "interval", "i", watcher.DefaultPollInterval, "polling interval")
	watchCmd.Flags().
		DurationVarP(&watchOptions.Timeout, "timeout", "t", 0, "per-RPC timeout, overrides the configured one")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ab-modules/internal/service/client"
)

var (
	// queryServerAddress overrides the configured server address.
	queryServerAddress string

	// historyCmd prints the server's operation log.
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Print the operation log of a running server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.History(ctx, queryOptions(cmd))
		},
	}

	// alarmCmd prints the server's alarm state.
	alarmCmd = &cobra.Command{
		Use:   "alarm",
		Short: "Print the alarm threshold and state of a running server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.Alarm(ctx, queryOptions(cmd))
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	for _, c := range []*cobra.Command{historyCmd, alarmCmd} {
		c.Flags().StringVarP(&queryServerAddress, "server", "s", "", "server address override")
	}
}

// queryOptions builds client options from the shared flags.
func queryOptions(cmd *cobra.Command) *client.Options {
	return &client.Options{
		ConfigPath:    configPath,
		ServerAddress: queryServerAddress,
		Out:           cmd.OutOrStdout(),
	}
}

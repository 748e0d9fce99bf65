package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ab-modules/internal/service/server"
)

var (
	// serveThreshold overrides the configured alarm threshold.
	serveThreshold int

	// serveCmd runs the gRPC server.
	serveCmd = &cobra.Command{
		Use:   "serve [listen-address]",
		Short: "Serve the calculator, log and alarm over gRPC.",
		Long: `Starts the gRPC server. All clients share one operation log and one alarm.

Only the port from server_addr is used for listening (e.g. :50061).
A listen address argument overrides it (e.g. :9090, 0.0.0.0:8080).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			}

			if cmd.Flags().Changed("threshold") {
				options.Threshold = &serveThreshold
			}

			return server.Run(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	serveCmd.Flags().IntVarP(&serveThreshold, "threshold", "t", 0, "alarm threshold override")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/service/demo"
)

var (
	// demoOptions collects the demo flags.
	demoOptions = demo.DefaultOptions()

	// demoCmd runs the classic add/multiply/log/notify scenario.
	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run the calculator, log and alarm demo.",
		Long: `Adds and multiplies two numbers, logs each step, checks every result against
the alarm threshold and prints the operation log.

The threshold comes from the configuration file unless --threshold is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			if !cmd.Flags().Changed("threshold") {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load settings: %w", err)
				}

				demoOptions.Threshold = cfg.Threshold
			}

			demoOptions.Out = cmd.OutOrStdout()

			return demo.Run(ctx, demoOptions)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	demoCmd.Flags().IntVarP(&demoOptions.Threshold, "threshold", "t", config.DefaultThreshold, "alarm threshold")
	demoCmd.Flags().IntVar(&demoOptions.FirstNumber, "first", demo.DefaultFirstNumber, "first operand")
	demoCmd.Flags().IntVar(&demoOptions.SecondNumber, "second", demo.DefaultSecondNumber, "second operand")
}

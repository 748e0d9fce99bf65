package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/ab-modules/internal/domain/calculator"
	"github.com/oshokin/ab-modules/internal/service/client"
)

// calcArgs is the number of positional arguments of calc.
const calcArgs = 3

var (
	// calcOptions collects the calc flags.
	calcOptions = new(client.Options)

	// calcCmd evaluates a single expression.
	calcCmd = &cobra.Command{
		Use:   "calc <operation> <lhs> <rhs>",
		Short: "Evaluate one integer operation.",
		Long: `Evaluates add, subtract, multiply or divide (names or + - * /) over two integers.

Division truncates toward zero; dividing by zero is an error.
With --remote the expression is sent to a running server, which records it and checks its alarm.`,
		Example: `  ab-modules calc add 15 8
  ab-modules calc / -- -7 2
  ab-modules calc multiply 15 8 --remote`,
		Args: cobra.ExactArgs(calcArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			op, err := calculator.ParseOperation(args[0])
			if err != nil {
				return err
			}

			lhs, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse lhs %q: %w", args[1], calculator.ErrInvalidArgument)
			}

			rhs, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("parse rhs %q: %w", args[2], calculator.ErrInvalidArgument)
			}

			calcOptions.ConfigPath = configPath
			calcOptions.Out = cmd.OutOrStdout()

			return client.Calc(ctx, calcOptions, op, lhs, rhs)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	calcCmd.Flags().BoolVarP(&calcOptions.Remote, "remote", "r", false, "evaluate on the server")
	calcCmd.Flags().StringVarP(&calcOptions.ServerAddress, "server", "s", "", "server address override")
}

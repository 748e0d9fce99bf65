package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand sets root's --version flag and adds a `version`
// subcommand that prints Full. The subcommand skips root's pre-run hooks so it
// works without a valid configuration.
func AttachCobraVersionCommand(root *cobra.Command) {
	root.Version = Short()

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print the version, commit hash and build timestamp injected at build time via ldflags.",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			// Skip configuration loading.
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full())
		},
	})
}

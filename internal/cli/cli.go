// Package cli implements the ldapviz command-line interface.
//
// Running the binary with no arguments renders every scenario as PNG into
// the output directory. Subcommands allow generating a subset, choosing
// other formats, or listing what would be produced. All commands support
// --verbose (-v) for debug-level logging; loggers travel through
// context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ldapviz/pkg/buildinfo"
)

// appName is the binary name used in help text and completions.
const appName = "ldapviz"

// Execute runs the ldapviz CLI and returns an error if any command fails.
//
// The bare invocation (no subcommand) is equivalent to "ldapviz generate"
// with defaults: all five diagrams, PNG, written to ./output.
func Execute(ctx context.Context) error {
	var verbose bool

	genOpts := defaultGenerateOpts()

	root := &cobra.Command{
		Use:          appName,
		Short:        "ldapviz renders LDAP monitoring diagrams",
		Long:         `ldapviz renders a fixed set of illustrative diagrams for an LDAP monitoring setup - architecture, validation coverage, validation matrix, test timeline, and firewall rules - as static image files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), nil, genOpts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

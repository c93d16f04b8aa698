package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ldapviz/pkg/render"
	"github.com/matzehuels/ldapviz/pkg/scenario"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	outputDir string // output directory, created if absent
	formats   string // comma-separated output formats
	profile   string // optional TOML profile path
}

// defaultGenerateOpts returns the options used for the bare invocation:
// every scenario, PNG, into ./output.
func defaultGenerateOpts() *generateOpts {
	return &generateOpts{outputDir: "output"}
}

// newGenerateCmd creates the generate command.
// With no arguments it renders all five scenarios in their fixed order;
// scenario names select a subset.
func newGenerateCmd() *cobra.Command {
	opts := defaultGenerateOpts()

	cmd := &cobra.Command{
		Use:       "generate [scenario...]",
		Short:     "Render monitoring diagrams to image files",
		ValidArgs: scenario.Names(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", opts.outputDir, "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "TOML profile overriding diagram labels")

	return cmd
}

// runGenerate builds and renders the requested scenarios sequentially.
// The first failure aborts the run; nothing is retried.
func runGenerate(ctx context.Context, names []string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	formats := render.ParseFormats(opts.formats)
	if err := render.ValidateFormats(formats); err != nil {
		return err
	}

	prof := scenario.DefaultProfile()
	if opts.profile != "" {
		var err error
		prof, err = scenario.LoadProfile(opts.profile)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded profile %s (%d regions)", opts.profile, len(prof.Regions))
	}

	scenarios, err := resolveScenarios(names)
	if err != nil {
		return err
	}

	run := newProgress(logger)
	for _, s := range scenarios {
		d := s.Build(prof)
		logger.Debugf("Built %s: %d nodes, %d edges", s.Name, d.NodeCount(), d.EdgeCount())

		paths, err := render.WriteFiles(ctx, d, opts.outputDir, s.Basename, formats)
		if err != nil {
			printError("%s diagram failed", s.Name)
			return fmt.Errorf("generate %s: %w", s.Name, err)
		}

		printSuccess("%s diagram generated", s.Name)
		for _, p := range paths {
			printFile(p)
		}
	}
	run.done(fmt.Sprintf("Generated %d diagrams into %s/", len(scenarios), opts.outputDir))

	return nil
}

// resolveScenarios maps CLI arguments to scenarios, preserving the fixed
// generation order and ignoring duplicates. No arguments means all.
func resolveScenarios(names []string) ([]scenario.Scenario, error) {
	if len(names) == 0 {
		return scenario.All(), nil
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := scenario.ByName(name); !ok {
			return nil, fmt.Errorf("unknown scenario %q (valid: %s)", name, strings.Join(scenario.Names(), ", "))
		}
		requested[name] = true
	}

	var out []scenario.Scenario
	for _, s := range scenario.All() {
		if requested[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}

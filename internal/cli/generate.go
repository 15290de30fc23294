package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/lintcfg/internal/flavor"
	"github.com/dshills/lintcfg/internal/logging"
	"github.com/dshills/lintcfg/internal/output"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [flavor]",
		Short: "Compose and write the lint configuration",
		Long: `Compose the override table for a flavor and write it as .eslintrc JSON,
YAML or a CommonJS module. The flavor defaults to the configured one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(a.cfg)
			if err != nil {
				return err
			}
			name := ws.flavorName(args)
			build, err := ws.builder(name)
			if err != nil {
				return err
			}
			if _, err := output.GetWriter(a.cfg.Format); err != nil {
				return err
			}

			doc := &output.Document{
				Flavor:     name,
				Prettier:   a.cfg.Prettier,
				TypeScript: ws.prober.Has(flavor.TypeScriptPackage),
				Config:     build(ws.options()),
			}

			if err := output.WriteDocument(doc, a.cfg.Format, a.cfg.Out, cmd.OutOrStdout()); err != nil {
				return runtimeErr("writing output: %w", err)
			}
			if a.cfg.Out != "" {
				logging.Info().
					Str("flavor", name).
					Str("out", a.cfg.Out).
					Int("overrides", len(doc.Config.Overrides)).
					Msg("wrote config")
			}
			return nil
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().String("format", "", "Output format (json, yaml, js, text)")
	cmd.Flags().String("out", "", "Output file path (default: stdout)")
	return cmd
}

func newFlavorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flavors",
		Short: "List available flavors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range flavor.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, flavor.Describe(name))
			}
		},
	}
}

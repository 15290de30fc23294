package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRulesetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rulesets",
		Short: "Inspect the active rulesets",
	}
	cmd.PersistentFlags().String("rulesets", "", "Directory of custom rulesets shadowing the built-ins")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ruleset names and where each comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(a.cfg)
			if err != nil {
				return err
			}
			for _, name := range ws.rulesets.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %s\n", name, ws.rulesets.Origin(name))
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a ruleset as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(a.cfg)
			if err != nil {
				return err
			}
			frag := ws.rulesets.Ruleset(args[0])
			if frag == nil {
				return fmt.Errorf("unknown ruleset %q", args[0])
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(frag); err != nil {
				return runtimeErr("encoding ruleset: %w", err)
			}
			if err := enc.Close(); err != nil {
				return runtimeErr("encoding ruleset: %w", err)
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

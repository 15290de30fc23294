package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProbeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <package>...",
		Short: "Report whether packages are declared and installed",
		Long: `Report, for each package, whether package.json declares it and whether it
resolves from node_modules. --assume and --assume-absent force the answer.
Exits with code 1 when any package is not installed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(a.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			missing := 0
			for _, name := range args {
				installed := ws.prober.Has(name)
				if !installed {
					missing++
				}
				note := ""
				if _, ok := ws.forced[name]; ok {
					note = " (assumed)"
				}
				fmt.Fprintf(out, "%-32s declared=%s installed=%s%s\n",
					name, yesNo(ws.manifest.Declares(name)), yesNo(installed), note)
			}

			if missing > 0 {
				a.exitCode = ExitFindings
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("assume", nil, "Treat packages as installed (comma-separated)")
	cmd.Flags().StringSlice("assume-absent", nil, "Treat packages as not installed (comma-separated)")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

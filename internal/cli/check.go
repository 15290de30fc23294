package cli

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dshills/lintcfg/internal/logging"
)

// skipDirs are never walked when matching patterns against the project.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

func newCheckCmd(a *app) *cobra.Command {
	var match bool

	cmd := &cobra.Command{
		Use:   "check [flavor]",
		Short: "Validate the file patterns a flavor emits",
		Long: `Build the flavor and validate every override pattern as a glob. With
--match, also count the project files each pattern selects. Invalid patterns
exit with code 1; patterns that select nothing are reported but do not fail.`,
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
			cfg := build(ws.options())

			var files []string
			if match {
				files, err = projectFiles(os.DirFS(a.cfg.ProjectRoot))
				if err != nil {
					return runtimeErr("walking project: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, group := range cfg.Files() {
				for _, pattern := range group {
					if !doublestar.ValidatePattern(pattern) {
						invalid++
						logging.Warn().Int("override", i+1).Str("pattern", pattern).Msg("invalid glob")
						fmt.Fprintf(out, "[%d] INVALID %s\n", i+1, pattern)
						continue
					}
					if !match {
						fmt.Fprintf(out, "[%d] ok      %s\n", i+1, pattern)
						continue
					}
					n := countMatches(pattern, files)
					status := "ok     "
					if n == 0 {
						status = "unused "
					}
					fmt.Fprintf(out, "[%d] %s %s (%d files)\n", i+1, status, pattern, n)
				}
			}

			fmt.Fprintf(out, "%s: %d overrides, %d invalid patterns\n", name, len(cfg.Overrides), invalid)
			if invalid > 0 {
				a.exitCode = ExitFindings
			}
			return nil
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().BoolVar(&match, "match", false, "Count project files selected by each pattern")
	return cmd
}

// projectFiles lists regular files in fsys, skipping dependency and VCS
// directories.
func projectFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// countMatches counts files selected by pattern. Patterns are relative to
// the project root; a leading "./" is accepted.
func countMatches(pattern string, files []string) int {
	pattern = strings.TrimPrefix(pattern, "./")
	n := 0
	for _, f := range files {
		if ok, _ := doublestar.Match(pattern, f); ok {
			n++
		}
	}
	return n
}

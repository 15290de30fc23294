package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dshills/lintcfg/internal/config"
	"github.com/dshills/lintcfg/internal/flavor"
	"github.com/dshills/lintcfg/internal/logging"
	"github.com/dshills/lintcfg/internal/probe"
	"github.com/dshills/lintcfg/internal/project"
	"github.com/dshills/lintcfg/internal/ruleset"
)

// workspace is the host project as the builders see it.
type workspace struct {
	cfg      config.Config
	manifest project.Manifest
	rulesets *ruleset.Layered
	forced   map[string]bool
	prober   probe.Prober
}

// openWorkspace reads package.json, the rulesets directory and the probe
// assumptions named by cfg.
func openWorkspace(cfg config.Config) (*workspace, error) {
	forced, err := assumptions(cfg.Assume, cfg.AssumeAbsent)
	if err != nil {
		return nil, err
	}

	manifest, err := project.ReadManifest(cfg.ProjectRoot)
	if err != nil {
		return nil, runtimeErr("%w", err)
	}

	builtin, err := ruleset.LoadBuiltin()
	if err != nil {
		return nil, runtimeErr("%w", err)
	}
	providers := []ruleset.Provider{builtin}
	if cfg.RulesetsDir != "" {
		set, err := ruleset.LoadDir(cfg.RulesetsDir)
		if err != nil {
			return nil, runtimeErr("%w", err)
		}
		logging.Debug().Str("dir", cfg.RulesetsDir).Strs("names", set.Names()).Msg("loaded custom rulesets")
		providers = append([]ruleset.Provider{set}, providers...)
	}

	return &workspace{
		cfg:      cfg,
		manifest: manifest,
		rulesets: ruleset.Layer(providers...),
		forced:   forced,
		prober:   probe.Override(probe.NodeModules{Root: cfg.ProjectRoot}, forced),
	}, nil
}

// assumptions merges --assume and --assume-absent. Naming a package in both
// is a usage error.
func assumptions(present, absent []string) (map[string]bool, error) {
	forced := make(map[string]bool, len(present)+len(absent))
	for _, name := range present {
		forced[name] = true
	}
	var conflicts []string
	for _, name := range absent {
		if forced[name] {
			conflicts = append(conflicts, name)
			continue
		}
		forced[name] = false
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return nil, fmt.Errorf("assumed both present and absent: %v", conflicts)
	}
	return forced, nil
}

func (w *workspace) options() flavor.Options {
	return flavor.Options{
		PrettierIntegration: w.cfg.Prettier,
		PackageType:         w.manifest.Type,
		Rulesets:            w.rulesets,
		Probe:               w.prober,
	}
}

// flavorName picks the positional flavor argument over the configured one.
func (w *workspace) flavorName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return w.cfg.Flavor
}

// builder looks up the named flavor.
func (w *workspace) builder(name string) (flavor.Builder, error) {
	b, ok := flavor.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown flavor %q (available: %v)", name, flavor.Names())
	}
	return b, nil
}

// addBuildFlags binds the flags that steer composition.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("prettier", false, "Layer the prettier ruleset into every fragment")
	cmd.Flags().String("rulesets", "", "Directory of custom rulesets shadowing the built-ins")
	cmd.Flags().StringSlice("assume", nil, "Treat packages as installed (comma-separated)")
	cmd.Flags().StringSlice("assume-absent", nil, "Treat packages as not installed (comma-separated)")
}

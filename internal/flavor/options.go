package flavor

import (
	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/logging"
	"github.com/dshills/lintcfg/internal/probe"
	"github.com/dshills/lintcfg/internal/ruleset"
)

// TypeScriptPackage is the optional toolchain that gates type-aware members.
const TypeScriptPackage = "typescript"

// Options is the read-only input to every builder.
type Options struct {
	// PrettierIntegration layers the formatter-integration ruleset onto the
	// shared preferences.
	PrettierIntegration bool

	// PackageType is the project's package.json "type" ("module" or
	// "commonjs"). Only Node reads it.
	PackageType string

	// Rulesets supplies fragment contents. Nil means the built-in presets.
	Rulesets ruleset.Provider

	// Probe answers toolchain presence. Nil means node_modules resolution
	// from the working directory.
	Probe probe.Prober
}

// env is the per-invocation state shared by one tree's members.
type env struct {
	rules         ruleset.Provider
	prettier      bool
	hasTypeScript bool
}

func newEnv(opts Options) *env {
	rules := opts.Rulesets
	if rules == nil {
		rules = ruleset.Builtin()
	}
	p := opts.Probe
	if p == nil {
		p = probe.NodeModules{}
	}
	e := &env{
		rules:         rules,
		prettier:      opts.PrettierIntegration,
		hasTypeScript: p.Has(TypeScriptPackage),
	}
	logging.Debug().
		Bool("typescript", e.hasTypeScript).
		Bool("prettier", e.prettier).
		Msg("flavor options resolved")
	return e
}

// layer returns a pipeline step merging the named ruleset.
func (e *env) layer(name string) func(compose.Fragment) compose.Fragment {
	f := e.rules.Ruleset(name)
	if f == nil {
		logging.Warn().Str("ruleset", name).Msg("unknown ruleset, skipping layer")
	}
	return compose.With(f)
}

// preferences is the baseline every member starts from: base, the given
// extra layers, then prettier when enabled.
func (e *env) preferences(extra ...string) compose.Fragment {
	steps := []func(compose.Fragment) compose.Fragment{e.layer(ruleset.Base)}
	for _, name := range extra {
		steps = append(steps, e.layer(name))
	}
	prefs := compose.Pipe(compose.Fragment{}, steps...)
	if e.prettier {
		prefs = compose.Merge(prefs, e.rules.Ruleset(ruleset.Prettier))
	}
	return prefs
}

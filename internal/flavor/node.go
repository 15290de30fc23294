package flavor

import (
	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/override"
	"github.com/dshills/lintcfg/internal/project"
	"github.com/dshills/lintcfg/internal/ruleset"
)

// NodeTree holds the plain-server members. Modules are ES modules,
// CommonJS members are require()-style scripts.
type NodeTree struct {
	Modules  Pair
	CommonJS Pair
}

// NodeBuilder returns the member tree for plain server-side code.
func NodeBuilder(opts Options) NodeTree {
	return nodeTree(newEnv(opts))
}

func nodeTree(e *env) NodeTree {
	prefs := e.preferences()

	esm := func() compose.Fragment {
		return compose.Fragment{
			"env":           map[string]any{"node": true},
			"parserOptions": map[string]any{"sourceType": "module"},
		}
	}
	cjs := func() compose.Fragment {
		return compose.Fragment{
			"env":           map[string]any{"node": true, "commonjs": true},
			"parserOptions": map[string]any{"sourceType": "script"},
		}
	}

	return NodeTree{
		Modules: Pair{
			JS: always(func() compose.Fragment {
				return compose.Pipe(esm(),
					compose.With(prefs),
					e.layer(ruleset.Node),
				)
			}),
			TS: gated(e.hasTypeScript, func() compose.Fragment {
				return compose.Pipe(esm(),
					compose.With(prefs),
					e.layer(ruleset.Node),
					e.layer(ruleset.TypeScript),
				)
			}),
		},
		CommonJS: Pair{
			JS: always(func() compose.Fragment {
				return compose.Pipe(cjs(),
					compose.With(prefs),
					e.layer(ruleset.Node),
					e.layer(ruleset.NodeCommonJS),
				)
			}),
			// .cts sources use import syntax that compiles to require(), so
			// they parse as modules but keep the CommonJS globals.
			TS: gated(e.hasTypeScript, func() compose.Fragment {
				return compose.Pipe(
					compose.Fragment{
						"env":           map[string]any{"node": true, "commonjs": true},
						"parserOptions": map[string]any{"sourceType": "module"},
					},
					compose.With(prefs),
					e.layer(ruleset.Node),
					e.layer(ruleset.TypeScript),
				)
			}),
		},
	}
}

// Node picks NodeESM for "type": "module" packages and NodeCJS otherwise,
// matching how Node itself treats .js files.
func Node(opts Options) override.Config {
	if opts.PackageType == project.TypeModule {
		return NodeESM(opts)
	}
	return NodeCJS(opts)
}

// NodeESM configures a package whose .js files are ES modules.
func NodeESM(opts Options) override.Config {
	t := NodeBuilder(opts)

	return override.ConfigFor(
		override.ForFiles(t.Modules.JS(), "**/*.{js,mjs}"),
		override.ForFiles(t.CommonJS.JS(), "**/*.cjs"),
		override.ForFiles(t.Modules.TS(), "**/*.{ts,mts}"),
		override.ForFiles(t.CommonJS.TS(), "**/*.cts"),
	)
}

// NodeCJS configures a package whose .js files are CommonJS scripts.
func NodeCJS(opts Options) override.Config {
	t := NodeBuilder(opts)

	return override.ConfigFor(
		override.ForFiles(t.CommonJS.JS(), "**/*.{js,cjs}"),
		override.ForFiles(t.Modules.JS(), "**/*.mjs"),
		override.ForFiles(t.Modules.TS(), "**/*.{ts,mts}"),
		override.ForFiles(t.CommonJS.TS(), "**/*.cts"),
	)
}

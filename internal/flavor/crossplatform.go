package flavor

import (
	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/override"
	"github.com/dshills/lintcfg/internal/ruleset"
)

// CrossPlatformTree holds members for code that runs in browsers and on
// servers. Shared members get neither browser nor node globals.
type CrossPlatformTree struct {
	Shared Members
	Tests  Pair
	Node   NodeTree
}

// CrossPlatformBuilder returns the member tree for cross-platform code.
func CrossPlatformBuilder(opts Options) CrossPlatformTree {
	e := newEnv(opts)
	prefs := e.preferences()

	seed := func() compose.Fragment {
		return compose.Fragment{
			"env":           map[string]any{"es2022": true},
			"parserOptions": map[string]any{"sourceType": "module"},
		}
	}

	shared := Members{
		JS: always(func() compose.Fragment {
			return compose.Pipe(seed(),
				compose.With(prefs),
				e.layer(ruleset.CrossPlatform),
			)
		}),
		TS: gated(e.hasTypeScript, func() compose.Fragment {
			return compose.Pipe(seed(),
				compose.With(prefs),
				e.layer(ruleset.CrossPlatform),
				e.layer(ruleset.TypeScript),
			)
		}),
		Declarations: gated(e.hasTypeScript, func() compose.Fragment {
			return compose.Pipe(compose.Fragment{},
				compose.With(prefs),
				e.layer(ruleset.TypeScriptDeclarations),
			)
		}),
	}

	// Test runners execute on node even when the code under test is shared.
	testEnv := compose.Fragment{"env": map[string]any{"node": true}}

	return CrossPlatformTree{
		Shared: shared,
		Tests: Pair{
			JS: shared.JS.extend(testEnv),
			TS: shared.TS.extend(testEnv),
		},
		Node: nodeTree(e),
	}
}

// CrossPlatform configures a library meant for both browsers and servers.
func CrossPlatform(opts Options) override.Config {
	t := CrossPlatformBuilder(opts)

	return override.ConfigFor(
		override.ForFiles(t.Shared.JS(), "{src,lib}/**/*.{js,mjs}"),
		override.ForFiles(t.Shared.TS(), "{src,lib}/**/*.{ts,mts}"),
		override.ForFiles(t.Shared.Declarations(), "**/*.d.ts"),
		override.ForFiles(t.Tests.JS(), "tests/**/*.{js,mjs}"),
		override.ForFiles(t.Tests.TS(), "tests/**/*.{ts,mts}"),

		// Tooling config files
		override.ForFiles(t.Node.CommonJS.JS(), "./*.cjs", "./config/**/*.cjs"),
		override.ForFiles(t.Node.Modules.JS(), "./*.{js,mjs}"),
		override.ForFiles(t.Node.Modules.TS(), "./*.mts"),
	)
}

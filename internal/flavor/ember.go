package flavor

import (
	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/override"
	"github.com/dshills/lintcfg/internal/ruleset"
)

// EmberModules groups the ES module members of the framework flavor.
type EmberModules struct {
	Node    Pair
	Browser Members
	Tests   Pair
}

// EmberCommonJS groups the CommonJS members of the framework flavor.
type EmberCommonJS struct {
	Node Pair
}

// EmberTree holds the framework-flavor members.
type EmberTree struct {
	Modules  EmberModules
	CommonJS EmberCommonJS
}

const (
	qunitRecommended = "plugin:qunit/recommended"
	emberParser      = "ember-eslint-parser"
)

// babelParser lets plain .js app code use decorators without a project
// babel config.
func babelParser() compose.Fragment {
	return compose.Fragment{
		"parser": "@babel/eslint-parser",
		"parserOptions": map[string]any{
			"requireConfigFile": false,
			"babelOptions": map[string]any{
				"plugins": []any{
					[]any{"@babel/plugin-proposal-decorators", map[string]any{"legacy": true}},
				},
			},
		},
	}
}

func browserEnv() compose.Fragment {
	return compose.Fragment{"env": map[string]any{"browser": true}}
}

// EmberBuilder returns the member tree for framework-based UI code.
func EmberBuilder(opts Options) EmberTree {
	e := newEnv(opts)
	prefs := e.preferences(ruleset.DecoratorPosition)
	node := nodeTree(e)

	browser := Members{
		JS: always(func() compose.Fragment {
			return compose.Pipe(compose.Merge(babelParser(), browserEnv()),
				compose.With(prefs),
				e.layer(ruleset.Ember),
			)
		}),
		TS: gated(e.hasTypeScript, func() compose.Fragment {
			return compose.Pipe(browserEnv(),
				compose.With(prefs),
				e.layer(ruleset.Ember),
				e.layer(ruleset.TypeScript),
			)
		}),
		Declarations: gated(e.hasTypeScript, func() compose.Fragment {
			return compose.Pipe(browserEnv(),
				compose.With(prefs),
				e.layer(ruleset.TypeScriptDeclarations),
			)
		}),
	}

	qunit := compose.Fragment{"extends": []string{qunitRecommended}}

	return EmberTree{
		Modules: EmberModules{
			Node:    node.Modules,
			Browser: browser,
			Tests: Pair{
				JS: browser.JS.extend(qunit),
				TS: browser.TS.extend(qunit),
			},
		},
		CommonJS: EmberCommonJS{
			Node: node.CommonJS,
		},
	}
}

// Ember configures an Ember app, addon or v2 addon.
func Ember(opts Options) override.Config {
	t := EmberBuilder(opts)
	gjsParser := compose.Some(compose.Fragment{"parser": emberParser})

	return override.ConfigFor(
		// Project files
		override.ForFiles(t.Modules.Browser.JS(),
			"{src,app,addon,addon-test-support,tests}/**/*.{gjs,js}",
			"tests/dummy/config/deprecation-workflow.js",
		),
		override.ForFiles(
			compose.Map(t.Modules.Browser.JS(), compose.With(compose.Fragment{
				"globals": map[string]any{"self": "readonly"},
			})),
			"config/deprecation-workflow.js",
		),
		override.ForFiles(t.Modules.Browser.TS(),
			"{src,app,addon,addon-test-support,tests,types}/**/*.{gts,ts}",
		),
		override.ForFiles(t.Modules.Browser.Declarations(), "**/*.d.ts"),

		// Tests
		override.ForFiles(t.Modules.Tests.JS(), "tests/**/*-test.{gjs,js}"),
		override.ForFiles(t.Modules.Tests.TS(), "tests/**/*-test.{gts,ts}"),
		override.ForFiles(t.Modules.Browser.Declarations(), "type-tests/**/*.ts"),

		// Template-tag files need the ember parser on top of their base config
		override.ForFiles(gjsParser, "**/*.gts"),
		override.ForFiles(gjsParser, "**/*.gjs"),

		// Config files, usually
		override.ForFiles(t.CommonJS.Node.JS(),
			"./*.{cjs,js}",
			"./config/**/*.js",
			"./lib/*/index.js",
			"./server/**/*.js",
			"./blueprints/*/index.js",
			"tests/dummy/config/environment.js",
			"tests/dummy/config/targets.js",
			"tests/dummy/config/ember-try.js",
			"tests/dummy/config/ember-intl.js",
		),
		override.ForFiles(t.Modules.Node.JS(), "./*.mjs"),
		override.ForFiles(t.Modules.Node.TS(), "./*.mts"),
	)
}

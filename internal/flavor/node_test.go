package flavor

import (
	"testing"

	"github.com/dshills/lintcfg/internal/project"
	"github.com/stretchr/testify/assert"
)

func TestNodeESM(t *testing.T) {
	without := NodeESM(Options{Probe: withoutTS})
	with := NodeESM(Options{Probe: withTS})

	assert.Equal(t, []string{"**/*.{js,mjs}", "**/*.cjs"}, firstPatterns(without))
	assert.Equal(t, []string{"**/*.{js,mjs}", "**/*.cjs", "**/*.{ts,mts}", "**/*.cts"}, firstPatterns(with))

	js := find(t, with, "**/*.{js,mjs}")
	assert.Equal(t, map[string]any{"node": true}, js.Settings["env"])
	assert.Equal(t, "module", js.Settings["parserOptions"].(map[string]any)["sourceType"])
	assert.Equal(t, "latest", js.Settings["parserOptions"].(map[string]any)["ecmaVersion"])
	assert.Contains(t, js.Settings["extends"], "plugin:n/recommended")

	cjs := find(t, with, "**/*.cjs")
	assert.Equal(t, "script", cjs.Settings["parserOptions"].(map[string]any)["sourceType"])
	assert.Equal(t, map[string]any{"node": true, "commonjs": true}, cjs.Settings["env"])

	cts := find(t, with, "**/*.cts")
	assert.Equal(t, "@typescript-eslint/parser", cts.Settings["parser"])
	assert.Equal(t, true, cts.Settings["env"].(map[string]any)["commonjs"])

	assert.Equal(t, find(t, without, "**/*.cjs"), cjs)
}

func TestNodeCJS(t *testing.T) {
	cfg := NodeCJS(Options{Probe: withTS})

	assert.Equal(t, []string{"**/*.{js,cjs}", "**/*.mjs", "**/*.{ts,mts}", "**/*.cts"}, firstPatterns(cfg))
	assert.Equal(t, "script", find(t, cfg, "**/*.{js,cjs}").Settings["parserOptions"].(map[string]any)["sourceType"])
	assert.Equal(t, "module", find(t, cfg, "**/*.mjs").Settings["parserOptions"].(map[string]any)["sourceType"])
}

func TestNode_PicksVariantFromPackageType(t *testing.T) {
	tests := []struct {
		packageType string
		want        string
	}{
		{project.TypeModule, "**/*.{js,mjs}"},
		{project.TypeCommonJS, "**/*.{js,cjs}"},
		{"", "**/*.{js,cjs}"},
		{"something-else", "**/*.{js,cjs}"},
	}

	for _, tt := range tests {
		t.Run(tt.packageType, func(t *testing.T) {
			cfg := Node(Options{PackageType: tt.packageType, Probe: withoutTS})
			assert.Equal(t, tt.want, cfg.Overrides[0].Files[0])
		})
	}
}

func TestNode_NoDecoratorPosition(t *testing.T) {
	cfg := NodeESM(Options{Probe: withoutTS})
	for _, o := range cfg.Overrides {
		assert.NotContains(t, o.Settings["extends"], "plugin:decorator-position/ember")
	}
}

func TestNodeBuilder_Members(t *testing.T) {
	tree := NodeBuilder(Options{Probe: withoutTS})

	_, ok := tree.Modules.TS.Get()
	assert.False(t, ok)
	_, ok = tree.CommonJS.TS.Get()
	assert.False(t, ok)

	js, ok := tree.Modules.JS.Get()
	assert.True(t, ok)
	assert.Contains(t, js["extends"], "eslint:recommended")
}

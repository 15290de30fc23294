package override

import (
	"encoding/json"
	"testing"

	"github.com/dshills/lintcfg/internal/compose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func frag(parser string) compose.Option[compose.Fragment] {
	return compose.Some(compose.Fragment{"parser": parser})
}

func TestConfigFor_DropsAbsent(t *testing.T) {
	cfg := ConfigFor(
		ForFiles(frag("a"), "**/*.js"),
		ForFiles(compose.Absent(), "**/*.ts"),
		ForFiles(frag("c"), "**/*.gjs"),
		ForFiles(compose.Absent(), "**/*.d.ts"),
	)

	require.Len(t, cfg.Overrides, 2)
	assert.Equal(t, [][]string{{"**/*.js"}, {"**/*.gjs"}}, cfg.Files())
}

func TestConfigFor_DropsEmptyPatternGroup(t *testing.T) {
	cfg := ConfigFor(
		ForFiles(frag("a")),
		ForFiles(frag("b"), "**/*.js"),
	)

	require.Len(t, cfg.Overrides, 1)
	assert.Equal(t, "b", cfg.Overrides[0].Settings["parser"])
}

func TestConfigFor_PreservesOrder(t *testing.T) {
	// Overlapping, deliberately "unsorted" patterns must come out as listed.
	cfg := ConfigFor(
		ForFiles(frag("3"), "z/**/*.js"),
		ForFiles(frag("1"), "**/*.js", "a.js"),
		ForFiles(frag("2"), "**/*.js"),
	)

	require.Len(t, cfg.Overrides, 3)
	var order []string
	for _, o := range cfg.Overrides {
		order = append(order, o.Settings["parser"].(string))
	}
	assert.Equal(t, []string{"3", "1", "2"}, order)
	assert.Equal(t, []string{"**/*.js", "a.js"}, cfg.Overrides[1].Files)
}

func TestConfigFor_Empty(t *testing.T) {
	cfg := ConfigFor()
	assert.Empty(t, cfg.Overrides)
	assert.Equal(t, compose.Fragment{"root": true, "overrides": []any{}}, cfg.Fragment())
}

func TestConfigFor_CopiesSharedFragments(t *testing.T) {
	shared := compose.Fragment{"env": map[string]any{"browser": true}}
	patterns := []string{"app/**/*.js"}

	cfg := ConfigFor(
		ForFiles(compose.Some(shared), patterns...),
		ForFiles(compose.Some(shared), "tests/**/*.js"),
	)

	cfg.Overrides[0].Settings["env"].(map[string]any)["browser"] = false
	cfg.Overrides[0].Files[0] = "changed"

	assert.Equal(t, true, cfg.Overrides[1].Settings["env"].(map[string]any)["browser"])
	assert.Equal(t, true, shared["env"].(map[string]any)["browser"])
	assert.Equal(t, "app/**/*.js", patterns[0])
}

func TestConfigFor_PatternsUninterpreted(t *testing.T) {
	cfg := ConfigFor(ForFiles(frag("x"), "[unclosed", "{a,b", "./*.{cjs,js}"))

	assert.Equal(t, []string{"[unclosed", "{a,b", "./*.{cjs,js}"}, cfg.Overrides[0].Files)
}

func TestConfig_Fragment(t *testing.T) {
	cfg := ConfigFor(
		ForFiles(compose.Some(compose.Fragment{"parser": "ember-eslint-parser"}), "**/*.gts"),
	)

	assert.Equal(t, compose.Fragment{
		"root": true,
		"overrides": []any{
			compose.Fragment{"files": []string{"**/*.gts"}, "parser": "ember-eslint-parser"},
		},
	}, cfg.Fragment())
}

func TestConfig_FilesKeyWinsOverSettings(t *testing.T) {
	cfg := ConfigFor(ForFiles(compose.Some(compose.Fragment{"files": "stale"}), "**/*.js"))

	rendered := cfg.Overrides[0].Fragment()
	assert.Equal(t, []string{"**/*.js"}, rendered["files"])
}

func TestConfig_MarshalJSON(t *testing.T) {
	cfg := ConfigFor(
		ForFiles(frag("@babel/eslint-parser"), "app/**/*.js"),
		ForFiles(frag("ember-eslint-parser"), "**/*.gjs"),
	)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded struct {
		Root      bool `json:"root"`
		Overrides []struct {
			Files  []string `json:"files"`
			Parser string   `json:"parser"`
		} `json:"overrides"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Root)
	require.Len(t, decoded.Overrides, 2)
	assert.Equal(t, "@babel/eslint-parser", decoded.Overrides[0].Parser)
	assert.Equal(t, []string{"**/*.gjs"}, decoded.Overrides[1].Files)
}

func TestConfig_MarshalYAML(t *testing.T) {
	cfg := ConfigFor(ForFiles(frag("espree"), "**/*.js"))

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["root"])
	overrides := decoded["overrides"].([]any)
	require.Len(t, overrides, 1)
	assert.Equal(t, "espree", overrides[0].(map[string]any)["parser"])
}

func TestConfigFor_CopiesTypedMaps(t *testing.T) {
	globals := map[string]string{"self": "readonly"}
	shared := compose.Fragment{"globals": globals}

	cfg := ConfigFor(ForFiles(compose.Some(shared), "config/*.js"))
	require.Len(t, cfg.Overrides, 1)

	cfg.Overrides[0].Settings["globals"].(map[string]any)["self"] = "writable"
	assert.Equal(t, "readonly", globals["self"])
}

package flavor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossPlatform(t *testing.T) {
	without := CrossPlatform(Options{Probe: withoutTS})
	with := CrossPlatform(Options{Probe: withTS})

	assert.Equal(t, []string{
		"{src,lib}/**/*.{js,mjs}",
		"tests/**/*.{js,mjs}",
		"./*.cjs",
		"./*.{js,mjs}",
	}, firstPatterns(without))
	assert.Equal(t, []string{
		"{src,lib}/**/*.{js,mjs}",
		"{src,lib}/**/*.{ts,mts}",
		"**/*.d.ts",
		"tests/**/*.{js,mjs}",
		"tests/**/*.{ts,mts}",
		"./*.cjs",
		"./*.{js,mjs}",
		"./*.mts",
	}, firstPatterns(with))

	for _, p := range firstPatterns(without) {
		assert.Equal(t, find(t, without, p), find(t, with, p), "entry %q changed", p)
	}
}

func TestCrossPlatform_SharedHasNoPlatformGlobals(t *testing.T) {
	cfg := CrossPlatform(Options{Probe: withTS})

	for _, p := range []string{"{src,lib}/**/*.{js,mjs}", "{src,lib}/**/*.{ts,mts}"} {
		env := find(t, cfg, p).Settings["env"].(map[string]any)
		assert.Equal(t, map[string]any{"es2022": true}, env, p)
		assert.Contains(t, find(t, cfg, p).Settings["rules"], "no-restricted-globals")
	}

	tests := find(t, cfg, "tests/**/*.{js,mjs}").Settings["env"].(map[string]any)
	assert.Equal(t, true, tests["node"])
}

func TestCrossPlatform_ToolingFiles(t *testing.T) {
	cfg := CrossPlatform(Options{Probe: withoutTS})

	assert.Equal(t, []string{"./*.cjs", "./config/**/*.cjs"}, find(t, cfg, "./*.cjs").Files)
	assert.Equal(t, true, find(t, cfg, "./*.{js,mjs}").Settings["env"].(map[string]any)["node"])
}

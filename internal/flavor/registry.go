package flavor

import (
	"sort"

	"github.com/dshills/lintcfg/internal/override"
)

// Builder produces a complete configuration for one flavor.
type Builder func(Options) override.Config

// Flavor names accepted by Lookup.
const (
	NameEmber         = "ember"
	NameNode          = "node"
	NameNodeCJS       = "node-cjs"
	NameNodeESM       = "node-esm"
	NameCrossPlatform = "cross-platform"
)

var builders = map[string]Builder{
	NameEmber:         Ember,
	NameNode:          Node,
	NameNodeCJS:       NodeCJS,
	NameNodeESM:       NodeESM,
	NameCrossPlatform: CrossPlatform,
}

var descriptions = map[string]string{
	NameEmber:         "Ember apps and addons (browser code, QUnit tests, node config files)",
	NameNode:          "Node packages; picks node-esm or node-cjs from package.json \"type\"",
	NameNodeCJS:       "Node packages whose .js files are CommonJS",
	NameNodeESM:       "Node packages whose .js files are ES modules",
	NameCrossPlatform: "Libraries that run in both browsers and node",
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, bool) {
	b, ok := builders[name]
	return b, ok
}

// Names returns every flavor name in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a flavor.
func Describe(name string) string {
	return descriptions[name]
}

// Package lintcfg is the public entry point for building lint configurations.
//
// Pick a flavor builder, pass [Options], and encode the returned [Config]
// (it implements json.Marshaler and yaml.Marshaler):
//
//	cfg := lintcfg.Ember(lintcfg.Options{PrettierIntegration: true})
//	data, err := json.MarshalIndent(cfg, "", "  ")
//
// [Merge], [Pipe], [ForFiles] and [ConfigFor] are exposed for callers that
// compose their own configurations from fragments.
package lintcfg

import (
	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/flavor"
	"github.com/dshills/lintcfg/internal/override"
	"github.com/dshills/lintcfg/internal/probe"
	"github.com/dshills/lintcfg/internal/ruleset"
)

// Fragment is one slice of lint configuration.
type Fragment = compose.Fragment

// Config is a composed configuration: top-level settings plus ordered
// file-scoped overrides.
type Config = override.Config

// Entry binds file patterns to a fragment that may be absent.
type Entry = override.Entry

// Options configures the flavor builders.
type Options = flavor.Options

// Prober answers whether an optional toolchain package is installed.
type Prober = probe.Prober

// StaticProbe answers toolchain presence from a fixed map.
type StaticProbe = probe.Static

// NodeModulesProbe resolves packages through node_modules directories.
type NodeModulesProbe = probe.NodeModules

// RulesetProvider supplies named ruleset fragments.
type RulesetProvider = ruleset.Provider

// Merge layers override over base without modifying either.
func Merge(base, override Fragment) Fragment {
	return compose.Merge(base, override)
}

// Pipe threads seed through steps in order.
func Pipe[T any](seed T, steps ...func(T) T) T {
	return compose.Pipe(seed, steps...)
}

// ForFiles scopes fragment to patterns. A nil fragment is treated as absent
// and dropped by ConfigFor.
func ForFiles(fragment Fragment, patterns ...string) Entry {
	if fragment == nil {
		return override.ForFiles(compose.Absent(), patterns...)
	}
	return override.ForFiles(compose.Some(fragment), patterns...)
}

// ConfigFor assembles entries, in order, into a Config.
func ConfigFor(entries ...Entry) Config {
	return override.ConfigFor(entries...)
}

// Ember builds the framework flavor.
func Ember(opts Options) Config {
	return flavor.Ember(opts)
}

// Node builds the plain-server flavor, choosing the module system from
// Options.PackageType.
func Node(opts Options) Config {
	return flavor.Node(opts)
}

// NodeCJS builds the plain-server flavor for CommonJS packages.
func NodeCJS(opts Options) Config {
	return flavor.NodeCJS(opts)
}

// NodeESM builds the plain-server flavor for ES module packages.
func NodeESM(opts Options) Config {
	return flavor.NodeESM(opts)
}

// CrossPlatform builds the cross-platform flavor.
func CrossPlatform(opts Options) Config {
	return flavor.CrossPlatform(opts)
}

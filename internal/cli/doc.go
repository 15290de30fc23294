// Package cli wires together the Cobra command tree for the lintcfg binary.
//
// It defines the root command and all subcommands (generate, check, flavors,
// probe, rulesets, config, version), binds flags, reads configuration,
// invokes the flavor builders, and returns deterministic exit codes for CI
// gating.
package cli

// Package config loads and merges lintcfg configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags that were explicitly set
//  2. Environment variables (LINTCFG_FLAVOR, LINTCFG_FORMAT, LINTCFG_ASSUME, etc.)
//  3. Project file (lintcfg.yaml or lintcfg.yml, searched upward from the project root)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config

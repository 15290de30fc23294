// Lintcfg is a CLI for composing layered ESLint configurations.
//
// It builds eslintrc override tables for Ember apps and addons, Node
// packages and cross-platform libraries, layering rulesets per file pattern
// and adding type-aware overrides only when typescript is installed.
//
// Usage:
//
//	lintcfg generate ember            # print the Ember config as JSON
//	lintcfg generate --out .eslintrc.json
//	lintcfg generate node --format js --prettier
//	lintcfg check cross-platform --match
//	lintcfg probe typescript @glint/core
//	lintcfg rulesets list
//	lintcfg config init
package main

// Package flavor builds complete lint configurations for each project flavor.
//
// A flavor builder turns [Options] into an [override.Config]. It first
// assembles a tree of named fragments (browser/js, browser/ts, tests/js, ...)
// whose members are [Lazy] accessors: each is computed on first read and
// shared afterwards, so a fragment referenced by several override entries is
// built once. Type-aware members evaluate to absent when the typescript
// package is not installed, and the assembler drops them from the output.
//
// The trees are exported ([EmberBuilder], [NodeBuilder],
// [CrossPlatformBuilder]) for callers that want to compose their own entry
// lists from the same members.
package flavor

// Package compose holds the primitives every lint configuration is built from.
//
// A [Fragment] is one slice of configuration. [Merge] combines two fragments:
// nested mappings merge recursively, sequences concatenate (base first) and
// any other collision resolves to the override value. [Pipe] threads a seed
// through an ordered list of steps, and [With] / [When] build the usual
// "merge this layer, maybe" steps.
//
// [Option] models a fragment that may be absent, such as a type-aware
// fragment when the type-checking toolchain is not installed.
package compose

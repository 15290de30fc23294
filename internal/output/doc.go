// Package output encodes composed lint configurations.
//
// Four formats are supported:
//   - json: .eslintrc.json (default)
//   - yaml: .eslintrc.yaml
//   - js: .eslintrc.js, a CommonJS module exporting the config
//   - text: human-readable summary of the override table
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*Document]. [WriteDocument]
// handles destination selection.
package output

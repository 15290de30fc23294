package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter outputs the configuration as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// JSWriter outputs a CommonJS module exporting the configuration.
type JSWriter struct{}

func (j *JSWriter) Write(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "// Generated by lintcfg (%s). Do not edit.\n'use strict';\n\nmodule.exports = %s;\n", doc.Flavor, data)
	if err != nil {
		return fmt.Errorf("writing JS: %w", err)
	}
	return nil
}

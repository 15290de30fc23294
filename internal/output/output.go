package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dshills/lintcfg/internal/override"
)

// Document is a generated configuration plus how it was produced.
type Document struct {
	Flavor     string
	Prettier   bool
	TypeScript bool
	Config     override.Config
}

// Writer writes a document in a specific format.
type Writer interface {
	Write(w io.Writer, doc *Document) error
}

var writers = map[string]func() Writer{
	"json": func() Writer { return &JSONWriter{} },
	"yaml": func() Writer { return &YAMLWriter{} },
	"js":   func() Writer { return &JSWriter{} },
	"text": func() Writer { return &TextWriter{} },
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	if format == "" {
		format = "json"
	}
	newWriter, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return newWriter(), nil
}

// DefaultFileName is the conventional file name for a format, or "" for
// formats that are not meant to be loaded by the linter.
func DefaultFileName(format string) string {
	switch format {
	case "", "json":
		return ".eslintrc.json"
	case "yaml":
		return ".eslintrc.yaml"
	case "js":
		return ".eslintrc.js"
	default:
		return ""
	}
}

// WriteDocument writes the document to outPath, or to stdout when outPath
// is empty. A nil stdout means os.Stdout.
func WriteDocument(doc *Document, format, outPath string, stdout io.Writer) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else if stdout != nil {
		w = stdout
	} else {
		w = os.Stdout
	}

	return writer.Write(w, doc)
}

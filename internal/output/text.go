package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dshills/lintcfg/internal/compose"
)

// TextWriter outputs a human-readable summary of the override table.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, doc *Document) error {
	ew := &errWriter{w: w}

	ew.printf("lintcfg — %s flavor\n", doc.Flavor)
	ew.printf("TypeScript: %s | Prettier: %s\n", onOff(doc.TypeScript), onOff(doc.Prettier))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Overrides: %d\n", len(doc.Config.Overrides))
	ew.println(strings.Repeat("─", 60))

	if len(doc.Config.Overrides) == 0 {
		ew.println("\nNo overrides generated.")
		return ew.err
	}

	for i, o := range doc.Config.Overrides {
		ew.printf("\n[%d] %s\n", i+1, strings.Join(o.Files, ", "))
		if parser, ok := o.Settings["parser"].(string); ok {
			ew.printf("    parser:  %s\n", parser)
		}
		if env := enabledKeys(o.Settings["env"]); len(env) > 0 {
			ew.printf("    env:     %s\n", strings.Join(env, ", "))
		}
		if ext := stringsOf(o.Settings["extends"]); len(ext) > 0 {
			ew.printf("    extends: %s\n", strings.Join(ext, ", "))
		}
		if plugins := stringsOf(o.Settings["plugins"]); len(plugins) > 0 {
			ew.printf("    plugins: %s\n", strings.Join(plugins, ", "))
		}
		if rules, ok := o.Settings["rules"].(compose.Fragment); ok {
			ew.printf("    rules:   %d\n", len(rules))
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// enabledKeys returns the sorted keys of a mapping whose value is true.
func enabledKeys(v any) []string {
	m, ok := v.(compose.Fragment)
	if !ok {
		return nil
	}
	var keys []string
	for k, on := range m {
		if b, ok := on.(bool); ok && b {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func stringsOf(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		return []string{s}
	default:
		return nil
	}
}

// Package override assembles the final lint configuration: a top-level
// fragment plus an ordered list of fragments scoped to file patterns.
//
// Entries keep the order they were listed in. The consuming linter applies
// overrides in that order and later matches win, so the assembler never
// merges, deduplicates or reorders entries, even when patterns overlap.
// Patterns are passed through as written.
package override

import (
	"encoding/json"

	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/logging"
)

// Entry binds a pattern group to a fragment that may be absent.
type Entry struct {
	Files    []string
	Fragment compose.Option[compose.Fragment]
}

// ForFiles builds an Entry for one or more patterns.
func ForFiles(fragment compose.Option[compose.Fragment], patterns ...string) Entry {
	return Entry{Files: patterns, Fragment: fragment}
}

// Override is one emitted override record.
type Override struct {
	Files    []string
	Settings compose.Fragment
}

// Fragment renders the record as the linter expects it: the settings with a
// "files" key holding the pattern group.
func (o Override) Fragment() compose.Fragment {
	out := compose.Clone(o.Settings)
	files := make([]string, len(o.Files))
	copy(files, o.Files)
	out["files"] = files
	return out
}

// Config is a composed configuration.
type Config struct {
	Settings  compose.Fragment
	Overrides []Override
}

// ConfigFor assembles entries into a Config marked as the root config.
// Absent entries and entries without patterns are dropped; the rest keep
// their input order. Every fragment is copied, so overrides that came from
// the same source fragment can be modified independently.
func ConfigFor(entries ...Entry) Config {
	cfg := Config{
		Settings:  compose.Fragment{"root": true},
		Overrides: make([]Override, 0, len(entries)),
	}
	for i, e := range entries {
		frag, ok := e.Fragment.Get()
		if !ok {
			logging.Debug().Int("entry", i).Strs("files", e.Files).Msg("dropping absent override")
			continue
		}
		if len(e.Files) == 0 {
			logging.Debug().Int("entry", i).Msg("dropping override without patterns")
			continue
		}
		files := make([]string, len(e.Files))
		copy(files, e.Files)
		cfg.Overrides = append(cfg.Overrides, Override{
			Files:    files,
			Settings: compose.Clone(frag),
		})
	}
	return cfg
}

// Fragment renders the whole configuration as one fragment with an
// "overrides" sequence.
func (c Config) Fragment() compose.Fragment {
	out := compose.Clone(c.Settings)
	overrides := make([]any, len(c.Overrides))
	for i, o := range c.Overrides {
		overrides[i] = o.Fragment()
	}
	out["overrides"] = overrides
	return out
}

// Files returns each override's pattern group in order.
func (c Config) Files() [][]string {
	out := make([][]string, len(c.Overrides))
	for i, o := range c.Overrides {
		out[i] = o.Files
	}
	return out
}

// MarshalJSON encodes the rendered fragment.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Fragment())
}

// MarshalYAML encodes the rendered fragment.
func (c Config) MarshalYAML() (any, error) {
	return c.Fragment(), nil
}

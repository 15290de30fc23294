// Package ruleset supplies the named configuration fragments flavor builders
// layer together. Rule contents are data: built-in presets ship embedded as
// YAML, and a project can shadow any of them with files in a directory.
package ruleset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/dshills/lintcfg/internal/compose"
	"github.com/dshills/lintcfg/internal/logging"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Ruleset names consumed by the flavor builders.
const (
	Base                   = "base"
	DecoratorPosition      = "decorator-position"
	Prettier               = "prettier"
	Ember                  = "ember"
	TypeScript             = "typescript"
	TypeScriptDeclarations = "typescript-declarations"
	Node                   = "node"
	NodeCommonJS           = "node-commonjs"
	CrossPlatform          = "cross-platform"
)

// ErrDuplicate is returned when a directory defines the same ruleset twice,
// e.g. as both node.yaml and node.json.
var ErrDuplicate = errors.New("duplicate ruleset")

//go:embed presets/*.yaml
var presets embed.FS

// Provider looks up rulesets by name. Implementations return a copy the
// caller may keep, or nil when the name is unknown.
type Provider interface {
	Ruleset(name string) compose.Fragment
}

// Lister is implemented by providers that can enumerate their rulesets.
type Lister interface {
	Names() []string
}

// Set is a fixed collection of rulesets.
type Set struct {
	source   string
	rulesets map[string]compose.Fragment
}

// Ruleset returns a deep copy of the named ruleset, or nil.
func (s *Set) Ruleset(name string) compose.Fragment {
	f, ok := s.rulesets[name]
	if !ok {
		return nil
	}
	return compose.Clone(f)
}

// Names returns the ruleset names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.rulesets))
	for name := range s.rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source describes where the set was loaded from.
func (s *Set) Source() string {
	return s.source
}

// LoadBuiltin decodes the embedded presets. Each call returns a fresh Set.
func LoadBuiltin() (*Set, error) {
	return loadEmbedded(presets)
}

// Builtin is LoadBuiltin for callers without an error path. It panics if an
// embedded preset fails to decode.
func Builtin() *Set {
	set, err := LoadBuiltin()
	if err != nil {
		panic(fmt.Sprintf("ruleset: %v", err))
	}
	return set
}

func loadEmbedded(fsys fs.FS) (*Set, error) {
	sub, err := fs.Sub(fsys, "presets")
	if err != nil {
		return nil, fmt.Errorf("embedded presets: %w", err)
	}
	set, err := load(sub, "builtin")
	if err != nil {
		return nil, fmt.Errorf("embedded presets: %w", err)
	}
	return set, nil
}

// LoadDir reads every <name>.yaml, <name>.yml, <name>.json and <name>.jsonc
// file in dir. Other files and subdirectories are ignored.
func LoadDir(dir string) (*Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rulesets directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rulesets path %s is not a directory", dir)
	}
	return load(os.DirFS(dir), dir)
}

func load(fsys fs.FS, source string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading rulesets from %s: %w", source, err)
	}

	set := &Set{source: source, rulesets: make(map[string]compose.Fragment)}
	origin := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		file := e.Name()
		ext := path.Ext(file)
		decode, ok := decoders[ext]
		if !ok {
			continue
		}
		name := strings.TrimSuffix(file, ext)
		if prev, dup := origin[name]; dup {
			return nil, fmt.Errorf("%w %q in %s: %s and %s", ErrDuplicate, name, source, prev, file)
		}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("reading ruleset %s: %w", file, err)
		}
		frag, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("parsing ruleset %s: %w", file, err)
		}

		origin[name] = file
		set.rulesets[name] = frag
	}

	logging.Debug().Str("source", source).Int("count", len(set.rulesets)).Msg("rulesets loaded")
	return set, nil
}

var decoders = map[string]func([]byte) (compose.Fragment, error){
	".yaml":  decodeYAML,
	".yml":   decodeYAML,
	".json":  decodeJSON,
	".jsonc": decodeJSON,
}

func decodeYAML(data []byte) (compose.Fragment, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return asFragment(raw)
}

func decodeJSON(data []byte) (compose.Fragment, error) {
	var raw any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, err
	}
	return asFragment(raw)
}

// asFragment checks the document is a mapping and normalizes nested
// mappings to map[string]any. An empty document is an empty fragment.
func asFragment(raw any) (compose.Fragment, error) {
	if raw == nil {
		return compose.Fragment{}, nil
	}
	m, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("ruleset must be a mapping, got %T", raw)
	}
	return m, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	default:
		return v
	}
}

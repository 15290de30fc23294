// Package probe answers whether an optional toolchain package is installed in
// the host project. A missing package is a normal answer, never an error.
package probe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/lintcfg/internal/logging"
)

// Prober reports whether a package can be resolved from the project.
type Prober interface {
	Has(name string) bool
}

// Func adapts a plain function to a Prober.
type Func func(name string) bool

// Has calls f.
func (f Func) Has(name string) bool {
	return f(name)
}

// Static answers from a fixed set. Names not in the map are absent.
type Static map[string]bool

// Has reports s[name].
func (s Static) Has(name string) bool {
	return s[name]
}

// NodeModules resolves packages the way Node does for bare specifiers:
// node_modules/<name> in Root, then in each parent directory.
//
// It only stats files, so a single value is safe for concurrent use.
type NodeModules struct {
	// Root is where the search starts. Empty means the working directory.
	Root string
}

// Has reports whether node_modules/<package>/package.json exists in Root or
// any of its ancestors.
func (n NodeModules) Has(name string) bool {
	pkg, ok := packageDir(name)
	if !ok {
		logging.Debug().Str("package", name).Msg("probe: invalid package name")
		return false
	}

	root := n.Root
	if root == "" {
		root = "."
	}
	dir, err := filepath.Abs(root)
	if err != nil {
		return false
	}

	for {
		manifest := filepath.Join(dir, "node_modules", pkg, "package.json")
		if info, err := os.Stat(manifest); err == nil && info.Mode().IsRegular() {
			logging.Debug().Str("package", name).Str("path", manifest).Msg("probe: resolved")
			return true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	logging.Debug().Str("package", name).Str("root", root).Msg("probe: not installed")
	return false
}

// packageDir maps a specifier to the directory under node_modules that holds
// its package.json: "typescript" and "typescript/lib" map to "typescript",
// "@scope/pkg/sub" maps to "@scope/pkg".
func packageDir(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `\`) || filepath.IsAbs(name) || strings.HasPrefix(name, ".") {
		return "", false
	}

	parts := strings.Split(name, "/")
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			return "", false
		}
	}

	if strings.HasPrefix(parts[0], "@") {
		if len(parts) < 2 || len(parts[0]) < 2 {
			return "", false
		}
		return filepath.Join(parts[0], parts[1]), true
	}
	return parts[0], true
}

// Override forces answers for selected names and defers the rest to base.
// A nil base treats unforced names as absent.
func Override(base Prober, forced map[string]bool) Prober {
	if len(forced) == 0 && base != nil {
		return base
	}
	return Func(func(name string) bool {
		if v, ok := forced[name]; ok {
			return v
		}
		if base == nil {
			return false
		}
		return base.Has(name)
	})
}

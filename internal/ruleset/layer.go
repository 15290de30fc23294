package ruleset

import (
	"sort"

	"github.com/dshills/lintcfg/internal/compose"
)

// Layered consults providers in order; the first one that knows a name wins.
type Layered struct {
	providers []Provider
}

// Layer stacks providers, highest precedence first. Nil providers are
// skipped.
func Layer(providers ...Provider) *Layered {
	l := &Layered{}
	for _, p := range providers {
		if p != nil {
			l.providers = append(l.providers, p)
		}
	}
	return l
}

// Ruleset returns the first non-nil answer.
func (l *Layered) Ruleset(name string) compose.Fragment {
	for _, p := range l.providers {
		if f := p.Ruleset(name); f != nil {
			return f
		}
	}
	return nil
}

// Names returns the union of names from providers that implement Lister.
func (l *Layered) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range l.providers {
		lister, ok := p.(Lister)
		if !ok {
			continue
		}
		for _, n := range lister.Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Origin reports which provider answers for name: its Source when it has
// one, "" when no provider knows the name.
func (l *Layered) Origin(name string) string {
	for _, p := range l.providers {
		if p.Ruleset(name) == nil {
			continue
		}
		if s, ok := p.(interface{ Source() string }); ok {
			return s.Source()
		}
		return "custom"
	}
	return ""
}

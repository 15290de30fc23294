package flavor

import (
	"sync"

	"github.com/dshills/lintcfg/internal/compose"
)

// Lazy is a memoized tree member. The first call computes the fragment;
// later calls return the same answer.
type Lazy func() compose.Option[compose.Fragment]

func lazy(fn func() compose.Option[compose.Fragment]) Lazy {
	return sync.OnceValue(fn)
}

// always wraps a member that is present in every configuration.
func always(fn func() compose.Fragment) Lazy {
	return lazy(func() compose.Option[compose.Fragment] {
		return compose.Some(fn())
	})
}

// gated wraps a member that only exists when cond holds.
func gated(cond bool, fn func() compose.Fragment) Lazy {
	return lazy(func() compose.Option[compose.Fragment] {
		if !cond {
			return compose.Absent()
		}
		return compose.Some(fn())
	})
}

// Get reads the member.
func (l Lazy) Get() (compose.Fragment, bool) {
	return l().Get()
}

// extend derives a member from l by merging layer over it. Absent stays
// absent.
func (l Lazy) extend(layer compose.Fragment) Lazy {
	return lazy(func() compose.Option[compose.Fragment] {
		return compose.Map(l(), compose.With(layer))
	})
}

// Members is the js / ts / declarations triple most trees expose.
type Members struct {
	JS           Lazy
	TS           Lazy
	Declarations Lazy
}

// Pair is the js / ts pair used for node-style members.
type Pair struct {
	JS Lazy
	TS Lazy
}

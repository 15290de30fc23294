package compose

// Pipe applies steps to seed in order, feeding each result into the next
// step. With no steps it returns seed unchanged.
func Pipe[T any](seed T, steps ...func(T) T) T {
	out := seed
	for _, step := range steps {
		out = step(out)
	}
	return out
}

// With returns a step that merges layer over its input.
func With(layer Fragment) func(Fragment) Fragment {
	return func(f Fragment) Fragment {
		return Merge(f, layer)
	}
}

// When returns step if cond holds and the identity step otherwise.
func When[T any](cond bool, step func(T) T) func(T) T {
	if cond {
		return step
	}
	return func(v T) T { return v }
}

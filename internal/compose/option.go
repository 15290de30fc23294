package compose

// Option is a value that may be absent. The zero Option is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether the option holds a value.
func (o Option[T]) Present() bool {
	return o.ok
}

// Map applies fn to a present value. Absent stays absent.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// Absent is shorthand for an absent fragment.
func Absent() Option[Fragment] {
	return None[Fragment]()
}

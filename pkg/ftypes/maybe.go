// Package ftypes provides small failure-as-value containers: Maybe for
// optional values and Either for disjoint success/error results. Both
// carry exactly one logical value and none of their methods ever panic.
package ftypes

// Maybe holds either one value of T (Some) or no value (Nothing).
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing is the absent value of type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsSome() bool { return m.ok }
func (m Maybe[T]) IsNone() bool { return !m.ok }

// Map applies fn to the contained value. fn is never invoked on Nothing.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	if !m.ok {
		return m
	}
	return Some(fn(m.value))
}

// Bind is the flattening Map: fn already returns a Maybe, and a Nothing
// receiver short-circuits without invoking fn.
func (m Maybe[T]) Bind(fn func(T) Maybe[T]) Maybe[T] {
	if !m.ok {
		return m
	}
	return fn(m.value)
}

// GetOrElse returns the contained value, or def when Nothing.
func (m Maybe[T]) GetOrElse(def T) T {
	if !m.ok {
		return def
	}
	return m.value
}

// Get exposes the value alongside its presence flag, comma-ok style.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

// MapMaybe is the type-changing form of Maybe.Map; Go methods cannot add
// type parameters, so T -> U mappings live at package level.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.IsNone() {
		return Nothing[U]()
	}
	return Some(fn(m.value))
}

// BindMaybe is the type-changing form of Maybe.Bind.
func BindMaybe[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.IsNone() {
		return Nothing[U]()
	}
	return fn(m.value)
}

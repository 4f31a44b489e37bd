package ftypes

// Either holds exactly one of a Left value (the failure channel) or a
// Right value (the success channel). The tag is fixed at construction.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left constructs a failure-channel Either.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l, isLeft: true}
}

// Right constructs a success-channel Either.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

func (e Either[L, R]) IsLeft() bool  { return e.isLeft }
func (e Either[L, R]) IsRight() bool { return !e.isLeft }

// Left returns the failure value; ok is false on a Right.
func (e Either[L, R]) Left() (L, bool) { return e.left, e.isLeft }

// Right returns the success value; ok is false on a Left.
func (e Either[L, R]) Right() (R, bool) { return e.right, !e.isLeft }

// Map applies fn to the Right value; a Left passes through untouched and
// fn is never invoked on it.
func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	if e.isLeft {
		return e
	}
	return Right[L](fn(e.right))
}

// Bind chains a Right into another Either; a Left short-circuits.
func (e Either[L, R]) Bind(fn func(R) Either[L, R]) Either[L, R] {
	if e.isLeft {
		return e
	}
	return fn(e.right)
}

// GetOrElse returns the Right value, or def when Left.
func (e Either[L, R]) GetOrElse(def R) R {
	if e.isLeft {
		return def
	}
	return e.right
}

// MapEither is the type-changing form of Either.Map (R -> U on the Right
// channel only).
func MapEither[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isLeft {
		return Left[L, U](e.left)
	}
	return Right[L](fn(e.right))
}

// BindEither is the type-changing form of Either.Bind.
func BindEither[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isLeft {
		return Left[L, U](e.left)
	}
	return fn(e.right)
}

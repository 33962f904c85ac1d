package affine

// Scalar is the set of element types the recurrence is defined over: real
// and complex floating point.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Pair is the affine map y ↦ Gain*y + Offset.
type Pair[T Scalar] struct {
	Gain   T
	Offset T
}

// Identity returns the neutral element {1, 0}.
func Identity[T Scalar]() Pair[T] {
	return Pair[T]{Gain: 1}
}

// Seed returns the pair that injects the initial condition y[-1] into a
// fold: {1, y0}.
func Seed[T Scalar](y0 T) Pair[T] {
	return Pair[T]{Gain: 1, Offset: y0}
}

// Combine returns a ⊕ b, the map that applies a first and then b.
func Combine[T Scalar](a, b Pair[T]) Pair[T] {
	return Pair[T]{
		Gain:   a.Gain * b.Gain,
		Offset: a.Offset*b.Gain + b.Offset,
	}
}

// Apply evaluates the map at y.
func (p Pair[T]) Apply(y T) T {
	return p.Gain*y + p.Offset
}

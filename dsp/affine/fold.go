package affine

// Fold reduces pairs left to right starting from acc and returns the
// composed map. Fold(Identity(), nil) is the identity.
func Fold[T Scalar](acc Pair[T], pairs []Pair[T]) Pair[T] {
	for _, p := range pairs {
		acc = Combine(acc, p)
	}

	return acc
}

// InclusiveScan replaces pairs[i] with seed ⊕ pairs[0] ⊕ … ⊕ pairs[i] in
// place and returns the final accumulator.
func InclusiveScan[T Scalar](pairs []Pair[T], seed Pair[T]) Pair[T] {
	g, o := seed.Gain, seed.Offset
	for i := range pairs {
		w := pairs[i].Gain
		g *= w
		o = o*w + pairs[i].Offset
		pairs[i] = Pair[T]{Gain: g, Offset: o}
	}

	return Pair[T]{Gain: g, Offset: o}
}

// Zip fills dst[i] with {gains[i], offsets[i]}. All slices must share one
// length.
func Zip[T Scalar](dst []Pair[T], gains, offsets []T) {
	if len(dst) == 0 {
		return
	}

	_ = gains[len(dst)-1]
	_ = offsets[len(dst)-1]

	for i := range dst {
		dst[i] = Pair[T]{Gain: gains[i], Offset: offsets[i]}
	}
}

// Offsets copies the Offset of every pair into dst.
func Offsets[T Scalar](dst []T, pairs []Pair[T]) {
	if len(pairs) == 0 {
		return
	}

	_ = dst[len(pairs)-1]

	for i, p := range pairs {
		dst[i] = p.Offset
	}
}

// Package affine implements the algebra that turns the first-order
// recurrence
//
//	y[t] = w[t]*y[t-1] + x[t]
//
// into a scan.
//
// Every step of the recurrence is the affine map y ↦ w*y + x, stored as a
// [Pair] {Gain: w, Offset: x}. [Combine] composes two maps in application
// order:
//
//	(g1, o1) ⊕ (g2, o2) = (g1*g2, o1*g2 + o2)
//
// The operator is associative but not commutative, and {1, 0} is its
// identity. An inclusive scan seeded with {1, y[-1]} therefore leaves y[t] in
// the Offset of position t, and any scan schedule that respects operand order
// (sequential or chunked) computes the recurrence.
package affine

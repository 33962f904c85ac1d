package scan

import "github.com/cwbudde/algo-lpc/dsp/affine"

// scanChunked scans one long row on all workers:
//
//  1. every chunk is reduced to the single pair it represents;
//  2. the chunk totals are scanned exclusively from seed on the caller,
//     giving each chunk its carry-in;
//  3. every chunk is scanned in place from its carry-in.
//
// Associativity makes this equal to the sequential fold; only rounding
// differs because products are grouped per chunk. A chunk total's gain can
// overflow even though the fold it stands for never forms that product, so
// carries are composed with carryCombine.
func scanChunked[T affine.Scalar](e *Engine, row []affine.Pair[T], seed affine.Pair[T], scanRow rowScanFn[T]) {
	n := len(row)
	chunkLen := max(e.cfg.ChunkLen, (n+e.cfg.Workers-1)/e.cfg.Workers)
	chunks := (n + chunkLen - 1) / chunkLen

	if chunks <= 1 {
		scanRow(row, seed)
		return
	}

	chunk := func(c int) []affine.Pair[T] {
		return row[c*chunkLen : min((c+1)*chunkLen, n)]
	}

	carries := make([]affine.Pair[T], chunks)
	finite := make([]bool, chunks)

	// The last chunk's total never feeds a carry.
	e.pool.ParallelFor(chunks-1, func(start, end int) {
		for c := start; c < end; c++ {
			carries[c], finite[c] = reduceChunk(chunk(c))
		}
	})

	acc := seed
	for c := range carries {
		carries[c], acc = acc, carryCombine(acc, carries[c], finite[c])
	}

	e.pool.ParallelFor(chunks, func(start, end int) {
		for c := start; c < end; c++ {
			scanRow(chunk(c), carries[c])
		}
	})
}

// reduceChunk folds a chunk into its total and reports whether every gain in
// it is finite.
func reduceChunk[T affine.Scalar](chunk []affine.Pair[T]) (affine.Pair[T], bool) {
	acc := affine.Identity[T]()
	finite := true

	for _, p := range chunk {
		acc = affine.Combine(acc, p)
		finite = finite && isFinite(p.Gain)
	}

	return acc, finite
}

// carryCombine composes a carry with a chunk total. A zero carry offset
// contributes nothing when all of the chunk's gains are finite, whatever
// their product rounds to; with a non-finite gain in the chunk the product
// is kept so Inf and NaN propagate as they do step by step.
func carryCombine[T affine.Scalar](carry, total affine.Pair[T], finite bool) affine.Pair[T] {
	if carry.Offset == 0 && finite {
		return affine.Pair[T]{Gain: carry.Gain * total.Gain, Offset: total.Offset}
	}

	return affine.Combine(carry, total)
}

// isFinite reports whether v has no Inf or NaN component.
func isFinite[T affine.Scalar](v T) bool {
	return v-v == 0
}

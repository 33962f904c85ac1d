package affine_test

import (
	"fmt"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

func ExampleInclusiveScan() {
	// y[t] = 0.5*y[t-1] + 1 with y[-1] = 0.
	pairs := []affine.Pair[float64]{{Gain: 0.5, Offset: 1}, {Gain: 0.5, Offset: 1}, {Gain: 0.5, Offset: 1}}
	affine.InclusiveScan(pairs, affine.Seed(0.0))

	for t, p := range pairs {
		fmt.Printf("y[%d] = %.2f\n", t, p.Offset)
	}
	// Output:
	// y[0] = 1.00
	// y[1] = 1.50
	// y[2] = 1.75
}

func ExampleCombine() {
	double := affine.Pair[float64]{Gain: 2}
	plusOne := affine.Pair[float64]{Gain: 1, Offset: 1}

	fmt.Println(affine.Combine(double, plusOne).Apply(5))
	fmt.Println(affine.Combine(plusOne, double).Apply(5))
	// Output:
	// 11
	// 12
}

package ctrig_test

import (
	"fmt"

	"github.com/katalvlaran/thinfilm/ctrig"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAsin
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Recover a real angle from its sine. For arguments inside [-1,1] the
//	principal-branch arcsine stays on the real axis, so the real part is
//	the familiar math.Asin value (here asin(0.5) = π/6).
func ExampleAsin() {
	theta := ctrig.Asin(0.5)
	fmt.Printf("%.4f\n", real(theta))
	// Output:
	// 0.5236
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAcos
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Recover an angle from a cosine larger than 1 — impossible for real
//	trigonometry, routine for an evanescent wave. The real part collapses
//	to 0 and the imaginary part carries the attenuation.
func ExampleAcos() {
	theta := ctrig.Acos(2)
	fmt.Printf("%.4f %.4f\n", real(theta), imag(theta))
	// Output:
	// 0.0000 -1.3170
}

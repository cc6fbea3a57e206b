package ctrig

import "math/cmplx"

// onei is the imaginary unit, kept as a named constant so the identities
// below read like their textbook form.
const onei = complex(0, 1)

// Asin returns the arcsine of z on the principal branch:
//
//	Asin(z) = −i·log(i·z + sqrt(1 − z²))
//
// For real z in [−1, 1] the result has zero imaginary part and matches
// math.Asin; outside that interval the imaginary part carries the
// analytic continuation. Defined for every z.
func Asin(z complex128) complex128 {
	return -onei * cmplx.Log(onei*z+cmplx.Sqrt(1-z*z))
}

// Acos returns the arccosine of z on the principal branch:
//
//	Acos(z) = −i·log(z + sqrt(z² − 1))
//
// Same branch conventions as Asin. Defined for every z.
func Acos(z complex128) complex128 {
	return -onei * cmplx.Log(z+cmplx.Sqrt(z*z-1))
}

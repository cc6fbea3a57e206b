// Package ctrig extends the inverse trigonometric functions arcsine and
// arccosine to complex arguments through the principal branch of the
// complex logarithm.
//
// 🚀 What is ctrig?
//
//	Two closed-form identities, implemented exactly as written:
//	  • Asin(z) = −i·log(i·z + sqrt(1 − z²))
//	  • Acos(z) = −i·log(z + sqrt(z² − 1))
//	Both use the principal branches of log and sqrt throughout. Asin
//	agrees with math.Asin on the real interval [−1, 1] and continues it
//	analytically everywhere else. Acos always satisfies cos(Acos(z)) = z;
//	because z + sqrt(z²−1) and z − sqrt(z²−1) are reciprocals, the value
//	can come out as the negative of the conventional principal arccosine
//	on part of the plane (cosine is even, so the defining identity holds
//	either way).
//
// ✨ Key properties:
//   - Defined on the whole complex plane — no error conditions
//   - Deterministic values (fixed branch choice, no hidden range mapping)
//   - Pure functions, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/thinfilm/ctrig"
//
//	theta := ctrig.Acos(cosTheta) // recover a (complex) angle of incidence
//
// Typical callers recover physical angles from quantities a wave-optics
// computation keeps as cosines, e.g. the effective angle in an absorbing
// medium during ellipsometric fitting. The thinfilm/film kernel itself
// never needs an explicit angle — it works on cosines throughout.
package ctrig

// Package thinfilm computes the optical response of planar multilayer
// coatings — reflectance, transmittance, absorptance and the ellipsometric
// angles psi/delta — for monochromatic, collimated light at any linear
// polarization.
//
// 🚀 What is thinfilm?
//
//	A small, dependency-light numerical kernel built around the classic
//	2×2 characteristic-matrix (transfer-matrix) method:
//		• Arbitrary ordered layer stacks over semi-infinite media
//		• Complex refractive indices (n − i·k) for absorbing films
//		• Oblique and evanescent incidence via a complex angle cosine
//		• P, S and mixed linear polarization in one call
//		• Ellipsometric psi/delta straight from the reflection coefficients
//
// ✨ Why choose thinfilm?
//
//   - Pure function – no state between calls, safe for concurrent use
//   - Predictable cost – O(layers) time, a handful of stack allocations
//   - Trust-the-caller contract – no hidden clamping or validation,
//     NaN/Inf propagate so drivers can detect bad samples themselves
//   - Embeddable – designed to sit inside spectral sweeps, fitting
//     engines and coating-design loops that call it once per sample
//
// Everything is organized under two subpackages:
//
//	ctrig/ — arcsine & arccosine extended to complex arguments
//	film/  — Layer/Coating model, Matrix22 type and the Simulate kernel
//
// Quick sketch (quarter-wave antireflection check):
//
//	coat := film.Coating{
//	    Incident: film.Medium{Index: 1},
//	    Exit:     film.Medium{Index: 1.5},
//	    Layers:   []film.Layer{film.QuarterWave(550, 2)},
//	}
//	res := film.Simulate(film.Beam{CosTheta: 1, Wavelength: 550}, coat,
//	    film.Request{Reflectance: true}, nil)
//
// Dive into README-style docs in each package and the runnable programs
// under examples/ for full scenarios.
//
//	go get github.com/katalvlaran/thinfilm/film
package thinfilm

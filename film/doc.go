// Package film computes the optical response of planar thin-film stacks
// with the 2×2 characteristic-matrix (transfer-matrix) method.
//
// 🚀 What is film?
//
//	One pure function, Simulate, and the small value types feeding it:
//	  • Layer / Medium / Coating — the film-stack data model (n − i·k)
//	  • Beam — wavelength, complex angle cosine, polarization angle
//	  • Matrix22 — the 2×2 complex characteristic matrix
//	  • Request / Result — optional, interdependent output slots
//	Simulate folds one matrix per layer into a product per polarization,
//	then extracts reflectance, transmittance, absorptance and the
//	ellipsometric angles psi/delta from the accumulated matrix.
//
// ✨ Key features:
//   - Absorbing films and media via complex refractive indices
//   - Oblique and evanescent incidence (complex angle cosine)
//   - P, S or any linear polarization mixture in a single call
//   - Stateless and allocation-light: safe for concurrent sampling
//   - Garbage-in-garbage-out by contract: no validation, no clamping
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/thinfilm/film"
//
//	coat := film.Coating{
//	    Incident: film.Medium{Index: 1},          // air
//	    Exit:     film.Medium{Index: 1.52},       // glass substrate
//	    Layers: []film.Layer{
//	        film.QuarterWave(550, 1.38),          // MgF2 AR layer
//	    },
//	}
//	beam := film.Beam{CosTheta: 1, Wavelength: 550, Polarization: 0}
//	res := film.Simulate(beam, coat, film.Request{
//	    Reflectance:   true,
//	    Transmittance: true,
//	    Absorptance:   true,
//	}, nil)
//	fmt.Println(*res.Reflectance)
//
// Performance:
//
//   - Time:   O(number of layers)
//   - Memory: O(1) beyond the result slots
//
// The kernel is meant to be embedded in larger drivers — spectral sweeps,
// coating optimizers, ellipsometric fitting — that call it once per
// (wavelength, angle) sample. See the programs under examples/ for two
// such drivers.
package film

package film_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thinfilm/film"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimulate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic single quarter-wave film: air | λ/4 of n=2 | glass n=1.5,
//	normal incidence. The closed-form reflectance for this geometry is
//	((n_inc·n_sub − n²)/(n_inc·n_sub + n²))² = (2.5/5.5)² ≈ 0.2066, and
//	the characteristic-matrix fold reproduces it.
//
// Complexity: O(1) — a single layer.
func ExampleSimulate() {
	coat := film.Coating{
		Incident: film.Medium{Index: 1},
		Exit:     film.Medium{Index: 1.5},
		Layers:   []film.Layer{film.QuarterWave(550, 2)},
	}
	beam := film.Beam{CosTheta: 1, Wavelength: 550, Polarization: 0}

	res := film.Simulate(beam, coat, film.Request{Reflectance: true}, nil)
	fmt.Printf("R = %.4f\n", *res.Reflectance)
	// Output:
	// R = 0.2066
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimulate_ellipsometry
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A bare silicon surface (n ≈ 4.15 − 0.044i at 550 nm) probed at 70°,
//	the workhorse geometry of spectroscopic ellipsometry. Only the
//	psi/delta pair is requested; the power slots stay untouched.
func ExampleSimulate_ellipsometry() {
	coat := film.Coating{
		Incident: film.Medium{Index: 1},
		Exit:     film.Medium{Index: complex(4.15, -0.044)},
	}
	beam := film.Beam{
		CosTheta:   complex(math.Cos(70*math.Pi/180), 0),
		Wavelength: 550,
	}

	res := film.Simulate(beam, coat, film.Request{PsiDelta: true}, nil)
	fmt.Printf("psi = %.4f rad\ndelta = %.4f rad\n", *res.Psi, *res.Delta)
	// Output:
	// psi = 0.2171 rad
	// delta = -0.0241 rad
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimulate_warning
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Transmittance through a coating immersed in an absorbing liquid. The
//	transmittance formula assumes a lossless incident medium, so the
//	kernel attaches an advisory warning — and still reports the number.
func ExampleSimulate_warning() {
	coat := film.Coating{
		Incident: film.Medium{Index: complex(1.33, -0.05)},
		Exit:     film.Medium{Index: 1.52},
	}
	beam := film.Beam{CosTheta: 1, Wavelength: 550}

	res := film.Simulate(beam, coat, film.Request{Reflectance: true, Transmittance: true}, nil)
	fmt.Println(len(res.Warnings), res.Transmittance != nil)
	// Output:
	// 1 true
}

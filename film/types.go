// Package film: domain types for the characteristic-matrix kernel.
// This file defines the layer/medium data model, the Request/Result pair
// that selects and carries observables, advisory warnings, and Options.
package film

// Layer describes one thin film in a coating: a thickness and a complex
// refractive index. Layers are plain values; Simulate never mutates them.
type Layer struct {
	// Thickness of the film, in the same length unit as Beam.Wavelength.
	// Must be positive for a physically meaningful layer; zero is allowed
	// and makes the layer optically transparent (identical to omitting it).
	Thickness float64

	// Index is the complex refractive index written as n − i·k, with the
	// extinction coefficient k stored non-positive for passive media.
	// Example: complex(1.5, -0.001) for a slightly absorbing glass.
	Index complex128
}

// Medium describes a semi-infinite incident or exit medium. Unlike a
// Layer it has no thickness, only a complex refractive index.
type Medium struct {
	// Index is the complex refractive index n − i·k (same sign convention
	// as Layer.Index).
	Index complex128
}

// Coating is an ordered film stack between two semi-infinite media.
// Layers run from the incidence side to the exit side; order is
// significant because characteristic matrices do not commute.
type Coating struct {
	Incident Medium
	Exit     Medium
	Layers   []Layer
}

// Beam describes the illumination: monochromatic, collimated light.
type Beam struct {
	// CosTheta is the cosine of the incidence angle. It is complex so that
	// evanescent waves and absorbing incident media keep a meaningful
	// value. Normal incidence is CosTheta == 1. A value of (or near) zero
	// is grazing incidence, for which admittances blow up — the results
	// are then Inf/NaN by contract.
	CosTheta complex128

	// Wavelength of the light, positive, in the same unit as Layer.Thickness.
	Wavelength float64

	// Polarization angle in radians: 0 is pure P, π/2 is pure S, anything
	// between is a linear mixture weighted cos²/sin² as an incoherent
	// power mix of the two eigenpolarizations.
	Polarization float64
}

// Request selects which observables Simulate computes. Dependent slots
// are only produced when their prerequisites are requested too:
//
//	Transmittance requires Reflectance,
//	Absorptance   requires Transmittance (hence Reflectance),
//	PsiDelta      is independent of the other three.
//
// A dependent slot requested without its prerequisite is silently left
// nil in the Result; requesting nothing is valid and returns an empty
// Result.
type Request struct {
	Reflectance   bool
	Transmittance bool
	Absorptance   bool
	PsiDelta      bool
}

// Result carries the requested observables. A field is non-nil exactly
// when it was requested and its prerequisite chain was requested. Values
// are reported as computed: no clamping, no validation, NaN/Inf and
// out-of-range magnitudes pass through untouched.
type Result struct {
	// Reflectance is the power reflectance, polarization-mixed.
	Reflectance *float64

	// Transmittance is the power transmittance, polarization-mixed. Its
	// formula assumes a lossless incident medium; when that assumption is
	// violated the value is still reported and an advisory Warning is
	// attached.
	Transmittance *float64

	// Absorptance is 1 − Reflectance − Transmittance.
	Absorptance *float64

	// Psi and Delta are the ellipsometric angles, in radians:
	// Psi = atan2(|r_P|, |r_S|), Delta = arg(r_P) − arg(r_S).
	// They are requested — and populated — as a pair.
	Psi   *float64
	Delta *float64

	// Warnings lists advisory diagnostics raised during the computation.
	// Empty on a clean run. Warnings never change the numeric outputs.
	Warnings []Warning
}

// Warning is an advisory diagnostic: a condition that makes part of the
// result suspect without invalidating the computation. Warnings are never
// promoted to errors or panics.
type Warning string

// WarnAbsorbingIncident is raised when transmittance is requested while
// the incident medium has nonzero extinction (imag(index) != 0). The
// transmittance formula assumes a lossless incident medium, so the
// reported value may be inaccurate.
const WarnAbsorbingIncident = Warning("film: transmittance may be inaccurate: incident medium is absorbing (imag(index) != 0)")

// Options carries tunable knobs for Simulate. The zero value (or a nil
// *Options) is valid and means "collect warnings on the Result only".
type Options struct {
	// OnWarning, when non-nil, additionally receives each Warning as it is
	// raised — a seam for routing advisories into a host application's
	// logging. The callback must not assume any particular goroutine;
	// Simulate invokes it synchronously on the calling one.
	OnWarning func(Warning)
}

// DefaultOptions returns the default Simulate configuration:
// no warning callback, warnings reported on the Result only.
func DefaultOptions() Options {
	return Options{}
}

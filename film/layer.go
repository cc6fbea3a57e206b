package film

// NewLayer builds a Layer from user-facing optical constants: refractive
// index n and a non-negative extinction coefficient k. It applies the
// n − i·k storage convention, so NewLayer(d, 1.5, 0.001) is the same as
// Layer{Thickness: d, Index: complex(1.5, -0.001)}.
func NewLayer(thickness, n, k float64) Layer {
	return Layer{Thickness: thickness, Index: complex(n, -k)}
}

// QuarterWave returns a layer of the given index whose optical thickness
// n·d equals lambda0/4 — the building block of antireflection coatings
// and dielectric mirrors. lambda0 is the design wavelength, in the same
// unit Simulate will receive. Only the real part of the index sets the
// geometric thickness.
func QuarterWave(lambda0 float64, index complex128) Layer {
	return Layer{Thickness: lambda0 / (4 * real(index)), Index: index}
}

// HalfWave returns a layer of optical thickness lambda0/2 — transparent
// at the design wavelength (its characteristic matrix is −identity, which
// cancels in the reflectance algebra) and commonly used as a spacer.
func HalfWave(lambda0 float64, index complex128) Layer {
	return Layer{Thickness: lambda0 / (2 * real(index)), Index: index}
}

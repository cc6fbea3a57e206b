package film

import (
	"math"
	"math/cmplx"
)

// onei is the imaginary unit.
const onei = complex(0, 1)

// Simulate — characteristic-matrix response of a multilayer coating.
//
// Description:
//
//	Computes the optical response of coat under beam: power reflectance,
//	power transmittance, absorptance and the ellipsometric angles
//	psi/delta, for one (wavelength, angle) sample. Which observables are
//	produced is selected by req; see Request for the dependency rules.
//
// Algorithm Outline (per polarization, P and S independently):
//  1. Boundary admittances of the incident medium:
//     Y_P = n/cosθ, Y_S = n·cosθ.
//  2. Exit-medium angle cosine through the generalized Snell law on
//     cosines (never through an explicit arcsine):
//     cosθ_t = sqrt(1 − (1 − cosθ_i²)·(n_i/n_t)²),
//     then exit admittances as in step 1.
//  3. Fold the stack, incidence side first, into a running product
//     matrix initialized to Identity(). For each layer:
//     cosθ and admittance as above, phase δ = −2π·n·d·cosθ/λ,
//     layer matrix [[cos δ, i·sin δ/Y], [i·sin δ·Y, cos δ]].
//  4. With M the folded matrix, b = M11 + M12·Y_exit,
//     c = M21 + M22·Y_exit, reflection coefficient
//     r = (b − c/Y_inc)/(b + c/Y_inc).
//  5. Observables: R = |r|² mixed cos²/sin² over the polarization angle;
//     T from t_P = 2/(b+c/Y_inc)·cosθ_i/cosθ_t and t_S = 2/(b+c/Y_inc);
//     A = 1 − R − T; psi = atan2(|r_P|, |r_S|), delta = arg r_P − arg r_S.
//
// Contract:
//   - Pure function of its arguments; no state survives the call, so
//     concurrent invocations with disjoint inputs need no locking.
//   - Trust-the-caller: inputs are not validated and outputs are not
//     clamped. Grazing incidence (CosTheta → 0) or a zero wavelength
//     surface as Inf/NaN in the result; absorptance may leave [0,1] for
//     physically inconsistent inputs.
//   - An empty stack degenerates to the two-medium Fresnel interface; a
//     zero-thickness layer contributes an identity matrix, exactly as if
//     it were omitted.
//   - The transmittance formula assumes imag(incident index) == 0. When
//     that does not hold and transmittance was requested, the value is
//     still computed and WarnAbsorbingIncident is attached — never an
//     error. The formula set is kept exactly as published by its source:
//     the power budget R+T=1 closes only for matched incident/exit
//     admittances, and neither the transmittance nor the psi/delta
//     formulas have been verified against independent reference tools.
//
// Complexity: O(len(coat.Layers)) time, O(1) extra space.
//
// opts may be nil, which is equivalent to DefaultOptions().
func Simulate(beam Beam, coat Coating, req Request, opts *Options) Result {
	var res Result

	warn := func(w Warning) {
		res.Warnings = append(res.Warnings, w)
		if opts != nil && opts.OnWarning != nil {
			opts.OnWarning(w)
		}
	}

	nInc := coat.Incident.Index
	nExit := coat.Exit.Index
	cosInc := beam.CosTheta
	cosIncSq := cosInc * cosInc

	// Boundary admittances for the two eigenpolarizations.
	admIncP := nInc / cosInc
	admIncS := nInc * cosInc

	cosExit := cosRefracted(cosIncSq, nInc, nExit)
	admExitP := nExit / cosExit
	admExitS := nExit * cosExit

	// Fold the stack, incidence side first. The product is not
	// normalized; entries may grow large for deep absorbing stacks.
	prodP := Identity()
	prodS := Identity()
	for _, l := range coat.Layers {
		cosLayer := cosRefracted(cosIncSq, nInc, l.Index)
		admP := l.Index / cosLayer
		admS := l.Index * cosLayer

		// Phase across the film. The cosθ factor is the wavefront
		// projection; a zero thickness gives δ=0 and an identity matrix.
		phase := complex(-2*math.Pi*l.Thickness/beam.Wavelength, 0) * l.Index * cosLayer
		c := cmplx.Cos(phase)
		s := cmplx.Sin(phase) * onei

		prodP = prodP.Mul(Matrix22{M11: c, M12: s / admP, M21: s * admP, M22: c})
		prodS = prodS.Mul(Matrix22{M11: c, M12: s / admS, M21: s * admS, M22: c})
	}

	bP := prodP.M11 + prodP.M12*admExitP
	cP := prodP.M21 + prodP.M22*admExitP
	bS := prodS.M11 + prodS.M12*admExitS
	cS := prodS.M21 + prodS.M22*admExitS

	rP := (bP - cP/admIncP) / (bP + cP/admIncP)
	rS := (bS - cS/admIncS) / (bS + cS/admIncS)

	if req.Reflectance {
		// Incoherent power mixture of the eigenpolarizations.
		polP := math.Cos(beam.Polarization)
		polS := math.Sin(beam.Polarization)
		polP *= polP
		polS *= polS

		refl := polP*sqAbs(rP) + polS*sqAbs(rS)
		res.Reflectance = &refl

		if req.Transmittance {
			if imag(nInc) != 0 {
				warn(WarnAbsorbingIncident)
			}

			tP := 2 / (bP + cP/admIncP) * cosInc / cosExit
			tS := 2 / (bS + cS/admIncS)
			trans := polP*sqAbs(tP) + polS*sqAbs(tS)
			res.Transmittance = &trans

			if req.Absorptance {
				abso := 1 - refl - trans
				res.Absorptance = &abso
			}
		}
	}

	if req.PsiDelta {
		psi := math.Atan2(cmplx.Abs(rP), cmplx.Abs(rS))
		delta := cmplx.Phase(rP) - cmplx.Phase(rS)
		res.Psi = &psi
		res.Delta = &delta
	}

	return res
}

// cosRefracted applies the generalized Snell law on angle cosines:
// cosθ_t = sqrt(1 − (1 − cosθ_i²)·(n_i/n_t)²). Staying on cosines avoids
// the branch-cut ambiguity a complex arcsine would introduce.
func cosRefracted(cosIncSq, nFrom, nTo complex128) complex128 {
	ratio := nFrom / nTo
	return cmplx.Sqrt(1 - (1-cosIncSq)*ratio*ratio)
}

// sqAbs returns |z|², the power carried by an amplitude coefficient.
func sqAbs(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

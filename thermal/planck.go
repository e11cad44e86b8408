// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import "math"

// Planck returns the spectral radiance I(λ,T) of a blackbody at
// temperature T (Kelvin) for wavelength λ (meters), in W/(m^2.sr.m).
// It is provided as a utility for instrument modeling and is not
// invoked by the conduction solver, which assumes a single thermal
// band (§1/§4.6 Non-goals).
func Planck(lambda, t float64) float64 {
	return 2 * PlanckH * LightC * LightC / math.Pow(lambda, 5) /
		(math.Exp(PlanckH*LightC/(lambda*BoltzK*t)) - 1)
}

// Lambda2Nu converts a wavelength (m) to a frequency (Hz).
func Lambda2Nu(lambda float64) float64 {
	return LightC / lambda
}

// Nu2Lambda converts a frequency (Hz) to a wavelength (m). It is the
// inverse of Lambda2Nu: Nu2Lambda(Lambda2Nu(λ)) equals λ up to
// floating-point round-off.
func Nu2Lambda(nu float64) float64 {
	return LightC / nu
}

// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// EquilibriumTemp returns the instantaneous radiative-equilibrium
// surface temperature of a body absorbing flux fAbsorbed (W/m^2) with
// emissivity eps and no conduction into the interior:
//
//	eps*sigmaSB*T^4 = fAbsorbed
//
// This is the reference value §8 Scenario A's converged surface
// temperature is checked against.
func EquilibriumTemp(fAbsorbed, eps, sigmaSB float64) float64 {
	return math.Pow(fAbsorbed/(eps*sigmaSB), 0.25)
}

// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements the one-dimensional subsurface heat
// conduction solver (§4.6) and its parameters (§4.5): explicit
// finite-difference conduction in depth, a nonlinear Newton radiative
// surface boundary condition, and an insulating deep boundary, driven
// per facet by an externally supplied absorbed flux.
package thermal

// Physical constants required by the core (§6). Values are CODATA /
// SI-defined exact constants.
const (
	SigmaSB = 5.670374419e-8 // Stefan-Boltzmann constant, W.m^-2.K^-4
	PlanckH = 6.62607015e-34 // Planck constant, J.s
	BoltzK  = 1.380649e-23   // Boltzmann constant, J/K
	LightC  = 2.99792458e8   // speed of light, m/s
)

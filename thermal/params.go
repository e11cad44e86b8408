// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// PhysicalParams carries the physical inputs of §3/§4.5, in SI units.
type PhysicalParams struct {
	AB  float64 // A_B: bond albedo
	ATH float64 // A_TH: thermal albedo
	K   float64 // thermal conductivity, W/(m.K)
	Rho float64 // density, kg/m^3
	Cp  float64 // specific heat, J/(kg.K)
	Eps float64 // ε: emissivity
	P   float64 // rotation period, s
}

// StepSizes carries the user-chosen, already non-dimensional step
// sizes of §4.5: time normalized by P, depth normalized by the skin
// depth l.
type StepSizes struct {
	Dt   float64 // non-dimensional time step
	Tbgn float64 // non-dimensional start time
	Tend float64 // non-dimensional end time
	Dz   float64 // non-dimensional depth step
	Zmax float64 // non-dimensional maximum depth
}

// Params is the immutable, pure-value ThermalParams of §3/§4.5: the
// physical inputs plus every derived and non-dimensional quantity the
// solver needs.
type Params struct {
	Phys PhysicalParams

	L     float64 // skin depth l = sqrt(4*pi*P*k/(rho*Cp))
	Gamma float64 // thermal inertia Γ = sqrt(k*rho*Cp)

	Dt, Tbgn, Tend float64
	Nt             int

	Dz, Zmax float64
	Nz       int

	Lambda float64 // λ = (1/4π)·(Δt/Δz²)
}

// closedStepCount returns the number of points in [lo, hi] stepped by
// step, inclusive of both ends, the way a mesh generator sizes a
// closed range.
func closedStepCount(lo, hi, step float64) int {
	return int(math.Round((hi-lo)/step)) + 1
}

// NewParams validates the physical inputs and step sizes and derives
// every quantity of §4.5. It never fails on the λ ≥ 0.5 stability
// bound; that condition is only reported on the diagnostics side
// channel (Warnf), matching §4.5/§7. It does fail — returning an error
// built with chk.Err — on physically meaningless inputs (non-positive
// P, k, ρ, Cp, or step sizes, or an empty time/depth range), since
// those are configuration mistakes the core's caller must fix, not
// numerical conditions the solver can silently tolerate.
func NewParams(phys PhysicalParams, steps StepSizes) (*Params, error) {
	if phys.P <= 0 {
		return nil, chk.Err("thermal.NewParams: rotation period P must be positive, got %v", phys.P)
	}
	if phys.K <= 0 || phys.Rho <= 0 || phys.Cp <= 0 {
		return nil, chk.Err("thermal.NewParams: k, rho and Cp must be positive, got k=%v rho=%v Cp=%v", phys.K, phys.Rho, phys.Cp)
	}
	if steps.Dt <= 0 || steps.Dz <= 0 {
		return nil, chk.Err("thermal.NewParams: Δt and Δz must be positive, got Δt=%v Δz=%v", steps.Dt, steps.Dz)
	}
	if steps.Tend <= steps.Tbgn {
		return nil, chk.Err("thermal.NewParams: t_end must be greater than t_bgn, got t_bgn=%v t_end=%v", steps.Tbgn, steps.Tend)
	}
	if steps.Zmax <= 0 {
		return nil, chk.Err("thermal.NewParams: z_max must be positive, got %v", steps.Zmax)
	}

	p := &Params{Phys: phys}
	p.L = math.Sqrt(4 * math.Pi * phys.P * phys.K / (phys.Rho * phys.Cp))
	p.Gamma = math.Sqrt(phys.K * phys.Rho * phys.Cp)

	p.Dt, p.Tbgn, p.Tend = steps.Dt, steps.Tbgn, steps.Tend
	p.Nt = closedStepCount(steps.Tbgn, steps.Tend, steps.Dt)

	p.Dz, p.Zmax = steps.Dz, steps.Zmax
	p.Nz = closedStepCount(0, steps.Zmax, steps.Dz)

	p.Lambda = (1 / (4 * math.Pi)) * (p.Dt / (p.Dz * p.Dz))
	if p.Lambda >= 0.5 {
		Warnf("λ=%.4g >= 0.5: explicit FTCS conduction step is only conditionally stable (Δt=%g, Δz=%g)", p.Lambda, p.Dt, p.Dz)
	}

	return p, nil
}

// NewParamsFromPrms builds a Params from a connectable parameter
// database, the way mdl/diffusion's M1 model connects its named
// coefficients, so an external driver can populate PhysicalParams from
// a textual parameter table without this package depending on any
// file format. Recognized names: A_B, A_TH, k, rho, Cp, eps, P.
func NewParamsFromPrms(prms fun.Prms, steps StepSizes) (*Params, error) {
	var phys PhysicalParams
	prms.Connect(&phys.AB, "A_B", "bond albedo")
	prms.Connect(&phys.ATH, "A_TH", "thermal albedo")
	prms.Connect(&phys.K, "k", "thermal conductivity")
	prms.Connect(&phys.Rho, "rho", "density")
	prms.Connect(&phys.Cp, "Cp", "specific heat")
	prms.Connect(&phys.Eps, "eps", "emissivity")
	prms.Connect(&phys.P, "P", "rotation period")
	return NewParams(phys, steps)
}

// Warnf reports a non-fatal configuration warning on the diagnostics
// side channel, using the same yellow side-channel print convention
// iterative solvers elsewhere use for suspect-convergence warnings.
func Warnf(format string, args ...interface{}) {
	io.PfYel("warning: "+format+"\n", args...)
}

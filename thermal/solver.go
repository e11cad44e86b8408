// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Step advances one facet's temperature column tz by one non-dimensional
// time step Δt, given the absorbed flux f (W/m², see AbsorbedFlux).
// scratch is the caller-owned working column (Shape.Tscratch): Step
// performs no allocation. tz and scratch must both have length >= p.Nz;
// violating this is a programmer error, not a runtime condition the
// solver tolerates, so it panics via chk.Panic rather than returning
// an error.
//
// The interior uses the explicit FTCS update, the surface (index 0)
// solves the nonlinear radiative balance by Newton iteration seeded
// with the column's current surface temperature, and the deep boundary
// (index Nz-1) is insulating (zero-gradient). The result is committed
// back into tz; scratch is left holding the same values and may be
// reused (or swapped with tz) on the next call.
func Step(p *Params, tz, scratch []float64, f float64) {
	nz := p.Nz
	if len(tz) < nz || len(scratch) < nz {
		chk.Panic("thermal.Step: tz and scratch must have length >= Nz=%d (got len(tz)=%d, len(scratch)=%d)", nz, len(tz), len(scratch))
	}

	lambda := p.Lambda
	for i := 1; i <= nz-2; i++ {
		scratch[i] = (1-2*lambda)*tz[i] + lambda*(tz[i+1]+tz[i-1])
	}

	t1 := tz[0] // fallback for a too-thin column where the interior loop never ran
	if nz >= 3 {
		t1 = scratch[1]
	} else if nz == 2 {
		t1 = tz[1]
	}
	scratch[0] = newtonSurface(p, tz[0], t1, f)

	if nz >= 2 {
		scratch[nz-1] = scratch[nz-2]
	}

	copy(tz[:nz], scratch[:nz])
}

// newtonSurface solves the nonlinear radiative surface balance
//
//	F + (Γ/√(4πP))·(T⁺[1]−T⁺[0])/Δz − ε·σ_SB·T⁺[0]⁴ = 0
//
// for T⁺[0] by Newton iteration, seeded at the column's current
// surface temperature. It iterates at most 20 times and stops when
// |1 − T_prev/T_new| < 1e-10; it never reports non-convergence, per
// §4.6/§7 — the caller who needs a convergence proof should inspect
// the residual externally.
func newtonSurface(p *Params, t0Prev, t1 float64, f float64) float64 {
	condTerm := p.Gamma / math.Sqrt(4*math.Pi*p.Phys.P) / p.Dz
	eps, sigma := p.Phys.Eps, SigmaSB

	x := t0Prev
	for it := 0; it < 20; it++ {
		g := f + condTerm*(t1-x) - eps*sigma*x*x*x*x
		dg := -condTerm - 4*eps*sigma*x*x*x
		if dg == 0 {
			break
		}
		xNew := x - g/dg
		if xNew != 0 && math.Abs(1-x/xNew) < 1e-10 {
			x = xNew
			break
		}
		x = xNew
	}
	return x
}

// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import "github.com/MasanoriKanamaru/astroshaper-go/shape"

// SeedUniform allocates each facet's Tz column (and the shape's shared
// scratch column) to length p.Nz and fills every depth with t0. This
// is the one-time sizing/seeding step §4.2 defers to "the solver
// collaborator": Facet.Tz starts nil, and only once a Params fixes Nz
// does it make sense to allocate it.
func SeedUniform(s *shape.Shape, p *Params, t0 float64) {
	s.Tscratch = make([]float64, p.Nz)
	for _, f := range s.Facets {
		f.Tz = make([]float64, p.Nz)
		for i := range f.Tz {
			f.Tz[i] = t0
		}
	}
}

// StepFacet advances a single facet by one time step: it composes the
// facet's current flux bundle into an absorbed flux and calls Step
// using the shape's shared scratch column. Per §5, the caller must not
// invoke StepFacet from more than one goroutine at a time, even for
// different facets (every call writes the one shared scratch column);
// a concurrent driver should promote scratch to one column per worker
// instead of calling this helper.
func StepFacet(s *shape.Shape, p *Params, f *shape.Facet) {
	flux := AbsorbedFlux(p, f.Flux)
	Step(p, f.Tz, s.Tscratch, flux)
}

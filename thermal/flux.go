// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import "github.com/MasanoriKanamaru/astroshaper-go/shape"

// AbsorbedFlux composes a facet's current flux bundle into the single
// absorbed flux F that Step's surface boundary condition needs:
//
//	F = (1−A_B)·(sun+scat) + (1−A_TH)·rad
func AbsorbedFlux(p *Params, flux shape.Flux) float64 {
	return (1-p.Phys.AB)*(flux.Sun+flux.Scat) + (1-p.Phys.ATH)*flux.Rad
}

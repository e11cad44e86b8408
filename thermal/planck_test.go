// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_planckRoundTrip01 checks §8 property 10: Nu2Lambda is the exact
// inverse of Lambda2Nu to within floating-point round-off.
func Test_planckRoundTrip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("planckRoundTrip01")

	for _, lambda := range []float64{1e-7, 5.5e-7, 1e-6, 1e-5, 2.5e-4} {
		nu := Lambda2Nu(lambda)
		back := Nu2Lambda(nu)
		chk.Scalar(tst, "lambda", lambda*1e-15, back, lambda)
	}
}

// Test_planckPositive01 checks that the Planck function returns a
// positive, finite radiance for a representative asteroid-surface
// wavelength/temperature pair.
func Test_planckPositive01(tst *testing.T) {

	chk.PrintTitle("planckPositive01")

	i := Planck(10e-6, 300)
	if i <= 0 {
		tst.Errorf("expected a positive radiance, got %v", i)
	}
}

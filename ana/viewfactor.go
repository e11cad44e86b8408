// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana collects closed-form analytic solutions used to check
// the numerical shape and thermal packages against known results,
// rather than against another numerical run.
package ana

import "math"

// ParallelPlateViewFactor returns the closed-form radiative
// configuration factor between two identical, directly-opposed,
// coaxial parallel rectangles of width X and height Y separated by a
// distance L, expressed through the dimensionless ratios x=X/L and
// y=Y/L (Modest, Radiative Heat Transfer, eq. for aligned parallel
// rectangles). It is the reference value §8 Scenario C's mesh-based
// view factor is checked against.
func ParallelPlateViewFactor(x, y float64) float64 {
	sx, sy := math.Sqrt(1+x*x), math.Sqrt(1+y*y)
	term := math.Log(math.Sqrt((1 + x*x) * (1 + y*y) / (1 + x*x + y*y)))
	term += x * sy * math.Atan(x/sy)
	term += y * sx * math.Atan(y/sx)
	term -= x * math.Atan(x)
	term -= y * math.Atan(y)
	return 2 / (math.Pi * x * y) * term
}

// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shape implements the polyhedral shape model of a small body:
// facet geometry, shape construction from an indexed triangular mesh,
// and the facet-to-facet visibility / Lambertian view-factor pass used
// for self-heating.
package shape

import (
	"github.com/cpmech/gosl/la"
)

// Vec3 is a double-precision 3-vector. It is used for node positions,
// facet centers and normals, and view directions; it is not meant to
// replace gosl/la's N-dimensional dense vectors, only to give the
// ubiquitous 3-component case a fixed-size type.
type Vec3 [3]float64

// NewVec3 builds a vector from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) (res Vec3) {
	la.VecAdd2(res[:], 1, v[:], 1, w[:])
	return
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) (res Vec3) {
	la.VecAdd2(res[:], 1, v[:], -1, w[:])
	return
}

// Scale returns a*v.
func (v Vec3) Scale(a float64) (res Vec3) {
	la.VecCopy(res[:], a, v[:])
	return
}

// Dot returns v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns ‖v‖.
func (v Vec3) Norm() float64 {
	return la.VecNorm(v[:])
}

// Normalize returns v/‖v‖. The caller must ensure v is nonzero; a zero
// vector yields a zero vector (NaN-free, per §7 of the degenerate
// geometry rule: rejection is the loader's responsibility, not a core
// runtime check).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Mean3 returns the arithmetic mean of three vectors, (a+b+c)/3.
func Mean3(a, b, c Vec3) Vec3 {
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}

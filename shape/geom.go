// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math"

// Centroid returns (A+B+C)/3.
func Centroid(a, b, c Vec3) Vec3 {
	return Mean3(a, b, c)
}

// Normal returns the outward unit normal n̂ = normalize((B−A)×(C−B)).
// It is not flipped by any global "outward" check: outwardness is a
// property of the vertex winding supplied by the loader.
func Normal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(b)).Normalize()
}

// TriArea returns ‖(B−A)×(C−B)‖/2.
func TriArea(a, b, c Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(b)).Norm() / 2
}

// det3 returns the determinant of the 3x3 matrix with rows r0, r1, r2.
func det3(r0, r1, r2 Vec3) float64 {
	return r0[0]*(r1[1]*r2[2]-r1[2]*r2[1]) -
		r0[1]*(r1[0]*r2[2]-r1[2]*r2[0]) +
		r0[2]*(r1[0]*r2[1]-r1[1]*r2[0])
}

// IsAbove reports whether D lies on the side of the plane through A,B,C
// that the normal (B−A)×(C−B) points to, i.e. det[A−D; B−D; C−D] < 0.
// Points exactly on the plane return false.
func IsAbove(a, b, c, d Vec3) bool {
	return det3(a.Sub(d), b.Sub(d), c.Sub(d)) < 0
}

// IsBelow is the strict opposite of IsAbove. Points exactly on the
// plane return false from both.
func IsBelow(a, b, c, d Vec3) bool {
	return det3(a.Sub(d), b.Sub(d), c.Sub(d)) > 0
}

// IsFace reports whether tar's front side faces the point obs, i.e.
// (tarCenter − obs)·tarNormal < 0.
func IsFace(obs Vec3, tarCenter Vec3, tarNormal Vec3) bool {
	return tarCenter.Sub(obs).Dot(tarNormal) < 0
}

// Raycast tests the Möller–Trumbore intersection of the ray from the
// origin in direction r against the triangle (a,b,c). Ray direction
// need not be unit; t is only sign-tested.
func Raycast(a, b, c, r Vec3) bool {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	t := a.Scale(-1)
	p := r.Cross(e2)
	denom := p.Dot(e1)
	if denom == 0 {
		return false
	}
	u := p.Dot(t) / denom
	if u < 0 || u > 1 {
		return false
	}
	q := t.Cross(e1)
	v := q.Dot(r) / denom
	if v < 0 || u+v > 1 {
		return false
	}
	tt := q.Dot(e2) / denom
	return tt > 0
}

// RaycastFrom is Raycast for a ray cast from observer point obs rather
// than the origin: it translates all triangle vertices by −obs.
func RaycastFrom(obs, a, b, c, r Vec3) bool {
	return Raycast(a.Sub(obs), b.Sub(obs), c.Sub(obs), r)
}

// Angle returns the angle in radians between two nonzero vectors.
func Angle(v1, v2 Vec3) float64 {
	c := v1.Normalize().Dot(v2.Normalize())
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// SolidAngle returns the solid angle subtended by triangle (a,b,c) as
// seen from obs, computed via L'Huilier's theorem on the spherical
// triangle formed by the three direction vectors.
func SolidAngle(obs, a, b, c Vec3) float64 {
	av := a.Sub(obs)
	bv := b.Sub(obs)
	cv := c.Sub(obs)
	side1 := Angle(bv, cv)
	side2 := Angle(cv, av)
	side3 := Angle(av, bv)
	s := (side1 + side2 + side3) / 2
	arg := math.Tan(s/2) * math.Tan((s-side1)/2) * math.Tan((s-side2)/2) * math.Tan((s-side3)/2)
	if arg < 0 {
		arg = 0
	}
	return 4 * math.Atan(math.Sqrt(arg))
}

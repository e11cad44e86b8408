// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Flux is the per-facet incident radiative flux bundle, in W/m². It is
// a plain record of three doubles, owned by the external illumination
// collaborator: the core only ever reads it. If a future variant needs
// wavelength-resolved fluxes, a tagged-variant type should replace this
// one rather than growing it ad hoc.
type Flux struct {
	Sun  float64 // direct solar flux
	Scat float64 // scattered (facet-to-facet) sunlight
	Rad  float64 // re-radiated thermal flux from other facets
}

// VisibleFace is one entry of a Facet's visibility list: another facet
// it can see, the Lambertian view factor toward it, and the unit
// direction from this facet's center to that facet's center.
type VisibleFace struct {
	ID  int     // index of the target facet in the owning Shape's Facets slice
	F   float64 // Lambertian point-to-area view factor, > 0
	Dir Vec3    // unit vector from this facet's center to the target's center
}

// Facet is one triangle of the polyhedral shape. Its lifetime equals
// the owning Shape's lifetime; it holds no back-pointer to the Shape
// (shared parameters and the scratch column are passed in by the
// thermal package instead, to avoid a reference cycle).
type Facet struct {
	A, B, C Vec3 // vertex positions, outward winding

	center Vec3
	normal Vec3
	area   float64

	Visible []VisibleFace // visibility list, built by FindVisibleFaces
	Flux    Flux          // current flux bundle, written by the illumination collaborator
	Tz      []float64     // depth-resolved temperature column, Kelvin, length Nz
	Recoil  Vec3          // photon-recoil accumulator; unused by the core
}

// NewFacet builds a Facet from three vertex positions, computing and
// caching its center, normal and area. The visibility list starts
// empty, the flux bundle starts zero, and Tz starts nil (the thermal
// package sizes and seeds it once Nz is known).
func NewFacet(a, b, c Vec3) *Facet {
	return &Facet{
		A: a, B: b, C: c,
		center: Centroid(a, b, c),
		normal: Normal(a, b, c),
		area:   TriArea(a, b, c),
	}
}

// Center returns the facet's centroid (A+B+C)/3.
func (f *Facet) Center() Vec3 { return f.center }

// Normal returns the facet's outward unit normal.
func (f *Facet) Normal() Vec3 { return f.normal }

// Area returns the facet's area.
func (f *Facet) Area() float64 { return f.area }

// AboveHorizon reports whether this facet has no facets in its
// visibility list, i.e. nothing else on the body is visible from it.
func (f *Facet) AboveHorizon() bool {
	return len(f.Visible) == 0
}

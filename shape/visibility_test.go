// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_cubeVisibility01 checks §8 Scenario B: on a convex unit cube
// every facet's front faces away from every other facet's front, so
// every visibility list is empty and every facet is above its horizon.
func Test_cubeVisibility01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubeVisibility01")

	nodes, faces := unitCube()
	s, err := Build(nodes, faces, BuildOptions{FindVisibleFaces: true})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	for i, f := range s.Facets {
		if len(f.Visible) != 0 {
			tst.Errorf("facet %d: expected no visible faces, got %d", i, len(f.Visible))
		}
		if !IsAboveHorizon(f) {
			tst.Errorf("facet %d: expected to be above its horizon", i)
		}
	}
}

// facingSquares returns two unit squares (each split into two
// triangles) at z=0 (facing +z) and z=1 (facing -z), used by the
// reciprocity, positivity and Scenario C tests.
func facingSquares() []*Facet {
	n := []Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, // 0..3: square A, z=0
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}, // 4..7: square B, z=1
	}
	idx := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // square A, normal +z
		{4, 7, 6}, {4, 6, 5}, // square B, normal -z
	}
	facets := make([]*Facet, len(idx))
	for i, f := range idx {
		facets[i] = NewFacet(n[f[0]], n[f[1]], n[f[2]])
	}
	return facets
}

// Test_viewFactorReciprocity01 checks §8 property 4 (f_ij·A_i ≈ f_ji·A_j)
// and property 5 (f>0, unit d̂) on two facing unit squares.
func Test_viewFactorReciprocity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viewFactorReciprocity01")

	facets := facingSquares()
	FindVisibleFaces(facets)

	found := false
	for i, fi := range facets {
		for _, vf := range fi.Visible {
			j := vf.ID
			if j < i {
				continue // check each unordered pair once
			}
			// find the reciprocal entry on j, if any
			for _, vfj := range facets[j].Visible {
				if vfj.ID != i {
					continue
				}
				found = true
				lhs := vf.F * fi.Area()
				rhs := vfj.F * facets[j].Area()
				chk.Scalar(tst, "reciprocity", 1e-9, lhs, rhs)
			}
		}
	}
	if !found {
		tst.Fatalf("expected at least one mutually visible pair")
	}

	for i, f := range facets {
		for _, vf := range f.Visible {
			if vf.F <= 0 {
				tst.Errorf("facet %d: view factor to %d must be > 0, got %v", i, vf.ID, vf.F)
			}
			if math.Abs(vf.Dir.Norm()-1) > 1e-12 {
				tst.Errorf("facet %d: direction to %d must be unit length, got %v", i, vf.ID, vf.Dir.Norm())
			}
		}
	}
}

// equilateralAt returns an equilateral triangle centered exactly at
// (x,0,0), normal ±x depending on facePositiveX, used by
// Test_occlusion01 so that A, B and C's centers are exactly colinear
// along the x-axis.
func equilateralAt(x float64, facePositiveX bool) *Facet {
	p0 := NewVec3(x, 1, 0)
	p1 := NewVec3(x, -0.5, 0.8660254037844386)
	p2 := NewVec3(x, -0.5, -0.8660254037844386)
	if facePositiveX {
		return NewFacet(p0, p1, p2)
	}
	return NewFacet(p0, p2, p1)
}

// Test_occlusion01 checks §8 property 6: with B sitting on the line
// from A's center to C's center, A's visibility list contains B but
// not C.
func Test_occlusion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("occlusion01")

	a := equilateralAt(0, true)  // facing +x, toward B and C
	b := equilateralAt(1, false) // facing -x, toward A
	c := equilateralAt(2, false) // facing -x, toward A (and B)

	facets := []*Facet{a, b, c}
	FindVisibleFaces(facets)

	sees := func(f *Facet, id int) bool {
		for _, vf := range f.Visible {
			if vf.ID == id {
				return true
			}
		}
		return false
	}

	if !sees(facets[0], 1) {
		tst.Errorf("A should see B")
	}
	if sees(facets[0], 2) {
		tst.Errorf("A should not see C (occluded by B)")
	}
}

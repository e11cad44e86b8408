// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// unitCube returns the node array and outward-wound face-index array
// of the unit cube spanning [0,1]^3, used by several tests (§8
// Scenario B, §8 property 3).
func unitCube() ([]Vec3, [][3]int) {
	nodes := []Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, // 0..3: bottom
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}, // 4..7: top
	}
	faces := [][3]int{
		{0, 3, 2}, {0, 2, 1}, // bottom, normal -z
		{4, 5, 6}, {4, 6, 7}, // top, normal +z
		{0, 1, 5}, {0, 5, 4}, // front (y=0), normal -y
		{3, 6, 2}, {3, 7, 6}, // back (y=1), normal +y
		{0, 7, 3}, {0, 4, 7}, // left (x=0), normal -x
		{1, 2, 6}, {1, 6, 5}, // right (x=1), normal +x
	}
	return nodes, faces
}

// Test_shapeTotals01 checks §8 property 3: for the unit cube,
// AREA=6, VOLUME=1, COF=(0.5,0.5,0.5).
func Test_shapeTotals01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shapeTotals01")

	nodes, faces := unitCube()
	s, err := Build(nodes, faces, BuildOptions{})
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	chk.IntAssert(len(s.Facets), 12)
	chk.Scalar(tst, "AREA", 1e-9, s.Area, 6.0)
	chk.Scalar(tst, "VOLUME", 1e-9, s.Volume, 1.0)
	chk.Scalar(tst, "COF.x", 1e-9, s.COF[0], 0.5)
	chk.Scalar(tst, "COF.y", 1e-9, s.COF[1], 0.5)
	chk.Scalar(tst, "COF.z", 1e-9, s.COF[2], 0.5)
}

// Test_buildRejectsBadIndex01 checks that Build reports a configuration
// error (not a panic) when a face references a node out of range.
func Test_buildRejectsBadIndex01(tst *testing.T) {

	chk.PrintTitle("buildRejectsBadIndex01")

	nodes := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	faces := [][3]int{{0, 1, 5}}
	_, err := Build(nodes, faces, BuildOptions{})
	if err == nil {
		tst.Fatalf("expected an error for an out-of-range face index")
	}
}

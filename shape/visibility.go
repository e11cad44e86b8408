// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"sync"
)

// FindVisibleFaces runs the visibility and view-factor pass (§4.4) for
// every facet as observer, against every other facet in meshes. It is
// O(N²) in the candidate-gathering step (Step A) and O(N³) worst case
// in the occlusion-pruning step (Step B); no spatial acceleration
// structure is used (see DESIGN.md for why none of the pack's
// libraries were bound here).
func FindVisibleFaces(meshes []*Facet) {
	for i := range meshes {
		meshes[i].Visible = visibilityFor(i, meshes)
	}
}

// FindVisibleFacesPar is the embarrassingly-parallel variant of
// FindVisibleFaces noted as an implementer's option in §5: the only
// data shared across observers is the read-only meshes slice, so each
// observer's pass can run in its own goroutine.
func FindVisibleFacesPar(meshes []*Facet) {
	var wg sync.WaitGroup
	wg.Add(len(meshes))
	for i := range meshes {
		go func(i int) {
			defer wg.Done()
			meshes[i].Visible = visibilityFor(i, meshes)
		}(i)
	}
	wg.Wait()
}

// visibilityFor implements Steps A–C of §4.4 for a single observer.
func visibilityFor(obsIdx int, meshes []*Facet) []VisibleFace {
	obs := meshes[obsIdx]
	oc := obs.Center()

	// Step A: candidate set — outward half-space and front-facing.
	var candidates []int
	for i, m := range meshes {
		if i == obsIdx {
			continue
		}
		if IsAbove(obs.A, obs.B, obs.C, m.Center()) && IsFace(oc, m.Center(), m.Normal()) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Step B: occlusion pruning, two-pass (gather then apply) so the
	// result does not depend on iteration order the way the original
	// in-place-mutation formulation would.
	occluded := occlusionEvents(obs, meshes, candidates)

	// Step C: view factors for every surviving candidate.
	var visible []VisibleFace
	for _, id := range candidates {
		if occluded[id] {
			continue
		}
		tgt := meshes[id]
		d := tgt.Center().Sub(oc)
		dist := d.Norm()
		if dist == 0 {
			continue
		}
		dhat := d.Scale(1 / dist)
		cosObs := obs.Normal().Dot(dhat)
		cosTar := tgt.Normal().Dot(dhat.Scale(-1))
		f := cosObs * cosTar / (math.Pi * dist * dist) * tgt.Area()
		if f <= 0 {
			continue
		}
		visible = append(visible, VisibleFace{ID: id, F: f, Dir: dhat})
	}
	return visible
}

// occlusionEvents casts, for every ordered pair (i,j) of distinct
// candidates, a ray from obs's center in the direction of i's center
// against facet j; a hit means one of {i,j} occludes the other, and
// the farther of the two is marked occluded. Both sweeps operate on
// the candidates snapshot taken before any removal is applied, so the
// result does not depend on discovery order.
func occlusionEvents(obs *Facet, meshes []*Facet, candidates []int) map[int]bool {
	oc := obs.Center()
	occluded := make(map[int]bool)
	for _, i := range candidates {
		ri := meshes[i].Center().Sub(oc)
		di := ri.Norm()
		for _, j := range candidates {
			if i == j {
				continue
			}
			tj := meshes[j]
			if RaycastFrom(oc, tj.A, tj.B, tj.C, ri) {
				dj := tj.Center().Sub(oc).Norm()
				if di <= dj {
					occluded[j] = true
				} else {
					occluded[i] = true
				}
			}
		}
	}
	return occluded
}

// IsAboveHorizon reports whether facet f has no other facet in its
// visibility list, i.e. nothing else on the body occupies its sky.
func IsAboveHorizon(f *Facet) bool {
	return f.AboveHorizon()
}

// IsIlluminated reports whether facet obs currently receives direct
// sunlight from direction sunDir (a unit vector pointing toward the
// Sun). It returns false if the Sun is below obs's local horizon, and
// otherwise casts a ray toward the Sun against every facet obs already
// knows it can see — the Sun is at infinity, so only those facets can
// occlude it.
func IsIlluminated(obs *Facet, sunDir Vec3, meshes []*Facet) bool {
	if obs.Normal().Dot(sunDir) < 0 {
		return false
	}
	oc := obs.Center()
	for _, vf := range obs.Visible {
		tgt := meshes[vf.ID]
		if RaycastFrom(oc, tgt.A, tgt.B, tgt.C, sunDir) {
			return false
		}
	}
	return true
}

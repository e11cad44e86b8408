// Copyright 2024 The Astroshaper-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/cpmech/gosl/chk"
)

// BuildOptions controls the optional passes of Build.
type BuildOptions struct {
	FindVisibleFaces bool // run the O(N²)/O(N³) visibility pass (§4.4) after materializing facets
}

// Shape owns the node array, the face-index array, the facet sequence
// and the bulk scalars derived from them. The nodes and face-index
// arrays are read-only after construction; each facet's Tz and Flux
// are owned and mutated exclusively by the thermal package and the
// external flux collaborator respectively.
type Shape struct {
	Nodes  []Vec3  // length num_node
	Faces  [][3]int // length num_face, each a triple of node indices
	Facets []*Facet

	Area    float64
	Volume  float64
	COF     Vec3
	Inertia [3][3]float64 // about the mesh origin; see addTetMoment's doc for the formula used

	// Tscratch is shared working storage for the thermal step, sized to
	// the first facet's Nz once the caller seeds Tz columns. It must
	// not be used concurrently for two facets at once; a concurrent
	// solver should promote it to one column per worker goroutine.
	Tscratch []float64
}

// Build materializes the facet sequence from an indexed triangular
// mesh, optionally computes visibility (§4.4), and computes AREA,
// VOLUME, COF and the inertia tensor (§4.3). nodes must use consistent
// outward-facing winding; Build does not check or repair winding.
func Build(nodes []Vec3, faces [][3]int, opts BuildOptions) (*Shape, error) {
	s := &Shape{
		Nodes: nodes,
		Faces: faces,
	}
	s.Facets = make([]*Facet, len(faces))
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(nodes) {
				return nil, chk.Err("build_shape: face %d references node index %d out of range [0,%d)", i, idx, len(nodes))
			}
		}
		s.Facets[i] = NewFacet(nodes[f[0]], nodes[f[1]], nodes[f[2]])
	}

	if opts.FindVisibleFaces {
		FindVisibleFaces(s.Facets)
	}

	s.computeBulkScalars()
	return s, nil
}

// computeBulkScalars implements §4.3 steps 3–6: AREA, the signed
// tetrahedron VOLUME, COF, and the inertia tensor, all accumulated
// from the same per-facet tetrahedron {origin, A, B, C} decomposition.
func (s *Shape) computeBulkScalars() {
	var area, volume float64
	var cofNum Vec3
	var m [3][3]float64 // unnormalized second-moment tensor Σ M_ij, accumulated over facets

	for _, f := range s.Facets {
		area += f.area

		a, b, c := f.A, f.B, f.C
		v := a.Cross(b).Dot(c) / 6 // signed tetrahedron volume, apex at origin
		volume += v

		centroid := a.Add(b).Add(c).Scale(1.0 / 4.0) // tetrahedron centroid, apex at origin
		cofNum = cofNum.Add(centroid.Scale(v))

		addTetMoment(&m, v, a, b, c)
	}

	s.Area = area
	s.Volume = volume
	if volume != 0 {
		s.COF = cofNum.Scale(1 / volume)
	}

	trace := m[0][0] + m[1][1] + m[2][2]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				s.Inertia[i][j] = trace - m[i][j]
			} else {
				s.Inertia[i][j] = -m[i][j]
			}
		}
	}
}

// addTetMoment accumulates the unnormalized second-moment contribution
//
//	M_ij = (v/20)·[ 2(Ai·Aj+Bi·Bj+Ci·Cj) + Ai·Bj+Aj·Bi + Ai·Cj+Aj·Ci + Bi·Cj+Bj·Ci ]
//
// of the tetrahedron {origin, A, B, C} (signed volume v) into m. This
// is the standard tetrahedron-decomposition polyhedral mass-properties
// formula, used here with the same per-facet apex-at-origin
// decomposition already driving VOLUME and COF above; it is checked
// against the unit right tetrahedron in inertia_test.go.
func addTetMoment(m *[3][3]float64, v float64, a, b, c Vec3) {
	w := v / 20
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += w * (2*(a[i]*a[j]+b[i]*b[j]+c[i]*c[j]) +
				a[i]*b[j] + a[j]*b[i] +
				a[i]*c[j] + a[j]*c[i] +
				b[i]*c[j] + b[j]*c[i])
		}
	}
}

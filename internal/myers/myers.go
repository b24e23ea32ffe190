// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import "math"

type myers[T any] struct {
	// Inputs to align and the equality used for comparisons.
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for forwards and backwards search. vf[v0+k] holds the s-coordinate of the endpoint
	// of the furthest reaching path on diagonal k, the t-coordinate follows from t = s - k. The
	// arrays have a border of one element on each side.
	vf, vb []int
	v0     int

	// Result vectors.
	rx, ry []bool
}

// Align aligns x[smin:smax] and y[tmin:tmax] and marks all elements that are not part of the
// alignment in rx and ry respectively.
//
// Important: eq is always called with an element of x as first and an element of y as second
// argument.
func Align[T any](x, y []T, eq func(a, b T) bool, rx, ry []bool, smin, smax, tmin, tmax int) {
	// All diagonals used below are in [smin-tmax, smax-tmin].
	diagonals := (smax - smin) + (tmax - tmin)
	vlen := 2*diagonals + 3    // +1 for the middle and +2 for the borders
	buf := make([]int, 2*vlen) // vf and vb in a single allocation

	m := myers[T]{
		x:  x,
		y:  y,
		eq: eq,
		vf: buf[:vlen],
		vb: buf[vlen:],
		v0: (tmax - smin) + 1,
		rx: rx,
		ry: ry,
	}
	m.compare(smin, smax, tmin, tmax)
}

// compare finds an optimal path from (smin, tmin) to (smax, tmax).
func (m *myers[T]) compare(smin, smax, tmin, tmax int) {
	x, y, eq := m.x, m.y, m.eq

	// A common prefix or suffix is always aligned. Stripping it here establishes the precondition
	// of split.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		// The middle snake divides the problem into a rectangle before and a rectangle after
		// it. Both are strictly smaller than the input.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of the, potentially empty, middle snake of an optimal path from (smin,
// tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must both be non-empty and must not have a common prefix
// or a common suffix.
func (m *myers[T]) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Range of diagonals that intersect the rectangle.
	kmin, kmax := smin-tmax, smax-tmin

	// The forward search starts on diagonal fmid, the backward search on diagonal bmid. Using the
	// same numbering for both searches means overlaps can be checked without converting k.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of an optimal path has the same parity as N-M. If it's odd, the overlap is found
	// in the forward search, otherwise in the backward search.
	odd := (N-M)%2 != 0

	// Without common prefix and suffix, there are no diagonals leaving the corners and the 0-paths
	// are trivial.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	for d := 1; ; d++ {
		// Forward search. Grow the range of diagonals by one in each direction as long as it stays
		// within the rectangle, otherwise shrink it to keep the parity. The border element is set
		// so that it's never chosen as a predecessor.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := v0 + k

			// Step right from diagonal k-1 or down from diagonal k+1, whichever reaches further.
			// Ties are resolved by stepping right.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Follow the snake.
			ss, tt := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return ss, s, tt, t
			}
		}

		// Backward search, mirroring the forward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := v0 + k

			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			ss, tt := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, ss, t, tt
			}
		}
	}
}

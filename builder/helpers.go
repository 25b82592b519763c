// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// helpers.go - the facet draft shared by all constructors and small
// combinatorial helpers.
//
// Design:
//   - draft collects facets in emission order; duplicates and faces of other
//     facets are harmless, complex.NewSimplicial closes and dedups them.
//   - next tracks one past the largest vertex index seen, which is where
//     Disjoint starts and how many labels Build generates.

package builder

// draft accumulates facets for one Build call.
type draft struct {
	facets [][]int
	next   int
}

// add appends one facet (copied) and bumps the vertex bound.
func (d *draft) add(vs ...int) {
	f := make([]int, len(vs))
	copy(f, vs)
	for _, v := range f {
		if v+1 > d.next {
			d.next = v + 1
		}
	}
	d.facets = append(d.facets, f)
}

// addPolygon fans the polygon (p0, p1, …, pk) into triangles around p0.
// The polygon must be convex in the surface, i.e. its diagonals from p0 must
// not already be edges.
func (d *draft) addPolygon(poly ...int) {
	for i := 1; i+1 < len(poly); i++ {
		d.add(poly[0], poly[i], poly[i+1])
	}
}

// combinations calls fn with every k-subset of {0..n-1} in lexicographic
// order. The slice passed to fn is reused between calls.
// Complexity: O(C(n,k)·k).
func combinations(n, k int, fn func([]int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Find the rightmost index that can still move.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// SPDX-License-Identifier: MIT

package complex

import "slices"

// walker explores the 1-skeleton breadth-first from one root at a time.
type walker struct {
	adj     map[int][]int
	queue   []int
	visited map[int]bool
}

// Components returns the vertex sets of the connected components of the
// 1-skeleton. Components are ordered by their smallest vertex and each is
// sorted ascending. Their number equals the rank of H_0.
//
// Complexity: O(n_0 + n_1).
func (s *Simplicial) Components() [][]int {
	vertices := s.faces[0]
	w := &walker{
		adj:     make(map[int][]int, len(vertices)),
		queue:   make([]int, 0, len(vertices)),
		visited: make(map[int]bool, len(vertices)),
	}
	if s.Dim() >= 1 {
		for _, e := range s.faces[1] {
			w.adj[e[0]] = append(w.adj[e[0]], e[1])
			w.adj[e[1]] = append(w.adj[e[1]], e[0])
		}
	}

	var out [][]int
	for _, v := range vertices {
		if w.visited[v[0]] {
			continue
		}
		out = append(out, w.walk(v[0]))
	}

	return out
}

// walk returns every vertex reachable from root, sorted.
func (w *walker) walk(root int) []int {
	var order []int
	w.enqueue(root)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, v)
		for _, nbr := range w.adj[v] {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}
	slices.Sort(order)

	return order
}

func (w *walker) enqueue(v int) {
	w.visited[v] = true
	w.queue = append(w.queue, v)
}

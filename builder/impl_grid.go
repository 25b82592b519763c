// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_grid.go - triangulated square grids: Grid, TorusGrid, KleinGrid.
//
// Canonical model:
//   - A rows×cols array of unit squares; square (r,c) has corners
//     p00=(r,c), p10=(r+1,c), p01=(r,c+1), p11=(r+1,c+1) and is split along
//     the p00–p11 diagonal into {p00,p10,p11} and {p00,p01,p11}.
//   - Grid keeps the boundary: (rows+1)·(cols+1) vertices, a disk.
//   - TorusGrid identifies row rows with row 0 and column cols with column 0.
//   - KleinGrid does the same but glues row rows to row 0 reversed:
//     (rows, c) ~ (0, (cols-c) mod cols).
//
// Contract:
//   - Grid: rows, cols ≥ 1 (else ErrTooFewVertices).
//   - TorusGrid, KleinGrid: rows, cols ≥ 3 (else ErrTooFewVertices); smaller
//     grids collapse triangles under the identification.
//   - Vertex index of (r,c) is r·width + c in row-major order, where width is
//     cols+1 for Grid and cols for the wrapped grids.
//
// Complexity:
//   - Time: O(rows·cols) facets.
//
// Determinism:
//   - Squares are visited row-major; each emits its two triangles in the order above.

package builder

// Grid returns a Constructor for the triangulated rows×cols rectangle.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		width := cols + 1
		addSquares(d, rows, cols, func(r, c int) int { return r*width + c })

		return nil
	}
}

// TorusGrid returns a Constructor for the rows×cols grid with both pairs of
// opposite sides glued straight.
func TorusGrid(rows, cols int) Constructor {
	return periodicGrid(methodTorusGrid, rows, cols, false)
}

// KleinGrid returns a Constructor for the rows×cols grid with one pair of
// sides glued straight and the other reversed.
func KleinGrid(rows, cols int) Constructor {
	return periodicGrid(methodKleinGrid, rows, cols, true)
}

func periodicGrid(method string, rows, cols int, twist bool) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(method, "rows", rows, MinPeriodicGridDim); err != nil {
			return err
		}
		if err := validateMin(method, "cols", cols, MinPeriodicGridDim); err != nil {
			return err
		}
		addSquares(d, rows, cols, func(r, c int) int {
			if r == rows {
				r = 0
				if twist {
					c = (cols - c) % cols
				}
			}

			return r*cols + c%cols
		})

		return nil
	}
}

// addSquares emits both triangles of every square, naming corners with at.
func addSquares(d *draft, rows, cols int, at func(r, c int) int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p00, p10, p01, p11 := at(r, c), at(r+1, c), at(r, c+1), at(r+1, c+1)
			d.add(p00, p10, p11)
			d.add(p00, p01, p11)
		}
	}
}

// File: dense.go
// Role: n×n row-major edge-weight mirror backing O(1) HasEdge/Weight.
// Policy:
//   - Flat backing slices for cache friendliness (one allocation each).
//   - First write to a cell wins; later parallel edges leave it untouched so
//     the mirror agrees with the first-match scan over adj[u].
//   - Callers validate indices; dense never bounds-checks beyond the runtime.

package core

// dense stores one weight and one presence bit per ordered vertex pair.
type dense[W Weight] struct {
	n    int    // side length
	data []W    // data[u*n+v] = weight of the first u→v insertion
	set  []bool // set[u*n+v] reports whether any u→v edge exists
}

// newDense allocates an n×n mirror with every cell absent.
// Complexity: O(n²) time and memory.
func newDense[W Weight](n int) *dense[W] {
	return &dense[W]{
		n:    n,
		data: make([]W, n*n),
		set:  make([]bool, n*n),
	}
}

// put records w for (u,v) unless the cell is already populated.
func (m *dense[W]) put(u, v int, w W) {
	idx := u*m.n + v
	if m.set[idx] {
		return
	}
	m.data[idx] = w
	m.set[idx] = true
}

// has reports whether (u,v) has been written.
func (m *dense[W]) has(u, v int) bool {
	return m.set[u*m.n+v]
}

// at returns the stored weight and whether the cell is populated.
func (m *dense[W]) at(u, v int) (W, bool) {
	idx := u*m.n + v

	return m.data[idx], m.set[idx]
}

package cfr

// actionValuePool recycles the per-action scratch slices used by the tree
// walk, so a traversal allocates at most one slice per level of depth.
// Returned slices are zeroed.
type actionValuePool struct {
	idle [][]float64
}

func (p *actionValuePool) get(n int) []float64 {
	if m := len(p.idle); m > 0 {
		s := p.idle[m-1]
		p.idle = p.idle[:m-1]
		return append(s, make([]float64, n)...)
	}

	return make([]float64, n)
}

func (p *actionValuePool) put(s []float64) {
	if cap(s) > 0 {
		p.idle = append(p.idle, s[:0])
	}
}

package flatten

import "sync"

// Binomial is a table of binomial coefficients, grown on demand. The zero
// value is ready to use, and a Binomial is safe for concurrent use.
type Binomial struct {
	mu   sync.RWMutex
	rows [][]float64
}

// Row returns the coefficients C(n, 0) ... C(n, n). The slice is shared and
// must not be modified.
func (b *Binomial) Row(n int) []float64 {
	b.mu.RLock()
	if n < len(b.rows) {
		row := b.rows[n]
		b.mu.RUnlock()
		return row
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.rows) <= n {
		i := len(b.rows)
		row := make([]float64, i+1)
		row[0], row[i] = 1, 1
		for k := 1; k < i; k++ {
			prev := b.rows[i-1]
			row[k] = prev[k-1] + prev[k]
		}
		b.rows = append(b.rows, row)
	}
	return b.rows[n]
}

// Coefficient returns C(n, k), or 0 if k is out of range.
func (b *Binomial) Coefficient(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return b.Row(n)[k]
}

// Shared is the table used when no other is given.
var Shared = &Binomial{}

package machin

// ============================================================
// Combin — lexicographic k-combination enumerator
// ============================================================

// Combin lazily enumerates all k-element subsets of {0, …, n-1} as strictly
// increasing index tuples, in lexicographic order. It is finite and
// non-restartable. The same enumerator drives both the prime-subset (k=5)
// and square-subset (k=6) layers of the search.
type Combin struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

// Combinations returns an enumerator over k-subsets of {0, …, n-1}.
// When n < k the enumerator yields nothing.
func Combinations(n, k int) *Combin {
	return &Combin{n: n, k: k, done: n < k || k < 0}
}

// Next returns the next index tuple, or false when exhausted. The returned
// slice is owned by the enumerator and only valid until the next call.
func (c *Combin) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}
	if !c.started {
		c.started = true
		c.idx = make([]int, c.k)
		for i := range c.idx {
			c.idx[i] = i
		}
		return c.idx, true
	}
	// Advance the rightmost index that still has room.
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return nil, false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return c.idx, true
}

package machin

import (
	"fmt"

	"modernc.org/mathutil"
)

// ============================================================
// FactorTable — cached factorizations of a²+1
// ============================================================

// FactorTable maps each term a in a fixed range to the prime factorization
// of a²+1. Built once, read-only afterwards; safe for concurrent readers.
type FactorTable map[int]map[uint32]uint32

// NewFactorTable factors a²+1 for every a in [min, max].
func NewFactorTable(min, max int) FactorTable {
	if min < 1 || max < min {
		panic(fmt.Sprintf("machin: bad term range [%d, %d]", min, max))
	}
	if max > 65535 {
		// a²+1 must fit the 32-bit factorization oracle.
		panic(fmt.Sprintf("machin: max term %d exceeds 32-bit factor range", max))
	}
	t := make(FactorTable, max-min+1)
	for a := min; a <= max; a++ {
		n := uint32(a*a + 1)
		f := make(map[uint32]uint32)
		for _, term := range mathutil.FactorInt(n) {
			f[term.Prime] = term.Power
		}
		t[a] = f
	}
	return t
}

// Exponent reports the exponent of p in a²+1, or 0 when p does not divide it.
// The term a must be inside the table's range.
func (t FactorTable) Exponent(a int, p uint32) uint32 {
	return t[a][p]
}

// SmoothOver reports whether every prime factor of a²+1 is in the given set.
func (t FactorTable) SmoothOver(a int, primes map[uint32]bool) bool {
	f, ok := t[a]
	if !ok {
		panic(fmt.Sprintf("machin: term %d outside factor table", a))
	}
	for p := range f {
		if !primes[p] {
			return false
		}
	}
	return true
}

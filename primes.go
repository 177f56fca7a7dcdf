package machin

import "modernc.org/mathutil"

// Primes4k1 returns the primes p ≤ limit with p ≡ 1 (mod 4), in increasing
// order. Only these primes can divide the odd part of a²+1.
func Primes4k1(limit int) []uint32 {
	var ps []uint32
	for p := uint32(2); int(p) <= limit; {
		if p%4 == 1 {
			ps = append(ps, p)
		}
		next, ok := mathutil.NextPrime(p)
		if !ok {
			break
		}
		p = next
	}
	return ps
}

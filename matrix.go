package machin

// SignedExponents builds the signed exponent matrix for one choice of odd
// primes (rows) and terms (columns). Entry (p, a) is the exponent of p in
// a²+1, negated when a mod p falls below p/2. The sign convention selects
// the branch of the arctangent addition formula; it is reproduced from the
// source algorithm as given.
func SignedExponents(primes []uint32, squares []int, table FactorTable) [][]int64 {
	m := make([][]int64, len(primes))
	for i, p := range primes {
		row := make([]int64, len(squares))
		for j, a := range squares {
			e := int64(table.Exponent(a, p))
			// a mod p < p/2, with p/2 taken exactly (p is odd).
			if 2*(uint32(a)%p) < p {
				e = -e
			}
			row[j] = e
		}
		m[i] = row
	}
	return m
}

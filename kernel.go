package machin

import "math/big"

// ============================================================
// Integer nullspace
// ============================================================

// KernelBasis computes a basis for the integer right kernel of mat: all
// integer vectors v with mat·v = 0. The matrix is reduced by unimodular
// column operations (gcd elimination into column echelon form) over exact
// big-integer arithmetic; the columns of the accumulated transform that end
// up paired with zero columns of the reduced matrix span the kernel.
//
// Basis vectors are primitive (entries share no common factor) with a
// positive leading entry, and their order is deterministic for a given
// input. An empty result means the kernel is {0}. Ragged input is a
// programming error and panics.
func KernelBasis(mat [][]int64) [][]*big.Int {
	m := len(mat)
	n := 0
	if m > 0 {
		n = len(mat[0])
	}
	for _, row := range mat {
		if len(row) != n {
			panic("machin: ragged matrix")
		}
	}

	a := make([][]*big.Int, m)
	for i, row := range mat {
		a[i] = make([]*big.Int, n)
		for j, v := range row {
			a[i][j] = big.NewInt(v)
		}
	}
	// u accumulates the column operations, starting from the identity.
	u := make([][]*big.Int, n)
	for i := range u {
		u[i] = make([]*big.Int, n)
		for j := range u[i] {
			u[i][j] = new(big.Int)
		}
		u[i][i].SetInt64(1)
	}

	q := new(big.Int)
	t := new(big.Int)
	c := 0 // next pivot column
	for i := 0; i < m && c < n; i++ {
		for {
			// Smallest nonzero entry of row i among the free columns.
			piv := -1
			for j := c; j < n; j++ {
				if a[i][j].Sign() != 0 && (piv < 0 || a[i][j].CmpAbs(a[i][piv]) < 0) {
					piv = j
				}
			}
			if piv < 0 {
				break // row already zero here; kernel gains a dimension
			}
			clean := true
			for j := c; j < n; j++ {
				if j == piv || a[i][j].Sign() == 0 {
					continue
				}
				q.Quo(a[i][j], a[i][piv])
				if q.Sign() != 0 {
					for r := 0; r < m; r++ {
						a[r][j].Sub(a[r][j], t.Mul(q, a[r][piv]))
					}
					for r := 0; r < n; r++ {
						u[r][j].Sub(u[r][j], t.Mul(q, u[r][piv]))
					}
				}
				if a[i][j].Sign() != 0 {
					clean = false
				}
			}
			if clean {
				if piv != c {
					for r := 0; r < m; r++ {
						a[r][c], a[r][piv] = a[r][piv], a[r][c]
					}
					for r := 0; r < n; r++ {
						u[r][c], u[r][piv] = u[r][piv], u[r][c]
					}
				}
				c++
				break
			}
			// Remainders survive; repeat with a smaller pivot.
		}
	}

	basis := make([][]*big.Int, 0, n-c)
	for j := c; j < n; j++ {
		v := make([]*big.Int, n)
		for r := 0; r < n; r++ {
			v[r] = u[r][j]
		}
		basis = append(basis, primitive(v))
	}
	return basis
}

// primitive divides out the content of v and flips its sign so the leading
// nonzero entry is positive. Modifies and returns v.
func primitive(v []*big.Int) []*big.Int {
	g := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(x)
		if g.Sign() == 0 {
			g.Set(abs)
		} else {
			g.GCD(nil, nil, g, abs)
		}
	}
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		for _, x := range v {
			x.Quo(x, g)
		}
	}
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		if x.Sign() < 0 {
			for _, y := range v {
				y.Neg(y)
			}
		}
		break
	}
	return v
}

package machin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	machin "github.com/njchilds90/go-machin"
)

func TestSignedExponents(t *testing.T) {
	table := machin.NewFactorTable(100, 250)
	// 123²+1 = 15130 = 2·5·17·89; 239²+1 = 57122 = 2·13⁴.
	m := machin.SignedExponents([]uint32{5, 13, 17}, []int{123, 239}, table)
	want := [][]int64{
		{1, 0},  // 123 mod 5 = 3, above 5/2: positive
		{0, -4}, // 239 mod 13 = 5, below 13/2: negated
		{-1, 0}, // 123 mod 17 = 4, below 17/2: negated
	}
	require.Equal(t, want, m)
}

func TestSignedExponents_AbsoluteValues(t *testing.T) {
	table := machin.NewFactorTable(100, 463)
	primes := []uint32{5, 13, 17, 29, 37}
	squares := []int{107, 122, 157, 239, 268, 307}
	m := machin.SignedExponents(primes, squares, table)
	require.Len(t, m, len(primes))
	for i, p := range primes {
		require.Len(t, m[i], len(squares))
		for j, a := range squares {
			abs := m[i][j]
			if abs < 0 {
				abs = -abs
			}
			require.EqualValues(t, table.Exponent(a, p), abs, "p=%d a=%d", p, a)
		}
	}
}

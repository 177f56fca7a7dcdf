package machin_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	machin "github.com/njchilds90/go-machin"
)

func vecStrings(v []*big.Int) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.String()
	}
	return out
}

func TestKernelBasis_Planted1D(t *testing.T) {
	// Kernel of [[1 2 3] [0 1 1]] is spanned by (1, 1, -1).
	basis := machin.KernelBasis([][]int64{{1, 2, 3}, {0, 1, 1}})
	require.Len(t, basis, 1)
	assert.Equal(t, []string{"1", "1", "-1"}, vecStrings(basis[0]))
}

func TestKernelBasis_PlantedRelation5x6(t *testing.T) {
	// Five independent rows, all orthogonal to v = (1, -2, 3, 0, 1, 2).
	m := [][]int64{
		{2, 1, 0, 0, 0, 0},
		{3, 0, -1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{1, 0, 0, 0, -1, 0},
		{0, 0, 2, 0, 0, -3},
	}
	basis := machin.KernelBasis(m)
	require.Len(t, basis, 1)
	assert.Equal(t, []string{"1", "-2", "3", "0", "1", "2"}, vecStrings(basis[0]))
}

func TestKernelBasis_FullRank(t *testing.T) {
	basis := machin.KernelBasis([][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	assert.Empty(t, basis)
}

func TestKernelBasis_ZeroMatrix(t *testing.T) {
	basis := machin.KernelBasis([][]int64{{0, 0}, {0, 0}})
	require.Len(t, basis, 2)
}

func TestKernelBasis_VectorsAnnihilate(t *testing.T) {
	m := [][]int64{
		{3, -1, 4, 1, -5, 9},
		{-2, 6, 0, -5, 3, 5},
		{8, -9, 7, 0, -9, 3},
		{2, 3, -8, 4, 6, -2},
		{-6, 2, 6, -4, 3, 3},
	}
	basis := machin.KernelBasis(m)
	require.NotEmpty(t, basis) // 5 rows, 6 columns: kernel has dimension >= 1
	prod := new(big.Int)
	term := new(big.Int)
	for _, v := range basis {
		for _, row := range m {
			prod.SetInt64(0)
			for j, e := range row {
				prod.Add(prod, term.Mul(big.NewInt(e), v[j]))
			}
			require.Zero(t, prod.Sign(), "basis vector not in kernel")
		}
	}
}

func TestKernelBasis_Deterministic(t *testing.T) {
	m := [][]int64{{4, 6, 2, 0}, {0, 3, 3, 3}}
	a := machin.KernelBasis(m)
	b := machin.KernelBasis(m)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, vecStrings(a[i]), vecStrings(b[i]))
	}
}

func TestKernelBasis_RaggedPanics(t *testing.T) {
	require.Panics(t, func() { machin.KernelBasis([][]int64{{1, 2}, {3}}) })
}

package bernstein3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex3D(t *testing.T) {
	// row-major layout and bounds
	{
		k, ok := Index3D(2, 3, 4, 0, 0, 0)
		assert.True(t, ok)
		assert.Equal(t, 0, k)

		k, ok = Index3D(2, 3, 4, 2, 3, 4)
		assert.True(t, ok)
		assert.Equal(t, NumPars3D(2, 3, 4)-1, k)

		k, ok = Index3D(2, 3, 4, 1, 2, 3)
		assert.True(t, ok)
		assert.Equal(t, 5*(4*1+2)+3, k)
	}
	// rejections
	{
		for _, lmn := range [][3]int{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}, {-1, 0, 0}} {
			_, ok := Index3D(2, 3, 4, lmn[0], lmn[1], lmn[2])
			assert.False(t, ok)
		}
	}
	// bijectivity over the full cube
	{
		seen := make(map[int]bool)
		for l := 0; l <= 2; l++ {
			for m := 0; m <= 3; m++ {
				for n := 0; n <= 4; n++ {
					k, ok := Index3D(2, 3, 4, l, m, n)
					assert.True(t, ok)
					assert.False(t, seen[k])
					seen[k] = true
				}
			}
		}
		assert.Equal(t, NumPars3D(2, 3, 4), len(seen))
	}
}

func TestIndexSym(t *testing.T) {
	// permutation invariance
	{
		perms := [][3]int{
			{2, 1, 0}, {2, 0, 1}, {1, 2, 0}, {1, 0, 2}, {0, 1, 2}, {0, 2, 1},
		}
		k0, ok := IndexSym(3, 2, 1, 0)
		assert.True(t, ok)
		for _, p := range perms {
			k, ok := IndexSym(3, p[0], p[1], p[2])
			assert.True(t, ok)
			assert.Equal(t, k0, k)
		}
	}
	// canonical triples enumerate [0, count) exactly once
	{
		N := 4
		seen := make(map[int]bool)
		for l := 0; l <= N; l++ {
			for m := 0; m <= l; m++ {
				for n := 0; n <= m; n++ {
					k, ok := IndexSym(N, l, m, n)
					assert.True(t, ok)
					assert.False(t, seen[k])
					seen[k] = true
				}
			}
		}
		assert.Equal(t, NumParsSym(N), len(seen))
	}
	// rejections, including after canonicalization
	{
		_, ok := IndexSym(2, 3, 0, 0)
		assert.False(t, ok)
		_, ok = IndexSym(2, 0, 0, 3) // canonicalizes to l=3 > N
		assert.False(t, ok)
		_, ok = IndexSym(2, -1, 0, 0)
		assert.False(t, ok)
	}
	assert.Equal(t, 10, NumParsSym(2))
	assert.Equal(t, 1, NumParsSym(0))
}

func TestIndexMix(t *testing.T) {
	// pair-swap invariance, n stays free
	{
		k0, ok := IndexMix(3, 2, 3, 1, 2)
		assert.True(t, ok)
		k1, ok2 := IndexMix(3, 2, 1, 3, 2)
		assert.True(t, ok2)
		assert.Equal(t, k0, k1)

		ka, _ := IndexMix(3, 2, 3, 1, 0)
		kb, _ := IndexMix(3, 2, 3, 1, 1)
		assert.NotEqual(t, ka, kb)
	}
	// canonical pairs enumerate [0, count) exactly once
	{
		N, Nz := 3, 2
		seen := make(map[int]bool)
		for l := 0; l <= N; l++ {
			for m := 0; m <= l; m++ {
				for n := 0; n <= Nz; n++ {
					k, ok := IndexMix(N, Nz, l, m, n)
					assert.True(t, ok)
					assert.False(t, seen[k])
					seen[k] = true
				}
			}
		}
		assert.Equal(t, NumParsMix(N, Nz), len(seen))
	}
	// rejections
	{
		_, ok := IndexMix(2, 2, 3, 0, 0)
		assert.False(t, ok)
		_, ok = IndexMix(2, 2, 0, 0, 3)
		assert.False(t, ok)
		_, ok = IndexMix(2, 2, 0, 0, -1)
		assert.False(t, ok)
	}
	assert.Equal(t, 6*3, NumParsMix(2, 2))
}

package bernstein

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisPartitionOfUnity(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		b := NewBasis(n, -2, 3)
		for _, x := range []float64{-2, -1.5, 0, 0.7, 2.9999, 3} {
			var sum float64
			for i := 0; i <= n; i++ {
				sum += b.At(i, x)
			}
			assert.True(t, near(sum, 1))
			assert.True(t, near(b.EvalAll(x).Sum(), 1))
		}
	}
}

func TestBasisTransformRoundTrip(t *testing.T) {
	b := NewBasis(3, -1, 4)
	for _, v := range []float64{-1, -0.5, 0, 1.7, 4} {
		assert.True(t, near(b.X(b.T(v)), v))
	}
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		assert.True(t, near(b.T(b.X(tt)), tt))
	}
}

func TestBasisOutOfRange(t *testing.T) {
	b := NewBasis(2, 0, 1)
	assert.Equal(t, 0., b.At(-1, 0.5))
	assert.Equal(t, 0., b.At(3, 0.5))
	assert.Equal(t, 0., b.At(0, -0.1))
	assert.Equal(t, 0., b.At(0, 1.1))
	assert.Equal(t, 0., b.EvalAll(2).Sum())
	assert.Equal(t, 0., b.Integral(3, 0, 1))
}

func TestBasisIntegral(t *testing.T) {
	// Full-interval integral is range/(N+1) for every member
	{
		b := NewBasis(4, -1, 3)
		for i := 0; i <= 4; i++ {
			assert.True(t, near(b.Integral(i, -1, 3), 4./5.))
			assert.True(t, near(b.Integral(i, -10, 10), 4./5.)) // clamped
		}
		assert.True(t, near(b.IntegralFull(), 4./5.))
	}
	// Additivity and antisymmetry
	{
		b := NewBasis(3, 0, 2)
		for i := 0; i <= 3; i++ {
			whole := b.Integral(i, 0.2, 1.8)
			split := b.Integral(i, 0.2, 1.0) + b.Integral(i, 1.0, 1.8)
			assert.True(t, near(whole, split))
			assert.True(t, near(b.Integral(i, 1.8, 0.2), -whole))
		}
	}
	// Degree 1 on [0,1]: B_0 = 1-t, closed form checks
	{
		b := NewBasis(1, 0, 1)
		assert.True(t, near(b.Integral(0, 0, 0.5), 0.375))
		assert.True(t, near(b.Integral(1, 0, 0.5), 0.125))
		assert.True(t, near(b.IntegralsAll(0, 0.5).Sum(), 0.5))
	}
}

func TestBasisVandermonde(t *testing.T) {
	b := NewBasis(3, 0, 1)
	xs := []float64{0, 0.25, 0.5, 0.75, 1}
	V := b.Vandermonde(xs)
	nr, nc := V.Dims()
	assert.Equal(t, len(xs), nr)
	assert.Equal(t, 4, nc)
	// every row sums to 1 by partition of unity
	rs := V.SumRows()
	for p := range xs {
		assert.True(t, near(rs.AtVec(p), 1))
	}
	// endpoint rows are cardinal
	assert.True(t, near(V.At(0, 0), 1))
	assert.True(t, near(V.At(len(xs)-1, 3), 1))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-10*math.Max(1, math.Abs(a)) {
		l = true
	}
	return
}

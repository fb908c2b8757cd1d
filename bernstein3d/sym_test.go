package bernstein3d

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymSharedSlots(t *testing.T) {
	s := NewBernstein3DSym(2, 0, 1)
	assert.Equal(t, 10, s.NPars())

	// {2,0,0} is one slot shared by its whole orbit
	assert.Equal(t, 0., s.ParAt(2, 0, 0))
	assert.Equal(t, 0., s.ParAt(0, 2, 0))
	assert.True(t, s.SetParAt(2, 0, 0, 5))
	assert.Equal(t, 5., s.ParAt(0, 2, 0))
	assert.Equal(t, 5., s.ParAt(0, 0, 2))

	// degree accessors collapse to the shared axis
	assert.Equal(t, s.NX(), s.NY())
	assert.Equal(t, s.NX(), s.NZ())
	assert.Equal(t, s.XMin(), s.YMin())
	assert.Equal(t, s.XMax(), s.ZMax())
}

func TestSymEvaluateIsPermutationInvariant(t *testing.T) {
	s := randomSym(3, 11)
	var (
		x, y, z = 0.15, 0.6, 0.85
		v       = s.Evaluate(x, y, z)
	)
	for _, p := range [][3]float64{
		{x, z, y}, {y, x, z}, {y, z, x}, {z, x, y}, {z, y, x},
	} {
		assert.True(t, near(s.Evaluate(p[0], p[1], p[2]), v))
	}
}

func TestSymMatchesExpandedTensor(t *testing.T) {
	// the packed tensor and its full expansion are the same polynomial
	s := randomSym(2, 5)
	b := NewBernstein3DFromSym(s)
	assert.Equal(t, 27, b.NPars())

	for _, p := range [][3]float64{{0, 0, 0}, {0.2, 0.5, 0.9}, {1, 0.3, 0.7}} {
		assert.True(t, near(s.Evaluate(p[0], p[1], p[2]), b.Evaluate(p[0], p[1], p[2])))
	}
	assert.True(t, near(s.Integral(), b.Integral()))
	assert.True(t, near(
		s.IntegralBox(0.1, 0.9, 0.2, 0.8, 0.3, 0.7),
		b.IntegralBox(0.1, 0.9, 0.2, 0.8, 0.3, 0.7)))
	assert.True(t, near(
		s.IntegrateXRange(0.4, 0.6, 0.1, 0.5),
		b.IntegrateXRange(0.4, 0.6, 0.1, 0.5)))
	assert.True(t, near(
		s.IntegrateXYRange(0.4, 0.1, 0.5, 0.2, 0.9),
		b.IntegrateXYRange(0.4, 0.1, 0.5, 0.2, 0.9)))
}

func TestSymAxisAliases(t *testing.T) {
	// one-axis and two-axis projections are permutations of each other
	s := randomSym(2, 19)
	b := NewBernstein3DFromSym(s)
	var (
		a, c = 0.2, 0.7
		u, v = 0.35, 0.8
	)
	assert.True(t, near(s.IntegrateYRange(u, v, a, c), b.IntegrateYRange(u, v, a, c)))
	assert.True(t, near(s.IntegrateZRange(u, v, a, c), b.IntegrateZRange(u, v, a, c)))
	assert.True(t, near(
		s.IntegrateYZRange(u, a, c, 0.1, v),
		b.IntegrateYZRange(u, a, c, 0.1, v)))
	assert.True(t, near(s.IntegrateY(u, v), b.IntegrateY(u, v)))
	assert.True(t, near(s.IntegrateXZ(u), b.IntegrateXZ(u)))
}

func TestSymAllOnesIntegral(t *testing.T) {
	// every cube coefficient is 1, so the integral is the domain volume
	s := NewBernstein3DSym(3, -1, 1)
	for k := 0; k < s.NPars(); k++ {
		s.SetPar(k, 1)
	}
	assert.True(t, near(s.Integral(), 8))
	for _, p := range [][3]float64{{0, 0, 0}, {-0.5, 0.25, 0.75}} {
		assert.True(t, near(s.Evaluate(p[0], p[1], p[2]), 1))
	}
}

func TestSymScalarOpsAndClone(t *testing.T) {
	s := randomSym(2, 23)
	var (
		x, y, z = 0.3, 0.5, 0.7
		v0      = s.Evaluate(x, y, z)
	)
	s.AddConstant(1.5)
	assert.True(t, near(s.Evaluate(x, y, z), v0+1.5))
	s.Scale(2)
	assert.True(t, near(s.Evaluate(x, y, z), 2*(v0+1.5)))
	n := s.Negated()
	assert.True(t, near(n.Evaluate(x, y, z), -2*(v0+1.5)))

	c := s.Clone()
	c.SetPar(0, -9)
	assert.NotEqual(t, -9., s.Par(0))
	assert.Equal(t, s.Tag(), c.Tag())
}

func randomSym(n int, seed int64) (s *Bernstein3DSym) {
	var (
		rnd = rand.New(rand.NewSource(seed))
	)
	s = NewBernstein3DSym(n, 0, 1)
	for k := 0; k < s.NPars(); k++ {
		s.SetPar(k, rnd.Float64())
	}
	return
}

package bernstein3d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBernstein3DUnitCube(t *testing.T) {
	// degree (1,1,1) with all 8 coefficients = 1 is identically 1 on the
	// unit cube by partition of unity
	b := NewBernstein3DUnit()
	assert.Equal(t, 8, b.NPars())
	for k := 0; k < b.NPars(); k++ {
		assert.True(t, b.SetPar(k, 1))
	}
	for _, p := range [][3]float64{
		{0, 0, 0}, {1, 1, 1}, {0.3, 0.7, 0.1}, {0.5, 0.5, 0.5},
	} {
		assert.True(t, near(b.Evaluate(p[0], p[1], p[2]), 1))
	}
	assert.True(t, near(b.Integral(), 1))
}

func TestBernstein3DPartitionOfUnityVolume(t *testing.T) {
	// all coefficients 1 integrates to the box volume
	b := NewBernstein3D(2, 3, 1, -1, 2, 0, 4, 1, 1.5)
	for k := 0; k < b.NPars(); k++ {
		b.SetPar(k, 1)
	}
	assert.True(t, near(b.Integral(), 3*4*0.5))
	assert.True(t, near(b.IntegralBox(-1, 2, 0, 4, 1, 1.5), 3*4*0.5))
}

func TestBernstein3DIndexAccess(t *testing.T) {
	b := NewBernstein3D(1, 2, 1, 0, 1, 0, 1, 0, 1)
	// set through the triple, read back flat and vice versa
	assert.True(t, b.SetParAt(1, 2, 0, 3.5))
	k, ok := b.Index(1, 2, 0)
	assert.True(t, ok)
	assert.Equal(t, 3.5, b.Par(k))
	// invalid triples are refused and read as zero
	assert.False(t, b.SetParAt(2, 0, 0, 1))
	assert.False(t, b.SetParAt(0, 3, 0, 1))
	assert.Equal(t, 0., b.ParAt(2, 0, 0))
	assert.False(t, b.SetPar(-1, 1))
	assert.False(t, b.SetPar(b.NPars(), 1))
	assert.Equal(t, 0., b.Par(b.NPars()))
}

func TestBernstein3DOutOfDomain(t *testing.T) {
	b := NewBernstein3DUnit()
	for k := 0; k < b.NPars(); k++ {
		b.SetPar(k, 1)
	}
	assert.Equal(t, 0., b.Evaluate(-0.1, 0.5, 0.5))
	assert.Equal(t, 0., b.Evaluate(0.5, 1.1, 0.5))
	assert.Equal(t, 0., b.Evaluate(0.5, 0.5, 2))
}

func TestBernstein3DTransformRoundTrip(t *testing.T) {
	b := NewBernstein3D(1, 1, 1, -2, 2, 0, 10, 1, 3)
	for _, v := range []float64{-2, -0.5, 1.999, 2} {
		assert.True(t, near(b.X(b.TX(v)), v))
	}
	for _, tt := range []float64{0, 0.25, 1} {
		assert.True(t, near(b.TY(b.Y(tt)), tt))
		assert.True(t, near(b.TZ(b.Z(tt)), tt))
	}
}

func TestBernstein3DIntegralAdditivity(t *testing.T) {
	b := randomTensor(2, 1, 2, 42)
	var (
		y, z    = 0.3, 0.6
		a, m, c = 0.1, 0.45, 0.9
	)
	whole := b.IntegrateXRange(y, z, a, c)
	split := b.IntegrateXRange(y, z, a, m) + b.IntegrateXRange(y, z, m, c)
	assert.True(t, near(whole, split))

	// cross-check against midpoint cubature, tolerance sized to the
	// cubature's own O(h^2) error at ns=60
	box := b.IntegralBox(a, c, 0.2, 0.8, 0.1, 0.7)
	assert.True(t, nearTol(box, numericBox(b, a, c, 0.2, 0.8, 0.1, 0.7), 1.e-5))
}

func TestBernstein3DProjectionsAgainstQuadrature(t *testing.T) {
	// closed-form projections cross-checked against midpoint quadrature
	b := randomTensor(2, 2, 1, 7)
	var (
		y, z = 0.25, 0.75
		ns   = 2000
		h    = 1.0 / float64(ns)
		sum  float64
	)
	for i := 0; i < ns; i++ {
		sum += h * b.Evaluate(h*(float64(i)+0.5), y, z)
	}
	assert.True(t, nearTol(b.IntegrateX(y, z), sum, 1.e-6))

	sum = 0
	for i := 0; i < ns; i++ {
		sum += h * b.Evaluate(y, h*(float64(i)+0.5), z)
	}
	assert.True(t, nearTol(b.IntegrateY(y, z), sum, 1.e-6))
}

func TestBernstein3DScalarOps(t *testing.T) {
	b := randomTensor(1, 2, 2, 3)
	var (
		x, y, z = 0.2, 0.9, 0.4
		v0      = b.Evaluate(x, y, z)
		i0      = b.Integral()
	)
	// a flat shift lifts the surface by a and the unit-cube integral
	// by the same a, through partition of unity
	b.AddConstant(2.5)
	assert.True(t, near(b.Evaluate(x, y, z), v0+2.5))
	assert.True(t, near(b.Integral(), i0+2.5))
	b.AddConstant(-2.5)
	assert.True(t, near(b.Evaluate(x, y, z), v0))
	// scale
	b.Scale(3)
	assert.True(t, near(b.Evaluate(x, y, z), 3*v0))
	b.Scale(1. / 3)
	// negation leaves the receiver untouched
	n := b.Negated()
	assert.True(t, near(n.Evaluate(x, y, z), -v0))
	assert.True(t, near(b.Evaluate(x, y, z), v0))
}

func TestBernstein3DSwapClone(t *testing.T) {
	a := NewBernstein3D(1, 1, 1, 0, 1, 0, 1, 0, 1)
	b := NewBernstein3D(2, 2, 2, 0, 2, 0, 2, 0, 2)
	for k := 0; k < a.NPars(); k++ {
		a.SetPar(k, 1)
	}
	ta, tb := a.Tag(), b.Tag()
	assert.NotEqual(t, ta, tb)

	a.Swap(b)
	assert.Equal(t, 27, a.NPars())
	assert.Equal(t, 8, b.NPars())
	assert.Equal(t, tb, a.Tag())
	assert.Equal(t, ta, b.Tag())
	assert.True(t, near(b.Integral(), 1))

	c := b.Clone()
	c.SetPar(0, 100)
	assert.Equal(t, 1., b.Par(0))
}

// randomTensor fills a tensor with deterministic pseudo-random
// coefficients on the unit cube.
func randomTensor(nx, ny, nz int, seed int64) (b *Bernstein3D) {
	var (
		rnd = rand.New(rand.NewSource(seed))
	)
	b = NewBernstein3D(nx, ny, nz, 0, 1, 0, 1, 0, 1)
	for k := 0; k < b.NPars(); k++ {
		b.SetPar(k, rnd.Float64())
	}
	return
}

// numericBox is a crude midpoint cubature for cross-checks.
func numericBox(b *Bernstein3D, xlo, xhi, ylo, yhi, zlo, zhi float64) (sum float64) {
	const ns = 60
	var (
		hx = (xhi - xlo) / ns
		hy = (yhi - ylo) / ns
		hz = (zhi - zlo) / ns
	)
	for i := 0; i < ns; i++ {
		for j := 0; j < ns; j++ {
			for k := 0; k < ns; k++ {
				sum += b.Evaluate(
					xlo+hx*(float64(i)+0.5),
					ylo+hy*(float64(j)+0.5),
					zlo+hz*(float64(k)+0.5))
			}
		}
	}
	sum *= hx * hy * hz
	return
}

func near(a, b float64) (l bool) {
	return nearTol(a, b, 1.e-10)
}

func nearTol(a, b, tol float64) (l bool) {
	if math.Abs(a-b) < tol*math.Max(1, math.Abs(a)) {
		l = true
	}
	return
}

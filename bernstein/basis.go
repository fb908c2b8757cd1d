package bernstein

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/cpawley/ostap/utils"
)

/*
Basis is the complete Bernstein basis of fixed degree N on the interval
[XMin,XMax]:

	B_i^N(t) = C(N,i) t^i (1-t)^(N-i),  t = (x-XMin)/(XMax-XMin)

The basis partitions unity: sum_i B_i^N(t) = 1 for every t in [0,1], and
each member integrates to (XMax-XMin)/(N+1) over the full interval.
Definite integrals over sub-ranges are closed form, through the degree
elevation identity for the primitive:

	d/dt [ (1/(N+1)) sum_{j>i} B_j^{N+1}(t) ] = B_i^N(t)
*/
type Basis struct {
	N          int
	XMin, XMax float64
	binom      []float64 // C(N,i), i = 0..N
	binomElev  []float64 // C(N+1,j), j = 0..N+1, used by the primitive
}

func NewBasis(n int, xmin, xmax float64) (b Basis) {
	var (
		binom = make([]float64, n+1)
		elev  = make([]float64, n+2)
	)
	for i := 0; i <= n; i++ {
		binom[i] = float64(combin.Binomial(n, i))
	}
	for j := 0; j <= n+1; j++ {
		elev[j] = float64(combin.Binomial(n+1, j))
	}
	b = Basis{
		N:         n,
		XMin:      xmin,
		XMax:      xmax,
		binom:     binom,
		binomElev: elev,
	}
	return
}

// X maps a normalized coordinate t in [0,1] onto the interval.
func (b Basis) X(t float64) float64 { return b.XMin + (b.XMax-b.XMin)*t }

// T maps an interval coordinate onto [0,1].
func (b Basis) T(x float64) float64 { return (x - b.XMin) / (b.XMax - b.XMin) }

// At evaluates B_i^N at x. Out-of-range members and coordinates outside
// [XMin,XMax] evaluate to 0.
func (b Basis) At(i int, x float64) (val float64) {
	if i < 0 || i > b.N || x < b.XMin || x > b.XMax {
		return
	}
	t := b.T(x)
	val = b.binom[i] * intPow(t, i) * intPow(1-t, b.N-i)
	return
}

// EvalAll evaluates the full basis at x as a length N+1 vector.
func (b Basis) EvalAll(x float64) (R utils.Vector) {
	var (
		data = make([]float64, b.N+1)
	)
	if x >= b.XMin && x <= b.XMax {
		t := b.T(x)
		for i := range data {
			data[i] = b.binom[i] * intPow(t, i) * intPow(1-t, b.N-i)
		}
	}
	R = utils.NewVector(b.N+1, data)
	return
}

// IntegralFull is the integral of any single basis member over the whole
// interval, (XMax-XMin)/(N+1) by partition of unity.
func (b Basis) IntegralFull() float64 {
	return (b.XMax - b.XMin) / float64(b.N+1)
}

// Integral computes the definite integral of B_i^N over [lo,hi] in
// interval coordinates. The range is clamped to [XMin,XMax]; inverted
// bounds negate the result.
func (b Basis) Integral(i int, lo, hi float64) (val float64) {
	if i < 0 || i > b.N {
		return
	}
	if hi < lo {
		return -b.Integral(i, hi, lo)
	}
	lo = math.Max(lo, b.XMin)
	hi = math.Min(hi, b.XMax)
	if hi <= lo {
		return
	}
	val = (b.XMax - b.XMin) * (b.primitive(i, b.T(hi)) - b.primitive(i, b.T(lo)))
	return
}

// IntegralsAll computes Integral(i, lo, hi) for every basis member.
func (b Basis) IntegralsAll(lo, hi float64) (R utils.Vector) {
	var (
		data = make([]float64, b.N+1)
	)
	for i := range data {
		data[i] = b.Integral(i, lo, hi)
	}
	R = utils.NewVector(b.N+1, data)
	return
}

// Vandermonde builds the generalized Vandermonde matrix of the basis
// evaluated at the given interval coordinates: V[p][i] = B_i^N(x_p).
func (b Basis) Vandermonde(xs []float64) (V utils.Matrix) {
	V = utils.NewMatrix(len(xs), b.N+1)
	for p, x := range xs {
		for i := 0; i <= b.N; i++ {
			V.Set(p, i, b.At(i, x))
		}
	}
	return
}

// primitive is the antiderivative of B_i^N in normalized coordinates,
// normalized so primitive(i,0) = 0.
func (b Basis) primitive(i int, t float64) (p float64) {
	np1 := b.N + 1
	for j := i + 1; j <= np1; j++ {
		p += b.binomElev[j] * intPow(t, j) * intPow(1-t, np1-j)
	}
	p /= float64(np1)
	return
}

// intPow avoids math.Pow for the small non-negative integer exponents the
// basis needs, and keeps 0^0 = 1.
func intPow(x float64, n int) (r float64) {
	r = 1
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
	}
	return
}

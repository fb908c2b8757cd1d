package bernstein3d

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cpawley/ostap/bernstein"
	"github.com/cpawley/ostap/utils"
)

// Bernstein3DSym is the fully symmetric tensor polynomial: single degree
// N, single interval shared by all three axes, and
// P(x,y,z) = P(y,x,z) = P(x,z,y). Storage holds one representative per
// unordered triple {l,m,n}, so symmetry is structural: no setter can
// break it.
type Bernstein3DSym struct {
	n          int
	pars       []float64 // packed, one slot per unordered triple
	xmin, xmax float64
	b          bernstein.Basis
	expand     *sparse.CSR // scatter: full (N+1)^3 cube <- packed slots
}

func NewBernstein3DSym(n int, xmin, xmax float64) (s *Bernstein3DSym) {
	s = &Bernstein3DSym{
		n:    n,
		pars: make([]float64, NumParsSym(n)),
		xmin: xmin, xmax: xmax,
		b:      bernstein.NewBasis(n, xmin, xmax),
		expand: symExpansion(n),
	}
	return
}

// symExpansion builds the 0/1 scatter matrix mapping packed slots onto
// the full coefficient cube: exactly one unit entry per cube row, at the
// canonical slot of that row's triple.
func symExpansion(n int) *sparse.CSR {
	var (
		n1  = n + 1
		dok = sparse.NewDOK(n1*n1*n1, NumParsSym(n))
	)
	for l := 0; l < n1; l++ {
		for m := 0; m < n1; m++ {
			for k := 0; k < n1; k++ {
				col, _ := IndexSym(n, l, m, k)
				dok.Set(n1*(n1*l+m)+k, col, 1)
			}
		}
	}
	return dok.ToCSR()
}

// cubePars expands packed storage onto the full coefficient cube.
func (s *Bernstein3DSym) cubePars() []float64 {
	var v mat.VecDense
	v.MulVec(s.expand, mat.NewVecDense(len(s.pars), s.pars))
	return v.RawVector().Data
}

func (s *Bernstein3DSym) Clone() (c *Bernstein3DSym) {
	cc := *s
	cc.pars = append([]float64(nil), s.pars...)
	c = &cc // the expansion matrix is immutable and safely shared
	return
}

func (s *Bernstein3DSym) Swap(o *Bernstein3DSym) { *s, *o = *o, *s }

// Index converts the unordered triple {l,m,n} into its packed slot.
func (s *Bernstein3DSym) Index(l, m, n int) (int, bool) {
	return IndexSym(s.n, l, m, n)
}

func (s *Bernstein3DSym) NPars() int { return len(s.pars) }
func (s *Bernstein3DSym) Pars() []float64 { return s.pars }

func (s *Bernstein3DSym) Par(k int) float64 {
	if k < 0 || k >= len(s.pars) {
		return 0
	}
	return s.pars[k]
}

func (s *Bernstein3DSym) SetPar(k int, value float64) bool {
	if k < 0 || k >= len(s.pars) {
		return false
	}
	s.pars[k] = value
	return true
}

func (s *Bernstein3DSym) ParAt(l, m, n int) float64 {
	k, ok := s.Index(l, m, n)
	if !ok {
		return 0
	}
	return s.pars[k]
}

func (s *Bernstein3DSym) SetParAt(l, m, n int, value float64) bool {
	k, ok := s.Index(l, m, n)
	return ok && s.SetPar(k, value)
}

// Degrees and edges: the y and z accessors alias x by symmetry.
func (s *Bernstein3DSym) NX() int { return s.n }
func (s *Bernstein3DSym) NY() int { return s.NX() }
func (s *Bernstein3DSym) NZ() int { return s.NX() }

func (s *Bernstein3DSym) XMin() float64 { return s.xmin }
func (s *Bernstein3DSym) XMax() float64 { return s.xmax }
func (s *Bernstein3DSym) YMin() float64 { return s.XMin() }
func (s *Bernstein3DSym) YMax() float64 { return s.XMax() }
func (s *Bernstein3DSym) ZMin() float64 { return s.XMin() }
func (s *Bernstein3DSym) ZMax() float64 { return s.XMax() }

func (s *Bernstein3DSym) X(tx float64) float64 { return s.b.X(tx) }
func (s *Bernstein3DSym) Y(ty float64) float64 { return s.X(ty) }
func (s *Bernstein3DSym) Z(tz float64) float64 { return s.X(tz) }
func (s *Bernstein3DSym) TX(x float64) float64 { return s.b.T(x) }
func (s *Bernstein3DSym) TY(y float64) float64 { return s.TX(y) }
func (s *Bernstein3DSym) TZ(z float64) float64 { return s.TX(z) }

func (s *Bernstein3DSym) Tag() uint64 {
	return tagOf("3dsym", []int{s.n}, []float64{s.xmin, s.xmax})
}

func (s *Bernstein3DSym) BasicX(i int, x float64) float64 { return s.b.At(i, x) }
func (s *Bernstein3DSym) BasicY(j int, y float64) float64 { return s.b.At(j, y) }
func (s *Bernstein3DSym) BasicZ(k int, z float64) float64 { return s.b.At(k, z) }

func (s *Bernstein3DSym) Evaluate(x, y, z float64) float64 {
	if x < s.xmin || x > s.xmax ||
		y < s.xmin || y > s.xmax ||
		z < s.xmin || z > s.xmax {
		return 0
	}
	return s.calculate(s.b.EvalAll(x), s.b.EvalAll(y), s.b.EvalAll(z))
}

// AddConstant shifts by a everywhere. A packed slot carries the common
// value of its whole symmetry orbit, so raising it by a raises every
// cube coefficient by a, and partition of unity lifts the surface by a.
func (s *Bernstein3DSym) AddConstant(a float64) *Bernstein3DSym {
	for k := range s.pars {
		s.pars[k] += a
	}
	return s
}

func (s *Bernstein3DSym) Scale(a float64) *Bernstein3DSym {
	floats.Scale(a, s.pars)
	return s
}

func (s *Bernstein3DSym) Negated() (c *Bernstein3DSym) {
	c = s.Clone()
	c.Scale(-1)
	return
}

// Integral is the full-domain integral: the cube-expanded coefficient
// sum (each slot weighted by its orbit multiplicity) times the per-axis
// full-interval factors.
func (s *Bernstein3DSym) Integral() float64 {
	w := s.b.IntegralFull()
	return floats.Sum(s.cubePars()) * w * w * w
}

func (s *Bernstein3DSym) IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64 {
	return s.calculate(
		s.b.IntegralsAll(xlo, xhi),
		s.b.IntegralsAll(ylo, yhi),
		s.b.IntegralsAll(zlo, zhi))
}

// IntegrateXRange integrates over the first axis; by full symmetry every
// other partial integral is an argument permutation of this one.
func (s *Bernstein3DSym) IntegrateXRange(y, z, xlo, xhi float64) float64 {
	return s.calculate(s.b.IntegralsAll(xlo, xhi), s.b.EvalAll(y), s.b.EvalAll(z))
}

func (s *Bernstein3DSym) IntegrateYRange(x, z, ylo, yhi float64) float64 {
	return s.IntegrateXRange(x, z, ylo, yhi)
}

func (s *Bernstein3DSym) IntegrateZRange(x, y, zlo, zhi float64) float64 {
	return s.IntegrateXRange(x, y, zlo, zhi)
}

func (s *Bernstein3DSym) IntegrateXYRange(z, xlo, xhi, ylo, yhi float64) float64 {
	return s.calculate(s.b.IntegralsAll(xlo, xhi), s.b.IntegralsAll(ylo, yhi), s.b.EvalAll(z))
}

func (s *Bernstein3DSym) IntegrateXZRange(y, xlo, xhi, zlo, zhi float64) float64 {
	return s.IntegrateXYRange(y, xlo, xhi, zlo, zhi)
}

func (s *Bernstein3DSym) IntegrateYZRange(x, ylo, yhi, zlo, zhi float64) float64 {
	return s.IntegrateXYRange(x, ylo, yhi, zlo, zhi)
}

func (s *Bernstein3DSym) IntegrateX(y, z float64) float64 {
	return s.IntegrateXRange(y, z, s.xmin, s.xmax)
}
func (s *Bernstein3DSym) IntegrateY(x, z float64) float64 { return s.IntegrateX(x, z) }
func (s *Bernstein3DSym) IntegrateZ(x, y float64) float64 { return s.IntegrateX(x, y) }

func (s *Bernstein3DSym) IntegrateXY(z float64) float64 {
	return s.IntegrateXYRange(z, s.xmin, s.xmax, s.xmin, s.xmax)
}
func (s *Bernstein3DSym) IntegrateXZ(y float64) float64 { return s.IntegrateXY(y) }
func (s *Bernstein3DSym) IntegrateYZ(x float64) float64 { return s.IntegrateXY(x) }

// calculate iterates the full (i,j,k) cube over the orbit-expanded
// coefficients, so each stored slot contributes once per equivalent
// basis triple.
func (s *Bernstein3DSym) calculate(fx, fy, fz utils.Vector) (res float64) {
	var (
		w   = s.cubePars()
		n1  = s.n + 1
		fzd = fz.DataP()
	)
	for l := 0; l < n1; l++ {
		fxl := fx.AtVec(l)
		if fxl == 0 {
			continue
		}
		for m := 0; m < n1; m++ {
			c := fxl * fy.AtVec(m)
			if c == 0 {
				continue
			}
			base := n1 * (n1*l + m)
			for k, fzk := range fzd {
				res += c * fzk * w[base+k]
			}
		}
	}
	return
}

package bernstein3d

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cpawley/ostap/bernstein"
	"github.com/cpawley/ostap/utils"
)

// Bernstein3DMix is the partially symmetric tensor polynomial:
// P(x,y,z) = P(y,x,z). The first two axes share degree N and interval
// [xmin,xmax]; the third axis has its own degree Nz and interval
// [zmin,zmax]. Storage holds one representative per unordered pair {l,m}
// crossed with a free n.
type Bernstein3DMix struct {
	n, nz      int
	pars       []float64
	xmin, xmax float64
	zmin, zmax float64
	b, bz      bernstein.Basis
	expand     *sparse.CSR // scatter: (N+1)^2(Nz+1) cube <- packed slots
}

func NewBernstein3DMix(n, nz int, xmin, xmax, zmin, zmax float64) (s *Bernstein3DMix) {
	s = &Bernstein3DMix{
		n: n, nz: nz,
		pars: make([]float64, NumParsMix(n, nz)),
		xmin: xmin, xmax: xmax,
		zmin: zmin, zmax: zmax,
		b:      bernstein.NewBasis(n, xmin, xmax),
		bz:     bernstein.NewBasis(nz, zmin, zmax),
		expand: mixExpansion(n, nz),
	}
	return
}

// NewBernstein3DMixFromSym reshapes a fully symmetric tensor into the
// mixed layout; the two represent the same polynomial.
func NewBernstein3DMixFromSym(src *Bernstein3DSym) (s *Bernstein3DMix) {
	n := src.NX()
	s = NewBernstein3DMix(n, n, src.XMin(), src.XMax(), src.XMin(), src.XMax())
	for l := 0; l <= n; l++ {
		for m := 0; m <= l; m++ {
			for k := 0; k <= n; k++ {
				s.SetParAt(l, m, k, src.ParAt(l, m, k))
			}
		}
	}
	return
}

func mixExpansion(n, nz int) *sparse.CSR {
	var (
		n1  = n + 1
		nz1 = nz + 1
		dok = sparse.NewDOK(n1*n1*nz1, NumParsMix(n, nz))
	)
	for l := 0; l < n1; l++ {
		for m := 0; m < n1; m++ {
			for k := 0; k < nz1; k++ {
				col, _ := IndexMix(n, nz, l, m, k)
				dok.Set(nz1*(n1*l+m)+k, col, 1)
			}
		}
	}
	return dok.ToCSR()
}

func (s *Bernstein3DMix) cubePars() []float64 {
	var v mat.VecDense
	v.MulVec(s.expand, mat.NewVecDense(len(s.pars), s.pars))
	return v.RawVector().Data
}

func (s *Bernstein3DMix) Clone() (c *Bernstein3DMix) {
	cc := *s
	cc.pars = append([]float64(nil), s.pars...)
	c = &cc
	return
}

func (s *Bernstein3DMix) Swap(o *Bernstein3DMix) { *s, *o = *o, *s }

// Index converts (l,m,n), unordered in its first pair, into the packed
// slot.
func (s *Bernstein3DMix) Index(l, m, n int) (int, bool) {
	return IndexMix(s.n, s.nz, l, m, n)
}

func (s *Bernstein3DMix) NPars() int { return len(s.pars) }
func (s *Bernstein3DMix) Pars() []float64 { return s.pars }

func (s *Bernstein3DMix) Par(k int) float64 {
	if k < 0 || k >= len(s.pars) {
		return 0
	}
	return s.pars[k]
}

func (s *Bernstein3DMix) SetPar(k int, value float64) bool {
	if k < 0 || k >= len(s.pars) {
		return false
	}
	s.pars[k] = value
	return true
}

func (s *Bernstein3DMix) ParAt(l, m, n int) float64 {
	k, ok := s.Index(l, m, n)
	if !ok {
		return 0
	}
	return s.pars[k]
}

func (s *Bernstein3DMix) SetParAt(l, m, n int, value float64) bool {
	k, ok := s.Index(l, m, n)
	return ok && s.SetPar(k, value)
}

func (s *Bernstein3DMix) NX() int { return s.n }
func (s *Bernstein3DMix) NY() int { return s.NX() }
func (s *Bernstein3DMix) NZ() int { return s.nz }

func (s *Bernstein3DMix) XMin() float64 { return s.xmin }
func (s *Bernstein3DMix) XMax() float64 { return s.xmax }
func (s *Bernstein3DMix) YMin() float64 { return s.XMin() }
func (s *Bernstein3DMix) YMax() float64 { return s.XMax() }
func (s *Bernstein3DMix) ZMin() float64 { return s.zmin }
func (s *Bernstein3DMix) ZMax() float64 { return s.zmax }

func (s *Bernstein3DMix) X(tx float64) float64 { return s.b.X(tx) }
func (s *Bernstein3DMix) Y(ty float64) float64 { return s.X(ty) }
func (s *Bernstein3DMix) Z(tz float64) float64 { return s.bz.X(tz) }
func (s *Bernstein3DMix) TX(x float64) float64 { return s.b.T(x) }
func (s *Bernstein3DMix) TY(y float64) float64 { return s.TX(y) }
func (s *Bernstein3DMix) TZ(z float64) float64 { return s.bz.T(z) }

func (s *Bernstein3DMix) Tag() uint64 {
	return tagOf("3dmix", []int{s.n, s.nz},
		[]float64{s.xmin, s.xmax, s.zmin, s.zmax})
}

func (s *Bernstein3DMix) BasicX(i int, x float64) float64 { return s.b.At(i, x) }
func (s *Bernstein3DMix) BasicY(j int, y float64) float64 { return s.b.At(j, y) }
func (s *Bernstein3DMix) BasicZ(k int, z float64) float64 { return s.bz.At(k, z) }

func (s *Bernstein3DMix) Evaluate(x, y, z float64) float64 {
	if x < s.xmin || x > s.xmax ||
		y < s.xmin || y > s.xmax ||
		z < s.zmin || z > s.zmax {
		return 0
	}
	return s.calculate(s.b.EvalAll(x), s.b.EvalAll(y), s.bz.EvalAll(z))
}

// AddConstant shifts by a everywhere (see Bernstein3DSym.AddConstant
// for the orbit argument).
func (s *Bernstein3DMix) AddConstant(a float64) *Bernstein3DMix {
	for k := range s.pars {
		s.pars[k] += a
	}
	return s
}

func (s *Bernstein3DMix) Scale(a float64) *Bernstein3DMix {
	floats.Scale(a, s.pars)
	return s
}

func (s *Bernstein3DMix) Negated() (c *Bernstein3DMix) {
	c = s.Clone()
	c.Scale(-1)
	return
}

func (s *Bernstein3DMix) Integral() float64 {
	w := s.b.IntegralFull()
	return floats.Sum(s.cubePars()) * w * w * s.bz.IntegralFull()
}

func (s *Bernstein3DMix) IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64 {
	return s.calculate(
		s.b.IntegralsAll(xlo, xhi),
		s.b.IntegralsAll(ylo, yhi),
		s.bz.IntegralsAll(zlo, zhi))
}

func (s *Bernstein3DMix) IntegrateXRange(y, z, xlo, xhi float64) float64 {
	return s.calculate(s.b.IntegralsAll(xlo, xhi), s.b.EvalAll(y), s.bz.EvalAll(z))
}

// IntegrateYRange delegates to IntegrateXRange by x<->y symmetry.
func (s *Bernstein3DMix) IntegrateYRange(x, z, ylo, yhi float64) float64 {
	return s.IntegrateXRange(x, z, ylo, yhi)
}

func (s *Bernstein3DMix) IntegrateZRange(x, y, zlo, zhi float64) float64 {
	return s.calculate(s.b.EvalAll(x), s.b.EvalAll(y), s.bz.IntegralsAll(zlo, zhi))
}

func (s *Bernstein3DMix) IntegrateXYRange(z, xlo, xhi, ylo, yhi float64) float64 {
	return s.calculate(s.b.IntegralsAll(xlo, xhi), s.b.IntegralsAll(ylo, yhi), s.bz.EvalAll(z))
}

func (s *Bernstein3DMix) IntegrateXZRange(y, xlo, xhi, zlo, zhi float64) float64 {
	return s.calculate(s.b.IntegralsAll(xlo, xhi), s.b.EvalAll(y), s.bz.IntegralsAll(zlo, zhi))
}

// IntegrateYZRange delegates to IntegrateXZRange by x<->y symmetry.
func (s *Bernstein3DMix) IntegrateYZRange(x, ylo, yhi, zlo, zhi float64) float64 {
	return s.IntegrateXZRange(x, ylo, yhi, zlo, zhi)
}

func (s *Bernstein3DMix) IntegrateX(y, z float64) float64 {
	return s.IntegrateXRange(y, z, s.xmin, s.xmax)
}
func (s *Bernstein3DMix) IntegrateY(x, z float64) float64 { return s.IntegrateX(x, z) }
func (s *Bernstein3DMix) IntegrateZ(x, y float64) float64 {
	return s.IntegrateZRange(x, y, s.zmin, s.zmax)
}

func (s *Bernstein3DMix) IntegrateXY(z float64) float64 {
	return s.IntegrateXYRange(z, s.xmin, s.xmax, s.xmin, s.xmax)
}
func (s *Bernstein3DMix) IntegrateXZ(y float64) float64 {
	return s.IntegrateXZRange(y, s.xmin, s.xmax, s.zmin, s.zmax)
}
func (s *Bernstein3DMix) IntegrateYZ(x float64) float64 { return s.IntegrateXZ(x) }

func (s *Bernstein3DMix) calculate(fx, fy, fz utils.Vector) (res float64) {
	var (
		w   = s.cubePars()
		n1  = s.n + 1
		nz1 = s.nz + 1
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
			base := nz1 * (n1*l + m)
			for k, fzk := range fzd {
				res += c * fzk * w[base+k]
			}
		}
	}
	return
}

/*
Package bernstein3d implements 3-D tensor products of one-dimensional
Bernstein bases over an axis-aligned box, used as analytically-integrable
density shapes.

Three coefficient layouts are provided: Bernstein3D (independent degrees,
full coefficient cube), Bernstein3DSym (invariant under any permutation
of the axes, tetrahedrally packed storage), and Bernstein3DMix (invariant
under x<->y exchange, triangularly packed first pair). The Positive3D*
wrappers constrain each layout's coefficients to the unit simplex through
an nsphere parametrization, producing everywhere non-negative surfaces
with full-domain integral exactly 1.

Every integral here is closed form: a definite integral reduces to the
same weighted triple sum as evaluation, with per-axis basis values
replaced by per-axis basis integrals. No quadrature is involved.
*/
package bernstein3d

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpawley/ostap/bernstein"
	"github.com/cpawley/ostap/utils"
)

// Bernstein3D is the generic tensor polynomial
//
//	P(x,y,z) = sum_{l,m,n} c_{lmn} B_l^{nx}(x) B_m^{ny}(y) B_n^{nz}(z)
//
// with independent degrees per axis and no symmetry constraint on the
// coefficients.
type Bernstein3D struct {
	nx, ny, nz             int
	pars                   []float64
	xmin, xmax, ymin, ymax float64
	zmin, zmax             float64
	bx, by, bz             bernstein.Basis
}

func NewBernstein3D(nx, ny, nz int,
	xmin, xmax, ymin, ymax, zmin, zmax float64) (b *Bernstein3D) {
	b = &Bernstein3D{
		nx: nx, ny: ny, nz: nz,
		pars: make([]float64, NumPars3D(nx, ny, nz)),
		xmin: xmin, xmax: xmax,
		ymin: ymin, ymax: ymax,
		zmin: zmin, zmax: zmax,
		bx: bernstein.NewBasis(nx, xmin, xmax),
		by: bernstein.NewBasis(ny, ymin, ymax),
		bz: bernstein.NewBasis(nz, zmin, zmax),
	}
	return
}

// NewBernstein3DUnit is the degree (1,1,1) polynomial on the unit cube.
func NewBernstein3DUnit() *Bernstein3D {
	return NewBernstein3D(1, 1, 1, 0, 1, 0, 1, 0, 1)
}

// NewBernstein3DFromSym expands a symmetric tensor into the generic
// layout; the two represent the same polynomial.
func NewBernstein3DFromSym(s *Bernstein3DSym) (b *Bernstein3D) {
	n := s.NX()
	b = NewBernstein3D(n, n, n,
		s.XMin(), s.XMax(), s.YMin(), s.YMax(), s.ZMin(), s.ZMax())
	for l := 0; l <= n; l++ {
		for m := 0; m <= n; m++ {
			for k := 0; k <= n; k++ {
				b.SetParAt(l, m, k, s.ParAt(l, m, k))
			}
		}
	}
	return
}

// NewBernstein3DFromMix expands a mixed-symmetry tensor into the generic
// layout.
func NewBernstein3DFromMix(s *Bernstein3DMix) (b *Bernstein3D) {
	n, nz := s.NX(), s.NZ()
	b = NewBernstein3D(n, n, nz,
		s.XMin(), s.XMax(), s.YMin(), s.YMax(), s.ZMin(), s.ZMax())
	for l := 0; l <= n; l++ {
		for m := 0; m <= n; m++ {
			for k := 0; k <= nz; k++ {
				b.SetParAt(l, m, k, s.ParAt(l, m, k))
			}
		}
	}
	return
}

func (b *Bernstein3D) Clone() (c *Bernstein3D) {
	cc := *b
	cc.pars = append([]float64(nil), b.pars...)
	c = &cc
	return
}

// Swap exchanges degrees, domain, bases and coefficient storage.
func (b *Bernstein3D) Swap(o *Bernstein3D) { *b, *o = *o, *b }

// Index converts (l,m,n) into the flat storage index.
func (b *Bernstein3D) Index(l, m, n int) (int, bool) {
	return Index3D(b.nx, b.ny, b.nz, l, m, n)
}

func (b *Bernstein3D) NPars() int { return len(b.pars) }
func (b *Bernstein3D) Pars() []float64 { return b.pars }

// Par returns the k-th coefficient, 0 for an out-of-range index.
func (b *Bernstein3D) Par(k int) float64 {
	if k < 0 || k >= len(b.pars) {
		return 0
	}
	return b.pars[k]
}

// SetPar stores the k-th coefficient; out-of-range indices are refused.
func (b *Bernstein3D) SetPar(k int, value float64) bool {
	if k < 0 || k >= len(b.pars) {
		return false
	}
	b.pars[k] = value
	return true
}

// ParAt returns the (l,m,n) coefficient, 0 for invalid triples.
func (b *Bernstein3D) ParAt(l, m, n int) float64 {
	k, ok := b.Index(l, m, n)
	if !ok {
		return 0
	}
	return b.pars[k]
}

// SetParAt stores the (l,m,n) coefficient; invalid triples are refused.
func (b *Bernstein3D) SetParAt(l, m, n int, value float64) bool {
	k, ok := b.Index(l, m, n)
	return ok && b.SetPar(k, value)
}

func (b *Bernstein3D) NX() int { return b.nx }
func (b *Bernstein3D) NY() int { return b.ny }
func (b *Bernstein3D) NZ() int { return b.nz }

func (b *Bernstein3D) XMin() float64 { return b.xmin }
func (b *Bernstein3D) XMax() float64 { return b.xmax }
func (b *Bernstein3D) YMin() float64 { return b.ymin }
func (b *Bernstein3D) YMax() float64 { return b.ymax }
func (b *Bernstein3D) ZMin() float64 { return b.zmin }
func (b *Bernstein3D) ZMax() float64 { return b.zmax }

// Affine maps between interval and normalized coordinates, per axis.
func (b *Bernstein3D) X(tx float64) float64 { return b.bx.X(tx) }
func (b *Bernstein3D) Y(ty float64) float64 { return b.by.X(ty) }
func (b *Bernstein3D) Z(tz float64) float64 { return b.bz.X(tz) }
func (b *Bernstein3D) TX(x float64) float64 { return b.bx.T(x) }
func (b *Bernstein3D) TY(y float64) float64 { return b.by.T(y) }
func (b *Bernstein3D) TZ(z float64) float64 { return b.bz.T(z) }
func (b *Bernstein3D) Tag() uint64 {
	return tagOf("3d", []int{b.nx, b.ny, b.nz},
		[]float64{b.xmin, b.xmax, b.ymin, b.ymax, b.zmin, b.zmax})
}

// BasicX evaluates the i-th x-axis basis member at x (0 out of range).
func (b *Bernstein3D) BasicX(i int, x float64) float64 { return b.bx.At(i, x) }
func (b *Bernstein3D) BasicY(j int, y float64) float64 { return b.by.At(j, y) }
func (b *Bernstein3D) BasicZ(k int, z float64) float64 { return b.bz.At(k, z) }

// Evaluate computes P(x,y,z); coordinates outside the box evaluate to 0,
// consistent with the basis functions' own domain clamp.
func (b *Bernstein3D) Evaluate(x, y, z float64) float64 {
	if x < b.xmin || x > b.xmax ||
		y < b.ymin || y > b.ymax ||
		z < b.zmin || z > b.zmax {
		return 0
	}
	return b.calculate(b.bx.EvalAll(x), b.by.EvalAll(y), b.bz.EvalAll(z))
}

// AddConstant shifts the polynomial by a everywhere: the basis
// partitions unity, so raising every coefficient by a raises the
// surface by exactly a.
func (b *Bernstein3D) AddConstant(a float64) *Bernstein3D {
	for k := range b.pars {
		b.pars[k] += a
	}
	return b
}

// Scale multiplies the polynomial by a. Division is Scale(1/a); guarding
// a == 0 is the caller's concern.
func (b *Bernstein3D) Scale(a float64) *Bernstein3D {
	floats.Scale(a, b.pars)
	return b
}

// Negated returns -P as a new polynomial.
func (b *Bernstein3D) Negated() (c *Bernstein3D) {
	c = b.Clone()
	c.Scale(-1)
	return
}

// Integral is the full-domain integral. Each basis triple integrates to
// the same product of per-axis factors, so the triple sum collapses to
// the plain coefficient sum times that product.
func (b *Bernstein3D) Integral() float64 {
	return floats.Sum(b.pars) *
		b.bx.IntegralFull() * b.by.IntegralFull() * b.bz.IntegralFull()
}

// IntegralBox integrates over [xlo,xhi]x[ylo,yhi]x[zlo,zhi], clamped to
// the domain.
func (b *Bernstein3D) IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64 {
	return b.calculate(
		b.bx.IntegralsAll(xlo, xhi),
		b.by.IntegralsAll(ylo, yhi),
		b.bz.IntegralsAll(zlo, zhi))
}

// IntegrateXRange integrates over x in [xlo,xhi] at fixed (y,z).
func (b *Bernstein3D) IntegrateXRange(y, z, xlo, xhi float64) float64 {
	return b.calculate(b.bx.IntegralsAll(xlo, xhi), b.by.EvalAll(y), b.bz.EvalAll(z))
}

// IntegrateYRange integrates over y in [ylo,yhi] at fixed (x,z).
func (b *Bernstein3D) IntegrateYRange(x, z, ylo, yhi float64) float64 {
	return b.calculate(b.bx.EvalAll(x), b.by.IntegralsAll(ylo, yhi), b.bz.EvalAll(z))
}

// IntegrateZRange integrates over z in [zlo,zhi] at fixed (x,y).
func (b *Bernstein3D) IntegrateZRange(x, y, zlo, zhi float64) float64 {
	return b.calculate(b.bx.EvalAll(x), b.by.EvalAll(y), b.bz.IntegralsAll(zlo, zhi))
}

// IntegrateXYRange integrates over x and y at fixed z.
func (b *Bernstein3D) IntegrateXYRange(z, xlo, xhi, ylo, yhi float64) float64 {
	return b.calculate(b.bx.IntegralsAll(xlo, xhi), b.by.IntegralsAll(ylo, yhi), b.bz.EvalAll(z))
}

// IntegrateXZRange integrates over x and z at fixed y.
func (b *Bernstein3D) IntegrateXZRange(y, xlo, xhi, zlo, zhi float64) float64 {
	return b.calculate(b.bx.IntegralsAll(xlo, xhi), b.by.EvalAll(y), b.bz.IntegralsAll(zlo, zhi))
}

// IntegrateYZRange integrates over y and z at fixed x.
func (b *Bernstein3D) IntegrateYZRange(x, ylo, yhi, zlo, zhi float64) float64 {
	return b.calculate(b.bx.EvalAll(x), b.by.IntegralsAll(ylo, yhi), b.bz.IntegralsAll(zlo, zhi))
}

// Full-domain projections.
func (b *Bernstein3D) IntegrateX(y, z float64) float64 {
	return b.IntegrateXRange(y, z, b.xmin, b.xmax)
}
func (b *Bernstein3D) IntegrateY(x, z float64) float64 {
	return b.IntegrateYRange(x, z, b.ymin, b.ymax)
}
func (b *Bernstein3D) IntegrateZ(x, y float64) float64 {
	return b.IntegrateZRange(x, y, b.zmin, b.zmax)
}
func (b *Bernstein3D) IntegrateXY(z float64) float64 {
	return b.IntegrateXYRange(z, b.xmin, b.xmax, b.ymin, b.ymax)
}
func (b *Bernstein3D) IntegrateXZ(y float64) float64 {
	return b.IntegrateXZRange(y, b.xmin, b.xmax, b.zmin, b.zmax)
}
func (b *Bernstein3D) IntegrateYZ(x float64) float64 {
	return b.IntegrateYZRange(x, b.ymin, b.ymax, b.zmin, b.zmax)
}

// calculate forms the weighted triple sum over the coefficient cube for
// per-axis factor vectors fx, fy, fz — basis values for point axes,
// basis integrals for integrated axes.
func (b *Bernstein3D) calculate(fx, fy, fz utils.Vector) (res float64) {
	var (
		fzd = fz.DataP()
	)
	for l := 0; l <= b.nx; l++ {
		fxl := fx.AtVec(l)
		if fxl == 0 {
			continue
		}
		for m := 0; m <= b.ny; m++ {
			w := fxl * fy.AtVec(m)
			if w == 0 {
				continue
			}
			base := (b.nz + 1) * ((b.ny+1)*l + m)
			for n, fzn := range fzd {
				res += w * fzn * b.pars[base+n]
			}
		}
	}
	return
}

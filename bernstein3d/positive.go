package bernstein3d

import "github.com/cpawley/ostap/nsphere"

/*
The Positive3D* wrappers pair a tensor polynomial with an nsphere whose
weight vector is mapped, slot for slot, into the tensor's packed
coefficient storage. Each weight is divided by the full-domain integral
of its slot's orbit of basis triples (orbit multiplicity times the
product of per-axis full-interval factors), so the stored surface is
non-negative everywhere on its domain and its full-domain integral is
the weight sum: exactly one, for any phase assignment.

The sphere owns the true parameters; the tensor coefficients are a
derived projection. Every phase write resynchronizes the tensor before
returning, so callers never observe a stale state.
*/

// Positive3D wraps the generic asymmetric tensor.
type Positive3D struct {
	poly   *Bernstein3D
	sphere *nsphere.Sphere
	norm   float64 // per-slot weight -> coefficient factor
}

func NewPositive3D(nx, ny, nz int,
	xmin, xmax, ymin, ymax, zmin, zmax float64) (p *Positive3D) {
	p = &Positive3D{
		poly: NewBernstein3D(nx, ny, nz, xmin, xmax, ymin, ymax, zmin, zmax),
	}
	p.sphere = nsphere.New(p.poly.NPars() - 1)
	p.norm = float64((nx+1)*(ny+1)*(nz+1)) /
		((xmax - xmin) * (ymax - ymin) * (zmax - zmin))
	p.updateCoefficients()
	return
}

func (p *Positive3D) Clone() (c *Positive3D) {
	c = &Positive3D{poly: p.poly.Clone(), sphere: p.sphere.Clone(), norm: p.norm}
	return
}

func (p *Positive3D) Swap(o *Positive3D) { *p, *o = *o, *p }

// NPars is the number of free parameters: one fewer than the coefficient
// slot count, the remaining degree of freedom being spent on the
// sum-to-one constraint.
func (p *Positive3D) NPars() int { return p.sphere.NPhi() }

// Par returns the k-th phase parameter.
func (p *Positive3D) Par(k int) float64 { return p.sphere.Phase(k) }

// SetPar stores a phase parameter and resynchronizes the coefficients.
// An out-of-range index is refused and leaves the state unchanged.
func (p *Positive3D) SetPar(k int, value float64) bool {
	if !p.sphere.SetPhase(k, value) {
		return false
	}
	p.updateCoefficients()
	return true
}

// Pars returns a copy of the phase vector.
func (p *Positive3D) Pars() []float64 { return append([]float64(nil), p.sphere.Phases()...) }

// BPars returns a copy of the derived coefficient vector; the live
// coefficients stay writable only through SetPar resync.
func (p *Positive3D) BPars() []float64 { return append([]float64(nil), p.poly.Pars()...) }

// Bernstein exposes the wrapped polynomial.
func (p *Positive3D) Bernstein() *Bernstein3D { return p.poly }

// Sphere exposes the parameter sphere.
func (p *Positive3D) Sphere() *nsphere.Sphere { return p.sphere }

func (p *Positive3D) updateCoefficients() {
	for k, w := range p.sphere.X() {
		p.poly.SetPar(k, w*p.norm)
	}
}

func (p *Positive3D) Evaluate(x, y, z float64) float64 { return p.poly.Evaluate(x, y, z) }

func (p *Positive3D) NX() int { return p.poly.NX() }
func (p *Positive3D) NY() int { return p.poly.NY() }
func (p *Positive3D) NZ() int { return p.poly.NZ() }

func (p *Positive3D) XMin() float64 { return p.poly.XMin() }
func (p *Positive3D) XMax() float64 { return p.poly.XMax() }
func (p *Positive3D) YMin() float64 { return p.poly.YMin() }
func (p *Positive3D) YMax() float64 { return p.poly.YMax() }
func (p *Positive3D) ZMin() float64 { return p.poly.ZMin() }
func (p *Positive3D) ZMax() float64 { return p.poly.ZMax() }

func (p *Positive3D) X(tx float64) float64 { return p.poly.X(tx) }
func (p *Positive3D) Y(ty float64) float64 { return p.poly.Y(ty) }
func (p *Positive3D) Z(tz float64) float64 { return p.poly.Z(tz) }
func (p *Positive3D) TX(x float64) float64 { return p.poly.TX(x) }
func (p *Positive3D) TY(y float64) float64 { return p.poly.TY(y) }
func (p *Positive3D) TZ(z float64) float64 { return p.poly.TZ(z) }

func (p *Positive3D) Tag() uint64 { return p.poly.Tag() }

func (p *Positive3D) Integral() float64 { return p.poly.Integral() }
func (p *Positive3D) IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64 {
	return p.poly.IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi)
}

func (p *Positive3D) IntegrateXRange(y, z, xlo, xhi float64) float64 {
	return p.poly.IntegrateXRange(y, z, xlo, xhi)
}
func (p *Positive3D) IntegrateYRange(x, z, ylo, yhi float64) float64 {
	return p.poly.IntegrateYRange(x, z, ylo, yhi)
}
func (p *Positive3D) IntegrateZRange(x, y, zlo, zhi float64) float64 {
	return p.poly.IntegrateZRange(x, y, zlo, zhi)
}
func (p *Positive3D) IntegrateXYRange(z, xlo, xhi, ylo, yhi float64) float64 {
	return p.poly.IntegrateXYRange(z, xlo, xhi, ylo, yhi)
}
func (p *Positive3D) IntegrateXZRange(y, xlo, xhi, zlo, zhi float64) float64 {
	return p.poly.IntegrateXZRange(y, xlo, xhi, zlo, zhi)
}
func (p *Positive3D) IntegrateYZRange(x, ylo, yhi, zlo, zhi float64) float64 {
	return p.poly.IntegrateYZRange(x, ylo, yhi, zlo, zhi)
}

func (p *Positive3D) IntegrateX(y, z float64) float64 { return p.poly.IntegrateX(y, z) }
func (p *Positive3D) IntegrateY(x, z float64) float64 { return p.poly.IntegrateY(x, z) }
func (p *Positive3D) IntegrateZ(x, y float64) float64 { return p.poly.IntegrateZ(x, y) }
func (p *Positive3D) IntegrateXY(z float64) float64 { return p.poly.IntegrateXY(z) }
func (p *Positive3D) IntegrateXZ(y float64) float64 { return p.poly.IntegrateXZ(y) }
func (p *Positive3D) IntegrateYZ(x float64) float64 { return p.poly.IntegrateYZ(x) }

// Positive3DSym wraps the fully symmetric tensor.
type Positive3DSym struct {
	poly   *Bernstein3DSym
	sphere *nsphere.Sphere
	norm   []float64 // per-slot weight -> coefficient factor
}

func NewPositive3DSym(n int, xmin, xmax float64) (p *Positive3DSym) {
	p = &Positive3DSym{poly: NewBernstein3DSym(n, xmin, xmax)}
	p.sphere = nsphere.New(p.poly.NPars() - 1)
	p.norm = symSlotNorms(p.poly)
	p.updateCoefficients()
	return
}

// symSlotNorms inverts, per packed slot, the full-domain integral of the
// slot's symmetry orbit: orbit size times the basis-triple volume.
func symSlotNorms(poly *Bernstein3DSym) (r []float64) {
	var (
		n = poly.NX()
		w = (poly.XMax() - poly.XMin()) / float64(n+1)
		f = w * w * w
	)
	r = make([]float64, poly.NPars())
	for l := 0; l <= n; l++ {
		for m := 0; m <= l; m++ {
			for k := 0; k <= m; k++ {
				slot, _ := poly.Index(l, m, k)
				r[slot] = 1 / (orbitSize(l, m, k) * f)
			}
		}
	}
	return
}

// orbitSize counts the distinct permutations of a degree triple.
func orbitSize(l, m, n int) float64 {
	switch {
	case l == m && m == n:
		return 1
	case l == m || m == n || l == n:
		return 3
	}
	return 6
}

func (p *Positive3DSym) Clone() (c *Positive3DSym) {
	// norm depends only on degree and domain, safe to share
	c = &Positive3DSym{poly: p.poly.Clone(), sphere: p.sphere.Clone(), norm: p.norm}
	return
}

func (p *Positive3DSym) Swap(o *Positive3DSym) { *p, *o = *o, *p }

func (p *Positive3DSym) NPars() int { return p.sphere.NPhi() }
func (p *Positive3DSym) Par(k int) float64 { return p.sphere.Phase(k) }

func (p *Positive3DSym) SetPar(k int, value float64) bool {
	if !p.sphere.SetPhase(k, value) {
		return false
	}
	p.updateCoefficients()
	return true
}

func (p *Positive3DSym) Pars() []float64 { return append([]float64(nil), p.sphere.Phases()...) }
func (p *Positive3DSym) BPars() []float64 { return append([]float64(nil), p.poly.Pars()...) }
func (p *Positive3DSym) Bernstein() *Bernstein3DSym { return p.poly }
func (p *Positive3DSym) Sphere() *nsphere.Sphere { return p.sphere }

func (p *Positive3DSym) updateCoefficients() {
	for k, w := range p.sphere.X() {
		p.poly.SetPar(k, w*p.norm[k])
	}
}

func (p *Positive3DSym) Evaluate(x, y, z float64) float64 { return p.poly.Evaluate(x, y, z) }

func (p *Positive3DSym) NX() int { return p.poly.NX() }
func (p *Positive3DSym) NY() int { return p.poly.NY() }
func (p *Positive3DSym) NZ() int { return p.poly.NZ() }

func (p *Positive3DSym) XMin() float64 { return p.poly.XMin() }
func (p *Positive3DSym) XMax() float64 { return p.poly.XMax() }
func (p *Positive3DSym) YMin() float64 { return p.poly.YMin() }
func (p *Positive3DSym) YMax() float64 { return p.poly.YMax() }
func (p *Positive3DSym) ZMin() float64 { return p.poly.ZMin() }
func (p *Positive3DSym) ZMax() float64 { return p.poly.ZMax() }

func (p *Positive3DSym) X(tx float64) float64 { return p.poly.X(tx) }
func (p *Positive3DSym) Y(ty float64) float64 { return p.poly.Y(ty) }
func (p *Positive3DSym) Z(tz float64) float64 { return p.poly.Z(tz) }
func (p *Positive3DSym) TX(x float64) float64 { return p.poly.TX(x) }
func (p *Positive3DSym) TY(y float64) float64 { return p.poly.TY(y) }
func (p *Positive3DSym) TZ(z float64) float64 { return p.poly.TZ(z) }

func (p *Positive3DSym) Tag() uint64 { return p.poly.Tag() }

func (p *Positive3DSym) Integral() float64 { return p.poly.Integral() }
func (p *Positive3DSym) IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64 {
	return p.poly.IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi)
}

func (p *Positive3DSym) IntegrateXRange(y, z, xlo, xhi float64) float64 {
	return p.poly.IntegrateXRange(y, z, xlo, xhi)
}
func (p *Positive3DSym) IntegrateYRange(x, z, ylo, yhi float64) float64 {
	return p.poly.IntegrateYRange(x, z, ylo, yhi)
}
func (p *Positive3DSym) IntegrateZRange(x, y, zlo, zhi float64) float64 {
	return p.poly.IntegrateZRange(x, y, zlo, zhi)
}
func (p *Positive3DSym) IntegrateXYRange(z, xlo, xhi, ylo, yhi float64) float64 {
	return p.poly.IntegrateXYRange(z, xlo, xhi, ylo, yhi)
}
func (p *Positive3DSym) IntegrateXZRange(y, xlo, xhi, zlo, zhi float64) float64 {
	return p.poly.IntegrateXZRange(y, xlo, xhi, zlo, zhi)
}
func (p *Positive3DSym) IntegrateYZRange(x, ylo, yhi, zlo, zhi float64) float64 {
	return p.poly.IntegrateYZRange(x, ylo, yhi, zlo, zhi)
}

func (p *Positive3DSym) IntegrateX(y, z float64) float64 { return p.poly.IntegrateX(y, z) }
func (p *Positive3DSym) IntegrateY(x, z float64) float64 { return p.poly.IntegrateY(x, z) }
func (p *Positive3DSym) IntegrateZ(x, y float64) float64 { return p.poly.IntegrateZ(x, y) }
func (p *Positive3DSym) IntegrateXY(z float64) float64 { return p.poly.IntegrateXY(z) }
func (p *Positive3DSym) IntegrateXZ(y float64) float64 { return p.poly.IntegrateXZ(y) }
func (p *Positive3DSym) IntegrateYZ(x float64) float64 { return p.poly.IntegrateYZ(x) }

// Positive3DMix wraps the x<->y symmetric tensor.
type Positive3DMix struct {
	poly   *Bernstein3DMix
	sphere *nsphere.Sphere
	norm   []float64 // per-slot weight -> coefficient factor
}

func NewPositive3DMix(n, nz int, xmin, xmax, zmin, zmax float64) (p *Positive3DMix) {
	p = &Positive3DMix{poly: NewBernstein3DMix(n, nz, xmin, xmax, zmin, zmax)}
	p.sphere = nsphere.New(p.poly.NPars() - 1)
	p.norm = mixSlotNorms(p.poly)
	p.updateCoefficients()
	return
}

// mixSlotNorms is the two-axis analogue of symSlotNorms: orbit size is 2
// for l != m and 1 on the diagonal.
func mixSlotNorms(poly *Bernstein3DMix) (r []float64) {
	var (
		n  = poly.NX()
		nz = poly.NZ()
		w  = (poly.XMax() - poly.XMin()) / float64(n+1)
		f  = w * w * (poly.ZMax() - poly.ZMin()) / float64(nz+1)
	)
	r = make([]float64, poly.NPars())
	for l := 0; l <= n; l++ {
		for m := 0; m <= l; m++ {
			orbit := 2.
			if l == m {
				orbit = 1
			}
			for k := 0; k <= nz; k++ {
				slot, _ := poly.Index(l, m, k)
				r[slot] = 1 / (orbit * f)
			}
		}
	}
	return
}

func (p *Positive3DMix) Clone() (c *Positive3DMix) {
	c = &Positive3DMix{poly: p.poly.Clone(), sphere: p.sphere.Clone(), norm: p.norm}
	return
}

func (p *Positive3DMix) Swap(o *Positive3DMix) { *p, *o = *o, *p }

func (p *Positive3DMix) NPars() int { return p.sphere.NPhi() }
func (p *Positive3DMix) Par(k int) float64 { return p.sphere.Phase(k) }

func (p *Positive3DMix) SetPar(k int, value float64) bool {
	if !p.sphere.SetPhase(k, value) {
		return false
	}
	p.updateCoefficients()
	return true
}

func (p *Positive3DMix) Pars() []float64 { return append([]float64(nil), p.sphere.Phases()...) }
func (p *Positive3DMix) BPars() []float64 { return append([]float64(nil), p.poly.Pars()...) }
func (p *Positive3DMix) Bernstein() *Bernstein3DMix { return p.poly }
func (p *Positive3DMix) Sphere() *nsphere.Sphere { return p.sphere }

func (p *Positive3DMix) updateCoefficients() {
	for k, w := range p.sphere.X() {
		p.poly.SetPar(k, w*p.norm[k])
	}
}

func (p *Positive3DMix) Evaluate(x, y, z float64) float64 { return p.poly.Evaluate(x, y, z) }

func (p *Positive3DMix) NX() int { return p.poly.NX() }
func (p *Positive3DMix) NY() int { return p.poly.NY() }
func (p *Positive3DMix) NZ() int { return p.poly.NZ() }

func (p *Positive3DMix) XMin() float64 { return p.poly.XMin() }
func (p *Positive3DMix) XMax() float64 { return p.poly.XMax() }
func (p *Positive3DMix) YMin() float64 { return p.poly.YMin() }
func (p *Positive3DMix) YMax() float64 { return p.poly.YMax() }
func (p *Positive3DMix) ZMin() float64 { return p.poly.ZMin() }
func (p *Positive3DMix) ZMax() float64 { return p.poly.ZMax() }

func (p *Positive3DMix) X(tx float64) float64 { return p.poly.X(tx) }
func (p *Positive3DMix) Y(ty float64) float64 { return p.poly.Y(ty) }
func (p *Positive3DMix) Z(tz float64) float64 { return p.poly.Z(tz) }
func (p *Positive3DMix) TX(x float64) float64 { return p.poly.TX(x) }
func (p *Positive3DMix) TY(y float64) float64 { return p.poly.TY(y) }
func (p *Positive3DMix) TZ(z float64) float64 { return p.poly.TZ(z) }

func (p *Positive3DMix) Tag() uint64 { return p.poly.Tag() }

func (p *Positive3DMix) Integral() float64 { return p.poly.Integral() }
func (p *Positive3DMix) IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64 {
	return p.poly.IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi)
}

func (p *Positive3DMix) IntegrateXRange(y, z, xlo, xhi float64) float64 {
	return p.poly.IntegrateXRange(y, z, xlo, xhi)
}
func (p *Positive3DMix) IntegrateYRange(x, z, ylo, yhi float64) float64 {
	return p.poly.IntegrateYRange(x, z, ylo, yhi)
}
func (p *Positive3DMix) IntegrateZRange(x, y, zlo, zhi float64) float64 {
	return p.poly.IntegrateZRange(x, y, zlo, zhi)
}
func (p *Positive3DMix) IntegrateXYRange(z, xlo, xhi, ylo, yhi float64) float64 {
	return p.poly.IntegrateXYRange(z, xlo, xhi, ylo, yhi)
}
func (p *Positive3DMix) IntegrateXZRange(y, xlo, xhi, zlo, zhi float64) float64 {
	return p.poly.IntegrateXZRange(y, xlo, xhi, zlo, zhi)
}
func (p *Positive3DMix) IntegrateYZRange(x, ylo, yhi, zlo, zhi float64) float64 {
	return p.poly.IntegrateYZRange(x, ylo, yhi, zlo, zhi)
}

func (p *Positive3DMix) IntegrateX(y, z float64) float64 { return p.poly.IntegrateX(y, z) }
func (p *Positive3DMix) IntegrateY(x, z float64) float64 { return p.poly.IntegrateY(x, z) }
func (p *Positive3DMix) IntegrateZ(x, y float64) float64 { return p.poly.IntegrateZ(x, y) }
func (p *Positive3DMix) IntegrateXY(z float64) float64 { return p.poly.IntegrateXY(z) }
func (p *Positive3DMix) IntegrateXZ(y float64) float64 { return p.poly.IntegrateXZ(y) }
func (p *Positive3DMix) IntegrateYZ(x float64) float64 { return p.poly.IntegrateYZ(x) }

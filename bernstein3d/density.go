package bernstein3d

// Density3D is the capability set shared by the positive tensor
// wrappers: a normalized non-negative surface with closed-form box and
// face integrals, free parameters behind a flat get/set surface, and a
// structural tag for integration caches upstream.
type Density3D interface {
	NPars() int
	Par(k int) float64
	SetPar(k int, value float64) bool

	Evaluate(x, y, z float64) float64
	Integral() float64
	IntegralBox(xlo, xhi, ylo, yhi, zlo, zhi float64) float64
	IntegrateX(y, z float64) float64
	IntegrateY(x, z float64) float64
	IntegrateZ(x, y float64) float64
	IntegrateXY(z float64) float64
	IntegrateXZ(y float64) float64
	IntegrateYZ(x float64) float64

	NX() int
	NY() int
	NZ() int
	XMin() float64
	XMax() float64
	YMin() float64
	YMax() float64
	ZMin() float64
	ZMax() float64

	Tag() uint64
}

var (
	_ Density3D = (*Positive3D)(nil)
	_ Density3D = (*Positive3DSym)(nil)
	_ Density3D = (*Positive3DMix)(nil)
)

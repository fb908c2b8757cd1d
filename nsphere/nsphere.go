/*
Package nsphere maps a vector of unconstrained phase angles onto a point
of the non-negative part of the unit hypersphere, delivering M = NPhi+1
squared direction cosines: non-negative values that sum to exactly one.

	x_0     = cos^2(psi_0)
	x_k     = cos^2(psi_k) * prod_{j<k} sin^2(psi_j)
	x_{M-1} = prod_{j} sin^2(psi_j)

Each psi_k is the stored phase plus a fixed rotation bias chosen so the
all-zero phase vector yields uniform weights 1/M. Optimizers may search
the phases freely; the weight vector stays on the simplex by
construction.
*/
package nsphere

import "math"

type Sphere struct {
	phases []float64 // unconstrained, length M-1
	deltas []float64 // fixed rotation biases, length M-1
	x      []float64 // derived weights, length M, kept in sync eagerly
}

// New constructs a sphere with nPhi phases (nPhi+1 weights), initialized
// to the uniform point.
func New(nPhi int) (s *Sphere) {
	var (
		m      = nPhi + 1
		deltas = make([]float64, nPhi)
	)
	for k := 0; k < nPhi; k++ {
		deltas[k] = math.Acos(1 / math.Sqrt(float64(m-k)))
	}
	s = &Sphere{
		phases: make([]float64, nPhi),
		deltas: deltas,
		x:      make([]float64, m),
	}
	s.update()
	return
}

// NPhi is the number of free phase parameters.
func (s *Sphere) NPhi() int { return len(s.phases) }

// NX is the number of derived weights, NPhi+1.
func (s *Sphere) NX() int { return len(s.x) }

// Phase returns the k-th phase, 0 for an out-of-range index.
func (s *Sphere) Phase(k int) float64 {
	if k < 0 || k >= len(s.phases) {
		return 0
	}
	return s.phases[k]
}

// SetPhase stores the k-th phase and recomputes the weights. An
// out-of-range index is a no-op returning false.
func (s *Sphere) SetPhase(k int, value float64) bool {
	if k < 0 || k >= len(s.phases) {
		return false
	}
	s.phases[k] = value
	s.update()
	return true
}

// Phases returns the phase vector (shared backing).
func (s *Sphere) Phases() []float64 { return s.phases }

// X returns a copy of the weight vector: non-negative, sum 1. The
// internal vector stays private so no caller can push the point off the
// simplex.
func (s *Sphere) X() []float64 { return append([]float64(nil), s.x...) }

// XAt returns the k-th weight, 0 for an out-of-range index.
func (s *Sphere) XAt(k int) float64 {
	if k < 0 || k >= len(s.x) {
		return 0
	}
	return s.x[k]
}

func (s *Sphere) Clone() (c *Sphere) {
	c = &Sphere{
		phases: append([]float64(nil), s.phases...),
		deltas: s.deltas, // biases are immutable, safe to share
		x:      append([]float64(nil), s.x...),
	}
	return
}

func (s *Sphere) Swap(o *Sphere) {
	s.phases, o.phases = o.phases, s.phases
	s.deltas, o.deltas = o.deltas, s.deltas
	s.x, o.x = o.x, s.x
}

func (s *Sphere) update() {
	sin2 := 1.0
	for k, phi := range s.phases {
		psi := phi + s.deltas[k]
		c, sn := math.Cos(psi), math.Sin(psi)
		s.x[k] = sin2 * c * c
		sin2 *= sn * sn
	}
	s.x[len(s.x)-1] = sin2
}

package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeck(t *testing.T) {
	deck := `
Title: "Dalitz Acceptance"
Model: positive-mix
NX: 2
NZ: 3
XMin: -1.
XMax: 1.
ZMin: 0.
ZMax: 4.
Phases: [0.1, -0.2, 0.3]
`
	mp := NewModelParameters3D()
	assert.NoError(t, mp.Parse([]byte(deck)))
	assert.Equal(t, "Dalitz Acceptance", mp.Title)
	assert.Equal(t, "positive-mix", mp.Model)
	assert.Equal(t, 2, mp.NX)
	assert.Equal(t, 3, mp.NZ)
	assert.Equal(t, -1., mp.XMin)
	assert.Equal(t, 4., mp.ZMax)
	assert.Equal(t, []float64{0.1, -0.2, 0.3}, mp.Phases)
	// omitted keys keep their defaults
	assert.Equal(t, 1, mp.NY)
	assert.Equal(t, 0., mp.YMin)
	assert.Equal(t, 1., mp.YMax)
}

func TestParseBadDeck(t *testing.T) {
	mp := NewModelParameters3D()
	assert.Error(t, mp.Parse([]byte("Phases: {not: a list}")))
}

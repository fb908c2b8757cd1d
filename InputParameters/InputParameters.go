package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML model deck
type ModelParameters3D struct {
	Title  string    `yaml:"Title"`
	Model  string    `yaml:"Model"` // "positive", "positive-sym" or "positive-mix"
	NX     int       `yaml:"NX"`
	NY     int       `yaml:"NY"`
	NZ     int       `yaml:"NZ"`
	XMin   float64   `yaml:"XMin"`
	XMax   float64   `yaml:"XMax"`
	YMin   float64   `yaml:"YMin"`
	YMax   float64   `yaml:"YMax"`
	ZMin   float64   `yaml:"ZMin"`
	ZMax   float64   `yaml:"ZMax"`
	Phases []float64 `yaml:"Phases"`
}

// NewModelParameters3D carries the deck defaults: degree 1 per axis on
// the unit cube. Parse overwrites only the keys the deck provides.
func NewModelParameters3D() *ModelParameters3D {
	return &ModelParameters3D{
		Model: "positive",
		NX:    1, NY: 1, NZ: 1,
		XMin: 0, XMax: 1,
		YMin: 0, YMax: 1,
		ZMin: 0, ZMax: 1,
	}
}

func (mp *ModelParameters3D) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *ModelParameters3D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%s]\t\t= Model\n", mp.Model)
	fmt.Printf("[%d %d %d]\t\t= Degrees (X, Y, Z)\n", mp.NX, mp.NY, mp.NZ)
	fmt.Printf("[%8.5f,%8.5f]\t= X Range\n", mp.XMin, mp.XMax)
	fmt.Printf("[%8.5f,%8.5f]\t= Y Range\n", mp.YMin, mp.YMax)
	fmt.Printf("[%8.5f,%8.5f]\t= Z Range\n", mp.ZMin, mp.ZMax)
	fmt.Printf("%v\t= Phases\n", mp.Phases)
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cpawley/ostap/InputParameters"
	"github.com/cpawley/ostap/bernstein3d"
)

type ModelDensity struct {
	ModelFile string
	Samples   int
	Profile   bool
	At        []float64
}

// DensityCmd represents the density command
var DensityCmd = &cobra.Command{
	Use:   "density",
	Short: "Build a positive tensor density from a YAML deck and tabulate it",
	Long: `
Reads a model deck, constructs the requested positive Bernstein tensor
density, applies its phase parameters and prints the normalization
check together with per-axis marginal tables,

ostap density -I model.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		md := &ModelDensity{}
		if md.ModelFile, err = cmd.Flags().GetString("modelFile"); err != nil {
			panic(err)
		}
		md.Samples, _ = cmd.Flags().GetInt("samples")
		md.Profile, _ = cmd.Flags().GetBool("profile")
		md.At, _ = cmd.Flags().GetFloat64Slice("at")
		mp := processModelInput(md)
		RunDensity(md, mp)
	},
}

func processModelInput(md *ModelDensity) (mp *InputParameters.ModelParameters3D) {
	var (
		err error
	)
	if len(md.ModelFile) == 0 {
		err = fmt.Errorf("must supply a model deck (-I, --modelFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Density"
Model: positive # Can be "positive-sym" or "positive-mix"
NX: 2
NY: 2
NZ: 1
XMin: 0.
XMax: 1.
Phases: [0.25, -0.1]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(md.ModelFile); err != nil {
		panic(err)
	}
	mp = InputParameters.NewModelParameters3D()
	if err = mp.Parse(data); err != nil {
		panic(err)
	}
	return
}

// BuildDensity translates a parsed deck into the matching positive
// tensor wrapper and loads its phases.
func BuildDensity(mp *InputParameters.ModelParameters3D) (d bernstein3d.Density3D, err error) {
	switch mp.Model {
	case "positive", "":
		d = bernstein3d.NewPositive3D(mp.NX, mp.NY, mp.NZ,
			mp.XMin, mp.XMax, mp.YMin, mp.YMax, mp.ZMin, mp.ZMax)
	case "positive-sym":
		d = bernstein3d.NewPositive3DSym(mp.NX, mp.XMin, mp.XMax)
	case "positive-mix":
		d = bernstein3d.NewPositive3DMix(mp.NX, mp.NZ,
			mp.XMin, mp.XMax, mp.ZMin, mp.ZMax)
	default:
		err = fmt.Errorf("unknown model type [%s]", mp.Model)
		return
	}
	if len(mp.Phases) > d.NPars() {
		err = fmt.Errorf("deck supplies %d phases, model has %d free parameters",
			len(mp.Phases), d.NPars())
		return
	}
	for k, phi := range mp.Phases {
		d.SetPar(k, phi)
	}
	return
}

func init() {
	rootCmd.AddCommand(DensityCmd)
	DensityCmd.Flags().StringP("modelFile", "I", "", "YAML deck describing the density model")
	DensityCmd.Flags().IntP("samples", "s", 10, "number of rows in each marginal table")
	DensityCmd.Flags().Float64Slice("at", nil, "evaluate the density at the point x,y,z")
	DensityCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunDensity(md *ModelDensity, mp *InputParameters.ModelParameters3D) {
	if md.Profile {
		defer profile.Start().Stop()
	}
	mp.Print()
	d, err := BuildDensity(mp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%d\t\t\t= Free Parameters\n", d.NPars())
	fmt.Printf("%#x\t= Tag\n", d.Tag())
	fmt.Printf("%10.7f\t\t= Full Domain Integral\n", d.Integral())
	if len(md.At) == 3 {
		fmt.Printf("%10.7f\t\t= Density at (%g, %g, %g)\n",
			d.Evaluate(md.At[0], md.At[1], md.At[2]), md.At[0], md.At[1], md.At[2])
	}

	printMarginal(md.Samples, "x", d.XMin(), d.XMax(), d.IntegrateYZ)
	printMarginal(md.Samples, "y", d.YMin(), d.YMax(), d.IntegrateXZ)
	printMarginal(md.Samples, "z", d.ZMin(), d.ZMax(), d.IntegrateXY)
}

// printMarginal tabulates a single-axis marginal at bin midpoints.
func printMarginal(samples int, label string, lo, hi float64, f func(float64) float64) {
	fmt.Printf("Marginal over %s:\n", label)
	h := (hi - lo) / float64(samples)
	for i := 0; i < samples; i++ {
		v := lo + h*(float64(i)+0.5)
		fmt.Printf("%8.5f\t%10.7f\n", v, f(v))
	}
}

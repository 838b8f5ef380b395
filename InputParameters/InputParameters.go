package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Mesh description obtained from the YAML input file
type MeshParameters struct {
	Nx           int     `yaml:"Nx"` // Interior cells in X
	Ny           int     `yaml:"Ny"` // Interior cells in Y
	Nz           int     `yaml:"Nz"`
	MXG          int     `yaml:"MXG"` // Guard cells on each side in X
	MYG          int     `yaml:"MYG"` // Guard cells on each side in Y
	Lx           float64 `yaml:"Lx"`
	Ly           float64 `yaml:"Ly"`
	Zlength      float64 `yaml:"Zlength"`
	StaggerGrids bool    `yaml:"StaggerGrids"`
	Shear        float64 `yaml:"Shear"`   // ZShift = Shear * y, zero gives an aligned mesh
	B0           float64 `yaml:"B0"`      // Magnetic field on axis
	BRipple      float64 `yaml:"BRipple"` // Relative variation of B along Y
	G_22         float64 `yaml:"G_22"`    // Covariant parallel metric, constant
}

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title       string                       `yaml:"Title"`
	Mesh        MeshParameters               `yaml:"Mesh"`
	Methods     map[string]string            `yaml:"Methods"` // Operator family to method name
	Options     map[string]map[string]string `yaml:"Options"` // Section, key, value
	ModeX       int                          `yaml:"ModeX"`
	ModeY       int                          `yaml:"ModeY"`
	ModeZ       int                          `yaml:"ModeZ"`
	Velocity    float64                      `yaml:"Velocity"`
	Levels      int                          `yaml:"Levels"` // Refinement levels for convergence studies
	OptionsFile string                       `yaml:"OptionsFile"`
	Location    string                       `yaml:"Location"` // Staggered side of grad_par and div_par: centre or ylow
}

func NewInputParameters() *InputParameters {
	return &InputParameters{
		Mesh: MeshParameters{
			Nx: 8, Ny: 32, Nz: 16,
			MXG: 2, MYG: 2,
			Lx: 1, Ly: 1, Zlength: 6.283185307179586,
			B0: 1, G_22: 1,
		},
		ModeX: 1, ModeY: 1, ModeZ: 1,
		Velocity: 1,
		Levels:   4,
		Location: "centre",
	}
}

// Parse overlays the YAML input on the defaults
func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d, %d, %d]\t\t= Nx, Ny, Nz\n", ip.Mesh.Nx, ip.Mesh.Ny, ip.Mesh.Nz)
	fmt.Printf("[%d, %d]\t\t\t= MXG, MYG\n", ip.Mesh.MXG, ip.Mesh.MYG)
	fmt.Printf("%8.5f\t\t= Shear\n", ip.Mesh.Shear)
	fmt.Printf("%8.5f\t\t= BRipple\n", ip.Mesh.BRipple)
	fmt.Printf("[%d, %d, %d]\t\t= ModeX, ModeY, ModeZ\n", ip.ModeX, ip.ModeY, ip.ModeZ)
	fmt.Printf("%s\t\t\t= Location\n", ip.Location)
	if len(ip.OptionsFile) != 0 {
		fmt.Printf("%s\t\t= OptionsFile\n", ip.OptionsFile)
	}
	keys := make([]string, len(ip.Methods))
	i := 0
	for k := range ip.Methods {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Methods[%s] = %v\n", key, ip.Methods[key])
	}
}

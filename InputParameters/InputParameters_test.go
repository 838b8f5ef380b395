package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParameters(t *testing.T) {
	fileInput := []byte(`
Title: Sheared slab
Mesh:
  Nx: 4
  Ny: 64
  Nz: 32
  MYG: 2
  Shear: 0.5
  BRipple: 0.1
Methods:
  grad_par: c4_fa
  vpar_grad_par: w3_fa
Options:
  laplace:
    all_terms: "false"
ModeY: 2
Location: ylow
OptionsFile: BOUT.ini
`)
	ip := NewInputParameters()
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Sheared slab", ip.Title)
	assert.Equal(t, 64, ip.Mesh.Ny)
	assert.Equal(t, 0.5, ip.Mesh.Shear)
	assert.Equal(t, "c4_fa", ip.Methods["grad_par"])
	assert.Equal(t, "false", ip.Options["laplace"]["all_terms"])
	assert.Equal(t, 2, ip.ModeY)
	assert.Equal(t, "ylow", ip.Location)
	assert.Equal(t, "BOUT.ini", ip.OptionsFile)
	// Defaults survive where the file is silent
	assert.Equal(t, 2, ip.Mesh.MXG)
	assert.Equal(t, 1., ip.Mesh.B0)
	assert.Equal(t, 1, ip.ModeZ)
	assert.Equal(t, "centre", NewInputParameters().Location)
	ip.Print()
}

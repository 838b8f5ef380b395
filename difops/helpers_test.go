package difops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/difops/InputParameters"
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/mesh"
	"github.com/notargets/difops/types"
)

func newTestMesh(t *testing.T, nx, ny, nz int) *mesh.Mesh {
	mp := InputParameters.NewInputParameters().Mesh
	mp.Nx, mp.Ny, mp.Nz = nx, ny, nz
	mp.StaggerGrids = true
	m, err := mesh.NewMeshFromParameters(mp)
	require.NoError(t, err)
	return m
}

func newShearedMesh(t *testing.T, nx, ny, nz int, shear float64) *mesh.Mesh {
	mp := InputParameters.NewInputParameters().Mesh
	mp.Nx, mp.Ny, mp.Nz = nx, ny, nz
	mp.Shear = shear
	m, err := mesh.NewMeshFromParameters(mp)
	require.NoError(t, err)
	return m
}

// fieldOf sets a field from the cell positions, Y is taken at loc
func fieldOf(m *mesh.Mesh, rank field.Rank, loc types.CellLoc, fn func(x, y, z float64) float64) *field.Field {
	var f *field.Field
	if rank == field.Rank2D {
		f = m.New2D()
	} else {
		f = m.New3D()
	}
	f.SetLocation(loc)
	return f.SetFunc(func(i, j, k int) float64 {
		var z float64
		if rank == field.Rank3D {
			z = m.Z[k]
		}
		return fn(m.X[i], m.YPosition(j, loc), z)
	})
}

func sinY(ky float64) func(x, y, z float64) float64 {
	return func(_, y, _ float64) float64 { return math.Sin(ky * y) }
}

func cosY(ky float64) func(x, y, z float64) float64 {
	return func(_, y, _ float64) float64 { return ky * math.Cos(ky*y) }
}

func interior(m *mesh.Mesh, f *field.Field) field.Region {
	return m.RegionFor(f, field.RGN_NOBNDRY)
}

func newOps(m *mesh.Mesh) *Ops {
	return NewOps(m, nil, nil)
}

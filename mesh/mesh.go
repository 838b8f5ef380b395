package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/difops/InputParameters"
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

/*
Mesh is the local block of a structured mesh. X is radial with guard cells
[0, Xstart) and (Xend, LocalNx), Y is parallel with guards [0, Ystart) and
(Yend, LocalNy), Z is periodic and has no guard cells.
*/
type Mesh struct {
	LocalNx, LocalNy, LocalNz int
	Xstart, Xend              int
	Ystart, Yend              int
	StaggerGrids              bool
	Coords                    *Coordinates
	Transform                 ParallelTransform
	// Cell centre positions
	X, Y, Z []float64
}

// NewMesh makes a uniform box of nx by ny interior cells with mxg and myg guard
// cells on each side, unit spacing in X and Y and an identity metric
func NewMesh(nx, ny, nz, mxg, myg int) (m *Mesh, err error) {
	switch {
	case nx < 1 || ny < 1 || nz < 1:
		err = fmt.Errorf("mesh needs at least one interior cell in each direction: %d, %d, %d", nx, ny, nz)
		return
	case mxg < 0 || myg < 0:
		err = fmt.Errorf("guard cell counts cannot be negative: %d, %d", mxg, myg)
		return
	}
	m = &Mesh{
		LocalNx: nx + 2*mxg,
		LocalNy: ny + 2*myg,
		LocalNz: nz,
		Xstart:  mxg,
		Xend:    mxg + nx - 1,
		Ystart:  myg,
		Yend:    myg + ny - 1,
	}
	m.Coords = NewCoordinates(m.LocalNx, m.LocalNy)
	m.Transform = Identity{}
	m.setPositions()
	return
}

// NewMeshFromParameters builds a slab with the spacing, parallel metric,
// magnetic field and shear described by the input parameters
func NewMeshFromParameters(mp InputParameters.MeshParameters) (m *Mesh, err error) {
	if m, err = NewMesh(mp.Nx, mp.Ny, mp.Nz, mp.MXG, mp.MYG); err != nil {
		return
	}
	var (
		c  = m.Coords
		dx = mp.Lx / float64(mp.Nx)
		dy = mp.Ly / float64(mp.Ny)
	)
	if mp.Lx <= 0 || mp.Ly <= 0 {
		err = fmt.Errorf("mesh lengths must be positive: Lx = %v, Ly = %v", mp.Lx, mp.Ly)
		return nil, err
	}
	if mp.Zlength > 0 {
		c.Zlength = mp.Zlength
	}
	c.Dx.Fill(dx)
	c.Dy.Fill(dy)
	m.StaggerGrids = mp.StaggerGrids
	m.setPositions()
	if mp.G_22 > 0 {
		c.SetParallelMetric(field.New2D(m.LocalNx, m.LocalNy).Fill(mp.G_22))
	}
	b0 := mp.B0
	if b0 == 0 {
		b0 = 1
	}
	c.Bxy.SetFunc(func(x, y, _ int) float64 {
		return b0 * (1 + mp.BRipple*math.Cos(2*math.Pi*m.Y[y]/mp.Ly))
	})
	if mp.Shear != 0 {
		zShift := field.New2D(m.LocalNx, m.LocalNy).SetFunc(func(x, y, _ int) float64 {
			return mp.Shear * m.Y[y]
		})
		m.Transform = NewShiftedMetric(zShift, c.Zlength)
	}
	return
}

func (m *Mesh) setPositions() {
	var (
		c = m.Coords
	)
	m.X = make([]float64, m.LocalNx)
	m.Y = make([]float64, m.LocalNy)
	m.Z = make([]float64, m.LocalNz)
	for x := range m.X {
		m.X[x] = (float64(x-m.Xstart) + 0.5) * c.Dx.Get(x, 0, 0)
	}
	for y := range m.Y {
		m.Y[y] = (float64(y-m.Ystart) + 0.5) * c.Dy.Get(0, y, 0)
	}
	for z := range m.Z {
		m.Z[z] = float64(z) * m.Dz()
	}
}

// YPosition is the Y coordinate of index y at a cell location
func (m *Mesh) YPosition(y int, loc types.CellLoc) float64 {
	if loc == types.CELL_YLOW {
		return m.Y[y] - 0.5*m.Coords.Dy.Get(0, y, 0)
	}
	return m.Y[y]
}

func (m *Mesh) Dz() float64 {
	return m.Coords.Zlength / float64(m.LocalNz)
}

func (m *Mesh) New2D() *field.Field {
	return field.New2D(m.LocalNx, m.LocalNy)
}

func (m *Mesh) New3D() *field.Field {
	return field.New3D(m.LocalNx, m.LocalNy, m.LocalNz)
}

func (m *Mesh) Region(rgn field.RegionType) (r field.Region) {
	r = field.Region{
		Xstart: 0, Xend: m.LocalNx - 1,
		Ystart: 0, Yend: m.LocalNy - 1,
		Nz: m.LocalNz,
	}
	switch rgn {
	case field.RGN_NOBNDRY:
		r.Xstart, r.Xend = m.Xstart, m.Xend
		r.Ystart, r.Yend = m.Ystart, m.Yend
	case field.RGN_NOX:
		r.Xstart, r.Xend = m.Xstart, m.Xend
	}
	return
}

// RegionFor is a region sized for f: 2D fields have a single Z plane
func (m *Mesh) RegionFor(f *field.Field, rgn field.RegionType) (r field.Region) {
	r = m.Region(rgn)
	if !f.Is3D() {
		r.Nz = 1
	}
	return
}

// GuardWidth is the number of cells available beyond the interior on both
// sides of a direction. Z is periodic and unlimited.
func (m *Mesh) GuardWidth(dir types.Direction) int {
	switch dir {
	case types.DirX:
		return min(m.Xstart, m.LocalNx-1-m.Xend)
	case types.DirY:
		return min(m.Ystart, m.LocalNy-1-m.Yend)
	}
	return math.MaxInt32
}

func (m *Mesh) CheckField(f *field.Field) error {
	return f.CheckShape(m.LocalNx, m.LocalNy, m.LocalNz)
}

func (m *Mesh) ToFieldAligned(f *field.Field) *field.Field {
	if !f.Is3D() {
		return f
	}
	return m.Transform.ToFieldAligned(f)
}

func (m *Mesh) FromFieldAligned(f *field.Field) *field.Field {
	if !f.Is3D() {
		return f
	}
	return m.Transform.FromFieldAligned(f)
}

// CalcParallelSlices stands in for the communication step that fills yup/ydown
func (m *Mesh) CalcParallelSlices(f *field.Field) {
	if !f.Is3D() {
		return
	}
	m.Transform.CalcParallelSlices(f)
}

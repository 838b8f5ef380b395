package field

import (
	"fmt"

	"github.com/notargets/difops/types"
)

type Rank uint8

const (
	Rank2D Rank = 2 // Axisymmetric, no variation in Z
	Rank3D Rank = 3
)

/*
Field holds the values of a scalar over the local mesh, tagged with the location
inside the cell where the values are stored.

A 3D field may carry parallel slices: copies of the field whose values at y+1 (yup)
and y-1 (ydown) follow the magnetic field line through each cell at y. When no
slices are attached, Yup and Ydown return the field itself.
*/
type Field struct {
	Nx, Ny, Nz int
	Rank       Rank
	Location   types.CellLoc
	data       []float64
	yup, ydown *Field
}

func New2D(nx, ny int) *Field {
	return &Field{
		Nx: nx, Ny: ny, Nz: 1,
		Rank:     Rank2D,
		Location: types.CELL_CENTRE,
		data:     make([]float64, nx*ny),
	}
}

func New3D(nx, ny, nz int) *Field {
	return &Field{
		Nx: nx, Ny: ny, Nz: nz,
		Rank:     Rank3D,
		Location: types.CELL_CENTRE,
		data:     make([]float64, nx*ny*nz),
	}
}

// NewLike allocates a field with the shape and location of f, without slices
func NewLike(f *Field) *Field {
	var r *Field
	if f.Rank == Rank2D {
		r = New2D(f.Nx, f.Ny)
	} else {
		r = New3D(f.Nx, f.Ny, f.Nz)
	}
	r.Location = f.Location
	return r
}

// NewResult allocates the result of an operation on a and b: 2D only if both are 2D
func NewResult(a, b *Field) *Field {
	if a.Rank == Rank3D {
		return NewLike(a)
	}
	return NewLike(b)
}

func (f *Field) Is3D() bool { return f.Rank == Rank3D }

func (f *Field) Len() int { return len(f.data) }

// Values exposes the underlying storage
func (f *Field) Values() []float64 { return f.data }

func (f *Field) Index(x, y, z int) int {
	if f.Rank == Rank2D {
		return y + f.Ny*x
	}
	return z + f.Nz*(y+f.Ny*x)
}

func (f *Field) Get(x, y, z int) float64 { return f.data[f.Index(x, y, z)] }

func (f *Field) Set(x, y, z int, val float64) { f.data[f.Index(x, y, z)] = val }

func (f *Field) At(i Ind) float64 { return f.data[f.Index(i.X, i.Y, i.Z)] }

func (f *Field) Assign(i Ind, val float64) { f.data[f.Index(i.X, i.Y, i.Z)] = val }

// SetFunc fills every cell from a function of the cell indices
func (f *Field) SetFunc(fn func(x, y, z int) float64) *Field {
	for x := 0; x < f.Nx; x++ {
		for y := 0; y < f.Ny; y++ {
			for z := 0; z < f.Nz; z++ {
				f.Set(x, y, z, fn(x, y, z))
			}
		}
	}
	return f
}

func (f *Field) Fill(val float64) *Field {
	for i := range f.data {
		f.data[i] = val
	}
	return f
}

func (f *Field) SetLocation(loc types.CellLoc) *Field {
	f.Location = loc
	return f
}

// Copy is a deep copy, including any parallel slices
func (f *Field) Copy() *Field {
	r := NewLike(f)
	copy(r.data, f.data)
	if f.HasParallelSlices() {
		r.yup, r.ydown = f.yup.Copy(), f.ydown.Copy()
	}
	return r
}

func (f *Field) SameShape(g *Field) bool {
	return f.Rank == g.Rank && f.Nx == g.Nx && f.Ny == g.Ny && f.Nz == g.Nz
}

func (f *Field) CheckShape(nx, ny, nz int) (err error) {
	switch {
	case f.Nx != nx || f.Ny != ny:
		err = fmt.Errorf("field is %dx%d, mesh is %dx%d", f.Nx, f.Ny, nx, ny)
	case f.Rank == Rank3D && f.Nz != nz:
		err = fmt.Errorf("field has Nz = %d, mesh has Nz = %d", f.Nz, nz)
	}
	return
}

func (f *Field) Yup() *Field {
	if f.yup == nil {
		return f
	}
	return f.yup
}

func (f *Field) Ydown() *Field {
	if f.ydown == nil {
		return f
	}
	return f.ydown
}

func (f *Field) HasParallelSlices() bool {
	return f.yup != nil && f.ydown != nil
}

func (f *Field) SetParallelSlices(yup, ydown *Field) {
	if f.Rank == Rank2D {
		panic("2D fields do not carry parallel slices")
	}
	if !f.SameShape(yup) || !f.SameShape(ydown) {
		panic(fmt.Errorf("parallel slices must have the shape of the field"))
	}
	f.yup, f.ydown = yup, ydown
}

func (f *Field) ClearParallelSlices() {
	f.yup, f.ydown = nil, nil
}

// DivXY divides by a 2D field, including the parallel slices, so that the
// connectivity of f is kept
func (f *Field) DivXY(g *Field) *Field {
	return f.applyXY(g, func(a, b float64) float64 { return a / b })
}

// MulXY multiplies by a 2D field, including the parallel slices
func (f *Field) MulXY(g *Field) *Field {
	return f.applyXY(g, func(a, b float64) float64 { return a * b })
}

func (f *Field) applyXY(g *Field, op func(a, b float64) float64) *Field {
	if g.Rank != Rank2D || g.Nx != f.Nx || g.Ny != f.Ny {
		panic(fmt.Errorf("XY operand must be a %dx%d 2D field", f.Nx, f.Ny))
	}
	r := NewLike(f)
	for x := 0; x < f.Nx; x++ {
		for y := 0; y < f.Ny; y++ {
			gv := g.data[y+g.Ny*x]
			for z := 0; z < f.Nz; z++ {
				ind := f.Index(x, y, z)
				r.data[ind] = op(f.data[ind], gv)
			}
		}
	}
	if f.HasParallelSlices() {
		r.yup, r.ydown = f.yup.applyXY(g, op), f.ydown.applyXY(g, op)
	}
	return r
}

package difops

import (
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

/*
DivPar is the parallel divergence B * d/dy(f / B) / sqrt(g_22).

From the cell centre the derivative of f/B spans the cells either side, and the
parallel length is averaged over the three cells:

	D = 0.5*(dy[y+1] sqrt(g_22[y+1]) + dy[y-1] sqrt(g_22[y-1])) + dy[y] sqrt(g_22[y])

From YLOW to the cell centre, f is divided by B averaged onto the faces and
differenced across the cell, the parallel length is that of the cell.
*/
func (o *Ops) DivPar(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	var (
		s   scheme
		out types.CellLoc
		c   = o.Mesh.Coords
	)
	if s, out, err = o.resolve(FamDivPar, f.Rank, f, outloc, method); err != nil {
		return
	}
	var (
		fOverB    *field.Field
		staggered = f.Location == types.CELL_YLOW
	)
	if staggered {
		fOverB = f.DivXY(o.faceB())
	} else {
		fOverB = f.DivXY(c.Bxy)
	}
	result = o.runDeriv(s, types.DirY, fOverB)
	result.SetLocation(out)
	o.scaleInterior(result, func(x, y int) float64 {
		var length float64
		if staggered {
			length = c.ParallelLength(x, y)
		} else {
			D := 0.5*(c.ParallelLength(x, y+1)+c.ParallelLength(x, y-1)) + c.ParallelLength(x, y)
			length = 0.5 * D
		}
		return c.Bxy.Get(x, y, 0) / length
	})
	return
}

// faceB is B averaged onto the lower Y face of each cell
func (o *Ops) faceB() (fb *field.Field) {
	B := o.Mesh.Coords.Bxy
	fb = field.NewLike(B)
	for x := 0; x < B.Nx; x++ {
		for y := 0; y < B.Ny; y++ {
			fb.Set(x, y, 0, atLoc(B, x, y, types.CELL_YLOW))
		}
	}
	return
}

package field

import (
	"iter"

	"github.com/notargets/difops/utils"
)

type RegionType uint8

const (
	RGN_ALL     RegionType = iota
	RGN_NOBNDRY            // Interior: no boundary cells in X or Y
	RGN_NOX                // No boundary cells in X, every Y row
)

// Region is a block of cells, X and Y limits are inclusive, all of Z is included
type Region struct {
	Xstart, Xend int
	Ystart, Yend int
	Nz           int
}

func (r Region) Size() int {
	if r.Xend < r.Xstart || r.Yend < r.Ystart {
		return 0
	}
	return (r.Xend - r.Xstart + 1) * (r.Yend - r.Ystart + 1) * r.Nz
}

// All iterates the region with Z fastest, matching the 3D field layout
func (r Region) All() iter.Seq[Ind] {
	return func(yield func(Ind) bool) {
		for x := r.Xstart; x <= r.Xend; x++ {
			for y := r.Ystart; y <= r.Yend; y++ {
				for z := 0; z < r.Nz; z++ {
					if !yield(Ind{X: x, Y: y, Z: z, nz: r.Nz}) {
						return
					}
				}
			}
		}
	}
}

// Flat returns the storage indices of the region within f
func (r Region) Flat(f *Field) utils.Index {
	var (
		xr = [2]int{r.Xstart, r.Xend + 1}
		yr = [2]int{r.Ystart, r.Yend + 1}
	)
	if f.Rank == Rank2D {
		return utils.NewR2(f.Nx, f.Ny).Range(xr, yr)
	}
	return utils.NewR3(f.Nx, f.Ny, f.Nz).Range(xr, yr, ":")
}

package difops

import (
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

// loopS applies a derivative kernel at every cell of the region, the result has
// the shape of f
func loopS(f *field.Field, r field.Region, dir types.Direction, reach int, mode loopMode,
	kernel DerivKernel) (result *field.Field) {
	var (
		sp = newSampler(f, dir, reach, mode)
	)
	result = field.NewLike(f)
	for i := range r.All() {
		result.Assign(i, kernel(sp.at(i)))
	}
	return
}

// loopRS applies an advection kernel with the velocity v at each cell. The result
// is 3D if either input is 3D.
func loopRS(v, f *field.Field, r field.Region, dir types.Direction, reach int, mode loopMode,
	kernel AdvectKernel) (result *field.Field) {
	var (
		sp = newSampler(f, dir, reach, mode)
	)
	result = field.NewResult(v, f)
	for i := range r.All() {
		result.Assign(i, kernel(v.At(i), sp.at(i)))
	}
	return
}

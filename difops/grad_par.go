package difops

import (
	"math"

	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

/*
GradPar is the derivative along the magnetic field, DDY(f) / sqrt(g_22). For a
YLOW result the metric and spacing are averaged onto the face.
*/
func (o *Ops) GradPar(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.indexDeriv(FamGradPar, f, outloc, method); err != nil {
		return
	}
	return o.perParallelLength(result), nil
}

/*
VparGradPar is v * GradPar(f) where the upwind side of each cell follows the
sign of v in that cell. Both fields must be at the same location.
*/
func (o *Ops) VparGradPar(v, f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.indexAdvect(FamVparGradPar, v, f, outloc, method); err != nil {
		return
	}
	return o.perParallelLength(result), nil
}

// perParallelLength divides by dy * sqrt(g_22) at the location of r
func (o *Ops) perParallelLength(r *field.Field) *field.Field {
	c := o.Mesh.Coords
	return o.scaleInterior(r, func(x, y int) float64 {
		return 1. / (atLoc(c.Dy, x, y, r.Location) * math.Sqrt(atLoc(c.G_22, x, y, r.Location)))
	})
}

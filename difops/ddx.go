package difops

import (
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

// DDX is the derivative in X divided by dx
func (o *Ops) DDX(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.IndexDDX(f, outloc, method); err != nil {
		return
	}
	return o.perSpacing(result, o.Mesh.Coords.Dx, 1), nil
}

// DDY is the derivative in Y divided by dy, at the output location
func (o *Ops) DDY(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.IndexDDY(f, outloc, method); err != nil {
		return
	}
	return o.perSpacing(result, o.Mesh.Coords.Dy, 1), nil
}

func (o *Ops) DDZ(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.IndexDDZ(f, outloc, method); err != nil {
		return
	}
	dz := o.Mesh.Dz()
	return o.scaleInterior(result, func(int, int) float64 { return 1. / dz }), nil
}

func (o *Ops) D2DX2(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.IndexD2DX2(f, outloc, method); err != nil {
		return
	}
	return o.perSpacing(result, o.Mesh.Coords.Dx, 2), nil
}

func (o *Ops) D2DY2(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.IndexD2DY2(f, outloc, method); err != nil {
		return
	}
	return o.perSpacing(result, o.Mesh.Coords.Dy, 2), nil
}

func (o *Ops) D2DZ2(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	if result, err = o.IndexD2DZ2(f, outloc, method); err != nil {
		return
	}
	dz := o.Mesh.Dz()
	return o.scaleInterior(result, func(int, int) float64 { return 1. / (dz * dz) }), nil
}

func (o *Ops) perSpacing(r, spacing *field.Field, order int) *field.Field {
	return o.scaleInterior(r, func(x, y int) float64 {
		d := atLoc(spacing, x, y, r.Location)
		if order == 2 {
			return 1. / (d * d)
		}
		return 1. / d
	})
}

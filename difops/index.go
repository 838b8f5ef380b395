package difops

import (
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

/*
Index space derivatives: no division by the grid spacing. outloc may be
CELL_DEFAULT for the input location; method may be DEFAULT for the configured
method.
*/

func (o *Ops) IndexDDX(f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexDeriv(FamDDX, f, outloc, method)
}

func (o *Ops) IndexDDY(f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexDeriv(FamDDY, f, outloc, method)
}

// IndexDDZ of a 2D field is zero
func (o *Ops) IndexDDZ(f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexDeriv(FamDDZ, f, outloc, method)
}

func (o *Ops) IndexD2DX2(f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexDeriv(FamD2DX2, f, outloc, method)
}

func (o *Ops) IndexD2DY2(f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexDeriv(FamD2DY2, f, outloc, method)
}

func (o *Ops) IndexD2DZ2(f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexDeriv(FamD2DZ2, f, outloc, method)
}

// IndexVDDX is v * d/dx f with the upwind side chosen per cell from the sign of v
func (o *Ops) IndexVDDX(v, f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexAdvect(FamVDDX, v, f, outloc, method)
}

func (o *Ops) IndexVDDY(v, f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexAdvect(FamVDDY, v, f, outloc, method)
}

func (o *Ops) IndexVDDZ(v, f *field.Field, outloc types.CellLoc, method Difop) (*field.Field, error) {
	return o.indexAdvect(FamVDDZ, v, f, outloc, method)
}

func (o *Ops) indexDeriv(fam Family, f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	var (
		s   scheme
		out types.CellLoc
		dir = fam.Info().Dir
	)
	if s, out, err = o.resolve(fam, f.Rank, f, outloc, method); err != nil {
		return
	}
	if dir == types.DirZ && !f.Is3D() {
		result = field.NewLike(f)
	} else {
		result = o.runDeriv(s, dir, f)
	}
	result.SetLocation(out)
	return
}

func (o *Ops) indexAdvect(fam Family, v, f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	var (
		s    scheme
		out  types.CellLoc
		dir  = fam.Info().Dir
		rank = wider(v, f).Rank
	)
	if err = o.checkField(v); err != nil {
		return
	}
	if v.Location != f.Location {
		err = preconditionf("%s velocity at %s, field at %s", fam, v.Location, f.Location)
		return
	}
	if s, out, err = o.resolve(fam, rank, f, outloc, method); err != nil {
		return
	}
	if dir == types.DirZ && !f.Is3D() {
		result = field.NewResult(v, f)
	} else {
		result = o.runAdvect(s, dir, v, f)
	}
	result.SetLocation(out)
	return
}

// Package difops evaluates finite difference and spectral operators on fields:
// derivatives along each mesh direction, the parallel gradient, divergence and
// advection, and the perpendicular Laplacian. Each operator picks a kernel from
// a dispatch table keyed by field rank, input and output cell locations and
// method; the method defaults to the one configured for the operator.
package difops

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/notargets/difops/field"
	"github.com/notargets/difops/mesh"
	"github.com/notargets/difops/types"
)

type Ops struct {
	Mesh  *mesh.Mesh
	Log   logrus.FieldLogger
	cache *SchemeCache
}

// NewOps binds the operators to a mesh. Methods left as DEFAULT are looked up in
// src, which may be nil to use the built in defaults.
func NewOps(m *mesh.Mesh, src OptionSource, log logrus.FieldLogger) *Ops {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Ops{
		Mesh:  m,
		Log:   log,
		cache: NewSchemeCache(src, log),
	}
}

func (o *Ops) Cache() *SchemeCache { return o.cache }

func (o *Ops) method(fam Family, method Difop) (Difop, error) {
	if method == DEFAULT {
		return o.cache.Resolve(fam)
	}
	return method, nil
}

func preconditionf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrPreconditionViolation)
}

func checkLocation(loc types.CellLoc) error {
	switch loc {
	case types.CELL_CENTRE, types.CELL_YLOW:
		return nil
	}
	return preconditionf("fields must be at %s or %s, not %s", types.CELL_CENTRE, types.CELL_YLOW, loc)
}

func (o *Ops) checkField(f *field.Field) (err error) {
	if err = o.Mesh.CheckField(f); err != nil {
		return preconditionf("%v", err)
	}
	return checkLocation(f.Location)
}

// checkScheme checks the guard cells against the kernel reach and, for kernels
// that follow field lines through the parallel slices, that the slices exist
func (o *Ops) checkScheme(fam Family, s scheme, f *field.Field) error {
	dir := fam.Info().Dir
	if gw := o.Mesh.GuardWidth(dir); gw < s.reach {
		return preconditionf("%s needs %d guard cells in %s, the mesh has %d", fam, s.reach, dir, gw)
	}
	if s.mode == modeSlices && f.Is3D() && !o.Mesh.Transform.IsIdentity() && !f.HasParallelSlices() {
		return preconditionf("%s on a field without parallel slices, calculate them first or use a field aligned method", fam)
	}
	return nil
}

// resolve finds the kernel for f and checks it can be applied
func (o *Ops) resolve(fam Family, rank field.Rank, f *field.Field, outloc types.CellLoc,
	method Difop) (s scheme, out types.CellLoc, err error) {
	if err = o.checkField(f); err != nil {
		return
	}
	out = outloc.Resolve(f.Location)
	if method, err = o.method(fam, method); err != nil {
		return
	}
	if s, err = lookup(fam, rank, f.Location, out, method); err != nil {
		return
	}
	if (f.Location == types.CELL_YLOW || out == types.CELL_YLOW) && !o.Mesh.StaggerGrids {
		err = preconditionf("%s at %s requires a mesh with staggered grids", fam, types.CELL_YLOW)
		return
	}
	err = o.checkScheme(fam, s, f)
	return
}

func (o *Ops) interior(f *field.Field) field.Region {
	return o.Mesh.RegionFor(f, field.RGN_NOBNDRY)
}

func (o *Ops) runDeriv(s scheme, dir types.Direction, f *field.Field) *field.Field {
	rgn := o.interior(f)
	if s.mode == modeAligned {
		fa := o.Mesh.ToFieldAligned(f)
		return o.Mesh.FromFieldAligned(loopS(fa, rgn, dir, s.reach, modeDirect, s.deriv))
	}
	return loopS(f, rgn, dir, s.reach, s.mode, s.deriv)
}

func (o *Ops) runAdvect(s scheme, dir types.Direction, v, f *field.Field) *field.Field {
	rgn := o.interior(wider(v, f))
	if s.mode == modeAligned {
		// The upwind side is chosen from the aligned velocity
		va, fa := o.Mesh.ToFieldAligned(v), o.Mesh.ToFieldAligned(f)
		return o.Mesh.FromFieldAligned(loopRS(va, fa, rgn, dir, s.reach, modeDirect, s.advect))
	}
	return loopRS(v, f, rgn, dir, s.reach, s.mode, s.advect)
}

// wider is the operand with more dimensions, a when they match
func wider(a, b *field.Field) *field.Field {
	if b.Is3D() && !a.Is3D() {
		return b
	}
	return a
}

// atLoc reads a 2D coordinate quantity at (x, y), averaged onto the lower Y face
// for YLOW
func atLoc(g *field.Field, x, y int, loc types.CellLoc) float64 {
	if loc == types.CELL_YLOW && y > 0 {
		return 0.5 * (g.Get(x, y-1, 0) + g.Get(x, y, 0))
	}
	return g.Get(x, y, 0)
}

// scaleInterior multiplies each interior cell of r by fn(x, y)
func (o *Ops) scaleInterior(r *field.Field, fn func(x, y int) float64) *field.Field {
	rgn := o.interior(r)
	for x := rgn.Xstart; x <= rgn.Xend; x++ {
		for y := rgn.Ystart; y <= rgn.Yend; y++ {
			fac := fn(x, y)
			for z := 0; z < rgn.Nz; z++ {
				r.Set(x, y, z, r.Get(x, y, z)*fac)
			}
		}
	}
	return r
}

package difops

import (
	"math"

	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

// Stencil holds five samples along one direction centred on a cell
type Stencil struct {
	MM, M, C, P, PP float64
}

type loopMode uint8

const (
	modeDirect  loopMode = iota // Neighbours by index offset
	modeSlices                  // Y neighbours from the parallel slices
	modeAligned                 // Transform to field aligned, then modeDirect, then back
)

var loopModeNames = []string{"direct", "slices", "aligned"}

func (m loopMode) String() string { return loopModeNames[m] }

/*
sampler builds the stencils of f along dir. Samples beyond reach are not read
and are set to NaN, so a kernel that uses them poisons its result rather than
reading guard cells that may not exist.

In slice mode the Y neighbours come from f.Ydown() at y-1 and f.Yup() at y+1,
the two cells beyond are never available.
*/
type sampler struct {
	f, up, down *field.Field
	dx, dy, dz  int
	wide        bool
}

func newSampler(f *field.Field, dir types.Direction, reach int, mode loopMode) (sp sampler) {
	sp = sampler{f: f, up: f, down: f, wide: reach > 1}
	switch dir {
	case types.DirX:
		sp.dx = 1
	case types.DirY:
		sp.dy = 1
		if mode == modeSlices {
			sp.up, sp.down = f.Yup(), f.Ydown()
			sp.wide = false
		}
	default:
		sp.dz = 1
	}
	return
}

func (sp sampler) at(i field.Ind) (s Stencil) {
	s.C = sp.f.At(i)
	s.M = sp.down.At(i.Offset(-sp.dx, -sp.dy, -sp.dz))
	s.P = sp.up.At(i.Offset(sp.dx, sp.dy, sp.dz))
	if sp.wide {
		s.MM = sp.f.At(i.Offset(-2*sp.dx, -2*sp.dy, -2*sp.dz))
		s.PP = sp.f.At(i.Offset(2*sp.dx, 2*sp.dy, 2*sp.dz))
	} else {
		s.MM, s.PP = math.NaN(), math.NaN()
	}
	return
}

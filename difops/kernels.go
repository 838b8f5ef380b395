package difops

import (
	"github.com/notargets/difops/utils"
)

// DerivKernel is a derivative in index space from a stencil
type DerivKernel func(s Stencil) float64

// AdvectKernel is v times a derivative in index space, v picks the upwind side
type AdvectKernel func(v float64, s Stencil) float64

const wenoSmall = 1.e-8

/*
First derivatives, input and output at the same location
*/
func DerivC2(s Stencil) float64 { return 0.5 * (s.P - s.M) }

func DerivC4(s Stencil) float64 { return (8.*s.P - 8.*s.M + s.MM - s.PP) / 12. }

/*
First derivatives between staggered locations. A YLOW value at index y is on
the lower face of the centre cell y.
*/
// Low to centre: the faces of centre cell y are y and y+1
func DerivLtoCC2(s Stencil) float64 { return s.P - s.C }

func DerivLtoCC4(s Stencil) float64 { return (27.*(s.P-s.C) - (s.PP - s.M)) / 24. }

// Centre to low: the face y is between centres y-1 and y
func DerivCtoLC2(s Stencil) float64 { return s.C - s.M }

func DerivCtoLC4(s Stencil) float64 { return (27.*(s.C-s.M) - (s.P - s.MM)) / 24. }

// Second derivatives
func SecondC2(s Stencil) float64 { return s.P + s.M - 2.*s.C }

func SecondC4(s Stencil) float64 {
	return (-s.PP + 16.*s.P - 30.*s.C + 16.*s.M - s.MM) / 12.
}

// Advection
func AdvectU1(v float64, s Stencil) float64 {
	if v >= 0 {
		return v * (s.C - s.M)
	}
	return v * (s.P - s.C)
}

func AdvectU2(v float64, s Stencil) float64 {
	if v >= 0 {
		return v * (1.5*s.C - 2.*s.M + 0.5*s.MM)
	}
	return v * (-0.5*s.PP + 2.*s.P - 1.5*s.C)
}

func AdvectC2(v float64, s Stencil) float64 { return v * DerivC2(s) }

func AdvectC4(v float64, s Stencil) float64 { return v * DerivC4(s) }

/*
AdvectW3 is the three point WENO scheme. The smoothness ratio r compares the
curvature on the upwind side with the curvature at the cell; in smooth regions
the weight w vanishes and the central difference is returned, at a
discontinuity w tends to one and the upwind biased difference is returned.
*/
func AdvectW3(v float64, s Stencil) float64 {
	var deriv float64
	if v > 0 {
		// Left biased
		r := (wenoSmall + utils.SQ(s.C-2.*s.M+s.MM)) / (wenoSmall + utils.SQ(s.P-2.*s.C+s.M))
		w := 1. / (1. + 2.*r*r)
		deriv = 0.5*(s.P-s.M) - 0.5*w*(-s.MM+3.*s.M-3.*s.C+s.P)
	} else {
		// Right biased
		r := (wenoSmall + utils.SQ(s.PP-2.*s.P+s.C)) / (wenoSmall + utils.SQ(s.P-2.*s.C+s.M))
		w := 1. / (1. + 2.*r*r)
		deriv = 0.5*(s.P-s.M) - 0.5*w*(-s.M+3.*s.C-3.*s.P+s.PP)
	}
	return v * deriv
}

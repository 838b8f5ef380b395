package difops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

func TestKernels(t *testing.T) {
	var (
		linear    = Stencil{0, 1, 2, 3, 4}
		quadratic = Stencil{4, 1, 0, 1, 4}
		tol       = 1.e-14
	)
	// First derivatives are exact for linear data
	{
		assert.InDelta(t, 1., DerivC2(linear), tol)
		assert.InDelta(t, 1., DerivC4(linear), tol)
		assert.InDelta(t, 1., DerivLtoCC2(linear), tol)
		assert.InDelta(t, 1., DerivLtoCC4(linear), tol)
		assert.InDelta(t, 1., DerivCtoLC2(linear), tol)
		assert.InDelta(t, 1., DerivCtoLC4(linear), tol)
	}
	// Second derivatives are exact for quadratic data
	{
		assert.InDelta(t, 2., SecondC2(quadratic), tol)
		assert.InDelta(t, 2., SecondC4(quadratic), tol)
		// Fourth order uses the outer points
		s := Stencil{16, 1, 0, 1, 16}
		assert.InDelta(t, 2., SecondC2(s), tol)
		assert.NotEqual(t, SecondC2(s), SecondC4(s))
	}
	// Upwind picks the side from the sign of v
	{
		s := Stencil{0, 1, 4, 9, 16}
		assert.InDelta(t, 6., AdvectU1(2, s), tol)
		assert.InDelta(t, -10., AdvectU1(-2, s), tol)
		assert.InDelta(t, 4., AdvectU2(1, s), tol)
		assert.InDelta(t, -4., AdvectU2(-1, s), tol)
		assert.InDelta(t, 8., AdvectC2(2, s), tol)
		assert.InDelta(t, 2*DerivC4(s), AdvectC4(2, s), tol)
	}
	// Reach one kernels never read the outer samples
	{
		s := Stencil{math.NaN(), 1, 2, 3, math.NaN()}
		assert.False(t, math.IsNaN(DerivC2(s)))
		assert.False(t, math.IsNaN(AdvectU1(1, s)))
		assert.False(t, math.IsNaN(SecondC2(s)))
		assert.True(t, math.IsNaN(DerivC4(s)))
	}
}

func TestWENO(t *testing.T) {
	// Smooth data: equal to the central difference
	{
		s := Stencil{0, 1, 2, 3, 4}
		assert.InDelta(t, AdvectC2(1, s), AdvectW3(1, s), 1.e-14)
		assert.InDelta(t, AdvectC2(-1, s), AdvectW3(-1, s), 1.e-14)
		h := 0.01
		s = Stencil{math.Sin(-2 * h), math.Sin(-h), 0, math.Sin(h), math.Sin(2 * h)}
		assert.InDelta(t, AdvectC2(1, s), AdvectW3(1, s), 1.e-6)
		assert.InDelta(t, AdvectC2(-1, s), AdvectW3(-1, s), 1.e-6)
	}
	// At a step the upwind side is used and no overshoot is produced
	{
		s := Stencil{0, 0, 0, 1, 1}
		w3 := AdvectW3(1, s)
		assert.InDelta(t, 0., w3, 1.e-6)
		assert.LessOrEqual(t, math.Abs(w3), math.Abs(AdvectC2(1, s)))
		s = Stencil{0, 0, 1, 1, 1}
		w3 = AdvectW3(-1, s)
		assert.InDelta(t, 0., w3, 1.e-6)
	}
	// Zero velocity
	assert.Equal(t, 0., AdvectW3(0, Stencil{0, 1, 5, 2, 3}))
}

func TestParseDifop(t *testing.T) {
	d, err := ParseDifop("C4_FA")
	assert.NoError(t, err)
	assert.Equal(t, C4_FA, d)
	assert.Equal(t, "c4_fa", d.String())
	assert.True(t, d.IsAligned())
	assert.Equal(t, C4, d.Base())
	assert.Equal(t, W3_FA, W3.Aligned())
	assert.Equal(t, FFT, FFT.Aligned())
	assert.False(t, FFT.IsAligned())
	_, err = ParseDifop("c6")
	assert.ErrorIs(t, err, ErrInvalidConfigurationValue)
	for name, d := range DifopNameMap {
		assert.Equal(t, name, d.String())
	}
}

func TestSampler(t *testing.T) {
	f := field.New3D(6, 6, 4).SetFunc(func(x, y, z int) float64 {
		return float64(100*x + 10*y + z)
	})
	i := field.NewInd(2, 3, 0, 4)
	{ // Index offsets, Z wraps
		sp := newSampler(f, types.DirX, 2, modeDirect)
		assert.Equal(t, Stencil{30, 130, 230, 330, 430}, sp.at(i))
		sp = newSampler(f, types.DirY, 2, modeDirect)
		assert.Equal(t, Stencil{210, 220, 230, 240, 250}, sp.at(i))
		sp = newSampler(f, types.DirZ, 2, modeDirect)
		assert.Equal(t, Stencil{232, 233, 230, 231, 232}, sp.at(i))
	}
	{ // Samples beyond reach are NaN
		s := newSampler(f, types.DirX, 1, modeDirect).at(i)
		assert.Equal(t, 130., s.M)
		assert.Equal(t, 330., s.P)
		assert.True(t, math.IsNaN(s.MM) && math.IsNaN(s.PP))
	}
	{ // Slices supply the Y neighbours and nothing further
		up := field.NewLike(f).Fill(1)
		down := field.NewLike(f).Fill(-1)
		f.SetParallelSlices(up, down)
		s := newSampler(f, types.DirY, 2, modeSlices).at(i)
		assert.Equal(t, -1., s.M)
		assert.Equal(t, 230., s.C)
		assert.Equal(t, 1., s.P)
		assert.True(t, math.IsNaN(s.MM) && math.IsNaN(s.PP))
		// Slices only apply along Y
		assert.Equal(t, 330., newSampler(f, types.DirX, 1, modeSlices).at(i).P)
	}
}

package mesh

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/notargets/difops/field"
)

/*
ParallelTransform maps 3D fields between the mesh's native coordinates and
field aligned coordinates, and provides the values along field lines at the
neighbouring Y cells (parallel slices). 2D fields pass through unchanged.
*/
type ParallelTransform interface {
	ToFieldAligned(f *field.Field) *field.Field
	FromFieldAligned(f *field.Field) *field.Field
	CalcParallelSlices(f *field.Field)
	IsIdentity() bool
}

// Identity is used when the mesh is already aligned with the magnetic field
type Identity struct{}

func (Identity) ToFieldAligned(f *field.Field) *field.Field   { return f }
func (Identity) FromFieldAligned(f *field.Field) *field.Field { return f }
func (Identity) CalcParallelSlices(f *field.Field)            { f.ClearParallelSlices() }
func (Identity) IsIdentity() bool                             { return true }

/*
ShiftedMetric describes a mesh where field lines advance in Z by ZShift(x,y):
a field line is z - ZShift(x,y) = const. The field aligned value at (x,y,a) is the
native value at z = a + ZShift(x,y). Shifts in Z are applied as phase shifts of
the Fourier modes, the Nyquist mode of an even length row is not shifted so the
transform is an exact bijection.

The FFT plan and coefficient buffer are reused between calls, so a ShiftedMetric
must not be used from more than one goroutine at a time.
*/
type ShiftedMetric struct {
	ZShift  *field.Field // 2D
	Zlength float64
	fft     *fourier.FFT
	coeffs  []complex128
}

func NewShiftedMetric(zShift *field.Field, zlength float64) *ShiftedMetric {
	if zShift.Rank != field.Rank2D {
		panic(fmt.Errorf("zShift must be a 2D field"))
	}
	return &ShiftedMetric{ZShift: zShift, Zlength: zlength}
}

func (sm *ShiftedMetric) IsIdentity() bool { return false }

func (sm *ShiftedMetric) ToFieldAligned(f *field.Field) *field.Field {
	if !f.Is3D() {
		return f
	}
	return sm.shiftAll(f, 1)
}

func (sm *ShiftedMetric) FromFieldAligned(f *field.Field) *field.Field {
	if !f.Is3D() {
		return f
	}
	return sm.shiftAll(f, -1)
}

func (sm *ShiftedMetric) shiftAll(f *field.Field, sign float64) (r *field.Field) {
	r = field.NewLike(f)
	for x := 0; x < f.Nx; x++ {
		for y := 0; y < f.Ny; y++ {
			sm.shiftRow(f, r, x, y, y, sign*sm.ZShift.Get(x, y, 0))
		}
	}
	return
}

// CalcParallelSlices attaches yup and ydown: yup at y+1 holds the value on the
// field line through (x,y,z), likewise ydown at y-1
func (sm *ShiftedMetric) CalcParallelSlices(f *field.Field) {
	if !f.Is3D() {
		return
	}
	var (
		yup   = field.NewLike(f)
		ydown = field.NewLike(f)
	)
	// Rows with no neighbour to shift from keep the unshifted values
	copy(yup.Values(), f.Values())
	copy(ydown.Values(), f.Values())
	for x := 0; x < f.Nx; x++ {
		for y := 0; y < f.Ny; y++ {
			if y+1 < f.Ny {
				angle := sm.ZShift.Get(x, y+1, 0) - sm.ZShift.Get(x, y, 0)
				sm.shiftRow(f, yup, x, y+1, y+1, angle)
			}
			if y-1 >= 0 {
				angle := sm.ZShift.Get(x, y-1, 0) - sm.ZShift.Get(x, y, 0)
				sm.shiftRow(f, ydown, x, y-1, y-1, angle)
			}
		}
	}
	f.SetParallelSlices(yup, ydown)
}

// shiftRow writes src(x, ySrc, z + angle) into dst(x, yDst, z)
func (sm *ShiftedMetric) shiftRow(src, dst *field.Field, x, ySrc, yDst int, angle float64) {
	nz := src.Nz
	if sm.fft == nil || sm.fft.Len() != nz {
		sm.fft = fourier.NewFFT(nz)
		sm.coeffs = make([]complex128, nz/2+1)
	}
	var (
		lo  = src.Index(x, ySrc, 0)
		row = src.Values()[lo : lo+nz]
		out = dst.Values()[dst.Index(x, yDst, 0) : dst.Index(x, yDst, 0)+nz]
	)
	sm.fft.Coefficients(sm.coeffs, row)
	nmodes := len(sm.coeffs)
	if nz%2 == 0 {
		nmodes-- // Leave the Nyquist mode alone
	}
	for k := 1; k < nmodes; k++ {
		kwave := 2 * math.Pi * float64(k) / sm.Zlength
		sm.coeffs[k] *= cmplx.Rect(1, kwave*angle)
	}
	sm.fft.Sequence(out, sm.coeffs)
	for i := range out {
		out[i] /= float64(nz)
	}
}

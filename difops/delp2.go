package difops

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

/*
Delp2 is the perpendicular Laplacian in X and Z,

	g11 d2/dx2 + g33 d2/dz2 + 2 g13 d2/dxdz + G1 d/dx + G3 d/dz

Each X column of every Y row is Fourier transformed along Z, each mode is
differenced in X with three points, and the result transformed back. The G1 and
G3 terms are included when laplace:all_terms is set. X boundary cells are zero,
every Y row is evaluated. A 2D field has only the k = 0 mode.
*/
func (o *Ops) Delp2(f *field.Field, outloc types.CellLoc, method Difop) (result *field.Field, err error) {
	var (
		out      types.CellLoc
		allTerms bool
	)
	if _, out, err = o.resolve(FamDelp2, f.Rank, f, outloc, method); err != nil {
		return
	}
	if o.Mesh.Xstart < 1 {
		err = preconditionf("%s needs a guard cell in X, xstart = %d", FamDelp2, o.Mesh.Xstart)
		return
	}
	if allTerms, err = o.cache.AllTerms(); err != nil {
		return
	}
	if f.Is3D() {
		result = o.delp2FFT(f, allTerms)
	} else {
		result = o.delp2XY(f, allTerms)
	}
	result.SetLocation(out)
	return
}

// laplaceCoefs are the weights of f[x-1], f[x] and f[x+1] for the mode with
// wavenumber k
func (o *Ops) laplaceCoefs(x, y int, k float64, allTerms bool) (a, b, c complex128) {
	var (
		cd     = o.Mesh.Coords
		dx     = cd.Dx.Get(x, y, 0)
		g11    = cd.G11.Get(x, y, 0)
		g33    = cd.G33.Get(x, y, 0)
		g13    = cd.G13.Get(x, y, 0)
		G1, G3 float64
	)
	if allTerms {
		G1, G3 = cd.G1.Get(x, y, 0), cd.G3.Get(x, y, 0)
	}
	a = complex(g11/(dx*dx)-G1/(2.*dx), -k*g13/dx)
	b = complex(-2.*g11/(dx*dx)-k*k*g33, k*G3)
	c = complex(g11/(dx*dx)+G1/(2.*dx), k*g13/dx)
	return
}

func (o *Ops) delp2FFT(f *field.Field, allTerms bool) (result *field.Field) {
	var (
		m     = o.Mesh
		rgn   = m.Region(field.RGN_NOX)
		nz    = f.Nz
		nk    = nz/2 + 1
		fft   = fourier.NewFFT(nz)
		ft    = make([][]complex128, f.Nx)
		delft = make([]complex128, nk)
		data  = f.Values()
	)
	result = field.NewLike(f)
	for x := range ft {
		ft[x] = make([]complex128, nk)
	}
	for y := rgn.Ystart; y <= rgn.Yend; y++ {
		for x := 0; x < f.Nx; x++ {
			lo := f.Index(x, y, 0)
			fft.Coefficients(ft[x], data[lo:lo+nz])
		}
		for x := rgn.Xstart; x <= rgn.Xend; x++ {
			for kz := 0; kz < nk; kz++ {
				k := 2. * math.Pi * float64(kz) / m.Coords.Zlength
				a, b, c := o.laplaceCoefs(x, y, k, allTerms)
				delft[kz] = a*ft[x-1][kz] + b*ft[x][kz] + c*ft[x+1][kz]
			}
			lo := result.Index(x, y, 0)
			row := result.Values()[lo : lo+nz]
			fft.Sequence(row, delft)
			for z := range row {
				row[z] /= float64(nz)
			}
		}
	}
	return
}

func (o *Ops) delp2XY(f *field.Field, allTerms bool) (result *field.Field) {
	rgn := o.Mesh.RegionFor(f, field.RGN_NOX)
	result = field.NewLike(f)
	for y := rgn.Ystart; y <= rgn.Yend; y++ {
		for x := rgn.Xstart; x <= rgn.Xend; x++ {
			a, b, c := o.laplaceCoefs(x, y, 0, allTerms)
			result.Set(x, y, 0, real(a)*f.Get(x-1, y, 0)+real(b)*f.Get(x, y, 0)+real(c)*f.Get(x+1, y, 0))
		}
	}
	return
}

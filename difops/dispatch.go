package difops

import (
	"fmt"
	"sort"

	"github.com/notargets/difops/field"
	"github.com/notargets/difops/types"
)

// Family is a group of operators that share a dispatch table and a configured method
type Family uint8

const (
	FamDDX Family = iota
	FamDDY
	FamDDZ
	FamD2DX2
	FamD2DY2
	FamD2DZ2
	FamVDDX
	FamVDDY
	FamVDDZ
	FamGradPar
	FamDivPar
	FamVparGradPar
	FamDelp2
	numFamilies
)

type familyInfo struct {
	Name      string
	OptionKey string // Key in the operators section
	Default   string
	Dir       types.Direction
}

var families = [numFamilies]familyInfo{
	FamDDX:         {"DDX", "ddx", "c2", types.DirX},
	FamDDY:         {"DDY", "ddy", "c2", types.DirY},
	FamDDZ:         {"DDZ", "ddz", "c2", types.DirZ},
	FamD2DX2:       {"D2DX2", "d2dx2", "c2", types.DirX},
	FamD2DY2:       {"D2DY2", "d2dy2", "c2", types.DirY},
	FamD2DZ2:       {"D2DZ2", "d2dz2", "c2", types.DirZ},
	FamVDDX:        {"VDDX", "vddx", "u1", types.DirX},
	FamVDDY:        {"VDDY", "vddy", "u1", types.DirY},
	FamVDDZ:        {"VDDZ", "vddz", "u1", types.DirZ},
	FamGradPar:     {"Grad_par", "grad_par", "c2", types.DirY},
	FamDivPar:      {"Div_par", "div_par", "c2", types.DirY},
	FamVparGradPar: {"Vpar_Grad_par", "vpar_grad_par", "u1", types.DirY},
	FamDelp2:       {"Delp2", "delp2", "fft", types.DirX},
}

func (fam Family) String() string {
	if fam < numFamilies {
		return families[fam].Name
	}
	return fmt.Sprintf("Family(%d)", fam)
}

func (fam Family) Info() familyInfo { return families[fam] }

type dispatchKey struct {
	Rank    field.Rank
	In, Out types.CellLoc
	Method  Difop
}

// scheme is a resolved kernel: exactly one of deriv and advect is set, except
// for the spectral Laplacian which has neither
type scheme struct {
	deriv  DerivKernel
	advect AdvectKernel
	reach  int
	mode   loopMode
}

type table map[dispatchKey]scheme

var (
	centre = types.CELL_CENTRE
	ylow   = types.CELL_YLOW
)

var reaches = map[Difop]int{U1: 1, U2: 2, C2: 1, C4: 2, W3: 2}

var derivKernels = map[Difop]DerivKernel{C2: DerivC2, C4: DerivC4}

var secondKernels = map[Difop]DerivKernel{C2: SecondC2, C4: SecondC4}

var advectKernels = map[Difop]AdvectKernel{
	U1: AdvectU1, U2: AdvectU2, C2: AdvectC2, C4: AdvectC4, W3: AdvectW3,
}

// Staggered kernels keyed by input and output location
var staggerKernels = map[[2]types.CellLoc]map[Difop]DerivKernel{
	{ylow, centre}: {C2: DerivLtoCC2, C4: DerivLtoCC4},
	{centre, ylow}: {C2: DerivCtoLC2, C4: DerivCtoLC4},
}

func (t table) derivs(rank field.Rank, in, out types.CellLoc, mode loopMode, kernels map[Difop]DerivKernel,
	methods ...Difop) table {
	for _, m := range methods {
		base := m.Base()
		t[dispatchKey{rank, in, out, m}] = scheme{deriv: kernels[base], reach: reaches[base], mode: mode}
	}
	return t
}

func (t table) advects(rank field.Rank, in, out types.CellLoc, mode loopMode, methods ...Difop) table {
	for _, m := range methods {
		base := m.Base()
		t[dispatchKey{rank, in, out, m}] = scheme{advect: advectKernels[base], reach: reaches[base], mode: mode}
	}
	return t
}

/*
Direction X and Z tables: no field alignment and no staggering across locations.
2D fields are only differenced at cell centres.
*/
func perpDerivTable(kernels map[Difop]DerivKernel) table {
	return table{}.
		derivs(field.Rank2D, centre, centre, modeDirect, kernels, C2, C4).
		derivs(field.Rank3D, centre, centre, modeDirect, kernels, C2, C4).
		derivs(field.Rank3D, ylow, ylow, modeDirect, kernels, C2, C4)
}

func perpAdvectTable() table {
	return table{}.
		advects(field.Rank2D, centre, centre, modeDirect, U1, U2, C2, C4, W3).
		advects(field.Rank3D, centre, centre, modeDirect, U1, U2, C2, C4, W3).
		advects(field.Rank3D, ylow, ylow, modeDirect, U1, U2, C2, C4, W3)
}

/*
Direction Y tables. 3D fields use the parallel slices for the plain methods, which
reach only one cell, and transform to field aligned coordinates for the _FA
methods. 2D fields have no slices so the _FA methods are the plain ones.
*/
func parDerivTable(kernels map[Difop]DerivKernel, staggered bool) (t table) {
	t = table{}.
		derivs(field.Rank2D, centre, centre, modeDirect, kernels, C2, C4, C2_FA, C4_FA).
		derivs(field.Rank3D, centre, centre, modeSlices, kernels, C2).
		derivs(field.Rank3D, centre, centre, modeAligned, kernels, C2_FA, C4_FA)
	if staggered {
		for locs, sk := range staggerKernels {
			t.derivs(field.Rank3D, locs[0], locs[1], modeSlices, sk, C2).
				derivs(field.Rank3D, locs[0], locs[1], modeAligned, sk, C2_FA, C4_FA)
		}
	}
	return
}

func parAdvectTable() table {
	return table{}.
		advects(field.Rank2D, centre, centre, modeDirect, U1, U2, C2, C4, W3, U1_FA, U2_FA, C2_FA, C4_FA, W3_FA).
		advects(field.Rank3D, centre, centre, modeSlices, U1, C2).
		advects(field.Rank3D, centre, centre, modeAligned, U1_FA, U2_FA, C2_FA, C4_FA, W3_FA)
}

// Div_par: centre to centre uses the central kernels on f/B, low to centre uses
// the staggered kernel on f divided by B at the cell faces
func divParTable() table {
	return table{}.
		derivs(field.Rank2D, centre, centre, modeDirect, derivKernels, C2, C4, C2_FA, C4_FA).
		derivs(field.Rank3D, centre, centre, modeSlices, derivKernels, C2).
		derivs(field.Rank3D, centre, centre, modeAligned, derivKernels, C2_FA, C4_FA).
		derivs(field.Rank3D, ylow, centre, modeSlices, staggerKernels[[2]types.CellLoc{ylow, centre}], C2).
		derivs(field.Rank3D, ylow, centre, modeAligned, staggerKernels[[2]types.CellLoc{ylow, centre}], C2_FA)
}

func delp2Table() table {
	t := table{}
	t[dispatchKey{field.Rank2D, centre, centre, FFT}] = scheme{reach: 1}
	t[dispatchKey{field.Rank3D, centre, centre, FFT}] = scheme{reach: 1}
	t[dispatchKey{field.Rank3D, ylow, ylow, FFT}] = scheme{reach: 1}
	return t
}

var dispatch = [numFamilies]table{
	FamDDX:         perpDerivTable(derivKernels),
	FamDDY:         parDerivTable(derivKernels, true),
	FamDDZ:         perpDerivTable(derivKernels),
	FamD2DX2:       perpDerivTable(secondKernels),
	FamD2DY2:       parDerivTable(secondKernels, false),
	FamD2DZ2:       perpDerivTable(secondKernels),
	FamVDDX:        perpAdvectTable(),
	FamVDDY:        parAdvectTable(),
	FamVDDZ:        perpAdvectTable(),
	FamGradPar:     parDerivTable(derivKernels, true),
	FamDivPar:      divParTable(),
	FamVparGradPar: parAdvectTable(),
	FamDelp2:       delp2Table(),
}

func lookup(fam Family, rank field.Rank, in, out types.CellLoc, method Difop) (s scheme, err error) {
	var ok bool
	if s, ok = dispatch[fam][dispatchKey{rank, in, out, method}]; !ok {
		err = fmt.Errorf("%s of a %dD field from %s to %s with method %s: %w",
			fam, rank, in, out, method, ErrUnsupportedConfiguration)
	}
	return
}

// Entry describes one supported combination of a family's dispatch table
type Entry struct {
	Family  Family
	Rank    field.Rank
	In, Out types.CellLoc
	Method  Difop
	Mode    string
	Reach   int
}

// Entries lists every supported combination, ordered by family, rank, locations and method
func Entries() (entries []Entry) {
	for fam := Family(0); fam < numFamilies; fam++ {
		var fe []Entry
		for k, s := range dispatch[fam] {
			fe = append(fe, Entry{fam, k.Rank, k.In, k.Out, k.Method, s.mode.String(), s.reach})
		}
		sort.Slice(fe, func(i, j int) bool {
			a, b := fe[i], fe[j]
			switch {
			case a.Rank != b.Rank:
				return a.Rank < b.Rank
			case a.In != b.In:
				return a.In < b.In
			case a.Out != b.Out:
				return a.Out < b.Out
			}
			return a.Method < b.Method
		})
		entries = append(entries, fe...)
	}
	return
}

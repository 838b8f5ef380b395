/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/notargets/difops/InputParameters"
	"github.com/notargets/difops/difops"
	"github.com/notargets/difops/field"
	"github.com/notargets/difops/mesh"
	"github.com/notargets/difops/options"
	"github.com/notargets/difops/types"
	"github.com/notargets/difops/utils"
)

/*
Case is a mesh with analytic test fields whose operator results are known:

	f = sin(ky y) + cos(kz (z - ZShift))  constant along field lines except for the first term
	g = sin(kx x) cos(kz z)               an eigenfunction of the perpendicular Laplacian
	v = Velocity

With Loc at CELL_YLOW grad_par is evaluated centre to face and div_par face to centre.
*/
type Case struct {
	IP         *InputParameters.InputParameters
	Mesh       *mesh.Mesh
	Ops        *difops.Ops
	Loc        types.CellLoc
	Kx, Ky, Kz float64
}

type Result struct {
	Operator string
	Method   difops.Difop
	MaxErr   float64
	RMSErr   float64
	Err      error
}

// NewOptions layers the case on the base configuration: an options file replaces
// the base, then the Options and Methods of the case are set
func NewOptions(ip *InputParameters.InputParameters, base *viper.Viper) (opts *options.Options, err error) {
	switch {
	case len(ip.OptionsFile) != 0:
		if opts, err = options.Load(ip.OptionsFile); err != nil {
			return
		}
	case base != nil:
		opts = options.NewFromViper(base)
	default:
		opts = options.New()
	}
	for section, kv := range ip.Options {
		for key, val := range kv {
			opts.Set(section, key, val)
		}
	}
	for family, method := range ip.Methods {
		opts.Set(difops.OperatorsSection, family, method)
	}
	return
}

func NewCase(ip *InputParameters.InputParameters, opts *options.Options, logger logrus.FieldLogger) (c *Case, err error) {
	var (
		m   *mesh.Mesh
		loc = types.CELL_CENTRE
	)
	if len(ip.Location) != 0 {
		if loc, err = types.NewCellLoc(ip.Location); err != nil {
			return
		}
	}
	if loc == types.CELL_DEFAULT {
		err = fmt.Errorf("case location must be centre or ylow, have %s", loc)
		return
	}
	if m, err = mesh.NewMeshFromParameters(ip.Mesh); err != nil {
		return
	}
	c = &Case{
		IP:   ip,
		Mesh: m,
		Ops:  difops.NewOps(m, opts, logger),
		Loc:  loc,
		Kx:   2 * math.Pi * float64(ip.ModeX) / ip.Mesh.Lx,
		Ky:   2 * math.Pi * float64(ip.ModeY) / ip.Mesh.Ly,
		Kz:   2 * math.Pi * float64(ip.ModeZ) / m.Coords.Zlength,
	}
	return
}

func (c *Case) zShift(x, y int) float64 {
	if sm, ok := c.Mesh.Transform.(*mesh.ShiftedMetric); ok {
		return sm.ZShift.Get(x, y, 0)
	}
	return 0
}

func (c *Case) set(loc types.CellLoc, fn func(x, y, z int, yy float64) float64) *field.Field {
	f := c.Mesh.New3D().SetLocation(loc)
	return f.SetFunc(func(x, y, z int) float64 {
		return fn(x, y, z, c.Mesh.YPosition(y, loc))
	})
}

func (c *Case) fAt(x, y, z int, yy float64) float64 {
	return math.Sin(c.Ky*yy) + math.Cos(c.Kz*(c.Mesh.Z[z]-c.zShift(x, y)))
}

// F is the parallel test field at loc, with its parallel slices
func (c *Case) F(loc types.CellLoc) (f *field.Field) {
	f = c.set(loc, c.fAt)
	c.Mesh.CalcParallelSlices(f)
	return
}

// G is the perpendicular test field
func (c *Case) G() *field.Field {
	return c.set(types.CELL_CENTRE, func(x, y, z int, _ float64) float64 {
		return math.Sin(c.Kx*c.Mesh.X[x]) * math.Cos(c.Kz*c.Mesh.Z[z])
	})
}

func (c *Case) V() *field.Field {
	return c.Mesh.New3D().Fill(c.IP.Velocity)
}

func (c *Case) gradParExact(loc types.CellLoc) *field.Field {
	coords := c.Mesh.Coords
	return c.set(loc, func(x, y, z int, yy float64) float64 {
		return c.Ky * math.Cos(c.Ky*yy) / coords.SqrtG_22(x, y)
	})
}

// d/dy(f/B) = (df/dy - f dB/dy / B) / B along the field line, B varies in y only
func (c *Case) divParExact() *field.Field {
	var (
		mp     = c.IP.Mesh
		coords = c.Mesh.Coords
		kb     = 2 * math.Pi / mp.Ly
	)
	b0 := mp.B0
	if b0 == 0 {
		b0 = 1
	}
	return c.set(types.CELL_CENTRE, func(x, y, z int, yy float64) float64 {
		B := coords.Bxy.Get(x, y, 0)
		dB := -b0 * mp.BRipple * kb * math.Sin(kb*yy)
		return (c.Ky*math.Cos(c.Ky*yy) - c.fAt(x, y, z, yy)*dB/B) / coords.SqrtG_22(x, y)
	})
}

func (c *Case) delp2Exact(g *field.Field) *field.Field {
	coords := c.Mesh.Coords
	r := field.NewLike(g)
	for x := 0; x < g.Nx; x++ {
		for y := 0; y < g.Ny; y++ {
			lap := -(c.Kx*c.Kx*coords.G11.Get(x, y, 0) + c.Kz*c.Kz*coords.G33.Get(x, y, 0))
			for z := 0; z < g.Nz; z++ {
				r.Set(x, y, z, lap*g.Get(x, y, z))
			}
		}
	}
	return r
}

// Operators evaluated by a case, in order
var Operators = []string{"grad_par", "div_par", "vpar_grad_par", "delp2"}

var operatorFamilies = map[string]difops.Family{
	"grad_par":      difops.FamGradPar,
	"div_par":       difops.FamDivPar,
	"vpar_grad_par": difops.FamVparGradPar,
	"delp2":         difops.FamDelp2,
}

// Evaluate applies one operator with the given method, DEFAULT uses the configured one
func (c *Case) Evaluate(operator string, method difops.Difop) (res Result) {
	var (
		r, exact *field.Field
		o        = c.Ops
		fam, ok  = operatorFamilies[operator]
	)
	res.Operator = operator
	if !ok {
		res.Err = fmt.Errorf("unknown operator %q, use one of %v", operator, Operators)
		return
	}
	if res.Method = method; method == difops.DEFAULT {
		if res.Method, res.Err = o.Cache().Resolve(fam); res.Err != nil {
			return
		}
	}
	switch fam {
	case difops.FamGradPar:
		r, res.Err = o.GradPar(c.F(types.CELL_CENTRE), c.Loc, res.Method)
		exact = c.gradParExact(c.Loc)
	case difops.FamDivPar:
		r, res.Err = o.DivPar(c.F(c.Loc), types.CELL_CENTRE, res.Method)
		exact = c.divParExact()
	case difops.FamVparGradPar:
		r, res.Err = o.VparGradPar(c.V(), c.F(types.CELL_CENTRE), types.CELL_DEFAULT, res.Method)
		exact = c.gradParExact(types.CELL_CENTRE)
		for i, val := range exact.Values() {
			exact.Values()[i] = c.IP.Velocity * val
		}
	case difops.FamDelp2:
		g := c.G()
		r, res.Err = o.Delp2(g, types.CELL_DEFAULT, res.Method)
		exact = c.delp2Exact(g)
	}
	if res.Err != nil {
		return
	}
	rgn := c.Mesh.RegionFor(r, field.RGN_NOBNDRY)
	if utils.IsNanAt(r.Values(), rgn.Flat(r)) {
		res.Err = fmt.Errorf("%s with method %s produced NaN values", operator, res.Method)
		return
	}
	res.MaxErr = field.MaxAbsDiff(r, exact, rgn)
	res.RMSErr = field.RMSDiff(r, exact, rgn)
	return
}

// EvaluateAll applies every operator with its configured method
func (c *Case) EvaluateAll() (results []Result) {
	for _, op := range Operators {
		results = append(results, c.Evaluate(op, difops.DEFAULT))
	}
	return
}

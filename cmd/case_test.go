package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/difops/InputParameters"
	"github.com/notargets/difops/difops"
	"github.com/notargets/difops/types"
)

func parseCase(t *testing.T, input string) *InputParameters.InputParameters {
	ip := InputParameters.NewInputParameters()
	require.NoError(t, ip.Parse([]byte(input)))
	return ip
}

func TestRunCase(t *testing.T) {
	ip := parseCase(t, `
Title: Sheared slab
Mesh:
  Nx: 32
  Ny: 64
  Nz: 16
  Shear: 0.5
  BRipple: 0.1
Methods:
  grad_par: c2
  div_par: c2_fa
  vpar_grad_par: u1_fa
ModeZ: 2
Velocity: -2
`)
	opts, err := NewOptions(ip, nil)
	require.NoError(t, err)
	assert.Equal(t, "u1_fa", opts.GetString(difops.OperatorsSection, "vpar_grad_par", "u1"))
	c, err := NewCase(ip, opts, log)
	require.NoError(t, err)
	results := c.EvaluateAll()
	require.Len(t, results, len(Operators))
	expected := map[string]difops.Difop{
		"grad_par":      difops.C2,
		"div_par":       difops.C2_FA,
		"vpar_grad_par": difops.U1_FA,
		"delp2":         difops.FFT,
	}
	for _, res := range results {
		require.NoError(t, res.Err, res.Operator)
		assert.Equal(t, expected[res.Operator], res.Method)
		assert.Less(t, res.RMSErr, res.MaxErr+1.e-15)
	}
	// Second order methods, first order upwinding
	assert.Less(t, results[0].MaxErr, 2.e-2)
	assert.Less(t, results[1].MaxErr, 3.e-2)
	assert.Less(t, results[2].MaxErr, 1.)
	assert.Less(t, results[3].MaxErr, 0.5)

	// Explicit methods are checked against the dispatch tables
	res := c.Evaluate("grad_par", difops.W3)
	assert.ErrorIs(t, res.Err, difops.ErrUnsupportedConfiguration)
	res = c.Evaluate("curl", difops.DEFAULT)
	assert.Error(t, res.Err)
}

func TestOptionsFile(t *testing.T) {
	dir := t.TempDir()
	optsFile := filepath.Join(dir, "BOUT.ini")
	require.NoError(t, os.WriteFile(optsFile, []byte("[operators]\ngrad_par = c4_fa\ndiv_par = bogus\n"), 0644))
	ip := parseCase(t, "Title: options\nMethods:\n  div_par: c2\n")
	ip.OptionsFile = optsFile
	opts, err := NewOptions(ip, nil)
	require.NoError(t, err)
	c, err := NewCase(ip, opts, log)
	require.NoError(t, err)
	res := c.Evaluate("grad_par", difops.DEFAULT)
	require.NoError(t, res.Err)
	assert.Equal(t, difops.C4_FA, res.Method)
	// The case overrides the file
	res = c.Evaluate("div_par", difops.DEFAULT)
	require.NoError(t, res.Err)
	assert.Equal(t, difops.C2, res.Method)

	ip.OptionsFile = filepath.Join(dir, "missing.ini")
	_, err = NewOptions(ip, nil)
	assert.Error(t, err)
}

func TestEvalOptionsFile(t *testing.T) {
	var (
		dir       = t.TempDir()
		caseOpts  = filepath.Join(dir, "case.ini")
		flagOpts  = filepath.Join(dir, "flag.ini")
		caseFile  = filepath.Join(dir, "case.yaml")
		gradParOf = func(ip *InputParameters.InputParameters) difops.Difop {
			method, err := newCase(ip).Ops.Cache().Resolve(difops.FamGradPar)
			require.NoError(t, err)
			return method
		}
	)
	require.NoError(t, os.WriteFile(caseOpts, []byte("[operators]\ngrad_par = c4_fa\n"), 0644))
	require.NoError(t, os.WriteFile(flagOpts, []byte("[operators]\ngrad_par = c2_fa\n"), 0644))
	require.NoError(t, os.WriteFile(caseFile,
		[]byte("Title: options from the case\nOptionsFile: \""+caseOpts+"\"\n"), 0644))

	cmd := &cobra.Command{}
	addEvalFlags(cmd)
	require.NoError(t, cmd.Flags().Set("inputConditionsFile", caseFile))
	ip := processInput(cmd)
	// Without -O the file named in the case is used
	setOptionsFile(cmd, ip)
	assert.Equal(t, caseOpts, ip.OptionsFile)
	assert.Equal(t, difops.C4_FA, gradParOf(ip))
	// -O replaces it
	require.NoError(t, cmd.Flags().Set("optionsFile", flagOpts))
	setOptionsFile(cmd, ip)
	assert.Equal(t, flagOpts, ip.OptionsFile)
	assert.Equal(t, difops.C2_FA, gradParOf(ip))
}

func TestStaggeredCase(t *testing.T) {
	ip := parseCase(t, `
Title: Staggered
Mesh:
  Nx: 2
  Ny: 64
  Nz: 4
  StaggerGrids: true
Location: ylow
Methods:
  grad_par: c2
  div_par: c2
`)
	opts, err := NewOptions(ip, nil)
	require.NoError(t, err)
	c, err := NewCase(ip, opts, log)
	require.NoError(t, err)
	assert.Equal(t, types.CELL_YLOW, c.Loc)
	// Centre to face and face to centre, both second order
	for _, op := range []string{"grad_par", "div_par"} {
		res := c.Evaluate(op, difops.DEFAULT)
		require.NoError(t, res.Err, op)
		assert.Equal(t, difops.C2, res.Method)
		assert.Less(t, res.MaxErr, 1.e-2, op)
	}
	res := c.Evaluate("grad_par", difops.C4_FA)
	require.NoError(t, res.Err)
	assert.Less(t, res.MaxErr, 1.e-4)
	res = c.Evaluate("div_par", difops.C2_FA)
	require.NoError(t, res.Err)
	assert.Less(t, res.MaxErr, 1.e-2)
	// Face to centre has no fourth order method
	res = c.Evaluate("div_par", difops.C4_FA)
	assert.ErrorIs(t, res.Err, difops.ErrUnsupportedConfiguration)

	// Staggering needs a staggered mesh
	ip.Mesh.StaggerGrids = false
	c, err = NewCase(ip, opts, log)
	require.NoError(t, err)
	res = c.Evaluate("grad_par", difops.DEFAULT)
	assert.ErrorIs(t, res.Err, difops.ErrPreconditionViolation)

	for _, loc := range []string{"xlow", "default"} {
		ip.Location = loc
		_, err = NewCase(ip, opts, log)
		assert.Error(t, err, loc)
	}
}

func TestConvergenceStudy(t *testing.T) {
	ip := parseCase(t, `
Title: Convergence
Mesh:
  Nx: 2
  Ny: 16
  Nz: 4
Levels: 3
`)
	cs, err := RunStudy(ip, "grad_par", difops.C2)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32, 64}, cs.numPTS)
	assert.InDelta(t, 2., cs.Order(), 0.1)
	cs4, err := RunStudy(ip, "div_par", difops.C4_FA)
	require.NoError(t, err)
	assert.InDelta(t, 4., cs4.Order(), 0.3)
	cs.Print()

	ipx := parseCase(t, "Title: Laplacian\nMesh:\n  Nx: 16\n  Ny: 2\n  Nz: 8\nLevels: 2\n")
	csx, err := RunStudy(ipx, "delp2", difops.FFT)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32}, csx.numPTS)
	assert.InDelta(t, 2., csx.Order(), 0.2)

	_, err = RunStudy(ip, "grad_par", difops.U1)
	assert.ErrorIs(t, err, difops.ErrUnsupportedConfiguration)

	csvFile := filepath.Join(t.TempDir(), "study.csv")
	require.NoError(t, WriteCSV(csvFile, []*ConvergenceStudy{cs, cs4}))
	f, err := os.Open(csvFile)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)
	assert.Equal(t, "c4_fa", records[4][1])
}

func TestRunStudies(t *testing.T) {
	ip := parseCase(t, "Title: Concurrent\nMesh:\n  Nx: 2\n  Ny: 16\n  Nz: 4\nLevels: 2\n")
	methods := []difops.Difop{difops.C2, difops.U1, difops.C2_FA, difops.C4_FA}
	studies, errs := RunStudies(ip, "grad_par", methods, 3)
	require.Len(t, studies, 4)
	for i, method := range methods {
		if method == difops.U1 {
			assert.ErrorIs(t, errs[i], difops.ErrUnsupportedConfiguration)
			continue
		}
		require.NoError(t, errs[i])
		assert.Equal(t, method, studies[i].method)
	}
	// Aligned and slice C2 agree on an unsheared mesh
	assert.InDelta(t, studies[0].maxErr[1], studies[2].maxErr[1], 1.e-12)
	assert.Less(t, studies[3].maxErr[1], studies[0].maxErr[1])

	studies, errs = RunStudies(ip, "grad_par", nil, 4)
	assert.Empty(t, studies)
	assert.Empty(t, errs)
}

func TestPrintMethods(t *testing.T) {
	PrintMethods("Div_par")
	PrintMethods("")
}

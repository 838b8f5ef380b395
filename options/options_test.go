package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	{ // Defaults when nothing is set
		o := New()
		assert.Equal(t, "c2", o.GetString("operators", "ddy", "c2"))
		val, err := o.GetFloat("mesh", "zlength", 6.5)
		require.NoError(t, err)
		assert.Equal(t, 6.5, val)
		assert.False(t, o.IsSet("operators", "ddy"))
	}
	{ // INI
		o, err := Parse([]byte(`
[operators]
ddy = C4_FA
div_par = c2

[laplace]
all_terms = false
`), "ini")
		require.NoError(t, err)
		assert.Equal(t, "C4_FA", o.GetString("operators", "ddy", "c2"))
		assert.Equal(t, "c2", o.GetString("Operators", "DIV_PAR", "u1"))
		assert.Equal(t, "u1", o.GetString("operators", "vpar_grad_par", "u1"))
		b, err := o.GetBool("laplace", "all_terms", true)
		require.NoError(t, err)
		assert.False(t, b)
	}
	{ // YAML
		o, err := Parse([]byte(`
operators:
  vddx: w3
mesh:
  nz: 16
`), "yaml")
		require.NoError(t, err)
		assert.Equal(t, "w3", o.GetString("operators", "vddx", "u1"))
		nz, err := o.GetInt("mesh", "nz", 1)
		require.NoError(t, err)
		assert.Equal(t, 16, nz)
		_, err = o.GetInt("operators", "vddx", 0)
		assert.Error(t, err)
		assert.Contains(t, o.Section("operators"), "vddx")
	}
	{ // Set overrides
		o := New()
		o.Set("operators", "ddx", "c4")
		assert.Equal(t, "c4", o.GetString("operators", "ddx", "c2"))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "BOUT.ini")
	require.NoError(t, os.WriteFile(fname, []byte("[operators]\nddz = c4\n"), 0644))
	o, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, "c4", o.GetString("operators", "ddz", "c2"))
	_, err = Load(filepath.Join(dir, "missing.ini"))
	assert.Error(t, err)
}

// Package options is the run-time configuration lookup: a value is found by
// section and key, and a default is returned when it is not set.
package options

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Options struct {
	v *viper.Viper
}

func New() *Options {
	return &Options{v: viper.New()}
}

func NewFromViper(v *viper.Viper) *Options {
	return &Options{v: v}
}

// Load reads an options file, the format (ini, yaml, toml, json) is taken
// from the file extension
func Load(path string) (o *Options, err error) {
	o = New()
	o.v.SetConfigFile(path)
	if err = o.v.ReadInConfig(); err != nil {
		err = fmt.Errorf("unable to read options file %s: %w", path, err)
		return nil, err
	}
	return
}

// Parse reads options from memory in the named format
func Parse(data []byte, format string) (o *Options, err error) {
	o = New()
	o.v.SetConfigType(format)
	if err = o.v.ReadConfig(bytes.NewReader(data)); err != nil {
		err = fmt.Errorf("unable to parse %s options: %w", format, err)
		return nil, err
	}
	return
}

func path(section, key string) string {
	if len(section) == 0 {
		return strings.ToLower(key)
	}
	return strings.ToLower(section + "." + key)
}

func (o *Options) Set(section, key string, val interface{}) {
	o.v.Set(path(section, key), val)
}

func (o *Options) IsSet(section, key string) bool {
	return o.v.IsSet(path(section, key))
}

func (o *Options) Get(section, key string, def interface{}) interface{} {
	if !o.IsSet(section, key) {
		return def
	}
	return o.v.Get(path(section, key))
}

func (o *Options) GetString(section, key, def string) string {
	return cast.ToString(o.Get(section, key, def))
}

func (o *Options) GetFloat(section, key string, def float64) (val float64, err error) {
	if val, err = cast.ToFloat64E(o.Get(section, key, def)); err != nil {
		err = fmt.Errorf("option %s: %w", path(section, key), err)
	}
	return
}

func (o *Options) GetInt(section, key string, def int) (val int, err error) {
	if val, err = cast.ToIntE(o.Get(section, key, def)); err != nil {
		err = fmt.Errorf("option %s: %w", path(section, key), err)
	}
	return
}

func (o *Options) GetBool(section, key string, def bool) (val bool, err error) {
	if val, err = cast.ToBoolE(o.Get(section, key, def)); err != nil {
		err = fmt.Errorf("option %s: %w", path(section, key), err)
	}
	return
}

// Section returns the keys and values of one section
func (o *Options) Section(section string) map[string]interface{} {
	return o.v.GetStringMap(strings.ToLower(section))
}

package difops

import (
	"fmt"
	"strings"
)

// Difop selects the numerical method of an operator
type Difop uint8

const (
	DEFAULT Difop = iota // Use the configured method for the operator
	U1                   // First order upwind
	U2                   // Second order upwind
	C2                   // Second order central
	C4                   // Fourth order central
	W3                   // Third order WENO
	U1_FA
	U2_FA
	C2_FA
	C4_FA
	W3_FA
	FFT
)

var DifopNameMap = map[string]Difop{
	"default": DEFAULT,
	"u1":      U1,
	"u2":      U2,
	"c2":      C2,
	"c4":      C4,
	"w3":      W3,
	"u1_fa":   U1_FA,
	"u2_fa":   U2_FA,
	"c2_fa":   C2_FA,
	"c4_fa":   C4_FA,
	"w3_fa":   W3_FA,
	"fft":     FFT,
}

var DifopPrintNames = []string{
	"default", "u1", "u2", "c2", "c4", "w3",
	"u1_fa", "u2_fa", "c2_fa", "c4_fa", "w3_fa", "fft",
}

func (d Difop) String() string {
	if int(d) < len(DifopPrintNames) {
		return DifopPrintNames[d]
	}
	return fmt.Sprintf("Difop(%d)", d)
}

// ParseDifop converts a method name, in any case, to a Difop
func ParseDifop(label string) (d Difop, err error) {
	var ok bool
	if d, ok = DifopNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown method %q: %w", label, ErrInvalidConfigurationValue)
	}
	return
}

// IsAligned is true for methods that difference in field aligned coordinates
func (d Difop) IsAligned() bool {
	return d >= U1_FA && d <= W3_FA
}

// Base strips the field aligned variant: C2_FA -> C2
func (d Difop) Base() Difop {
	if d.IsAligned() {
		return d - (U1_FA - U1)
	}
	return d
}

// Aligned is the field aligned variant of a plain method
func (d Difop) Aligned() Difop {
	if d >= U1 && d <= W3 {
		return d + (U1_FA - U1)
	}
	return d
}

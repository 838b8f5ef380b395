package types

import (
	"fmt"
	"strings"
)

// CellLoc is where inside a cell the values of a field are stored
type CellLoc uint8

const (
	CELL_DEFAULT CellLoc = iota // Output only: same location as the input
	CELL_CENTRE
	CELL_YLOW // Offset by half a cell toward lower Y
)

var CellLocNameMap = map[string]CellLoc{
	"default": CELL_DEFAULT,
	"centre":  CELL_CENTRE,
	"center":  CELL_CENTRE,
	"ylow":    CELL_YLOW,
}

var CellLocPrintNames = []string{"CELL_DEFAULT", "CELL_CENTRE", "CELL_YLOW"}

func (loc CellLoc) String() string {
	if int(loc) < len(CellLocPrintNames) {
		return CellLocPrintNames[loc]
	}
	return fmt.Sprintf("CellLoc(%d)", loc)
}

func NewCellLoc(label string) (loc CellLoc, err error) {
	var ok bool
	if loc, ok = CellLocNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown cell location %q", label)
	}
	return
}

// Resolve replaces CELL_DEFAULT with the input location
func (loc CellLoc) Resolve(in CellLoc) CellLoc {
	if loc == CELL_DEFAULT {
		return in
	}
	return loc
}

type Direction uint8

const (
	DirX Direction = iota
	DirY           // Parallel direction
	DirZ           // Periodic direction
)

var DirectionPrintNames = []string{"X", "Y", "Z"}

func (d Direction) String() string {
	if int(d) < len(DirectionPrintNames) {
		return DirectionPrintNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

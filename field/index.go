package field

// Ind is a cell index. Offsets in Z wrap around the periodic direction, offsets
// in X and Y do not.
type Ind struct {
	X, Y, Z int
	nz      int
}

func NewInd(x, y, z, nz int) Ind {
	return Ind{X: x, Y: y, Z: z, nz: nz}
}

func (i Ind) Offset(dx, dy, dz int) Ind {
	z := i.Z + dz
	if i.nz > 0 {
		z %= i.nz
		if z < 0 {
			z += i.nz
		}
	}
	return Ind{X: i.X + dx, Y: i.Y + dy, Z: z, nz: i.nz}
}

func (i Ind) Xp() Ind { return Ind{X: i.X + 1, Y: i.Y, Z: i.Z, nz: i.nz} }
func (i Ind) Xm() Ind { return Ind{X: i.X - 1, Y: i.Y, Z: i.Z, nz: i.nz} }
func (i Ind) Yp() Ind { return Ind{X: i.X, Y: i.Y + 1, Z: i.Z, nz: i.nz} }
func (i Ind) Ym() Ind { return Ind{X: i.X, Y: i.Y - 1, Z: i.Z, nz: i.nz} }
func (i Ind) Zp() Ind { return i.Offset(0, 0, 1) }
func (i Ind) Zm() Ind { return i.Offset(0, 0, -1) }

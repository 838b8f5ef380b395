package mesh

import (
	"math"

	"github.com/notargets/difops/field"
)

// Coordinates holds the grid spacing, metric tensor and magnetic field magnitude.
// All are 2D fields at cell centres; Z is periodic with length Zlength.
type Coordinates struct {
	Dx, Dy                       *field.Field
	Zlength                      float64
	G11, G22, G33, G12, G13, G23 *field.Field // Contravariant metric
	G_11, G_22, G_33             *field.Field // Covariant diagonal
	G1, G2, G3                   *field.Field // Christoffel combinations for Laplacians
	Bxy                          *field.Field
}

// NewCoordinates is a uniform Cartesian box with unit spacing and B = 1
func NewCoordinates(nx, ny int) (c *Coordinates) {
	one := func() *field.Field { return field.New2D(nx, ny).Fill(1) }
	zero := func() *field.Field { return field.New2D(nx, ny) }
	c = &Coordinates{
		Dx:      one(),
		Dy:      one(),
		Zlength: 2 * math.Pi,
		G11:     one(),
		G22:     one(),
		G33:     one(),
		G12:     zero(),
		G13:     zero(),
		G23:     zero(),
		G_11:    one(),
		G_22:    one(),
		G_33:    one(),
		G1:      zero(),
		G2:      zero(),
		G3:      zero(),
		Bxy:     one(),
	}
	return
}

// SetParallelMetric sets g_22 and its inverse g22 together
func (c *Coordinates) SetParallelMetric(g_22 *field.Field) {
	c.G_22 = g_22
	c.G22 = field.NewLike(g_22)
	for i, val := range g_22.Values() {
		c.G22.Values()[i] = 1. / val
	}
}

// SqrtG_22 returns sqrt(g_22) at (x, y)
func (c *Coordinates) SqrtG_22(x, y int) float64 {
	return math.Sqrt(c.G_22.Get(x, y, 0))
}

// ParallelLength is dy*sqrt(g_22) at (x, y), the distance along the field
// between neighbouring Y cells
func (c *Coordinates) ParallelLength(x, y int) float64 {
	return c.Dy.Get(x, y, 0) * c.SqrtG_22(x, y)
}

package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func (f *Field) gather(r Region) []float64 {
	if r.Size() == 0 {
		return nil
	}
	var (
		I   = r.Flat(f)
		out = make([]float64, len(I))
	)
	for n, ind := range I {
		out[n] = f.data[ind]
	}
	return out
}

// MaxAbsDiff is the largest absolute difference between a and b over a region,
// a and b must have the same shape
func MaxAbsDiff(a, b *Field, r Region) float64 {
	va, vb := a.gather(r), b.gather(r)
	if len(va) == 0 {
		return 0
	}
	return floats.Distance(va, vb, math.Inf(1))
}

// RMSDiff is the root mean square difference between a and b over a region, a
// and b must have the same shape
func RMSDiff(a, b *Field, r Region) float64 {
	va, vb := a.gather(r), b.gather(r)
	if len(va) == 0 {
		return 0
	}
	return floats.Distance(va, vb, 2) / math.Sqrt(float64(len(va)))
}

// MaxAbs is the largest magnitude over a region
func MaxAbs(a *Field, r Region) float64 {
	va := a.gather(r)
	if len(va) == 0 {
		return 0
	}
	return floats.Norm(va, math.Inf(1))
}

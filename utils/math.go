package utils

func SQ(x float64) float64 {
	return x * x
}

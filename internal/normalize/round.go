package normalize

import (
	"math"
	"strconv"
)

// RoundSigFigs rounds v to n significant figures. Zero, NaN and Inf are
// returned unchanged, as is v when n < 1.
func RoundSigFigs(v float64, n int) float64 {
	if v == 0 || n < 1 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	mag := math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(n-1)-mag)
	return math.Round(v*scale) / scale
}

// FormatSigFigs renders v rounded to n significant figures in plain decimal
// notation with no trailing zeros, e.g. 33.333 → "33", 0.12345 → "0.12",
// 99.7 → "100".
func FormatSigFigs(v float64, n int) string {
	return strconv.FormatFloat(RoundSigFigs(v, n), 'f', -1, 64)
}

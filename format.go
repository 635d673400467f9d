package tokengen

import (
	"math"
	"strconv"
)

// formatNumber rounds to decimals and trims trailing zeros.
func formatNumber(v float64, decimals int) string {
	pow := math.Pow(10, float64(decimals))
	r := math.Round(v*pow) / pow
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func px(v float64) string {
	return formatNumber(v, 4) + "px"
}

func rem(v float64) string {
	return formatNumber(v, 4) + "rem"
}

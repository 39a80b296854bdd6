package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// NonNegative descarta valores negativos
func NonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

// RoundToCount arredonda para o inteiro mais próximo, sem aceitar negativos
func RoundToCount(f float64) int {
	return int(math.Round(NonNegative(f)))
}

package conversion

import (
	"math"
	"strconv"
	"strings"
)

const (
	scientificLow  = 1e-6
	scientificHigh = 1e6
	displayDigits  = 6
)

// Format renders a converted value followed by a space and the unit name.
// Very small (non-zero) and very large magnitudes use scientific notation,
// everything else fixed-point with trailing zeros removed.
func Format(value float64, unit string) string {
	if value == 0 {
		// folds -0 into 0
		value = 0
	}

	abs := math.Abs(value)
	if (abs < scientificLow && value != 0) || abs > scientificHigh {
		return strconv.FormatFloat(value, 'e', displayDigits, 64) + " " + unit
	}

	s := strconv.FormatFloat(value, 'f', displayDigits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s + " " + unit
}

// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber rounds x to two decimals and drops trailing zeros.
// Anything that rounds to zero, -0 included, prints as "0".
func FormatNumber(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	r := math.Round(x*100) / 100
	if r == 0 {
		return "0"
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FormatVector prints v as "[a, b, c]".
func FormatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = FormatNumber(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Variable names the zero-based variable j as x1, x2, ...
func Variable(j int) string { return "x" + strconv.Itoa(j+1) }

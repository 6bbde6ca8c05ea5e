package types

import (
	"strconv"
	"strings"
)

// FormatCount formats a task count
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

// FormatMillis formats a millisecond value as a plain integer
func FormatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}

// FormatRatio formats a ratio using the shortest decimal form.
// The result always carries a decimal point so 0 renders as "0.0".
func FormatRatio(ratio float64) string {
	s := formatFloat(ratio, -1)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// FormatBand formats threshold breakpoints as a bracketed list
func FormatBand(limits []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range limits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatRatio(v))
	}
	b.WriteByte(']')
	return b.String()
}

// formatFloat formats a float with specified decimal places
func formatFloat(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

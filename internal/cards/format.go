package cards

import (
	"math"
	"strconv"
	"strings"
)

// formatValue prints the shortest representation of v that round-trips.
// Integral values keep a trailing ".0". Exponent notation is used for
// magnitudes below 1e-4 or from 1e16 on.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// splitLines splits text on line breaks the way a text editor would,
// without producing a trailing empty element for a final newline.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// stripComment returns line up to the first occurrence of any marker.
func stripComment(line string, markers ...string) string {
	for _, m := range markers {
		if idx := strings.Index(line, m); idx >= 0 {
			line = line[:idx]
		}
	}
	return line
}

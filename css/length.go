package css

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLength parses a single length token such as "15px" or "1.2em".
// The longest leading run of sign/digit/decimal-point characters is the
// numeric part; the remainder must be a recognized unit suffix.
func ParseLength(s string) (Length, error) {
	split := 0
	for i, r := range s {
		if r >= '0' && r <= '9' || r == '.' || (i == 0 && (r == '-' || r == '+')) {
			split = i + 1
			continue
		}
		break
	}

	var metric Metric
	switch unit := s[split:]; unit {
	case "px":
		metric = MetricPx
	case "em":
		metric = MetricEm
	default:
		return Length{}, fmt.Errorf("%w %q in %q", ErrUnit, unit, s)
	}

	number, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w %q: %w", ErrNumber, s[:split], err)
	}
	return Length{Metric: metric, Number: number}, nil
}

// ParsePercentage parses a token such as "5%" and reports its numeric value
// (5, not 0.05). A missing percent suffix or unparseable prefix reports
// false rather than an error: callers use this to tell "no percentage here"
// apart from a hard failure.
func ParsePercentage(s string) (float64, bool) {
	num, found := strings.CutSuffix(s, "%")
	if !found {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

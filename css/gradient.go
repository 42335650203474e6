package css

import (
	"fmt"
	"strings"
)

// gradient kinds as they appear before the opening parenthesis.
const (
	kindLinear          = "linear-gradient"
	kindRepeatingLinear = "repeating-linear-gradient"
	kindRadial          = "radial-gradient"
	kindRepeatingRadial = "repeating-radial-gradient"
)

// ParseGradient parses a gradient value such as
// "linear-gradient(to right, red, #00ff00 50%, blue)" into a
// *LinearGradient or *RadialGradient descriptor. The body is split on
// commas; a leading direction (linear kinds) or shape (radial kinds)
// segment is consumed as metadata, the remaining segments are parsed as
// stops and their offsets normalized so that every stop carries a defined,
// non-decreasing offset in [0,1]. At least two stops must remain.
func ParseGradient(s string) (Gradient, error) {
	name, rest, found := strings.Cut(s, "(")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrGradient, s)
	}

	var linear, repeating bool
	switch name {
	case kindLinear:
		linear = true
	case kindRepeatingLinear:
		linear, repeating = true, true
	case kindRadial:
	case kindRepeatingRadial:
		repeating = true
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrGradient, name)
	}

	closing := strings.LastIndexByte(rest, ')')
	if closing < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnclosedGradient, s)
	}
	body := rest[:closing]

	segments := strings.Split(body, ",")

	// prefix sniffing: a parseable first segment is metadata, not a stop
	first := strings.TrimSpace(segments[0])
	direction := DefaultDirection()
	shape := ShapeEllipse
	consumed := false
	if linear {
		if d, err := ParseDirection(first); err == nil {
			direction = d
			consumed = true
		}
	} else {
		if sh, err := ParseShape(first); err == nil {
			shape = sh
			consumed = true
		}
	}

	stopSegments := segments
	if consumed {
		stopSegments = segments[1:]
	}
	if len(stopSegments) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrGradientStops, s)
	}

	stops := make([]GradientStop, 0, len(stopSegments))
	for _, seg := range stopSegments {
		stop, err := parseGradientStop(strings.TrimSpace(seg))
		if err != nil {
			return nil, fmt.Errorf("gradient stop %q: %w", strings.TrimSpace(seg), err)
		}
		stops = append(stops, stop)
	}
	normalizeStops(stops)

	extend := ExtendClamp
	if repeating {
		extend = ExtendRepeat
	}

	if linear {
		return &LinearGradient{Direction: direction, Extend: extend, Stops: stops}, nil
	}
	return &RadialGradient{Shape: shape, Extend: extend, Stops: stops}, nil
}

// parseGradientStop parses "<color> [<percentage>]". The percentage, when
// present and parseable, becomes the explicit offset as a fraction; a
// missing or non-percentage second token leaves the offset unspecified.
func parseGradientStop(s string) (GradientStop, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return GradientStop{}, fmt.Errorf("%w: empty segment", ErrStop)
	}
	c, err := ParseColor(parts[0])
	if err != nil {
		return GradientStop{}, fmt.Errorf("%w: %w", ErrStop, err)
	}
	stop := GradientStop{Color: c}
	if len(parts) > 1 {
		if pct, ok := ParsePercentage(parts[1]); ok {
			stop.Offset = pct / 100
			stop.HasOffset = true
		}
	}
	return stop, nil
}

// normalizeStops fills in omitted stop offsets in a single left-to-right
// pass with lookahead, reproducing the standard defaulting: a first
// unspecified stop sits at 0, a trailing unspecified stop at 1, and every
// interior run of unspecified stops is spaced evenly between its anchors.
// Explicit offsets below the running position are raised to it so the
// resulting sequence is non-decreasing.
func normalizeStops(stops []GradientStop) {
	last := 0.0
	for i := 0; i < len(stops); {
		if stops[i].HasOffset {
			if stops[i].Offset < last {
				stops[i].Offset = last
			}
			last = stops[i].Offset
			i++
			continue
		}

		// run of unspecified stops [i, j)
		j := i
		for j < len(stops) && !stops[j].HasOffset {
			j++
		}
		next := 1.0
		if j < len(stops) {
			next = stops[j].Offset
		}
		if next < last {
			next = last
		}

		k := i
		if i == 0 {
			// the very first stop defaults to 0 regardless of lookahead
			stops[0].Offset = 0
			stops[0].HasOffset = true
			k = 1
		}
		if n := j - k; n > 0 {
			denom := n + 1
			if j == len(stops) {
				// run ends the list: its last stop lands exactly on 1
				denom = n
			}
			increase := (next - last) / float64(denom)
			for m := 1; k < j; k, m = k+1, m+1 {
				stops[k].Offset = last + increase*float64(m)
				stops[k].HasOffset = true
			}
		}
		last = stops[j-1].Offset
		i = j
	}
}

package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// angleUnits in sniffing order: grad must be tested before rad, or any
// gradian token would match the rad suffix first.
var angleUnits = []struct {
	suffix  string
	degrees func(v float64) float64
}{
	{"grad", func(v float64) float64 { return v / 400 * 360 }},
	{"deg", func(v float64) float64 { return v }},
	{"rad", func(v float64) float64 { return v * 180 / math.Pi }},
}

// ParseDirection parses a linear gradient direction: an angle literal such
// as "50deg", "1.5rad" or "100grad" (converted to degrees), or a "to"
// phrase naming one or two corner keywords. A single corner yields a
// from/to pair starting at its opposite; two corners are combined into the
// diagonal they bound, in either order.
func ParseDirection(s string) (Direction, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Direction{}, fmt.Errorf("%w: %q", ErrDirection, s)
	}

	first := fields[0]
	for _, u := range angleUnits {
		num, found := strings.CutSuffix(first, u.suffix)
		if !found {
			continue
		}
		if len(fields) > 1 {
			// an angle is the whole direction, nothing may follow it
			return Direction{}, fmt.Errorf("%w: %q", ErrDirection, s)
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Direction{}, fmt.Errorf("%w %q: %w", ErrNumber, num, err)
		}
		return Angle(u.degrees(v)), nil
	}

	if first != "to" {
		return Direction{}, fmt.Errorf("%w: %q", ErrDirection, s)
	}

	switch len(fields) {
	case 2:
		end, err := ParseCorner(fields[1])
		if err != nil {
			return Direction{}, err
		}
		return FromTo(end.Opposite(), end), nil
	case 3:
		a, err := ParseCorner(fields[1])
		if err != nil {
			return Direction{}, err
		}
		b, err := ParseCorner(fields[2])
		if err != nil {
			return Direction{}, err
		}
		end, ok := a.Combine(b)
		if !ok {
			return Direction{}, fmt.Errorf("%w: %q", ErrDirection, s)
		}
		return FromTo(end.Opposite(), end), nil
	default:
		return Direction{}, fmt.Errorf("%w: %q", ErrDirection, s)
	}
}

// ParseCorner parses an edge keyword used in "to" direction phrases.
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "right":
		return CornerRight, nil
	case "left":
		return CornerLeft, nil
	case "top":
		return CornerTop, nil
	case "bottom":
		return CornerBottom, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrCorner, s)
	}
}

// ParseShape parses a radial gradient shape keyword.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "circle":
		return ShapeCircle, nil
	case "ellipse":
		return ShapeEllipse, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrShape, s)
	}
}

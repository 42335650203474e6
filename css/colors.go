package css

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseColor parses any supported CSS color: a hex literal with leading
// hash ("#00ff00", "#EEE"), or a named color in either its CamelCase or
// hyphenated-lowercase spelling ("AliceBlue", "alice-blue"). Alpha defaults
// to 255 when the literal does not specify it.
func ParseColor(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	hex, ok := colorNames[s]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
	}
	return parseHexColor(hex)
}

// parseHexColor parses a hex literal without the hash. Exactly four lengths
// are supported: 3 and 4 digits (each digit duplicated per channel), 6
// (RRGGBB) and 8 (RRGGBBAA).
func parseHexColor(s string) (color.NRGBA, error) {
	switch len(s) {
	case 3, 4:
		n := make([]uint8, len(s))
		for i := 0; i < len(s); i++ {
			v, err := hexNibble(s[i])
			if err != nil {
				return color.NRGBA{}, err
			}
			n[i] = v*16 + v
		}
		c := color.NRGBA{R: n[0], G: n[1], B: n[2], A: 255}
		if len(s) == 4 {
			c.A = n[3]
		}
		return c, nil
	case 6, 8:
		n := make([]uint8, len(s)/2)
		for i := range n {
			hi, err := hexNibble(s[2*i])
			if err != nil {
				return color.NRGBA{}, err
			}
			lo, err := hexNibble(s[2*i+1])
			if err != nil {
				return color.NRGBA{}, err
			}
			n[i] = hi*16 + lo
		}
		c := color.NRGBA{R: n[0], G: n[1], B: n[2], A: 255}
		if len(s) == 8 {
			c.A = n[3]
		}
		return c, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
	}
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrColorComponent, rune(c))
	}
}

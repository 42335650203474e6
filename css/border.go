package css

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseBorderStyle parses a border style keyword such as "solid" or "dotted".
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch s {
	case "none":
		return BorderStyleNone, nil
	case "solid":
		return BorderStyleSolid, nil
	case "double":
		return BorderStyleDouble, nil
	case "dotted":
		return BorderStyleDotted, nil
	case "dashed":
		return BorderStyleDashed, nil
	case "hidden":
		return BorderStyleHidden, nil
	case "groove":
		return BorderStyleGroove, nil
	case "ridge":
		return BorderStyleRidge, nil
	case "inset":
		return BorderStyleInset, nil
	case "outset":
		return BorderStyleOutset, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrBorderStyle, s)
	}
}

// ParseBorderRadius parses the border-radius shorthand: one to four
// whitespace-separated lengths assigned to corners by the standard rule.
// Radii never go negative.
func ParseBorderRadius(s string) (BorderRadius, error) {
	parts := strings.Fields(s)

	switch len(parts) {
	case 1:
		// one value: all four corners are rounded equally
		r, err := radiusComponent(parts[0], "radius")
		if err != nil {
			return BorderRadius{}, err
		}
		return UniformRadius(r), nil
	case 2:
		// first value: top-left and bottom-right, second: top-right and bottom-left
		tlbr, err := radiusComponent(parts[0], "top-left/bottom-right radius")
		if err != nil {
			return BorderRadius{}, err
		}
		trbl, err := radiusComponent(parts[1], "top-right/bottom-left radius")
		if err != nil {
			return BorderRadius{}, err
		}
		return BorderRadius{
			TopLeft:     Size{tlbr, tlbr},
			BottomRight: Size{tlbr, tlbr},
			TopRight:    Size{trbl, trbl},
			BottomLeft:  Size{trbl, trbl},
		}, nil
	case 3:
		// top-left, then top-right and bottom-left, then bottom-right
		tl, err := radiusComponent(parts[0], "top-left radius")
		if err != nil {
			return BorderRadius{}, err
		}
		trbl, err := radiusComponent(parts[1], "top-right/bottom-left radius")
		if err != nil {
			return BorderRadius{}, err
		}
		br, err := radiusComponent(parts[2], "bottom-right radius")
		if err != nil {
			return BorderRadius{}, err
		}
		return BorderRadius{
			TopLeft:     Size{tl, tl},
			BottomRight: Size{br, br},
			TopRight:    Size{trbl, trbl},
			BottomLeft:  Size{trbl, trbl},
		}, nil
	case 4:
		// top-left, top-right, bottom-right, bottom-left
		tl, err := radiusComponent(parts[0], "top-left radius")
		if err != nil {
			return BorderRadius{}, err
		}
		tr, err := radiusComponent(parts[1], "top-right radius")
		if err != nil {
			return BorderRadius{}, err
		}
		br, err := radiusComponent(parts[2], "bottom-right radius")
		if err != nil {
			return BorderRadius{}, err
		}
		bl, err := radiusComponent(parts[3], "bottom-left radius")
		if err != nil {
			return BorderRadius{}, err
		}
		return BorderRadius{
			TopLeft:     Size{tl, tl},
			TopRight:    Size{tr, tr},
			BottomRight: Size{br, br},
			BottomLeft:  Size{bl, bl},
		}, nil
	default:
		return BorderRadius{}, fmt.Errorf("%w: %q", ErrRadius, s)
	}
}

// radiusComponent parses one radius length, identifies the failing corner
// slot on error and clamps the resolved value at zero.
func radiusComponent(token, slot string) (float64, error) {
	l, err := ParseLength(token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", slot, err)
	}
	px := l.Pixels()
	if px < 0 {
		px = 0
	}
	return px, nil
}

// ParseBorder parses the border shorthand: either a single style keyword
// (thickness defaults to one pixel, color to opaque black) or exactly
// thickness, style, color in that order.
func ParseBorder(s string) (Border, error) {
	parts := strings.Fields(s)

	var (
		thickness float64
		style     BorderStyle
		col       color.NRGBA
		err       error
	)

	switch len(parts) {
	case 1:
		if style, err = ParseBorderStyle(parts[0]); err != nil {
			return Border{}, err
		}
		thickness = 1.0
		col = color.NRGBA{A: 255}
	case 3:
		l, err := ParseLength(parts[0])
		if err != nil {
			return Border{}, fmt.Errorf("border thickness: %w", err)
		}
		thickness = l.Pixels()
		if style, err = ParseBorderStyle(parts[1]); err != nil {
			return Border{}, err
		}
		if col, err = ParseColor(parts[2]); err != nil {
			return Border{}, fmt.Errorf("border color: %w", err)
		}
	default:
		return Border{}, fmt.Errorf("%w: %q", ErrBorder, s)
	}

	side := BorderSide{Color: col, Style: style}
	return Border{
		Widths: BorderWidths{Top: thickness, Right: thickness, Bottom: thickness, Left: thickness},
		Top:    side,
		Right:  side,
		Bottom: side,
		Left:   side,
	}, nil
}

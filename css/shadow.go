package css

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseBoxShadow parses the box-shadow shorthand. The literal "none"
// returns (nil, nil). The grammar is keyed by token count (one through
// six); when more than two tokens are present and the last one is "inset"
// or "outset" it sets the clip mode and is excluded from the positional
// arguments. Defaults: opaque black color, zero blur and spread, outset.
func ParseBoxShadow(s string) (*BoxShadow, error) {
	parts := strings.Fields(s)
	count := len(parts)
	if count == 0 {
		return nil, fmt.Errorf("%w: %q", ErrShadow, s)
	}
	if count > 6 {
		return nil, fmt.Errorf("%w: %q", ErrShadowParts, s)
	}

	shadow := &BoxShadow{Color: color.NRGBA{A: 255}}

	// clip-mode sniffing: a trailing keyword shortens the positional grammar
	keyword := false
	if count > 2 {
		switch parts[count-1] {
		case "inset":
			shadow.Clip = ClipInset
			keyword = true
		case "outset":
			shadow.Clip = ClipOutset
			keyword = true
		}
	}
	args := parts
	if keyword {
		args = parts[:count-1]
	}

	if count == 1 {
		if parts[0] == "none" {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrShadow, s)
	}

	if err := shadowOffsets(shadow, args[0], args[1]); err != nil {
		return nil, err
	}

	switch count {
	case 2:
		// offsets only
	case 3:
		if !keyword {
			if err := shadowColor(shadow, args[2]); err != nil {
				return nil, err
			}
		}
	case 4:
		if err := shadowLength(&shadow.Blur, "blur radius", args[2]); err != nil {
			return nil, err
		}
		if !keyword {
			if err := shadowColor(shadow, args[3]); err != nil {
				return nil, err
			}
		}
	case 5:
		if err := shadowLength(&shadow.Blur, "blur radius", args[2]); err != nil {
			return nil, err
		}
		if keyword {
			if err := shadowColor(shadow, args[3]); err != nil {
				return nil, err
			}
		} else {
			if err := shadowLength(&shadow.Spread, "spread radius", args[3]); err != nil {
				return nil, err
			}
			if err := shadowColor(shadow, args[4]); err != nil {
				return nil, err
			}
		}
	case 6:
		if !keyword {
			return nil, fmt.Errorf("%w: %q", ErrShadow, s)
		}
		if err := shadowLength(&shadow.Blur, "blur radius", args[2]); err != nil {
			return nil, err
		}
		if err := shadowLength(&shadow.Spread, "spread radius", args[3]); err != nil {
			return nil, err
		}
		if err := shadowColor(shadow, args[4]); err != nil {
			return nil, err
		}
	}

	return shadow, nil
}

func shadowOffsets(shadow *BoxShadow, h, v string) error {
	hl, err := ParseLength(h)
	if err != nil {
		return fmt.Errorf("horizontal offset: %w", err)
	}
	vl, err := ParseLength(v)
	if err != nil {
		return fmt.Errorf("vertical offset: %w", err)
	}
	shadow.OffsetX = hl.Pixels()
	shadow.OffsetY = vl.Pixels()
	return nil
}

// shadowLength parses a blur or spread radius, clamping at zero.
func shadowLength(dst *float64, slot, token string) error {
	l, err := ParseLength(token)
	if err != nil {
		return fmt.Errorf("%s: %w", slot, err)
	}
	px := l.Pixels()
	if px < 0 {
		px = 0
	}
	*dst = px
	return nil
}

func shadowColor(shadow *BoxShadow, token string) error {
	c, err := ParseColor(token)
	if err != nil {
		return fmt.Errorf("shadow color: %w", err)
	}
	shadow.Color = c
	return nil
}

// Package css converts textual style-property values into strongly typed,
// render-ready descriptors: lengths, colors, borders, box shadows and
// gradients. Every parser takes one already-trimmed value string; splitting
// a declaration list into property/value pairs is handled by Parser.
package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// EmHeight is the fixed em size, in pixels, that font-relative lengths
// resolve against.
const EmHeight = 16.0

// Metric is the resolution rule of a Length.
type Metric int

const (
	MetricPx Metric = iota // absolute pixels
	MetricEm               // font-relative, resolved against EmHeight
)

func (m Metric) String() string {
	switch m {
	case MetricEm:
		return "em"
	default:
		return "px"
	}
}

// Length is a parsed numeric value tagged with a resolution rule.
type Length struct {
	Metric Metric
	Number float64
}

// Pixels resolves the length to absolute pixels.
func (l Length) Pixels() float64 {
	if l.Metric == MetricEm {
		return l.Number * EmHeight
	}
	return l.Number
}

// CSS returns the canonical textual form, e.g. "15px" or "1.2em".
func (l Length) CSS() string {
	return fmtFloat(l.Number) + l.Metric.String()
}

// BorderStyle is the line style of a border side.
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

func (s BorderStyle) String() string {
	switch s {
	case BorderStyleSolid:
		return "solid"
	case BorderStyleDouble:
		return "double"
	case BorderStyleDotted:
		return "dotted"
	case BorderStyleDashed:
		return "dashed"
	case BorderStyleHidden:
		return "hidden"
	case BorderStyleGroove:
		return "groove"
	case BorderStyleRidge:
		return "ridge"
	case BorderStyleInset:
		return "inset"
	case BorderStyleOutset:
		return "outset"
	default:
		return "none"
	}
}

// Size is a 2D extent; radius corners always have W == H.
type Size struct {
	W, H float64
}

// BorderRadius holds the four corner radii of a box.
type BorderRadius struct {
	TopLeft     Size
	TopRight    Size
	BottomRight Size
	BottomLeft  Size
}

// UniformRadius returns a radius with all four corners equal.
func UniformRadius(r float64) BorderRadius {
	s := Size{r, r}
	return BorderRadius{TopLeft: s, TopRight: s, BottomRight: s, BottomLeft: s}
}

// CSS returns the four-value shorthand form, e.g. "15px 50px 30px 5px".
func (r BorderRadius) CSS() string {
	return fmtPx(r.TopLeft.W) + " " + fmtPx(r.TopRight.W) + " " +
		fmtPx(r.BottomRight.W) + " " + fmtPx(r.BottomLeft.W)
}

// BorderWidths holds per-side border thickness in pixels. The border
// shorthand always produces four equal widths.
type BorderWidths struct {
	Top, Right, Bottom, Left float64
}

// BorderSide is the color and style of one border side.
type BorderSide struct {
	Color color.NRGBA
	Style BorderStyle
}

// Border is a uniform four-sided border descriptor. All four sides carry
// identical copies of the parsed color/style pair; Radius is zero unless
// the caller composes a border-radius in.
type Border struct {
	Widths BorderWidths
	Top    BorderSide
	Right  BorderSide
	Bottom BorderSide
	Left   BorderSide
	Radius BorderRadius
}

// CSS returns the shorthand form, e.g. "5px solid #ff0000".
func (b Border) CSS() string {
	return fmtPx(b.Widths.Top) + " " + b.Top.Style.String() + " " + formatColor(b.Top.Color)
}

// ClipMode tells whether a shadow is painted outside or inside the shape
// that casts it.
type ClipMode int

const (
	ClipOutset ClipMode = iota
	ClipInset
)

func (c ClipMode) String() string {
	if c == ClipInset {
		return "inset"
	}
	return "outset"
}

// BoxShadow is a parsed box-shadow descriptor. Offsets are in pixels; blur
// and spread radii are never negative.
type BoxShadow struct {
	OffsetX float64
	OffsetY float64
	Color   color.NRGBA
	Blur    float64
	Spread  float64
	Clip    ClipMode
}

// CSS returns the full positional form, e.g. "5px 10px 5px 10px #888888 inset".
// The outset keyword is omitted since it is the default.
func (s BoxShadow) CSS() string {
	out := fmtPx(s.OffsetX) + " " + fmtPx(s.OffsetY) + " " +
		fmtPx(s.Blur) + " " + fmtPx(s.Spread) + " " + formatColor(s.Color)
	if s.Clip == ClipInset {
		out += " inset"
	}
	return out
}

// Corner is one of the four edges or four diagonal corners of a rectangle,
// used to describe gradient direction.
type Corner int

const (
	CornerRight Corner = iota
	CornerLeft
	CornerTop
	CornerBottom
	CornerTopRight
	CornerTopLeft
	CornerBottomRight
	CornerBottomLeft
)

func (c Corner) String() string {
	switch c {
	case CornerRight:
		return "right"
	case CornerLeft:
		return "left"
	case CornerTop:
		return "top"
	case CornerBottom:
		return "bottom"
	case CornerTopRight:
		return "top right"
	case CornerTopLeft:
		return "top left"
	case CornerBottomRight:
		return "bottom right"
	default:
		return "bottom left"
	}
}

// Opposite returns the reflection of the edge or corner across the center.
// It is an involution.
func (c Corner) Opposite() Corner {
	switch c {
	case CornerRight:
		return CornerLeft
	case CornerLeft:
		return CornerRight
	case CornerTop:
		return CornerBottom
	case CornerBottom:
		return CornerTop
	case CornerTopRight:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopRight
	case CornerTopLeft:
		return CornerBottomRight
	default:
		return CornerTopLeft
	}
}

// Combine maps two perpendicular edges to the diagonal corner they bound,
// in either argument order. Any other pair, including an edge with itself
// or with its own opposite, reports false.
func (c Corner) Combine(other Corner) (Corner, bool) {
	a, b := c, other
	if a > b {
		a, b = b, a
	}
	switch {
	case a == CornerRight && b == CornerTop:
		return CornerTopRight, true
	case a == CornerLeft && b == CornerTop:
		return CornerTopLeft, true
	case a == CornerRight && b == CornerBottom:
		return CornerBottomRight, true
	case a == CornerLeft && b == CornerBottom:
		return CornerBottomLeft, true
	default:
		return 0, false
	}
}

// Direction describes the axis of a linear gradient: either an angle in
// degrees or a corner-to-corner pair.
type Direction struct {
	IsAngle bool
	Degrees float64
	From    Corner
	To      Corner
}

// Angle returns an angle direction in degrees.
func Angle(deg float64) Direction {
	return Direction{IsAngle: true, Degrees: deg}
}

// FromTo returns a corner-to-corner direction.
func FromTo(from, to Corner) Direction {
	return Direction{From: from, To: to}
}

// DefaultDirection is the direction used when a gradient names none:
// top to bottom.
func DefaultDirection() Direction {
	return FromTo(CornerTop, CornerBottom)
}

// CSS returns the canonical textual form, e.g. "50deg" or "to bottom right".
func (d Direction) CSS() string {
	if d.IsAngle {
		return fmtFloat(d.Degrees) + "deg"
	}
	return "to " + d.To.String()
}

// Shape is the shape of a radial gradient.
type Shape int

const (
	ShapeEllipse Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "ellipse"
}

// ExtendMode tells how a gradient behaves beyond its defined stop range.
type ExtendMode int

const (
	ExtendClamp ExtendMode = iota
	ExtendRepeat
)

// GradientStop is a color plus a position along the gradient axis. Before
// normalization HasOffset may be false; ParseGradient returns stops with
// every offset defined, in [0,1] and non-decreasing.
type GradientStop struct {
	Color     color.NRGBA
	Offset    float64
	HasOffset bool
}

// CSS returns the stop in its textual form, e.g. "#ff0000 25%".
func (s GradientStop) CSS() string {
	if !s.HasOffset {
		return formatColor(s.Color)
	}
	return formatColor(s.Color) + " " + fmtPercent(s.Offset)
}

// Gradient is a parsed gradient descriptor; the concrete type is either
// *LinearGradient or *RadialGradient.
type Gradient interface {
	// CSS returns the canonical textual form of the gradient.
	CSS() string
	// GradientStops returns the normalized stop list.
	GradientStops() []GradientStop
}

// LinearGradient is a linear (or repeating linear) gradient descriptor.
type LinearGradient struct {
	Direction Direction
	Extend    ExtendMode
	Stops     []GradientStop
}

func (g *LinearGradient) GradientStops() []GradientStop { return g.Stops }

func (g *LinearGradient) CSS() string {
	name := "linear-gradient"
	if g.Extend == ExtendRepeat {
		name = "repeating-linear-gradient"
	}
	parts := make([]string, 0, len(g.Stops)+1)
	parts = append(parts, g.Direction.CSS())
	for _, s := range g.Stops {
		parts = append(parts, s.CSS())
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// RadialGradient is a radial (or repeating radial) gradient descriptor.
type RadialGradient struct {
	Shape  Shape
	Extend ExtendMode
	Stops  []GradientStop
}

func (g *RadialGradient) GradientStops() []GradientStop { return g.Stops }

func (g *RadialGradient) CSS() string {
	name := "radial-gradient"
	if g.Extend == ExtendRepeat {
		name = "repeating-radial-gradient"
	}
	parts := make([]string, 0, len(g.Stops)+1)
	parts = append(parts, g.Shape.String())
	for _, s := range g.Stops {
		parts = append(parts, s.CSS())
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// formatColor returns the hex form of a color: #rrggbb, or #rrggbbaa when
// the color is not fully opaque.
func formatColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// fmtFloat formats a float with the shortest representation that parses
// back to the same value, keeping CSS() round-trippable.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fmtPx(v float64) string {
	return fmtFloat(v) + "px"
}

// fmtPercent renders a stop offset fraction as a percentage. Eight
// significant digits absorb the rounding introduced by the division by 100
// during parsing, so values written out as percentages survive a reparse.
func fmtPercent(v float64) string {
	return strconv.FormatFloat(v*100, 'g', 8, 64) + "%"
}

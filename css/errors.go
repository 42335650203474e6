package css

import "errors"

// Error kinds returned by the value parsers. Every returned error wraps one
// of these sentinels and carries the offending token or input, so callers
// can match with errors.Is while diagnostics stay exact.
var (
	// ErrUnit reports a length token whose suffix is neither px nor em.
	ErrUnit = errors.New("unrecognized unit")
	// ErrNumber reports a numeric prefix that does not parse as a float.
	ErrNumber = errors.New("malformed number")
	// ErrColor reports an unknown color name or a hex literal of invalid length.
	ErrColor = errors.New("invalid color")
	// ErrColorComponent reports a non-hex digit inside a hex literal.
	ErrColorComponent = errors.New("invalid color component")
	// ErrBorderStyle reports an unknown border style keyword.
	ErrBorderStyle = errors.New("invalid border style")
	// ErrBorder reports a border shorthand with the wrong token count.
	ErrBorder = errors.New("invalid border declaration")
	// ErrRadius reports a border-radius shorthand with zero or more than
	// four components.
	ErrRadius = errors.New("invalid border-radius")
	// ErrShadow reports a malformed box-shadow declaration.
	ErrShadow = errors.New("invalid box-shadow")
	// ErrShadowParts reports a box-shadow with more than six components.
	ErrShadowParts = errors.New("too many box-shadow components")
	// ErrGradient reports an unknown gradient kind or malformed body.
	ErrGradient = errors.New("invalid gradient")
	// ErrUnclosedGradient reports a gradient without a closing parenthesis.
	ErrUnclosedGradient = errors.New("unclosed gradient")
	// ErrGradientStops reports fewer than two stops after prefix removal.
	ErrGradientStops = errors.New("too few gradient stops")
	// ErrStop reports a malformed gradient stop.
	ErrStop = errors.New("invalid gradient stop")
	// ErrDirection reports a malformed gradient direction.
	ErrDirection = errors.New("invalid direction")
	// ErrCorner reports an unknown direction corner keyword.
	ErrCorner = errors.New("invalid direction corner")
	// ErrShape reports an unknown radial gradient shape keyword.
	ErrShape = errors.New("invalid shape")
)

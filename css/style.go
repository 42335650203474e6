package css

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parser splits declaration lists into per-property value strings ready for
// the typed value parsers.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a declaration parser. A nil logger disables logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-values")}
}

// Style holds the raw property values of one declaration list. Typed
// accessors parse individual properties on demand.
type Style struct {
	Properties map[string]string
}

// ParseDeclarations parses an inline declaration list such as
// "border: 1px solid red; background: linear-gradient(red, blue)" into a
// Style. Property names are lowercased; custom properties and malformed
// declarations are skipped.
func (p *Parser) ParseDeclarations(data []byte) *Style {
	style := &Style{Properties: make(map[string]string)}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, true)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// end of input or unrecoverable syntax
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("declaration parse stopped", zap.Error(err))
			}
			return style

		case css.DeclarationGrammar:
			property := strings.ToLower(string(data))
			value := rawValue(parser.Values())
			style.Properties[property] = value
			p.log.Debug("parsed declaration",
				zap.String("property", property), zap.String("value", value))

		case css.CustomPropertyGrammar:
			p.log.Debug("skipping custom property", zap.String("name", string(data)))
		}
	}
}

// rawValue reassembles declaration tokens into a single trimmed,
// space-normalized value string: whitespace runs collapse to one space,
// every comma is followed by exactly one space, and no space appears just
// inside parentheses. The tokenizer may drop whitespace after commas in
// function arguments, so separation there is restored rather than copied.
func rawValue(tokens []css.Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if n := b.Len(); n > 0 && b.String()[n-1] != '(' {
				space = true
			}
		case css.CommaToken, css.RightParenthesisToken:
			// bind to the preceding token, dropping any pending space
			b.Write(t.Data)
			space = t.TokenType == css.CommaToken
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			b.Write(t.Data)
		}
	}
	return b.String()
}

// Get returns the raw value of a property.
func (s *Style) Get(property string) (string, bool) {
	v, ok := s.Properties[property]
	return v, ok
}

// Border returns the parsed border declaration, with any border-radius
// declaration composed into it, or nil when the property is absent.
func (s *Style) Border() (*Border, error) {
	v, ok := s.Get("border")
	if !ok {
		return nil, nil
	}
	b, err := ParseBorder(v)
	if err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	if r, err := s.BorderRadius(); err == nil && r != nil {
		b.Radius = *r
	}
	return &b, nil
}

// BorderRadius returns the parsed border-radius declaration, or nil when
// the property is absent.
func (s *Style) BorderRadius() (*BorderRadius, error) {
	v, ok := s.Get("border-radius")
	if !ok {
		return nil, nil
	}
	r, err := ParseBorderRadius(v)
	if err != nil {
		return nil, fmt.Errorf("border-radius: %w", err)
	}
	return &r, nil
}

// BoxShadow returns the parsed box-shadow declaration; nil for an absent
// property as well as for the literal "none".
func (s *Style) BoxShadow() (*BoxShadow, error) {
	v, ok := s.Get("box-shadow")
	if !ok {
		return nil, nil
	}
	sh, err := ParseBoxShadow(v)
	if err != nil {
		return nil, fmt.Errorf("box-shadow: %w", err)
	}
	return sh, nil
}

// Background returns the gradient parsed from the background property, or
// nil when it is absent.
func (s *Style) Background() (Gradient, error) {
	v, ok := s.Get("background")
	if !ok {
		return nil, nil
	}
	g, err := ParseGradient(v)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return g, nil
}

// TextColor returns the parsed color property, or nil when it is absent.
func (s *Style) TextColor() (*color.NRGBA, error) {
	v, ok := s.Get("color")
	if !ok {
		return nil, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	return &c, nil
}

// Check parses every recognized typed property and returns the combined
// failures, one wrapped error per bad declaration.
func (s *Style) Check() error {
	var err error
	if _, e := s.TextColor(); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := s.BorderRadius(); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := s.Border(); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := s.BoxShadow(); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := s.Background(); e != nil {
		err = multierr.Append(err, e)
	}
	return err
}

package css_test

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssval/css"
)

func TestParseDeclarations(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	style := p.ParseDeclarations([]byte(
		"COLOR: red; border: 1px solid blue; background: linear-gradient(red, blue); --x: 1"))

	if v, ok := style.Get("color"); !ok || v != "red" {
		t.Errorf("bad color value: %q %v", v, ok)
	}
	if v, ok := style.Get("border"); !ok || v != "1px solid blue" {
		t.Errorf("bad border value: %q %v", v, ok)
	}
	if v, ok := style.Get("background"); !ok || v != "linear-gradient(red, blue)" {
		t.Errorf("bad background value: %q %v", v, ok)
	}
	if _, ok := style.Get("--x"); ok {
		t.Error("custom property was not skipped")
	}
	if _, ok := style.Get("missing"); ok {
		t.Error("absent property reported present")
	}
}

// Raw values come back space-normalized however the source spaced them:
// whitespace runs collapse and every comma is followed by one space.
func TestParseDeclarationsValueSpacing(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "background: linear-gradient(red, blue)", want: "linear-gradient(red, blue)"},
		{input: "background: linear-gradient(red,blue)", want: "linear-gradient(red, blue)"},
		{input: "background: linear-gradient( red ,  blue )", want: "linear-gradient(red, blue)"},
		{input: "background: radial-gradient(circle,red 10%,blue)", want: "radial-gradient(circle, red 10%, blue)"},
		{input: "border:  1px   solid  red", want: "1px solid red"},
	}
	p := css.NewParser(nil)
	for _, c := range cases {
		style := p.ParseDeclarations([]byte(c.input))
		property, _, _ := strings.Cut(c.input, ":")
		if v, ok := style.Get(property); !ok || v != c.want {
			t.Errorf("bad value for %q: %q, expected %q", c.input, v, c.want)
		}
	}
}

func TestStyleTypedAccessors(t *testing.T) {
	p := css.NewParser(nil)
	style := p.ParseDeclarations([]byte(
		"color: #ff000080;" +
			"border: 5px solid red;" +
			"border-radius: 15px 50px;" +
			"box-shadow: 5px 10px 5px #888888 inset;" +
			"background: radial-gradient(circle, red, blue)"))

	c, err := style.TextColor()
	if err != nil {
		t.Fatal(err)
	}
	if c == nil || *c != (color.NRGBA{R: 0xFF, A: 0x80}) {
		t.Errorf("bad color: %+v", c)
	}

	b, err := style.Border()
	if err != nil {
		t.Fatal(err)
	}
	if b == nil || b.Widths.Top != 5 || b.Top.Style != css.BorderStyleSolid {
		t.Errorf("bad border: %+v", b)
	}
	// the radius declaration is folded into the border descriptor
	if b.Radius.TopLeft.W != 15 || b.Radius.TopRight.W != 50 {
		t.Errorf("bad composed radius: %+v", b.Radius)
	}

	sh, err := style.BoxShadow()
	if err != nil {
		t.Fatal(err)
	}
	if sh == nil || sh.Clip != css.ClipInset || sh.Blur != 5 ||
		sh.Color != (color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}) {
		t.Errorf("bad shadow: %+v", sh)
	}

	g, err := style.Background()
	if err != nil {
		t.Fatal(err)
	}
	if rg, ok := g.(*css.RadialGradient); !ok || rg.Shape != css.ShapeCircle {
		t.Errorf("bad background: %+v", g)
	}

	if err := style.Check(); err != nil {
		t.Errorf("check failed on a valid style: %v", err)
	}
}

func TestStyleAbsentProperties(t *testing.T) {
	style := css.NewParser(nil).ParseDeclarations([]byte("margin: 0"))

	if c, err := style.TextColor(); c != nil || err != nil {
		t.Errorf("bad absent color: %v %v", c, err)
	}
	if b, err := style.Border(); b != nil || err != nil {
		t.Errorf("bad absent border: %v %v", b, err)
	}
	if sh, err := style.BoxShadow(); sh != nil || err != nil {
		t.Errorf("bad absent shadow: %v %v", sh, err)
	}
	if g, err := style.Background(); g != nil || err != nil {
		t.Errorf("bad absent background: %v %v", g, err)
	}
	if err := style.Check(); err != nil {
		t.Errorf("check failed on untyped properties: %v", err)
	}
}

func TestStyleBoxShadowNone(t *testing.T) {
	style := css.NewParser(nil).ParseDeclarations([]byte("box-shadow: none"))
	sh, err := style.BoxShadow()
	if err != nil {
		t.Fatal(err)
	}
	if sh != nil {
		t.Errorf("expected no shadow, got %+v", sh)
	}
}

func TestStyleCheck(t *testing.T) {
	style := css.NewParser(nil).ParseDeclarations([]byte(
		"color: nosuch; border: 1px wavy red; box-shadow: 1px"))

	err := style.Check()
	if err == nil {
		t.Fatal("check passed on a broken style")
	}
	if !errors.Is(err, css.ErrColor) {
		t.Errorf("color failure missing: %v", err)
	}
	if !errors.Is(err, css.ErrBorderStyle) {
		t.Errorf("border failure missing: %v", err)
	}
	if !errors.Is(err, css.ErrShadow) {
		t.Errorf("shadow failure missing: %v", err)
	}
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("bad failure count: %d", got)
	}
}

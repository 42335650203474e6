package css_test

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/colornames"

	"cssval/css"
)

func TestParseColorHex(t *testing.T) {
	cases := []struct {
		input string
		want  color.NRGBA
	}{
		{input: "#F0F8FF", want: color.NRGBA{R: 0xF0, G: 0xF8, B: 0xFF, A: 0xFF}},
		{input: "#f0f8ff", want: color.NRGBA{R: 0xF0, G: 0xF8, B: 0xFF, A: 0xFF}},
		{input: "#000000", want: color.NRGBA{A: 0xFF}},
		{input: "#abc", want: color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF}},
		{input: "#abcd", want: color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xDD}},
		{input: "#11223344", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{input: "#ff000080", want: color.NRGBA{R: 0xFF, A: 0x80}},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := css.ParseColor(c.input)
			if err != nil {
				t.Fatalf("unable to parse %q: %v", c.input, err)
			}
			if got != c.want {
				t.Errorf("bad result for %q: %+v, expected %+v", c.input, got, c.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	cases := []struct {
		input   string
		errKind error
	}{
		{input: "#12345", errKind: css.ErrColor},
		{input: "#1234567", errKind: css.ErrColor},
		{input: "#", errKind: css.ErrColor},
		{input: "#ggg", errKind: css.ErrColorComponent},
		{input: "#12345z", errKind: css.ErrColorComponent},
		{input: "no-such-color", errKind: css.ErrColor},
		{input: "", errKind: css.ErrColor},
	}
	for _, c := range cases {
		if _, err := css.ParseColor(c.input); !errors.Is(err, c.errKind) {
			t.Errorf("bad error for %q: %v", c.input, err)
		}
	}
}

func TestParseColorNamed(t *testing.T) {
	cases := []struct {
		input string
		want  color.NRGBA
	}{
		{input: "AliceBlue", want: color.NRGBA{R: 0xF0, G: 0xF8, B: 0xFF, A: 0xFF}},
		{input: "alice-blue", want: color.NRGBA{R: 0xF0, G: 0xF8, B: 0xFF, A: 0xFF}},
		{input: "Red", want: color.NRGBA{R: 0xFF, A: 0xFF}},
		{input: "red", want: color.NRGBA{R: 0xFF, A: 0xFF}},
		{input: "Transparent", want: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{input: "RebeccaPurple", want: color.NRGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xFF}},
		{input: "rebecca-purple", want: color.NRGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xFF}},
		{input: "LightGoldenRodYellow", want: color.NRGBA{R: 0xFA, G: 0xFA, B: 0xD2, A: 0xFF}},
		{input: "light-golden-rod-yellow", want: color.NRGBA{R: 0xFA, G: 0xFA, B: 0xD2, A: 0xFF}},
	}
	for _, c := range cases {
		got, err := css.ParseColor(c.input)
		if err != nil {
			t.Fatalf("unable to parse %q: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("bad result for %q: %+v, expected %+v", c.input, got, c.want)
		}
	}

	// Spelling variants match only in their exact form.
	if _, err := css.ParseColor("aliceblue"); !errors.Is(err, css.ErrColor) {
		t.Errorf("lowercased keyword unexpectedly accepted: %v", err)
	}
	if _, err := css.ParseColor("Alice-Blue"); !errors.Is(err, css.ErrColor) {
		t.Errorf("mixed keyword unexpectedly accepted: %v", err)
	}
}

// Cross-check the keyword table against the SVG 1.1 palette. Transparent is a
// deliberate exception and a few keywords are absent from the SVG set.
func TestColorNamesAgainstSVG(t *testing.T) {
	for _, name := range css.ColorNames() {
		if name == "Transparent" {
			continue
		}
		svg, ok := colornames.Map[strings.ToLower(name)]
		if !ok {
			continue
		}
		got, err := css.ParseColor(name)
		if err != nil {
			t.Fatalf("unable to parse %q: %v", name, err)
		}
		want := color.NRGBA{R: svg.R, G: svg.G, B: svg.B, A: svg.A}
		if got != want {
			t.Errorf("bad value for %q: %+v, expected %+v", name, got, want)
		}
	}
}

// Command cssval parses CSS style-property values and dumps the resulting
// render-ready descriptors as YAML. It exists for troubleshooting style
// pipelines that consume the cssval/css package.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cssval/css"
)

func main() {
	app := &cli.Command{
		Name:            "cssval",
		Usage:           "parse CSS style values into render-ready descriptors",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log parsing decisions to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "length",
				Usage:     "Parse a length value such as '15px' or '1.2em'",
				ArgsUsage: "VALUE",
				Action:    parseAction(func(v string) (any, error) { return css.ParseLength(v) }),
			},
			{
				Name:      "color",
				Usage:     "Parse a color value such as '#F0F8FF' or 'alice-blue'",
				ArgsUsage: "VALUE",
				Action:    parseAction(func(v string) (any, error) { return css.ParseColor(v) }),
			},
			{
				Name:      "radius",
				Usage:     "Parse a border-radius shorthand such as '15px 50px'",
				ArgsUsage: "VALUE",
				Action:    parseAction(func(v string) (any, error) { return css.ParseBorderRadius(v) }),
			},
			{
				Name:      "border",
				Usage:     "Parse a border shorthand such as '5px solid red'",
				ArgsUsage: "VALUE",
				Action:    parseAction(func(v string) (any, error) { return css.ParseBorder(v) }),
			},
			{
				Name:      "shadow",
				Usage:     "Parse a box-shadow value such as '5px 10px #888888 inset'",
				ArgsUsage: "VALUE",
				Action:    parseAction(func(v string) (any, error) { return css.ParseBoxShadow(v) }),
			},
			{
				Name:      "gradient",
				Usage:     "Parse a gradient value such as 'linear-gradient(red, blue)'",
				ArgsUsage: "VALUE",
				Action:    parseAction(func(v string) (any, error) { return css.ParseGradient(v) }),
			},
			{
				Name:      "decl",
				Usage:     "Parse an inline declaration list and dump every typed property",
				ArgsUsage: "DECLARATIONS",
				Action:    declAction,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}

// argValue joins all positional arguments so unquoted multi-token values
// work from the shell.
func argValue(cmd *cli.Command) (string, error) {
	v := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if v == "" {
		return "", fmt.Errorf("missing VALUE argument")
	}
	return v, nil
}

func parseAction(parse func(string) (any, error)) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		v, err := argValue(cmd)
		if err != nil {
			return err
		}
		result, err := parse(v)
		if err != nil {
			return err
		}
		return dump(result)
	}
}

func declAction(_ context.Context, cmd *cli.Command) error {
	v, err := argValue(cmd)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if cmd.Bool("debug") {
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("unable to prepare logs: %w", err)
		}
		defer log.Sync() //nolint:errcheck
	}

	style := css.NewParser(log).ParseDeclarations([]byte(v))

	var out struct {
		Properties   map[string]string
		Color        *struct{ R, G, B, A uint8 } `yaml:",omitempty"`
		Border       *css.Border                 `yaml:",omitempty"`
		BorderRadius *css.BorderRadius           `yaml:"border-radius,omitempty"`
		BoxShadow    *css.BoxShadow              `yaml:"box-shadow,omitempty"`
		Background   css.Gradient                `yaml:",omitempty"`
	}
	out.Properties = style.Properties

	var errs error
	if c, err := style.TextColor(); err != nil {
		errs = multierr.Append(errs, err)
	} else if c != nil {
		out.Color = &struct{ R, G, B, A uint8 }{c.R, c.G, c.B, c.A}
	}
	if b, err := style.Border(); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		out.Border = b
	}
	if r, err := style.BorderRadius(); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		out.BorderRadius = r
	}
	if sh, err := style.BoxShadow(); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		out.BoxShadow = sh
	}
	if g, err := style.Background(); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		out.Background = g
	}

	if err := dump(&out); err != nil {
		return multierr.Append(errs, err)
	}
	return errs
}

func dump(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("unable to marshal result: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

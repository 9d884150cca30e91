// Package form asks for circle parameters on the terminal.
//
// Every field is checked as it is entered, so the values Collect returns
// satisfy the input minimums ([circlepoints.MinRadius],
// [circlepoints.MinPoints]) and carry a parseable color.
package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"honnef.co/go/circlepoints"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("form: aborted")

// InputConfig configures a single-line text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Prompter abstracts the terminal so the form can be driven by tests.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// Collect asks for every circle parameter, offering spec and style as
// defaults, and returns the entered values.
func Collect(ctx context.Context, p Prompter, spec circlepoints.CircleSpec, style circlepoints.RenderStyle) (circlepoints.CircleSpec, circlepoints.RenderStyle, error) {
	var err error
	ask := func(cfg InputConfig) string {
		if err != nil {
			return ""
		}
		var s string
		s, err = p.Input(ctx, cfg)
		return strings.TrimSpace(s)
	}

	x := ask(InputConfig{Message: "X střed", Default: formatFloat(spec.Center.X), Validator: validateFloat})
	y := ask(InputConfig{Message: "Y střed", Default: formatFloat(spec.Center.Y), Validator: validateFloat})
	r := ask(InputConfig{
		Message:   fmt.Sprintf("Poloměr [%s]", style.AxisUnit),
		Default:   formatFloat(spec.Radius),
		Help:      fmt.Sprintf("nejméně %g", circlepoints.MinRadius),
		Validator: validateRadius,
	})
	n := ask(InputConfig{
		Message:   "Počet bodů",
		Default:   strconv.Itoa(spec.Count),
		Help:      fmt.Sprintf("nejméně %d", circlepoints.MinPoints),
		Validator: validateCount,
	})
	c := ask(InputConfig{Message: "Barva bodů", Default: string(style.Color), Help: "#RRGGBB", Validator: validateColor})
	u := ask(InputConfig{Message: "Jednotka os", Default: style.AxisUnit, Validator: validateUnit})
	if err != nil {
		return circlepoints.CircleSpec{}, circlepoints.RenderStyle{}, err
	}

	// The prompter may not enforce validators, so check again.
	for _, check := range []struct {
		v  string
		fn func(string) error
	}{{x, validateFloat}, {y, validateFloat}, {r, validateRadius}, {n, validateCount}, {c, validateColor}, {u, validateUnit}} {
		if err := check.fn(check.v); err != nil {
			return circlepoints.CircleSpec{}, circlepoints.RenderStyle{}, err
		}
	}

	xf, _ := strconv.ParseFloat(x, 64)
	yf, _ := strconv.ParseFloat(y, 64)
	rf, _ := strconv.ParseFloat(r, 64)
	ni, _ := strconv.Atoi(n)
	return circlepoints.CircleSpec{
			Center: circlepoints.Pt(xf, yf),
			Radius: rf,
			Count:  ni,
		}, circlepoints.RenderStyle{
			Color:    circlepoints.HexColor(c),
			AxisUnit: u,
		}, nil
}

// ConfirmExport asks whether to write the PDF report.
func ConfirmExport(ctx context.Context, p Prompter) (bool, error) {
	return p.Confirm(ctx, ConfirmConfig{Message: "Uložit výstup do PDF?", Default: false})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

func validateFloat(s string) error {
	f, err := parseFloat(s)
	if err != nil {
		return err
	}
	spec := circlepoints.CircleSpec{Center: circlepoints.Pt(f, 0), Radius: circlepoints.MinRadius, Count: circlepoints.MinPoints}
	return spec.Validate()
}

func validateRadius(s string) error {
	f, err := parseFloat(s)
	if err != nil {
		return err
	}
	spec := circlepoints.CircleSpec{Radius: f, Count: circlepoints.MinPoints}
	return spec.Validate()
}

func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	spec := circlepoints.CircleSpec{Radius: circlepoints.MinRadius, Count: n}
	return spec.Validate()
}

func validateColor(s string) error {
	style := circlepoints.RenderStyle{Color: circlepoints.HexColor(strings.TrimSpace(s)), AxisUnit: "-"}
	return style.Validate()
}

func validateUnit(s string) error {
	style := circlepoints.RenderStyle{Color: "#000", AxisUnit: strings.TrimSpace(s)}
	return style.Validate()
}

package form

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/circlepoints"
)

type stubPrompter struct {
	inputs     []string
	confirm    []bool
	inputPos   int
	confirmPos int
	asked      []InputConfig
}

func (s *stubPrompter) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.asked = append(s.asked, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubPrompter) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func TestCollect(t *testing.T) {
	p := &stubPrompter{inputs: []string{"2", " 3 ", "1", "3", "#ff0000", "cm"}}
	spec, style, err := Collect(context.Background(), p, circlepoints.DefaultSpec(), circlepoints.DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	wantSpec := circlepoints.CircleSpec{Center: circlepoints.Pt(2, 3), Radius: 1, Count: 3}
	if d := cmp.Diff(wantSpec, spec); d != "" {
		t.Error(d)
	}
	wantStyle := circlepoints.RenderStyle{Color: "#ff0000", AxisUnit: "cm"}
	if d := cmp.Diff(wantStyle, style); d != "" {
		t.Error(d)
	}
	if p.inputPos != 6 {
		t.Fatalf("got %d prompts, want 6", p.inputPos)
	}
}

func TestCollectDefaults(t *testing.T) {
	p := &stubPrompter{inputs: []string{"0", "0", "5", "12", "#0000FF", "m"}}
	if _, _, err := Collect(context.Background(), p, circlepoints.DefaultSpec(), circlepoints.DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	var defaults []string
	for _, cfg := range p.asked {
		defaults = append(defaults, cfg.Default)
	}
	want := []string{"0", "0", "5", "12", "#0000FF", "m"}
	if d := cmp.Diff(want, defaults); d != "" {
		t.Error(d)
	}
	if got := p.asked[2].Message; got != "Poloměr [m]" {
		t.Errorf("got radius prompt %q", got)
	}
}

func TestCollectRejectsInvalid(t *testing.T) {
	for _, inputs := range [][]string{
		{"x", "0", "5", "12", "#0000FF", "m"},
		{"0", "0", "0.05", "12", "#0000FF", "m"},
		{"0", "0", "5", "2", "#0000FF", "m"},
		{"0", "0", "5", "3.5", "#0000FF", "m"},
		{"0", "0", "5", "12", "blue", "m"},
		{"0", "0", "5", "12", "#0000FF", " "},
	} {
		p := &stubPrompter{inputs: inputs}
		if _, _, err := Collect(context.Background(), p, circlepoints.DefaultSpec(), circlepoints.DefaultStyle()); err == nil {
			t.Errorf("%q: expected error", inputs)
		}
	}
}

func TestCollectPrompterError(t *testing.T) {
	p := &stubPrompter{inputs: []string{"0", "0"}}
	_, _, err := Collect(context.Background(), p, circlepoints.DefaultSpec(), circlepoints.DefaultStyle())
	if err == nil {
		t.Fatal("expected error")
	}
	if p.inputPos != 2 || len(p.asked) != 3 {
		t.Errorf("expected prompting to stop after the first failure, asked %d times", len(p.asked))
	}
}

func TestValidators(t *testing.T) {
	for _, tt := range []struct {
		fn func(string) error
		in string
		ok bool
	}{
		{validateFloat, "-1.5", true},
		{validateFloat, "1e3", true},
		{validateFloat, "NaN", false},
		{validateFloat, "", false},
		{validateRadius, "0.1", true},
		{validateRadius, "0", false},
		{validateRadius, "-5", false},
		{validateCount, "3", true},
		{validateCount, "2", false},
		{validateColor, "#abc", true},
		{validateColor, "abc", false},
		{validateUnit, "m", true},
		{validateUnit, "", false},
	} {
		if err := tt.fn(tt.in); (err == nil) != tt.ok {
			t.Errorf("%q: got error %v, want ok=%t", tt.in, err, tt.ok)
		}
	}
}

func TestConfirmExport(t *testing.T) {
	p := &stubPrompter{confirm: []bool{true}}
	ok, err := ConfirmExport(context.Background(), p)
	if err != nil || !ok {
		t.Errorf("got %t, %v; want true, nil", ok, err)
	}
}

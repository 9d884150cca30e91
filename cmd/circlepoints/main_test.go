package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"honnef.co/go/circlepoints"
	"honnef.co/go/circlepoints/internal/form"
)

type scriptedPrompter struct {
	inputs  []string
	confirm bool
}

func (s *scriptedPrompter) Input(_ context.Context, _ form.InputConfig) (string, error) {
	if len(s.inputs) == 0 {
		return "", form.ErrAborted
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scriptedPrompter) Confirm(_ context.Context, _ form.ConfirmConfig) (bool, error) {
	return s.confirm, nil
}

func TestRunFlags(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "kruh.png")
	out := filepath.Join(dir, "vystup_kruh.pdf")

	var stdout bytes.Buffer
	args := []string{"-r", "5", "-n", "4", "-image", img, "-out", out, "-pdf"}
	if err := run(context.Background(), args, &stdout, io.Discard, nil); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d output lines, want header, 4 points and the report path:\n%s", len(lines), stdout.String())
	}
	if f := strings.Fields(lines[1]); len(f) != 3 || f[1] != "5.000000" || f[2] != "0.000000" {
		t.Errorf("got first point row %q", lines[1])
	}
	if lines[5] != out {
		t.Errorf("got report path %q, want %q", lines[5], out)
	}
	for _, p := range []string{img, out} {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}
}

func TestRunNoExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "vystup_kruh.pdf")
	args := []string{"-image", filepath.Join(dir, "kruh.png"), "-out", out}
	if err := run(context.Background(), args, io.Discard, io.Discard, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("expected no report without -pdf, got %v", err)
	}
}

func TestRunInvalid(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-n", "2", "-image", filepath.Join(dir, "kruh.png")}
	err := run(context.Background(), args, io.Discard, io.Discard, nil)
	var verr *circlepoints.ValidationError
	if !errors.As(err, &verr) || verr.Field != "count" {
		t.Fatalf("got %v, want count validation error", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "kruh.png")); !os.IsNotExist(err) {
		t.Errorf("expected no image for invalid input, got %v", err)
	}
}

func TestRunInteractive(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "vystup_kruh.pdf")
	p := &scriptedPrompter{
		inputs:  []string{"2", "3", "1", "3", "#00ff00", "cm"},
		confirm: true,
	}
	var stdout bytes.Buffer
	args := []string{"-i", "-image", filepath.Join(dir, "kruh.png"), "-out", out}
	if err := run(context.Background(), args, &stdout, io.Discard, p); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "3.000000") {
		t.Errorf("expected the first point (3, 3) in the output:\n%s", stdout.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestRunInteractiveAborted(t *testing.T) {
	p := &scriptedPrompter{}
	args := []string{"-i", "-image", filepath.Join(t.TempDir(), "kruh.png")}
	if err := run(context.Background(), args, io.Discard, io.Discard, p); !errors.Is(err, form.ErrAborted) {
		t.Fatalf("got %v, want ErrAborted", err)
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "kruh.yaml")
	img := filepath.Join(dir, "plot.png")
	data := "radius: 2\ncount: 5\nimage: " + img + "\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-config", cfgPath, "-n", "6"}, &stdout, io.Discard, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 7 {
		t.Errorf("got %d lines, want header and 6 points", len(lines))
	}
	if f := strings.Fields(lines[1]); len(f) != 3 || f[1] != "2.000000" {
		t.Errorf("got first point row %q", lines[1])
	}
	if _, err := os.Stat(img); err != nil {
		t.Error(err)
	}
}

// Command circlepoints computes points evenly distributed on a circle, plots
// them and optionally exports a PDF report.
//
// Parameters come from an optional YAML file (-config), then from flags, or
// from an interactive form (-i). Every run writes the plot image; -pdf (or
// answering yes in the form) also writes the report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"honnef.co/go/circlepoints"
	"honnef.co/go/circlepoints/internal/config"
	"honnef.co/go/circlepoints/internal/form"
	"honnef.co/go/circlepoints/render"
	"honnef.co/go/circlepoints/report"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, form.NewSurveyPrompter())
	if err == nil {
		return
	}
	var verr *circlepoints.ValidationError
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.As(err, &verr):
		slog.Error("invalid parameters", "field", verr.Field, "value", verr.Value, "reason", verr.Reason)
		os.Exit(exitUsage)
	case errors.Is(err, form.ErrAborted):
		os.Exit(exitFailure)
	default:
		slog.Error("circlepoints failed", "err", err)
		os.Exit(exitFailure)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, prompter form.Prompter) error {
	fs := flag.NewFlagSet("circlepoints", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "YAML file with default parameters")
		x           = fs.Float64("x", 0, "x coordinate of the center")
		y           = fs.Float64("y", 0, "y coordinate of the center")
		radius      = fs.Float64("r", 0, "radius (at least 0.1)")
		count       = fs.Int("n", 0, "number of points (at least 3)")
		color       = fs.String("color", "", "point color as #RRGGBB")
		unit        = fs.String("unit", "", "axis unit label")
		imagePath   = fs.String("image", "", "plot image path (format from extension)")
		outPath     = fs.String("out", "", "PDF report path")
		export      = fs.Bool("pdf", false, "write the PDF report")
		interactive = fs.Bool("i", false, "ask for parameters interactively")
		verbose     = fs.Bool("v", false, "log debug output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			cfg.Center.X = *x
		case "y":
			cfg.Center.Y = *y
		case "r":
			cfg.Radius = *radius
		case "n":
			cfg.Count = *count
		case "color":
			cfg.Color = *color
		case "unit":
			cfg.Unit = *unit
		case "image":
			cfg.Image = *imagePath
		case "out":
			cfg.Output = *outPath
		}
	})

	if *interactive {
		spec, style, err := form.Collect(ctx, prompter, cfg.Spec(), cfg.Style())
		if err != nil {
			return err
		}
		cfg.SetSpec(spec)
		cfg.SetStyle(style)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	spec, style := cfg.Spec(), cfg.Style()
	logger.Debug("generating points", "center", spec.Center, "radius", spec.Radius, "count", spec.Count)
	ps := circlepoints.Generate(spec)
	if err := printPoints(stdout, ps); err != nil {
		return err
	}

	if err := render.RenderFile(cfg.Image, spec, style); err != nil {
		return err
	}
	logger.Info("plot written", "path", cfg.Image)

	if *interactive && !*export {
		*export, err = form.ConfirmExport(ctx, prompter)
		if err != nil {
			return err
		}
	}
	if !*export {
		return nil
	}

	meta := report.Metadata{
		GeneratedAt: time.Now(),
		Spec:        spec,
		Style:       style,
	}
	if _, err := os.Stat(cfg.Image); err != nil {
		logger.Warn("report image unavailable, exporting without it", "path", cfg.Image, "err", err)
	}
	path, err := report.Export(cfg.Image, cfg.Output, meta)
	if err != nil {
		return err
	}
	logger.Info("report written", "path", path)
	fmt.Fprintln(stdout, path)
	return nil
}

func printPoints(w io.Writer, ps circlepoints.PointSet) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tX\tY\t")
	for i, pt := range ps {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t\n", i, pt.X, pt.Y)
	}
	return tw.Flush()
}

// Package render draws a set of circle points as a plot image.
//
// The plot shows the points as filled markers in the style color, the circle
// they were sampled from as a dashed gray outline, a grid, and a caption with
// the circle parameters beneath the x axis. Both axes span the same range so
// the circle is not distorted on the square canvas.
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honnef.co/go/circlepoints"
)

const (
	// Title is the plot title and the legend label of the points.
	Title = "Body na kružnici"

	// DefaultSize is the side length of the square canvas.
	DefaultSize = 6 * vg.Inch

	// DefaultImage is where the command line tool writes the plot.
	DefaultImage = "kruh.png"

	// outlineSamples is the number of vertices of the polygon approximating
	// the circle outline.
	outlineSamples = 256

	// margin is the fraction of the radius added around the circle.
	margin = 0.15
)

var outlineColor = color.Gray{Y: 128}

// Caption returns the one-line parameter summary drawn under the plot.
func Caption(spec circlepoints.CircleSpec, style circlepoints.RenderStyle) string {
	return fmt.Sprintf("Střed: %s | Poloměr: %g %s | Počet bodů: %d | Barva: %s",
		spec.Center, spec.Radius, style.AxisUnit, spec.Count, style.Color)
}

// Plot builds the plot for spec and style without drawing it.
func Plot(spec circlepoints.CircleSpec, style circlepoints.RenderStyle) (*plot.Plot, error) {
	c, err := style.Color.NRGBA()
	if err != nil {
		return nil, fmt.Errorf("point color %q: %w", style.Color, err)
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = fmt.Sprintf("X [%s]\n\n%s", style.AxisUnit, Caption(spec, style))
	p.Y.Label.Text = fmt.Sprintf("Y [%s]", style.AxisUnit)

	circle := spec.Circle()
	box := circle.BoundingBox()
	box = box.Inflate(margin*box.Width()/2, margin*box.Height()/2).Square()
	p.X.Min, p.X.Max = box.X0, box.X1
	p.Y.Min, p.Y.Max = box.Y0, box.Y1

	p.Add(plotter.NewGrid())

	outline, err := plotter.NewLine(closed(circle.Points(outlineSamples)))
	if err != nil {
		return nil, fmt.Errorf("circle outline: %w", err)
	}
	outline.LineStyle.Color = outlineColor
	outline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	points, err := plotter.NewScatter(xys(circlepoints.Generate(spec)))
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	points.GlyphStyle.Color = c
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(4)

	p.Add(outline, points)
	p.Legend.Add(Title, points)
	p.Legend.Top = true

	return p, nil
}

// Render draws the plot onto w in the given image format ("png", "jpg",
// "svg", "pdf", ...).
func Render(w io.Writer, format string, spec circlepoints.CircleSpec, style circlepoints.RenderStyle) error {
	p, err := Plot(spec, style)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultSize, DefaultSize, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// RenderFile draws the plot into the file at path, replacing any existing
// file. The image format is taken from the file extension.
func RenderFile(path string, spec circlepoints.CircleSpec, style circlepoints.RenderStyle) error {
	p, err := Plot(spec, style)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultSize, DefaultSize, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

func xys(ps circlepoints.PointSet) plotter.XYs {
	out := make(plotter.XYs, len(ps))
	for i, pt := range ps {
		out[i].X, out[i].Y = pt.Splat()
	}
	return out
}

func closed(ps circlepoints.PointSet) plotter.XYs {
	out := xys(ps)
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

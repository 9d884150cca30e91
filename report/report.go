// Package report exports a single-page PDF summarizing a circle and embedding
// its rendered plot.
//
// The document consists of a centered title, the generation date, the circle
// parameters one per line, and the plot image below the text. The image is
// optional: when the file does not exist the document is written without it.
package report

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/circlepoints"
)

const (
	// Title is the heading of every report.
	Title = "Výstup – Body na kružnici"

	// DefaultOutput is the path the command line tool writes reports to.
	DefaultOutput = "vystup_kruh.pdf"

	// DateLayout formats the generation date.
	DateLayout = "2006-01-02"
)

// Page geometry, in millimeters on A4 portrait.
const (
	pageHeight   = 297.0
	marginLeft   = 10.0
	marginTop    = 10.0
	marginBottom = 10.0
	lineHeight   = 10.0
	imageX       = 15.0
	imageWidth   = 180.0
	fontSize     = 12.0
	fontFamily   = "goregular"
)

// Metadata is everything the report says about a circle.
type Metadata struct {
	GeneratedAt time.Time
	Spec        circlepoints.CircleSpec
	Style       circlepoints.RenderStyle
}

// Lines returns the text lines of the report body in document order: date,
// center, radius with unit, point count, point color and axis unit.
func Lines(meta Metadata) []string {
	return []string{
		"Datum: " + meta.GeneratedAt.Format(DateLayout),
		"Střed: " + meta.Spec.Center.String(),
		fmt.Sprintf("Poloměr: %g %s", meta.Spec.Radius, meta.Style.AxisUnit),
		fmt.Sprintf("Počet bodů: %d", meta.Spec.Count),
		fmt.Sprintf("Barva bodů: %s", meta.Style.Color),
		fmt.Sprintf("Jednotka: %s", meta.Style.AxisUnit),
	}
}

// Image describes the raster image placed below the text.
type Image struct {
	Path   string
	Format string
	// Size is the image's size in pixels.
	Size circlepoints.Size
}

// Document is a laid out report, ready to be written.
type Document struct {
	Meta  Metadata
	Title string
	Lines []string
	// Image is nil if the report has no image.
	Image *Image
}

// Build prepares the report for meta. If no file exists at imagePath, the
// returned document has no image. Any other failure to read the image is
// returned as an error.
func Build(imagePath string, meta Metadata) (*Document, error) {
	doc := &Document{
		Meta:  meta,
		Title: Title,
		Lines: Lines(meta),
	}
	img, err := probeImage(imagePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, err
	}
	doc.Image = img
	return doc, nil
}

func probeImage(path string) (*Image, error) {
	if path == "" {
		return nil, fs.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("reading image %s: empty image", path)
	}
	return &Image{
		Path:   path,
		Format: format,
		Size:   circlepoints.Sz(float64(cfg.Width), float64(cfg.Height)),
	}, nil
}

// placement returns the rectangle, in millimeters, that an image of size sz
// occupies when its top edge is at y. The image is scaled to the fixed report
// width; if that would run past the bottom margin, it is shrunk to the
// remaining height instead, keeping its aspect ratio and horizontal center.
func placement(sz circlepoints.Size, y float64) circlepoints.Rect {
	fit := sz.FitWidth(imageWidth)
	avail := pageHeight - marginBottom - y
	if fit.Height > avail && avail > 0 {
		fit = fit.Scale(avail / fit.Height)
	}
	x := imageX + (imageWidth-fit.Width)/2
	return circlepoints.Rect{X0: x, Y0: y, X1: x + fit.Width, Y1: y + fit.Height}
}

func (d *Document) pdf() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCreationDate(d.Meta.GeneratedAt)
	pdf.SetTitle(d.Title, true)
	pdf.SetCreator("circlepoints", true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.SetFont(fontFamily, "", fontSize)
	pdf.AddPage()

	pdf.CellFormat(0, lineHeight, d.Title, "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)
	for i, line := range d.Lines {
		pdf.CellFormat(0, lineHeight, line, "", 1, "", false, 0, "")
		if i == 0 {
			// The date stands apart from the parameters.
			pdf.Ln(lineHeight / 2)
		}
	}
	pdf.Ln(lineHeight)

	if img := d.Image; img != nil {
		r := placement(img.Size, pdf.GetY())
		opts := fpdf.ImageOptions{ImageType: img.Format}
		pdf.ImageOptions(img.Path, r.X0, r.Y0, r.Width(), r.Height(), false, opts, 0, "")
	}
	return pdf
}

// Write renders the document as PDF to w.
func (d *Document) Write(w io.Writer) error {
	return d.pdf().Output(w)
}

// WriteFile renders the document as PDF into the file at path, replacing
// any existing file.
func (d *Document) WriteFile(path string) error {
	return d.pdf().OutputFileAndClose(path)
}

// Export builds the report for meta, embedding the image at imagePath if it
// exists, and writes it to outPath. It returns the path of the written file.
func Export(imagePath, outPath string, meta Metadata) (string, error) {
	doc, err := Build(imagePath, meta)
	if err != nil {
		return "", err
	}
	if err := doc.WriteFile(outPath); err != nil {
		return "", fmt.Errorf("writing report %s: %w", outPath, err)
	}
	return outPath, nil
}

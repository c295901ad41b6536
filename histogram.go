package sixdegrees

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramExporter renders a frequency vector where frequencies[k] is the
// number of vertices with k connections at the analysed depth
type HistogramExporter interface {
	Export(w io.Writer, frequencies []int) error
}

// PlotExporter draws the frequencies as a bar chart
type PlotExporter struct {
	// Format is any gonum/plot output format (png, svg, pdf, ...)
	Format string
	Title  string
	Width  vg.Length
	Height vg.Length
}

// HistogramTitle names the distribution of connections at depth,
// "Sixth Degree Path Distribution" for 6
func HistogramTitle(depth int) string {
	word := ordinal(depth)
	return strings.ToUpper(word[:1]) + word[1:] + " Degree Path Distribution"
}

// NewPlotExporter returns a 640x480 point exporter for format
func NewPlotExporter(format string) *PlotExporter {
	return &PlotExporter{
		Format: format,
		Title:  HistogramTitle(DefaultDepth),
		Width:  640,
		Height: 480,
	}
}

// Export implements HistogramExporter
func (p *PlotExporter) Export(w io.Writer, frequencies []int) error {
	if len(frequencies) == 0 {
		return ErrEmptyHistogram
	}
	values := make(plotter.Values, len(frequencies))
	for i, f := range frequencies {
		values[i] = float64(f)
	}

	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = "connections per vertex"
	pl.Y.Label.Text = "vertices"

	barWidth := p.Width * 0.8 / vg.Length(len(frequencies))
	if barWidth < 1 {
		barWidth = 1
	}
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return err
	}
	bars.LineStyle.Width = 0
	bars.Color = color.RGBA{R: 96, G: 125, B: 139, A: 255}
	pl.Add(bars)

	writerTo, err := pl.WriterTo(p.Width, p.Height, p.Format)
	if err != nil {
		return err
	}
	_, err = writerTo.WriteTo(w)
	return err
}

// TSVExporter writes one "count<TAB>frequency" line per bin
type TSVExporter struct{}

// Export implements HistogramExporter
func (TSVExporter) Export(w io.Writer, frequencies []int) error {
	if len(frequencies) == 0 {
		return ErrEmptyHistogram
	}
	bw := bufio.NewWriter(w)
	for k, f := range frequencies {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", k, f); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExporterForFile picks an exporter from the file extension
func ExporterForFile(path string) (HistogramExporter, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps":
		return NewPlotExporter(ext), nil
	case "tsv", "txt":
		return TSVExporter{}, nil
	default:
		return nil, errorutil.NewWithTag("sixdegrees", "unsupported histogram format `%v`", ext)
	}
}

// ExportHistogramFile writes frequencies counted at depth to path in the
// format implied by its extension
func ExportHistogramFile(path string, depth int, frequencies []int) error {
	exporter, err := ExporterForFile(path)
	if err != nil {
		return err
	}
	if plotExporter, ok := exporter.(*PlotExporter); ok {
		plotExporter.Title = HistogramTitle(depth)
	}
	if len(frequencies) == 0 {
		return ErrEmptyHistogram
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.Export(f, frequencies); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

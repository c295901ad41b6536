package sixdegrees

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlotExporterPNG(t *testing.T) {
	var buff bytes.Buffer
	require.Nil(t, NewPlotExporter("png").Export(&buff, []int{5, 2, 0, 1}))
	require.True(t, bytes.HasPrefix(buff.Bytes(), []byte("\x89PNG")), "output is not a png")
}

func TestPlotExporterSVG(t *testing.T) {
	var buff bytes.Buffer
	require.Nil(t, NewPlotExporter("svg").Export(&buff, []int{3}))
	require.Contains(t, buff.String(), "<svg")
}

func TestTSVExporter(t *testing.T) {
	var buff bytes.Buffer
	require.Nil(t, TSVExporter{}.Export(&buff, []int{5, 2}))
	require.Equal(t, "0\t5\n1\t2\n", buff.String())
}

func TestExportEmptyHistogram(t *testing.T) {
	var buff bytes.Buffer
	require.ErrorIs(t, NewPlotExporter("png").Export(&buff, nil), ErrEmptyHistogram)
	require.ErrorIs(t, TSVExporter{}.Export(&buff, []int{}), ErrEmptyHistogram)

	path := filepath.Join(t.TempDir(), "empty.png")
	require.ErrorIs(t, ExportHistogramFile(path, DefaultDepth, nil), ErrEmptyHistogram)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "empty histogram must not create a file")
}

func TestExporterForFile(t *testing.T) {
	exporter, err := ExporterForFile("out/Histogram.PNG")
	require.Nil(t, err)
	require.IsType(t, &PlotExporter{}, exporter)

	exporter, err = ExporterForFile("freq.tsv")
	require.Nil(t, err)
	require.IsType(t, TSVExporter{}, exporter)

	_, err = ExporterForFile("histogram.bmp")
	require.NotNil(t, err)
}

func TestExportHistogramFile(t *testing.T) {
	dir := t.TempDir()
	frequencies := []int{5, 2}

	pngPath := filepath.Join(dir, "sixth_degree_distribution.png")
	require.Nil(t, ExportHistogramFile(pngPath, DefaultDepth, frequencies))
	info, err := os.Stat(pngPath)
	require.Nil(t, err)
	require.Greater(t, info.Size(), int64(0))

	tsvPath := filepath.Join(dir, "frequencies.tsv")
	require.Nil(t, ExportHistogramFile(tsvPath, DefaultDepth, frequencies))
	bin, err := os.ReadFile(tsvPath)
	require.Nil(t, err)
	require.Equal(t, "0\t5\n1\t2\n", string(bin))
}

func TestHistogramTitle(t *testing.T) {
	require.Equal(t, "Sixth Degree Path Distribution", HistogramTitle(6))
	require.Equal(t, "Third Degree Path Distribution", HistogramTitle(3))
	require.Equal(t, "12th Degree Path Distribution", HistogramTitle(12))
	require.Equal(t, NewPlotExporter("png").Title, HistogramTitle(DefaultDepth))

	// the title follows the depth the frequencies were counted at
	path := filepath.Join(t.TempDir(), "distribution.svg")
	require.Nil(t, ExportHistogramFile(path, 3, []int{1, 4}))
	bin, err := os.ReadFile(path)
	require.Nil(t, err)
	require.Contains(t, string(bin), "Third Degree Path Distribution")
	require.NotContains(t, string(bin), "Sixth")
}

package sixdegrees

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzerDefaults(t *testing.T) {
	a, err := New(Build(pathEdges(7)), &Options{})
	require.Nil(t, err)
	require.Equal(t, DefaultDepth, a.Options.Depth)
	require.Equal(t, DefaultAnalyses, a.Options.Analyses)
}

func TestAnalyzerOptionsValidation(t *testing.T) {
	g := Build(pathEdges(7))

	_, err := New(g, &Options{Analyses: []string{"pagerank"}})
	require.NotNil(t, err)

	_, err = New(g, &Options{Depth: -2})
	require.ErrorIs(t, err, ErrInvalidDepth)

	_, err = New(nil, &Options{})
	require.NotNil(t, err)

	a, err := New(g, &Options{Analyses: []string{AnalysisSimilarity, AnalysisSimilarity, AnalysisDistance}})
	require.Nil(t, err)
	require.Len(t, a.Options.Analyses, 2)
}

func TestAnalyzerExecute(t *testing.T) {
	a, err := New(Build(pathEdges(7)), &Options{Concurrency: 2})
	require.Nil(t, err)
	report, err := a.Execute(context.Background())
	require.Nil(t, err)

	require.Equal(t, GraphSummary{Vertices: 7, Edges: 6}, report.Graph)
	require.Equal(t, 2, report.SixthDegree.TotalPathCount)
	require.InDelta(t, 8.0/3.0, report.Distance.Average, 1e-12)
	require.Equal(t, Pair{A: 1, B: 3, Coefficient: 0.5, Found: true}, report.Similarity.MostSimilar)
	require.Empty(t, report.Undefined)

	// analyses always run in the same order
	phases := []string{}
	for _, timing := range report.Timings {
		phases = append(phases, timing.Phase)
	}
	require.Equal(t, DefaultAnalyses, phases)
}

func TestAnalyzerDepth(t *testing.T) {
	a, err := New(Build(pathEdges(7)), &Options{Depth: 3, Analyses: []string{AnalysisSixthDegree}})
	require.Nil(t, err)
	report, err := a.Execute(context.Background())
	require.Nil(t, err)
	// 1-4, 2-5, 3-6, 4-7 discovered from both ends
	require.Equal(t, 8, report.SixthDegree.TotalPathCount)
	require.Equal(t, 3, report.SixthDegree.Depth)
}

func TestAnalyzerSingleVertex(t *testing.T) {
	a, err := New(Build([]Edge{{From: 9, To: 9}}), nil)
	require.Nil(t, err)
	report, err := a.Execute(context.Background())
	require.Nil(t, err)
	require.Equal(t, []string{"proportion"}, report.Undefined)
	require.Equal(t, 0.0, report.SixthDegree.Mean)
}

func TestAnalyzerExecuteWithWriter(t *testing.T) {
	a, err := New(Build(pathEdges(7)), &Options{Analyses: []string{AnalysisSixthDegree}})
	require.Nil(t, err)

	var buff bytes.Buffer
	report, err := a.ExecuteWithWriter(context.Background(), &buff, "{{total_paths}}|{{average_distance}}")
	require.Nil(t, err)
	require.NotNil(t, report)
	require.Equal(t, "2|skipped", buff.String())

	_, err = a.ExecuteWithWriter(context.Background(), nil, "")
	require.NotNil(t, err)

	_, err = a.ExecuteWithWriter(context.Background(), &buff, "{{unknown}}")
	require.NotNil(t, err)
}

func TestAnalyzerCancelled(t *testing.T) {
	a, err := New(Build(pathEdges(7)), nil)
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Execute(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

package sixdegrees

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Analyzer Options
type Options struct {
	// Depth counted by the reachability analysis
	// if zero DefaultConfig.Depth is used
	Depth int
	// Concurrency is the number of goroutines used by per-vertex scans
	// values below 1 use every cpu, 1 runs sequentially
	Concurrency int
	// Analyses to run, in any order
	// if empty DefaultConfig.Analyses are used
	Analyses []string
}

// Analyzer runs the selected analyses over an immutable graph
type Analyzer struct {
	Options *Options
	graph   *Graph
}

// New creates and returns new analyzer instance from options
func New(g *Graph, opts *Options) (*Analyzer, error) {
	if g == nil {
		return nil, errorutil.NewWithTag("sixdegrees", "graph cannot be nil")
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.Depth == 0 {
		opts.Depth = DefaultConfig.Depth
	}
	if opts.Depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, opts.Depth)
	}
	if len(opts.Analyses) == 0 {
		if len(DefaultConfig.Analyses) == 0 {
			return nil, fmt.Errorf("something went wrong, `DefaultAnalyses` and input analyses are empty")
		}
		opts.Analyses = slices.Clone(DefaultConfig.Analyses)
	}
	// purge duplicates if any
	dedupe := sliceutil.Dedupe(opts.Analyses)
	if len(dedupe) != len(opts.Analyses) {
		gologger.Warning().Msgf("%v duplicate analyses found. purging them..", len(opts.Analyses)-len(dedupe))
		opts.Analyses = dedupe
	}
	for _, name := range opts.Analyses {
		if !sliceutil.Contains(DefaultAnalyses, name) {
			return nil, errorutil.NewWithTag("sixdegrees", "unknown analysis `%v` (valid: %v)", name, DefaultAnalyses)
		}
	}
	return &Analyzer{Options: opts, graph: g}, nil
}

// Execute runs every selected analysis in DefaultAnalyses order and
// returns the report. Statistics that are undefined for the graph size are
// listed in Report.Undefined instead of failing the run.
func (a *Analyzer) Execute(ctx context.Context) (*Report, error) {
	report := &Report{
		Graph: GraphSummary{
			Vertices: a.graph.VertexCount(),
			Edges:    a.graph.EdgeCount(),
		},
		Depth: a.Options.Depth,
	}
	for _, name := range DefaultAnalyses {
		if !sliceutil.Contains(a.Options.Analyses, name) {
			continue
		}
		gologger.Verbose().Msgf("running %v analysis on %d vertices", name, report.Graph.Vertices)
		started := time.Now()
		if err := a.run(ctx, name, report); err != nil {
			return nil, err
		}
		elapsed := time.Since(started)
		report.Timings = append(report.Timings, PhaseTiming{Phase: name, Duration: elapsed})
		gologger.Verbose().Msgf("%v analysis finished in %v", name, elapsed)
	}
	return report, nil
}

func (a *Analyzer) run(ctx context.Context, name string, report *Report) error {
	switch name {
	case AnalysisSixthDegree:
		stats, err := ExactDepthStats(ctx, a.graph, a.Options.Depth, a.Options.Concurrency)
		if err != nil && !errors.Is(err, ErrUndefinedStatistic) {
			return err
		}
		report.SixthDegree = stats
		if err != nil {
			gologger.Warning().Msgf("%v", err)
			report.markUndefined("proportion")
			if report.Graph.Vertices == 0 {
				report.markUndefined("mean", "variance", "std_deviation")
			}
		}
	case AnalysisDistance:
		summary, err := ProfileDistances(ctx, a.graph, a.Options.Concurrency)
		if err != nil {
			return err
		}
		report.Distance = summary
		if summary.ReachablePairs == 0 {
			gologger.Warning().Msgf("no reachable vertex pairs, average distance reported as 0")
		}
	case AnalysisSimilarity:
		result, err := ExtremePairs(ctx, a.graph, a.Options.Concurrency)
		if err != nil {
			return err
		}
		report.Similarity = result
		if !result.MostSimilar.Found {
			gologger.Warning().Msgf("no pair shares a neighbor, most similar pair is the sentinel")
		}
		if !result.MostDissimilar.Found {
			gologger.Warning().Msgf("no pair with a positive coefficient below 1, most dissimilar pair is the sentinel")
		}
	}
	return nil
}

// ExecuteWithWriter executes the analyzer and writes the rendered report
// to writer. An empty template uses DefaultReportTemplate.
func (a *Analyzer) ExecuteWithWriter(ctx context.Context, writer io.Writer, template string) (*Report, error) {
	if writer == nil {
		return nil, errorutil.NewWithTag("sixdegrees", "writer destination cannot be nil")
	}
	if template != "" {
		if err := validateTemplate(template); err != nil {
			return nil, err
		}
	}
	report, err := a.Execute(ctx)
	if err != nil {
		return nil, err
	}
	text, err := report.Render(template)
	if err != nil {
		return report, err
	}
	_, err = io.WriteString(writer, text)
	return report, err
}

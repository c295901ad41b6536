package runner

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/sixdegrees"
	"github.com/projectdiscovery/sixdegrees/internal/metrics"
)

// Runner reads the edge list, builds the graph and runs the analyzer
type Runner struct {
	options *Options
	config  sixdegrees.Config
}

// New resolves the analysis config and returns a runner
func New(options *Options) (*Runner, error) {
	cfg, err := options.resolveConfig()
	if err != nil {
		return nil, err
	}
	return &Runner{options: options, config: cfg}, nil
}

// Run executes every phase. Failures to write optional outputs
// (histogram, frequencies, metrics) are logged and do not fail the run.
func (r *Runner) Run(ctx context.Context) error {
	started := time.Now()
	edges, err := r.readEdges()
	if err != nil {
		return err
	}
	metrics.InputEdges.Set(float64(len(edges)))
	metrics.PhaseDuration.WithLabelValues("read").Set(time.Since(started).Seconds())
	if len(edges) == 0 {
		gologger.Warning().Msgf("%v, statistics will use their empty graph values", sixdegrees.ErrNoEdges)
	}

	started = time.Now()
	graph := sixdegrees.Build(edges)
	metrics.PhaseDuration.WithLabelValues("build").Set(time.Since(started).Seconds())
	gologger.Info().Msgf("Loaded graph with %d vertices and %d edges", graph.VertexCount(), graph.EdgeCount())

	analyzer, err := sixdegrees.New(graph, &sixdegrees.Options{
		Depth:       r.config.Depth,
		Concurrency: r.config.Concurrency,
		Analyses:    r.config.Analyses,
	})
	if err != nil {
		return err
	}
	report, err := analyzer.Execute(ctx)
	if err != nil {
		return err
	}
	metrics.ObserveReport(report)

	if err := r.writeReport(report); err != nil {
		return err
	}
	r.writeExtras(report)
	return nil
}

func (r *Runner) readEdges() ([]sixdegrees.Edge, error) {
	if r.options.stdin {
		return sixdegrees.ParseEdges(os.Stdin)
	}
	return sixdegrees.ReadEdgesFile(r.options.Input)
}

// writeReport fails when closing the report file fails
func (r *Runner) writeReport(report *sixdegrees.Report) (err error) {
	output, err := getOutputWriter(r.options.Output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(output, r.options.Output); err == nil {
			err = closeErr
		}
	}()

	if r.options.JSON {
		return report.WriteJSON(output)
	}
	text, err := report.Render(r.config.ReportTemplate)
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, text)
	return err
}

func (r *Runner) writeExtras(report *sixdegrees.Report) {
	var frequencies []int
	if report.SixthDegree != nil {
		frequencies = report.SixthDegree.Frequencies
	}
	if r.options.Histogram != "" {
		if err := sixdegrees.ExportHistogramFile(r.options.Histogram, report.Depth, frequencies); err != nil {
			gologger.Error().Msgf("Error plotting path distribution: %v", err)
		} else {
			gologger.Info().Msgf("Saved histogram to %s", r.options.Histogram)
		}
	}
	if r.options.Frequencies != "" {
		if err := writeFrequencies(r.options.Frequencies, frequencies); err != nil {
			gologger.Error().Msgf("failed to write frequencies to %v got %v", r.options.Frequencies, err)
		}
	}
	if r.options.Metrics != "" {
		if err := metrics.WriteTextfile(r.options.Metrics); err != nil {
			gologger.Error().Msgf("failed to write metrics to %v got %v", r.options.Metrics, err)
		}
	}
}

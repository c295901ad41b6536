package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/projectdiscovery/sixdegrees"
)

// Registry holds run metrics only, no go/process collectors,
// so a textfile export describes the analysis and nothing else.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	GraphVertices = factory.NewGauge(prometheus.GaugeOpts{
		Name: "sixdegrees_graph_vertices",
		Help: "Number of distinct vertices in the analysed graph",
	})

	GraphEdges = factory.NewGauge(prometheus.GaugeOpts{
		Name: "sixdegrees_graph_edges",
		Help: "Number of distinct undirected adjacencies in the analysed graph",
	})

	InputEdges = factory.NewGauge(prometheus.GaugeOpts{
		Name: "sixdegrees_input_edges",
		Help: "Number of edge lines parsed from input, duplicates included",
	})

	// PhaseDuration is labeled by phase: read, build and every analysis name
	PhaseDuration = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sixdegrees_phase_duration_seconds",
			Help: "Wall time spent per phase",
		},
		[]string{"phase"},
	)

	SixthDegreePaths = factory.NewGauge(prometheus.GaugeOpts{
		Name: "sixdegrees_sixth_degree_paths",
		Help: "Ordered (vertex, vertex at depth) discoveries",
	})

	ReachablePairs = factory.NewGauge(prometheus.GaugeOpts{
		Name: "sixdegrees_reachable_pairs",
		Help: "Ordered pairs of distinct mutually reachable vertices",
	})

	ComparedPairs = factory.NewGauge(prometheus.GaugeOpts{
		Name: "sixdegrees_compared_pairs",
		Help: "Unordered vertex pairs compared by the similarity scan",
	})
)

// ObserveReport records the graph size and the analysis outputs of report
func ObserveReport(report *sixdegrees.Report) {
	GraphVertices.Set(float64(report.Graph.Vertices))
	GraphEdges.Set(float64(report.Graph.Edges))
	for _, t := range report.Timings {
		PhaseDuration.WithLabelValues(t.Phase).Set(t.Duration.Seconds())
	}
	if report.SixthDegree != nil {
		SixthDegreePaths.Set(float64(report.SixthDegree.TotalPathCount))
	}
	if report.Distance != nil {
		ReachablePairs.Set(float64(report.Distance.ReachablePairs))
	}
	if report.Similarity != nil {
		ComparedPairs.Set(float64(report.Similarity.ComparedPairs))
	}
}

// WriteTextfile writes every metric in the prometheus text format,
// suitable for the node exporter textfile collector
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

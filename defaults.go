package sixdegrees

// Analysis names accepted by Options.Analyses
const (
	AnalysisSixthDegree = "sixth-degree"
	AnalysisDistance    = "distance"
	AnalysisSimilarity  = "similarity"
)

// DefaultAnalyses lists every analysis in execution order
var DefaultAnalyses = []string{
	AnalysisSixthDegree,
	AnalysisDistance,
	AnalysisSimilarity,
}

// DefaultReportTemplate prints the classic console summary.
// {{degree}} is the analysed depth as an ordinal word ("sixth" for 6).
var DefaultReportTemplate = `Vertices: {{vertices}}
Edges: {{edges}}
Total {{degree}}-degree paths count: {{total_paths}}
Mean {{degree}}-degree connections per vertex: {{mean}}
Proportion of vertex pairs with a {{degree}}-degree connection: {{proportion}}
Variance of {{degree}}-degree connections per vertex: {{variance}}
Standard deviation is: {{std_deviation}}
The average distance between pairs of vertices in the graph is: {{average_distance}}
Most Similar Pair: ({{similar_a}}, {{similar_b}}) with Jaccard Coefficient: {{similar_coefficient}}
Most Dissimilar Pair: ({{dissimilar_a}}, {{dissimilar_b}}) with Jaccard Coefficient: {{dissimilar_coefficient}}
`

// DefaultConfig is used for every option left empty
var DefaultConfig = Config{
	Depth:          DefaultDepth,
	Concurrency:    DefaultConcurrency,
	Analyses:       DefaultAnalyses,
	ReportTemplate: DefaultReportTemplate,
}

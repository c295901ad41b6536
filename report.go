package sixdegrees

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

const (
	// ValueSkipped is rendered for fields of analyses that did not run
	ValueSkipped = "skipped"
	// ValueUndefined is rendered for statistics without a defined value
	ValueUndefined = "undefined"
)

// ReportFields are the placeholders available to report templates
var ReportFields = []string{
	"vertices", "edges", "degree", "depth",
	"total_paths", "mean", "proportion", "variance", "std_deviation",
	"average_distance", "total_distance", "reachable_pairs", "diameter",
	"similar_a", "similar_b", "similar_coefficient",
	"dissimilar_a", "dissimilar_b", "dissimilar_coefficient",
	"compared_pairs",
}

var (
	sixthDegreeFields = []string{"depth", "total_paths", "mean", "proportion", "variance", "std_deviation"}
	distanceFields    = []string{"average_distance", "total_distance", "reachable_pairs", "diameter"}
	similarityFields  = []string{
		"similar_a", "similar_b", "similar_coefficient",
		"dissimilar_a", "dissimilar_b", "dissimilar_coefficient",
		"compared_pairs",
	}
)

// GraphSummary describes the analysed graph
type GraphSummary struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

// PhaseTiming is the wall time spent in one analysis
type PhaseTiming struct {
	Phase    string        `json:"phase"`
	Duration time.Duration `json:"duration_ns"`
}

// Report collects the output of every analysis that ran.
// Nil sections belong to analyses that were not selected.
type Report struct {
	Graph GraphSummary `json:"graph"`
	// Depth the analyzer was configured with, set even when the
	// reachability analysis did not run
	Depth       int                 `json:"depth"`
	SixthDegree *DegreeStats        `json:"sixth_degree,omitempty"`
	Distance    *DistanceSummary    `json:"distance,omitempty"`
	Similarity  *ExtremePairsResult `json:"similarity,omitempty"`
	Timings     []PhaseTiming       `json:"timings"`
	// Undefined lists report fields whose statistic has no defined value
	Undefined []string `json:"undefined,omitempty"`
}

func (r *Report) markUndefined(fields ...string) {
	for _, f := range fields {
		if !sliceutil.Contains(r.Undefined, f) {
			r.Undefined = append(r.Undefined, f)
		}
	}
}

var ordinalWords = []string{
	"zeroth", "first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

// ordinal spells small depths as words (6 -> "sixth") and suffixes
// larger ones (21 -> "21st")
func ordinal(n int) string {
	if n >= 0 && n < len(ordinalWords) {
		return ordinalWords[n]
	}
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// analysedDepth falls back to DefaultDepth for reports built by hand
func (r *Report) analysedDepth() int {
	if r.SixthDegree != nil {
		return r.SixthDegree.Depth
	}
	if r.Depth > 0 {
		return r.Depth
	}
	return DefaultDepth
}

// Values returns every report field keyed by its placeholder name
func (r *Report) Values() map[string]interface{} {
	values := map[string]interface{}{
		"vertices": r.Graph.Vertices,
		"edges":    r.Graph.Edges,
		"degree":   ordinal(r.analysedDepth()),
	}
	for _, fields := range [][]string{sixthDegreeFields, distanceFields, similarityFields} {
		for _, f := range fields {
			values[f] = ValueSkipped
		}
	}
	if s := r.SixthDegree; s != nil {
		values["depth"] = s.Depth
		values["total_paths"] = s.TotalPathCount
		values["mean"] = s.Mean
		values["proportion"] = s.ProportionOfPairs
		values["variance"] = s.Variance
		values["std_deviation"] = s.StdDeviation
	}
	if d := r.Distance; d != nil {
		values["average_distance"] = d.Average
		values["total_distance"] = d.TotalDistance
		values["reachable_pairs"] = d.ReachablePairs
		values["diameter"] = d.Diameter
	}
	if s := r.Similarity; s != nil {
		values["similar_a"] = s.MostSimilar.A
		values["similar_b"] = s.MostSimilar.B
		values["similar_coefficient"] = s.MostSimilar.Coefficient
		values["dissimilar_a"] = s.MostDissimilar.A
		values["dissimilar_b"] = s.MostDissimilar.B
		values["dissimilar_coefficient"] = s.MostDissimilar.Coefficient
		values["compared_pairs"] = s.ComparedPairs
	}
	for _, f := range r.Undefined {
		values[f] = ValueUndefined
	}
	return values
}

// Render substitutes report fields into template.
// An empty template renders DefaultReportTemplate.
func (r *Report) Render(template string) (string, error) {
	if template == "" {
		template = DefaultReportTemplate
	}
	if err := validateTemplate(template); err != nil {
		return "", err
	}
	values := r.Values()
	if err := checkMissing(template, values); err != nil {
		return "", err
	}
	return Replace(template, values), nil
}

// WriteJSON writes the report as indented json
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

package sixdegrees

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary is the distribution of a vector of per-vertex counts
type Summary struct {
	Count        int     `json:"count"`
	Total        int     `json:"total"`
	Mean         float64 `json:"mean"`
	Variance     float64 `json:"variance"` // population variance
	StdDeviation float64 `json:"std_deviation"`
}

// Summarize folds counts into mean, population variance and standard deviation.
// An empty vector returns a zero Summary and ErrUndefinedStatistic.
func Summarize(counts []int) (Summary, error) {
	if len(counts) == 0 {
		return Summary{}, fmt.Errorf("%w: mean of zero samples", ErrUndefinedStatistic)
	}
	samples := make([]float64, len(counts))
	total := 0
	for i, c := range counts {
		samples[i] = float64(c)
		total += c
	}
	_, variance := stat.PopMeanVariance(samples, nil)
	if variance < 0 {
		// rounding on constant vectors
		variance = 0
	}
	return Summary{
		Count:        len(counts),
		Total:        total,
		Mean:         float64(total) / float64(len(counts)),
		Variance:     variance,
		StdDeviation: math.Sqrt(variance),
	}, nil
}

// Frequencies returns freq where freq[k] is the number of entries equal to k,
// for k = 0..max(counts). Negative counts are ignored.
func Frequencies(counts []int) []int {
	maxCount := -1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	freq := make([]int, maxCount+1)
	for _, c := range counts {
		if c >= 0 {
			freq[c]++
		}
	}
	return freq
}

// ProportionOfPairs divides total by the number of unordered vertex pairs
// V(V-1)/2. total is expected to count ordered discoveries, so a mutual
// pair contributes twice to the numerator and once to the denominator.
func ProportionOfPairs(total, vertices int) (float64, error) {
	if vertices < 2 {
		return 0, fmt.Errorf("%w: proportion of pairs needs at least 2 vertices, got %d", ErrUndefinedStatistic, vertices)
	}
	pairs := int64(vertices) * int64(vertices-1) / 2
	return float64(total) / float64(pairs), nil
}

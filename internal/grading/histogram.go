package grading

import "fmt"

// Bin is one histogram bucket covering [Low, High). The last bin of a
// histogram also includes High.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram counts scores into the bins delimited by edges. Edges must be
// strictly increasing and at least two long. Scores outside
// [edges[0], edges[len-1]] are not counted.
func Histogram(scores []float64, edges []float64) ([]Bin, error) {
	if err := ValidateEdges(edges); err != nil {
		return nil, err
	}

	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		bins[i] = Bin{Low: edges[i], High: edges[i+1]}
	}

	last := len(bins) - 1
	for _, x := range scores {
		if x < edges[0] || x > edges[len(edges)-1] {
			continue
		}
		for i := range bins {
			if x < bins[i].High || i == last {
				bins[i].Count++
				break
			}
		}
	}
	return bins, nil
}

// ValidateEdges reports whether edges can delimit histogram bins.
func ValidateEdges(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least 2 edges, got %d", ErrInvalidBins, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("%w: edges must be strictly increasing, got %v", ErrInvalidBins, edges)
		}
	}
	return nil
}

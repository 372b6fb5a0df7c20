package grading

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	scores := []float64{0, 10, 25, 49.9, 50, 74, 75, 99, 100, 101, -1}

	bins, err := Histogram(scores, []float64{0, 25, 50, 75, 100})
	require.NoError(t, err)
	assert.Equal(t, []Bin{
		{Low: 0, High: 25, Count: 2},
		{Low: 25, High: 50, Count: 2},
		{Low: 50, High: 75, Count: 2},
		{Low: 75, High: 100, Count: 3},
	}, bins)
}

func TestHistogram_Empty(t *testing.T) {
	bins, err := Histogram(nil, []float64{0, 50, 100})
	require.NoError(t, err)
	assert.Equal(t, []Bin{{Low: 0, High: 50}, {Low: 50, High: 100}}, bins)
}

func TestHistogram_InvalidEdges(t *testing.T) {
	for _, edges := range [][]float64{nil, {0}, {0, 50, 50}, {100, 0}} {
		_, err := Histogram([]float64{1}, edges)
		assert.True(t, errors.Is(err, ErrInvalidBins), "edges %v", edges)
	}
}

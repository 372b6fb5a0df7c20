package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfEven(t *testing.T) {
	testCases := []struct {
		in       float64
		expected int
	}{
		{87.5, 88},
		{86.5, 86},
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{79.4, 79},
		{79.6, 80},
		{100, 100},
		{-0.5, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RoundHalfEven(tc.in), "RoundHalfEven(%v)", tc.in)
	}
}

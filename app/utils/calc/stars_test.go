package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStars(t *testing.T) {
	tests := []struct {
		average float64
		want    StarSplit
	}{
		{0, StarSplit{Full: 0, Half: 0, Empty: 5}},
		{0.4, StarSplit{Full: 0, Half: 0, Empty: 5}},
		{0.5, StarSplit{Full: 0, Half: 1, Empty: 4}},
		{3, StarSplit{Full: 3, Half: 0, Empty: 2}},
		{3.4, StarSplit{Full: 3, Half: 0, Empty: 2}},
		{3.5, StarSplit{Full: 3, Half: 1, Empty: 1}},
		{4.9, StarSplit{Full: 4, Half: 1, Empty: 0}},
		{5, StarSplit{Full: 5, Half: 0, Empty: 0}},
	}

	for _, tt := range tests {
		got := SplitStars(tt.average)
		assert.Equal(t, tt.want, got, "average %v", tt.average)
	}
}

func TestSplitStarsAlwaysSumsToFive(t *testing.T) {
	for average := 0.0; average <= 5.0; average += 0.1 {
		got := SplitStars(average)
		assert.Equal(t, 5, got.Full+got.Half+got.Empty, "average %v", average)
	}
}

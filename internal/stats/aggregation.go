package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrInsufficientData is returned when a statistic needs more values than given
var ErrInsufficientData = errors.New("insufficient data")

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return Sum(values) / float64(len(values))
}

// WeightedMean calculates the weighted mean
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sumWeighted, sumWeights float64
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sumWeighted += v * w
		sumWeights += w
	}

	if sumWeights == 0 {
		return Mean(values)
	}

	return sumWeighted / sumWeights
}

// Variance calculates the sample variance (denominator n-1)
func Variance(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}

	mean := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(values)-1), nil
}

// SampleStdDev calculates the sample standard deviation.
// Fewer than two values yield ErrInsufficientData.
func SampleStdDev(values []float64) (float64, error) {
	v, err := Variance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Median calculates the median value
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Create a copy to avoid modifying the original slice
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Min returns the minimum value
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// ArgMax returns the index of the first maximum value, -1 for empty input
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}

	idx := 0
	for i, v := range values[1:] {
		if v > values[idx] {
			idx = i + 1
		}
	}
	return idx
}

// Sum returns the sum of all values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Normalize maps v into [0, 1] relative to [min, max].
// A degenerate range maps everything to 0.
func Normalize(v, min, max float64) float64 {
	rangeVal := max - min
	if rangeVal == 0 || math.IsNaN(rangeVal) || math.IsNaN(v) {
		return 0
	}

	t := (v - min) / rangeVal
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

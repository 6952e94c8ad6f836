package turismo

import (
	"fmt"
	"math"
)

// RadiusFor scales a value to a marker radius: value/divisor clamped to
// [minRadius, maxRadius]. A non-positive divisor or NaN value yields minRadius.
func RadiusFor(value, divisor, minRadius, maxRadius float64) float64 {
	if divisor <= 0 || math.IsNaN(value) {
		return minRadius
	}

	r := value / divisor
	if r < minRadius {
		return minRadius
	}
	if r > maxRadius {
		return maxRadius
	}
	return r
}

// RadiusScale is the caller-supplied marker size configuration.
// Max == 0 leaves the radius unbounded above.
type RadiusScale struct {
	Divisor float64 `json:"divisor"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Radius scales one value
func (s RadiusScale) Radius(value float64) float64 {
	max := s.Max
	if max == 0 {
		max = math.Inf(1)
	}
	return RadiusFor(value, s.Divisor, s.Min, max)
}

// Validate checks the configuration is usable
func (s RadiusScale) Validate() error {
	if s.Divisor <= 0 {
		return fmt.Errorf("radius divisor must be positive, got %v", s.Divisor)
	}
	if s.Min < 0 || s.Max < 0 {
		return fmt.Errorf("radius bounds must not be negative")
	}
	if s.Max != 0 && s.Max < s.Min {
		return fmt.Errorf("radius max %v below min %v", s.Max, s.Min)
	}
	return nil
}

// Marker radius presets
var (
	// FixedRadius divides by 500 with no clamp
	FixedRadius = RadiusScale{Divisor: 500}

	// ClampedRadius divides by 500 and clamps to [5, 50]
	ClampedRadius = RadiusScale{Divisor: 500, Min: 5, Max: 50}
)

package turismo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jengzang/turismo-backend-go/internal/stats"
)

// ErrTooFewStops is returned when a color ramp has fewer than two stops
var ErrTooFewStops = errors.New("color ramp needs at least two stops")

// Color is an 8-bit RGB color
type Color struct {
	R, G, B uint8
}

// Hex renders the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

var namedColors = map[string]Color{
	"black":  {0, 0, 0},
	"white":  {255, 255, 255},
	"red":    {255, 0, 0},
	"green":  {0, 128, 0},
	"blue":   {0, 0, 255},
	"yellow": {255, 255, 0},
	"orange": {255, 165, 0},
	"purple": {128, 0, 128},
	"gray":   {128, 128, 128},
	"grey":   {128, 128, 128},
}

// Ramps
var (
	// MarkerStops is the green-yellow-red ramp of the map legend
	MarkerStops = []Color{{0, 128, 0}, {255, 255, 0}, {255, 0, 0}}

	// BluesStops is the sequential "blues" ramp of the dashboard bars
	BluesStops = []Color{
		{247, 251, 255}, {222, 235, 247}, {198, 219, 239},
		{158, 202, 225}, {107, 174, 214}, {66, 146, 198},
		{33, 113, 181}, {8, 81, 156}, {8, 48, 107},
	}
)

// ParseColor accepts #rrggbb, #rgb or a basic CSS color name
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseColors parses a comma separated list of colors
func ParseColors(list string) ([]Color, error) {
	var out []Color
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ColorFor linearly interpolates value's position in [min, max] across the
// stops, which are spaced evenly over [0, 1]. Out-of-range values are clamped.
// A degenerate range (min == max) or NaN input maps to the first stop.
func ColorFor(value, min, max float64, stops []Color) (Color, error) {
	if len(stops) < 2 {
		return Color{}, ErrTooFewStops
	}
	if min == max || math.IsNaN(min) || math.IsNaN(max) || math.IsNaN(value) {
		return stops[0], nil
	}
	if min > max {
		min, max = max, min
	}

	segments := len(stops) - 1
	pos := stats.Normalize(value, min, max) * float64(segments)
	i := int(math.Floor(pos))
	if i >= segments {
		return stops[segments], nil
	}

	frac := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
	}, nil
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// ColorScale maps values of one filtered view onto a color ramp
type ColorScale struct {
	Min   float64
	Max   float64
	Stops []Color
}

// NewColorScale derives the scale bounds from the observed values
func NewColorScale(values []float64, stops []Color) (ColorScale, error) {
	if len(stops) < 2 {
		return ColorScale{}, ErrTooFewStops
	}
	return ColorScale{
		Min:   stats.Min(values),
		Max:   stats.Max(values),
		Stops: stops,
	}, nil
}

// At returns the color for a value
func (s ColorScale) At(value float64) Color {
	c, err := ColorFor(value, s.Min, s.Max, s.Stops)
	if err != nil {
		return Color{}
	}
	return c
}

// HexStops renders the ramp for a legend
func (s ColorScale) HexStops() []string {
	out := make([]string, len(s.Stops))
	for i, c := range s.Stops {
		out[i] = c.Hex()
	}
	return out
}

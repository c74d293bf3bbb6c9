package biome

import "math/rand"

// Default band thresholds on the clamped noise height.
const (
	DefaultHighlandHeight = 0.7
	DefaultMountainHeight = 0.95
)

// Thresholds split triangle heights into bands.
type Thresholds struct {
	Ocean    float32 // at or below: ocean
	Highland float32 // below: lowland
	Mountain float32 // below: highland, otherwise mountain
}

// DefaultThresholds returns the stock band thresholds for an ocean height.
func DefaultThresholds(oceanHeight float32) Thresholds {
	return Thresholds{
		Ocean:    oceanHeight,
		Highland: DefaultHighlandHeight,
		Mountain: DefaultMountainHeight,
	}
}

// Classify returns the band of a triangle with the given tallest corner.
func (t Thresholds) Classify(maxHeight float32) Band {
	switch {
	case maxHeight <= t.Ocean:
		return Ocean
	case maxHeight < t.Highland:
		return Lowland
	case maxHeight < t.Mountain:
		return Highland
	default:
		return Mountain
	}
}

// Colorizer colors triangles for one planet. The palette is evaluated once
// at construction, yielding a single color per band.
type Colorizer struct {
	colors     [bandCount]Color
	thresholds Thresholds
	randomness float32
}

// NewColorizer evaluates every table of p at the planet temperature.
// randomness is the half-width of the brightness jitter added per triangle.
func NewColorizer(p Palette, temperature float64, th Thresholds, randomness float32) *Colorizer {
	c := &Colorizer{thresholds: th, randomness: randomness}
	for _, b := range Bands {
		c.colors[b] = PickColor(p[b], temperature)
	}
	return c
}

// BandColor returns the un-jittered color of a band.
func (c *Colorizer) BandColor(b Band) Color {
	return c.colors[b]
}

// Result is the output of Colorize.
type Result struct {
	Colors    []Color        // three entries per triangle
	Histogram [bandCount]int // triangles per band
}

// Colorize assigns each triangle its band color plus a jitter drawn from rng
// and applied equally to all channels. maxHeights holds one entry per
// triangle.
func (c *Colorizer) Colorize(maxHeights []float32, rng *rand.Rand) Result {
	res := Result{Colors: make([]Color, 0, 3*len(maxHeights))}
	for _, h := range maxHeights {
		band := c.thresholds.Classify(h)
		res.Histogram[band]++

		col := c.colors[band].Shift(c.jitter(rng))
		res.Colors = append(res.Colors, col, col, col)
	}
	return res
}

func (c *Colorizer) jitter(rng *rand.Rand) float32 {
	if c.randomness == 0 {
		return 0
	}
	return (rng.Float32()*2 - 1) * c.randomness
}

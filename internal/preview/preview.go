// Package preview renders equirectangular maps of a planet surface.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mazznoer/colorgrad"

	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/planet/biome"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/pkg/math"
)

// Mode selects what a preview shows.
type Mode string

// Preview modes.
const (
	ModeHeight Mode = "height"
	ModeBiome  Mode = "biome"
)

// ParseMode validates a mode name. An empty name selects ModeBiome.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeBiome:
		return ModeBiome, nil
	case ModeHeight:
		return ModeHeight, nil
	default:
		return "", fmt.Errorf("unknown preview mode %q", s)
	}
}

// heightStops run from seabed to peak.
var heightStops = []color.Color{
	color.RGBA{0, 0, 128, 255},
	color.RGBA{0, 128, 255, 255},
	color.RGBA{0, 160, 0, 255},
	color.RGBA{160, 120, 60, 255},
	color.RGBA{255, 255, 255, 255},
}

// Render draws the planet as a width x height equirectangular map. Columns
// span longitude 0-360 degrees, rows span the polar angle 0-180 degrees.
func Render(p *planet.Planet, mode Mode, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", width, height)
	}

	var shade func(h float32) color.Color
	switch mode {
	case ModeHeight:
		grad, err := colorgrad.NewGradient().
			Colors(heightStops...).
			Domain(float64(p.Descriptor.OceanHeight), 1).
			Build()
		if err != nil {
			return nil, fmt.Errorf("preview: building height gradient: %w", err)
		}
		shade = func(h float32) color.Color {
			return grad.At(float64(h))
		}
	case ModeBiome:
		th := p.Thresholds()
		shade = func(h float32) color.Color {
			return toRGBA(p.BandColors[th.Classify(h)])
		}
	default:
		return nil, fmt.Errorf("preview: unknown mode %q", mode)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		lat := (float32(y) + 0.5) / float32(height) * 180
		for x := 0; x < width; x++ {
			lon := (float32(x) + 0.5) / float32(width) * 360
			dir := flora.GeocentricToCartesian(lon, lat)
			img.Set(x, y, shade(p.Surface.Height(dir)))
		}
	}
	return img, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// MarkPlacements draws a dot for every flora placement.
func MarkPlacements(img *image.RGBA, placements []flora.Placement) {
	b := img.Bounds()
	mark := color.RGBA{255, 0, 255, 255}
	for _, pl := range placements {
		x := int(pl.Longitude / 360 * float32(b.Dx()))
		y := int(pl.Latitude / 180 * float32(b.Dy()))
		img.Set(x, y, mark)
	}
}

func toRGBA(c biome.Color) color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
}

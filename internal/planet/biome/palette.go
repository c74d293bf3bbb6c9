package biome

import (
	"fmt"

	"github.com/Faultbox/planetgen/internal/planet/climate"
)

// Band is a height band of the planet surface.
type Band int

// Height bands, lowest first.
const (
	Ocean Band = iota
	Lowland
	Highland
	Mountain

	bandCount
)

// Bands lists every band in ascending height order.
var Bands = [bandCount]Band{Ocean, Lowland, Highland, Mountain}

func (b Band) String() string {
	switch b {
	case Ocean:
		return "ocean"
	case Lowland:
		return "lowland"
	case Highland:
		return "highland"
	case Mountain:
		return "mountain"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// Palette holds one gradient table per band.
type Palette [bandCount]GradientTable

// Validate checks every table in the palette.
func (p Palette) Validate() error {
	for _, b := range Bands {
		if err := p[b].Validate(); err != nil {
			return fmt.Errorf("%s: %w", b, err)
		}
	}
	return nil
}

// Palette stop temperatures shared by the default tables.
var stopTemperatures = [6]float64{
	climate.ColdBarrier - climate.VariationHalfRange,
	climate.TemperateBarrier - 10,
	climate.TemperateBarrier,
	climate.HotBarrier,
	climate.HotBarrier + 50,
	climate.HotBarrier + 200,
}

func table(colors [6]Color) GradientTable {
	t := make(GradientTable, len(colors))
	for i, c := range colors {
		t[i] = Stop{Color: c, Temperature: stopTemperatures[i]}
	}
	return t
}

// DefaultPalette returns the stock palette, running from frozen through
// temperate and tropical to scorched worlds.
func DefaultPalette() Palette {
	return Palette{
		Ocean: table([6]Color{
			rgb(0, 44, 59),     // dark frozen ocean
			rgb(242, 255, 256), // frozen ocean
			rgb(0, 191, 255),   // temperate ocean
			rgb(23, 255, 232),  // tropical ocean
			rgb(128, 77, 1),    // dry ocean
			rgb(179, 0, 0),     // lava ocean
		}),
		Lowland: table([6]Color{
			rgb(81, 89, 89),    // dark frozen stone
			rgb(232, 255, 255), // snow grass
			rgb(107, 142, 35),  // temperate grass
			rgb(250, 214, 10),  // tropical sand
			rgb(94, 94, 86),    // dry wasteland
			rgb(37, 3, 69),     // obsidian
		}),
		Highland: table([6]Color{
			rgb(46, 51, 51),
			{R: 58.0 / 255.0, G: 64.0 / 254.0, B: 64.0 / 255.0, A: 1},
			rgb(205, 133, 63), // temperate dirt
			rgb(44, 77, 16),   // tropical dirt
			rgb(71, 71, 65),
			rgb(21, 2, 38),
		}),
		Mountain: table([6]Color{
			rgb(30, 33, 33),
			{R: 181.0 / 255.0, G: 241.0 / 254.0, B: 255.0 / 255.0, A: 1}, // ice summit
			rgb(255, 250, 255),
			rgb(71, 71, 71),
			rgb(42, 42, 42),
			rgb(3, 0, 3),
		}),
	}
}

package flora

import (
	"fmt"

	"github.com/Faultbox/planetgen/internal/planet/climate"
)

// Category is a flora climate class.
type Category int

// Flora categories, coldest first.
const (
	Winter Category = iota
	Temperate
	Tropical

	categoryCount
)

// Categories lists every category.
var Categories = [categoryCount]Category{Winter, Temperate, Tropical}

func (c Category) String() string {
	switch c {
	case Winter:
		return "winter"
	case Temperate:
		return "temperate"
	case Tropical:
		return "tropical"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Selector maps a regional temperature to a category. ok is false when
// nothing grows at that temperature.
type Selector func(temperature float64) (c Category, ok bool)

// SelectByTemperature buckets a regional temperature against the climate
// barriers. Regions colder than the cold barrier or hotter than the hot
// barrier are barren.
func SelectByTemperature(t float64) (Category, bool) {
	switch {
	case !climate.Habitable(t):
		return 0, false
	case t < climate.TemperateBarrier:
		return Winter, true
	case t < climate.TropicalBarrier:
		return Temperate, true
	default:
		return Tropical, true
	}
}

// Variants lists the asset tags available in each category. The scene
// resolves a tag to a concrete model.
type Variants [categoryCount][]string

// DefaultVariants returns the stock flora tags.
func DefaultVariants() Variants {
	return Variants{
		Winter: {
			"winter/bush_2", "winter/bush_5",
			"winter/tree_01", "winter/tree_05", "winter/tree_20",
		},
		Temperate: {
			"temperate/bush_2", "temperate/bush_5",
			"temperate/tree_01", "temperate/tree_05", "temperate/tree_20", "temperate/tree_28",
		},
		Tropical: {
			"tropical/tree_09",
		},
	}
}

// Validate checks that every category has at least one variant.
func (v Variants) Validate() error {
	for _, c := range Categories {
		if len(v[c]) == 0 {
			return fmt.Errorf("flora: category %s has no variants", c)
		}
	}
	return nil
}

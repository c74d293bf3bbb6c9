package biome

import (
	"errors"
	"math/rand"
	"testing"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}

func colorsEqual(a, b Color) bool {
	return approx(a.R, b.R) && approx(a.G, b.G) && approx(a.B, b.B) && approx(a.A, b.A)
}

func testTable() GradientTable {
	return GradientTable{
		{Color: Color{0, 0, 0, 1}, Temperature: 100},
		{Color: Color{1, 0, 0, 1}, Temperature: 200},
		{Color: Color{1, 1, 1, 1}, Temperature: 300},
	}
}

func TestPickColor(t *testing.T) {
	table := testTable()
	tests := []struct {
		name string
		temp float64
		want Color
	}{
		{"below first stop", 50, Color{0, 0, 0, 1}},
		{"at first stop", 100, Color{0, 0, 0, 1}},
		{"midway first segment", 150, Color{0.5, 0, 0, 1}},
		{"at middle stop", 200, Color{1, 0, 0, 1}},
		{"quarter into second segment", 225, Color{1, 0.25, 0.25, 1}},
		{"at last stop", 300, Color{1, 1, 1, 1}},
		{"above last stop", 1000, Color{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickColor(table, tt.temp)
			if !colorsEqual(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPickColorEmptyTable(t *testing.T) {
	if got := PickColor(nil, 300); got != (Color{}) {
		t.Errorf("expected zero color, got %+v", got)
	}
}

func TestGradientTableValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := GradientTable{
		{Temperature: 100},
		{Temperature: 100},
	}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable for duplicate temperatures, got %v", err)
	}
	if err := (GradientTable{}).Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable for empty table, got %v", err)
	}
}

func TestDefaultPaletteValid(t *testing.T) {
	p := DefaultPalette()
	if err := p.Validate(); err != nil {
		t.Fatalf("default palette invalid: %v", err)
	}
	for _, b := range Bands {
		if len(p[b]) != 6 {
			t.Errorf("%s: expected 6 stops, got %d", b, len(p[b]))
		}
	}
}

func TestPickColorExactStops(t *testing.T) {
	// Landing on a stop must not pass through Lerp rounding.
	p := DefaultPalette()
	for _, b := range Bands {
		for i, stop := range p[b] {
			if got := PickColor(p[b], stop.Temperature); got != stop.Color {
				t.Errorf("%s stop %d at %.2fK: expected %+v, got %+v", b, i, stop.Temperature, stop.Color, got)
			}
		}
	}
}

func TestDefaultPaletteTemperate(t *testing.T) {
	// Exactly on the temperate stop every band returns its temperate color.
	p := DefaultPalette()
	got := PickColor(p[Lowland], 273.15)
	want := rgb(107, 142, 35)
	if !colorsEqual(got, want) {
		t.Errorf("expected temperate grass %+v, got %+v", want, got)
	}
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds(0.5)
	tests := []struct {
		h    float32
		want Band
	}{
		{0.2, Ocean},
		{0.5, Ocean},
		{0.51, Lowland},
		{0.69, Lowland},
		{0.7, Highland},
		{0.94, Highland},
		{0.95, Mountain},
		{1.2, Mountain},
	}
	for _, tt := range tests {
		if got := th.Classify(tt.h); got != tt.want {
			t.Errorf("height %v: expected %s, got %s", tt.h, tt.want, got)
		}
	}
}

func TestColorizeWithoutJitter(t *testing.T) {
	c := NewColorizer(DefaultPalette(), 273.15, DefaultThresholds(0.5), 0)
	heights := []float32{0.5, 0.6, 0.8, 0.99}

	res := c.Colorize(heights, rand.New(rand.NewSource(1)))
	if len(res.Colors) != 3*len(heights) {
		t.Fatalf("expected %d colors, got %d", 3*len(heights), len(res.Colors))
	}

	for i, band := range []Band{Ocean, Lowland, Highland, Mountain} {
		want := c.BandColor(band)
		for k := 0; k < 3; k++ {
			if got := res.Colors[3*i+k]; got != want {
				t.Errorf("triangle %d corner %d: expected %+v, got %+v", i, k, want, got)
			}
		}
		if res.Histogram[band] != 1 {
			t.Errorf("%s: expected 1 triangle, got %d", band, res.Histogram[band])
		}
	}
}

func TestColorizeJitterBounded(t *testing.T) {
	const randomness = 0.05
	c := NewColorizer(DefaultPalette(), 300, DefaultThresholds(0.5), randomness)
	heights := make([]float32, 500)
	for i := range heights {
		heights[i] = 0.6
	}

	res := c.Colorize(heights, rand.New(rand.NewSource(7)))
	base := c.BandColor(Lowland)
	for i := 0; i < len(res.Colors); i += 3 {
		col := res.Colors[i]
		d := col.R - base.R
		if d < -randomness-1e-6 || d > randomness+1e-6 {
			t.Fatalf("triangle %d: jitter %v outside ±%v", i/3, d, randomness)
		}
		if !approx(col.G-base.G, d) || !approx(col.B-base.B, d) {
			t.Fatalf("triangle %d: jitter not uniform across channels", i/3)
		}
		if res.Colors[i+1] != col || res.Colors[i+2] != col {
			t.Fatalf("triangle %d: corners differ", i/3)
		}
	}
}

func TestColorizeDeterministic(t *testing.T) {
	c := NewColorizer(DefaultPalette(), 250, DefaultThresholds(0.4), 0.1)
	heights := []float32{0.3, 0.5, 0.75, 0.97, 0.6}

	a := c.Colorize(heights, rand.New(rand.NewSource(42)))
	b := c.Colorize(heights, rand.New(rand.NewSource(42)))
	for i := range a.Colors {
		if a.Colors[i] != b.Colors[i] {
			t.Fatalf("color %d differs between identical runs", i)
		}
	}
}

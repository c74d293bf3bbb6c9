// Package biome assigns colors to terrain triangles from temperature-keyed
// gradient tables, one table per height band.
package biome

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// rgb creates an opaque color from 0-255 channel values.
func rgb(r, g, b float32) Color {
	return Color{R: r / 255.0, G: g / 255.0, B: b / 255.0, A: 1.0}
}

// Shift adds d to the red, green and blue channels. Alpha is unchanged and
// no clamping is applied.
func (c Color) Shift(d float32) Color {
	return Color{c.R + d, c.G + d, c.B + d, c.A}
}

// Lerp interpolates the RGB channels from c towards other by t. The result
// keeps c's alpha.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A,
	}
}

// Array returns the components in the layout vertex buffers use.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

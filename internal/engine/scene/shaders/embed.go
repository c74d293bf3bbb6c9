// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PlanetVertexShader transforms lit, vertex-coloured geometry.
//
//go:embed planet.vert
var PlanetVertexShader string

// PlanetFragmentShader shades terrain and the core with a single star light.
//
//go:embed planet.frag
var PlanetFragmentShader string

// MarkerVertexShader draws flora placements as points.
//
//go:embed marker.vert
var MarkerVertexShader string

// MarkerFragmentShader rounds marker points.
//
//go:embed marker.frag
var MarkerFragmentShader string

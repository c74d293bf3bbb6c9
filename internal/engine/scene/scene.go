// Package scene renders generated planets around a point star.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/planetgen/internal/engine/camera"
	"github.com/Faultbox/planetgen/internal/engine/scene/shaders"
	"github.com/Faultbox/planetgen/internal/engine/shader"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Ambient    float32
	ClearColor [3]float32
	MarkerSize float32 // point size at unit distance
	ShowFlora  bool
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Ambient:    0.08,
		ClearColor: [3]float32{0.01, 0.01, 0.03},
		MarkerSize: 40,
		ShowFlora:  true,
	}
}

// Scene holds the star and every planet renderer.
type Scene struct {
	config Config

	litProgram    *shader.Program
	markerProgram *shader.Program

	Star    math.Vec3
	planets []*PlanetRenderer
}

// New compiles the scene shaders. A GL context must be current.
func New(cfg Config) (*Scene, error) {
	s := &Scene{config: cfg}

	var err error
	s.litProgram, err = shader.NewProgram(shaders.PlanetVertexShader, shaders.PlanetFragmentShader,
		"uModel", "uViewProj", "uStarPos", "uAmbient")
	if err != nil {
		return nil, fmt.Errorf("planet shader: %w", err)
	}
	s.markerProgram, err = shader.NewProgram(shaders.MarkerVertexShader, shaders.MarkerFragmentShader,
		"uModel", "uViewProj", "uPointSize")
	if err != nil {
		s.litProgram.Delete()
		return nil, fmt.Errorf("marker shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)

	return s, nil
}

// Add uploads p and returns its renderer.
func (s *Scene) Add(p *planet.Planet) (*PlanetRenderer, error) {
	pr, err := NewPlanetRenderer(p)
	if err != nil {
		return nil, err
	}
	pr.ShowFlora = s.config.ShowFlora
	s.planets = append(s.planets, pr)
	return pr, nil
}

// Planets returns the renderers in insertion order.
func (s *Scene) Planets() []*PlanetRenderer {
	return s.planets
}

// ToggleFlora flips marker visibility on every planet.
func (s *Scene) ToggleFlora() {
	s.config.ShowFlora = !s.config.ShowFlora
	for _, pr := range s.planets {
		pr.ShowFlora = s.config.ShowFlora
	}
}

// Step advances every orbit by dt simulated seconds.
func (s *Scene) Step(dt float32) {
	for _, pr := range s.planets {
		if pr.planet.Orbit != nil {
			pr.planet.Orbit.Step(dt)
		}
	}
}

// Render draws the scene into the current framebuffer.
func (s *Scene) Render(cam *camera.OrbitCamera, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	c := s.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	viewProj := cam.ProjectionMatrix(aspect).Mul(cam.ViewMatrix())

	s.litProgram.Use()
	s.litProgram.SetMat4("uViewProj", viewProj)
	s.litProgram.SetVec3("uStarPos", s.Star)
	s.litProgram.SetFloat("uAmbient", s.config.Ambient)
	for _, pr := range s.planets {
		pr.renderSurface(s.litProgram)
	}

	s.markerProgram.Use()
	s.markerProgram.SetMat4("uViewProj", viewProj)
	s.markerProgram.SetFloat("uPointSize", s.config.MarkerSize)
	for _, pr := range s.planets {
		pr.renderMarkers(s.markerProgram)
	}
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	for _, pr := range s.planets {
		pr.Destroy()
	}
	s.planets = nil
	s.litProgram.Delete()
	s.markerProgram.Delete()
}

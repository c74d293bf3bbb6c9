// Package viewer implements the interactive planet viewer loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/engine/camera"
	"github.com/Faultbox/planetgen/internal/engine/input"
	"github.com/Faultbox/planetgen/internal/engine/scene"
	"github.com/Faultbox/planetgen/internal/engine/window"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/pkg/math"
)

const (
	minTimeScale = 0.125
	maxTimeScale = 512
)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	FPSLimit   int     // 0 means unlimited
	TimeScale  float32 // simulated seconds per real second
	ShowFlora  bool

	ScreenshotDir string
}

// Viewer is one viewer window showing a star and its planets.
type Viewer struct {
	config  Config
	running bool
	paused  bool
	focus   int

	captureNext bool

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	camera *camera.OrbitCamera
	log    *zap.Logger
}

// New opens the window and uploads every planet.
func New(cfg Config, star math.Vec3, planets []*planet.Planet) (*Viewer, error) {
	if len(planets) == 0 {
		return nil, fmt.Errorf("viewer: no planets to show")
	}

	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}
	v.config.TimeScale = clampTimeScale(cfg.TimeScale)

	// The window creates the GL context every other resource needs.
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := initGL(); err != nil {
		v.window.Close()
		return nil, err
	}

	sceneCfg := scene.DefaultConfig()
	sceneCfg.ShowFlora = cfg.ShowFlora
	v.scene, err = scene.New(sceneCfg)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	v.scene.Star = star

	for _, p := range planets {
		if _, err := v.scene.Add(p); err != nil {
			v.Close()
			return nil, fmt.Errorf("upload planet %s: %w", p.ID, err)
		}
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()
	v.frameFocus()

	v.log.Info("viewer initialized",
		zap.Int("planets", len(planets)),
		zap.Float32("time_scale", v.config.TimeScale),
	)
	return v, nil
}

// Run drives the render loop until the window closes or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	budget := frameBudget(v.config.FPSLimit)

	v.log.Info("starting viewer loop")

	for v.running {
		if ctx.Err() != nil {
			break
		}

		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		if !v.paused {
			v.scene.Step(dt * v.config.TimeScale)
		}
		v.camera.Follow(v.focused().Model().TransformVec3(math.Vec3{}))

		width, height := v.window.DrawableSize()
		v.scene.Render(v.camera, width, height)
		if v.captureNext {
			v.captureNext = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if budget > 0 {
			if spare := budget - time.Since(frameStart); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventMouseMove:
			if v.input.IsButtonHeld(sdl.BUTTON_LEFT) {
				v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventMouseWheel:
			v.camera.HandleZoom(event.Wheel)
		case input.EventKeyDown:
			v.handleKey(event.Key)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_SPACE:
		v.paused = !v.paused
		v.log.Debug("pause toggled", zap.Bool("paused", v.paused))
	case sdl.SCANCODE_F:
		v.scene.ToggleFlora()
	case sdl.SCANCODE_TAB:
		v.focus = nextFocus(v.focus, len(v.scene.Planets()))
		v.frameFocus()
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		v.config.TimeScale = clampTimeScale(v.config.TimeScale * 2)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		v.config.TimeScale = clampTimeScale(v.config.TimeScale / 2)
	case sdl.SCANCODE_P:
		v.captureNext = true
	}
}

func (v *Viewer) focused() *scene.PlanetRenderer {
	return v.scene.Planets()[v.focus]
}

func (v *Viewer) frameFocus() {
	pr := v.focused()
	p := pr.Planet()
	center := pr.Model().TransformVec3(math.Vec3{})
	v.camera.Frame(center, p.Descriptor.Radius*(1+p.Descriptor.TerrainHeight))
	v.window.SetTitle(fmt.Sprintf("%s - seed %d (%.0f K)", v.config.Title, p.Descriptor.Seed, p.Temperature))
}

func (v *Viewer) screenshot() {
	width, height := v.window.DrawableSize()
	img, err := readFramebuffer(width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := saveScreenshot(v.config.ScreenshotDir, v.focused().Planet().Descriptor.Seed, img)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// frameBudget is the minimum frame duration for an FPS cap.
func frameBudget(fpsLimit int) time.Duration {
	if fpsLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(fpsLimit)
}

func clampTimeScale(s float32) float32 {
	if s <= 0 {
		return 1
	}
	return math.Clamp(s, minTimeScale, maxTimeScale)
}

func nextFocus(current, count int) int {
	if count == 0 {
		return 0
	}
	return (current + 1) % count
}

// Package config handles planet generator configuration loading and
// management.
package config

import (
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/planet/chunk"
	"github.com/Faultbox/planetgen/internal/planet/flora"
	"github.com/Faultbox/planetgen/internal/planet/noise"
	"github.com/Faultbox/planetgen/internal/server"
	"github.com/Faultbox/planetgen/internal/system"
)

// Config holds all generator settings.
type Config struct {
	Planet   planet.Descriptor `yaml:"planet"`
	Noise    NoiseConfig       `yaml:"noise"`
	Chunking ChunkingConfig    `yaml:"chunking"`
	Flora    FloraConfig       `yaml:"flora"`
	System   system.Config     `yaml:"system"`
	Server   server.Config     `yaml:"server"`
	Catalog  CatalogConfig     `yaml:"catalog"`
	Viewer   ViewerConfig      `yaml:"viewer"`
	Logging  LoggingConfig     `yaml:"logging"`
}

// NoiseConfig selects the noise backend.
type NoiseConfig struct {
	Backend string `yaml:"backend"` // classic or opensimplex
}

// ChunkingConfig holds mesh chunking limits.
type ChunkingConfig struct {
	MaxVertices int `yaml:"max_vertices"`
}

// FloraConfig holds placement sampler settings.
type FloraConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // per placement slot
}

// CatalogConfig holds the run catalog location.
type CatalogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ViewerConfig holds display and rendering settings.
type ViewerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	TimeScale  float32 `yaml:"time_scale"` // simulated seconds per real second
	ShowFlora  bool    `yaml:"show_flora"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	LogFile   string `yaml:"log_file"`
	LogFormat string `yaml:"log_format"` // console or json, file output only
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Planet: planet.DefaultDescriptor(),
		Noise: NoiseConfig{
			Backend: noise.BackendClassic,
		},
		Chunking: ChunkingConfig{
			MaxVertices: chunk.DefaultMaxVertices,
		},
		Flora: FloraConfig{
			MaxAttempts: flora.DefaultMaxAttempts,
		},
		System: system.DefaultConfig(),
		Server: server.DefaultConfig(),
		Catalog: CatalogConfig{
			Enabled: false,
			Path:    "planets.db",
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			TimeScale:  1,
			ShowFlora:  true,

			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:     "info",
			LogFile:   "",
			LogFormat: "console",
		},
	}
}

// Options returns the generator options described by the config.
func (c *Config) Options() planet.Options {
	return planet.Options{
		NoiseBackend: c.Noise.Backend,
		MaxVertices:  c.Chunking.MaxVertices,
		MaxAttempts:  c.Flora.MaxAttempts,
	}
}

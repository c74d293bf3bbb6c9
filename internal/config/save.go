package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/planetgen/internal/planet/noise"
)

// Validate checks every section that has its own rules and reports all
// problems at once.
func (c *Config) Validate() error {
	var errs error
	errs = multierr.Append(errs, c.Planet.Validate())
	errs = multierr.Append(errs, c.System.Validate())
	if _, err := noise.New(c.Noise.Backend, 0); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Chunking.MaxVertices <= 0 || c.Chunking.MaxVertices%3 != 0 {
		errs = multierr.Append(errs, fmt.Errorf("chunking.max_vertices %d must be a positive multiple of 3", c.Chunking.MaxVertices))
	}
	if c.Flora.MaxAttempts < 0 {
		errs = multierr.Append(errs, fmt.Errorf("flora.max_attempts %d must not be negative", c.Flora.MaxAttempts))
	}
	return errs
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo validates the config and writes it to path. The file is replaced
// atomically so a crash never leaves a truncated config behind.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

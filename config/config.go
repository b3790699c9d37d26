package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/frommie/starsort/types"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoInputs             = errors.New("no input directories given")
	ErrNoTargets            = errors.New("no output files given")
	ErrAllExclusive         = errors.New("the all target cannot be combined with portrait, landscape or square")
	ErrEmptyPath            = errors.New("empty output path")
	ErrUnknownOrientation   = errors.New("unknown orientation")
	ErrDuplicateOrientation = errors.New("orientation configured more than once")
	ErrInputMissing         = errors.New("input directory does not exist")
	ErrInputNotDir          = errors.New("input is not a directory")
)

type Config struct {
	Inputs  []string       `yaml:"inputs"`  // Root directories to scan
	Targets []types.Target `yaml:"targets"` // Output files in write order

	// CheckExists skips starred entries whose image is missing on disk
	CheckExists bool `yaml:"checkExists"`

	// ExifOrientation swaps width and height for images rotated by a quarter turn
	ExifOrientation bool `yaml:"exifOrientation"`
}

// Validate checks everything that has to hold before a scan may start
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInputs
	}
	for _, dir := range c.Inputs {
		info, err := os.Stat(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrInputMissing, dir)
			}
			return fmt.Errorf("Error accessing input directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrInputNotDir, dir)
		}
	}

	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	seen := make(map[types.Orientation]bool)
	for _, target := range c.Targets {
		if o, err := types.ParseOrientation(string(target.Orientation)); err != nil || o != target.Orientation {
			return fmt.Errorf("%w: %q", ErrUnknownOrientation, target.Orientation)
		}
		if strings.TrimSpace(target.Path) == "" {
			return fmt.Errorf("%w for %s", ErrEmptyPath, target.Orientation)
		}
		if seen[target.Orientation] {
			return fmt.Errorf("%w: %s", ErrDuplicateOrientation, target.Orientation)
		}
		seen[target.Orientation] = true
	}
	if seen[types.All] && len(seen) > 1 {
		return ErrAllExclusive
	}

	return nil
}

// AllTarget returns the path of the all target, if one is configured
func (c *Config) AllTarget() (string, bool) {
	for _, target := range c.Targets {
		if target.Orientation == types.All && target.Path != "" {
			return target.Path, true
		}
	}
	return "", false
}

// SetTarget replaces the path of an orientation already configured or
// appends a new target
func (c *Config) SetTarget(orientation types.Orientation, path string) {
	for i := range c.Targets {
		if c.Targets[i].Orientation == orientation {
			c.Targets[i].Path = path
			return
		}
	}
	c.Targets = append(c.Targets, types.Target{Orientation: orientation, Path: path})
}

// LoadConfig loads config from yaml file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading config file: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Error parsing YAML config: %w", err)
	}

	// Labels may be written in any case
	for i, target := range cfg.Targets {
		orientation, err := types.ParseOrientation(string(target.Orientation))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOrientation, target.Orientation)
		}
		cfg.Targets[i].Orientation = orientation
	}

	return cfg, nil
}

// NewDefaultConfig creates a config with default values
func NewDefaultConfig() *Config {
	return &Config{
		CheckExists:     false,
		ExifOrientation: false,
	}
}

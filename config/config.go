package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quadpath/quadpath/cell"
)

// Config holds every tunable setting the CLI wires into the spatial
// indices and the trajectory builder.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	QTree QTreeConfig `yaml:"qtree"`
	Path  PathConfig  `yaml:"path"`
	Color ColorConfig `yaml:"color"`
}

// GridConfig configures the uniform grid index.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// QTreeConfig configures the region quadtree index.
type QTreeConfig struct {
	MinSize int `yaml:"min_size"`
}

// PathConfig configures the pathfinder and trajectory builder.
type PathConfig struct {
	AllowDiagonal   bool `yaml:"allow_diagonal"`
	EnableSmoothing bool `yaml:"enable_smoothing"`
}

// ColorConfig names the reference colors used for pixel classification
// (Passable, Blocked) and three further colors (Intermediate, Border,
// Path). The CLI reads only Passable and Blocked; it renders with
// render.DefaultColors.
type ColorConfig struct {
	Passable     [3]uint8 `yaml:"passable"`
	Blocked      [3]uint8 `yaml:"blocked"`
	Intermediate [3]uint8 `yaml:"intermediate"`
	Border       [3]uint8 `yaml:"border"`
	Path         [3]uint8 `yaml:"path"`
}

// PassableRGB returns the passable reference color as a cell.RGB.
func (c ColorConfig) PassableRGB() cell.RGB {
	return cell.RGB{R: c.Passable[0], G: c.Passable[1], B: c.Passable[2]}
}

// BlockedRGB returns the blocked reference color as a cell.RGB.
func (c ColorConfig) BlockedRGB() cell.RGB {
	return cell.RGB{R: c.Blocked[0], G: c.Blocked[1], B: c.Blocked[2]}
}

// Default returns a Config with every field set to its default value,
// for callers that run without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file at path and fills in
// defaults for any zero-valued field, mirroring the reference Config's
// class-level constants.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Grid.CellSize == 0 {
		cfg.Grid.CellSize = 10
	}
	if cfg.QTree.MinSize == 0 {
		cfg.QTree.MinSize = 5
	}
	if cfg.Color.Blocked == ([3]uint8{}) {
		cfg.Color.Blocked = [3]uint8{0, 0, 0}
	}
	if cfg.Color.Passable == ([3]uint8{}) {
		cfg.Color.Passable = [3]uint8{255, 255, 255}
	}
	if cfg.Color.Intermediate == ([3]uint8{}) {
		cfg.Color.Intermediate = [3]uint8{153, 153, 153}
	}
	if cfg.Color.Border == ([3]uint8{}) {
		cfg.Color.Border = [3]uint8{51, 51, 51}
	}
	if cfg.Color.Path == ([3]uint8{}) {
		cfg.Color.Path = [3]uint8{153, 204, 255}
	}
}

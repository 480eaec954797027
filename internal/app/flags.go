package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config represents the parameters for a simulation run.
type Config struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	TickInterval time.Duration `json:"tick_interval"`
	Scale        int           `json:"scale"`
	Seed         int64         `json:"seed"`
	Density      float64       `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults: a 12x10
// board advancing every 50ms.
func NewConfig() *Config {
	return &Config{
		Width:        12,
		Height:       10,
		TickInterval: 50 * time.Millisecond,
		Scale:        32,
		Seed:         42,
		Density:      0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.DurationVar(&c.TickInterval, "interval", c.TickInterval, "time between generations while running")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random board fills")
	fs.Float64Var(&c.Density, "density", c.Density, "alive-cell probability for random board fills")
}

// LoadFile overlays the configuration with values from a JSON file.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate rejects configurations the simulation cannot be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("[Validate] tick interval must be positive, got %v", c.TickInterval)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density must be in [0, 1], got %v", c.Density)
	}
	return nil
}

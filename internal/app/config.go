package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/twhiting/tgol/internal/life"
)

// SettleGenerations is how many generations a freshly randomized board is
// run before it is shown; a raw random fill is too noisy to watch.
const SettleGenerations = 5

// Config carries the tunables shared by both front ends.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Scale  int `json:"scale"`

	// TPS is the generation rate. A config file may instead carry
	// tick_interval_ms, which takes precedence and is converted.
	TPS            int `json:"tps"`
	TickIntervalMS int `json:"tick_interval_ms,omitempty"`

	Seed         int64   `json:"seed"`
	Density      float64 `json:"randomize_density"`
	KillFraction float64 `json:"kill_fraction"`
	Workers      int     `json:"workers"`
	StartPaused  bool    `json:"start_paused"`
}

// NewConfig returns a Config populated with the stock board: a 384x240
// torus seeded at 0.7 density.
func NewConfig() *Config {
	return &Config{
		Width:        16 * 24,
		Height:       10 * 24,
		Scale:        3,
		TPS:          60,
		Seed:         42,
		Density:      0.7,
		KillFraction: 0.7,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts live")
	fs.Float64Var(&c.KillFraction, "kill", c.KillFraction, "probability a live cell dies in a kill sample")
	fs.IntVar(&c.Workers, "workers", c.Workers, "step worker count (0 = NumCPU)")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start with the simulation paused")
}

// LoadFile overlays values from a JSON config file. File values win over
// anything set before the call.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	if c.TickIntervalMS > 0 {
		c.TPS = 1000 / c.TickIntervalMS
		if c.TPS < 1 {
			c.TPS = 1
		}
	}
	return nil
}

// EngineOptions maps the config onto the engine's option struct.
func (c *Config) EngineOptions() life.Options {
	return life.Options{
		Width:        c.Width,
		Height:       c.Height,
		Density:      c.Density,
		KillFraction: c.KillFraction,
		Seed:         c.Seed,
		Workers:      c.Workers,
		StartPaused:  c.StartPaused,
	}
}

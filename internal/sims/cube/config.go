package cube

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"strconv"

	"cube-ca/pkg/lattice"
)

// Config controls the lattice, seeding and engine of a cube session.
type Config struct {
	Width  int
	Height int
	Depth  int

	Seed        int64
	Probability float64
	MaxLife     int

	Boundary lattice.Boundary
	Rule     lattice.Rule
	Workers  int
}

// DefaultConfig returns the standard configuration: a 70³ torus seeded at 1%
// with the 4/4 rule and a three-generation fade.
func DefaultConfig() Config {
	return Config{
		Width:       70,
		Height:      70,
		Depth:       70,
		Seed:        1337,
		Probability: 0.01,
		MaxLife:     3,
		Boundary:    lattice.Toroidal,
		Rule:        lattice.DefaultRule(),
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse keep their defaults; Validate reports values that
// parse but are out of range.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	_ = c.apply(cfg, false)
	return c
}

// Parse is the strict form of FromMap: unknown keys and unparseable values
// are errors, and the result is validated.
func Parse(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if err := c.apply(cfg, true); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) apply(cfg map[string]string, strict bool) error {
	// size goes first so w, h and d can refine it.
	if v, ok := cfg["size"]; ok {
		if err := c.set("size", v); err != nil && strict {
			return err
		}
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		if k != "size" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.set(k, cfg[k]); err != nil && strict {
			return err
		}
	}
	return nil
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "size":
		var n int
		if n, err = strconv.Atoi(value); err == nil {
			c.Width, c.Height, c.Depth = n, n, n
		}
	case "w":
		err = setInt(&c.Width, value)
	case "h":
		err = setInt(&c.Height, value)
	case "d":
		err = setInt(&c.Depth, value)
	case "seed":
		var n int64
		if n, err = strconv.ParseInt(value, 10, 64); err == nil {
			c.Seed = n
		}
	case "p":
		var f float64
		if f, err = strconv.ParseFloat(value, 64); err == nil {
			c.Probability = f
		}
	case "max_life":
		err = setInt(&c.MaxLife, value)
	case "boundary":
		var b lattice.Boundary
		if b, err = lattice.ParseBoundary(value); err == nil {
			c.Boundary = b
		}
	case "rule":
		var r lattice.Rule
		if r, err = lattice.ParseRule(value); err == nil {
			c.Rule = r
		}
	case "workers":
		var n int
		if n, err = strconv.Atoi(value); err == nil {
			if n < 1 {
				return fmt.Errorf("workers must be positive, got %d", n)
			}
			c.Workers = n
		}
	default:
		return fmt.Errorf("unknown cube parameter %q", key)
	}
	if err != nil {
		return fmt.Errorf("cube parameter %s=%q: %w", key, value, err)
	}
	return nil
}

func setInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err == nil {
		*dst = n
	}
	return err
}

// Validate checks the values a lattice cannot be built from.
func (c Config) Validate() error {
	if c.Width < lattice.MinDimension || c.Height < lattice.MinDimension || c.Depth < lattice.MinDimension {
		return fmt.Errorf("%w: %dx%dx%d", lattice.ErrInvalidDimension, c.Width, c.Height, c.Depth)
	}
	if math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("%w: %v", lattice.ErrInvalidProbability, c.Probability)
	}
	if c.MaxLife < 1 || c.MaxLife > lattice.MaxLifeLimit {
		return fmt.Errorf("%w: %d", lattice.ErrInvalidMaxLife, c.MaxLife)
	}
	return nil
}

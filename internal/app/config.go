package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	// Set holds key=value overrides passed to the sim factory.
	Set KVList
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Sim: "cube", Scale: 2, TPS: 10, Seed: 1337, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// Params returns the overrides as a factory map. The seed flag is passed on
// unless an override names it.
func (c *Config) Params() (map[string]string, error) {
	m, err := c.Set.Map()
	if err != nil {
		return nil, err
	}
	if _, ok := m["seed"]; !ok {
		m["seed"] = fmt.Sprint(c.Seed)
	}
	return m, nil
}

// KVList is a repeatable flag of key=value pairs.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the pairs; later keys win.
func (l KVList) Map() (map[string]string, error) {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		m[key] = strings.TrimSpace(value)
	}
	return m, nil
}

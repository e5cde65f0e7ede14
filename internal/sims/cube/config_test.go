package cube

import (
	"errors"
	"math"
	"testing"

	"cube-ca/pkg/lattice"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"size":     "12",
		"d":        "9",
		"seed":     "-4",
		"p":        "0.25",
		"max_life": "7",
		"boundary": "frozen",
		"rule":     "4-5/5",
		"workers":  "3",
	})
	if c.Width != 12 || c.Height != 12 || c.Depth != 9 {
		t.Fatalf("dims = %dx%dx%d", c.Width, c.Height, c.Depth)
	}
	if c.Seed != -4 || c.Probability != 0.25 || c.MaxLife != 7 || c.Workers != 3 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Boundary != lattice.FrozenBorder || c.Rule.String() != "4,5/5" {
		t.Fatalf("boundary=%s rule=%s", c.Boundary, c.Rule)
	}
}

func TestFromMapKeepsDefaultsOnGarbage(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":        "wide",
		"p":        "lots",
		"boundary": "mobius",
		"rule":     "3",
		"workers":  "0",
	})
	if c.Width != def.Width || c.Probability != def.Probability || c.Boundary != def.Boundary || c.Rule != def.Rule || c.Workers != def.Workers {
		t.Fatalf("garbage changed config: %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should give defaults")
	}
}

func TestDefaultConfigScene(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 70 || c.Height != 70 || c.Depth != 70 {
		t.Fatalf("dims = %dx%dx%d", c.Width, c.Height, c.Depth)
	}
	if c.Probability != 0.01 || c.MaxLife != 3 || c.Rule != lattice.DefaultRule() || c.Boundary != lattice.Toroidal {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		mutate func(*Config)
		want   error
	}{
		{func(c *Config) { c.Width = 2 }, lattice.ErrInvalidDimension},
		{func(c *Config) { c.Depth = 0 }, lattice.ErrInvalidDimension},
		{func(c *Config) { c.Probability = 1.5 }, lattice.ErrInvalidProbability},
		{func(c *Config) { c.Probability = math.NaN() }, lattice.ErrInvalidProbability},
		{func(c *Config) { c.MaxLife = 0 }, lattice.ErrInvalidMaxLife},
		{func(c *Config) { c.MaxLife = 256 }, lattice.ErrInvalidMaxLife},
	}
	for i, tc := range cases {
		c := DefaultConfig()
		tc.mutate(&c)
		if err := c.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: err = %v, want %v", i, err, tc.want)
		}
		if _, err := NewWithConfig(c); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: NewWithConfig err = %v, want %v", i, err, tc.want)
		}
	}
}

func TestParseStrict(t *testing.T) {
	c, err := Parse(map[string]string{"size": "8", "h": "5", "rule": "5/5"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 8 || c.Height != 5 || c.Depth != 8 || c.Rule.String() != "5/5" {
		t.Fatalf("parsed %+v", c)
	}

	bad := []map[string]string{
		{"colour": "red"},
		{"rule": "3"},
		{"boundary": "mobius"},
		{"p": "lots"},
		{"workers": "0"},
	}
	for _, m := range bad {
		if _, err := Parse(m); err == nil {
			t.Fatalf("Parse(%v) accepted", m)
		}
	}
	if _, err := Parse(map[string]string{"rule": "3"}); !errors.Is(err, lattice.ErrInvalidRule) {
		t.Fatalf("rule error = %v, want ErrInvalidRule", err)
	}
	if _, err := Parse(map[string]string{"size": "2"}); !errors.Is(err, lattice.ErrInvalidDimension) {
		t.Fatalf("size error = %v, want ErrInvalidDimension", err)
	}
}

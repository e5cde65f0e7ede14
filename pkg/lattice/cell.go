package lattice

// Cell is a single lattice site. The binary state drives the automaton; life
// only controls how long a dead site stays visible.
type Cell struct {
	state   uint8
	prev    uint8
	life    uint8
	maxLife uint8
}

func (c *Cell) initialize(state uint8, maxLife uint8) {
	state &= 1
	c.state = state
	c.prev = state
	c.maxLife = maxLife
	c.life = 0
	if state == 1 {
		c.life = maxLife
	}
}

// effectiveState treats a fully decayed site as dead even if its state lags.
func (c *Cell) effectiveState() uint8 {
	if c.life > 0 {
		return c.state
	}
	return 0
}

func (c *Cell) applyNextState(next uint8) {
	next &= 1
	c.prev = c.state
	c.state = next
	if c.prev == 0 && next == 1 && c.life == 0 {
		c.life = c.maxLife
	}
}

func (c *Cell) decay() {
	if c.state == 0 && c.life > 0 {
		c.life--
	}
}

// State returns the current generation value (0 or 1).
func (c *Cell) State() uint8 { return c.state }

// PreviousState returns the value committed by the last snapshot phase.
func (c *Cell) PreviousState() uint8 { return c.prev }

// Life returns the remaining fade counter.
func (c *Cell) Life() int { return int(c.life) }

// MaxLife returns the value life is reset to on birth.
func (c *Cell) MaxLife() int { return int(c.maxLife) }

// Visible reports whether the site should be drawn.
func (c *Cell) Visible() bool { return c.life > 0 }

// Fade returns life as a fraction of maxLife in [0, 1].
func (c *Cell) Fade() float64 {
	if c.maxLife == 0 {
		return 0
	}
	return float64(c.life) / float64(c.maxLife)
}

package config

import "time"

// Pacing tracks the selected generation rate.
type Pacing struct {
	speeds []int
	level  int
}

// NewPacing creates a pacing controller starting at cfg.Initial.
// An empty speed list falls back to DefaultPacingConfig.
func NewPacing(cfg PacingConfig) *Pacing {
	if len(cfg.Speeds) == 0 {
		cfg = DefaultPacingConfig()
	}
	speeds := make([]int, len(cfg.Speeds))
	copy(speeds, cfg.Speeds)
	return &Pacing{
		speeds: speeds,
		level:  clampLevel(cfg.Initial, len(speeds)),
	}
}

// Rate returns the current generations per second.
func (p *Pacing) Rate() int {
	return p.speeds[p.level]
}

// Interval returns the delay between generations at the current rate.
func (p *Pacing) Interval() time.Duration {
	return time.Second / time.Duration(p.Rate())
}

// Faster selects the next higher rate and returns it.
func (p *Pacing) Faster() int {
	p.level = clampLevel(p.level+1, len(p.speeds))
	return p.Rate()
}

// Slower selects the next lower rate and returns it.
func (p *Pacing) Slower() int {
	p.level = clampLevel(p.level-1, len(p.speeds))
	return p.Rate()
}

// SetRate selects the highest configured rate not above gps.
func (p *Pacing) SetRate(gps int) {
	p.level = 0
	for i, s := range p.speeds {
		if s <= gps {
			p.level = i
		}
	}
}

func clampLevel(level, n int) int {
	return min(max(level, 0), n-1)
}

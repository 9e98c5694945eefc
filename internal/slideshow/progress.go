package slideshow

import "time"

// Progress describes the elapsed fraction of the current advance cycle.
type Progress struct {
	Fraction float64
	Running  bool
}

type progress struct {
	start   time.Time
	period  time.Duration
	frozen  float64
	running bool
}

func (p *progress) begin(now time.Time, period time.Duration) {
	p.start = now
	p.period = period
	p.frozen = 0
	p.running = true
}

// freeze captures the elapsed fraction and stops the indicator.
func (p *progress) freeze(now time.Time) {
	if p.running {
		p.frozen = p.fraction(now)
	}
	p.running = false
}

func (p *progress) reset() {
	p.frozen = 0
	p.running = false
}

func (p *progress) fraction(now time.Time) float64 {
	if !p.running {
		return p.frozen
	}
	if p.period <= 0 {
		return 1
	}
	f := float64(now.Sub(p.start)) / float64(p.period)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

package metrics

import "github.com/san-kum/lifesim/internal/sim"

// Peak is the largest population observed.
type Peak struct {
	name string
	max  int
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(s sim.Status) {
	if s.LiveCells > p.max {
		p.max = s.LiveCells
	}
}

func (p *Peak) Value() float64 { return float64(p.max) }

func (p *Peak) Reset() { p.max = 0 }

// Mean is the average population across observed generations.
type Mean struct {
	name    string
	sum     int
	samples int
}

func NewMean() *Mean {
	return &Mean{name: "mean"}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(s sim.Status) {
	m.sum += s.LiveCells
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

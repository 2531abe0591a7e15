package metrics

import "github.com/san-kum/lifesim/internal/sim"

// Metric accumulates a value over the generations of a run.
type Metric interface {
	Name() string
	Observe(s sim.Status)
	Value() float64
	Reset()
}

// Set observes a fixed list of metrics together.
type Set []Metric

func (ms Set) Observe(s sim.Status) {
	for _, m := range ms {
		m.Observe(s)
	}
}

func (ms Set) Reset() {
	for _, m := range ms {
		m.Reset()
	}
}

// Values returns every metric keyed by name.
func (ms Set) Values() map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

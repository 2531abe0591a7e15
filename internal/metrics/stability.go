package metrics

import "github.com/san-kum/lifesim/internal/sim"

// Stability counts consecutive generations whose population did not change.
// A long streak usually means the board has settled into still lifes and
// period-2 oscillators, or died out.
type Stability struct {
	name    string
	last    int
	streak  int
	samples int
}

func NewStability() *Stability {
	return &Stability{name: "stable_generations"}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(st sim.Status) {
	if s.samples > 0 && st.LiveCells == s.last {
		s.streak++
	} else {
		s.streak = 0
	}
	s.last = st.LiveCells
	s.samples++
}

func (s *Stability) Value() float64 { return float64(s.streak) }

// Settled reports whether the population has been flat for at least n generations.
func (s *Stability) Settled(n int) bool {
	return n > 0 && s.streak >= n
}

func (s *Stability) Reset() {
	s.last = 0
	s.streak = 0
	s.samples = 0
}

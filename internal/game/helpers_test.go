package game

import (
	"time"
)

// scriptSource replays a fixed float sequence, cycling when exhausted. The
// battle resolver's draw order (jitter, crit, drop, pick) is part of its
// contract, so scripted draws pin down exact outcomes.
type scriptSource struct {
	vals []float64
	i    int
}

func (s *scriptSource) Float() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// constSource always returns the same float.
type constSource struct {
	v float64
}

func (s constSource) Float() float64 {
	return s.v
}

// fixedClock returns a Resolver clock pinned to t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testTime = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

// newTestResolver builds a resolver with scripted draws and a fixed clock.
func newTestResolver(vals ...float64) *Resolver {
	return NewResolver(&scriptSource{vals: vals}, WithClock(fixedClock(testTime)))
}

package game

import (
	"time"

	"github.com/chainquest/chainquest-go/internal/engine"
)

// Resolver hosts the engine operations that need randomness or a clock.
// Operations run to completion synchronously; a Resolver is not safe for
// concurrent calls against the same PlayerState.
type Resolver struct {
	rng engine.Source
	now func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the resolver's time source.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// NewResolver creates a Resolver drawing randomness from src.
func NewResolver(src engine.Source, opts ...Option) *Resolver {
	r := &Resolver{rng: src, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

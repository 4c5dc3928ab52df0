package utils

import (
	"math/rand"
	"time"
)

// Pacer produces human-looking random pauses between page interactions,
// jittered inside a configured band.
type Pacer struct {
	min time.Duration
	max time.Duration
}

// NewPacer creates a Pacer sleeping between min and max per wait. A max at or
// below min degrades to a fixed min sleep.
func NewPacer(min, max time.Duration) *Pacer {
	if max < min {
		max = min
	}
	return &Pacer{min: min, max: max}
}

// Next returns one randomized pause duration within the band.
func (p *Pacer) Next() time.Duration {
	if p.max == p.min {
		return p.min
	}
	return p.min + time.Duration(rand.Int63n(int64(p.max-p.min)))
}

// Wait sleeps for one randomized pause.
func (p *Pacer) Wait() {
	time.Sleep(p.Next())
}

package utils

import (
	"testing"
	"time"
)

func TestPacerStaysInsideBand(t *testing.T) {
	min := 10 * time.Millisecond
	max := 20 * time.Millisecond
	p := NewPacer(min, max)

	for i := 0; i < 100; i++ {
		d := p.Next()
		if d < min || d >= max {
			t.Fatalf("Next() = %v, want in [%v, %v)", d, min, max)
		}
	}
}

func TestPacerDegenerateBand(t *testing.T) {
	p := NewPacer(15*time.Millisecond, 5*time.Millisecond)
	for i := 0; i < 10; i++ {
		if d := p.Next(); d != 15*time.Millisecond {
			t.Fatalf("inverted band should degrade to fixed min sleep, got %v", d)
		}
	}
}

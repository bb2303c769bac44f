package aster

import "github.com/hajimehoshi/ebiten/v2"

// Clock supplies the elapsed time for each tick. The Runtime reads it once
// per Tick while playing.
type Clock interface {
	// Delta returns the seconds elapsed since the previous tick.
	Delta() float64
}

// FixedClock is a Clock that returns a constant delta. The zero value ticks
// at 0; tests and offline rendering set Step explicitly.
type FixedClock struct {
	Step float64
}

// Delta implements Clock.
func (c FixedClock) Delta() float64 {
	return c.Step
}

// EbitenClock derives the tick delta from ebiten's fixed ticks-per-second
// rate.
type EbitenClock struct{}

// Delta implements Clock.
func (EbitenClock) Delta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return 1.0 / float64(tps)
}

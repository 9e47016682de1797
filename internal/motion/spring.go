package motion

import (
	"math"
	"time"
)

// SpringConfig tunes a damped spring.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

var (
	// MagneticSpring drives magnetic buttons toward their target offset.
	MagneticSpring = SpringConfig{Stiffness: 150, Damping: 15, Mass: 0.1}

	// ProgressSpring smooths the scroll ratio for the top progress bar.
	ProgressSpring = SpringConfig{Stiffness: 100, Damping: 30, Mass: 1}
)

const (
	springStep = time.Millisecond
	maxFrame   = 100 * time.Millisecond
	restDelta  = 0.01
)

// Spring moves a value toward a target as a damped harmonic oscillator.
// The zero value is not usable; create one with NewSpring.
type Spring struct {
	cfg      SpringConfig
	value    float64
	velocity float64
	target   float64
}

func NewSpring(cfg SpringConfig, initial float64) *Spring {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	return &Spring{cfg: cfg, value: initial, target: initial}
}

func (s *Spring) SetTarget(v float64) { s.target = v }
func (s *Spring) Target() float64     { return s.target }
func (s *Spring) Value() float64      { return s.value }

// Step advances the spring by dt in fixed sub-steps and returns the new
// value. Frames longer than 100ms are clamped, so a backgrounded tab does
// not overshoot when it returns.
func (s *Spring) Step(dt time.Duration) float64 {
	if dt > maxFrame {
		dt = maxFrame
	}
	h := springStep.Seconds()
	for n := dt / springStep; n > 0; n-- {
		force := -s.cfg.Stiffness*(s.value-s.target) - s.cfg.Damping*s.velocity
		s.velocity += force / s.cfg.Mass * h
		s.value += s.velocity * h
	}
	if s.Settled() {
		s.value = s.target
		s.velocity = 0
	}
	return s.value
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.value-s.target) < restDelta && math.Abs(s.velocity) < restDelta
}

package motion

import "time"

// MagneticStrength scales the center-to-pointer vector into the target offset.
const MagneticStrength = 0.3

// PointerEvent is a pointer sample over one element. Left is set when the
// pointer leaves the element.
type PointerEvent struct {
	Pos    Vec
	Bounds Rect
	Left   bool
}

// Magnetic pulls an element toward the pointer while it hovers and lets it
// spring back to rest when the pointer leaves.
type Magnetic struct {
	target Vec
	x, y   *Spring
}

func NewMagnetic() *Magnetic {
	return &Magnetic{
		x: NewSpring(MagneticSpring, 0),
		y: NewSpring(MagneticSpring, 0),
	}
}

// Move sets the target offset for a pointer at p over an element with the
// given bounds.
func (m *Magnetic) Move(p Vec, bounds Rect) {
	m.setTarget(p.Sub(bounds.Center()).Scale(MagneticStrength))
}

// Leave resets the target to rest.
func (m *Magnetic) Leave() {
	m.setTarget(Vec{})
}

func (m *Magnetic) Target() Vec { return m.target }

// Offset is the current smoothed offset.
func (m *Magnetic) Offset() Vec {
	return Vec{m.x.Value(), m.y.Value()}
}

// Step advances the smoothing springs by one frame.
func (m *Magnetic) Step(dt time.Duration) Vec {
	return Vec{m.x.Step(dt), m.y.Step(dt)}
}

// Bind subscribes to the element's pointer events.
func (m *Magnetic) Bind(pointer *Signal[PointerEvent]) func() {
	return pointer.Subscribe(func(e PointerEvent) {
		if e.Left {
			m.Leave()
			return
		}
		m.Move(e.Pos, e.Bounds)
	})
}

func (m *Magnetic) setTarget(v Vec) {
	m.target = v
	m.x.SetTarget(v.X)
	m.y.SetTarget(v.Y)
}

package motion

import "time"

const (
	// MarqueeCopies is how many times the text is repeated to hide the seam.
	// The wrap bounds below are percentages of that repeated content, so the
	// two must change together.
	MarqueeCopies = 4

	marqueeRate  = 0.05
	marqueeStart = -100.0
	marqueeEnd   = 0.0
)

// Frame is one display refresh.
type Frame struct {
	Delta time.Duration
}

// Marquee accumulates a horizontal offset, in percent of content width,
// that wraps seamlessly.
type Marquee struct {
	direction float64
	speed     float64
	offset    float64
}

// NewMarquee creates a marquee moving right for a positive direction and
// left for a negative one. Zero keeps it still.
func NewMarquee(direction int, speed float64) *Marquee {
	var d float64
	switch {
	case direction > 0:
		d = 1
	case direction < 0:
		d = -1
	}
	return &Marquee{direction: d, speed: speed}
}

func (m *Marquee) Offset() float64 { return m.offset }

// Step advances the offset by one frame and applies the wrap.
func (m *Marquee) Step() float64 {
	m.offset += m.direction * m.speed * marqueeRate
	if m.direction > 0 && m.offset > marqueeEnd {
		m.offset = marqueeStart
	}
	if m.direction < 0 && m.offset < marqueeStart {
		m.offset = marqueeEnd
	}
	return m.offset
}

// Bind advances the marquee on every frame and reports the new offset.
func (m *Marquee) Bind(frames *Signal[Frame], apply func(offset float64)) func() {
	return frames.Subscribe(func(Frame) {
		apply(m.Step())
	})
}

package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func TestSignal(t *testing.T) {
	var s Signal[int]
	var got []int

	unsubA := s.Subscribe(func(v int) { got = append(got, v) })
	unsubB := s.Subscribe(func(v int) { got = append(got, v*10) })
	require.Equal(t, 2, s.Len())

	s.Publish(1)
	assert.Equal(t, []int{1, 10}, got)

	unsubA()
	unsubA()
	assert.Equal(t, 1, s.Len())

	s.Publish(2)
	assert.Equal(t, []int{1, 10, 20}, got)

	unsubB()
	assert.Zero(t, s.Len())
	s.Publish(3)
	assert.Equal(t, []int{1, 10, 20}, got)
}

func TestGroupClose(t *testing.T) {
	var pointer Signal[Vec]
	var frames Signal[Frame]
	var g Group

	g.Add(NewCursor().Bind(&pointer, func(Vec) {}))
	g.Add(NewMarquee(1, 2).Bind(&frames, func(float64) {}))
	require.Equal(t, 1, pointer.Len())
	require.Equal(t, 1, frames.Len())

	g.Close()
	g.Close()
	assert.Zero(t, pointer.Len())
	assert.Zero(t, frames.Len())
}

func TestEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     Env
		animate bool
		track   bool
	}{
		{name: "desktop", env: Env{}, animate: true, track: true},
		{name: "touch", env: Env{CoarsePointer: true}, animate: true, track: false},
		{name: "reduced motion", env: Env{ReducedMotion: true}, animate: false, track: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.animate, tt.env.Animate())
			assert.Equal(t, tt.track, tt.env.Track())
		})
	}
}

func TestSpringConverges(t *testing.T) {
	for _, cfg := range []SpringConfig{MagneticSpring, ProgressSpring} {
		s := NewSpring(cfg, 0)
		s.SetTarget(30)
		for i := 0; i < 600 && !s.Settled(); i++ {
			s.Step(frame)
		}
		assert.True(t, s.Settled(), "%+v did not settle", cfg)
		assert.Equal(t, 30.0, s.Value())
	}
}

func TestSpringClampsLongFrames(t *testing.T) {
	a := NewSpring(ProgressSpring, 0)
	b := NewSpring(ProgressSpring, 0)
	a.SetTarget(1)
	b.SetTarget(1)

	a.Step(10 * time.Second)
	b.Step(maxFrame)
	assert.Equal(t, b.Value(), a.Value())
}

func TestMagnetic(t *testing.T) {
	m := NewMagnetic()
	bounds := Rect{Left: 100, Top: 100, Width: 200, Height: 50}

	m.Move(Vec{X: 250, Y: 135}, bounds)
	assert.InDelta(t, 15, m.Target().X, 1e-9)
	assert.InDelta(t, 3, m.Target().Y, 1e-9)

	m.Step(frame)
	assert.Greater(t, m.Offset().X, 0.0)
	assert.Less(t, m.Offset().X, 15.0)

	m.Leave()
	assert.Equal(t, Vec{}, m.Target())
}

func TestMagneticLeaveAlwaysRests(t *testing.T) {
	bounds := Rect{Width: 80, Height: 40}
	for _, p := range []Vec{{-500, 900}, {40, 20}, {1e6, -1e6}} {
		m := NewMagnetic()
		m.Move(p, bounds)
		m.Step(frame)
		m.Leave()
		assert.Equal(t, Vec{}, m.Target())

		for i := 0; i < 600; i++ {
			m.Step(frame)
		}
		assert.Equal(t, Vec{}, m.Offset())
	}
}

func TestMagneticBind(t *testing.T) {
	var pointer Signal[PointerEvent]
	m := NewMagnetic()
	unbind := m.Bind(&pointer)

	pointer.Publish(PointerEvent{Pos: Vec{X: 20, Y: 10}, Bounds: Rect{Width: 20, Height: 20}})
	assert.InDelta(t, 3, m.Target().X, 1e-9)
	assert.InDelta(t, 0, m.Target().Y, 1e-9)

	pointer.Publish(PointerEvent{Left: true})
	assert.Equal(t, Vec{}, m.Target())

	unbind()
	pointer.Publish(PointerEvent{Pos: Vec{X: 20, Y: 10}, Bounds: Rect{Width: 20, Height: 20}})
	assert.Equal(t, Vec{}, m.Target())
}

func TestMarqueeForwardWrap(t *testing.T) {
	m := NewMarquee(1, 2)
	assert.Equal(t, -100.0, m.Step())

	m.offset = -0.05
	assert.Equal(t, -100.0, m.Step())

	m.offset = -50
	assert.InDelta(t, -49.9, m.Step(), 1e-9)
}

func TestMarqueeBackwardWrap(t *testing.T) {
	m := NewMarquee(-1, 2)
	assert.InDelta(t, -0.1, m.Step(), 1e-9)

	m.offset = -99.95
	assert.Equal(t, 0.0, m.Step())
}

func TestMarqueeStaysInBounds(t *testing.T) {
	for _, dir := range []int{1, -1} {
		m := NewMarquee(dir, 5)
		for i := 0; i < 5000; i++ {
			off := m.Step()
			assert.GreaterOrEqual(t, off, -100.0)
			assert.LessOrEqual(t, off, 0.0)
		}
	}
}

func TestMarqueeDirectionNormalised(t *testing.T) {
	assert.InDelta(t, -0.1, NewMarquee(-7, 2).Step(), 1e-9)
	assert.Equal(t, 0.0, NewMarquee(0, 2).Step())
}

func TestMarqueeBind(t *testing.T) {
	var frames Signal[Frame]
	var got []float64
	unbind := NewMarquee(-1, 2).Bind(&frames, func(off float64) { got = append(got, off) })

	frames.Publish(Frame{Delta: frame})
	frames.Publish(Frame{Delta: frame})
	unbind()
	frames.Publish(Frame{Delta: frame})

	require.Len(t, got, 2)
	assert.InDelta(t, -0.2, got[1], 1e-9)
}

func TestCursor(t *testing.T) {
	c := NewCursor()
	assert.Equal(t, Vec{-100, -100}, c.Position())

	var pointer Signal[Vec]
	var applied Vec
	unbind := c.Bind(&pointer, func(p Vec) { applied = p })
	defer unbind()

	pointer.Publish(Vec{X: 400, Y: 300})
	assert.Equal(t, Vec{384, 284}, c.Position())
	assert.Equal(t, c.Position(), applied)
}

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		name     string
		event    ScrollEvent
		ratio    float64
		rotation float64
	}{
		{name: "top", event: ScrollEvent{Top: 0, Height: 3000, Viewport: 1000}, ratio: 0, rotation: 0},
		{name: "middle", event: ScrollEvent{Top: 1000, Height: 3000, Viewport: 1000}, ratio: 0.5, rotation: 22.5},
		{name: "bottom", event: ScrollEvent{Top: 2000, Height: 3000, Viewport: 1000}, ratio: 1, rotation: 45},
		{name: "overscroll", event: ScrollEvent{Top: 2600, Height: 3000, Viewport: 1000}, ratio: 1, rotation: 45},
		{name: "bounce", event: ScrollEvent{Top: -40, Height: 3000, Viewport: 1000}, ratio: 0, rotation: 0},
		{name: "no scroll", event: ScrollEvent{Top: 0, Height: 800, Viewport: 1000}, ratio: 0, rotation: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewScrollProgress()
			assert.InDelta(t, tt.ratio, p.Update(tt.event), 1e-9)
			assert.InDelta(t, tt.rotation, p.Rotation(), 1e-9)
		})
	}
}

func TestScrollProgressBarFollows(t *testing.T) {
	var scroll Signal[ScrollEvent]
	p := NewScrollProgress()
	var ratio float64
	unbind := p.Bind(&scroll, func(r float64) { ratio = r })
	defer unbind()

	scroll.Publish(ScrollEvent{Top: 500, Height: 2000, Viewport: 1000})
	assert.InDelta(t, 0.5, ratio, 1e-9)

	first := p.Step(frame)
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 0.5)

	for i := 0; i < 600; i++ {
		p.Step(frame)
	}
	assert.InDelta(t, 0.5, p.Step(frame), 1e-9)
}

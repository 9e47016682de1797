package motion

import "time"

// MaxRotation is the rotation, in degrees, at the bottom of the page.
const MaxRotation = 45

// ScrollEvent is a scroll position sample.
type ScrollEvent struct {
	Top      float64 // distance scrolled from the top
	Height   float64 // total document height
	Viewport float64 // visible height
}

// ScrollProgress maps the scroll position to a 0..1 ratio, a rotation and a
// smoothed progress bar scale.
type ScrollProgress struct {
	ratio float64
	bar   *Spring
}

func NewScrollProgress() *ScrollProgress {
	return &ScrollProgress{bar: NewSpring(ProgressSpring, 0)}
}

// Update records a scroll sample. A page that cannot scroll has ratio 0.
func (p *ScrollProgress) Update(e ScrollEvent) float64 {
	scrollable := e.Height - e.Viewport
	if scrollable <= 0 {
		p.ratio = 0
	} else {
		p.ratio = clamp(e.Top/scrollable, 0, 1)
	}
	p.bar.SetTarget(p.ratio)
	return p.ratio
}

func (p *ScrollProgress) Ratio() float64 { return p.ratio }

// Rotation maps the ratio linearly onto 0..MaxRotation degrees.
func (p *ScrollProgress) Rotation() float64 {
	return p.ratio * MaxRotation
}

// Step advances the progress bar spring and returns its scale.
func (p *ScrollProgress) Step(dt time.Duration) float64 {
	return p.bar.Step(dt)
}

// Bind follows scroll samples.
func (p *ScrollProgress) Bind(scroll *Signal[ScrollEvent], apply func(ratio float64)) func() {
	return scroll.Subscribe(func(e ScrollEvent) {
		apply(p.Update(e))
	})
}

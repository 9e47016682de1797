// Package motion holds the page's interaction primitives: magnetic buttons,
// marquee text, the custom cursor and the scroll progress indicator.
//
// Every primitive owns its state and is driven by exactly one event source,
// delivered through a [Signal]. Nothing here touches the DOM; the wasm
// runtime in cmd/motion binds browser events to signals and copies the
// resulting values into element styles.
//
// Primitives are best-effort. When the host lacks a signal, or the visitor
// prefers reduced motion, they are simply never bound and keep their neutral
// values.
package motion

import "math"

// Vec is a point or offset in CSS pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Center() Vec {
	return Vec{r.Left + r.Width/2, r.Top + r.Height/2}
}

// Env describes what the host supports.
type Env struct {
	ReducedMotion bool
	CoarsePointer bool
}

// Animate reports whether frame-driven motion (marquee, springs) may run.
func (e Env) Animate() bool { return !e.ReducedMotion }

// Track reports whether pointer-driven primitives may run.
func (e Env) Track() bool { return !e.ReducedMotion && !e.CoarsePointer }

// Group collects unbind funcs so a torn-down element releases every
// subscription at once.
type Group struct {
	unbind []func()
}

func (g *Group) Add(fns ...func()) {
	g.unbind = append(g.unbind, fns...)
}

// Close releases subscriptions in reverse order. It is safe to call twice.
func (g *Group) Close() {
	for i := len(g.unbind) - 1; i >= 0; i-- {
		g.unbind[i]()
	}
	g.unbind = nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

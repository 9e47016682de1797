//go:build js && wasm

// Command motion binds the interaction primitives to the rendered page. It is
// compiled to WebAssembly and loaded from /static/motion.wasm:
//
//	GOOS=js GOARCH=wasm go build -o static/motion.wasm ./cmd/motion
//
// When the module fails to load the page keeps working without effects.
package main

import (
	"fmt"
	"strconv"
	"syscall/js"
	"time"

	"github.com/mifimn/portfolio/internal/motion"
)

type runtime struct {
	win   js.Value
	doc   js.Value
	env   motion.Env
	group motion.Group

	frames  motion.Signal[motion.Frame]
	frameFn js.Func
	last    float64
	running bool
}

func main() {
	win := js.Global()
	rt := &runtime{
		win: win,
		doc: win.Get("document"),
		env: motion.Env{
			ReducedMotion: matches(win, "(prefers-reduced-motion: reduce)"),
			CoarsePointer: matches(win, "(pointer: coarse)"),
		},
	}

	if rt.env.Track() {
		rt.bindCursor()
		rt.bindMagnetic()
	}
	if rt.env.Animate() {
		rt.bindMarquees()
	}
	rt.bindScroll()
	rt.startFrames()

	done := make(chan struct{})
	rt.listen(win, "pagehide", func(js.Value) {
		rt.group.Close()
		close(done)
	})
	<-done
}

func matches(win js.Value, query string) bool {
	mm := win.Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return win.Call("matchMedia", query).Get("matches").Bool()
}

// listen adds a passive event listener whose removal is part of teardown.
func (rt *runtime) listen(target js.Value, event string, fn func(e js.Value)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	opts := map[string]any{"passive": true}
	target.Call("addEventListener", event, cb, opts)
	rt.group.Add(func() {
		target.Call("removeEventListener", event, cb, opts)
		cb.Release()
	})
}

func (rt *runtime) each(selector string, fn func(el js.Value)) {
	nodes := rt.doc.Call("querySelectorAll", selector)
	for i := 0; i < nodes.Length(); i++ {
		fn(nodes.Index(i))
	}
}

func setTransform(el js.Value, format string, args ...any) {
	el.Get("style").Set("transform", fmt.Sprintf(format, args...))
}

func (rt *runtime) bindCursor() {
	el := rt.doc.Call("getElementById", "cursor")
	if el.IsNull() {
		return
	}
	body := rt.doc.Get("body")
	body.Get("classList").Call("add", "motion-pointer")
	rt.group.Add(func() { body.Get("classList").Call("remove", "motion-pointer") })

	var pointer motion.Signal[motion.Vec]
	c := motion.NewCursor()
	rt.group.Add(c.Bind(&pointer, func(p motion.Vec) {
		setTransform(el, "translate(%gpx, %gpx)", p.X, p.Y)
	}))
	rt.listen(rt.win, "pointermove", func(e js.Value) {
		pointer.Publish(motion.Vec{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()})
	})
}

func (rt *runtime) bindMagnetic() {
	rt.each("[data-magnetic]", func(el js.Value) {
		pointer := &motion.Signal[motion.PointerEvent]{}
		m := motion.NewMagnetic()
		rt.group.Add(m.Bind(pointer))

		rt.listen(el, "pointermove", func(e js.Value) {
			r := el.Call("getBoundingClientRect")
			pointer.Publish(motion.PointerEvent{
				Pos: motion.Vec{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()},
				Bounds: motion.Rect{
					Left:   r.Get("left").Float(),
					Top:    r.Get("top").Float(),
					Width:  r.Get("width").Float(),
					Height: r.Get("height").Float(),
				},
			})
		})
		rt.listen(el, "pointerleave", func(js.Value) {
			pointer.Publish(motion.PointerEvent{Left: true})
		})

		rt.group.Add(rt.frames.Subscribe(func(f motion.Frame) {
			o := m.Step(f.Delta)
			setTransform(el, "translate(%gpx, %gpx)", o.X, o.Y)
		}))
	})
}

func (rt *runtime) bindMarquees() {
	rt.each("[data-marquee]", func(el js.Value) {
		direction, _ := strconv.Atoi(el.Call("getAttribute", "data-direction").String())
		speed, _ := strconv.ParseFloat(el.Call("getAttribute", "data-speed").String(), 64)

		m := motion.NewMarquee(direction, speed)
		rt.group.Add(m.Bind(&rt.frames, func(offset float64) {
			setTransform(el, "translateX(%g%%)", offset)
		}))
	})
}

func (rt *runtime) bindScroll() {
	bar := rt.doc.Call("getElementById", "progress")
	var rotated []js.Value
	if rt.env.Animate() {
		rt.each("[data-scroll-rotate]", func(el js.Value) { rotated = append(rotated, el) })
	}

	var scroll motion.Signal[motion.ScrollEvent]
	p := motion.NewScrollProgress()
	rt.group.Add(p.Bind(&scroll, func(ratio float64) {
		for _, el := range rotated {
			setTransform(el, "rotate(%gdeg)", p.Rotation())
		}
		if !rt.env.Animate() && !bar.IsNull() {
			setTransform(bar, "scaleX(%g)", ratio)
		}
	}))
	if rt.env.Animate() && !bar.IsNull() {
		rt.group.Add(rt.frames.Subscribe(func(f motion.Frame) {
			setTransform(bar, "scaleX(%g)", p.Step(f.Delta))
		}))
	}

	sample := func(js.Value) {
		scroll.Publish(motion.ScrollEvent{
			Top:      rt.win.Get("scrollY").Float(),
			Height:   rt.doc.Get("documentElement").Get("scrollHeight").Float(),
			Viewport: rt.win.Get("innerHeight").Float(),
		})
	}
	rt.listen(rt.win, "scroll", sample)
	rt.listen(rt.win, "resize", sample)
	sample(js.Undefined())
}

// startFrames drives the frame signal from requestAnimationFrame while
// anything is subscribed to it.
func (rt *runtime) startFrames() {
	if rt.frames.Len() == 0 {
		return
	}
	rt.running = true
	rt.frameFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !rt.running {
			return nil
		}
		now := args[0].Float()
		delta := time.Duration(0)
		if rt.last > 0 {
			delta = time.Duration((now - rt.last) * float64(time.Millisecond))
		}
		rt.last = now
		rt.frames.Publish(motion.Frame{Delta: delta})
		rt.win.Call("requestAnimationFrame", rt.frameFn)
		return nil
	})
	rt.win.Call("requestAnimationFrame", rt.frameFn)
	rt.group.Add(func() {
		rt.running = false
		rt.frameFn.Release()
	})
}

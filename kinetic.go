package aspen

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flickAnim holds the active deceleration tweens for offset X and Y, plus
// the exact float64 endpoints. The tweens run in float32; the endpoints are
// pinned verbatim on completion so settling is bit-exact.
type flickAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool

	targetX float64
	targetY float64

	last time.Time // clock reading at the previous sample
}

// applyOffsetDelta shifts the offset by d and clamps it. The flick signal
// fires only when the clamped offset actually moved; movement the clamp
// absorbs entirely stays silent.
func (f *Flickable) applyOffsetDelta(d Vec2, t time.Time) {
	prev := f.view.Offset
	next := f.view.clamped(Vec2{X: prev.X + d.X, Y: prev.Y + d.Y})
	if next == prev {
		return
	}
	f.view.Offset = next
	f.fireFlick(prev, t)
	f.invalidate()
}

// startFlick launches the deceleration timeline from the current offset.
// Travel is proportional to the release velocity: with the default cubic
// ease-out the timeline's initial slope equals the release velocity, so the
// handoff from finger to animation doesn't stutter. A release that has
// nowhere to go (zero velocity, or already clamped at the edge) settles
// immediately.
func (f *Flickable) startFlick(v Vec2, t time.Time) {
	d := f.tunables.FlickDuration.Seconds()
	target := f.view.clamped(Vec2{
		X: f.view.Offset.X + v.X*d/3,
		Y: f.view.Offset.Y + v.Y*d/3,
	})
	if target == f.view.Offset {
		f.setPhase(phaseIdle)
		f.updateHover(f.lastPointer, t)
		return
	}

	f.setPhase(phaseFlicking)
	f.anim = &flickAnim{
		tweenX:  gween.New(float32(f.view.Offset.X), float32(target.X), float32(d), f.flickEase),
		tweenY:  gween.New(float32(f.view.Offset.Y), float32(target.Y), float32(d), f.flickEase),
		targetX: target.X,
		targetY: target.Y,
		last:    t,
	}
}

// stepFlick advances the deceleration animation by the clock delta since
// the previous tick. The final tick pins the offset exactly to the
// precomputed target; intermediate ticks are clamped so geometry changes
// mid-flight can't push the view out of range.
func (f *Flickable) stepFlick(now time.Time) {
	if f.phase != phaseFlicking || f.anim == nil {
		return
	}
	dt := float32(now.Sub(f.anim.last).Seconds())
	if dt <= 0 {
		return
	}
	f.anim.last = now

	prev := f.view.Offset
	next := prev
	if !f.anim.doneX {
		val, done := f.anim.tweenX.Update(dt)
		next.X = float64(val)
		f.anim.doneX = done
	}
	if !f.anim.doneY {
		val, done := f.anim.tweenY.Update(dt)
		next.Y = float64(val)
		f.anim.doneY = done
	}

	finished := f.anim.doneX && f.anim.doneY
	if finished {
		next = Vec2{X: f.anim.targetX, Y: f.anim.targetY}
		f.anim = nil
	}

	f.view.Offset = f.view.clamped(next)
	if f.view.Offset != prev {
		f.fireFlick(prev, now)
		f.invalidate()
	}
	if finished {
		f.setPhase(phaseIdle)
		f.updateHover(f.lastPointer, now)
	}
}

// interruptFlick freezes the offset at its last sampled value and drops the
// running animation. Called when a press lands mid-deceleration.
func (f *Flickable) interruptFlick() {
	f.anim = nil
	f.setPhase(phaseIdle)
}

// Scroll applies a wheel or trackpad delta to the offset immediately, with
// no animation. Holding shift exchanges the axis roles, turning a vertical
// wheel into horizontal scrolling. The press/drag state machine is never
// touched: scrolling mid-gesture shifts the content underneath it and a
// running deceleration keeps its own schedule.
func (f *Flickable) Scroll(delta Vec2, mods KeyModifiers, pos Vec2, t time.Time) {
	f.lastPointer = pos
	d := delta
	if mods&ModShift != 0 {
		d.X, d.Y = delta.Y, delta.X
	}
	d.X *= f.tunables.WheelScrollFactor
	d.Y *= f.tunables.WheelScrollFactor
	f.applyOffsetDelta(d, t)
	if f.phase == phaseIdle {
		// The content moved under a stationary cursor; hover may have changed.
		f.updateHover(pos, t)
	}
}

// SetOffset moves the offset directly, clamped to the valid range. Any
// running deceleration is dropped: the host has taken control.
func (f *Flickable) SetOffset(x, y float64) {
	if f.phase == phaseFlicking {
		f.anim = nil
		f.setPhase(phaseIdle)
	}
	prev := f.view.Offset
	next := f.view.clamped(Vec2{X: x, Y: y})
	if next == prev {
		return
	}
	f.view.Offset = next
	f.fireFlick(prev, f.clock.Now())
	f.invalidate()
}

// ScrollTo animates the offset to the clamped target over d. It reuses the
// flick timeline, so the animation is interruptible by a press exactly like
// a finger flick. Ignored while a press holds the viewport (armed, dragging,
// or cancelled); the pointer owns the offset until release. A nil easeFn
// uses the flick easing, a non-positive d jumps immediately.
func (f *Flickable) ScrollTo(x, y float64, d time.Duration, easeFn ease.TweenFunc) {
	switch f.phase {
	case phaseArmed, phaseDragging, phaseCancelled:
		return
	}
	now := f.clock.Now()
	target := f.view.clamped(Vec2{X: x, Y: y})
	if target == f.view.Offset {
		if f.phase == phaseFlicking {
			f.anim = nil
			f.setPhase(phaseIdle)
		}
		return
	}
	if d <= 0 {
		f.anim = nil
		f.setPhase(phaseIdle)
		prev := f.view.Offset
		f.view.Offset = target
		f.fireFlick(prev, now)
		f.invalidate()
		return
	}
	if easeFn == nil {
		easeFn = f.flickEase
	}
	sec := float32(d.Seconds())
	f.setPhase(phaseFlicking)
	f.anim = &flickAnim{
		tweenX:  gween.New(float32(f.view.Offset.X), float32(target.X), sec, easeFn),
		tweenY:  gween.New(float32(f.view.Offset.Y), float32(target.Y), sec, easeFn),
		targetX: target.X,
		targetY: target.Y,
		last:    now,
	}
}

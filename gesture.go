package aspen

import (
	"math"
	"time"
)

// gesturePhase tracks which stage of the press/drag/flick lifecycle the
// engine is in. Exactly one phase is active at a time; the Flickable fields
// that are meaningful depend on the phase.
type gesturePhase uint8

const (
	phaseIdle      gesturePhase = iota // no pointer interaction in progress
	phaseArmed                         // pressed, within the drag threshold; tap candidate
	phaseDragging                      // threshold crossed; offset tracks the pointer 1:1
	phaseFlicking                      // released; deceleration animation running
	phaseCancelled                     // gesture aborted; absorbing events until release
)

func (p gesturePhase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseArmed:
		return "armed"
	case phaseDragging:
		return "dragging"
	case phaseFlicking:
		return "flicking"
	case phaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// setPhase transitions the state machine, tracing the edge in debug mode.
func (f *Flickable) setPhase(p gesturePhase) {
	if f.phase == p {
		return
	}
	if f.debug {
		debugf("gesture %s -> %s", f.phase, p)
	}
	f.phase = p
}

// arm records a fresh press. The hit region is remembered but its pressed
// state stays false until the long-press deadline commits it; an immediate
// press indication would flash on every scroll attempt.
func (f *Flickable) arm(pos Vec2, t time.Time, button MouseButton) {
	f.setPhase(phaseArmed)
	f.pressOrigin = pos
	f.pressStart = t
	f.pressButton = button
	f.lastSample = PointerSample{Position: pos, Time: t}
	f.armedRegion = f.hitTest(f.view.contentPos(pos))
	f.longPressed = false
}

// armedMove watches a held press for the drag threshold. Displacement is
// measured from the press origin, not the previous sample, so slow creep
// still converts to a drag.
func (f *Flickable) armedMove(pos Vec2, t time.Time) {
	dx := pos.X - f.pressOrigin.X
	dy := pos.Y - f.pressOrigin.Y
	if math.Sqrt(dx*dx+dy*dy) <= f.tunables.DragThreshold {
		f.lastSample = PointerSample{Position: pos, Time: t}
		return
	}

	// Threshold crossed: the container claims the gesture. Any committed
	// press indication is withdrawn and hover goes quiet until the gesture
	// resolves.
	if f.longPressed && f.armedRegion != nil {
		f.armedRegion.setPressed(false)
		f.invalidate()
	}
	f.clearHover(t)
	f.setPhase(phaseDragging)

	// The pent-up displacement lands in one step so that from here on the
	// total offset change equals the total pointer travel.
	f.applyOffsetDelta(Vec2{X: dx, Y: dy}, t)
	f.lastSample = PointerSample{Position: pos, Time: t}
}

// dragMove applies pointer movement to the offset one-to-one, no damping.
func (f *Flickable) dragMove(pos Vec2, t time.Time) {
	f.applyOffsetDelta(Vec2{
		X: pos.X - f.lastSample.Position.X,
		Y: pos.Y - f.lastSample.Position.Y,
	}, t)
	f.lastSample = PointerSample{Position: pos, Time: t}
}

// releaseTap ends a press that never left the drag threshold. The release
// clicks only if it still lands on the region that was hit at press time.
func (f *Flickable) releaseTap(pos Vec2, t time.Time) {
	r := f.armedRegion
	wasPressed := f.longPressed
	f.setPhase(phaseIdle)
	f.armedRegion = nil
	f.longPressed = false

	if r != nil {
		if wasPressed {
			r.setPressed(false)
			f.invalidate()
		}
		if r == f.hitTest(f.view.contentPos(pos)) {
			f.classifyRelease(r, pos, t, f.pressButton)
		}
	}
	f.updateHover(pos, t)
}

// releaseDrag ends a drag: the final movement lands on the offset, the
// release velocity is estimated from the last two samples, and the
// deceleration timeline takes over.
func (f *Flickable) releaseDrag(pos Vec2, t time.Time) {
	var v Vec2
	if dt := t.Sub(f.lastSample.Time).Seconds(); dt > 0 {
		v.X = (pos.X - f.lastSample.Position.X) / dt
		v.Y = (pos.Y - f.lastSample.Position.Y) / dt
	}
	f.applyOffsetDelta(Vec2{
		X: pos.X - f.lastSample.Position.X,
		Y: pos.Y - f.lastSample.Position.Y,
	}, t)
	f.armedRegion = nil
	f.startFlick(v, t)
}

// pollLongPress commits the pressed state once a still-standing press has
// been held for the long-press duration. Called from Update; there are no
// timer callbacks anywhere in the engine.
func (f *Flickable) pollLongPress(now time.Time) {
	if f.phase != phaseArmed || f.longPressed || f.armedRegion == nil {
		return
	}
	if now.Sub(f.pressStart) < f.tunables.LongPressDuration {
		return
	}
	f.longPressed = true
	f.armedRegion.setPressed(true)
	f.fireLongPress(f.armedRegion, f.lastSample.Position, now, f.pressButton)
	f.invalidate()
}

// CancelGesture aborts any in-progress gesture, for hosts that lose the
// pointer mid-stream (grab changes, focus loss, palm rejection). A held
// press stops being a tap candidate: the eventual release produces no
// click. A running deceleration stops where it is. No-op while idle.
func (f *Flickable) CancelGesture() {
	now := f.clock.Now()
	switch f.phase {
	case phaseArmed, phaseDragging:
		if f.longPressed && f.armedRegion != nil {
			f.armedRegion.setPressed(false)
			f.invalidate()
		}
		f.armedRegion = nil
		f.longPressed = false
		f.setPhase(phaseCancelled)
		f.emitGesture(EventCancel, nil, f.lastPointer, f.pressButton, now)
	case phaseFlicking:
		f.anim = nil
		f.setPhase(phaseIdle)
		f.emitGesture(EventCancel, nil, f.lastPointer, f.pressButton, now)
		f.updateHover(f.lastPointer, now)
	}
}

package aspen

import "time"

// Event entry points. All positions are in viewport coordinates with the
// origin at the viewport's top-left; timestamps come from the host's event
// source and must never decrease. Everything here must be called from the
// same goroutine as Update.

// PointerDown feeds a press into the engine. A press lands in one of three
// ways: it arms a fresh gesture, it freezes and interrupts a running
// deceleration before arming, or, if a press is already active (a chorded
// second button), it is ignored.
func (f *Flickable) PointerDown(pos Vec2, t time.Time, button MouseButton) {
	f.lastPointer = pos
	switch f.phase {
	case phaseIdle:
		f.updateHover(pos, t)
		f.arm(pos, t, button)
	case phaseFlicking:
		f.interruptFlick()
		f.arm(pos, t, button)
	}
}

// PointerMove feeds a pointer movement into the engine. While idle it only
// maintains hover; while armed it watches for the drag threshold; while
// dragging it scrolls one-to-one. During a flick or a cancelled gesture the
// position is tracked but hover stays suppressed.
func (f *Flickable) PointerMove(pos Vec2, t time.Time) {
	f.lastPointer = pos
	switch f.phase {
	case phaseIdle:
		f.updateHover(pos, t)
	case phaseArmed:
		f.armedMove(pos, t)
		if f.phase == phaseArmed {
			f.updateHover(pos, t)
		}
	case phaseDragging:
		f.dragMove(pos, t)
	}
}

// PointerUp feeds a release into the engine. A release of a button other
// than the one that armed the gesture is ignored, as is a release with no
// active press.
func (f *Flickable) PointerUp(pos Vec2, t time.Time, button MouseButton) {
	f.lastPointer = pos
	switch f.phase {
	case phaseArmed:
		if button != f.pressButton {
			return
		}
		f.releaseTap(pos, t)
	case phaseDragging:
		if button != f.pressButton {
			return
		}
		f.releaseDrag(pos, t)
	case phaseCancelled:
		if button != f.pressButton {
			return
		}
		f.setPhase(phaseIdle)
		f.updateHover(pos, t)
	}
}

// --- Hit testing ---

// hitTest finds the topmost enabled region at the content-space point.
// Regions are tested in descending ZIndex order; among equal ZIndex the most
// recently added wins. Returns nil if nothing is hit.
func (f *Flickable) hitTest(cp Vec2) *Region {
	regions := f.orderedRegions()
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if !r.Visible || !r.Enabled {
			continue
		}
		if r.contains(cp.X, cp.Y) {
			return r
		}
	}
	return nil
}

// --- Hover maintenance ---

// updateHover recomputes which region is under the pointer and fires
// enter/leave transitions. Callers gate this on the phase: hover never
// changes during a drag, a flick, or a cancelled gesture.
func (f *Flickable) updateHover(pos Vec2, t time.Time) {
	target := f.hitTest(f.view.contentPos(pos))
	if target == f.hoverRegion {
		return
	}
	if f.hoverRegion != nil {
		f.fireHover(f.hoverRegion, false, pos, t)
	}
	if target != nil {
		f.fireHover(target, true, pos, t)
	}
	f.hoverRegion = target
	f.invalidate()
}

// clearHover drops the current hover, if any. Called when the container
// claims the gesture: a finger dragging the viewport is not hovering.
func (f *Flickable) clearHover(t time.Time) {
	if f.hoverRegion == nil {
		return
	}
	f.fireHover(f.hoverRegion, false, f.lastPointer, t)
	f.hoverRegion = nil
	f.invalidate()
}

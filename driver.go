package aspen

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultWheelLine is how many length units one wheel tick scrolls.
const defaultWheelLine = 40.0

// Source polls ebiten input once per frame and feeds it to a Flickable,
// collapsing mouse, primary touch, and wheel onto the engine's
// single-pointer event surface. The first press source to arrive (a mouse
// button or a touch) owns the gesture until it releases; additional touches
// are ignored.
type Source struct {
	f *Flickable

	// Origin is the screen position of the viewport's top-left corner.
	// Screen coordinates are translated by -Origin before they reach the
	// engine.
	Origin Vec2

	// WheelLine scales one wheel tick into length units.
	WheelLine float64

	down      bool
	button    MouseButton
	lastX     float64
	lastY     float64
	touchDown bool
	touchID   ebiten.TouchID
	touchIDs  []ebiten.TouchID // reused poll buffer
}

// NewSource creates an input source feeding f. One Source per Flickable.
// Panics if f is nil.
func NewSource(f *Flickable) *Source {
	if f == nil {
		panic("aspen: nil flickable")
	}
	return &Source{f: f, WheelLine: defaultWheelLine}
}

// Poll reads ebiten's input state once and forwards this frame's events.
// Call it from the host's Update, before Flickable.Update.
func (s *Source) Poll() {
	now := s.f.clock.Now()
	s.pollTouch(now)
	if !s.touchDown {
		s.pollMouse(now)
	}
	s.pollWheel(now)
}

// pollMouse tracks cursor position and button edges. The button is latched
// at press so a chord change mid-gesture can't swap it.
func (s *Source) pollMouse(now time.Time) {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx) - s.Origin.X, Y: float64(my) - s.Origin.Y}

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	switch {
	case pressed && !s.down:
		s.down = true
		s.button = button
		s.f.PointerDown(pos, now, button)
	case !pressed && s.down:
		s.down = false
		s.f.PointerUp(pos, now, s.button)
	default:
		if pos.X != s.lastX || pos.Y != s.lastY {
			s.f.PointerMove(pos, now)
		}
	}
	s.lastX = pos.X
	s.lastY = pos.Y
}

// pollTouch adopts the first touch as the pointer and follows it until it
// lifts. Touches report as the left button.
func (s *Source) pollTouch(now time.Time) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if s.touchDown {
		alive := false
		for _, id := range s.touchIDs {
			if id == s.touchID {
				alive = true
				break
			}
		}
		if !alive {
			s.touchDown = false
			s.f.PointerUp(Vec2{X: s.lastX, Y: s.lastY}, now, MouseButtonLeft)
			return
		}
		tx, ty := ebiten.TouchPosition(s.touchID)
		pos := Vec2{X: float64(tx) - s.Origin.X, Y: float64(ty) - s.Origin.Y}
		if pos.X != s.lastX || pos.Y != s.lastY {
			s.f.PointerMove(pos, now)
		}
		s.lastX = pos.X
		s.lastY = pos.Y
		return
	}

	if len(s.touchIDs) == 0 || s.down {
		return
	}
	s.touchID = s.touchIDs[0]
	s.touchDown = true
	tx, ty := ebiten.TouchPosition(s.touchID)
	pos := Vec2{X: float64(tx) - s.Origin.X, Y: float64(ty) - s.Origin.Y}
	s.f.PointerDown(pos, now, MouseButtonLeft)
	s.lastX = pos.X
	s.lastY = pos.Y
}

// pollWheel forwards wheel ticks as scroll deltas, scaled by WheelLine.
// Wheel up scrolls toward the content's top.
func (s *Source) pollWheel(now time.Time) {
	wx, wy := ebiten.Wheel()
	if wx == 0 && wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.f.Scroll(
		Vec2{X: wx * s.WheelLine, Y: wy * s.WheelLine},
		readModifiers(),
		Vec2{X: float64(mx) - s.Origin.X, Y: float64(my) - s.Origin.Y},
		now,
	)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

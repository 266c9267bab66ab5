package aspen

import (
	"testing"
	"time"
)

// --- Hover ---

func TestHoverEnterLeave(t *testing.T) {
	f, clock := newTestFlickable()
	r := NewRegion("r", Rect{Width: 100, Height: 100})
	f.AddRegion(r)

	var events []string
	f.OnHoverChange(func(ctx HoverContext) {
		if ctx.Entered {
			events = append(events, "enter "+ctx.Region.Name)
		} else {
			events = append(events, "leave "+ctx.Region.Name)
		}
	})

	f.PointerMove(Vec2{X: 50, Y: 50}, clock.Now())
	if !r.Hovered() {
		t.Error("region should be hovered")
	}

	// Moving within the region fires nothing further.
	f.PointerMove(Vec2{X: 60, Y: 60}, clock.Now())

	f.PointerMove(Vec2{X: 150, Y: 50}, clock.Now())
	if r.Hovered() {
		t.Error("region should no longer be hovered")
	}

	if len(events) != 2 || events[0] != "enter r" || events[1] != "leave r" {
		t.Errorf("expected [enter r, leave r], got %v", events)
	}
}

func TestHoverMovesBetweenRegions(t *testing.T) {
	f, clock := newTestFlickable()
	a := NewRegion("a", Rect{Width: 80, Height: 100})
	b := NewRegion("b", Rect{X: 120, Width: 80, Height: 100})
	f.AddRegion(a)
	f.AddRegion(b)

	var events []string
	f.OnHoverChange(func(ctx HoverContext) {
		verb := "leave"
		if ctx.Entered {
			verb = "enter"
		}
		events = append(events, verb+" "+ctx.Region.Name)
	})

	f.PointerMove(Vec2{X: 40, Y: 50}, clock.Now())
	f.PointerMove(Vec2{X: 150, Y: 50}, clock.Now())

	want := []string{"enter a", "leave a", "enter b"}
	if len(events) != 3 || events[0] != want[0] || events[1] != want[1] || events[2] != want[2] {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestHoverSuppressedDuringDrag(t *testing.T) {
	f, clock := newTestFlickable()
	r := NewRegion("r", Rect{Width: 2000, Height: 100})
	f.AddRegion(r)

	var events []string
	f.OnHoverChange(func(ctx HoverContext) {
		verb := "leave"
		if ctx.Entered {
			verb = "enter"
		}
		events = append(events, verb)
	})

	f.PointerMove(Vec2{X: 50, Y: 50}, clock.Now())
	f.PointerDown(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonLeft)

	// Crossing the threshold claims the gesture and drops the hover.
	f.PointerMove(Vec2{X: 50, Y: 40}, clock.Now())
	if !f.Dragging() {
		t.Fatal("expected drag")
	}
	if r.Hovered() {
		t.Error("hover must be suppressed while dragging")
	}

	// Dragging across the region fires no hover transitions.
	f.PointerMove(Vec2{X: 50, Y: 30}, clock.Now())
	f.PointerMove(Vec2{X: 50, Y: 20}, clock.Now())

	clock.Advance(100 * time.Millisecond)
	f.PointerUp(Vec2{X: 50, Y: 20}, clock.Now(), MouseButtonLeft)
	if f.Flicking() {
		t.Fatal("still release should not flick")
	}

	// Idle again: hover catches up with the pointer.
	if !r.Hovered() {
		t.Error("hover should return once the gesture resolves")
	}
	want := []string{"enter", "leave", "enter"}
	if len(events) != 3 || events[0] != want[0] || events[1] != want[1] || events[2] != want[2] {
		t.Errorf("expected %v, got %v", want, events)
	}
}

func TestHoverSuppressedDuringFlick(t *testing.T) {
	f, clock := newTestFlickable()
	// Sits under the pointer only after the flick settles at offset -300.
	r := NewRegion("r", Rect{X: 200, Y: 350, Width: 200, Height: 100})
	f.AddRegion(r)

	var enters int
	f.OnHoverChange(func(ctx HoverContext) {
		if ctx.Entered {
			enters++
		}
	})

	startTestFlick(f, clock)
	if enters != 0 {
		t.Fatalf("hover fired before the flick settled: %d", enters)
	}

	settleFlick(t, f, clock)
	if enters != 1 {
		t.Errorf("hover enters after settling = %d, want 1", enters)
	}
	if !r.Hovered() {
		t.Error("region under the settled content should be hovered")
	}
}

func TestWheelScrollUpdatesHover(t *testing.T) {
	f, clock := newTestFlickable()
	r := NewRegion("r", Rect{Y: 150, Width: 100, Height: 100})
	f.AddRegion(r)

	f.PointerMove(Vec2{X: 50, Y: 50}, clock.Now())
	if r.Hovered() {
		t.Fatal("region should start unhovered")
	}

	// The content moves under a stationary cursor.
	f.Scroll(Vec2{X: 0, Y: -120}, 0, Vec2{X: 50, Y: 50}, clock.Now())
	if !r.Hovered() {
		t.Error("scrolling the region under the cursor should hover it")
	}
}

// --- Button handling ---

func TestChordedSecondPressIgnored(t *testing.T) {
	f, clock := newTestFlickable()
	r := NewRegion("r", Rect{Width: 100, Height: 100})
	f.AddRegion(r)

	var clicks int
	f.OnClick(func(ClickContext) { clicks++ })

	f.PointerDown(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonLeft)
	// A second button mid-gesture is ignored outright.
	f.PointerDown(Vec2{X: 80, Y: 50}, clock.Now(), MouseButtonRight)
	if f.pressOrigin != (Vec2{X: 50, Y: 50}) {
		t.Error("second press must not re-arm the gesture")
	}

	// Releasing the chorded button changes nothing.
	f.PointerUp(Vec2{X: 80, Y: 50}, clock.Now(), MouseButtonRight)
	if f.phase != phaseArmed {
		t.Error("release of a non-arming button must be ignored")
	}

	f.PointerUp(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonLeft)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestRightButtonClick(t *testing.T) {
	f, clock := newTestFlickable()
	r := NewRegion("r", Rect{Width: 100, Height: 100})
	f.AddRegion(r)

	var button MouseButton
	var clicked bool
	f.OnClick(func(ctx ClickContext) {
		clicked = true
		button = ctx.Button
	})

	f.PointerDown(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonRight)
	f.PointerUp(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonRight)

	if !clicked || button != MouseButtonRight {
		t.Errorf("clicked = %v button = %v, want right-button click", clicked, button)
	}
}

func TestOrphanEventsAreNoOps(t *testing.T) {
	f, clock := newTestFlickable()

	f.PointerUp(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonLeft)
	f.PointerMove(Vec2{X: 60, Y: 50}, clock.Now())
	f.PointerUp(Vec2{X: 60, Y: 50}, clock.Now(), MouseButtonMiddle)

	if f.phase != phaseIdle || f.Offset() != (Vec2{}) {
		t.Error("orphan releases and moves must not change state")
	}
}

// --- Hit testing ---

func TestHitTestTopmost(t *testing.T) {
	f, _ := newTestFlickable()
	a := NewRegion("a", Rect{Width: 100, Height: 100})
	b := NewRegion("b", Rect{Width: 100, Height: 100})
	f.AddRegion(a)
	f.AddRegion(b)

	if hit := f.hitTest(Vec2{X: 50, Y: 50}); hit != b {
		t.Errorf("expected most recently added region b, got %v", hit)
	}
}

func TestHitTestRespectsZIndex(t *testing.T) {
	f, _ := newTestFlickable()
	a := NewRegion("a", Rect{Width: 100, Height: 100})
	a.ZIndex = 10
	b := NewRegion("b", Rect{Width: 100, Height: 100})
	f.AddRegion(a)
	f.AddRegion(b)

	if hit := f.hitTest(Vec2{X: 50, Y: 50}); hit != a {
		t.Errorf("expected region a (higher ZIndex), got %v", hit)
	}
}

func TestHitTestSkipsInvisible(t *testing.T) {
	f, _ := newTestFlickable()
	a := NewRegion("a", Rect{Width: 100, Height: 100})
	b := NewRegion("b", Rect{Width: 100, Height: 100})
	b.Visible = false
	f.AddRegion(a)
	f.AddRegion(b)

	if hit := f.hitTest(Vec2{X: 50, Y: 50}); hit != a {
		t.Errorf("expected region a (b is invisible), got %v", hit)
	}
}

func TestHitTestSkipsDisabled(t *testing.T) {
	f, _ := newTestFlickable()
	a := NewRegion("a", Rect{Width: 100, Height: 100})
	b := NewRegion("b", Rect{Width: 100, Height: 100})
	b.Enabled = false
	f.AddRegion(a)
	f.AddRegion(b)

	if hit := f.hitTest(Vec2{X: 50, Y: 50}); hit != a {
		t.Errorf("expected region a (b is disabled), got %v", hit)
	}
}

func TestHitTestMiss(t *testing.T) {
	f, _ := newTestFlickable()
	a := NewRegion("a", Rect{Width: 100, Height: 100})
	f.AddRegion(a)

	if hit := f.hitTest(Vec2{X: 500, Y: 500}); hit != nil {
		t.Errorf("expected nil, got %v", hit)
	}
}

func TestClickGoesToTopmostRegion(t *testing.T) {
	f, clock := newTestFlickable()
	a := NewRegion("a", Rect{Width: 100, Height: 100})
	b := NewRegion("b", Rect{Width: 100, Height: 100})
	f.AddRegion(a)
	f.AddRegion(b)

	var hit string
	a.OnClick = func(ClickContext) { hit = "a" }
	b.OnClick = func(ClickContext) { hit = "b" }

	f.PointerDown(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonLeft)
	f.PointerUp(Vec2{X: 50, Y: 50}, clock.Now(), MouseButtonLeft)

	if hit != "b" {
		t.Errorf("click went to %q, want b", hit)
	}
}

// --- Allocation discipline ---

func TestPointerMoveDraggingNoAllocs(t *testing.T) {
	f, clock := newTestFlickable()
	f.SetContentSize(1e6, 1e6)

	f.PointerDown(Vec2{X: 300, Y: 300}, clock.Now(), MouseButtonLeft)
	f.PointerMove(Vec2{X: 250, Y: 300}, clock.Now())
	if !f.Dragging() {
		t.Fatal("expected drag")
	}

	positions := [2]Vec2{{X: 250, Y: 300}, {X: 249, Y: 300}}
	now := clock.Now()
	var i int
	allocs := testing.AllocsPerRun(1000, func() {
		f.PointerMove(positions[i%2], now)
		i++
	})
	if allocs != 0 {
		t.Errorf("PointerMove allocated %v times per op, want 0", allocs)
	}
}

// --- Benchmarks ---

func BenchmarkPointerMove_Dragging(b *testing.B) {
	f, clock := newTestFlickable()
	f.SetContentSize(1e6, 1e6)
	f.PointerDown(Vec2{X: 300, Y: 300}, clock.Now(), MouseButtonLeft)
	f.PointerMove(Vec2{X: 250, Y: 300}, clock.Now())

	positions := [2]Vec2{{X: 250, Y: 300}, {X: 249, Y: 300}}
	now := clock.Now()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.PointerMove(positions[i%2], now)
	}
}

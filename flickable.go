package aspen

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Flickable is the top-level object: a scrollable viewport with nested
// interactive regions, fed by raw pointer events and polled once per frame.
// It owns the gesture state machine, the kinetic scroll engine, the region
// list, and the callback registry.
//
// All methods must be called from a single goroutine. The engine never
// spawns goroutines or schedules timers; long-press deadlines and
// deceleration ticks resolve inside Update by comparing clock readings.
type Flickable struct {
	view Viewport

	tunables  Tunables
	flickEase ease.TweenFunc

	clock Clock
	sink  EventSink
	debug bool

	// OnInvalidate, when set, is called after every externally visible state
	// change (offset, pressed, hovered) so the host can schedule a redraw.
	// Fire-and-forget; the engine never waits on the render side.
	OnInvalidate func()

	// Regions
	regions       []*Region
	regionsSorted bool
	sortedRegions []*Region // reused buffer for ZIndex-ordered hit testing

	// Container-level handlers
	handlers handlerRegistry

	// Gesture state. Which fields are meaningful depends on phase.
	phase       gesturePhase
	pressOrigin Vec2          // pointer position at press
	pressStart  time.Time     // press timestamp, drives the long-press deadline
	pressButton MouseButton   // button latched at press
	lastSample  PointerSample // most recent sample; velocity pairs it with the release
	armedRegion *Region       // region hit at press, nil when the press landed on empty space
	longPressed bool          // pressed state committed this gesture

	hoverRegion *Region // region under the cursor while idle or armed
	lastPointer Vec2    // last seen pointer position, for hover refresh

	anim *flickAnim
}

// NewFlickable creates an engine for a viewport of the given visible and
// content sizes, driven by the system clock.
func NewFlickable(visible, content Vec2) *Flickable {
	return NewFlickableWithClock(visible, content, SystemClock())
}

// NewFlickableWithClock creates a Flickable driven by the given clock.
// Deterministic hosts and tests pass a ManualClock here.
// Panics if clock is nil or either size has a negative component.
func NewFlickableWithClock(visible, content Vec2, clock Clock) *Flickable {
	if clock == nil {
		panic("aspen: nil clock")
	}
	if visible.X < 0 || visible.Y < 0 || content.X < 0 || content.Y < 0 {
		panic("aspen: negative viewport size")
	}
	return &Flickable{
		view:      Viewport{VisibleSize: visible, ContentSize: content},
		tunables:  DefaultTunables(),
		flickEase: ease.OutCubic,
		clock:     clock,
	}
}

// Update advances time-driven behavior: long-press commitment and the
// deceleration timeline. Call once per host frame, after feeding the
// frame's pointer events.
func (f *Flickable) Update() {
	now := f.clock.Now()
	f.pollLongPress(now)
	f.stepFlick(now)
}

// --- Viewport state ---

// Offset returns the current content offset. Components are zero or
// negative; see Viewport.
func (f *Flickable) Offset() Vec2 {
	return f.view.Offset
}

// OffsetX returns the horizontal content offset.
func (f *Flickable) OffsetX() float64 {
	return f.view.Offset.X
}

// OffsetY returns the vertical content offset.
func (f *Flickable) OffsetY() float64 {
	return f.view.Offset.Y
}

// Viewport returns a copy of the viewport geometry.
func (f *Flickable) Viewport() Viewport {
	return f.view
}

// SetVisibleSize updates the viewport's visible extent and re-clamps the
// offset. Panics on negative components.
func (f *Flickable) SetVisibleSize(w, h float64) {
	if w < 0 || h < 0 {
		panic("aspen: negative visible size")
	}
	f.view.VisibleSize = Vec2{X: w, Y: h}
	f.reclamp()
}

// SetContentSize updates the scrollable content extent and re-clamps the
// offset. Panics on negative components.
func (f *Flickable) SetContentSize(w, h float64) {
	if w < 0 || h < 0 {
		panic("aspen: negative content size")
	}
	f.view.ContentSize = Vec2{X: w, Y: h}
	f.reclamp()
}

// reclamp pulls the offset back into range after a geometry change.
func (f *Flickable) reclamp() {
	prev := f.view.Offset
	next := f.view.clamped(prev)
	if next == prev {
		return
	}
	f.view.Offset = next
	f.fireFlick(prev, f.clock.Now())
	f.invalidate()
}

// Dragging reports whether a container drag is in progress.
func (f *Flickable) Dragging() bool {
	return f.phase == phaseDragging
}

// Flicking reports whether the deceleration animation is running.
func (f *Flickable) Flicking() bool {
	return f.phase == phaseFlicking
}

// --- Configuration ---

// SetTunables replaces the engine's thresholds and durations.
func (f *Flickable) SetTunables(t Tunables) error {
	if err := t.validate(); err != nil {
		return err
	}
	f.tunables = t
	return nil
}

// Tunables returns the current thresholds and durations.
func (f *Flickable) Tunables() Tunables {
	return f.tunables
}

// SetDragThreshold sets the minimum pointer travel before a drag starts.
func (f *Flickable) SetDragThreshold(units float64) {
	f.tunables.DragThreshold = units
}

// SetFlickEase sets the easing curve used by the deceleration timeline.
// The default is ease.OutCubic. A nil fn is ignored.
func (f *Flickable) SetFlickEase(fn ease.TweenFunc) {
	if fn != nil {
		f.flickEase = fn
	}
}

// SetEventSink sets the optional bridge that receives every gesture event,
// e.g. an ECS adapter. Pass nil to detach.
func (f *Flickable) SetEventSink(sink EventSink) {
	f.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, gesture phase
// transitions are traced to stderr.
func (f *Flickable) SetDebugMode(enabled bool) {
	f.debug = enabled
	globalDebug = enabled
}

// --- Region management ---

// AddRegion adds a region to the flickable's content.
// Panics if r is nil or already owned by a flickable.
func (f *Flickable) AddRegion(r *Region) {
	if r == nil {
		panic("aspen: cannot add nil region")
	}
	if r.owner != nil {
		panic("aspen: region already added to a flickable")
	}
	r.owner = f
	f.regions = append(f.regions, r)
	f.regionsSorted = false
	if globalDebug {
		debugCheckRegionCount(f)
	}
}

// RemoveRegion detaches a region, clearing any interaction state it holds.
// Panics if r is not owned by this flickable.
func (f *Flickable) RemoveRegion(r *Region) {
	if r == nil || r.owner != f {
		panic("aspen: region is not owned by this flickable")
	}
	if f.armedRegion == r {
		f.armedRegion = nil
		f.longPressed = false
	}
	if f.hoverRegion == r {
		f.hoverRegion = nil
	}
	r.setPressed(false)
	r.setHovered(false)
	r.owner = nil
	for i, cur := range f.regions {
		if cur == r {
			copy(f.regions[i:], f.regions[i+1:])
			f.regions[len(f.regions)-1] = nil
			f.regions = f.regions[:len(f.regions)-1]
			break
		}
	}
	f.regionsSorted = false
}

// Regions returns the region list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (f *Flickable) Regions() []*Region {
	return f.regions
}

// orderedRegions returns regions in ascending ZIndex order with insertion
// order preserved among equals. Hit testing walks it backward.
func (f *Flickable) orderedRegions() []*Region {
	if !f.regionsSorted {
		f.rebuildSortedRegions()
	}
	if f.sortedRegions != nil {
		return f.sortedRegions
	}
	return f.regions
}

// rebuildSortedRegions rebuilds the ZIndex-sorted hit-test order.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few regions that are nearly sorted (O(n) when already sorted).
func (f *Flickable) rebuildSortedRegions() {
	n := len(f.regions)
	if cap(f.sortedRegions) < n {
		f.sortedRegions = make([]*Region, n)
	}
	f.sortedRegions = f.sortedRegions[:n]
	copy(f.sortedRegions, f.regions)
	for i := 1; i < n; i++ {
		key := f.sortedRegions[i]
		j := i - 1
		for j >= 0 && f.sortedRegions[j].ZIndex > key.ZIndex {
			f.sortedRegions[j+1] = f.sortedRegions[j]
			j--
		}
		f.sortedRegions[j+1] = key
	}
	f.regionsSorted = true
}

// --- Event dispatch ---

// invalidate notifies the host that externally visible state changed.
func (f *Flickable) invalidate() {
	if f.OnInvalidate != nil {
		f.OnInvalidate()
	}
}

// clickContext assembles the callback payload for click-family events.
func (f *Flickable) clickContext(r *Region, pos Vec2, button MouseButton) ClickContext {
	cp := f.view.contentPos(pos)
	return ClickContext{
		Region:   r,
		UserData: r.UserData,
		X:        pos.X,
		Y:        pos.Y,
		LocalX:   cp.X - r.Bounds.X,
		LocalY:   cp.Y - r.Bounds.Y,
		Button:   button,
	}
}

func (f *Flickable) fireClick(r *Region, pos Vec2, t time.Time, button MouseButton) {
	ctx := f.clickContext(r, pos, button)
	for _, h := range f.handlers.click {
		h.fn(ctx)
	}
	if r.OnClick != nil {
		r.OnClick(ctx)
	}
	f.emitGesture(EventClick, r, pos, button, t)
}

func (f *Flickable) fireDoubleClick(r *Region, pos Vec2, t time.Time, button MouseButton) {
	ctx := f.clickContext(r, pos, button)
	for _, h := range f.handlers.doubleClick {
		h.fn(ctx)
	}
	if r.OnDoubleClick != nil {
		r.OnDoubleClick(ctx)
	}
	f.emitGesture(EventDoubleClick, r, pos, button, t)
}

func (f *Flickable) fireLongPress(r *Region, pos Vec2, t time.Time, button MouseButton) {
	ctx := f.clickContext(r, pos, button)
	for _, h := range f.handlers.longPress {
		h.fn(ctx)
	}
	if r.OnLongPress != nil {
		r.OnLongPress(ctx)
	}
	f.emitGesture(EventLongPress, r, pos, button, t)
}

func (f *Flickable) fireFlick(prev Vec2, t time.Time) {
	ctx := FlickContext{
		OffsetX: f.view.Offset.X,
		OffsetY: f.view.Offset.Y,
		DeltaX:  f.view.Offset.X - prev.X,
		DeltaY:  f.view.Offset.Y - prev.Y,
	}
	for _, h := range f.handlers.flick {
		h.fn(ctx)
	}
	f.emitGesture(EventFlick, nil, f.lastPointer, f.pressButton, t)
}

func (f *Flickable) fireHover(r *Region, entered bool, pos Vec2, t time.Time) {
	ctx := HoverContext{Region: r, Entered: entered, X: pos.X, Y: pos.Y}
	for _, h := range f.handlers.hover {
		h.fn(ctx)
	}
	r.setHovered(entered)
	typ := EventHoverLeave
	if entered {
		typ = EventHoverEnter
	}
	f.emitGesture(typ, r, pos, f.pressButton, t)
}

// --- Sink bridge ---

func (f *Flickable) emitGesture(typ EventType, r *Region, pos Vec2, button MouseButton, t time.Time) {
	if f.sink == nil {
		return
	}
	var name string
	if r != nil {
		name = r.Name
	}
	f.sink.EmitGesture(GestureEvent{
		Type:    typ,
		Region:  name,
		X:       pos.X,
		Y:       pos.Y,
		OffsetX: f.view.Offset.X,
		OffsetY: f.view.Offset.Y,
		Button:  button,
		Time:    t,
	})
}

package aspen

// --- Built-in HitShape types ---

// HitShape is a custom hit-testing area evaluated in region-local
// coordinates (relative to the region's bounds origin).
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Callback contexts ---

// ClickContext carries click, double-click, and long-press event data.
type ClickContext struct {
	Region   *Region
	UserData any
	X        float64 // pointer position in viewport coordinates
	Y        float64
	LocalX   float64 // position relative to the region's bounds origin
	LocalY   float64
	Button   MouseButton
}

// FlickContext carries viewport offset data for flick (offset change) events.
type FlickContext struct {
	OffsetX, OffsetY float64
	DeltaX, DeltaY   float64 // change from the previous offset
}

// HoverContext carries hover enter/leave event data.
type HoverContext struct {
	Region  *Region
	Entered bool
	X, Y    float64
}

// --- ID counter ---

// regionIDCounter is a plain counter (no atomic; aspen is single-threaded).
var regionIDCounter uint32

func nextRegionID() uint32 {
	regionIDCounter++
	return regionIDCounter
}

// --- Region ---

// Region is an interactive area nested inside a Flickable's content. A single
// flat struct holds geometry, callbacks, and interaction state to avoid
// interface dispatch on the hot path.
//
// The pressed and hovered flags are owned by the engine: user code reads them
// through Pressed and Hovered (or observes changes via the callbacks) but
// never writes them.
type Region struct {
	// Identity
	ID   uint32
	Name string

	// Bounds is the region's rectangle in content coordinates.
	Bounds Rect
	// HitShape, when set, replaces Bounds containment for hit testing.
	// It is evaluated relative to the bounds origin.
	HitShape HitShape

	// Visibility & interaction. Invisible or disabled regions are skipped
	// during hit testing but keep their other state.
	Enabled bool
	Visible bool

	// Ordering among sibling regions. Higher ZIndex is hit-tested first;
	// ties go to the most recently added.
	ZIndex int

	// Metadata
	UserData any

	// Per-region callbacks (nil by default; zero cost when unused)
	OnClick         func(ClickContext)
	OnDoubleClick   func(ClickContext)
	OnLongPress     func(ClickContext)
	OnPressedChange func(pressed bool)
	OnHoverChange   func(hovered bool)

	// Engine-owned interaction state.
	pressed bool
	hovered bool

	// Double-click bookkeeping, overwritten on every release.
	lastClick clickRecord

	owner *Flickable // set by AddRegion, cleared by RemoveRegion
}

// NewRegion creates a region with the given name and content-space bounds.
func NewRegion(name string, bounds Rect) *Region {
	return &Region{
		ID:      nextRegionID(),
		Name:    name,
		Bounds:  bounds,
		Enabled: true,
		Visible: true,
	}
}

// Pressed reports whether a committed long press is currently holding this
// region down.
func (r *Region) Pressed() bool {
	return r.pressed
}

// Hovered reports whether the pointer is currently over this region.
// Always false while a drag or flick is in progress.
func (r *Region) Hovered() bool {
	return r.hovered
}

// SetZIndex sets the region's ZIndex and marks the owner's region order as
// unsorted.
func (r *Region) SetZIndex(z int) {
	if r.ZIndex == z {
		return
	}
	r.ZIndex = z
	if r.owner != nil {
		r.owner.regionsSorted = false
	}
}

// contains tests whether the content-space point (cx, cy) falls inside this
// region's hit area.
func (r *Region) contains(cx, cy float64) bool {
	if r.HitShape != nil {
		return r.HitShape.Contains(cx-r.Bounds.X, cy-r.Bounds.Y)
	}
	return r.Bounds.Contains(cx, cy)
}

// setPressed updates the pressed flag, firing OnPressedChange on transitions.
func (r *Region) setPressed(pressed bool) {
	if r.pressed == pressed {
		return
	}
	r.pressed = pressed
	if r.OnPressedChange != nil {
		r.OnPressedChange(pressed)
	}
}

// setHovered updates the hovered flag, firing OnHoverChange on transitions.
func (r *Region) setHovered(hovered bool) {
	if r.hovered == hovered {
		return
	}
	r.hovered = hovered
	if r.OnHoverChange != nil {
		r.OnHoverChange(hovered)
	}
}

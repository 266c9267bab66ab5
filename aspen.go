package aspen

import "time"

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// PointerSample pairs a pointer position with the time it was observed.
// The engine keeps only the most recent sample needed for release-velocity
// estimation; no motion history accumulates.
type PointerSample struct {
	Position Vec2
	Time     time.Time
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventClick       EventType = iota // press then release within the drag threshold
	EventDoubleClick                  // second qualifying click within the double-click window
	EventLongPress                    // press held past the long-press duration without dragging
	EventFlick                        // viewport offset changed (drag move, wheel, or deceleration tick)
	EventHoverEnter                   // pointer entered a region's bounds
	EventHoverLeave                   // pointer left a region's bounds
	EventCancel                       // active gesture cancelled by the host
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// GestureEvent describes a recognized gesture in a form suitable for
// forwarding into an entity-component system or external event queue.
// Region is the region's name for region-targeted events and empty for
// container-level events such as EventFlick.
type GestureEvent struct {
	Type             EventType
	Region           string
	X, Y             float64 // pointer position in viewport coordinates
	OffsetX, OffsetY float64 // viewport offset at the time of the event
	Button           MouseButton
	Time             time.Time
}

// EventSink receives gesture events from a Flickable. It decouples aspen
// from any particular event-queue or ECS implementation.
type EventSink interface {
	EmitGesture(ev GestureEvent)
}

package aspen

import "math"

// Viewport is the scrollable window into a larger content area.
//
// Offset is the content's translation relative to the viewport origin:
// scrolling right and down drives the offset negative, so while content
// overflows both components stay in [-(ContentSize-VisibleSize), 0]. When
// the content fits inside the visible extent the only valid offset is zero.
type Viewport struct {
	Offset      Vec2
	VisibleSize Vec2
	ContentSize Vec2
}

// clampAxis restricts a single offset component to its valid range.
// Applying it twice gives the same result as applying it once.
func clampAxis(offset, visible, content float64) float64 {
	overflow := content - visible
	if overflow <= 0 {
		return 0
	}
	return math.Max(-overflow, math.Min(offset, 0))
}

// clamped returns o restricted to the viewport's valid offset range.
func (v *Viewport) clamped(o Vec2) Vec2 {
	return Vec2{
		X: clampAxis(o.X, v.VisibleSize.X, v.ContentSize.X),
		Y: clampAxis(o.Y, v.VisibleSize.Y, v.ContentSize.Y),
	}
}

// contentPos converts a point in viewport coordinates to content
// coordinates, accounting for the current offset.
func (v *Viewport) contentPos(p Vec2) Vec2 {
	return Vec2{X: p.X - v.Offset.X, Y: p.Y - v.Offset.Y}
}

// MaxScroll returns the scrollable overflow per axis (never negative).
// The valid offset range is [-MaxScroll(), 0] componentwise.
func (v *Viewport) MaxScroll() Vec2 {
	return Vec2{
		X: math.Max(0, v.ContentSize.X-v.VisibleSize.X),
		Y: math.Max(0, v.ContentSize.Y-v.VisibleSize.Y),
	}
}

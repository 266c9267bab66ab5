package aspen

import "time"

// clickRecord remembers the most recent release on a region. A single record
// is kept and overwritten on every release, so a rapid triple press reports a
// second double-click rather than a distinct triple event.
type clickRecord struct {
	time time.Time
	pos  Vec2
}

// classifyRelease turns a press/release pair over region r into click
// signals. Every release that never left the drag threshold is a click; it is
// additionally a double-click when it lands within the double-click window
// and radius of the region's previous release. The record is overwritten
// either way.
func (f *Flickable) classifyRelease(r *Region, pos Vec2, t time.Time, button MouseButton) {
	double := false
	if !r.lastClick.time.IsZero() {
		dx := pos.X - r.lastClick.pos.X
		dy := pos.Y - r.lastClick.pos.Y
		radius := f.tunables.DoubleClickRadius
		if t.Sub(r.lastClick.time) <= f.tunables.DoubleClickWindow &&
			dx*dx+dy*dy <= radius*radius {
			double = true
		}
	}
	r.lastClick = clickRecord{time: t, pos: pos}

	f.fireClick(r, pos, t, button)
	if double {
		f.fireDoubleClick(r, pos, t, button)
	}
}

// Package aspen is a pointer-gesture arbitration and kinetic-scrolling
// engine for 2D user interfaces.
//
// Aspen decides, from a single stream of ambiguous low-level pointer
// events, whether a gesture belongs to a scrollable container (drag, flick)
// or to an interactive region nested inside it (tap, double-tap, long
// press), runs the post-release deceleration animation, and handles wheel
// scrolling with modifier-key semantics. It renders nothing and owns no
// window: the host feeds events in and draws from the state aspen exposes.
//
// # Quick start
//
// Create a [Flickable] with the viewport's visible and content sizes, add
// [Region] values for the tappable areas, and wire callbacks:
//
//	f := aspen.NewFlickable(aspen.Vec2{X: 320, Y: 480}, aspen.Vec2{X: 320, Y: 2000})
//	row := aspen.NewRegion("row-3", aspen.Rect{X: 0, Y: 300, Width: 320, Height: 100})
//	row.OnClick = func(ctx aspen.ClickContext) { open(ctx.Region.Name) }
//	f.AddRegion(row)
//
// Then feed events and poll once per frame. Under [Ebitengine] a [Source]
// does the feeding for you:
//
//	type Game struct {
//		f   *aspen.Flickable
//		src *aspen.Source
//	}
//
//	func (g *Game) Update() error { g.src.Poll(); g.f.Update(); return nil }
//
// Hosts with their own event plumbing call [Flickable.PointerDown],
// [Flickable.PointerMove], [Flickable.PointerUp], and [Flickable.Scroll]
// directly, then [Flickable.Update] once per frame.
//
// # Determinism
//
// All timing flows through a [Clock]. Production uses the system clock;
// tests and replay tools use a [ManualClock] and advance it explicitly, so
// long-press deadlines and deceleration ticks land on exact, repeatable
// instants. There are no timers and no goroutines: the engine must be
// driven from one goroutine, and everything time-based resolves inside
// [Flickable.Update].
//
// # Key features
//
// Drag arbitration with a configurable dead zone, one-to-one drag tracking,
// velocity-proportional flick deceleration (via [gween] easing), hard
// offset clamping, click/double-click/long-press classification with
// [Tunables] loadable from TOML, ZIndex hit testing with custom hit shapes,
// hover tracking with drag suppression, JSON gesture scripts for end-to-end
// tests, and ECS integration (via [Donburi] adapter in aspen/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package aspen

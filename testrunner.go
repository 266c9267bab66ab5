package aspen

import (
	"encoding/json"
	"fmt"
	"time"
)

// gestureStep is the JSON form of a single scripted action.
type gestureStep struct {
	Action string  `json:"action"` // press | move | release | scroll | wait
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"` // scroll delta
	DY     float64 `json:"dy,omitempty"`
	Shift  bool    `json:"shift,omitempty"`  // scroll with the shift modifier
	Button string  `json:"button,omitempty"` // left | right | middle; empty = left
	Ms     int     `json:"ms,omitempty"`     // wait duration in milliseconds
}

// gestureScriptFile is the top-level JSON structure for a gesture script.
type gestureScriptFile struct {
	Steps []gestureStep `json:"steps"`
}

// scriptStep is the validated, typed form a script executes from.
type scriptStep struct {
	action string
	pos    Vec2
	delta  Vec2
	mods   KeyModifiers
	button MouseButton
	wait   time.Duration
}

// GestureScript replays a recorded pointer sequence against a Flickable
// driven by a ManualClock, for deterministic end-to-end tests: scripted
// waits advance the clock in frame-sized slices with an Update per slice,
// so long presses commit and decelerations tick exactly as they would in a
// live host.
type GestureScript struct {
	steps []scriptStep
}

// LoadGestureScript parses and validates a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureScript, error) {
	var file gestureScriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}

	steps := make([]scriptStep, 0, len(file.Steps))
	for i, st := range file.Steps {
		out := scriptStep{
			action: st.Action,
			pos:    Vec2{X: st.X, Y: st.Y},
			delta:  Vec2{X: st.DX, Y: st.DY},
			wait:   time.Duration(st.Ms) * time.Millisecond,
		}
		if st.Shift {
			out.mods |= ModShift
		}
		switch st.Button {
		case "", "left":
			out.button = MouseButtonLeft
		case "right":
			out.button = MouseButtonRight
		case "middle":
			out.button = MouseButtonMiddle
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown button %q", i, st.Button)
		}
		switch st.Action {
		case "press", "move", "release", "scroll", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		steps = append(steps, out)
	}
	return &GestureScript{steps: steps}, nil
}

// scriptTick approximates one 60Hz host frame.
const scriptTick = 16 * time.Millisecond

// Run replays the script against f. The clock must be the same one driving
// f. Panics if either argument is nil.
func (g *GestureScript) Run(f *Flickable, clock *ManualClock) {
	if f == nil {
		panic("aspen: run gesture script on nil flickable")
	}
	if clock == nil {
		panic("aspen: run gesture script with nil clock")
	}
	for _, st := range g.steps {
		switch st.action {
		case "press":
			f.PointerDown(st.pos, clock.Now(), st.button)
		case "move":
			f.PointerMove(st.pos, clock.Now())
		case "release":
			f.PointerUp(st.pos, clock.Now(), st.button)
		case "scroll":
			f.Scroll(st.delta, st.mods, st.pos, clock.Now())
		case "wait":
			g.waitFor(f, clock, st.wait)
		}
		f.Update()
	}
}

// waitFor advances the clock in frame-sized slices, updating after each so
// polled behavior progresses the way it would frame by frame.
func (g *GestureScript) waitFor(f *Flickable, clock *ManualClock, d time.Duration) {
	for d > 0 {
		step := scriptTick
		if d < step {
			step = d
		}
		clock.Advance(step)
		f.Update()
		d -= step
	}
}

package aspen

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Default thresholds and durations. All are overridable per Flickable, or
// host-wide through a TOML file (platform conventions for double-click and
// long-press timing vary, so hosts commonly expose these).
const (
	defaultDragThreshold     = 4.0 // length units of pointer travel
	defaultLongPress         = 300 * time.Millisecond
	defaultDoubleClickWindow = 400 * time.Millisecond
	defaultDoubleClickRadius = 5.0 // length units between paired releases
	defaultFlickDuration     = 600 * time.Millisecond
	defaultWheelScrollFactor = 1.0
)

// Tunables collects the thresholds and durations that shape gesture
// classification and kinetic scrolling.
type Tunables struct {
	// DragThreshold is the pointer travel beyond which a press stops being a
	// tap candidate and becomes a container drag.
	DragThreshold float64
	// LongPressDuration is how long a press must hold inside the drag
	// threshold before the hit region's pressed state commits.
	LongPressDuration time.Duration
	// DoubleClickWindow is the maximum gap between two releases on the same
	// region that pairs them into a double-click.
	DoubleClickWindow time.Duration
	// DoubleClickRadius is the maximum positional drift between the two
	// paired releases.
	DoubleClickRadius float64
	// FlickDuration is how long the post-release deceleration runs.
	FlickDuration time.Duration
	// WheelScrollFactor scales incoming wheel deltas before they are applied
	// to the offset.
	WheelScrollFactor float64
}

// DefaultTunables returns the built-in defaults.
func DefaultTunables() Tunables {
	return Tunables{
		DragThreshold:     defaultDragThreshold,
		LongPressDuration: defaultLongPress,
		DoubleClickWindow: defaultDoubleClickWindow,
		DoubleClickRadius: defaultDoubleClickRadius,
		FlickDuration:     defaultFlickDuration,
		WheelScrollFactor: defaultWheelScrollFactor,
	}
}

// validate rejects values that would make the state machine degenerate.
func (t Tunables) validate() error {
	if t.DragThreshold <= 0 {
		return fmt.Errorf("tunables: drag_threshold must be positive, got %v", t.DragThreshold)
	}
	if t.LongPressDuration <= 0 {
		return fmt.Errorf("tunables: long_press_ms must be positive, got %v", t.LongPressDuration)
	}
	if t.DoubleClickWindow <= 0 {
		return fmt.Errorf("tunables: double_click_window_ms must be positive, got %v", t.DoubleClickWindow)
	}
	if t.DoubleClickRadius <= 0 {
		return fmt.Errorf("tunables: double_click_radius must be positive, got %v", t.DoubleClickRadius)
	}
	if t.FlickDuration <= 0 {
		return fmt.Errorf("tunables: flick_duration_ms must be positive, got %v", t.FlickDuration)
	}
	if t.WheelScrollFactor <= 0 {
		return fmt.Errorf("tunables: wheel_scroll_factor must be positive, got %v", t.WheelScrollFactor)
	}
	return nil
}

// tunablesFile is the on-disk TOML schema. Durations are integer
// milliseconds; absent keys keep their defaults.
type tunablesFile struct {
	DragThreshold       float64 `toml:"drag_threshold"`
	LongPressMs         int     `toml:"long_press_ms"`
	DoubleClickWindowMs int     `toml:"double_click_window_ms"`
	DoubleClickRadius   float64 `toml:"double_click_radius"`
	FlickDurationMs     int     `toml:"flick_duration_ms"`
	WheelScrollFactor   float64 `toml:"wheel_scroll_factor"`
}

// apply copies the file's set keys over t, leaving zero-valued keys alone.
func (tf tunablesFile) apply(t *Tunables) {
	if tf.DragThreshold != 0 {
		t.DragThreshold = tf.DragThreshold
	}
	if tf.LongPressMs != 0 {
		t.LongPressDuration = time.Duration(tf.LongPressMs) * time.Millisecond
	}
	if tf.DoubleClickWindowMs != 0 {
		t.DoubleClickWindow = time.Duration(tf.DoubleClickWindowMs) * time.Millisecond
	}
	if tf.DoubleClickRadius != 0 {
		t.DoubleClickRadius = tf.DoubleClickRadius
	}
	if tf.FlickDurationMs != 0 {
		t.FlickDuration = time.Duration(tf.FlickDurationMs) * time.Millisecond
	}
	if tf.WheelScrollFactor != 0 {
		t.WheelScrollFactor = tf.WheelScrollFactor
	}
}

// ParseTunables decodes TOML data into a Tunables starting from the
// defaults. Unknown keys are ignored.
func ParseTunables(data []byte) (Tunables, error) {
	var tf tunablesFile
	if _, err := toml.Decode(string(data), &tf); err != nil {
		return Tunables{}, fmt.Errorf("parse tunables: %w", err)
	}
	t := DefaultTunables()
	tf.apply(&t)
	if err := t.validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

// LoadTunables reads and decodes a TOML tunables file.
func LoadTunables(path string) (Tunables, error) {
	var tf tunablesFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Tunables{}, fmt.Errorf("load tunables %s: %w", path, err)
	}
	t := DefaultTunables()
	tf.apply(&t)
	if err := t.validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

package aspen

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestSetDebugMode(t *testing.T) {
	f, _ := newTestFlickable()

	f.SetDebugMode(true)
	if !f.debug || !globalDebug {
		t.Error("SetDebugMode(true) should set both flags")
	}

	f.SetDebugMode(false)
	if f.debug || globalDebug {
		t.Error("SetDebugMode(false) should clear both flags")
	}
}

func TestDebugMode_PhaseTrace(t *testing.T) {
	f, clock := newTestFlickable()
	f.SetDebugMode(true)
	defer f.SetDebugMode(false)

	output := captureStderr(t, func() {
		f.PointerDown(Vec2{X: 200, Y: 200}, clock.Now(), MouseButtonLeft)
		f.PointerMove(Vec2{X: 150, Y: 200}, clock.Now())
	})

	if !strings.Contains(output, "idle -> armed") {
		t.Errorf("expected arming trace in stderr, got: %q", output)
	}
	if !strings.Contains(output, "armed -> dragging") {
		t.Errorf("expected drag trace in stderr, got: %q", output)
	}
}

func TestReleaseMode_NoPhaseTrace(t *testing.T) {
	f, clock := newTestFlickable()
	f.SetDebugMode(false)

	output := captureStderr(t, func() {
		f.PointerDown(Vec2{X: 200, Y: 200}, clock.Now(), MouseButtonLeft)
		f.PointerMove(Vec2{X: 150, Y: 200}, clock.Now())
	})

	if output != "" {
		t.Errorf("release mode should write nothing to stderr, got: %q", output)
	}
}

func TestDebugMode_RegionCountWarning(t *testing.T) {
	f, _ := newTestFlickable()
	f.SetDebugMode(true)
	defer f.SetDebugMode(false)

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxRegionCount+5; i++ {
			f.AddRegion(NewRegion(fmt.Sprintf("r_%d", i), Rect{Width: 10, Height: 10}))
		}
	})

	if !strings.Contains(output, "warning: flickable has") {
		t.Errorf("expected region count warning in stderr, got: %q", output)
	}
}

func TestReleaseMode_NoRegionCountWarning(t *testing.T) {
	f, _ := newTestFlickable()
	f.SetDebugMode(false)

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxRegionCount+5; i++ {
			f.AddRegion(NewRegion(fmt.Sprintf("r_%d", i), Rect{Width: 10, Height: 10}))
		}
	})

	if output != "" {
		t.Errorf("release mode should write nothing to stderr, got: %q", output)
	}
}

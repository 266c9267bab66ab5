package aspen

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Flickable debug flag so that
// helpers without a Flickable pointer can check it cheaply. Only valid with
// a single Flickable; multiple Flickables with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugf prints a trace line to stderr. Callers gate on the debug flag so
// release-mode paths skip the formatting entirely.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[aspen] "+format+"\n", args...)
}

// debugCheckRegionCount warns on stderr when a flickable holds more regions
// than the linear hit test handles comfortably.
const debugMaxRegionCount = 1000

func debugCheckRegionCount(f *Flickable) {
	if len(f.regions) > debugMaxRegionCount {
		debugf("warning: flickable has %d regions (threshold %d)",
			len(f.regions), debugMaxRegionCount)
	}
}

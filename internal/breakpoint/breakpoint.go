// Package breakpoint maps a viewport-width signal to the active layout
// variant. The mapping is pure; it is re-evaluated on every width change
// and once at startup with the initial width.
package breakpoint

import (
	"time"

	"gridboard/internal/layout"
)

// Thresholds holds the configured breakpoint widths. Only Tablet is
// load-bearing today: Desktop and Mobile are accepted as configuration
// but unused in selection (see Select).
type Thresholds struct {
	Desktop int
	Tablet  int
	Mobile  int
}

// DefaultThresholds returns the stock breakpoint widths.
func DefaultThresholds() Thresholds {
	return Thresholds{Desktop: 1200, Tablet: 990, Mobile: 576}
}

// Select maps a viewport width to the active variant: width at or below
// the tablet threshold is Mobile, anything wider is Tablet.
//
// The Desktop tier is a known gap carried over from the original design:
// widths above the tablet threshold always resolve to Tablet and Desktop
// is never selected. Extending selection to three tiers is a deliberate
// behavior change, not a bug fix, so it is not done silently here.
func (t Thresholds) Select(width int) layout.Breakpoint {
	if width <= t.Tablet {
		return layout.Mobile
	}
	return layout.Tablet
}

// mobileDragDelay suppresses accidental-touch drags on small screens.
const mobileDragDelay = 150 * time.Millisecond

// DragDelay returns the hold time before a drag starts for the given
// variant: 150ms on Mobile, zero elsewhere.
func DragDelay(bp layout.Breakpoint) time.Duration {
	if bp == layout.Mobile {
		return mobileDragDelay
	}
	return 0
}

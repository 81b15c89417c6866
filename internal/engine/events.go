package engine

import "gridboard/internal/breakpoint"

// Event is a discrete external input the engine reacts to. Events are
// processed one at a time, in arrival order, on the caller's goroutine;
// there is no internal queue and no concurrent mutation to arbitrate.
type Event interface{ isEvent() }

// WidthChanged reports a new viewport width.
type WidthChanged struct {
	Width int
}

// DragCompleted reports a finished drag gesture as produced by the UI
// collaborator: where the item was picked up, where it was dropped, and
// whether both ends are the same container.
type DragCompleted struct {
	FromContainer string
	ToContainer   string
	FromIndex     int
	ToIndex       int
	SameContainer bool
}

// Side distinguishes the left and right edges for column operations.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// AddColumn inserts a new empty column at the given side of the active
// breakpoint's layout.
type AddColumn struct {
	Side Side
}

// RemoveColumn removes the column at the given side, spilling its items
// onto the adjacent survivor.
type RemoveColumn struct {
	Side Side
}

// Reset discards the active breakpoint's layout and restores the default
// one, dropping all customization including reconciled additions.
type Reset struct{}

// ThresholdsChanged installs new breakpoint thresholds (e.g. after a
// config file reload) and re-evaluates the active variant against the
// last known width.
type ThresholdsChanged struct {
	Thresholds breakpoint.Thresholds
}

func (WidthChanged) isEvent()      {}
func (DragCompleted) isEvent()     {}
func (AddColumn) isEvent()         {}
func (RemoveColumn) isEvent()      {}
func (Reset) isEvent()             {}
func (ThresholdsChanged) isEvent() {}

// Package ui renders the current breakpoint's layout as a column board
// and translates terminal input into engine events: resizes become
// viewport-width changes, and keyboard-driven pick-up/drop becomes drag
// completions. The UI never mutates layout state itself; it only ever
// holds deep-copied snapshots handed out by the engine.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gridboard/internal/breakpoint"
	"gridboard/internal/engine"
	"gridboard/internal/layout"
)

// LayoutMsg carries a fresh layout snapshot from the engine's change
// channel into the update loop.
type LayoutMsg layout.Layout

// ConfigReloadedMsg carries new breakpoint thresholds after a config
// file reload. Sent from outside via Program.Send so it is ordered with
// all other events.
type ConfigReloadedMsg struct {
	Thresholds breakpoint.Thresholds
}

// dragSrc remembers where the picked-up item came from.
type dragSrc struct {
	container string
	index     int
}

// Model is the root bubbletea model for the board.
type Model struct {
	eng     *engine.Engine
	updates <-chan layout.Layout

	lay  layout.Layout
	col  int
	row  int
	drag *dragSrc

	width  int
	height int
	keys   KeyMap
	help   help.Model
	notice string // last rejected operation, shown in the footer
}

// New creates the board model. updates is the channel the engine's
// OnChange callback feeds.
func New(eng *engine.Engine, updates <-chan layout.Layout) *Model {
	return &Model{
		eng:     eng,
		updates: updates,
		lay:     eng.CurrentLayout(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

// waitForUpdate blocks on the engine change channel and wraps the next
// snapshot as a message.
func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		lay, ok := <-m.updates
		if !ok {
			return nil
		}
		return LayoutMsg(lay)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.eng.Handle(engine.WidthChanged{Width: msg.Width})
		m.refresh()
		return m, nil

	case LayoutMsg:
		m.lay = layout.Layout(msg)
		m.clampSelection()
		return m, m.waitForUpdate()

	case ConfigReloadedMsg:
		m.eng.Handle(engine.ThresholdsChanged{Thresholds: msg.Thresholds})
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1, 0)
	case key.Matches(msg, m.keys.PickDrop):
		m.pickOrDrop()
	case key.Matches(msg, m.keys.NewRight):
		m.apply(engine.AddColumn{Side: engine.Right})
	case key.Matches(msg, m.keys.NewLeft):
		m.apply(engine.AddColumn{Side: engine.Left})
	case key.Matches(msg, m.keys.DropRight):
		m.apply(engine.RemoveColumn{Side: engine.Right})
	case key.Matches(msg, m.keys.DropLeft):
		m.apply(engine.RemoveColumn{Side: engine.Left})
	case key.Matches(msg, m.keys.Reset):
		m.drag = nil
		m.apply(engine.Reset{})
	}
	return m, nil
}

// pickOrDrop toggles drag state: first press remembers the selected item
// as the drag source, second press emits a drag-completion event at the
// current selection.
func (m *Model) pickOrDrop() {
	if len(m.lay) == 0 {
		return
	}
	if m.drag == nil {
		if len(m.lay[m.col].Items) == 0 {
			return
		}
		m.drag = &dragSrc{
			container: m.lay[m.col].ContainerName,
			index:     m.row,
		}
		return
	}
	target := m.lay[m.col].ContainerName
	ev := engine.DragCompleted{
		FromContainer: m.drag.container,
		ToContainer:   target,
		FromIndex:     m.drag.index,
		ToIndex:       m.row,
		SameContainer: target == m.drag.container,
	}
	m.drag = nil
	m.apply(ev)
}

// apply hands an event to the engine and refreshes the snapshot. A
// rejected mutation leaves the layout untouched and surfaces a notice.
func (m *Model) apply(ev engine.Event) {
	m.notice = ""
	if err := m.eng.Handle(ev); err != nil {
		m.notice = err.Error()
		return
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.lay = m.eng.CurrentLayout()
	m.clampSelection()
}

func (m *Model) moveSelection(dcol, drow int) {
	if len(m.lay) == 0 {
		return
	}
	m.col += dcol
	m.row += drow
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if len(m.lay) == 0 {
		m.col, m.row = 0, 0
		return
	}
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(m.lay) {
		m.col = len(m.lay) - 1
	}
	maxRow := len(m.lay[m.col].Items) - 1
	if maxRow < 0 {
		maxRow = 0
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.row > maxRow {
		m.row = maxRow
	}
}

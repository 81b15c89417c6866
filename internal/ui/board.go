package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridboard/internal/jsonutil"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	header := Styles.Title.Render("gridboard") + "  " +
		Styles.Muted.Render(fmt.Sprintf("%s · tracks: %s", m.eng.ActiveBreakpoint(), m.eng.GridTemplate()))
	if delay := m.eng.DragDelay(); delay > 0 {
		header += "  " + Styles.Muted.Render(fmt.Sprintf("drag delay %s", delay))
	}
	b.WriteString(header + "\n\n")

	if len(m.lay) == 0 {
		b.WriteString(Styles.Empty.Render("no columns") + "\n")
	} else {
		cols := make([]string, len(m.lay))
		for i := range m.lay {
			cols[i] = m.renderColumn(i)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(Styles.Danger.Render(m.notice) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderColumn(i int) string {
	list := m.lay[i]
	var b strings.Builder

	title := list.ContainerName
	if len(title) > 18 {
		title = title[:15] + "..."
	}
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%s (%s)", title, list.Width)) + "\n")

	if len(list.Items) == 0 {
		b.WriteString(Styles.Empty.Render("empty") + "\n")
	}
	for j, item := range list.Items {
		label := jsonutil.GetStringOr(item.Metadata, "title", item.ComponentName)
		line := "  " + label
		switch {
		case m.drag != nil && m.drag.container == list.ContainerName && m.drag.index == j:
			line = Styles.Dragging.Render("◆ " + label)
		case i == m.col && j == m.row:
			line = Styles.Selected.Render("> " + label)
		default:
			line = Styles.Normal.Render(line)
		}
		b.WriteString(line + "\n")
	}

	w := m.columnWidth()
	style := Styles.Column
	if i == m.col {
		style = Styles.ColumnHL
	}
	return style.Width(w).Render(b.String())
}

// columnWidth divides the terminal width evenly across columns, with a
// sane floor for narrow terminals.
func (m *Model) columnWidth() int {
	n := len(m.lay)
	if n == 0 {
		return 20
	}
	w := (m.width / n) - 4
	if w < 14 {
		w = 14
	}
	return w
}

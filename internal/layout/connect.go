package layout

import "strings"

// Connect recomputes every list's ConnectedTo as the names of all other
// containers in the layout. It runs after every mutation; ConnectedTo is
// never authoritative on its own.
func (l Layout) Connect() {
	for i := range l {
		connected := make([]string, 0, len(l)-1)
		for j := range l {
			if i == j {
				continue
			}
			connected = append(connected, l[j].ContainerName)
		}
		l[i].ConnectedTo = connected
	}
}

// GridTemplate returns the space-joined width tokens of the lists in
// order, e.g. "1fr 2fr 1fr". Renderers consume this as a grid track
// definition.
func (l Layout) GridTemplate() string {
	widths := make([]string, len(l))
	for i, list := range l {
		widths[i] = list.Width
	}
	return strings.Join(widths, " ")
}

// Package layout defines the breakpoint-keyed dashboard layout model:
// named containers holding ordered component references, with one
// independent arrangement per breakpoint variant. It also provides the
// pure algorithms that operate on that model: structural cloning,
// connected-container recomputation, drag/drop mutation, and
// reconciliation of a stored config against a newer default.
package layout

// Breakpoint identifies one of the responsive layout variants.
type Breakpoint string

const (
	Mobile  Breakpoint = "mobile"
	Tablet  Breakpoint = "tablet"
	Desktop Breakpoint = "desktop"
)

// Breakpoints returns all variants in a fixed enumeration order.
func Breakpoints() []Breakpoint {
	return []Breakpoint{Mobile, Tablet, Desktop}
}

// DefaultWidth is the track-sizing token assigned to freshly created columns.
const DefaultWidth = "1fr"

// Element references one placeable dashboard component. ComponentName is
// the identity; Metadata carries arbitrary component-specific settings and
// is passed through untouched.
type Element struct {
	ComponentName string         `json:"componentName"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// List is an ordered container of elements. ContainerName is the identity
// and doubles as the drop-target id. ConnectedTo is derived state, the
// names of all other containers in the same layout, recomputed after
// every mutation and never hand-edited.
type List struct {
	ContainerName string    `json:"containerName"`
	Width         string    `json:"width"`
	Items         []Element `json:"items"`
	ConnectedTo   []string  `json:"connectedTo,omitempty"`
}

// Layout is one breakpoint's arrangement: an ordered sequence of lists.
// Invariant: each componentName appears in exactly one list.
type Layout []List

// Config is the top-level persisted unit: a storage name, an authored
// version, and one layout per breakpoint variant. Absent variants are nil.
type Config struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
	Mobile  Layout `json:"mobile,omitempty"`
	Tablet  Layout `json:"tablet,omitempty"`
	Desktop Layout `json:"desktop,omitempty"`
}

// Variant returns the layout for the given breakpoint. The returned slice
// header aliases the config; callers that need an independent value must
// Clone it.
func (c *Config) Variant(bp Breakpoint) Layout {
	switch bp {
	case Mobile:
		return c.Mobile
	case Tablet:
		return c.Tablet
	case Desktop:
		return c.Desktop
	}
	return nil
}

// SetVariant replaces the layout for the given breakpoint. Unknown
// breakpoints are ignored.
func (c *Config) SetVariant(bp Breakpoint, l Layout) {
	switch bp {
	case Mobile:
		c.Mobile = l
	case Tablet:
		c.Tablet = l
	case Desktop:
		c.Desktop = l
	}
}

// indexOf returns the position of the list with the given containerName,
// or -1 if no such list exists.
func (l Layout) indexOf(containerName string) int {
	for i, list := range l {
		if list.ContainerName == containerName {
			return i
		}
	}
	return -1
}

// ComponentNames returns every componentName in the layout, enumerated
// lists-in-order then items-in-order. The order is deterministic; it is
// what reconciliation uses to break insertion-order ties.
func (l Layout) ComponentNames() []string {
	var out []string
	for _, list := range l {
		for _, item := range list.Items {
			out = append(out, item.ComponentName)
		}
	}
	return out
}

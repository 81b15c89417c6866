package layout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Mutation errors. Unknown containers and out-of-range indexes signal
// caller bugs (a drop target that no longer exists); the layout is left
// unchanged in every error case.
var (
	ErrContainerNotFound = errors.New("container not found")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrLastColumn        = errors.New("cannot remove the last column")
)

// NewContainerName returns a fresh unique container name for a new column.
func NewContainerName() string {
	return "container-" + uuid.NewString()
}

// MoveWithinList relocates the item at fromIndex to toIndex inside the
// named list. No other list is touched.
func (l Layout) MoveWithinList(containerName string, fromIndex, toIndex int) error {
	i := l.indexOf(containerName)
	if i < 0 {
		return fmt.Errorf("move within %q: %w", containerName, ErrContainerNotFound)
	}
	items := l[i].Items
	if fromIndex < 0 || fromIndex >= len(items) || toIndex < 0 || toIndex >= len(items) {
		return fmt.Errorf("move within %q [%d -> %d]: %w", containerName, fromIndex, toIndex, ErrIndexOutOfRange)
	}
	item := items[fromIndex]
	items = append(items[:fromIndex], items[fromIndex+1:]...)
	l[i].Items = insertElement(items, toIndex, item)
	return nil
}

// TransferBetweenLists removes the item at fromIndex in the source list
// and inserts it at toIndex in the destination list.
func (l Layout) TransferBetweenLists(sourceContainer, destContainer string, fromIndex, toIndex int) error {
	src := l.indexOf(sourceContainer)
	if src < 0 {
		return fmt.Errorf("transfer from %q: %w", sourceContainer, ErrContainerNotFound)
	}
	dst := l.indexOf(destContainer)
	if dst < 0 {
		return fmt.Errorf("transfer to %q: %w", destContainer, ErrContainerNotFound)
	}
	if fromIndex < 0 || fromIndex >= len(l[src].Items) {
		return fmt.Errorf("transfer from %q index %d: %w", sourceContainer, fromIndex, ErrIndexOutOfRange)
	}
	if toIndex < 0 || toIndex > len(l[dst].Items) {
		return fmt.Errorf("transfer to %q index %d: %w", destContainer, toIndex, ErrIndexOutOfRange)
	}
	item := l[src].Items[fromIndex]
	l[src].Items = append(l[src].Items[:fromIndex], l[src].Items[fromIndex+1:]...)
	l[dst].Items = insertElement(l[dst].Items, toIndex, item)
	return nil
}

// AddColumnLeft prepends a new empty list with a fresh container name.
func (l *Layout) AddColumnLeft() {
	*l = append(Layout{newColumn()}, *l...)
}

// AddColumnRight appends a new empty list with a fresh container name.
func (l *Layout) AddColumnRight() {
	*l = append(*l, newColumn())
}

// RemoveColumnLeft removes the leftmost list and appends its items onto
// the new leftmost list (spillover, order preserved). Removing the only
// remaining column is refused.
func (l *Layout) RemoveColumnLeft() error {
	if len(*l) < 2 {
		return ErrLastColumn
	}
	removed := (*l)[0]
	rest := (*l)[1:]
	rest[0].Items = append(rest[0].Items, removed.Items...)
	*l = rest
	return nil
}

// RemoveColumnRight removes the rightmost list and appends its items onto
// the new rightmost list. Removing the only remaining column is refused.
func (l *Layout) RemoveColumnRight() error {
	if len(*l) < 2 {
		return ErrLastColumn
	}
	n := len(*l)
	removed := (*l)[n-1]
	(*l)[n-2].Items = append((*l)[n-2].Items, removed.Items...)
	*l = (*l)[:n-1]
	return nil
}

func newColumn() List {
	return List{
		ContainerName: NewContainerName(),
		Width:         DefaultWidth,
		Items:         []Element{},
	}
}

func insertElement(items []Element, at int, item Element) []Element {
	items = append(items, Element{})
	copy(items[at+1:], items[at:])
	items[at] = item
	return items
}

package layout

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(names ...string) []Element {
	out := make([]Element, len(names))
	for i, n := range names {
		out[i] = Element{ComponentName: n}
	}
	return out
}

func names(l List) []string {
	out := make([]string, len(l.Items))
	for i, item := range l.Items {
		out[i] = item.ComponentName
	}
	return out
}

func TestMoveWithinList(t *testing.T) {
	lay := Layout{{ContainerName: "a", Width: "1fr", Items: items("p", "q", "r")}}

	require.NoError(t, lay.MoveWithinList("a", 0, 2))
	assert.Equal(t, []string{"q", "r", "p"}, names(lay[0]))

	require.NoError(t, lay.MoveWithinList("a", 2, 0))
	assert.Equal(t, []string{"p", "q", "r"}, names(lay[0]))

	// Moving onto itself is a no-op.
	require.NoError(t, lay.MoveWithinList("a", 1, 1))
	assert.Equal(t, []string{"p", "q", "r"}, names(lay[0]))
}

func TestMoveWithinList_Errors(t *testing.T) {
	lay := Layout{{ContainerName: "a", Width: "1fr", Items: items("p", "q")}}

	err := lay.MoveWithinList("nope", 0, 1)
	assert.ErrorIs(t, err, ErrContainerNotFound)

	assert.ErrorIs(t, lay.MoveWithinList("a", -1, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, lay.MoveWithinList("a", 0, 2), ErrIndexOutOfRange)

	// State untouched after every rejection.
	assert.Equal(t, []string{"p", "q"}, names(lay[0]))
}

// Dragging item 0 of a two-item list onto index 1 of a one-item list:
// source keeps its other item, destination holds the moved item at 1.
func TestTransferBetweenLists(t *testing.T) {
	lay := Layout{
		{ContainerName: "a", Width: "1fr", Items: items("x", "y")},
		{ContainerName: "b", Width: "1fr", Items: items("z")},
	}

	require.NoError(t, lay.TransferBetweenLists("a", "b", 0, 1))
	assert.Equal(t, []string{"y"}, names(lay[0]))
	assert.Equal(t, []string{"z", "x"}, names(lay[1]))
}

func TestTransferBetweenLists_ToEmptyList(t *testing.T) {
	lay := Layout{
		{ContainerName: "a", Width: "1fr", Items: items("x")},
		{ContainerName: "b", Width: "1fr", Items: []Element{}},
	}
	require.NoError(t, lay.TransferBetweenLists("a", "b", 0, 0))
	assert.Empty(t, lay[0].Items)
	assert.Equal(t, []string{"x"}, names(lay[1]))
}

func TestTransferBetweenLists_Errors(t *testing.T) {
	lay := Layout{
		{ContainerName: "a", Width: "1fr", Items: items("x")},
		{ContainerName: "b", Width: "1fr", Items: items("z")},
	}

	assert.ErrorIs(t, lay.TransferBetweenLists("ghost", "b", 0, 0), ErrContainerNotFound)
	assert.ErrorIs(t, lay.TransferBetweenLists("a", "ghost", 0, 0), ErrContainerNotFound)
	assert.ErrorIs(t, lay.TransferBetweenLists("a", "b", 5, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, lay.TransferBetweenLists("a", "b", 0, 9), ErrIndexOutOfRange)

	assert.Equal(t, []string{"x"}, names(lay[0]))
	assert.Equal(t, []string{"z"}, names(lay[1]))
}

func TestAddColumn(t *testing.T) {
	lay := Layout{{ContainerName: "a", Width: "1fr", Items: items("x")}}

	lay.AddColumnRight()
	require.Len(t, lay, 2)
	assert.Equal(t, "a", lay[0].ContainerName)
	assert.Empty(t, lay[1].Items)
	assert.Equal(t, DefaultWidth, lay[1].Width)
	assert.True(t, strings.HasPrefix(lay[1].ContainerName, "container-"))

	lay.AddColumnLeft()
	require.Len(t, lay, 3)
	assert.Empty(t, lay[0].Items)
	assert.Equal(t, "a", lay[1].ContainerName)

	// Fresh names must be unique.
	assert.NotEqual(t, lay[0].ContainerName, lay[2].ContainerName)
}

// Removing the rightmost of two lists spills its items onto the
// survivor, appended after the survivor's own items.
func TestRemoveColumnRight_Spillover(t *testing.T) {
	lay := Layout{
		{ContainerName: "keep", Width: "1fr", Items: items("r")},
		{ContainerName: "gone", Width: "1fr", Items: items("p", "q")},
	}

	require.NoError(t, lay.RemoveColumnRight())
	require.Len(t, lay, 1)
	assert.Equal(t, "keep", lay[0].ContainerName)
	assert.Equal(t, []string{"r", "p", "q"}, names(lay[0]))
}

func TestRemoveColumnLeft_Spillover(t *testing.T) {
	lay := Layout{
		{ContainerName: "gone", Width: "1fr", Items: items("p", "q")},
		{ContainerName: "keep", Width: "1fr", Items: items("r")},
	}

	require.NoError(t, lay.RemoveColumnLeft())
	require.Len(t, lay, 1)
	assert.Equal(t, "keep", lay[0].ContainerName)
	assert.Equal(t, []string{"r", "p", "q"}, names(lay[0]))
}

func TestRemoveColumn_LastColumnRefused(t *testing.T) {
	lay := Layout{{ContainerName: "only", Width: "1fr", Items: items("x")}}

	assert.ErrorIs(t, lay.RemoveColumnLeft(), ErrLastColumn)
	assert.ErrorIs(t, lay.RemoveColumnRight(), ErrLastColumn)
	require.Len(t, lay, 1)
	assert.Equal(t, []string{"x"}, names(lay[0]))
}

// After any sequence of mutations, every componentName appears in
// exactly one list.
func TestMutations_NoDuplicationInvariant(t *testing.T) {
	lay := Layout{
		{ContainerName: "a", Width: "1fr", Items: items("one", "two", "three")},
		{ContainerName: "b", Width: "1fr", Items: items("four")},
	}

	require.NoError(t, lay.MoveWithinList("a", 2, 0))
	require.NoError(t, lay.TransferBetweenLists("a", "b", 1, 1))
	lay.AddColumnRight()
	fresh := lay[2].ContainerName
	require.NoError(t, lay.TransferBetweenLists("b", fresh, 0, 0))
	require.NoError(t, lay.RemoveColumnLeft())
	require.NoError(t, lay.RemoveColumnRight())

	all := lay.ComponentNames()
	sort.Strings(all)
	assert.Equal(t, []string{"four", "one", "three", "two"}, all)
}

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridboard/internal/breakpoint"
	"gridboard/internal/layout"
	"gridboard/internal/store"
)

func defConfig() *layout.Config {
	return &layout.Config{
		Name:    "dash",
		Version: 1,
		Mobile: layout.Layout{
			{ContainerName: "A", Width: "1fr", Items: []layout.Element{{ComponentName: "x"}}},
		},
		Tablet: layout.Layout{
			{ContainerName: "A", Width: "2fr", Items: []layout.Element{{ComponentName: "x"}}},
			{ContainerName: "B", Width: "1fr", Items: []layout.Element{}},
		},
	}
}

func newTestEngine(t *testing.T, def *layout.Config, st store.Store, opts Options) *Engine {
	t.Helper()
	if st == nil {
		st = store.NewMemoryStore()
	}
	e, err := New(def, store.NewGateway(st, nil), opts)
	require.NoError(t, err)
	return e
}

// First run: no stored config exists, so the working config is a deep
// copy of the default, and a single list has no connections.
func TestNew_AdoptsDefaultOnFirstRun(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 500})

	assert.Equal(t, layout.Mobile, e.ActiveBreakpoint())
	lay := e.CurrentLayout()
	require.Len(t, lay, 1)
	assert.Equal(t, "A", lay[0].ContainerName)
	assert.Equal(t, []string{"x"}, componentNames(lay))
	assert.Empty(t, lay[0].ConnectedTo)
}

func TestNew_RejectsInvalidDefault(t *testing.T) {
	gw := store.NewGateway(store.NewMemoryStore(), nil)
	_, err := New(&layout.Config{Name: "dash", Version: 1}, gw, Options{})
	assert.ErrorIs(t, err, ErrInvalidDefault)
}

// Subsequent run: a stored config at an older version is adopted and
// reconciled against the newer default.
func TestNew_ReconcilesStoredConfig(t *testing.T) {
	st := store.NewMemoryStore()
	gw := store.NewGateway(st, nil)

	// Session one: customize by moving "x" into a user arrangement.
	stored := &layout.Config{
		Name:    "dash",
		Version: 1,
		Mobile: layout.Layout{
			{ContainerName: "A", Width: "1fr", Items: []layout.Element{{ComponentName: "x"}}},
		},
	}
	gw.Save(stored)

	// Session two ships version 2 of the default with "y" added after "x".
	def := defConfig()
	def.Version = 2
	def.Mobile[0].Items = append(def.Mobile[0].Items, layout.Element{ComponentName: "y"})

	e := newTestEngine(t, def, st, Options{InitialWidth: 500})
	assert.Equal(t, []string{"x", "y"}, componentNames(e.CurrentLayout()))
}

// A stored config newer than the shipped default cannot be merged; the
// default is adopted wholesale.
func TestNew_StoredNewerThanDefaultIsDiscarded(t *testing.T) {
	st := store.NewMemoryStore()
	gw := store.NewGateway(st, nil)
	future := defConfig()
	future.Version = 99
	future.Mobile[0].Items = []layout.Element{{ComponentName: "from-the-future"}}
	gw.Save(future)

	e := newTestEngine(t, defConfig(), st, Options{InitialWidth: 500})
	assert.Equal(t, []string{"x"}, componentNames(e.CurrentLayout()))
}

func TestHandle_WidthSelectsBreakpoint(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 500})
	require.Equal(t, layout.Mobile, e.ActiveBreakpoint())
	assert.Equal(t, 150*time.Millisecond, e.DragDelay())

	require.NoError(t, e.Handle(WidthChanged{Width: 1200}))
	assert.Equal(t, layout.Tablet, e.ActiveBreakpoint())
	assert.Equal(t, time.Duration(0), e.DragDelay())
	assert.Equal(t, "2fr 1fr", e.GridTemplate())

	require.NoError(t, e.Handle(WidthChanged{Width: 400}))
	assert.Equal(t, layout.Mobile, e.ActiveBreakpoint())
}

func TestHandle_DragWithinContainer(t *testing.T) {
	def := defConfig()
	def.Mobile[0].Items = []layout.Element{{ComponentName: "x"}, {ComponentName: "y"}}
	e := newTestEngine(t, def, nil, Options{InitialWidth: 500})

	require.NoError(t, e.Handle(DragCompleted{
		FromContainer: "A", ToContainer: "A",
		FromIndex: 0, ToIndex: 1,
		SameContainer: true,
	}))
	assert.Equal(t, []string{"y", "x"}, componentNames(e.CurrentLayout()))
}

func TestHandle_DragAcrossContainers(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 1200})
	require.Equal(t, layout.Tablet, e.ActiveBreakpoint())

	require.NoError(t, e.Handle(DragCompleted{
		FromContainer: "A", ToContainer: "B",
		FromIndex: 0, ToIndex: 0,
	}))
	lay := e.CurrentLayout()
	assert.Empty(t, lay[0].Items)
	assert.Equal(t, "x", lay[1].Items[0].ComponentName)

	// connectedTo stays complete after the mutation.
	assert.Equal(t, []string{"B"}, lay[0].ConnectedTo)
	assert.Equal(t, []string{"A"}, lay[1].ConnectedTo)
}

func TestHandle_DragUnknownContainerRejected(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 500})

	err := e.Handle(DragCompleted{FromContainer: "ghost", ToContainer: "A", SameContainer: false})
	assert.ErrorIs(t, err, layout.ErrContainerNotFound)
	assert.Equal(t, []string{"x"}, componentNames(e.CurrentLayout()))
}

func TestHandle_AddAndRemoveColumns(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 500})

	require.NoError(t, e.Handle(AddColumn{Side: Right}))
	lay := e.CurrentLayout()
	require.Len(t, lay, 2)
	assert.Equal(t, "A", lay[0].ContainerName)
	assert.Equal(t, layout.DefaultWidth, lay[1].Width)
	assert.Equal(t, "1fr 1fr", e.GridTemplate())
	// Both columns see each other.
	assert.Equal(t, []string{lay[1].ContainerName}, lay[0].ConnectedTo)
	assert.Equal(t, []string{"A"}, lay[1].ConnectedTo)

	require.NoError(t, e.Handle(AddColumn{Side: Left}))
	lay = e.CurrentLayout()
	require.Len(t, lay, 3)
	assert.Equal(t, "A", lay[1].ContainerName)

	// Remove both fresh columns; "x" must survive any spillover.
	require.NoError(t, e.Handle(RemoveColumn{Side: Left}))
	require.NoError(t, e.Handle(RemoveColumn{Side: Right}))
	lay = e.CurrentLayout()
	require.Len(t, lay, 1)
	assert.Equal(t, []string{"x"}, componentNames(lay))

	// The last column cannot be removed.
	err := e.Handle(RemoveColumn{Side: Right})
	assert.ErrorIs(t, err, layout.ErrLastColumn)
}

func TestHandle_RemoveColumnSpillover(t *testing.T) {
	def := defConfig()
	def.Mobile = layout.Layout{
		{ContainerName: "keep", Width: "1fr", Items: []layout.Element{{ComponentName: "r"}}},
		{ContainerName: "gone", Width: "1fr", Items: []layout.Element{{ComponentName: "p"}, {ComponentName: "q"}}},
	}
	e := newTestEngine(t, def, nil, Options{InitialWidth: 500})

	require.NoError(t, e.Handle(RemoveColumn{Side: Right}))
	lay := e.CurrentLayout()
	require.Len(t, lay, 1)
	assert.Equal(t, []string{"r", "p", "q"}, componentNames(lay))
}

// Reset restores the pristine default variant, dropping customization
// and previously reconciled additions alike.
func TestHandle_Reset(t *testing.T) {
	st := store.NewMemoryStore()
	gw := store.NewGateway(st, nil)
	stored := &layout.Config{
		Name:    "dash",
		Version: 1,
		Mobile: layout.Layout{
			{ContainerName: "A", Width: "1fr", Items: []layout.Element{{ComponentName: "user-moved"}, {ComponentName: "x"}}},
		},
	}
	gw.Save(stored)

	def := defConfig()
	def.Version = 2
	e := newTestEngine(t, def, st, Options{InitialWidth: 500})

	require.NoError(t, e.Handle(Reset{}))
	assert.Equal(t, []string{"x"}, componentNames(e.CurrentLayout()))
}

func TestHandle_ThresholdsChanged(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 1200})
	require.Equal(t, layout.Tablet, e.ActiveBreakpoint())

	// Raising the tablet threshold above the current width flips the
	// active variant without a new resize event.
	require.NoError(t, e.Handle(ThresholdsChanged{
		Thresholds: breakpoint.Thresholds{Desktop: 3000, Tablet: 2000, Mobile: 600},
	}))
	assert.Equal(t, layout.Mobile, e.ActiveBreakpoint())
}

// CurrentLayout hands out deep copies; mutating one never reaches the
// engine's working state.
func TestCurrentLayout_CopyOnWrite(t *testing.T) {
	e := newTestEngine(t, defConfig(), nil, Options{InitialWidth: 500})

	lay := e.CurrentLayout()
	lay[0].Items[0].ComponentName = "hijacked"
	lay[0].Items = nil

	assert.Equal(t, []string{"x"}, componentNames(e.CurrentLayout()))
}

func TestOnChange_EmittedAfterEvents(t *testing.T) {
	var got []layout.Layout
	def := defConfig()
	def.Mobile[0].Items = []layout.Element{{ComponentName: "x"}, {ComponentName: "y"}}
	e := newTestEngine(t, def, nil, Options{
		InitialWidth: 500,
		OnChange:     func(l layout.Layout) { got = append(got, l) },
	})
	require.Len(t, got, 1) // initialization

	require.NoError(t, e.Handle(DragCompleted{
		FromContainer: "A", ToContainer: "A", FromIndex: 0, ToIndex: 1, SameContainer: true,
	}))
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[1][0].Items[0].ComponentName)

	// A width change that does not flip the breakpoint is not
	// state-affecting and stays silent.
	require.NoError(t, e.Handle(WidthChanged{Width: 501}))
	assert.Len(t, got, 2)

	require.NoError(t, e.Handle(WidthChanged{Width: 1500}))
	assert.Len(t, got, 3)
}

// Every mutation persists: a second engine over the same store picks up
// where the first left off.
func TestMutationsPersistAcrossSessions(t *testing.T) {
	def := defConfig()
	def.Mobile[0].Items = []layout.Element{{ComponentName: "x"}, {ComponentName: "y"}}
	st := store.NewMemoryStore()

	e1 := newTestEngine(t, def, st, Options{InitialWidth: 500})
	require.NoError(t, e1.Handle(DragCompleted{
		FromContainer: "A", ToContainer: "A", FromIndex: 0, ToIndex: 1, SameContainer: true,
	}))

	e2 := newTestEngine(t, def, st, Options{InitialWidth: 500})
	assert.Equal(t, []string{"y", "x"}, componentNames(e2.CurrentLayout()))
}

func componentNames(l layout.Layout) []string {
	var out []string
	for _, list := range l {
		for _, item := range list.Items {
			out = append(out, item.ComponentName)
		}
	}
	return out
}

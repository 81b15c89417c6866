// Package engine owns the working layout state and drives it through
// explicit events: viewport resizes, drag completions, column edits, and
// resets. It is the only writer of the working config; collaborators
// receive deep copies and feed changes back as events.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"gridboard/internal/breakpoint"
	"gridboard/internal/layout"
	"gridboard/internal/store"
)

// ErrInvalidDefault is returned by New when the supplied default config
// fails validation. The default is authored, not user data, so this is a
// setup bug rather than a recoverable condition.
var ErrInvalidDefault = errors.New("invalid default layout config")

// Options configures engine construction.
type Options struct {
	// Thresholds are the breakpoint widths; zero value means defaults.
	Thresholds breakpoint.Thresholds
	// InitialWidth is the viewport width at startup, used for the first
	// breakpoint selection.
	InitialWidth int
	// Logger receives operational logging. Nil means no logging.
	Logger *zap.Logger
	// OnChange, if set, is invoked after initialization and after every
	// state-affecting event with a deep copy of the active breakpoint's
	// connected layout.
	OnChange func(layout.Layout)
}

// Engine reconciles the stored config against the default at startup and
// then applies mutations event by event, persisting after each one.
type Engine struct {
	def       *layout.Config // immutable default, never mutated
	working   *layout.Config // exclusively owned working state
	active    layout.Breakpoint
	th        breakpoint.Thresholds
	lastWidth int
	gateway   *store.Gateway
	log       *zap.Logger
	tracer    trace.Tracer
	onChange  func(layout.Layout)
}

// New builds an engine around the immutable default config. The working
// config is adopted from storage when a stored config exists, validates,
// and is not newer than the default, with components the default
// introduced since then reconciled in. Otherwise the working config is a
// deep copy of the default.
func New(def *layout.Config, gw *store.Gateway, opts Options) (*Engine, error) {
	if !def.Valid() {
		return nil, fmt.Errorf("engine: %w", ErrInvalidDefault)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	th := opts.Thresholds
	if th == (breakpoint.Thresholds{}) {
		th = breakpoint.DefaultThresholds()
	}

	e := &Engine{
		def:       def.Clone(),
		th:        th,
		lastWidth: opts.InitialWidth,
		gateway:   gw,
		log:       log,
		tracer:    otel.Tracer("gridboard/engine"),
		onChange:  opts.OnChange,
	}

	if stored, ok := gw.Load(def.Name); ok && stored.Version <= def.Version {
		layout.Reconcile(stored, e.def)
		e.working = stored
		log.Info("adopted stored layout",
			zap.String("name", def.Name),
			zap.Int("storedVersion", stored.Version),
			zap.Int("defaultVersion", def.Version))
	} else {
		e.working = e.def.Clone()
		log.Info("adopted default layout", zap.String("name", def.Name))
	}

	e.active = e.th.Select(opts.InitialWidth)
	e.connectAll()
	e.gateway.Save(e.working)
	e.notify()
	return e, nil
}

// Handle applies one event. Mutation events that fail (unknown container,
// out-of-range index, removing the last column) leave the state unchanged
// and return the error.
func (e *Engine) Handle(ev Event) error {
	switch ev := ev.(type) {
	case WidthChanged:
		e.handleWidth(ev.Width)
		return nil
	case DragCompleted:
		return e.handleDrag(ev)
	case AddColumn:
		e.handleAddColumn(ev.Side)
		return nil
	case RemoveColumn:
		return e.handleRemoveColumn(ev.Side)
	case Reset:
		e.handleReset()
		return nil
	case ThresholdsChanged:
		e.th = ev.Thresholds
		e.handleWidth(e.lastWidth)
		return nil
	default:
		return fmt.Errorf("engine: unknown event %T", ev)
	}
}

// ActiveBreakpoint returns the currently selected variant.
func (e *Engine) ActiveBreakpoint() layout.Breakpoint {
	return e.active
}

// CurrentLayout returns a deep copy of the active breakpoint's layout.
// Mutating the copy has no effect on the engine.
func (e *Engine) CurrentLayout() layout.Layout {
	return e.working.Variant(e.active).Clone()
}

// GridTemplate returns the space-joined width tokens of the active
// layout's columns, in order.
func (e *Engine) GridTemplate() string {
	return e.working.Variant(e.active).GridTemplate()
}

// DragDelay returns the drag-start hold time for the active variant.
func (e *Engine) DragDelay() time.Duration {
	return breakpoint.DragDelay(e.active)
}

func (e *Engine) handleWidth(width int) {
	e.lastWidth = width
	bp := e.th.Select(width)
	if bp == e.active {
		return
	}
	e.active = bp
	e.log.Debug("breakpoint changed", zap.String("breakpoint", string(bp)), zap.Int("width", width))
	e.notify()
}

func (e *Engine) handleDrag(ev DragCompleted) error {
	_, span := e.tracer.Start(context.Background(), "layout.drag",
		trace.WithAttributes(
			attribute.String("from", ev.FromContainer),
			attribute.String("to", ev.ToContainer),
			attribute.Bool("sameContainer", ev.SameContainer),
		))
	defer span.End()

	lay := e.working.Variant(e.active)
	var err error
	if ev.SameContainer {
		err = lay.MoveWithinList(ev.FromContainer, ev.FromIndex, ev.ToIndex)
	} else {
		err = lay.TransferBetweenLists(ev.FromContainer, ev.ToContainer, ev.FromIndex, ev.ToIndex)
	}
	if err != nil {
		e.log.Error("drag rejected", zap.Error(err))
		return err
	}
	e.commit()
	return nil
}

func (e *Engine) handleAddColumn(side Side) {
	_, span := e.tracer.Start(context.Background(), "layout.addColumn",
		trace.WithAttributes(attribute.String("side", side.String())))
	defer span.End()

	lay := e.working.Variant(e.active)
	if side == Left {
		lay.AddColumnLeft()
	} else {
		lay.AddColumnRight()
	}
	e.working.SetVariant(e.active, lay)
	e.commit()
}

func (e *Engine) handleRemoveColumn(side Side) error {
	_, span := e.tracer.Start(context.Background(), "layout.removeColumn",
		trace.WithAttributes(attribute.String("side", side.String())))
	defer span.End()

	lay := e.working.Variant(e.active)
	var err error
	if side == Left {
		err = lay.RemoveColumnLeft()
	} else {
		err = lay.RemoveColumnRight()
	}
	if err != nil {
		e.log.Warn("column removal rejected", zap.Error(err))
		return err
	}
	e.working.SetVariant(e.active, lay)
	e.commit()
	return nil
}

// handleReset restores the active variant from the pristine default, not
// the reconciled working state, so previously reconciled additions are
// reverted along with everything else.
func (e *Engine) handleReset() {
	_, span := e.tracer.Start(context.Background(), "layout.reset",
		trace.WithAttributes(attribute.String("breakpoint", string(e.active))))
	defer span.End()

	e.working.SetVariant(e.active, e.def.Variant(e.active).Clone())
	e.commit()
}

// commit runs the invariant side effects of every mutation: reconnect,
// persist, notify. There is no visible intermediate state between a
// mutation and this commit.
func (e *Engine) commit() {
	e.working.Variant(e.active).Connect()
	e.gateway.Save(e.working)
	e.notify()
}

func (e *Engine) connectAll() {
	for _, bp := range layout.Breakpoints() {
		e.working.Variant(bp).Connect()
	}
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange(e.CurrentLayout())
	}
}

package matching

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DragContext lives between a drag start and its drag end. It only drives
// display decisions; the engine never reads it.
type DragContext struct {
	Origin Region
	Active bool
}

// Widget owns the current store. It is the only place a store is replaced.
// Widget is not safe for concurrent use; the host delivers events one at a
// time.
type Widget struct {
	id      string
	store   *Store
	initial *Store
	drag    *DragContext

	logger  *zap.Logger
	onError func(error)
	strict  bool
}

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

func WithLogger(l *zap.Logger) WidgetOption {
	return func(w *Widget) { w.logger = l }
}

// WithErrorHandler receives every gesture the widget refused or reverted.
func WithErrorHandler(fn func(error)) WidgetOption {
	return func(w *Widget) { w.onError = fn }
}

// WithStrictInvariants makes an invariant violation panic instead of
// reverting to the pre-gesture store.
func WithStrictInvariants(strict bool) WidgetOption {
	return func(w *Widget) { w.strict = strict }
}

// WithID overrides the generated widget id.
func WithID(id string) WidgetOption {
	return func(w *Widget) { w.id = id }
}

func NewWidget(store *Store, opts ...WidgetOption) *Widget {
	w := &Widget{
		id:      uuid.NewString(),
		store:   store,
		initial: store,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With(zap.String("widget", w.id))
	return w
}

func (w *Widget) ID() string    { return w.id }
func (w *Widget) Store() *Store { return w.store }
func (w *Widget) Hints() Hints  { return w.store.Hints() }

// Context returns the in-flight drag, if any.
func (w *Widget) Context() (DragContext, bool) {
	if w.drag == nil {
		return DragContext{}, false
	}
	return *w.drag, true
}

// DroppableID returns the droppable id of a region in this widget.
func (w *Widget) DroppableID(r Region) string {
	return DroppableID(r, w.id)
}

// Reset restores the store the widget was created with.
func (w *Widget) Reset() *Store {
	w.store = w.initial
	w.drag = nil
	w.logger.Debug("widget reset", zap.Stringer("store", w.store))
	return w.store
}

// DragStart records where the gesture originates.
func (w *Widget) DragStart(ev DragStartEvent) {
	origin, err := ParseDroppableID(ev.Source.DroppableID)
	if err != nil {
		w.drag = nil
		w.report(err)
		return
	}
	w.drag = &DragContext{Origin: origin, Active: true}
	w.logger.Debug("drag start",
		zap.Stringer("origin", origin),
		zap.Int("index", ev.Source.Index))
}

// DragEnd resolves a finished gesture and returns the resulting store. The
// drag context is discarded whatever the outcome.
func (w *Widget) DragEnd(ev DragEndEvent) *Store {
	w.drag = nil

	g, err := ParseDragEnd(ev)
	if err != nil {
		w.report(err)
		return w.store
	}
	if g.Cancelled() {
		w.logger.Debug("drag cancelled", zap.String("item", g.ItemID))
		return w.store
	}

	prev := w.store
	next, err := ResolveDragEnd(prev, g)
	if err != nil {
		w.report(err)
		return w.store
	}
	if next == prev {
		return w.store
	}
	if err := next.Validate(); err != nil {
		if w.strict {
			panic(err)
		}
		w.report(err)
		return w.store
	}

	w.store = next
	w.logger.Debug("drag resolved",
		zap.String("item", g.ItemID),
		zap.Stringer("from", g.Source),
		zap.Stringer("to", *g.Destination),
		zap.Stringer("store", next))
	return w.store
}

func (w *Widget) report(err error) {
	level := w.logger.Warn
	if errors.Is(err, ErrInvariant) {
		level = w.logger.Error
	}
	level("gesture rejected", zap.Error(err))
	if w.onError != nil {
		w.onError(err)
	}
}

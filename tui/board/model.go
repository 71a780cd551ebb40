package board

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/matchdrag/matching"
	"github.com/dylan/matchdrag/tui/shared"
	"go.uber.org/zap"
)

// listTop is the first screen row holding list entries; row 0 is the
// column header and row 1 a spacer.
const listTop = 2

type Options struct {
	Prompt    string
	PoolWidth int // percentage of the width given to the choices column
	WidgetID  string
	Logger    *zap.Logger
	Strict    bool
}

// drag is the gesture currently in flight.
type drag struct {
	source      matching.Location
	draggableID string
}

// reports collects errors the widget refused; shared by every copy of Model.
type reports struct {
	errs []error
}

type Model struct {
	widget  *matching.Widget
	reports *reports

	prompt  string
	poolPct int

	cursor matching.Location
	drag   *drag
	hover  *matching.Location

	width  int
	height int

	now func() time.Time
}

func New(store *matching.Store, opts Options) Model {
	r := &reports{}
	wopts := []matching.WidgetOption{
		matching.WithErrorHandler(func(err error) { r.errs = append(r.errs, err) }),
		matching.WithStrictInvariants(opts.Strict),
	}
	if opts.Logger != nil {
		wopts = append(wopts, matching.WithLogger(opts.Logger))
	}
	if opts.WidgetID != "" {
		wopts = append(wopts, matching.WithID(opts.WidgetID))
	}
	poolPct := opts.PoolWidth
	if poolPct <= 0 {
		poolPct = 40
	}
	return Model{
		widget:  matching.NewWidget(store, wopts...),
		reports: r,
		prompt:  opts.Prompt,
		poolPct: poolPct,
		cursor:  matching.Location{Region: matching.RegionPool},
		now:     time.Now,
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Widget() *matching.Widget { return m.widget }
func (m Model) Store() *matching.Store { return m.widget.Store() }
func (m Model) Cursor() matching.Location { return m.cursor }
func (m Model) Dragging() bool { return m.drag != nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case shared.ResetMsg:
		m.drag = nil
		m.hover = nil
		store := m.widget.Reset()
		m.clampCursor()
		return m, func() tea.Msg { return shared.StoreChangedMsg{Store: store} }
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, shared.Keys.Up):
		m.cursor.Index--
		m.clampCursor()
	case key.Matches(msg, shared.Keys.Down):
		m.cursor.Index++
		m.clampCursor()
	case key.Matches(msg, shared.Keys.Left):
		m.cursor.Region = matching.RegionSlots
		m.clampCursor()
	case key.Matches(msg, shared.Keys.Right):
		m.cursor.Region = matching.RegionPool
		m.clampCursor()
	case key.Matches(msg, shared.Keys.Cancel):
		if m.drag != nil {
			return m.finish(nil)
		}
	case key.Matches(msg, shared.Keys.Grab):
		if m.drag != nil {
			dest := m.cursor
			return m.finish(&dest)
		}
		return m.start(m.cursor)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	loc := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || loc == nil || m.drag != nil {
			return m, nil
		}
		m.cursor = *loc
		m.clampCursor()
		return m.start(*loc)

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.hover = loc
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		if loc != nil {
			m.cursor = *loc
		}
		return m.finish(loc)
	}
	return m, nil
}

// start begins a gesture at loc if something draggable sits there.
func (m Model) start(loc matching.Location) (Model, tea.Cmd) {
	id, ok := m.draggableAt(loc)
	if !ok {
		if loc.Region == matching.RegionSlots && loc.Index < m.Store().Capacity() {
			err := fmt.Errorf("slots[%d]: %w", loc.Index, matching.ErrNotDraggable)
			return m, feedbackCmd(shared.FeedbackForGesture(err, m.now()))
		}
		return m, nil
	}

	m.widget.DragStart(matching.DragStartEvent{
		Source: matching.RawLocation{DroppableID: m.widget.DroppableID(loc.Region), Index: loc.Index},
	})
	if _, active := m.widget.Context(); !active {
		return m, m.drainReports()
	}
	m.drag = &drag{source: loc, draggableID: id}
	return m, func() tea.Msg { return shared.DragStartedMsg{Origin: loc.Region} }
}

// finish ends the gesture. A nil dest is a drop outside every droppable.
func (m Model) finish(dest *matching.Location) (Model, tea.Cmd) {
	d := m.drag
	m.drag = nil
	m.hover = nil

	ev := matching.DragEndEvent{
		DraggableID: d.draggableID,
		Source:      matching.RawLocation{DroppableID: m.widget.DroppableID(d.source.Region), Index: d.source.Index},
	}
	if dest != nil {
		idx := dest.Index
		// Reorders report the final index, so the append row maps to the last one.
		if d.source.Region == matching.RegionPool && dest.Region == matching.RegionPool && idx >= m.Store().PoolLen() {
			idx = m.Store().PoolLen() - 1
		}
		ev.Destination = &matching.RawLocation{DroppableID: m.widget.DroppableID(dest.Region), Index: idx}
	}

	prev := m.widget.Store()
	next := m.widget.DragEnd(ev)
	m.clampCursor()

	cmds := []tea.Cmd{m.drainReports()}
	if next != prev {
		cmds = append(cmds, func() tea.Msg { return shared.StoreChangedMsg{Store: next} })
	}
	return m, tea.Batch(cmds...)
}

func (m Model) drainReports() tea.Cmd {
	if len(m.reports.errs) == 0 {
		return nil
	}
	errs := m.reports.errs
	m.reports.errs = nil

	now := m.now()
	cmds := make([]tea.Cmd, len(errs))
	for i, err := range errs {
		cmds[i] = feedbackCmd(shared.FeedbackForGesture(err, now))
	}
	return tea.Batch(cmds...)
}

func feedbackCmd(fb shared.Feedback) tea.Cmd {
	return func() tea.Msg { return shared.FeedbackMsg{Feedback: fb} }
}

// draggableAt returns the draggable id of the item at loc.
func (m Model) draggableAt(loc matching.Location) (string, bool) {
	s := m.Store()
	switch loc.Region {
	case matching.RegionPool:
		pool := s.Pool()
		if loc.Index < 0 || loc.Index >= len(pool) {
			return "", false
		}
		return pool[loc.Index].Key(), true
	case matching.RegionSlots:
		slots := s.Slots()
		if loc.Index < 0 || loc.Index >= len(slots) {
			return "", false
		}
		it, ok := slots[loc.Index].Item()
		if !ok {
			return "", false
		}
		return it.Key(), true
	}
	return "", false
}

// maxIndex is the last position the cursor may rest on in a region. While a
// response is being dragged the pool gains an append row.
func (m Model) maxIndex(r matching.Region) int {
	s := m.Store()
	if r == matching.RegionSlots {
		return s.Capacity() - 1
	}
	if m.drag != nil && m.drag.source.Region == matching.RegionSlots {
		return s.PoolLen()
	}
	return s.PoolLen() - 1
}

func (m *Model) clampCursor() {
	hi := m.maxIndex(m.cursor.Region)
	if m.cursor.Index > hi {
		m.cursor.Index = hi
	}
	if m.cursor.Index < 0 {
		m.cursor.Index = 0
	}
}

// slotsWidth is the width of the responses column; the choices column takes
// the rest.
func (m Model) slotsWidth() int {
	return m.width - m.width*m.poolPct/100
}

// hitTest maps a screen cell to a board position. The row just below the
// last choice is the pool's append zone. Anything else is outside.
func (m Model) hitTest(x, y int) *matching.Location {
	row := y - listTop
	if row < 0 || x < 0 || x >= m.width {
		return nil
	}
	s := m.Store()
	if x < m.slotsWidth() {
		if row < s.Capacity() {
			return &matching.Location{Region: matching.RegionSlots, Index: row}
		}
		return nil
	}
	if row <= s.PoolLen() {
		return &matching.Location{Region: matching.RegionPool, Index: row}
	}
	return nil
}

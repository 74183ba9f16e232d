package carousel

import (
	"sync"
)

// MaxListeners bounds the observers one controller will notify.
const MaxListeners = 8

type DragState struct {
	Active bool
	StartX float64
	DeltaX float64
}

// State is an immutable snapshot of a carousel.
type State struct {
	CurrentIndex    int
	ItemCount       int
	Drag            DragState
	ViewMode        ViewMode
	AutoplayEnabled bool
	Hovered         bool
	Held            bool
	Suspended       bool
	Scheduler       SchedulerState
	Progress        float64
	Version         uint64
}

func (s State) Empty() bool { return s.ItemCount == 0 }

type EventKind int

const (
	EventState EventKind = iota
	EventSelect
)

// Cause names the operation that produced an event.
type Cause string

const (
	CauseInit     Cause = "init"
	CauseItems    Cause = "items"
	CauseGoTo     Cause = "goto"
	CauseNext     Cause = "next"
	CausePrevious Cause = "previous"
	CauseDrag     Cause = "drag"
	CauseAutoplay Cause = "autoplay"
	CauseView     Cause = "view"
	CauseHover    Cause = "hover"
	CauseHold     Cause = "hold"
	CauseToggle   Cause = "toggle"
	CauseSelect   Cause = "select"
)

// Selection identifies the item a user chose to open.
type Selection struct {
	Key   string
	Index int
}

type Event struct {
	Kind      EventKind
	Cause     Cause
	State     State
	Selection Selection
}

// Listener receives events after the controller lock is released, so it may
// call back into the controller.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

type Option func(*Controller)

// WithClock replaces the autoplay time source.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// Controller is the single owner of carousel state. Every mutation is
// serialised behind mu, including autoplay ticks.
type Controller struct {
	clock Clock
	sched *Scheduler

	mu        sync.Mutex
	items     []Item
	cfg       Config
	index     int
	drag      DragState
	view      ViewMode
	autoplay  bool
	hovered   bool
	held      bool
	closed    bool
	version   uint64
	listeners []listenerEntry
	nextID    int
}

func New(opts ...Option) *Controller {
	c := &Controller{
		cfg:  DefaultConfig(),
		view: ViewStrip,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sched = NewScheduler(c.clock, c.autoplayTick)
	return c
}

// Initialize loads a new item list and configuration and resets the index,
// drag and hover state. Items with empty or duplicate keys are dropped and
// reported in the returned error; the controller is usable either way.
func (c *Controller) Initialize(items []Item, cfg Config) error {
	clean, err := CleanItems(items)
	c.update(CauseInit, func() bool {
		c.items = clean
		c.cfg = cfg.normalized()
		c.index = 0
		c.drag = DragState{}
		c.view = c.cfg.DefaultView
		c.autoplay = c.cfg.Autoplay
		c.hovered = false
		return true
	})
	return err
}

// SetItems re-supplies the item list. The current item keeps focus when its
// key survives; otherwise the old index is wrapped into the new range.
func (c *Controller) SetItems(items []Item) error {
	clean, err := CleanItems(items)
	c.update(CauseItems, func() bool {
		key := ""
		if c.index < len(c.items) {
			key = c.items[c.index].Key
		}
		c.items = clean
		if i := IndexOf(clean, key); key != "" && i >= 0 {
			c.index = i
		} else {
			c.index = Normalize(c.index, len(clean))
		}
		return true
	})
	return err
}

func (c *Controller) GoTo(index int) {
	c.update(CauseGoTo, func() bool { return c.goToLocked(index) })
}

func (c *Controller) Next() {
	c.update(CauseNext, func() bool { return c.goToLocked(c.index + 1) })
}

func (c *Controller) Previous() {
	c.update(CausePrevious, func() bool { return c.goToLocked(c.index - 1) })
}

func (c *Controller) goToLocked(index int) bool {
	if len(c.items) == 0 {
		return false
	}
	c.index = Normalize(index, len(c.items))
	return true
}

// Select moves to index and emits a selection event for it.
func (c *Controller) Select(index int) (Selection, bool) {
	c.mu.Lock()
	if c.closed || len(c.items) == 0 {
		c.mu.Unlock()
		return Selection{}, false
	}
	c.goToLocked(index)
	sel := Selection{Key: c.items[c.index].Key, Index: c.index}
	c.reevaluateLocked()
	st := c.eventLocked(CauseSelect, EventState)
	pick := c.eventLocked(CauseSelect, EventSelect)
	pick.Selection = sel
	ls := c.listenersLocked()
	c.mu.Unlock()

	emit(ls, st)
	emit(ls, pick)
	return sel, true
}

// SetViewMode switches between strip and grid. Grid cancels any drag and
// clears hover, since the strip is no longer on screen.
func (c *Controller) SetViewMode(mode ViewMode) {
	if mode != ViewGrid {
		mode = ViewStrip
	}
	c.update(CauseView, func() bool {
		if c.view == mode {
			return false
		}
		c.view = mode
		if mode == ViewGrid {
			c.drag = DragState{}
			c.hovered = false
		}
		return true
	})
}

func (c *Controller) ToggleViewMode() {
	c.update(CauseView, func() bool {
		if c.view == ViewGrid {
			c.view = ViewStrip
			return true
		}
		c.view = ViewGrid
		c.drag = DragState{}
		c.hovered = false
		return true
	})
}

// SetHovered records pointer enter/leave over the strip.
func (c *Controller) SetHovered(hovered bool) {
	c.update(CauseHover, func() bool {
		if c.hovered == hovered {
			return false
		}
		c.hovered = hovered
		return true
	})
}

// SetSuspended holds autoplay independently of hover and drag, for example
// while a detail view covers the carousel.
func (c *Controller) SetSuspended(held bool) {
	c.update(CauseHold, func() bool {
		if c.held == held {
			return false
		}
		c.held = held
		return true
	})
}

func (c *Controller) SetAutoplay(enabled bool) {
	c.update(CauseToggle, func() bool {
		if c.autoplay == enabled {
			return false
		}
		c.autoplay = enabled
		return true
	})
}

func (c *Controller) ToggleAutoplay() {
	c.update(CauseToggle, func() bool {
		c.autoplay = !c.autoplay
		return true
	})
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Items returns a copy of the current item list.
func (c *Controller) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller) Current() (Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[c.index], true
}

func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Progress(c.index, len(c.items))
}

// Subscribe adds a listener. The returned func removes it and is safe to
// call more than once.
func (c *Controller) Subscribe(l Listener) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}, ErrClosed
	}
	if len(c.listeners) >= MaxListeners {
		return func() {}, ErrTooManyListeners
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: l})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, e := range c.listeners {
				if e.id == id {
					c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
					return
				}
			}
		})
	}, nil
}

// Close stops autoplay and detaches listeners. Later calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.sched.Stop()
	c.drag = DragState{}
	c.listeners = nil
}

// autoplayTick runs on the scheduler goroutine.
func (c *Controller) autoplayTick(gen uint64) {
	c.update(CauseAutoplay, func() bool {
		if !c.sched.Valid(gen) || !c.shouldRunLocked() {
			return false
		}
		return c.goToLocked(c.index + 1)
	})
}

// update applies fn under the lock, re-evaluates the scheduler and notifies
// listeners when fn reports a change.
func (c *Controller) update(cause Cause, fn func() bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	changed := fn()
	c.reevaluateLocked()
	if !changed {
		c.mu.Unlock()
		return
	}
	ev := c.eventLocked(cause, EventState)
	ls := c.listenersLocked()
	c.mu.Unlock()

	emit(ls, ev)
}

func (c *Controller) suspendedLocked() bool {
	return c.hovered || c.drag.Active || c.held
}

func (c *Controller) shouldRunLocked() bool {
	return c.autoplay && !c.suspendedLocked() && c.view == ViewStrip
}

func (c *Controller) reevaluateLocked() {
	c.sched.Reevaluate(c.shouldRunLocked(), c.cfg.AutoplayInterval)
}

func (c *Controller) stateLocked() State {
	return State{
		CurrentIndex:    c.index,
		ItemCount:       len(c.items),
		Drag:            c.drag,
		ViewMode:        c.view,
		AutoplayEnabled: c.autoplay,
		Hovered:         c.hovered,
		Held:            c.held,
		Suspended:       c.suspendedLocked(),
		Scheduler:       c.sched.State(),
		Progress:        Progress(c.index, len(c.items)),
		Version:         c.version,
	}
}

func (c *Controller) eventLocked(cause Cause, kind EventKind) Event {
	c.version++
	return Event{Kind: kind, Cause: cause, State: c.stateLocked()}
}

func (c *Controller) listenersLocked() []Listener {
	if len(c.listeners) == 0 {
		return nil
	}
	out := make([]Listener, len(c.listeners))
	for i, e := range c.listeners {
		out[i] = e.fn
	}
	return out
}

func emit(ls []Listener, ev Event) {
	for _, l := range ls {
		l(ev)
	}
}

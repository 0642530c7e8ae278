package engine

import (
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-calendar/internal/config"
)

// Observer receives every grid the Navigator builds while attached.
type Observer interface {
	Render(grid MonthGrid)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(grid MonthGrid)

// Render calls f(grid).
func (f ObserverFunc) Render(grid MonthGrid) {
	f(grid)
}

// Transition computes the next cursor from the current one.
// A non-nil error leaves the cursor unchanged and suppresses the rebuild.
type Transition func(Cursor) (Cursor, error)

// Navigator owns the displayed cursor and pushes a freshly built grid to its
// observers after every accepted transition.
//
// A Navigator is not safe for concurrent use; drive it from the UI goroutine.
type Navigator struct {
	Clock Clock

	cursor    Cursor
	grid      MonthGrid
	observers map[int]Observer
	nextID    int
	log       *slog.Logger
}

// NewNavigator starts at the clock's current month.
func NewNavigator(clock Clock) *Navigator {
	if clock == nil {
		clock = RealClock{}
	}
	n := &Navigator{
		Clock:     clock,
		observers: make(map[int]Observer),
		log:       slog.With(config.LogKeyComponent, config.CompEngine),
	}
	n.cursor = CursorAt(clock.Now())
	n.grid = n.build()
	return n
}

// Cursor returns the displayed (year, month).
func (n *Navigator) Cursor() Cursor {
	return n.cursor
}

// Grid returns the grid built by the last accepted transition.
func (n *Navigator) Grid() MonthGrid {
	return n.grid
}

// Attach registers o and immediately renders the current grid to it.
// The returned function detaches o; calling it more than once is harmless.
func (n *Navigator) Attach(o Observer) (detach func()) {
	id := n.nextID
	n.nextID++
	n.observers[id] = o
	n.log.Debug(config.MsgObserverAdded, config.LogKeyObservers, len(n.observers))

	o.Render(n.grid)

	return func() {
		if _, ok := n.observers[id]; !ok {
			return
		}
		delete(n.observers, id)
		n.log.Debug(config.MsgObserverRemoved, config.LogKeyObservers, len(n.observers))
	}
}

// Apply runs t against the current cursor. On success the cursor moves, the
// grid is rebuilt with a fresh clock read and every observer is notified.
func (n *Navigator) Apply(name string, t Transition) (MonthGrid, error) {
	next, err := t(n.cursor)
	if err != nil {
		n.log.Debug(config.MsgInputRejected,
			config.LogKeyTransition, name,
			config.LogKeyError, err)
		return n.grid, err
	}

	n.cursor = next
	n.grid = n.build()

	n.log.Debug(config.MsgTransition,
		config.LogKeyTransition, name,
		config.LogKeyYear, next.Year,
		config.LogKeyMonth, int(next.Month))

	for _, o := range n.observers {
		o.Render(n.grid)
	}
	return n.grid, nil
}

// PrevMonth moves to the previous month.
func (n *Navigator) PrevMonth() MonthGrid {
	g, _ := n.Apply(config.TransPrevMonth, infallible(Cursor.PrevMonth))
	return g
}

// NextMonth moves to the next month.
func (n *Navigator) NextMonth() MonthGrid {
	g, _ := n.Apply(config.TransNextMonth, infallible(Cursor.NextMonth))
	return g
}

// PrevYear moves to the same month of the previous year.
func (n *Navigator) PrevYear() MonthGrid {
	g, _ := n.Apply(config.TransPrevYear, infallible(Cursor.PrevYear))
	return g
}

// NextYear moves to the same month of the next year.
func (n *Navigator) NextYear() MonthGrid {
	g, _ := n.Apply(config.TransNextYear, infallible(Cursor.NextYear))
	return g
}

// SetYear applies a year typed by the user. Invalid text returns ErrInvalidYear
// and keeps the cursor.
func (n *Navigator) SetYear(text string) (MonthGrid, error) {
	return n.Apply(config.TransSetYear, func(c Cursor) (Cursor, error) {
		return c.WithYear(text)
	})
}

// SetMonth applies a month number or name typed by the user. Invalid text
// returns ErrInvalidMonth and keeps the cursor.
func (n *Navigator) SetMonth(text string) (MonthGrid, error) {
	return n.Apply(config.TransSetMonth, func(c Cursor) (Cursor, error) {
		return c.WithMonth(text)
	})
}

// Today jumps to the clock's current month.
func (n *Navigator) Today() MonthGrid {
	g, _ := n.Apply(config.TransToday, func(Cursor) (Cursor, error) {
		return CursorAt(n.Clock.Now()), nil
	})
	return g
}

// Set moves to an explicit cursor. The month must lie in January..December.
func (n *Navigator) Set(c Cursor) (MonthGrid, error) {
	return n.Apply(config.TransSet, func(cur Cursor) (Cursor, error) {
		if c.Month < 1 || c.Month > 12 {
			return cur, fmt.Errorf("%w: %d", ErrInvalidMonth, c.Month)
		}
		return c, nil
	})
}

func (n *Navigator) build() MonthGrid {
	g := n.cursor.Grid(n.Clock.Now())
	n.log.Debug(config.MsgGridBuilt,
		config.LogKeyYear, g.Year,
		config.LogKeyMonth, int(g.Month),
		config.LogKeyTodayIndex, g.TodayIndex)
	return g
}

func infallible(step func(Cursor) Cursor) Transition {
	return func(c Cursor) (Cursor, error) {
		return step(c), nil
	}
}

package input

import "log/slog"

type EventKind int

const (
	Press EventKind = iota + 1
	Release
)

func (that EventKind) String() string {
	switch that {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event - a mouse button edge at a screen position.
type Event struct {
	Kind EventKind
	X    float64
	Y    float64
}

// ClickLatch - button held down, with the cell under the initial press if there was one.
type ClickLatch struct {
	Active  bool
	Cell    int
	HasCell bool
}

// Pending - the cell a tick should try to play, if any.
func (that ClickLatch) Pending() (int, bool) {
	if !that.Active || !that.HasCell {
		return 0, false
	}

	return that.Cell, true
}

type locator interface {
	Locate(x, y float64) (int, error)
}

// Handler - keeps the latch up to date from queued events.
type Handler struct {
	logger  *slog.Logger
	locator locator
	latch   ClickLatch
}

func NewHandler(logger *slog.Logger, locator locator) *Handler {
	return &Handler{
		logger:  logger.With("component", "input"),
		locator: locator,
	}
}

func (that *Handler) Latch() ClickLatch {
	return that.latch
}

// Handle - a press overwrites the latch, a release clears it.
func (that *Handler) Handle(event Event) {
	switch event.Kind {
	case Press:
		cell, err := that.locator.Locate(event.X, event.Y)
		if err != nil {
			that.latch = ClickLatch{Active: true}
			that.logger.Debug("button pressed off the grid", "error", err)

			return
		}

		that.latch = ClickLatch{Active: true, Cell: cell, HasCell: true}
		that.logger.Debug("button pressed", "x", event.X, "y", event.Y, "cell", cell)
	case Release:
		that.latch = ClickLatch{}
	}
}

// Apply - handles events in arrival order.
func (that *Handler) Apply(events []Event) {
	for _, event := range events {
		that.Handle(event)
	}
}

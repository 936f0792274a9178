package platform

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/morpion/internal/input"
)

type Window struct {
	Title     string
	Width     int
	Height    int
	FrameRate int
}

// Context - window settings, input queue and clock handed to the game loop.
// Closing Done ends the loop as if the window was closed.
type Context struct {
	Logger *slog.Logger
	Window Window
	Queue  *input.Queue
	Clock  func() time.Time
	Done   <-chan struct{}
}

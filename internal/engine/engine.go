// Package engine is the frame loop without a window: queued input in,
// fixed logic ticks, then a drawing pass over the board.
package engine

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/input"
	"github.com/rocketscienceinc/morpion/internal/render"
	"github.com/rocketscienceinc/morpion/internal/tictactoe"
)

type stepper interface {
	Advance(elapsed time.Duration) int
}

type Engine struct {
	logger *slog.Logger

	controller *tictactoe.GameController
	handler    *input.Handler
	ticker     stepper
	renderer   *render.Renderer

	last time.Time
}

func New(
	logger *slog.Logger,
	controller *tictactoe.GameController,
	handler *input.Handler,
	ticker stepper,
	renderer *render.Renderer,
) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),

		controller: controller,
		handler:    handler,
		ticker:     ticker,
		renderer:   renderer,
	}
}

// Update - applies the events, then runs every logic tick that is due at now.
// The first call only starts the clock. Returns the number of ticks run.
func (that *Engine) Update(now time.Time, events []input.Event) int {
	that.handler.Apply(events)

	var elapsed time.Duration
	if !that.last.IsZero() {
		elapsed = now.Sub(that.last)
	}
	that.last = now

	ticks := that.ticker.Advance(elapsed)
	if ticks > 1 {
		that.logger.Debug("catching up", "ticks", ticks, "elapsed", elapsed)
	}

	for range ticks {
		that.controller.Tick(that.handler.Latch())
	}

	return ticks
}

func (that *Engine) Draw(canvas render.Canvas) {
	that.renderer.Draw(canvas, that.controller.Board())
}

func (that *Engine) State() entity.GameState {
	return that.controller.State()
}

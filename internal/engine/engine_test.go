package engine

import (
	"image/color"
	"testing"
	"time"

	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/input"
	"github.com/rocketscienceinc/morpion/internal/render"
	"github.com/rocketscienceinc/morpion/internal/ticker"
	"github.com/rocketscienceinc/morpion/internal/tictactoe"
	"github.com/rocketscienceinc/morpion/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCanvas struct {
	mock.Mock
}

func (that *mockCanvas) Fill(clr color.Color) {
	that.Called(clr)
}

func (that *mockCanvas) DrawGrid() {
	that.Called()
}

func (that *mockCanvas) DrawSprite(sprite render.Sprite, x, y float64) {
	that.Called(sprite, x, y)
}

type fixture struct {
	*suite.Suite
	engine     *Engine
	controller *tictactoe.GameController
	now        time.Time
	step       time.Duration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := suite.New(t)

	tick, err := ticker.New(st.Config.Game.TicksPerSecond, 0)
	require.NoError(t, err)

	controller := tictactoe.NewGameController(st.Logger, entity.PlayerX)
	handler := input.NewHandler(st.Logger, st.Grid)
	renderer := render.NewRenderer(st.Grid, render.Style{
		LineWidth:  st.Config.Board.LineWidth,
		LineColor:  st.Config.Board.LineColor.Color(),
		Background: st.Config.Board.Background.Color(),
	})

	f := &fixture{
		Suite:      st,
		engine:     New(st.Logger, controller, handler, tick, renderer),
		controller: controller,
		now:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		step:       tick.Step(),
	}

	// start the clock
	require.Equal(t, 0, f.engine.Update(f.now, nil))

	return f
}

// frame - advances the clock by d and runs one update with the events.
func (that *fixture) frame(d time.Duration, events ...input.Event) int {
	that.now = that.now.Add(d)
	return that.engine.Update(that.now, events)
}

// click - press and hold over the cell for one logic step, then release.
func (that *fixture) click(cell int) {
	x, y := that.Grid.CellCenter(cell)
	that.frame(that.step, input.Event{Kind: input.Press, X: x, Y: y})
	that.frame(0, input.Event{Kind: input.Release, X: x, Y: y})
}

func TestEngine_Update(t *testing.T) {
	t.Run("No ticks before a full step has elapsed", func(t *testing.T) {
		f := newFixture(t)
		x, y := f.Grid.CellCenter(0)

		// When: a press arrives but the step is not over yet
		ticks := f.frame(f.step/2, input.Event{Kind: input.Press, X: x, Y: y})

		// Then: the board is untouched until the next tick
		assert.Equal(t, 0, ticks)
		assert.True(t, f.controller.Board().IsFree(0))

		assert.Equal(t, 1, f.frame(f.step/2+time.Millisecond))
		assert.False(t, f.controller.Board().IsFree(0))
	})

	t.Run("Held button over several ticks plays once", func(t *testing.T) {
		f := newFixture(t)
		x, y := f.Grid.CellCenter(4)

		ticks := f.frame(5*f.step, input.Event{Kind: input.Press, X: x, Y: y})

		assert.Equal(t, 5, ticks)
		assert.Equal(t, entity.PlayerO, f.controller.LastPlay())
		cells := f.controller.Board().Cells()
		assert.Equal(t, entity.PlayerO, cells[4])
		for cell, player := range cells {
			if cell != 4 {
				assert.Equal(t, entity.NoPlayer, player)
			}
		}
	})

	t.Run("Click in the padding does nothing", func(t *testing.T) {
		f := newFixture(t)

		f.frame(3*f.step, input.Event{Kind: input.Press, X: 10, Y: 10})

		assert.Equal(t, [entity.BoardSize]entity.Player{}, f.controller.Board().Cells())
		assert.Equal(t, entity.Continue(), f.engine.State())
	})

	t.Run("Press released before the tick is lost", func(t *testing.T) {
		f := newFixture(t)
		x, y := f.Grid.CellCenter(2)

		f.frame(f.step,
			input.Event{Kind: input.Press, X: x, Y: y},
			input.Event{Kind: input.Release, X: x, Y: y},
		)

		assert.True(t, f.controller.Board().IsFree(2))
	})

	t.Run("A full game ends in a win", func(t *testing.T) {
		f := newFixture(t)

		for _, cell := range []int{0, 4, 1, 3, 2} {
			f.click(cell)
		}

		assert.Equal(t, entity.Win(entity.PlayerO), f.engine.State())

		// Then: later ticks keep reporting the result
		f.frame(2 * f.step)
		assert.Equal(t, 2, f.CountLogs("game over"))
	})
}

func TestEngine_Draw(t *testing.T) {
	f := newFixture(t)
	f.click(0)
	f.click(8)

	canvas := &mockCanvas{}
	canvas.On("Fill", f.Config.Board.Background.Color()).Once()
	canvas.On("DrawGrid").Once()
	canvas.On("DrawSprite", render.SpriteCircle, 50.0, 50.0).Once()
	canvas.On("DrawSprite", render.SpriteCross, 350.0, 350.0).Once()

	f.engine.Draw(canvas)

	canvas.AssertExpectations(t)
}

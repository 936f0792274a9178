package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/morpion/internal/apperror"
	"github.com/rocketscienceinc/morpion/internal/entity"
)

type clickSource interface {
	Pending() (int, bool)
}

// GameController - owns the board, the game state and the last mover.
// The mark placed by a move is always the opposite of the last mover.
type GameController struct {
	logger *slog.Logger

	board    *entity.Board
	state    entity.GameState
	lastPlay entity.Player
}

func NewGameController(logger *slog.Logger, lastPlay entity.Player) *GameController {
	return &GameController{
		logger: logger.With("component", "tictactoe", "round", uuid.NewString()),

		board:    entity.NewBoard(),
		state:    entity.Continue(),
		lastPlay: lastPlay,
	}
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

func (that *GameController) State() entity.GameState {
	return that.state
}

func (that *GameController) LastPlay() entity.Player {
	return that.lastPlay
}

// Play - puts the next mark into a free cell. Finished games and occupied cells are left untouched.
func (that *GameController) Play(cell int) error {
	if !that.state.IsOngoing() {
		return apperror.ErrGameFinished
	}

	next := that.lastPlay.Other()
	if err := that.board.Occupy(cell, next); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.lastPlay = next

	return nil
}

// Tick - one fixed step of game logic.
func (that *GameController) Tick(click clickSource) {
	if that.state.IsFinished() {
		that.logger.Info("game over", "state", that.state.String())
		return
	}

	if cell, ok := click.Pending(); ok {
		err := that.Play(cell)
		switch {
		case err == nil:
			that.logger.Debug("move played", "cell", cell, "player", that.lastPlay)
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrInvalidCell):
			that.logger.Debug("move ignored", "cell", cell, "reason", err)
		default:
			that.logger.Warn("move rejected", "cell", cell, "error", err)
		}
	}

	that.updateGameState()
}

func (that *GameController) updateGameState() {
	switch {
	case that.board.IsWon(that.lastPlay):
		that.state = entity.Win(that.lastPlay)
	case that.board.AllOccupied():
		that.state = entity.Tie()
	default:
		return
	}

	that.logger.Info("game finished", "state", that.state.String())
}

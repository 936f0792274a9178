package entity

import (
	"fmt"

	"github.com/rocketscienceinc/morpion/internal/apperror"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - nine cells in row-major order, a cell holding NoPlayer is free.
type Board struct {
	cells [BoardSize]Player
}

func NewBoard() *Board {
	return &Board{}
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// RowCol - splits a cell index into its zero-based row and column.
func RowCol(cell int) (int, int) {
	return cell / BoardSide, cell % BoardSide
}

func (that *Board) IsFree(cell int) bool {
	return IsValidCell(cell) && that.cells[cell] == NoPlayer
}

// Cell - returns the mark in the cell and whether the cell is occupied.
func (that *Board) Cell(cell int) (Player, bool) {
	if !IsValidCell(cell) {
		return NoPlayer, false
	}

	player := that.cells[cell]

	return player, player != NoPlayer
}

// Cells - returns a copy of the board contents.
func (that *Board) Cells() [BoardSize]Player {
	return that.cells
}

// Occupy - puts the mark into a free cell. An occupied cell is never overwritten.
func (that *Board) Occupy(cell int, player Player) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !player.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if that.cells[cell] != NoPlayer {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.cells[cell] = player

	return nil
}

func (that *Board) AllOccupied() bool {
	for _, cell := range that.cells {
		if cell == NoPlayer {
			return false
		}
	}

	return true
}

// IsWon - reports whether the player owns any full row, column or diagonal.
func (that *Board) IsWon(player Player) bool {
	if !player.IsValid() {
		return false
	}

	for _, combo := range WinCombos {
		if that.cells[combo[0]] == player && that.cells[combo[1]] == player && that.cells[combo[2]] == player {
			return true
		}
	}

	return false
}

package entity

import (
	"fmt"
	"testing"

	"github.com/rocketscienceinc/morpion/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is free
	for cell := range BoardSize {
		assert.True(t, board.IsFree(cell), "cell %d", cell)
	}
	assert.False(t, board.AllOccupied())
	assert.False(t, board.IsWon(PlayerX))
	assert.False(t, board.IsWon(PlayerO))
}

func TestBoard_Occupy(t *testing.T) {
	t.Run("Occupies a free cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X occupies the center
		err := board.Occupy(4, PlayerX)

		// Then: the cell holds X and is no longer free
		require.NoError(t, err)
		player, occupied := board.Cell(4)
		assert.True(t, occupied)
		assert.Equal(t, PlayerX, player)
		assert.False(t, board.IsFree(4))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where O holds cell 0
		board := NewBoard()
		require.NoError(t, board.Occupy(0, PlayerO))

		// When: X tries to take the same cell
		err := board.Occupy(0, PlayerX)

		// Then: ErrCellOccupied is returned and the cell keeps its mark
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		player, _ := board.Cell(0)
		assert.Equal(t, PlayerO, player)
	})

	t.Run("Error on invalid player mark", func(t *testing.T) {
		board := NewBoard()

		err := board.Occupy(0, NoPlayer)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.True(t, board.IsFree(0))
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		board := NewBoard()

		for _, cell := range []int{-1, 9, 20} {
			err := board.Occupy(cell, PlayerX)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell, "cell %d", cell)
			assert.False(t, board.IsFree(cell))
		}

		assert.Equal(t, [BoardSize]Player{}, board.Cells())
	})
}

func TestBoard_IsWon(t *testing.T) {
	for _, player := range []Player{PlayerX, PlayerO} {
		for _, combo := range WinCombos {
			t.Run(fmt.Sprintf("%s owns %v", player, combo), func(t *testing.T) {
				// Given: a board where only this line is filled by the player
				board := NewBoard()
				for _, cell := range combo {
					require.NoError(t, board.Occupy(cell, player))
				}

				// Then: the player wins and the opponent does not
				assert.True(t, board.IsWon(player))
				assert.False(t, board.IsWon(player.Other()))
			})
		}
	}

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: the top row split between both players
		board := NewBoard()
		require.NoError(t, board.Occupy(0, PlayerX))
		require.NoError(t, board.Occupy(1, PlayerO))
		require.NoError(t, board.Occupy(2, PlayerX))

		// Then: nobody wins
		assert.False(t, board.IsWon(PlayerX))
		assert.False(t, board.IsWon(PlayerO))
	})

	t.Run("NoPlayer never wins", func(t *testing.T) {
		assert.False(t, NewBoard().IsWon(NoPlayer))
	})
}

func TestBoard_AllOccupied(t *testing.T) {
	// Every Free/Occupied combination of the nine cells.
	for mask := range 1 << BoardSize {
		board := NewBoard()
		for cell := range BoardSize {
			if mask&(1<<cell) != 0 {
				mark := PlayerX
				if cell%2 == 1 {
					mark = PlayerO
				}
				require.NoError(t, board.Occupy(cell, mark))
			}
		}

		assert.Equal(t, mask == 1<<BoardSize-1, board.AllOccupied(), "mask %09b", mask)
	}
}

func TestRowCol(t *testing.T) {
	for cell := range BoardSize {
		row, col := RowCol(cell)
		assert.Equal(t, cell, row*BoardSide+col)
		assert.Equal(t, cell/3, row)
		assert.Equal(t, cell%3, col)
	}
}

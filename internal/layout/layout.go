// Package layout maps between screen pixels and board cells.
//
// Placement and hit testing share the same grid: a sprite for cell i is drawn
// at CellOrigin(i) and every pixel inside that square maps back to i.
package layout

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/morpion/internal/apperror"
	"github.com/rocketscienceinc/morpion/internal/entity"
)

// Padding around the grid. Left and right share the horizontal value.
type Padding struct {
	Horizontal float64
	Top        float64
	Bottom     float64
}

type Grid struct {
	OriginX  float64
	OriginY  float64
	CellSize float64
}

func NewGrid(cellSize float64, padding Padding) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size must be positive, got %v", apperror.ErrInvalidConfig, cellSize)
	}

	if padding.Horizontal < 0 || padding.Top < 0 || padding.Bottom < 0 {
		return Grid{}, fmt.Errorf("%w: padding must not be negative", apperror.ErrInvalidConfig)
	}

	return Grid{
		OriginX:  padding.Horizontal,
		OriginY:  padding.Top,
		CellSize: cellSize,
	}, nil
}

// Side - the length of the drawn grid in pixels.
func (that Grid) Side() float64 {
	return that.CellSize * entity.BoardSide
}

// CellAt - returns the cell under the pixel, ok is false outside the 3x3 region.
func (that Grid) CellAt(x, y float64) (int, bool) {
	col := math.Floor((x - that.OriginX) / that.CellSize)
	row := math.Floor((y - that.OriginY) / that.CellSize)

	if col < 0 || col >= entity.BoardSide || row < 0 || row >= entity.BoardSide {
		return 0, false
	}

	return int(row)*entity.BoardSide + int(col), true
}

// Locate - CellAt with an error for positions off the grid.
func (that Grid) Locate(x, y float64) (int, error) {
	cell, ok := that.CellAt(x, y)
	if !ok {
		return 0, fmt.Errorf("%w: (%v, %v)", apperror.ErrOutsideGrid, x, y)
	}

	return cell, nil
}

// CellOrigin - top-left corner of the cell, where its sprite is placed.
func (that Grid) CellOrigin(cell int) (float64, float64) {
	row, col := entity.RowCol(cell)

	return that.OriginX + float64(col)*that.CellSize, that.OriginY + float64(row)*that.CellSize
}

func (that Grid) CellCenter(cell int) (float64, float64) {
	x, y := that.CellOrigin(cell)

	return x + that.CellSize/2, y + that.CellSize/2
}

// ScreenSize - window dimensions for the grid and its padding.
func ScreenSize(grid Grid, padding Padding) (int, int) {
	width := grid.Side() + 2*padding.Horizontal
	height := grid.Side() + padding.Top + padding.Bottom

	return int(math.Ceil(width)), int(math.Ceil(height))
}

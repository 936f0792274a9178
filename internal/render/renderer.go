package render

import (
	"image/color"

	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/layout"
)

type Sprite int

const (
	SpriteCross Sprite = iota + 1
	SpriteCircle
)

// Line - a straight stroke from (X0, Y0) to (X1, Y1).
type Line struct {
	X0, Y0 float64
	X1, Y1 float64
}

type Style struct {
	LineWidth  float64
	LineColor  color.Color
	Background color.Color
}

// Canvas - the drawing backend for one frame.
type Canvas interface {
	Fill(clr color.Color)
	DrawGrid()
	DrawSprite(sprite Sprite, x, y float64)
}

// GridLines - the two vertical and two horizontal lines of the grid.
func GridLines(grid layout.Grid) []Line {
	side := grid.Side()
	lines := make([]Line, 0, 2*(entity.BoardSide-1))

	for i := 1; i < entity.BoardSide; i++ {
		x := grid.OriginX + float64(i)*grid.CellSize
		lines = append(lines, Line{X0: x, Y0: grid.OriginY, X1: x, Y1: grid.OriginY + side})
	}

	for i := 1; i < entity.BoardSide; i++ {
		y := grid.OriginY + float64(i)*grid.CellSize
		lines = append(lines, Line{X0: grid.OriginX, Y0: y, X1: grid.OriginX + side, Y1: y})
	}

	return lines
}

func SpriteFor(player entity.Player) (Sprite, bool) {
	switch player {
	case entity.PlayerX:
		return SpriteCross, true
	case entity.PlayerO:
		return SpriteCircle, true
	default:
		return 0, false
	}
}

type Renderer struct {
	grid  layout.Grid
	style Style
}

func NewRenderer(grid layout.Grid, style Style) *Renderer {
	return &Renderer{
		grid:  grid,
		style: style,
	}
}

func (that *Renderer) Style() Style {
	return that.style
}

func (that *Renderer) GridLines() []Line {
	return GridLines(that.grid)
}

// Draw - background, cached grid, then one sprite per occupied cell.
func (that *Renderer) Draw(canvas Canvas, board *entity.Board) {
	canvas.Fill(that.style.Background)
	canvas.DrawGrid()

	for cell, player := range board.Cells() {
		sprite, ok := SpriteFor(player)
		if !ok {
			continue
		}

		x, y := that.grid.CellOrigin(cell)
		canvas.DrawSprite(sprite, x, y)
	}
}

package platform

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/morpion/internal/assets"
	"github.com/rocketscienceinc/morpion/internal/engine"
	"github.com/rocketscienceinc/morpion/internal/input"
	"github.com/rocketscienceinc/morpion/internal/render"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game - ebiten adapter around the engine.
type Game struct {
	ctx    *Context
	engine *engine.Engine
	canvas *canvas
}

func New(ctx *Context, gameEngine *engine.Engine, renderer *render.Renderer, sprites *assets.Sprites) *Game {
	return &Game{
		ctx:    ctx,
		engine: gameEngine,
		canvas: &canvas{
			width:  ctx.Window.Width,
			height: ctx.Window.Height,
			lines:  renderer.GridLines(),
			style:  renderer.Style(),
			cross:  ebiten.NewImageFromImage(sprites.Cross),
			circle: ebiten.NewImageFromImage(sprites.Circle),
		},
	}
}

func (that *Game) Update() error {
	select {
	case <-that.ctx.Done:
		return ebiten.Termination
	default:
	}

	that.pollMouse()
	that.engine.Update(that.ctx.Clock(), that.ctx.Queue.Drain())

	return nil
}

func (that *Game) Draw(screen *ebiten.Image) {
	that.canvas.screen = screen
	that.engine.Draw(that.canvas)
}

func (that *Game) Layout(_, _ int) (int, int) {
	return that.ctx.Window.Width, that.ctx.Window.Height
}

// pollMouse - queues button edges, any button counts.
func (that *Game) pollMouse() {
	x, y := ebiten.CursorPosition()

	for _, button := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(button) {
			that.ctx.Queue.Push(input.Event{Kind: input.Release, X: float64(x), Y: float64(y)})
		}

		if inpututil.IsMouseButtonJustPressed(button) {
			that.ctx.Queue.Push(input.Event{Kind: input.Press, X: float64(x), Y: float64(y)})
		}
	}
}

// Run - opens the window and blocks until it is closed.
func Run(ctx *Context, game *Game) error {
	log := ctx.Logger.With("component", "platform")

	ebiten.SetWindowSize(ctx.Window.Width, ctx.Window.Height)
	ebiten.SetWindowTitle(ctx.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(ctx.Window.FrameRate)

	log.Info("Opening window", "title", ctx.Window.Title, "width", ctx.Window.Width, "height", ctx.Window.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Window closed", "state", game.engine.State().String())

	return nil
}

// canvas - render.Canvas over the current ebiten frame.
type canvas struct {
	screen *ebiten.Image

	width  int
	height int
	lines  []render.Line
	style  render.Style

	grid   *ebiten.Image
	cross  *ebiten.Image
	circle *ebiten.Image
}

func (that *canvas) Fill(clr color.Color) {
	that.screen.Fill(clr)
}

// DrawGrid - the lines are stroked once into an offscreen image and reused every frame.
func (that *canvas) DrawGrid() {
	if that.grid == nil {
		that.grid = ebiten.NewImage(that.width, that.height)
		for _, line := range that.lines {
			vector.StrokeLine(that.grid,
				float32(line.X0), float32(line.Y0), float32(line.X1), float32(line.Y1),
				float32(that.style.LineWidth), that.style.LineColor, true)
		}
	}

	that.screen.DrawImage(that.grid, &ebiten.DrawImageOptions{})
}

func (that *canvas) DrawSprite(sprite render.Sprite, x, y float64) {
	var img *ebiten.Image

	switch sprite {
	case render.SpriteCross:
		img = that.cross
	case render.SpriteCircle:
		img = that.circle
	default:
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	that.screen.DrawImage(img, op)
}

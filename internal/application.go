package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/morpion/internal/assets"
	"github.com/rocketscienceinc/morpion/internal/config"
	"github.com/rocketscienceinc/morpion/internal/engine"
	"github.com/rocketscienceinc/morpion/internal/input"
	"github.com/rocketscienceinc/morpion/internal/layout"
	"github.com/rocketscienceinc/morpion/internal/platform"
	"github.com/rocketscienceinc/morpion/internal/render"
	"github.com/rocketscienceinc/morpion/internal/ticker"
	"github.com/rocketscienceinc/morpion/internal/tictactoe"
)

// Components - everything the window needs, built before it opens.
type Components struct {
	Window   platform.Window
	Engine   *engine.Engine
	Renderer *render.Renderer
	Sprites  *assets.Sprites
	Queue    *input.Queue
}

// Build - wires the game from configuration. Any error here is fatal at startup.
func Build(logger *slog.Logger, conf *config.Config) (*Components, error) {
	grid, err := conf.Board.Grid()
	if err != nil {
		return nil, fmt.Errorf("could not build grid: %w", err)
	}

	lastPlay, err := conf.Game.LastPlay()
	if err != nil {
		return nil, fmt.Errorf("could not read first player: %w", err)
	}

	tick, err := ticker.New(conf.Game.TicksPerSecond, conf.Game.MaxTicksPerUpdate)
	if err != nil {
		return nil, fmt.Errorf("could not create ticker: %w", err)
	}

	sprites, err := assets.Load(conf.ResourcesDir)
	if err != nil {
		return nil, fmt.Errorf("could not load sprites: %w", err)
	}

	width, height := layout.ScreenSize(grid, conf.Board.LayoutPadding())

	renderer := render.NewRenderer(grid, render.Style{
		LineWidth:  conf.Board.LineWidth,
		LineColor:  conf.Board.LineColor.Color(),
		Background: conf.Board.Background.Color(),
	})
	controller := tictactoe.NewGameController(logger, lastPlay)
	handler := input.NewHandler(logger, grid)

	return &Components{
		Window: platform.Window{
			Title:     conf.Window.Title,
			Width:     width,
			Height:    height,
			FrameRate: conf.Window.FrameRate,
		},
		Engine:   engine.New(logger, controller, handler, tick, renderer),
		Renderer: renderer,
		Sprites:  sprites,
		Queue:    input.NewQueue(),
	}, nil
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	components, err := Build(logger, conf)
	if err != nil {
		return err
	}

	platformCtx := &platform.Context{
		Logger: logger,
		Window: components.Window,
		Queue:  components.Queue,
		Clock:  time.Now,
		Done:   ctx.Done(),
	}

	game := platform.New(platformCtx, components.Engine, components.Renderer, components.Sprites)
	if err = platform.Run(platformCtx, game); err != nil {
		return fmt.Errorf("window error: %w", err)
	}

	return nil
}

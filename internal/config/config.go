package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/morpion/internal/apperror"
	"github.com/rocketscienceinc/morpion/internal/entity"
	"github.com/rocketscienceinc/morpion/internal/layout"
)

const (
	defaultPadding = 50

	// one tick per nanosecond, the resolution of time.Duration
	maxTicksPerSecond = int(time.Second)
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"MORPION_LOG_LEVEL" env-default:"info"`
	ResourcesDir string `yaml:"resources-dir" env:"MORPION_RESOURCES_DIR" env-default:"./resources"`
	Window       Window `yaml:"window"`
	Board        Board  `yaml:"board"`
	Game         Game   `yaml:"game"`
}

type Window struct {
	Title     string `yaml:"title" env:"MORPION_WINDOW_TITLE" env-default:"Morpion"`
	FrameRate int    `yaml:"frame-rate" env:"MORPION_FRAME_RATE" env-default:"60"`
}

type Board struct {
	CellSize   float64 `yaml:"cell-size" env:"MORPION_CELL_SIZE" env-default:"150"`
	Padding    Padding `yaml:"padding"`
	LineWidth  float64 `yaml:"line-width" env-default:"6.5"`
	LineColor  RGB     `yaml:"line-color" env-default:"55,60,75"`
	Background RGB     `yaml:"background" env-default:"30,30,38"`
}

// Padding - zero is valid here, so the defaults come from Default and not from env-default.
type Padding struct {
	Horizontal float64 `yaml:"horizontal"`
	Top        float64 `yaml:"top"`
	Bottom     float64 `yaml:"bottom"`
}

type Game struct {
	TicksPerSecond    int    `yaml:"ticks-per-second" env:"MORPION_TICKS_PER_SECOND" env-default:"18"`
	InitialLastPlay   string `yaml:"initial-last-play" env:"MORPION_INITIAL_LAST_PLAY" env-default:"X"`
	MaxTicksPerUpdate int    `yaml:"max-ticks-per-update"`
}

// RGB - colour written as a list of three components, e.g. [30, 30, 38].
type RGB []int

func (that RGB) Valid() bool {
	if len(that) != 3 {
		return false
	}

	for _, component := range that {
		if component < 0 || component > 0xff {
			return false
		}
	}

	return true
}

func (that RGB) Color() color.RGBA {
	if !that.Valid() {
		return color.RGBA{A: 0xff}
	}

	return color.RGBA{R: uint8(that[0]), G: uint8(that[1]), B: uint8(that[2]), A: 0xff}
}

// Default - values that env-default cannot express because zero is allowed.
func Default() *Config {
	return &Config{
		Board: Board{
			Padding: Padding{
				Horizontal: defaultPadding,
				Top:        defaultPadding,
				Bottom:     defaultPadding,
			},
		},
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file when it exists, otherwise falls back to environment and defaults.
func Load(path string) (*Config, error) {
	config := Default()

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch {
	case that.Board.CellSize <= 0:
		return fmt.Errorf("%w: board.cell-size must be positive", apperror.ErrInvalidConfig)
	case that.Board.LineWidth <= 0:
		return fmt.Errorf("%w: board.line-width must be positive", apperror.ErrInvalidConfig)
	case !that.Board.LineColor.Valid() || !that.Board.Background.Valid():
		return fmt.Errorf("%w: colours need three components in 0..255", apperror.ErrInvalidConfig)
	case that.Window.FrameRate <= 0:
		return fmt.Errorf("%w: window.frame-rate must be positive", apperror.ErrInvalidConfig)
	case that.Game.TicksPerSecond <= 0:
		return fmt.Errorf("%w: game.ticks-per-second must be positive", apperror.ErrInvalidConfig)
	case that.Game.TicksPerSecond > maxTicksPerSecond:
		return fmt.Errorf("%w: game.ticks-per-second must not exceed %d", apperror.ErrInvalidConfig, maxTicksPerSecond)
	case that.Game.MaxTicksPerUpdate < 0:
		return fmt.Errorf("%w: game.max-ticks-per-update must not be negative", apperror.ErrInvalidConfig)
	}

	if _, err := that.Game.LastPlay(); err != nil {
		return err
	}

	if _, err := that.Board.Grid(); err != nil {
		return err
	}

	return nil
}

func (that *Game) LastPlay() (entity.Player, error) {
	return entity.ParsePlayer(that.InitialLastPlay)
}

func (that *Board) LayoutPadding() layout.Padding {
	return layout.Padding{
		Horizontal: that.Padding.Horizontal,
		Top:        that.Padding.Top,
		Bottom:     that.Padding.Bottom,
	}
}

func (that *Board) Grid() (layout.Grid, error) {
	grid, err := layout.NewGrid(that.CellSize, that.LayoutPadding())
	if err != nil {
		return layout.Grid{}, fmt.Errorf("invalid board: %w", err)
	}

	return grid, nil
}

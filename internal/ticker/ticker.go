// Package ticker runs game logic at a fixed rate regardless of frame rate.
package ticker

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/morpion/internal/apperror"
)

// Ticker - accumulates elapsed time and hands it out in whole steps.
type Ticker struct {
	step     time.Duration
	maxSteps int
	residual time.Duration
}

// New - ticksPerSecond steps per second, at most maxSteps per Advance (0 means no limit).
func New(ticksPerSecond, maxSteps int) (*Ticker, error) {
	if ticksPerSecond <= 0 {
		return nil, fmt.Errorf("%w: ticks per second must be positive, got %d", apperror.ErrInvalidConfig, ticksPerSecond)
	}

	if maxSteps < 0 {
		return nil, fmt.Errorf("%w: max steps must not be negative, got %d", apperror.ErrInvalidConfig, maxSteps)
	}

	step := time.Second / time.Duration(ticksPerSecond)
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d ticks per second is finer than the clock resolution", apperror.ErrInvalidConfig, ticksPerSecond)
	}

	return &Ticker{
		step:     step,
		maxSteps: maxSteps,
	}, nil
}

func (that *Ticker) Step() time.Duration {
	return that.step
}

// Advance - adds elapsed time and returns how many steps are due now.
// The remainder is kept for the next call. When the step limit cuts a
// catch-up short the backlog is dropped.
func (that *Ticker) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		that.residual += elapsed
	}

	steps := int(that.residual / that.step)
	that.residual -= time.Duration(steps) * that.step

	if that.maxSteps > 0 && steps > that.maxSteps {
		steps = that.maxSteps
		that.residual = 0
	}

	return steps
}

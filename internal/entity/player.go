package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/morpion/internal/apperror"
)

// Player - the mark a player puts on the board.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"

	// NoPlayer marks a free cell.
	NoPlayer Player = ""
)

// Other - returns the opponent's mark, NoPlayer for anything that is not a mark.
func (that Player) Other() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoPlayer
	}
}

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func ParsePlayer(mark string) (Player, error) {
	player := Player(strings.ToUpper(strings.TrimSpace(mark)))
	if !player.IsValid() {
		return NoPlayer, fmt.Errorf("%w: unknown player mark %q", apperror.ErrInvalidConfig, mark)
	}

	return player, nil
}

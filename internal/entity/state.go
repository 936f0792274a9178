package entity

import "fmt"

type Status string

const (
	StatusContinue Status = "continue"
	StatusWin      Status = "win"
	StatusTie      Status = "tie"
)

// GameState - Continue, Win(Player) or Tie. Winner is set only for StatusWin.
type GameState struct {
	Status Status
	Winner Player
}

func Continue() GameState {
	return GameState{Status: StatusContinue}
}

func Win(player Player) GameState {
	return GameState{Status: StatusWin, Winner: player}
}

func Tie() GameState {
	return GameState{Status: StatusTie}
}

func (that GameState) IsOngoing() bool {
	return that.Status == StatusContinue
}

func (that GameState) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusTie
}

func (that GameState) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("Win(%s)", that.Winner)
	case StatusTie:
		return "Tie"
	default:
		return "Continue"
	}
}

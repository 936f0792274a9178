package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidPlayer = errors.New("invalid player mark")
	ErrOutsideGrid   = errors.New("position is outside the grid")
	ErrAssetNotFound = errors.New("asset not found")
	ErrInvalidConfig = errors.New("invalid configuration")
)

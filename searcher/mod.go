package searcher

import (
	"errors"

	"checkers/game"
)

var (
	ErrEmptyPlayer     = errors.New("player must not be empty")
	ErrSamePlayers     = errors.New("maximizing and minimizing players must differ")
	ErrInvalidMaxPlies = errors.New("max plies must be positive")
	// ErrNoActions is raised (as a panic) when a state that is neither
	// terminal nor at the depth limit offers no action to the player to move.
	ErrNoActions = errors.New("non-terminal state has no actions")
)

// Result is the outcome of evaluating a search node. Action is nil at
// terminal and depth-cutoff nodes.
type Result struct {
	Value  float64
	Action game.Action
}

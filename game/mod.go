package game

// Action is an opaque move produced by a State. Searchers never inspect it,
// they only hand it back to the State that enumerated it.
type Action interface{}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Actions lists the legal actions for player in a deterministic order
	Actions(player string) []Action
	// Play applies action and returns the successor state
	Play(Action) State
	// Terminal reports whether the game is over and who won ("" for a draw)
	Terminal() (terminal bool, winner string)
}

// Evaluator scores a state for a designated maximizing player: larger values
// favor the maximizing player, smaller values favor the minimizing player.
type Evaluator interface {
	Evaluate(State) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(State) float64

func (f EvaluatorFunc) Evaluate(s State) float64 {
	return f(s)
}

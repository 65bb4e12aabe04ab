package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Agent interface {
	// FindMove returns the action to play on state and the metrics of the
	// search that produced it (zero when the agent does not search)
	FindMove(state game.State) (game.Action, metrics.SearchMetric)
}

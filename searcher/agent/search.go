package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type searchAgent struct {
	search *searcher.AlphaBeta
}

// NewSearchAgent returns an agent playing the alpha-beta search's best action
// for its maximizing player.
func NewSearchAgent(search *searcher.AlphaBeta) Agent {
	return searchAgent{search: search}
}

func (a searchAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	result, metric := a.search.Search(state)
	return result.Action, metric
}

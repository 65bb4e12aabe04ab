package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	player string
	rng    *rand.Rand
}

// NewRandomAgent returns a baseline agent playing a uniformly random legal
// action. The same seed replays the same game against a deterministic opponent.
func NewRandomAgent(player string, seed uint64) Agent {
	return &randomAgent{player: player, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.Actions(a.player)
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}
}

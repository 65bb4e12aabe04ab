package agent

import (
	"bufio"
	"fmt"
	"io"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

// Strategies that New knows how to build.
const (
	AlphaBeta = "alphabeta"
	Random    = "random"
	Human     = "human"
)

// Config selects and parameterizes an agent.
type Config struct {
	Strategy  string
	MaxPlies  int
	Evaluator string
	Seed      uint64
}

// New builds the agent described by config to play for player. in and out are
// only used by human agents.
func New(config Config, player string, in *bufio.Scanner, out io.Writer) (Agent, error) {
	switch config.Strategy {
	case AlphaBeta, "":
		evaluator, ok := game.NewEvaluator(config.Evaluator, player, game.Opponent(player))
		if !ok {
			return nil, fmt.Errorf("unknown evaluator %q", config.Evaluator)
		}
		options := []searcher.Option{
			searcher.WithEvaluator(evaluator),
			searcher.WithMetrics(metrics.NewCollector()),
		}
		if config.MaxPlies != 0 {
			options = append(options, searcher.WithMaxPlies(config.MaxPlies))
		}
		search, err := searcher.NewAlphaBeta(player, game.Opponent(player), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create search for %s: %w", player, err)
		}
		return NewSearchAgent(search), nil
	case Random:
		return NewRandomAgent(player, config.Seed), nil
	case Human:
		return NewHumanAgent(player, in, out), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
	}
}

package searcher

import (
	"fmt"
	"math"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
)

type Option func(s *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning. Its
// configuration is fixed at construction.
type AlphaBeta struct {
	maxPlayer string
	minPlayer string
	maxPlies  int
	evaluator game.Evaluator
	pruning   bool
	metrics   metrics.Collector
}

func WithMaxPlies(plies int) Option {
	return func(s *AlphaBeta) {
		s.maxPlies = plies
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(s *AlphaBeta) {
		if evaluator != nil {
			s.evaluator = evaluator
		}
	}
}

// WithoutPruning explores every branch, turning the search into plain
// minimax. Useful to check pruned results against.
func WithoutPruning() Option {
	return func(s *AlphaBeta) {
		s.pruning = false
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *AlphaBeta) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// NewAlphaBeta returns a searcher choosing actions for maxPlayer against
// minPlayer. Without options it searches meta.DEFAULT_MAX_PLIES deep and
// scores positions with game.PieceCount.
func NewAlphaBeta(maxPlayer, minPlayer string, options ...Option) (*AlphaBeta, error) {
	s := &AlphaBeta{ // Default values
		maxPlayer: maxPlayer,
		minPlayer: minPlayer,
		maxPlies:  meta.DEFAULT_MAX_PLIES,
		evaluator: game.NewPieceCount(maxPlayer, minPlayer),
		pruning:   true,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}

	if maxPlayer == "" || minPlayer == "" {
		return nil, ErrEmptyPlayer
	}
	if maxPlayer == minPlayer {
		return nil, fmt.Errorf("%w: both are %q", ErrSamePlayers, maxPlayer)
	}
	if s.maxPlies <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxPlies, s.maxPlies)
	}
	return s, nil
}

func (s *AlphaBeta) MaxPlayer() string { return s.maxPlayer }
func (s *AlphaBeta) MinPlayer() string { return s.minPlayer }
func (s *AlphaBeta) MaxPlies() int     { return s.maxPlies }

// BestAction returns the best action for the maximizing player, or nil when
// state is terminal.
func (s *AlphaBeta) BestAction(state game.State) game.Action {
	result, _ := s.Search(state)
	return result.Action
}

// Search evaluates state as a max node with an unbounded window and returns
// the root value with its chosen action, plus the metrics collected on the
// way. The input state is not modified.
func (s *AlphaBeta) Search(state game.State) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.maxPlies, s.pruning)
	value, action := s.maxValue(state, math.Inf(-1), math.Inf(1), 0)
	return Result{Value: value, Action: action}, s.metrics.Complete()
}

// cutoff reports whether the search should stop at this node: the game is
// over or the depth limit has been reached.
func (s *AlphaBeta) cutoff(state game.State, ply int) bool {
	terminal, _ := state.Terminal()
	return terminal || ply >= s.maxPlies
}

func (s *AlphaBeta) evaluate(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluator.Evaluate(state)
}

func (s *AlphaBeta) actions(state game.State, player string) []game.Action {
	actions := state.Actions(player)
	if len(actions) == 0 {
		panic(fmt.Errorf("%w for player %q", ErrNoActions, player))
	}
	return actions
}

// maxValue finds the action maximizing utility knowing the opponent will
// answer by minimizing it. alpha is the value max can already guarantee on
// the path to this node, beta the value min can.
func (s *AlphaBeta) maxValue(state game.State, alpha, beta float64, ply int) (float64, game.Action) {
	s.metrics.AddNode()
	if s.cutoff(state, ply) {
		return s.evaluate(state), nil
	}

	actions := s.actions(state, s.maxPlayer)
	utility := math.Inf(-1)
	best := actions[0]
	for _, a := range actions {
		value, _ := s.minValue(state.Play(a), alpha, beta, ply+1)
		// Strict: on ties the earlier action is kept
		if value > utility {
			utility = value
			best = a
		}
		alpha = math.Max(alpha, utility)
		if s.pruning && beta <= alpha {
			s.metrics.AddPrune()
			break
		}
	}
	return utility, best
}

// minValue mirrors maxValue for the minimizing player.
func (s *AlphaBeta) minValue(state game.State, alpha, beta float64, ply int) (float64, game.Action) {
	s.metrics.AddNode()
	if s.cutoff(state, ply) {
		return s.evaluate(state), nil
	}

	actions := s.actions(state, s.minPlayer)
	utility := math.Inf(1)
	best := actions[0]
	for _, a := range actions {
		value, _ := s.maxValue(state.Play(a), alpha, beta, ply+1)
		if value < utility {
			utility = value
			best = a
		}
		beta = math.Min(beta, utility)
		if s.pruning && beta <= alpha {
			s.metrics.AddPrune()
			break
		}
	}
	return utility, best
}

package engine

import (
	"fmt"
	"reflect"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var _ Runner = (*Engine)(nil)

// Observer is called after every played action with the new state.
type Observer func(step int, player string, action game.Action, state game.State)

type Engine struct {
	State    game.State
	Players  []string
	Agents   []agent.Agent
	MaxTurns int
	Observer Observer
}

// LocalEngine sets up a game in which agents[i] plays for players[i]. Turns
// alternate in the order given, so players[0] moves first on state.
func LocalEngine(players []string, agents []agent.Agent, state game.State) *Engine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 2 {
		panic("need at least two players")
	}

	return &Engine{
		State:    state,
		Players:  players,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until the state is terminal or MaxTurns
// actions have been played. Winner stays empty on a draw or an unfinished game.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Players[0],
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Players[0])

	step := 0
	for {
		terminal, winner := e.State.Terminal()
		if terminal {
			gameMetric.Winner = winner
			break
		}
		if step >= e.MaxTurns {
			log.Warn().Msgf("stopped after %d turns without a winner", step)
			break
		}

		index := step % len(e.Agents)
		player := e.Players[index]
		log.Debug().Msgf("turn %d: %s to move", step+1, player)

		action, searchMetric := e.Agents[index].FindMove(e.State)
		if err := validate(e.State, player, action); err != nil {
			gameMetric.EndTime = time.Now()
			gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
			gameMetric.TotalMoves = step
			return gameMetric, moveMetrics, fmt.Errorf("turn %d, player %s: %w", step+1, player, err)
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Action:       fmt.Sprint(action),
			SearchMetric: searchMetric,
		})
		log.Info().
			Str("player", player).
			Str("action", fmt.Sprint(action)).
			Int("nodes", searchMetric.Nodes).
			Int("evaluations", searchMetric.Evaluations).
			Dur("duration", searchMetric.Duration).
			Msgf("turn %d", step)

		e.State = e.State.Play(action)
		if e.Observer != nil {
			e.Observer(step, player, action, e.State)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	if gameMetric.Winner == "" {
		log.Info().Msgf("game ended in a draw after %d turns", step)
	} else {
		log.Info().Msgf("game over after %d turns, winner: %s", step, gameMetric.Winner)
	}
	return gameMetric, moveMetrics, nil
}

// validate checks that action is one of the actions state offers player.
func validate(state game.State, player string, action game.Action) error {
	if action == nil {
		return ErrNoAction
	}
	legal := state.Actions(player)
	if slices.IndexFunc(legal, func(a game.Action) bool { return reflect.DeepEqual(a, action) }) < 0 {
		return fmt.Errorf("%w: %v", ErrIllegalAction, action)
	}
	return nil
}

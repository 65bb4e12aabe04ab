package experiments

import (
	"fmt"
	"time"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

// Experiment is a series of games between pairs of agents. In every matchup
// the first agent plays red and the second black; the side moving first
// alternates from game to game.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	Matchups [][]metrics.AgentConfig
	NumGames int
	MaxTurns int
	// Start returns the opening position, NewBoard when nil
	Start func() *game.Board
}

// Results holds the records collected while running an experiment.
type Results struct {
	Setup       metrics.Setup
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// DepthExperiment pairs a baseline agent against alpha-beta agents searching
// each of the given depths.
func DepthExperiment(baseline metrics.AgentConfig, plies []int, evaluator string) Experiment {
	baseline.ID = 0
	configs := []metrics.AgentConfig{baseline}
	matchups := [][]metrics.AgentConfig{}
	for i, p := range plies {
		config := metrics.AgentConfig{ID: i + 1, Strategy: agent.AlphaBeta, MaxPlies: p, Evaluator: evaluator}
		configs = append(configs, config)
		matchups = append(matchups, []metrics.AgentConfig{config, baseline})
	}
	return Experiment{
		Name:     "depth",
		Configs:  configs,
		Matchups: matchups,
		NumGames: NumGames,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run plays every matchup of the experiment and returns the records.
func Run(exp Experiment) (Results, error) {
	start := time.Now()
	count := 0
	results := Results{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.Matchups {
		config1 := matchup[0]
		config2 := matchup[1]
		wins := map[string]int{}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.Matchups), config1, config2)

		for i := 0; i < exp.NumGames; i++ {
			first := game.Players[i%2]
			gameMetric, moveMetrics, err := runGame(exp, config1, config2, first)
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			wins[gameMetric.Winner]++
			results.GameRecords = append(results.GameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.MoveRecords = append(results.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(exp.Matchups), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d: agent %d won %d, agent %d won %d, %d draws",
			mi+1, len(exp.Matchups), config1.ID, wins[game.Red], config2.ID, wins[game.Black], wins[""])
	}

	end := time.Now()
	results.Setup = metrics.Setup{
		Name:      exp.Name,
		Matchups:  exp.Matchups,
		NumGames:  exp.NumGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	log.Info().Msgf("completed %s experiment", exp.Name)
	return results, nil
}

// Write stores the experiment's setup, agent configs and records under root.
func Write(root string, exp Experiment, results Results) (string, error) {
	writer, err := metrics.NewWriter(root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(results.Setup); err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(results.GameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(results.MoveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game with config1 playing red and config2 black.
func runGame(exp Experiment, config1, config2 metrics.AgentConfig, first string) (metrics.GameMetric, []metrics.MoveMetric, error) {
	red, err := agent.New(agentConfig(config1), game.Red, nil, nil)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	black, err := agent.New(agentConfig(config2), game.Black, nil, nil)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	board := game.NewBoard()
	if exp.Start != nil {
		board = exp.Start()
	}
	players := []string{game.Red, game.Black}
	agents := []agent.Agent{red, black}
	if first == game.Black {
		players = []string{game.Black, game.Red}
		agents = []agent.Agent{black, red}
	}

	e := engine.LocalEngine(players, agents, board.WithNext(first))
	if exp.MaxTurns > 0 {
		e.MaxTurns = exp.MaxTurns
	}
	return e.Run()
}

func agentConfig(config metrics.AgentConfig) agent.Config {
	return agent.Config{
		Strategy:  config.Strategy,
		MaxPlies:  config.MaxPlies,
		Evaluator: config.Evaluator,
		Seed:      config.Seed,
	}
}

package main

import (
	"fmt"

	"checkers/experiments"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	expPlies     []int
	expBaseline  string
	expBasePlies int
	expSeed      uint64
	expEvaluator string
	expGames     int
	expMaxTurns  int
	expBoard     string
	expOut       string

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Match alpha-beta agents of several depths against a baseline",
		RunE:  runExperiment,
	}
)

func init() {
	f := experimentCmd.Flags()
	f.IntSliceVar(&expPlies, "plies", []int{1, 2, 3, 4}, "search depths to evaluate")
	f.StringVar(&expBaseline, "baseline", agent.Random, "strategy of the baseline agent (random, alphabeta)")
	f.IntVar(&expBasePlies, "baseline-plies", 1, "search depth of an alphabeta baseline")
	f.Uint64Var(&expSeed, "seed", 1, "seed of a random baseline")
	f.StringVar(&expEvaluator, "evaluator", "piececount", "evaluation function (piececount, positional)")
	f.IntVar(&expGames, "games", experiments.NumGames, "games per matchup")
	f.IntVar(&expMaxTurns, "max-turns", meta.MAX_TURNS, "turn limit per game")
	f.StringVar(&expBoard, "board", "", "library board to start from")
	f.StringVar(&expOut, "out", "", "directory to write the records to, nothing is written when empty")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	if expBaseline == agent.Human {
		return fmt.Errorf("a human cannot be the baseline")
	}
	if _, ok := game.NewEvaluator(expEvaluator, game.Red, game.Black); !ok {
		return fmt.Errorf("unknown evaluator %q", expEvaluator)
	}
	if expGames <= 0 {
		return fmt.Errorf("games must be positive, got %d", expGames)
	}

	baseline := metrics.AgentConfig{Strategy: expBaseline, Seed: expSeed}
	if expBaseline == agent.AlphaBeta {
		baseline.MaxPlies = expBasePlies
		baseline.Evaluator = expEvaluator
	}
	exp := experiments.DepthExperiment(baseline, expPlies, expEvaluator)
	exp.NumGames = expGames
	exp.MaxTurns = expMaxTurns
	if expBoard != "" {
		start, err := libraryStart(expBoard)
		if err != nil {
			return err
		}
		exp.Start = start
	}

	results, err := experiments.Run(exp)
	if err != nil {
		return err
	}
	printSummary(cmd, exp, results)

	if expOut == "" {
		return nil
	}
	dir, err := experiments.Write(expOut, exp, results)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored experiment records in %s", dir)
	return nil
}

// libraryStart loads a library board once and hands out a fresh copy per game.
func libraryStart(name string) (func() *game.Board, error) {
	board, err := game.LibraryBoard(name)
	if err != nil {
		return nil, err
	}
	return board.Copy, nil
}

// printSummary prints one line per matchup with the wins of either agent.
func printSummary(cmd *cobra.Command, exp experiments.Experiment, results experiments.Results) {
	out := cmd.OutOrStdout()
	for _, matchup := range exp.Matchups {
		wins, losses, draws := 0, 0, 0
		for _, r := range results.GameRecords {
			if r.Agent1 != matchup[0].ID || r.Agent2 != matchup[1].ID {
				continue
			}
			switch r.Winner {
			case game.Red:
				wins++
			case game.Black:
				losses++
			default:
				draws++
			}
		}
		fmt.Fprintf(out, "plies %d vs %s: %d wins, %d losses, %d draws\n",
			matchup[0].MaxPlies, matchup[1].Strategy, wins, losses, draws)
	}
}

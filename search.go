package main

import (
	"fmt"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"github.com/spf13/cobra"
)

var (
	searchBoard     string
	searchPlayer    string
	searchMaxPlies  int
	searchEvaluator string
	searchNoPrune   bool

	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Print the best action for a player on a board",
		RunE:  runSearch,
	}
)

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchBoard, "board", "", "library board to search, the opening when empty")
	f.StringVar(&searchPlayer, "player", "", "maximizing player, the player to move when empty")
	f.IntVar(&searchMaxPlies, "maxplies", 3, "search depth in plies")
	f.StringVar(&searchEvaluator, "evaluator", "piececount", "evaluation function (piececount, positional)")
	f.BoolVar(&searchNoPrune, "no-prune", false, "disable alpha-beta pruning")
}

func runSearch(cmd *cobra.Command, args []string) error {
	board := game.NewBoard()
	if searchBoard != "" {
		b, err := game.LibraryBoard(searchBoard)
		if err != nil {
			return err
		}
		board = b
	}
	player := searchPlayer
	if player == "" {
		player = board.Next()
	}
	if game.PlayerIndex(player) < 0 {
		return fmt.Errorf("unknown player %q", player)
	}
	opponent := game.Opponent(player)

	evaluator, ok := game.NewEvaluator(searchEvaluator, player, opponent)
	if !ok {
		return fmt.Errorf("unknown evaluator %q", searchEvaluator)
	}
	options := []searcher.Option{
		searcher.WithMaxPlies(searchMaxPlies),
		searcher.WithEvaluator(evaluator),
		searcher.WithMetrics(metrics.NewCollector()),
	}
	if searchNoPrune {
		options = append(options, searcher.WithoutPruning())
	}
	search, err := searcher.NewAlphaBeta(player, opponent, options...)
	if err != nil {
		return err
	}

	result, metric := search.Search(board.WithNext(player))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, board)
	if result.Action == nil {
		fmt.Fprintf(out, "no action for %s, value %.2f\n", player, result.Value)
	} else {
		fmt.Fprintf(out, "best action for %s: %v (value %.2f)\n", player, result.Action, result.Value)
	}
	fmt.Fprintf(out, "plies %d, pruning %t, nodes %d, evaluations %d, prunes %d, %v\n",
		metric.MaxPlies, metric.Pruning, metric.Nodes, metric.Evaluations, metric.Prunes, metric.Duration)
	return nil
}

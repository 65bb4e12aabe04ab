package main

import (
	"bufio"
	"fmt"
	"os"

	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	playConfigPath string
	playRed        string
	playBlack      string
	playMaxPlies   int
	playBoard      string
	playFirst      string
	playRecords    string
	playQuiet      bool

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a single game between two agents",
		Long: `Play a single game. Agents are configured from --config (YAML) and
the command line flags override the file.`,
		RunE: runPlay,
	}
)

func init() {
	f := playCmd.Flags()
	f.StringVar(&playConfigPath, "config", "", "YAML match configuration")
	f.StringVar(&playRed, "red", "", "strategy of the red player (alphabeta, random, human)")
	f.StringVar(&playBlack, "black", "", "strategy of the black player (alphabeta, random, human)")
	f.IntVar(&playMaxPlies, "maxplies", 0, "search depth of alphabeta players")
	f.StringVar(&playBoard, "board", "", "library board to start from")
	f.StringVar(&playFirst, "first", "", "player moving first (r or b)")
	f.StringVar(&playRecords, "records", "", "directory to write the game records to")
	f.BoolVar(&playQuiet, "quiet", false, "do not print the board after every move")
}

// playConfig merges the config file with the flags set on the command line.
func playConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if playConfigPath != "" {
		loaded, err := config.Load(playConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("red") {
		cfg.Red.Strategy = playRed
	}
	if flags.Changed("black") {
		cfg.Black.Strategy = playBlack
	}
	if flags.Changed("maxplies") {
		cfg.Red.MaxPlies = playMaxPlies
		cfg.Black.MaxPlies = playMaxPlies
	}
	if flags.Changed("board") {
		cfg.Board = playBoard
	}
	if flags.Changed("first") {
		cfg.First = playFirst
	}
	if flags.Changed("records") {
		cfg.RecordsDir = playRecords
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := playConfig(cmd)
	if err != nil {
		return err
	}
	board, err := cfg.StartBoard()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(os.Stdin)
	red, err := agent.New(cfg.Red.Agent(), game.Red, in, out)
	if err != nil {
		return err
	}
	black, err := agent.New(cfg.Black.Agent(), game.Black, in, out)
	if err != nil {
		return err
	}

	players := []string{game.Red, game.Black}
	agents := []agent.Agent{red, black}
	if cfg.First == game.Black {
		players = []string{game.Black, game.Red}
		agents = []agent.Agent{black, red}
	}
	e := engine.LocalEngine(players, agents, board)
	e.MaxTurns = cfg.MaxTurns
	if !playQuiet {
		fmt.Fprintln(out, board)
		e.Observer = func(step int, player string, action game.Action, state game.State) {
			fmt.Fprintf(out, "%d. %s plays %v\n%v\n", step, player, action, state)
		}
	}

	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}
	if gameMetric.Winner == "" {
		fmt.Fprintf(out, "draw after %d moves\n", gameMetric.TotalMoves)
	} else {
		fmt.Fprintf(out, "%s wins after %d moves\n", gameMetric.Winner, gameMetric.TotalMoves)
	}

	if cfg.RecordsDir == "" {
		return nil
	}
	return writePlayRecords(cfg, gameMetric, moveMetrics)
}

func writePlayRecords(cfg config.Config, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) error {
	writer, err := metrics.NewWriter(cfg.RecordsDir, "play")
	if err != nil {
		return err
	}
	configs := []metrics.AgentConfig{
		{ID: 0, Strategy: cfg.Red.Strategy, MaxPlies: cfg.Red.MaxPlies, Evaluator: cfg.Red.Evaluator, Seed: cfg.Red.Seed},
		{ID: 1, Strategy: cfg.Black.Strategy, MaxPlies: cfg.Black.MaxPlies, Evaluator: cfg.Black.Evaluator, Seed: cfg.Black.Seed},
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords([]metrics.GameRecord{{ID: 1, Agent1: 0, Agent2: 1, GameMetric: gameMetric}}); err != nil {
		return err
	}
	records := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		records[i] = metrics.MoveRecord{Game: 1, MoveMetric: mm}
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())
	return nil
}

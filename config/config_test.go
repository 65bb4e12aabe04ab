package config

import (
	"os"
	"path/filepath"
	"testing"

	"checkers/game"
	"checkers/searcher/agent"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Run("validating the defaults", func(t *testing.T) {
		cfg := Default()

		require.NoError(t, cfg.Validate())
		require.Equal(t, agent.AlphaBeta, cfg.Red.Strategy)
		require.Equal(t, 3, cfg.Red.MaxPlies)
		require.Equal(t, game.Red, cfg.First)
	})
}

func TestLoad(t *testing.T) {
	t.Run("overriding defaults from yaml", func(t *testing.T) {
		path := writeConfig(t, `
red:
  strategy: random
  seed: 12
black:
  strategy: alphabeta
  max_plies: 5
  evaluator: positional
board: StrategyTest1
first: b
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, PlayerConfig{Strategy: agent.Random, Seed: 12, MaxPlies: 3, Evaluator: "piececount"}, cfg.Red,
			"Should keep defaults for unset fields")
		require.Equal(t, PlayerConfig{Strategy: agent.AlphaBeta, MaxPlies: 5, Evaluator: "positional", Seed: 1}, cfg.Black)
		require.Equal(t, "StrategyTest1", cfg.Board)
		require.Equal(t, game.Black, cfg.First)
		require.Equal(t, 300, cfg.MaxTurns)
	})

	t.Run("completing a partial alphabeta player", func(t *testing.T) {
		path := writeConfig(t, "black:\n  strategy: alphabeta\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, agent.AlphaBeta, cfg.Black.Strategy)
		require.Equal(t, 3, cfg.Black.MaxPlies, "Should search the default depth")
		require.Equal(t, "piececount", cfg.Black.Evaluator)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("failing on malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "red: [unclosed"))

		require.ErrorContains(t, err, "failed to parse")
	})

	t.Run("rejecting invalid settings", func(t *testing.T) {
		cases := []struct{ content, want string }{
			{"first: x", "first must be"},
			{"max_turns: 0", "max_turns must be positive"},
			{"red: {strategy: tonto}", `unknown strategy "tonto"`},
			{"red: {max_plies: -1}", "max_plies must be positive"},
			{"black: {strategy: alphabeta, max_plies: 2, evaluator: mobility}", `unknown evaluator "mobility"`},
			{"board: Nowhere", `unknown board "Nowhere"`},
		}
		for _, c := range cases {
			_, err := Load(writeConfig(t, c.content))

			require.ErrorContains(t, err, c.want, "config %q", c.content)
		}
	})
}

func TestConfig(t *testing.T) {
	t.Run("round tripping through yaml", func(t *testing.T) {
		cfg := Default()
		cfg.Board = "EndGame1"

		data, err := cfg.Marshal()
		require.NoError(t, err)
		var got Config
		require.NoError(t, yaml.Unmarshal(data, &got))

		require.Equal(t, cfg, got)
	})

	t.Run("building the start board", func(t *testing.T) {
		cfg := Default()
		cfg.Board = "EndGame1"
		cfg.First = game.Red

		board, err := cfg.StartBoard()

		require.NoError(t, err)
		require.Equal(t, game.Red, board.Next(), "Should override the library's player to move")
		require.Equal(t, game.RedKing, board.At(game.Square{Row: 7, Col: 2}))
	})

	t.Run("completing players switched to alphabeta", func(t *testing.T) {
		cfg := Default()
		cfg.Black.Strategy = agent.AlphaBeta

		cfg.ApplyDefaults()

		require.NoError(t, cfg.Validate())
		require.Equal(t, PlayerConfig{Strategy: agent.AlphaBeta, MaxPlies: 3, Evaluator: "piececount", Seed: 1}, cfg.Black)
		require.Equal(t, Default().Red, cfg.Red, "Should keep explicit settings")
	})

	t.Run("converting player configs", func(t *testing.T) {
		p := PlayerConfig{Strategy: agent.AlphaBeta, MaxPlies: 4, Evaluator: "positional", Seed: 8}

		require.Equal(t, agent.Config{Strategy: agent.AlphaBeta, MaxPlies: 4, Evaluator: "positional", Seed: 8}, p.Agent())
	})
}

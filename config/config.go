package config

import (
	"fmt"
	"os"

	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"

	"gopkg.in/yaml.v3"
)

// PlayerConfig selects the agent playing one color.
type PlayerConfig struct {
	Strategy  string `yaml:"strategy"`  // alphabeta, random or human
	MaxPlies  int    `yaml:"max_plies"` // alphabeta only
	Evaluator string `yaml:"evaluator"` // alphabeta only: piececount or positional
	Seed      uint64 `yaml:"seed"`      // random only
}

// Config describes a single game.
type Config struct {
	Red        PlayerConfig `yaml:"red"`
	Black      PlayerConfig `yaml:"black"`
	Board      string       `yaml:"board"` // library board name, empty for the opening
	First      string       `yaml:"first"` // r or b
	MaxTurns   int          `yaml:"max_turns"`
	RecordsDir string       `yaml:"records_dir"` // empty to skip writing records
}

func Default() Config {
	return Config{
		Red: PlayerConfig{
			Strategy:  agent.AlphaBeta,
			MaxPlies:  meta.DEFAULT_MAX_PLIES,
			Evaluator: "piececount",
		},
		Black: PlayerConfig{
			Strategy: agent.Random,
			Seed:     1,
		},
		First:    game.Red,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults fills in the search settings an alphabeta player leaves
// unset, so a player switched to alphabeta needs no other field.
func (c *Config) ApplyDefaults() {
	for _, p := range []*PlayerConfig{&c.Red, &c.Black} {
		if p.Strategy != agent.AlphaBeta {
			continue
		}
		if p.MaxPlies == 0 {
			p.MaxPlies = meta.DEFAULT_MAX_PLIES
		}
		if p.Evaluator == "" {
			p.Evaluator = "piececount"
		}
	}
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	if game.PlayerIndex(c.First) < 0 {
		return fmt.Errorf("first must be %q or %q, got %q", game.Red, game.Black, c.First)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	for name, p := range map[string]PlayerConfig{game.Red: c.Red, game.Black: c.Black} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("player %s: %w", name, err)
		}
	}
	if c.Board != "" {
		if _, err := game.LibraryBoard(c.Board); err != nil {
			return err
		}
	}
	return nil
}

func (p PlayerConfig) validate() error {
	switch p.Strategy {
	case agent.AlphaBeta:
		if p.MaxPlies <= 0 {
			return fmt.Errorf("max_plies must be positive, got %d", p.MaxPlies)
		}
		if _, ok := game.NewEvaluator(p.Evaluator, game.Red, game.Black); !ok {
			return fmt.Errorf("unknown evaluator %q", p.Evaluator)
		}
	case agent.Random, agent.Human:
	default:
		return fmt.Errorf("unknown strategy %q", p.Strategy)
	}
	return nil
}

// Agent converts the player config for agent.New.
func (p PlayerConfig) Agent() agent.Config {
	return agent.Config{
		Strategy:  p.Strategy,
		MaxPlies:  p.MaxPlies,
		Evaluator: p.Evaluator,
		Seed:      p.Seed,
	}
}

// StartBoard returns the configured starting position with First to move.
func (c Config) StartBoard() (*game.Board, error) {
	board := game.NewBoard()
	if c.Board != "" {
		b, err := game.LibraryBoard(c.Board)
		if err != nil {
			return nil, err
		}
		board = b
	}
	return board.WithNext(c.First), nil
}

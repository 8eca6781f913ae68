package engine

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"

	"ataxx/searcher"
)

// Player strategies selectable per color.
const (
	StrategyManual  = "manual"
	StrategyMinimax = "minimax"
	StrategyRandom  = "random"
)

// Config is the engine configuration, filled from defaults and optionally
// overlaid by a TOML file.
type Config struct {
	Players PlayersConfig `toml:"players"`
	Search  SearchConfig  `toml:"search"`
	Board   BoardConfig   `toml:"board"`
}

type PlayersConfig struct {
	Red  string `toml:"red"`
	Blue string `toml:"blue"`
}

type SearchConfig struct {
	Depth int `toml:"depth"`
}

type BoardConfig struct {
	// Blocks are squares ("c2") blocked, with their reflections, after
	// every clear.
	Blocks []string `toml:"blocks"`
	// Seed feeds the random strategy's generator.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig matches the traditional setup: a human plays red against the
// machine at the default depth.
func DefaultConfig() Config {
	return Config{
		Players: PlayersConfig{Red: StrategyManual, Blue: StrategyMinimax},
		Search:  SearchConfig{Depth: searcher.MaxDepth},
		Board:   BoardConfig{Seed: 1},
	}
}

var blockSquare = regexp.MustCompile(`^[a-g][1-7]$`)

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for _, strategy := range []string{c.Players.Red, c.Players.Blue} {
		switch strategy {
		case StrategyManual, StrategyMinimax, StrategyRandom:
		default:
			return fmt.Errorf("unknown player strategy %q", strategy)
		}
	}
	if c.Search.Depth < 1 {
		return fmt.Errorf("search depth must be positive, got %d", c.Search.Depth)
	}
	for _, cr := range c.Board.Blocks {
		if !blockSquare.MatchString(cr) {
			return fmt.Errorf("bad block square %q", cr)
		}
	}
	return nil
}

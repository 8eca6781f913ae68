package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ataxx.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[players]
red = "minimax"
blue = "random"

[search]
depth = 2

[board]
blocks = ["c2", "d4"]
seed = 99
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Players.Red != StrategyMinimax || cfg.Players.Blue != StrategyRandom {
		t.Errorf("players not read: %+v", cfg.Players)
	}
	if cfg.Search.Depth != 2 {
		t.Errorf("depth not read: %d", cfg.Search.Depth)
	}
	if len(cfg.Board.Blocks) != 2 || cfg.Board.Seed != 99 {
		t.Errorf("board table not read: %+v", cfg.Board)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[search]
depth = 3
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Players.Red != StrategyManual || cfg.Players.Blue != StrategyMinimax {
		t.Errorf("defaults not preserved: %+v", cfg.Players)
	}
	if cfg.Search.Depth != 3 {
		t.Errorf("depth override lost: %d", cfg.Search.Depth)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"[players]\nred = \"psychic\"\n",
		"[search]\ndepth = 0\n",
		"[board]\nblocks = [\"z9\"]\n",
	} {
		path := writeConfig(t, body)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected %q to be rejected", body)
		}
	}
	if _, err := LoadConfig("/no/such/ataxx.toml"); err == nil {
		t.Error("expected a missing file to be an error")
	}
}

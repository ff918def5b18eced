package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lunathanael/botris-interface/internal/tetris"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.BoardWidth != 10 || c.BoardHeight != 20 {
		t.Errorf("board size = %dx%d, want 10x20", c.BoardWidth, c.BoardHeight)
	}
	if c.HintAlgorithm != AlgoDijkShort {
		t.Errorf("HintAlgorithm = %q, want %q", c.HintAlgorithm, AlgoDijkShort)
	}
	if err := c.Options().Validate(); err != nil {
		t.Errorf("default config should produce valid tetris.Options: %v", err)
	}
}

func TestLoadFromMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.json")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if s.Config.BoardWidth != 10 {
		t.Errorf("BoardWidth = %d, want default 10", s.Config.BoardWidth)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.json")

	s, _ := LoadFrom(path)
	s.Config.BoardWidth = 8
	s.Config.GarbageDelay = 3
	s.Config.ShowHints = true
	s.Config.HintAlgorithm = AlgoBFS

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Config.BoardWidth != 8 {
		t.Errorf("BoardWidth = %d, want 8", loaded.Config.BoardWidth)
	}
	if loaded.Config.GarbageDelay != 3 {
		t.Errorf("GarbageDelay = %d, want 3", loaded.Config.GarbageDelay)
	}
	if !loaded.Config.ShowHints {
		t.Error("ShowHints should round-trip true")
	}
	if loaded.Config.HintAlgorithm != AlgoBFS {
		t.Errorf("HintAlgorithm = %q, want %q", loaded.Config.HintAlgorithm, AlgoBFS)
	}
}

func TestNormalizeInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.json")

	data := []byte(`{
		"board_width": -1,
		"board_height": 0,
		"garbage_messiness": 5,
		"garbage_delay": -3,
		"hint_algorithm": "astar"
	}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	def := DefaultConfig()
	if s.Config.BoardWidth != def.BoardWidth {
		t.Errorf("BoardWidth = %d, want default %d", s.Config.BoardWidth, def.BoardWidth)
	}
	if s.Config.BoardHeight != def.BoardHeight {
		t.Errorf("BoardHeight = %d, want default %d", s.Config.BoardHeight, def.BoardHeight)
	}
	if s.Config.GarbageMessiness != def.GarbageMessiness {
		t.Errorf("GarbageMessiness = %f, want default %f", s.Config.GarbageMessiness, def.GarbageMessiness)
	}
	if s.Config.GarbageDelay != def.GarbageDelay {
		t.Errorf("GarbageDelay = %d, want default %d", s.Config.GarbageDelay, def.GarbageDelay)
	}
	if s.Config.HintAlgorithm != def.HintAlgorithm {
		t.Errorf("HintAlgorithm = %q, want default %q", s.Config.HintAlgorithm, def.HintAlgorithm)
	}
}

func TestMovegenAlgorithmMapping(t *testing.T) {
	cases := []struct {
		in   Algorithm
		want tetris.Algorithm
	}{
		{AlgoBFS, tetris.AlgoBFS},
		{AlgoDFS, tetris.AlgoDFS},
		{AlgoDijkstra, tetris.AlgoDijkstra},
		{AlgoDijkShort, tetris.AlgoDijkShort},
		{"garbage", tetris.AlgoDijkShort},
	}
	for _, c := range cases {
		cfg := Config{HintAlgorithm: c.in}
		if got := cfg.MovegenAlgorithm(); got != c.want {
			t.Errorf("MovegenAlgorithm(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// Package config persists the demo's tetris.Options and display
// preferences to disk, the same way internal/settings persists the
// other games' preferences.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lunathanael/botris-interface/internal/tetris"
)

// Algorithm selects which move generator backs the hint overlay.
type Algorithm string

const (
	AlgoBFS       Algorithm = "bfs"
	AlgoDFS       Algorithm = "dfs"
	AlgoDijkstra  Algorithm = "dijkstra"
	AlgoDijkShort Algorithm = "dijkstra_short"
)

// Config stores the demo's persisted preferences.
type Config struct {
	BoardWidth       int       `json:"board_width"`
	BoardHeight      int       `json:"board_height"`
	GarbageMessiness float64   `json:"garbage_messiness"`
	GarbageDelay     int       `json:"garbage_delay"`
	HintAlgorithm    Algorithm `json:"hint_algorithm"`
	ShowHints        bool      `json:"show_hints"`
}

// DefaultConfig returns sensible defaults mirroring tetris.DefaultOptions.
func DefaultConfig() Config {
	opts := tetris.DefaultOptions()
	return Config{
		BoardWidth:       opts.BoardWidth,
		BoardHeight:      opts.BoardHeight,
		GarbageMessiness: opts.GarbageMessiness,
		GarbageDelay:     opts.GarbageDelay,
		HintAlgorithm:    AlgoDijkShort,
		ShowHints:        false,
	}
}

// Options converts the persisted config into tetris.Options, keeping the
// attack and combo tables at their engine defaults.
func (c Config) Options() tetris.Options {
	opts := tetris.DefaultOptions()
	opts.BoardWidth = c.BoardWidth
	opts.BoardHeight = c.BoardHeight
	opts.GarbageMessiness = c.GarbageMessiness
	opts.GarbageDelay = c.GarbageDelay
	return opts
}

// MovegenAlgorithm maps the persisted hint algorithm choice to the
// engine's tetris.Algorithm value.
func (c Config) MovegenAlgorithm() tetris.Algorithm {
	switch c.HintAlgorithm {
	case AlgoBFS:
		return tetris.AlgoBFS
	case AlgoDFS:
		return tetris.AlgoDFS
	case AlgoDijkstra:
		return tetris.AlgoDijkstra
	default:
		return tetris.AlgoDijkShort
	}
}

// Store manages config persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads the config from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from a specific path. If path is empty, uses
// ~/.cli-play/tetris.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".cli-play", "tetris.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize clamps loaded values into the ranges tetris.Options.Validate
// accepts, falling back to defaults on anything out of bounds.
func (s *Store) normalize() {
	def := DefaultConfig()
	if s.Config.BoardWidth <= 0 {
		s.Config.BoardWidth = def.BoardWidth
	}
	if s.Config.BoardHeight <= 0 {
		s.Config.BoardHeight = def.BoardHeight
	}
	if s.Config.GarbageMessiness < 0 || s.Config.GarbageMessiness > 1 {
		s.Config.GarbageMessiness = def.GarbageMessiness
	}
	if s.Config.GarbageDelay < 0 {
		s.Config.GarbageDelay = def.GarbageDelay
	}
	switch s.Config.HintAlgorithm {
	case AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoDijkShort:
	default:
		s.Config.HintAlgorithm = def.HintAlgorithm
	}
}

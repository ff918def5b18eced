// Package highscore persists the demo's best tetris score to disk, the
// same way internal/scores persists every other game's high scores.
package highscore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Entry holds a single high score record.
type Entry struct {
	Score          int    `json:"score"`
	PiecesPlaced   int    `json:"pieces_placed"`
	GarbageCleared int    `json:"garbage_cleared"`
	Date           string `json:"date"`
}

// Store manages high score persistence.
type Store struct {
	path string
	Best *Entry `json:"best,omitempty"`
}

// Load reads the high score file. Returns an empty store if the file
// doesn't exist.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the high score from a specific path. If path is empty,
// uses the default location (~/.cli-play/tetris_scores.json).
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{}, err
		}
		path = filepath.Join(home, ".cli-play", "tetris_scores.json")
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the high score to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Update records a run's final score if it beats the current high score.
// Returns true if a new high score was set.
func (s *Store) Update(score, piecesPlaced, garbageCleared int) bool {
	if s.Best != nil && score <= s.Best.Score {
		return false
	}
	s.Best = &Entry{
		Score:          score,
		PiecesPlaced:   piecesPlaced,
		GarbageCleared: garbageCleared,
		Date:           time.Now().Format("2006-01-02"),
	}
	return true
}

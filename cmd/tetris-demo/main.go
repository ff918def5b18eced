package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunathanael/botris-interface/internal/config"
	"github.com/lunathanael/botris-interface/internal/highscore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
	}
	scores, err := highscore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading high scores: %v\n", err)
	}

	p := tea.NewProgram(
		newModel(cfg, scores),
		tea.WithAltScreen(),
		tea.WithFPS(30),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

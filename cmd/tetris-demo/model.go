package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunathanael/botris-interface/internal/config"
	"github.com/lunathanael/botris-interface/internal/highscore"
	"github.com/lunathanael/botris-interface/internal/splash"
	"github.com/lunathanael/botris-interface/internal/tetris"
	"github.com/lunathanael/botris-interface/internal/transition"
)

// stage is the top-level phase of the demo program.
type stage int

const (
	stageSplash stage = iota
	stageTransition
	stagePlaying
	stageGameOver
)

// model is the root bubbletea.Model, sequencing splash -> transition ->
// gameplay -> game-over.
type model struct {
	stage stage
	width int
	height int

	splash     splash.Model
	transition transition.Model

	cfg       *config.Store
	scores    *highscore.Store
	game      *tetris.Game
	showHint  bool
	hintMoves map[tetris.PieceData]tetris.Move
	newHigh   bool
	lastEvents []tetris.Event
}

func newModel(cfg *config.Store, scores *highscore.Store) model {
	return model{
		stage:  stageSplash,
		splash: splash.New(),
		cfg:    cfg,
		scores: scores,
	}
}

func (m model) Init() tea.Cmd {
	return m.splash.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.stage {
	case stageSplash:
		return m.updateSplash(msg)
	case stageTransition:
		return m.updateTransition(msg)
	case stagePlaying:
		return m.updatePlaying(msg)
	case stageGameOver:
		return m.updateGameOver(msg)
	}
	return m, nil
}

func (m model) updateSplash(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.stage = stageTransition
		m.transition = transition.New(m.width, m.height, splash.TitleArt+"\n\n"+splash.Credits, "get ready")
		return m, m.transition.Init()
	}
	next, cmd := m.splash.Update(msg)
	m.splash = next
	return m, cmd
}

func (m model) updateTransition(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.transition.Update(msg)
	m.transition = next
	if m.transition.Done() {
		g, err := tetris.New(m.cfg.Config.Options(), tetris.NewDefaultRNG())
		if err != nil {
			return m, tea.Quit
		}
		m.game = g
		m.showHint = m.cfg.Config.ShowHints
		m.refreshHints()
		m.stage = stagePlaying
		return m, nil
	}
	return m, cmd
}

func (m *model) refreshHints() {
	if !m.showHint || m.game == nil || m.game.Dead {
		m.hintMoves = nil
		return
	}
	m.hintMoves = tetris.GenerateMoves(m.game.Board, m.game.Current.Kind, m.game.Held, m.game.Options, m.cfg.Config.MovegenAlgorithm())
}

func (m model) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var cmd tetris.Command
	switch key.String() {
	case "left":
		cmd = tetris.CmdMoveLeft
	case "right":
		cmd = tetris.CmdMoveRight
	case "down":
		cmd = tetris.CmdDrop
	case "up":
		cmd = tetris.CmdRotateCW
	case "z":
		cmd = tetris.CmdRotateCCW
	case "a":
		cmd = tetris.CmdSonicLeft
	case "d":
		cmd = tetris.CmdSonicRight
	case "s":
		cmd = tetris.CmdSonicDrop
	case " ":
		cmd = tetris.CmdHardDrop
	case "c":
		cmd = tetris.CmdHold
	case "h":
		m.showHint = !m.showHint
		m.refreshHints()
		return m, nil
	default:
		return m, nil
	}

	events, err := m.game.ExecuteCommand(cmd)
	if err != nil {
		return m, nil
	}
	m.lastEvents = events
	m.refreshHints()

	if m.game.Dead {
		m.newHigh = m.scores.Update(m.game.Score, m.game.PiecesPlaced, m.game.GarbageCleared)
		_ = m.scores.Save()
		m.stage = stageGameOver
	}
	return m, nil
}

func (m model) updateGameOver(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "r":
			g, err := tetris.New(m.cfg.Config.Options(), tetris.NewDefaultRNG())
			if err == nil {
				m.game = g
				m.newHigh = false
				m.stage = stagePlaying
				m.refreshHints()
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.stage {
	case stageSplash:
		return m.splash.View()
	case stageTransition:
		return m.transition.View()
	case stagePlaying:
		return m.renderGame()
	case stageGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m model) renderGame() string {
	board := m.renderBoard()
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHold(),
		m.renderQueue(),
		m.renderHUD(),
	)
	layout := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)
	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, layout)
	}
	return layout
}

// absoluteCells returns the board coordinates a piece's four cells occupy.
func absoluteCells(p tetris.PieceData) [4][2]int {
	cells := tetris.Cells(p.Kind, p.Rotation)
	for i := range cells {
		cells[i][0] += p.X
		cells[i][1] += p.Y
	}
	return cells
}

func (m model) renderBoard() string {
	g := m.game
	top := g.Options.BoardHeight + 4
	if len(g.Board.Rows) > top {
		top = len(g.Board.Rows)
	}

	overlay := make(map[[2]int]byte, 4)
	for _, c := range absoluteCells(g.Current) {
		overlay[c] = g.Current.Kind.Letter()
	}
	ghostCells := map[[2]int]bool{}
	for _, c := range absoluteCells(tetris.Ghost(g.Board, g.Current)) {
		ghostCells[c] = true
	}

	var b strings.Builder
	for y := top - 1; y >= 0; y-- {
		for x := 0; x < g.Options.BoardWidth; x++ {
			var cell byte
			if y < len(g.Board.Rows) {
				cell = g.Board.Rows[y][x]
			}
			if v, ok := overlay[[2]int{x, y}]; ok {
				cell = v
			}
			switch {
			case cell != tetris.CellEmpty:
				b.WriteString(cellStyle(cell).Render("█"))
			case ghostCells[[2]int{x, y}]:
				b.WriteString(hintStyle.Render("▒"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return boardBorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m model) renderHold() string {
	label := labelStyle.Render("HOLD")
	if m.game.Held == nil {
		return panelStyle.Render(label + "\n\n(empty)")
	}
	return panelStyle.Render(label + "\n\n" + cellStyle(m.game.Held.Letter()).Render(m.game.Held.String()))
}

func (m model) renderQueue() string {
	label := labelStyle.Render("NEXT")
	var lines []string
	for i, k := range m.game.Queue {
		if i >= 5 {
			break
		}
		lines = append(lines, cellStyle(k.Letter()).Render(k.String()))
	}
	return panelStyle.Render(label + "\n\n" + strings.Join(lines, "\n"))
}

func (m model) renderHUD() string {
	g := m.game
	var b strings.Builder
	b.WriteString(labelStyle.Render("SCORE") + "\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("%d", g.Score)) + "\n\n")
	b.WriteString(labelStyle.Render("PIECES") + "\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("%d", g.PiecesPlaced)) + "\n\n")
	if g.Combo > 0 {
		b.WriteString(comboStyle.Render(fmt.Sprintf("combo %d", g.Combo)) + "\n")
	}
	if g.B2B {
		b.WriteString(b2bStyle.Render("back-to-back") + "\n")
	}
	if len(g.GarbageQueue) > 0 {
		b.WriteString(garbageMeterStyle.Render(fmt.Sprintf("garbage: %d", len(g.GarbageQueue))) + "\n")
	}
	if m.showHint && len(m.hintMoves) > 0 {
		b.WriteString("\n" + hintStyle.Render(fmt.Sprintf("%d placements", len(m.hintMoves))))
	}
	return panelStyle.Render(b.String())
}

func (m model) renderGameOver() string {
	var b strings.Builder
	b.WriteString(gameOverStyle.Render("GAME OVER") + "\n\n")
	b.WriteString(fmt.Sprintf("score: %d\n", m.game.Score))
	b.WriteString(fmt.Sprintf("pieces placed: %d\n", m.game.PiecesPlaced))
	if m.newHigh {
		b.WriteString("\n" + newHighScoreStyle.Render("new high score!") + "\n")
	}
	b.WriteString("\n[r] restart   [q] quit\n")
	content := b.String()
	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

package tetris

// GameState is the wire shape exchanged with the match-server (§6). Row 0
// is the bottom row; a cell is nil for empty, or a one-letter piece/garbage
// tag. garbageQueued only carries delay — hole indices are not part of the
// wire contract and are regenerated locally by FromPublic.
type GameState struct {
	Board          [][]*string         `json:"board"`
	Queue          []string            `json:"queue"`
	GarbageQueued  []PublicGarbageLine `json:"garbageQueued"`
	Held           *string             `json:"held"`
	Current        PublicPieceData     `json:"current"`
	CanHold        bool                `json:"canHold"`
	Combo          int                 `json:"combo"`
	B2B            bool                `json:"b2b"`
	Score          int                 `json:"score"`
	PiecesPlaced   int                 `json:"piecesPlaced"`
	GarbageCleared int                 `json:"garbageCleared"`
	Dead           bool                `json:"dead"`
}

func cellToPublic(b byte) *string {
	if b == CellEmpty {
		return nil
	}
	s := string(b)
	return &s
}

func cellFromPublic(s *string) byte {
	if s == nil || len(*s) == 0 {
		return CellEmpty
	}
	return (*s)[0]
}

// PublicSnapshot is the inverse of FromPublic: it serializes the live game
// into the wire GameState shape.
func (g *Game) PublicSnapshot() GameState {
	board := make([][]*string, len(g.Board.Rows))
	for y, row := range g.Board.Rows {
		cells := make([]*string, len(row))
		for x, c := range row {
			cells[x] = cellToPublic(c)
		}
		board[y] = cells
	}

	queue := make([]string, len(g.Queue))
	for i, k := range g.Queue {
		queue[i] = k.String()
	}

	garbage := make([]PublicGarbageLine, len(g.GarbageQueue))
	for i, line := range g.GarbageQueue {
		garbage[i] = line.Public()
	}

	var held *string
	if g.Held != nil {
		s := g.Held.String()
		held = &s
	}

	return GameState{
		Board:          board,
		Queue:          queue,
		GarbageQueued:  garbage,
		Held:           held,
		Current:        g.Current.Public(),
		CanHold:        g.CanHold,
		Combo:          g.Combo,
		B2B:            g.B2B,
		Score:          g.Score,
		PiecesPlaced:   g.PiecesPlaced,
		GarbageCleared: g.GarbageCleared,
		Dead:           g.Dead,
	}
}

// FromPublic hydrates a Game from a wire snapshot. isImmobile is not part
// of the wire shape (§6); it is recomputed locally from the board and the
// current piece. Garbage hole indices are likewise not carried on the wire
// and are regenerated here from rng, matching the same messiness rule
// used for freshly-queued garbage.
func FromPublic(snapshot GameState, opts Options, rng RNG) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	board := &Board{Width: opts.BoardWidth, Rows: make([][]byte, len(snapshot.Board))}
	for y, row := range snapshot.Board {
		cells := make([]byte, len(row))
		for x, c := range row {
			cells[x] = cellFromPublic(c)
		}
		board.Rows[y] = cells
	}

	queue := make([]Kind, 0, len(snapshot.Queue))
	for _, s := range snapshot.Queue {
		if len(s) == 0 {
			return nil, ErrInvalidOptions
		}
		k, ok := KindFromLetter(s[0])
		if !ok {
			return nil, ErrInvalidOptions
		}
		queue = append(queue, k)
	}

	var held *Kind
	if snapshot.Held != nil && len(*snapshot.Held) > 0 {
		k, ok := KindFromLetter((*snapshot.Held)[0])
		if !ok {
			return nil, ErrInvalidOptions
		}
		held = &k
	}

	current, err := pieceDataFromPublic(snapshot.Current)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Board:          board,
		Queue:          queue,
		Held:           held,
		Current:        current,
		CanHold:        snapshot.CanHold,
		Combo:          snapshot.Combo,
		B2B:            snapshot.B2B,
		Score:          snapshot.Score,
		PiecesPlaced:   snapshot.PiecesPlaced,
		GarbageCleared: snapshot.GarbageCleared,
		Dead:           snapshot.Dead,
		Options:        opts,
		RNG:            rng,
	}
	g.refillQueue()
	g.isImmobile = g.Board.Immobile(g.Current)

	var lastHole *int
	lines := make([]GarbageLine, len(snapshot.GarbageQueued))
	for i, pub := range snapshot.GarbageQueued {
		assigned := assignGarbageHoles(rng, opts.BoardWidth, 1, pub.Delay, opts.GarbageMessiness, lastHole)
		lines[i] = assigned[0]
		hole := assigned[0].Index
		lastHole = &hole
	}
	g.GarbageQueue = lines
	g.lastHole = lastHole

	return g, nil
}

package tetris

// Game is the aggregate state machine: board, queue, garbage queue, hold,
// current piece, and the running score/combo/B2B counters (§3, §4.G).
type Game struct {
	Board *Board

	Queue        []Kind
	GarbageQueue []GarbageLine
	Held         *Kind
	Current      PieceData
	CanHold      bool

	Combo          int
	B2B            bool
	Score          int
	PiecesPlaced   int
	GarbageCleared int
	Dead           bool

	isImmobile        bool
	lastHole          *int
	materializedHoles []int

	Options Options
	RNG     RNG
}

// New starts a fresh game: empty board, a freshly shuffled queue, and a
// piece spawned from its head.
func New(opts Options, rng RNG) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		Board:   NewBoard(opts.BoardWidth),
		Options: opts,
		RNG:     rng,
		CanHold: true,
	}
	g.refillQueue()
	g.Current = spawnPiece(g.popQueue(), opts)
	g.isImmobile = g.Board.Immobile(g.Current)
	return g, nil
}

// refillQueue appends freshly shuffled 7-bags until the queue holds at
// least 6 pieces, matching §3's "length >= 6 at all observable points"
// invariant.
func (g *Game) refillQueue() {
	for len(g.Queue) < 6 {
		bag := []Kind{I, O, J, L, S, Z, T}
		g.RNG.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
		g.Queue = append(g.Queue, bag...)
	}
}

// popQueue dequeues the next piece kind, refilling as needed afterward.
func (g *Game) popQueue() Kind {
	k := g.Queue[0]
	g.Queue = g.Queue[1:]
	g.refillQueue()
	return k
}

// pushFrontQueue reinserts a kind at the head of the queue (the hold
// command's swap path, §4.G / §9 note 4).
func (g *Game) pushFrontQueue(k Kind) {
	g.Queue = append([]Kind{k}, g.Queue...)
}

// ExecuteCommand applies a single command and returns any events it
// produced.
func (g *Game) ExecuteCommand(cmd Command) ([]Event, error) {
	if g.Dead {
		return nil, ErrGameOver
	}
	if !validCommands[cmd] {
		return nil, ErrInvalidCommand
	}

	switch cmd {
	case CmdMoveLeft:
		if next, ok := moveLeft(g.Board, g.Current); ok {
			g.Current = next
		}
	case CmdMoveRight:
		if next, ok := moveRight(g.Board, g.Current); ok {
			g.Current = next
		}
	case CmdDrop:
		if next, ok := moveDrop(g.Board, g.Current); ok {
			g.Current = next
		}
	case CmdSonicLeft:
		g.Current = sonicLeft(g.Board, g.Current)
	case CmdSonicRight:
		g.Current = sonicRight(g.Board, g.Current)
	case CmdSonicDrop:
		g.Current = sonicDrop(g.Board, g.Current)
	case CmdRotateCW:
		if next, ok := rotate(g.Board, g.Current, TurnCW); ok {
			g.Current = next
			g.isImmobile = g.Board.Immobile(g.Current)
		}
	case CmdRotateCCW:
		if next, ok := rotate(g.Board, g.Current, TurnCCW); ok {
			g.Current = next
			g.isImmobile = g.Board.Immobile(g.Current)
		}
	case CmdHold:
		return g.hold()
	case CmdHardDrop:
		return g.hardDrop()
	}
	return nil, nil
}

// hold is a no-op if !CanHold; otherwise swaps the current piece into hold
// and deals the next current from the queue (the held kind returns to the
// queue's head, it is not re-spawned directly — see §9 note 4).
func (g *Game) hold() ([]Event, error) {
	if !g.CanHold {
		return nil, nil
	}
	newHeld := g.Current.Kind
	if g.Held != nil {
		g.pushFrontQueue(*g.Held)
	}
	next := g.popQueue()
	g.Current = spawnPiece(next, g.Options)
	g.Held = &newHeld
	g.CanHold = false
	g.isImmobile = g.Board.Immobile(g.Current)

	if g.Board.CollisionPiece(g.Current) {
		g.Dead = true
		return []Event{{EventType: EventGameOver}}, nil
	}
	return nil, nil
}

// hardDrop implements the full §4.G hard_drop sequence.
func (g *Game) hardDrop() ([]Event, error) {
	var events []Event

	initial := g.Current
	final := sonicDrop(g.Board, initial)
	g.Board.Place(final)

	clearedLines := g.Board.ClearFullRows()
	n := len(clearedLines)
	garbageClearedNow := 0
	for _, line := range clearedLines {
		for _, cell := range line.Blocks {
			if cell == GarbageCell {
				garbageClearedNow++
				break
			}
		}
	}

	isPC := n > 0 && g.Board.IsPerfectClear()
	res := calculateScore(g.Options, isPC, n, g.isImmobile, g.B2B, g.Combo)

	g.Combo = res.ComboOut
	g.B2B = res.B2BOut
	g.Score += res.Attack
	g.PiecesPlaced++
	if garbageClearedNow > 0 {
		g.GarbageCleared += garbageClearedNow
	}

	remaining, residualAttack, cancelled := g.cancelAndTick(res.Attack, n)
	g.GarbageQueue = remaining

	events = append(events, Event{EventType: EventPiecePlaced, Initial: initial, Final: final})
	if res.HasClear {
		events = append(events, Event{
			EventType:    EventClear,
			Name:         res.Name,
			AllSpin:      res.AllSpin,
			B2B:          res.B2BOut,
			Combo:        res.ComboOut,
			PC:           res.PC,
			Attack:       residualAttack,
			Cancelled:    cancelled,
			Piece:        final,
			ClearedLines: clearedLines,
		})
	}

	if len(g.materializedHoles) > 0 {
		events = append(events, Event{EventType: EventDamageTanked, HoleIndices: g.materializedHoles})
		g.materializedHoles = nil
	}

	nextKind := g.popQueue()
	g.Current = spawnPiece(nextKind, g.Options)
	g.CanHold = true
	g.isImmobile = g.Board.Immobile(g.Current)

	if g.Board.CollisionPiece(g.Current) {
		g.Dead = true
		events = append(events, Event{EventType: EventGameOver})
	}

	return events, nil
}

// cancelAndTick cancels outgoing attack against the garbage queue, and —
// only if this placement cleared zero lines — runs the garbage-tick that
// materializes every delay-0 line and decrements the rest. Any materialized
// holes are stashed on g.materializedHoles for the DamageTanked event. The
// returned residual attack is what's left of the outgoing attack after
// cancellation — the value reported on the Clear event, per §4.F.
func (g *Game) cancelAndTick(attack, clearedLines int) ([]GarbageLine, int, int) {
	queue, residualAttack, cancelled := cancelGarbage(g.GarbageQueue, attack)
	if clearedLines == 0 {
		remaining, materialized := tickGarbage(queue)
		if len(materialized) > 0 {
			insertGarbage(g.Board, materialized)
			holes := make([]int, len(materialized))
			for i, line := range materialized {
				holes[i] = line.Index
			}
			g.materializedHoles = holes
		}
		queue = remaining
	}
	return queue, residualAttack, cancelled
}

// ExecuteCommands runs a batch, appending an implicit trailing hard_drop
// (§4.G / §9 note 2), stopping at the first hard_drop or once the game is
// dead.
func (g *Game) ExecuteCommands(cmds []Command) ([]Event, error) {
	all := append(append([]Command{}, cmds...), CmdHardDrop)
	var events []Event
	for _, cmd := range all {
		evs, err := g.ExecuteCommand(cmd)
		if err != nil {
			return events, err
		}
		events = append(events, evs...)
		if g.Dead || cmd == CmdHardDrop {
			break
		}
	}
	return events, nil
}

// QueueGarbage queues count fresh garbage lines at the configured delay,
// assigning hole columns per §4.F's messiness rule.
func (g *Game) QueueGarbage(count int) {
	lines := assignGarbageHoles(g.RNG, g.Options.BoardWidth, count, g.Options.GarbageDelay, g.Options.GarbageMessiness, g.lastHole)
	if len(lines) > 0 {
		last := lines[len(lines)-1].Index
		g.lastHole = &last
	}
	g.GarbageQueue = append(g.GarbageQueue, lines...)
}

// QueueGarbageLines appends pre-built garbage lines directly, keeping their
// delays and hole indices as given.
func (g *Game) QueueGarbageLines(lines []GarbageLine) {
	g.GarbageQueue = append(g.GarbageQueue, lines...)
}

// DangerouslyDropPiece teleports current directly to pieceData (no
// collision check — the caller asserts reachability), performing an
// implicit hold first if pieceData's kind differs from the current piece's.
func (g *Game) DangerouslyDropPiece(pieceData PieceData) ([]Event, error) {
	if g.Dead {
		return nil, ErrGameOver
	}
	if pieceData.Kind != g.Current.Kind {
		if !g.CanHold {
			return nil, ErrHoldRefused
		}
		if _, err := g.hold(); err != nil {
			return nil, err
		}
		if g.Dead {
			return []Event{{EventType: EventGameOver}}, nil
		}
		if pieceData.Kind != g.Current.Kind {
			return nil, ErrHoldRefused
		}
	}
	g.Current = pieceData
	return g.hardDrop()
}

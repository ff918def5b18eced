package tetris

// moveLeft returns (x-1, y, rot) if legal, else the input unchanged and ok=false.
func moveLeft(b *Board, p PieceData) (PieceData, bool) {
	next := p
	next.X--
	if b.CollisionPiece(next) {
		return p, false
	}
	return next, true
}

// moveRight returns (x+1, y, rot) if legal, else the input unchanged and ok=false.
func moveRight(b *Board, p PieceData) (PieceData, bool) {
	next := p
	next.X++
	if b.CollisionPiece(next) {
		return p, false
	}
	return next, true
}

// moveDrop returns (x, y-1, rot) if legal, else the input unchanged and ok=false.
func moveDrop(b *Board, p PieceData) (PieceData, bool) {
	next := p
	next.Y--
	if b.CollisionPiece(next) {
		return p, false
	}
	return next, true
}

// sonicLeft repeatedly decrements x while non-colliding, returning the last
// legal pose.
func sonicLeft(b *Board, p PieceData) PieceData {
	for {
		next, ok := moveLeft(b, p)
		if !ok {
			return p
		}
		p = next
	}
}

// sonicRight is the mirror of sonicLeft.
func sonicRight(b *Board, p PieceData) PieceData {
	for {
		next, ok := moveRight(b, p)
		if !ok {
			return p
		}
		p = next
	}
}

// sonicDrop repeatedly decrements y while non-colliding; the result is the
// hard-drop position for the pose.
func sonicDrop(b *Board, p PieceData) PieceData {
	for {
		next, ok := moveDrop(b, p)
		if !ok {
			return p
		}
		p = next
	}
}

// Ghost returns the pose p would land at if hard-dropped right now,
// without mutating the board — the landing preview a client UI draws
// under the falling piece.
func Ghost(b *Board, p PieceData) PieceData {
	return sonicDrop(b, p)
}

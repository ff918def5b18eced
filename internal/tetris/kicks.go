package tetris

// TurnDirection is the direction of a rotate command.
type TurnDirection int

const (
	TurnCW TurnDirection = iota
	TurnCCW
)

// rotate performs the atomic SRS rotate-with-kick: select the new rotation,
// then try the kind's kick table offsets in order, returning the first
// non-colliding pose. ok is false if no offset lands (including 180
// rotations, which have no defined kicks).
func rotate(b *Board, p PieceData, dir TurnDirection) (PieceData, bool) {
	delta := 1
	if dir == TurnCCW {
		delta = 3
	}
	newRot := p.Rotation.Add(delta)

	offsets := kicksFor(p.Kind)[p.Rotation][newRot]
	if offsets == nil {
		return p, false
	}
	for _, off := range offsets {
		candidate := PieceData{Kind: p.Kind, X: p.X + off.DX, Y: p.Y + off.DY, Rotation: newRot}
		if !b.CollisionPiece(candidate) {
			return candidate, true
		}
	}
	return p, false
}

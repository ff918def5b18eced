package tetris

// kickOffset is one (dx, dy) candidate tried in rotation order.
type kickOffset struct {
	DX, DY int
}

// kickTable is indexed [from_rot][to_rot]; a nil entry means the transition
// (always a 180 or a no-op) has no defined kicks.
type kickTable [numRotations][numRotations][]kickOffset

// wallkicks is the standard SRS table, used by every piece kind except I.
var wallkicks = kickTable{
	RotSpawn: {
		RotSpawn: nil,
		RotCW:    {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		Rot180:   nil,
		RotCCW:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	RotCW: {
		RotSpawn: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		RotCW:    nil,
		Rot180:   {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		RotCCW:   nil,
	},
	Rot180: {
		RotSpawn: nil,
		RotCW:    {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		Rot180:   nil,
		RotCCW:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	RotCCW: {
		RotSpawn: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		RotCW:    nil,
		Rot180:   {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		RotCCW:   nil,
	},
}

// iWallkicks is the I-piece-specific SRS table.
var iWallkicks = kickTable{
	RotSpawn: {
		RotSpawn: nil,
		RotCW:    {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		Rot180:   nil,
		RotCCW:   {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	RotCW: {
		RotSpawn: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		RotCW:    nil,
		Rot180:   {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		RotCCW:   nil,
	},
	Rot180: {
		RotSpawn: nil,
		RotCW:    {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		Rot180:   nil,
		RotCCW:   {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
	RotCCW: {
		RotSpawn: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		RotCW:    nil,
		Rot180:   {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		RotCCW:   nil,
	},
}

// kicksFor selects the kick table for a piece kind.
func kicksFor(k Kind) *kickTable {
	if k == I {
		return &iWallkicks
	}
	return &wallkicks
}

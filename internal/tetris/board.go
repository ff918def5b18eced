package tetris

import "math"

// Board is a cellular playfield, row 0 at the bottom. No trailing
// all-empty rows are stored; the board grows lazily as pieces land above
// its current top.
type Board struct {
	Width int
	Rows  [][]byte
}

// NewBoard returns an empty board of the given width.
func NewBoard(width int) *Board {
	return &Board{Width: width}
}

// Clone returns a deep copy, used by the move generator to explore poses
// without mutating the live board.
func (b *Board) Clone() *Board {
	rows := make([][]byte, len(b.Rows))
	for i, row := range b.Rows {
		rows[i] = append([]byte(nil), row...)
	}
	return &Board{Width: b.Width, Rows: rows}
}

// cellAt returns the cell at (x, y), or CellEmpty if out of the stored
// region.
func (b *Board) cellAt(x, y int) byte {
	if x < 0 || x >= b.Width || y < 0 || y >= len(b.Rows) {
		return CellEmpty
	}
	return b.Rows[y][x]
}

// windowMask builds the 16-bit mask of the 4x4 sub-window anchored at
// (x, y-3)..(x+3, y), bit layout matching the piece mask (bit y*4+x with y
// measured from the window's bottom).
func (b *Board) windowMask(x, y int) uint16 {
	var mask uint16
	for dy := 0; dy < 4; dy++ {
		row := y - 3 + dy
		for dx := 0; dx < 4; dx++ {
			if b.cellAt(x+dx, row) != CellEmpty {
				mask |= 1 << uint(dy*4+dx)
			}
		}
	}
	return mask
}

// Collision reports whether placing kind at (x, y, rot) overlaps the
// boundary or an occupied cell.
func (b *Board) Collision(kind Kind, x, y int, rot Rotation) bool {
	bd := pieceBorders[kind][rot]
	if x+bd.MinX < 0 || x+bd.MaxX >= b.Width || y-bd.MaxRow < 0 {
		return true
	}
	if y-3 >= len(b.Rows) {
		return false
	}
	pieceMaskBits := pieceMask[kind][rot]
	return pieceMaskBits&b.windowMask(x, y) != 0
}

// CollisionPiece is a convenience wrapper over Collision for a PieceData.
func (b *Board) CollisionPiece(p PieceData) bool {
	return b.Collision(p.Kind, p.X, p.Y, p.Rotation)
}

// ensureHeight grows the board with empty rows so that row index y exists.
func (b *Board) ensureHeight(y int) {
	for len(b.Rows) <= y {
		b.Rows = append(b.Rows, make([]byte, b.Width))
	}
}

// Place writes the piece's filled cells onto the board, growing it upward
// as needed, tagging each cell with the piece's kind letter.
func (b *Board) Place(p PieceData) {
	letter := p.Kind.Letter()
	for _, cell := range p.cells() {
		x, y := cell[0], cell[1]
		b.ensureHeight(y)
		b.Rows[y][x] = letter
	}
}

// ClearedLine is a removed row, carrying its original height and contents.
type ClearedLine struct {
	Height int
	Blocks []byte
}

// isRowFull reports whether every cell in the row is non-empty.
func isRowFull(row []byte) bool {
	for _, c := range row {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every row whose cells are all non-empty, returning
// them (lower rows first) in their original order, and compacts the
// remaining rows downward.
func (b *Board) ClearFullRows() []ClearedLine {
	var cleared []ClearedLine
	remaining := b.Rows[:0]
	for y, row := range b.Rows {
		if isRowFull(row) {
			cleared = append(cleared, ClearedLine{Height: y, Blocks: append([]byte(nil), row...)})
			continue
		}
		remaining = append(remaining, row)
	}
	b.Rows = remaining
	return cleared
}

// IsPerfectClear reports whether the board is empty or holds only empty
// rows.
func (b *Board) IsPerfectClear() bool {
	for _, row := range b.Rows {
		for _, c := range row {
			if c != CellEmpty {
				return false
			}
		}
	}
	return true
}

var immobileDeltas = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Immobile reports whether the piece cannot translate one cell in any of
// the four cardinal directions without colliding — the canonical
// definition of a "spin" for scoring purposes.
func (b *Board) Immobile(p PieceData) bool {
	for _, d := range immobileDeltas {
		if !b.Collision(p.Kind, p.X+d[0], p.Y+d[1], p.Rotation) {
			return false
		}
	}
	return true
}

// Heights returns, for every column, the height of its highest occupied
// cell plus one (0 for an empty column).
func (b *Board) Heights() []int {
	heights := make([]int, b.Width)
	for x := 0; x < b.Width; x++ {
		for y := len(b.Rows) - 1; y >= 0; y-- {
			if b.Rows[y][x] != CellEmpty {
				heights[x] = y + 1
				break
			}
		}
	}
	return heights
}

// AvgHeight is the mean column height.
func (b *Board) AvgHeight() float64 {
	heights := b.Heights()
	if len(heights) == 0 {
		return 0
	}
	sum := 0
	for _, h := range heights {
		sum += h
	}
	return float64(sum) / float64(len(heights))
}

// Bumpiness is the population standard deviation of column heights.
func (b *Board) Bumpiness() float64 {
	heights := b.Heights()
	if len(heights) == 0 {
		return 0
	}
	avg := b.AvgHeight()
	var variance float64
	for _, h := range heights {
		d := float64(h) - avg
		variance += d * d
	}
	variance /= float64(len(heights))
	return math.Sqrt(variance)
}

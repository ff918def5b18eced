package tetris

import "testing"

func TestCollisionEmptyBoard(t *testing.T) {
	b := NewBoard(10)
	if b.Collision(I, 3, 20, RotSpawn) {
		t.Error("spawn-height I piece should not collide with an empty board")
	}
}

func TestCollisionWallBounds(t *testing.T) {
	b := NewBoard(10)
	if !b.Collision(I, -1, 20, RotSpawn) {
		t.Error("I piece hanging off the left wall should collide")
	}
	if !b.Collision(I, 7, 20, RotSpawn) {
		t.Error("I piece hanging off the right wall should collide")
	}
}

func TestCollisionFloor(t *testing.T) {
	b := NewBoard(10)
	if !b.Collision(O, 0, -1, RotSpawn) {
		t.Error("O piece below the floor should collide")
	}
}

func TestPlaceAndClearFullRows(t *testing.T) {
	b := NewBoard(4)
	// Two O pieces side by side fill a 2-row-tall, 4-wide board exactly.
	b.Place(PieceData{Kind: O, X: 0, Y: 1, Rotation: RotSpawn})
	b.Place(PieceData{Kind: O, X: 2, Y: 1, Rotation: RotSpawn})

	cleared := b.ClearFullRows()
	if len(cleared) != 2 {
		t.Fatalf("cleared %d rows, want 2", len(cleared))
	}
	if !b.IsPerfectClear() {
		t.Error("board should be a perfect clear after both rows cleared")
	}
}

func TestClearFullRowsPreservesOrderAndNonFullRows(t *testing.T) {
	b := NewBoard(2)
	b.Rows = [][]byte{
		{'I', 'I'}, // full, bottom
		{'I', 0},   // not full
		{'I', 'I'}, // full, top
	}
	cleared := b.ClearFullRows()
	if len(cleared) != 2 {
		t.Fatalf("cleared %d rows, want 2", len(cleared))
	}
	if cleared[0].Height != 0 || cleared[1].Height != 2 {
		t.Errorf("cleared heights = %d, %d, want original heights 0, 2 (lower rows first)", cleared[0].Height, cleared[1].Height)
	}
	if len(b.Rows) != 1 || b.Rows[0][0] != 'I' {
		t.Errorf("remaining rows = %v, want the single not-full row to survive", b.Rows)
	}
}

func TestImmobileInOpenSpace(t *testing.T) {
	b := NewBoard(10)
	p := PieceData{Kind: T, X: 3, Y: 5, Rotation: RotSpawn}
	if b.Immobile(p) {
		t.Error("a T piece in open space should not be immobile")
	}
}

func TestImmobileBoxedIn(t *testing.T) {
	b := NewBoard(4)
	// Surround a T piece pose entirely with garbage so none of the four
	// cardinal translations succeed.
	for y := 0; y < 6; y++ {
		b.ensureHeight(y)
		for x := 0; x < 4; x++ {
			b.Rows[y][x] = GarbageCell
		}
	}
	p := PieceData{Kind: T, X: 0, Y: 2, Rotation: RotSpawn}
	// Carve out exactly the T's own cells so placing it doesn't itself
	// collide, but its neighbors stay solid.
	for _, c := range p.cells() {
		b.Rows[c[1]][c[0]] = CellEmpty
	}
	if !b.Immobile(p) {
		t.Error("a T piece boxed in on all four sides should be immobile")
	}
}

func TestHeightsAndBumpiness(t *testing.T) {
	b := NewBoard(3)
	b.Rows = [][]byte{
		{'I', 0, 'I'},
		{'I', 0, 0},
	}
	heights := b.Heights()
	want := []int{2, 0, 1}
	for i, h := range heights {
		if h != want[i] {
			t.Errorf("heights[%d] = %d, want %d", i, h, want[i])
		}
	}
	if b.Bumpiness() <= 0 {
		t.Error("uneven columns should have positive bumpiness")
	}
}

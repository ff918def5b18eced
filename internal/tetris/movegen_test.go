package tetris

import (
	"sort"
	"testing"
)

func keysOf(m map[PieceData]Move) []PieceData {
	keys := make([]PieceData, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Rotation != b.Rotation {
			return a.Rotation < b.Rotation
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return keys
}

func TestAlgorithmAgreement(t *testing.T) {
	b := NewBoard(10)
	opts := DefaultOptions()

	algos := []Algorithm{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoDijkShort}
	var sets [][]PieceData
	for _, algo := range algos {
		result := GenerateMoves(b, T, nil, opts, algo)
		sets = append(sets, keysOf(result))
	}

	want := sets[0]
	for i := 1; i < len(sets); i++ {
		if len(sets[i]) != len(want) {
			t.Fatalf("%s found %d placements, %s found %d", algos[i], len(sets[i]), algos[0], len(want))
		}
		for j := range want {
			if sets[i][j] != want[j] {
				t.Fatalf("%s and %s disagree on placement set at index %d: %+v vs %+v", algos[i], algos[0], j, sets[i][j], want[j])
			}
		}
	}
}

func TestMoveGeneratorShortestPathLength(t *testing.T) {
	b := NewBoard(10)
	opts := DefaultOptions()
	result := GenerateMoves(b, O, nil, opts, AlgoBFS)

	straightDown := PieceData{Kind: O, X: opts.BoardWidth/2 - 2, Y: 1, Rotation: RotSpawn}
	path, ok := result[straightDown]
	if !ok {
		t.Fatal("straight-down O placement missing from generated moves")
	}
	// Spawn y is BoardHeight and the O rests at y=1, so the BFS path is
	// BoardHeight-1 single-row drops.
	wantDrops := opts.BoardHeight - 1
	if len(path) != wantDrops {
		t.Errorf("shortest path to spawn-column placement = %v, want %d drops", path, wantDrops)
	}
	for _, cmd := range path {
		if cmd != CmdDrop {
			t.Errorf("shortest path to spawn-column placement = %v, want only drops", path)
			break
		}
	}
}

func TestMoveGeneratorReplayReachesPlacement(t *testing.T) {
	b := NewBoard(10)
	opts := DefaultOptions()
	result := GenerateMoves(b, T, nil, opts, AlgoBFS)

	for placement, path := range result {
		p := spawnPiece(T, opts)
		for _, cmd := range path {
			switch cmd {
			case CmdMoveLeft:
				p, _ = moveLeft(b, p)
			case CmdMoveRight:
				p, _ = moveRight(b, p)
			case CmdDrop:
				p, _ = moveDrop(b, p)
			case CmdSonicLeft:
				p = sonicLeft(b, p)
			case CmdSonicRight:
				p = sonicRight(b, p)
			case CmdSonicDrop:
				p = sonicDrop(b, p)
			case CmdRotateCW:
				p, _ = rotate(b, p, TurnCW)
			case CmdRotateCCW:
				p, _ = rotate(b, p, TurnCCW)
			}
		}
		final := sonicDrop(b, p)
		if final != placement {
			t.Fatalf("replaying path %v from spawn landed at %+v, want %+v", path, final, placement)
		}
	}
}

func TestGenerateMovesCollidingSpawnIsEmpty(t *testing.T) {
	b := NewBoard(4)
	for y := 0; y < 25; y++ {
		b.ensureHeight(y)
		for x := 0; x < 4; x++ {
			b.Rows[y][x] = GarbageCell
		}
	}
	opts := DefaultOptions()
	opts.BoardWidth = 4
	result := GenerateMoves(b, I, nil, opts, AlgoBFS)
	if len(result) != 0 {
		t.Errorf("generate_moves on a fully blocked board returned %d placements, want 0", len(result))
	}
}

func TestGenerateMovesHoldPrefix(t *testing.T) {
	b := NewBoard(10)
	opts := DefaultOptions()
	alt := O
	result := GenerateMoves(b, T, &alt, opts, AlgoBFS)

	foundHoldPath := false
	for _, path := range result {
		if len(path) > 0 && path[0] == CmdHold {
			foundHoldPath = true
			break
		}
	}
	if !foundHoldPath {
		t.Error("expected at least one placement reachable only via a hold-prefixed path")
	}
}

package tetris

import "container/heap"

// Move is an input sequence from spawn to a resting placement (see
// GenerateMoves for which algorithms record a shortest one).
type Move []Command

// Algorithm selects a move-generation strategy; all four must agree on the
// set of resting placements they discover (§8 property 6).
type Algorithm string

const (
	AlgoBFS       Algorithm = "bfs"
	AlgoDFS       Algorithm = "dfs"
	AlgoDijkstra  Algorithm = "dijk"
	AlgoDijkShort Algorithm = "dijk-short"
)

// spawnPiece returns the initial pose for kind under opts: x centers the
// piece's 4x4 window (every kind's matrix is padded to that width, so the
// centering term is a constant, not the kind's occupied-column width), y
// sits the window just above the visible playfield, rotation is spawn.
func spawnPiece(kind Kind, opts Options) PieceData {
	x := opts.BoardWidth/2 - 2
	return PieceData{Kind: kind, X: x, Y: opts.BoardHeight, Rotation: RotSpawn}
}

// addMove normalizes piece via sonic_drop before recording it, so every
// move-generation algorithm converges on the same resting-placement set
// regardless of which node triggered the call.
func addMove(b *Board, result map[PieceData]Move, piece PieceData, path Move) {
	piece = sonicDrop(b, piece)
	existing, ok := result[piece]
	if !ok || len(path) < len(existing) {
		cp := make(Move, len(path))
		copy(cp, path)
		result[piece] = cp
	}
}

func appended(path Move, cmd Command) Move {
	out := make(Move, len(path)+1)
	copy(out, path)
	out[len(path)] = cmd
	return out
}

// GenerateMoves enumerates every reachable resting PieceData for kind,
// optionally also exploring placements reachable via an implicit hold into
// alternative, returning an input sequence to each (§4.E). AlgoBFS,
// AlgoDijkstra and AlgoDijkShort (over its larger command set) record a
// shortest sequence; AlgoDFS records the first sequence its depth-first walk
// reaches, which is not necessarily the shortest.
func GenerateMoves(b *Board, kind Kind, alternative *Kind, opts Options, algo Algorithm) map[PieceData]Move {
	result := make(map[PieceData]Move)

	start := spawnPiece(kind, opts)
	if b.CollisionPiece(start) {
		return result
	}
	runAlgo(b, start, nil, result, algo)

	if alternative != nil && *alternative != kind {
		altStart := spawnPiece(*alternative, opts)
		if !b.CollisionPiece(altStart) {
			runAlgo(b, altStart, Move{CmdHold}, result, algo)
		}
	}
	return result
}

func runAlgo(b *Board, start PieceData, prefix Move, result map[PieceData]Move, algo Algorithm) {
	switch algo {
	case AlgoDFS:
		dfsHelper(b, start, result, prefix, map[PieceData]bool{})
	case AlgoDijkstra:
		dijkstraHelper(b, start, result, prefix)
	case AlgoDijkShort:
		dijkstraShortHelper(b, start, result, prefix)
	default:
		bfsHelper(b, start, result, prefix)
	}
}

type bfsNode struct {
	piece PieceData
	path  Move
}

func bfsHelper(b *Board, start PieceData, result map[PieceData]Move, prefix Move) {
	initial := append(Move{}, prefix...)
	queue := []bfsNode{{piece: start, path: initial}}
	visited := map[PieceData]bool{}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if visited[node.piece] {
			continue
		}
		visited[node.piece] = true

		if down, ok := moveDrop(b, node.piece); ok {
			queue = append(queue, bfsNode{piece: down, path: appended(node.path, CmdDrop)})
		} else {
			addMove(b, result, node.piece, node.path)
		}

		if left, ok := moveLeft(b, node.piece); ok {
			queue = append(queue, bfsNode{piece: left, path: appended(node.path, CmdMoveLeft)})
		}
		if right, ok := moveRight(b, node.piece); ok {
			queue = append(queue, bfsNode{piece: right, path: appended(node.path, CmdMoveRight)})
		}
		if cw, ok := rotate(b, node.piece, TurnCW); ok {
			queue = append(queue, bfsNode{piece: cw, path: appended(node.path, CmdRotateCW)})
		}
		if ccw, ok := rotate(b, node.piece, TurnCCW); ok {
			queue = append(queue, bfsNode{piece: ccw, path: appended(node.path, CmdRotateCCW)})
		}
	}
}

func dfsHelper(b *Board, current PieceData, result map[PieceData]Move, path Move, visited map[PieceData]bool) {
	if visited[current] {
		return
	}
	visited[current] = true

	if down, ok := moveDrop(b, current); ok {
		dfsHelper(b, down, result, appended(path, CmdDrop), visited)
	} else {
		addMove(b, result, current, path)
	}

	if left, ok := moveLeft(b, current); ok {
		dfsHelper(b, left, result, appended(path, CmdMoveLeft), visited)
	}
	if right, ok := moveRight(b, current); ok {
		dfsHelper(b, right, result, appended(path, CmdMoveRight), visited)
	}
	if cw, ok := rotate(b, current, TurnCW); ok {
		dfsHelper(b, cw, result, appended(path, CmdRotateCW), visited)
	}
	if ccw, ok := rotate(b, current, TurnCCW); ok {
		dfsHelper(b, ccw, result, appended(path, CmdRotateCCW), visited)
	}
}

// pqItem is one entry of the Dijkstra frontier.
type pqItem struct {
	piece PieceData
	path  Move
	dist  int
	seq   int
}

type pq []*pqItem

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}
func (q pq) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x any)        { *q = append(*q, x.(*pqItem)) }
func (q *pq) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func dijkstraHelper(b *Board, start PieceData, result map[PieceData]Move, prefix Move) {
	initial := append(Move{}, prefix...)

	seq := 0
	frontier := &pq{{piece: start, path: initial, dist: 0, seq: seq}}
	heap.Init(frontier)
	visited := map[PieceData]bool{}
	distance := map[PieceData]int{start: 0}

	relax := func(next PieceData, newDist int, path Move) {
		if d, ok := distance[next]; ok && d <= newDist {
			return
		}
		distance[next] = newDist
		seq++
		heap.Push(frontier, &pqItem{piece: next, path: path, dist: newDist, seq: seq})
	}

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(*pqItem)
		if visited[item.piece] {
			continue
		}
		visited[item.piece] = true

		if down, ok := moveDrop(b, item.piece); ok {
			relax(down, item.dist+1, appended(item.path, CmdDrop))
		} else {
			addMove(b, result, item.piece, item.path)
		}

		if left, ok := moveLeft(b, item.piece); ok {
			relax(left, item.dist+1, appended(item.path, CmdMoveLeft))
		}
		if right, ok := moveRight(b, item.piece); ok {
			relax(right, item.dist+1, appended(item.path, CmdMoveRight))
		}
		if cw, ok := rotate(b, item.piece, TurnCW); ok {
			relax(cw, item.dist+1, appended(item.path, CmdRotateCW))
		}
		if ccw, ok := rotate(b, item.piece, TurnCCW); ok {
			relax(ccw, item.dist+1, appended(item.path, CmdRotateCCW))
		}
	}
}

func dijkstraShortHelper(b *Board, start PieceData, result map[PieceData]Move, prefix Move) {
	initial := append(Move{}, prefix...)

	seq := 0
	frontier := &pq{{piece: start, path: initial, dist: 0, seq: seq}}
	heap.Init(frontier)
	visited := map[PieceData]bool{}
	distance := map[PieceData]int{start: 0}

	relax := func(next PieceData, newDist int, path Move) {
		if d, ok := distance[next]; ok && d <= newDist {
			return
		}
		distance[next] = newDist
		seq++
		heap.Push(frontier, &pqItem{piece: next, path: path, dist: newDist, seq: seq})
	}

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(*pqItem)
		if visited[item.piece] {
			continue
		}
		visited[item.piece] = true
		addMove(b, result, item.piece, item.path)

		if down, ok := moveDrop(b, item.piece); ok {
			relax(down, item.dist+1, appended(item.path, CmdDrop))
			relax(sonicDrop(b, item.piece), item.dist+1, appended(item.path, CmdSonicDrop))
		}

		if left, ok := moveLeft(b, item.piece); ok {
			relax(left, item.dist+1, appended(item.path, CmdMoveLeft))
			relax(sonicLeft(b, item.piece), item.dist+1, appended(item.path, CmdSonicLeft))
		}
		if right, ok := moveRight(b, item.piece); ok {
			relax(right, item.dist+1, appended(item.path, CmdMoveRight))
			relax(sonicRight(b, item.piece), item.dist+1, appended(item.path, CmdSonicRight))
		}
		if cw, ok := rotate(b, item.piece, TurnCW); ok {
			relax(cw, item.dist+1, appended(item.path, CmdRotateCW))
		}
		if ccw, ok := rotate(b, item.piece, TurnCCW); ok {
			relax(ccw, item.dist+1, appended(item.path, CmdRotateCCW))
		}
	}
}

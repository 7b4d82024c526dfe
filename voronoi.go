package main

import "container/heap"

// voronoi.go keeps the full-board, exact-shortest-path territorial-control
// diagram (GenerateVoronoi), rendered by VisualizeVoronoi into the
// end-of-game diagnostic (see handleEnd in main.go) — it is too slow to
// call from inside the search tree. The evaluator instead uses
// sampledVoronoiControl below, a fixed-sample approximation (17-30 tiles
// on boards from 7x7 to 13x13; see sampleTiles).

// isLegalMove reports whether snakeIndex may legally move its head to
// newHead, accounting for the fact that a snake which moves earlier in
// turn order has already vacated its tail.
func isLegalMove(board Board, snakeIndex int, newHead Point) bool {
	snake := board.Snakes[snakeIndex]
	if !inBounds(board, newHead) {
		return false
	}

	for i := range board.Snakes {
		other := board.Snakes[i]
		if len(other.Body) == 0 || other.Health == 0 {
			continue
		}
		body := other.Body
		if snakeIndex < i {
			body = body[:len(body)-1]
		}
		for _, segment := range body {
			if newHead == segment {
				return false
			}
		}
		if newHead == other.Head && other.Length() >= snake.Length() {
			return false
		}
	}
	return true
}

type dijkstraNode struct {
	point       Point
	snakeIndex  int
	distance    int
	snakeLength int
}

type priorityQueue []dijkstraNode

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].distance == pq[j].distance {
		return pq[i].snakeLength > pq[j].snakeLength
	}
	return pq[i].distance < pq[j].distance
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(dijkstraNode))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// GenerateVoronoi is the exact-shortest-path variant of territorial
// control, computed via Dijkstra over legal moves. Diagnostic use only;
// the search itself uses the cheaper sampled Manhattan approximation
// instead.
func GenerateVoronoi(board Board) [][]int {
	best := make([][]dijkstraNode, board.Height)
	for i := range best {
		best[i] = make([]dijkstraNode, board.Width)
		for j := range best[i] {
			best[i][j] = dijkstraNode{Point{-1, -1}, -1, -1, -1}
		}
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	for k, snake := range board.Snakes {
		if snake.Health > 0 && len(snake.Body) > 0 {
			head := snake.Head
			heap.Push(pq, dijkstraNode{head, k, 0, len(snake.Body)})
			best[head.Y][head.X] = dijkstraNode{head, k, 0, len(snake.Body)}
		}
	}

	for pq.Len() > 0 {
		node := heap.Pop(pq).(dijkstraNode)
		for _, direction := range AllDirections {
			newPoint := moveHead(node.point, direction)
			if !inBounds(board, newPoint) {
				continue
			}
			if !isLegalMove(board, node.snakeIndex, newPoint) {
				continue
			}
			newDistance := node.distance + 1
			cur := best[newPoint.Y][newPoint.X]
			if cur.snakeIndex == -1 || newDistance < cur.distance ||
				(newDistance == cur.distance && node.snakeLength > cur.snakeLength) {
				best[newPoint.Y][newPoint.X] = dijkstraNode{newPoint, node.snakeIndex, newDistance, node.snakeLength}
				heap.Push(pq, dijkstraNode{newPoint, node.snakeIndex, newDistance, node.snakeLength})
			}
		}
	}

	return dijkstraToResult(best)
}

func dijkstraToResult(best [][]dijkstraNode) [][]int {
	result := make([][]int, len(best))
	for i := range result {
		result[i] = make([]int, len(best[i]))
		for j := range result[i] {
			result[i][j] = best[i][j].snakeIndex
		}
	}
	return result
}

// sampleTiles returns a fixed, board-derived sample of strategic tiles: a
// center cross plus an even-stride grid, filtered to in-bounds,
// deterministic given board dimensions. The sample has 17 tiles on 7x7,
// 30 on 11x11 and 29 on 13x13; the center cross alone is width+height-1
// tiles, so larger boards exceed 30 (33 on 15x15, 41 on 19x19).
func sampleTiles(board Board) []Point {
	seen := make(map[Point]bool)
	var tiles []Point
	add := func(p Point) {
		if !inBounds(board, p) || seen[p] {
			return
		}
		seen[p] = true
		tiles = append(tiles, p)
	}

	cx, cy := board.Width/2, board.Height/2
	for x := 0; x < board.Width; x++ {
		add(Point{x, cy})
	}
	for y := 0; y < board.Height; y++ {
		add(Point{cx, y})
	}

	strideX := board.Width / 4
	if strideX < 1 {
		strideX = 1
	}
	strideY := board.Height / 4
	if strideY < 1 {
		strideY = 1
	}
	for y := strideY; y < board.Height; y += strideY * 2 {
		for x := strideX; x < board.Width; x += strideX * 2 {
			add(Point{x, y})
		}
	}

	return tiles
}

// sampledVoronoiControl approximates territorial dominance by counting,
// over the fixed tile sample, how many tiles our head is strictly closer
// to (Manhattan distance, no passability check — this overestimates
// control in mazy boards, which is acceptable for a cheap in-tree signal)
// than every opponent head. Returns (tilesWon, sampleSize).
func sampledVoronoiControl(board Board, ourHead Point, opponentHeads []Point) (int, int) {
	tiles := sampleTiles(board)
	won := 0
	for _, tile := range tiles {
		ourDist := manhattan(ourHead, tile)
		closer := true
		for _, oppHead := range opponentHeads {
			if manhattan(oppHead, tile) <= ourDist {
				closer = false
				break
			}
		}
		if closer {
			won++
		}
	}
	return won, len(tiles)
}

package main

// eval.go implements a pure, weighted-sum evaluator over twelve named
// heuristics: wall safety, self safety, head-to-head, reachable area,
// adjacent-head caution, predictive head-collision danger, center
// control, food urgency, food safety, tail chase, Voronoi control and
// competitive length.
//
// Evaluate is a pure function of (state, profile, snakeIndex): no I/O, no
// shared mutable state, safe to call from any search node concurrently.

// evalCache memoizes per-state flood-fill results so a single Evaluate
// call never repeats a BFS across the heuristics that need one.
type evalCache struct {
	floodFill map[Point]int
}

func newEvalCache() *evalCache {
	return &evalCache{floodFill: make(map[Point]int)}
}

func (c *evalCache) floodFillCount(board Board, start Point) int {
	if v, ok := c.floodFill[start]; ok {
		return v
	}
	v := floodFillCount(board, start)
	c.floodFill[start] = v
	return v
}

// Breakdown is the evaluator's diagnostic output: the contribution of each
// named heuristic, for logging only.
type Breakdown struct {
	Total      float64
	Components map[string]float64
}

// Evaluate returns the weighted sum of enabled heuristics for the snake at
// snakeIndex under profile. cache may be nil, in which case a private
// per-call cache is allocated (callers evaluating many sibling states
// should share a cache only within a single state's evaluation, never
// across states).
func Evaluate(board Board, snakeIndex int, profile WeightProfile, cache *evalCache) float64 {
	b := evaluateWithBreakdown(board, snakeIndex, profile, cache)
	return b.Total
}

func evaluateWithBreakdown(board Board, snakeIndex int, profile WeightProfile, cache *evalCache) Breakdown {
	if cache == nil {
		cache = newEvalCache()
	}
	components := make(map[string]float64, 12)
	add := func(name string, v float64) { components[name] = v }

	snake := board.Snakes[snakeIndex]

	// 1. Safety - wall.
	if profile.EnableWall && !inBounds(board, snake.Head) {
		add("wall", profile.WallPenalty)
	}

	// 2. Safety - self.
	if profile.EnableSelf {
		body := nonTailBody(snake)
		for _, seg := range body[minInt(1, len(body)):] {
			if seg == snake.Head {
				add("self", profile.SelfPenalty)
				break
			}
		}
	}

	opponentIdx := opponentIndices(board, snakeIndex)

	// 3. Safety - head-to-head (occupied).
	if profile.EnableHeadToHead {
		for _, oi := range opponentIdx {
			opp := board.Snakes[oi]
			if isSnakeDead(opp) {
				continue
			}
			if opp.Head == snake.Head {
				if snake.Length() > opp.Length() {
					add("head_to_head", profile.HeadToHeadWin)
				} else {
					add("head_to_head", profile.HeadToHeadLose)
				}
			}
		}
	}

	var reachable int
	if profile.EnableReachableArea || profile.EnableTailChase {
		reachable = cache.floodFillCount(board, snake.Head)
	}

	// 4. Reachable area.
	if profile.EnableReachableArea {
		add("reachable_area", float64(reachable)*profile.ReachableAreaW)
	}

	// 5. Adjacent-head caution.
	if profile.EnableAdjacentHead {
		total := 0.0
		for _, oi := range opponentIdx {
			opp := board.Snakes[oi]
			if isSnakeDead(opp) {
				continue
			}
			if manhattan(opp.Head, snake.Head) == 1 {
				if snake.Length() > opp.Length() {
					total += profile.AdjacentHeadWin
				} else {
					total += profile.AdjacentHeadLose
				}
			}
		}
		add("adjacent_head", total)
	}

	// 6. Head-collision danger (predictive).
	if profile.EnableHeadCollision {
		total := 0.0
		for _, oi := range opponentIdx {
			opp := board.Snakes[oi]
			if isSnakeDead(opp) {
				continue
			}
			for _, dir := range AllDirections {
				if moveHead(opp.Head, dir) == snake.Head {
					if snake.Length() > opp.Length() {
						total += profile.HeadCollisionWin
					} else {
						total += profile.HeadCollisionLose
					}
					break
				}
			}
		}
		add("head_collision", total)
	}

	// 7. Center control.
	if profile.EnableCenterControl {
		multiOpponent := len(opponentIdx) >= 2
		inCenter := isInCentralRegion(board, snake.Head)
		switch {
		case multiOpponent && inCenter:
			add("center_control", profile.CenterControlBonus)
		case touchesWall(board, snake.Head):
			add("center_control", profile.CenterControlPen)
		}
	}

	hungry := snake.Health < profile.HealthThreshold

	// 8 & 9. Food urgency + food safety penalty.
	if (profile.EnableFoodUrgency || profile.EnableFoodSafety) && hungry && len(board.Food) > 0 {
		nearestFood, dist := nearestFoodDistance(board, snake.Head)
		if dist >= 0 {
			if profile.EnableFoodUrgency {
				add("food_urgency", profile.FoodUrgencyW*(1.0/(1.0+float64(dist))))
			}
			if profile.EnableFoodSafety {
				foodArea := cache.floodFillCount(board, nearestFood)
				ourArea := cache.floodFillCount(board, snake.Head)
				if ourArea > 0 && foodArea < ourArea/3 {
					add("food_safety", profile.FoodSafetyPenalty)
				}
			}
		}
	}

	// 10. Tail chase.
	if profile.EnableTailChase && !hungry {
		boardArea := board.Width * board.Height
		constrained := boardArea > 0 && reachable < boardArea/2
		if constrained && len(snake.Body) > 0 {
			tail := snake.Body[len(snake.Body)-1]
			d := manhattan(snake.Head, tail)
			add("tail_chase", profile.TailChaseW*(1.0/(1.0+float64(d))))
		}
	}

	// 11. Voronoi control.
	if profile.EnableVoronoi {
		opponentHeads := make([]Point, 0, len(opponentIdx))
		for _, oi := range opponentIdx {
			if !isSnakeDead(board.Snakes[oi]) {
				opponentHeads = append(opponentHeads, board.Snakes[oi].Head)
			}
		}
		won, total := sampledVoronoiControl(board, snake.Head, opponentHeads)
		if total > 0 {
			add("voronoi", (float64(won)/float64(total))*profile.VoronoiW)
		}
	}

	// 12. Competitive length.
	if profile.EnableCompetitiveLen && !hungry && len(board.Food) > 0 {
		longestOpponent := 0
		for _, oi := range opponentIdx {
			if !isSnakeDead(board.Snakes[oi]) && board.Snakes[oi].Length() > longestOpponent {
				longestOpponent = board.Snakes[oi].Length()
			}
		}
		_, dist := nearestFoodDistance(board, snake.Head)
		if dist >= 0 {
			w := profile.CompetitiveLenW
			if snake.Length() < longestOpponent {
				w = profile.CompetitiveLenCrit
			}
			if snake.Length() < longestOpponent+2 {
				add("competitive_length", w*(1.0/(1.0+float64(dist))))
			}
		}
	}

	total := 0.0
	for _, v := range components {
		total += v
	}
	return Breakdown{Total: total, Components: components}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// opponentIndices returns the indices of every snake other than
// snakeIndex, alive or not (callers filter dead ones as needed).
func opponentIndices(board Board, snakeIndex int) []int {
	idx := make([]int, 0, len(board.Snakes)-1)
	for i := range board.Snakes {
		if i != snakeIndex {
			idx = append(idx, i)
		}
	}
	return idx
}

// isInCentralRegion reports whether p falls in the central 5x5 region of
// the board.
func isInCentralRegion(board Board, p Point) bool {
	cx, cy := board.Width/2, board.Height/2
	return abs(p.X-cx) <= 2 && abs(p.Y-cy) <= 2
}

// touchesWall reports whether p sits on the board's outer ring.
func touchesWall(board Board, p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == board.Width-1 || p.Y == board.Height-1
}

// nearestFoodDistance returns the closest food coordinate to head by BFS
// distance, and that distance, or (_, -1) if no food is reachable.
func nearestFoodDistance(board Board, head Point) (Point, int) {
	best := -1
	var bestFood Point
	for _, food := range board.Food {
		d := bfsDistance(board, head, food)
		if d < 0 {
			continue
		}
		if best == -1 || d < best {
			best = d
			bestFood = food
		}
	}
	return bestFood, best
}

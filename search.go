package main

import (
	"hash/fnv"
	"math"
	"sort"
	"time"
)

// search.go implements bounded-depth minimax with alpha-beta pruning, a
// hard wall-clock deadline escape, opponent branching folded into the
// maximizing ply for the first few plies, and deterministic tie-breaking.

// MoveDecision is the search's public result: the chosen direction and
// the score that justified it.
type MoveDecision struct {
	Move  Direction
	Score float64
}

// noSafeMoveScore is the sentinel returned when a snake has no legal move
// at all.
const noSafeMoveScore = math.MinInt32

// dynamicDepth is the caller-side depth guideline: 10 when solo, 8 for a
// 2-player endgame, 5 when the board is more than 40% occupied, 6
// otherwise. The deadline remains authoritative regardless.
func dynamicDepth(board Board, ourIndex int) int {
	opponents := aliveOpponentCount(board, ourIndex)
	switch {
	case opponents == 0:
		return 10
	case opponents == 1:
		return 8
	case density(board) > 0.40:
		return 5
	default:
		return 6
	}
}

// ChooseMove is the top-level entry point used by the transport layer: it
// derives the phase-selected weight profile and the dynamic search depth,
// then calls chooseMoveCore, which computes the depth-0 pre-scores.
func ChooseMove(board Board, ourIndex int, turn int, deadline time.Time) MoveDecision {
	profile := selectProfile(board, turn, ourIndex)
	depth := dynamicDepth(board, ourIndex)
	return chooseMoveCore(board, ourIndex, turn, depth, profile, deadline)
}

// chooseMoveCore drives a single top-level decision given an explicit
// depth and profile, computing the depth-0 pre-scores internally. Tests
// call this directly to pin a profile/depth for determinism; ChooseMove
// derives both from the board before delegating here.
func chooseMoveCore(board Board, ourIndex int, turn int, maxDepth int, profile WeightProfile, deadline time.Time) MoveDecision {
	safe := generateSafeMoves(board, ourIndex)
	if len(safe) == 0 {
		return MoveDecision{Move: Up, Score: noSafeMoveScore}
	}
	if len(safe) == 1 {
		return MoveDecision{Move: safe[0], Score: Evaluate(applyFrozenMove(board, ourIndex, safe[0]), ourIndex, profile, nil)}
	}

	candidates := spaceFilter(board, ourIndex, safe)

	depth0 := make(map[Direction]float64, len(candidates))
	for _, move := range candidates {
		depth0[move] = Evaluate(applyFrozenMove(board, ourIndex, move), ourIndex, profile, nil)
	}

	oppHorizon := maxDepth
	if oppHorizon > 3 {
		oppHorizon = 3
	}
	opp := nearestOpponent(board, ourIndex)

	results := make([]scoredMove, 0, len(candidates))

	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, move := range candidates {
		if time.Now().After(deadline) {
			results = append(results, scoredMove{move, depth0[move]})
			continue
		}

		var childScore float64
		if oppHorizon > 0 && opp != -1 {
			childScore = branchOnOpponent(board, ourIndex, move, opp, maxDepth-1, false, alpha, beta, profile, oppHorizon-1, deadline)
		} else {
			child := applyFrozenMove(board, ourIndex, move)
			childScore = searchNode(child, ourIndex, maxDepth-1, false, alpha, beta, profile, 0, deadline)
		}

		results = append(results, scoredMove{move, childScore})
		if childScore > alpha {
			alpha = childScore
		}
	}

	return selectByTieBreak(results, depth0, board, ourIndex, turn)
}

// spaceFilter keeps only the candidate moves whose post-move reachable
// area is at least our current length; if that empties the set it falls
// back to the unfiltered safe moves — moving into a smaller-than-ideal
// space still beats refusing to move at all.
func spaceFilter(board Board, ourIndex int, safe []Direction) []Direction {
	ourLength := board.Snakes[ourIndex].Length()
	var filtered []Direction
	for _, move := range safe {
		child := applyFrozenMove(board, ourIndex, move)
		if floodFillCount(child, child.Snakes[ourIndex].Head) >= ourLength {
			filtered = append(filtered, move)
		}
	}
	if len(filtered) == 0 {
		return safe
	}
	return filtered
}

// branchOnOpponent implements the maximizing ply's opponent-branching
// step: for the given move, enumerate the nearest opponent's safe moves
// and take the minimum (worst case for us) of the resulting children,
// each simulated with variant (b). If the opponent has no safe move, it
// falls back to the frozen variant. The opponent's predicted best move is
// tried first (see predictOpponentMove). This loop has no alpha-beta
// cutoff of its own: every safe move is visited unless the deadline passes
// first, so the order only decides which branches were searched when the
// deadline stops the loop early, not the set of worst-case branches
// considered otherwise.
func branchOnOpponent(board Board, ourIndex int, move Direction, opp, depth int, maximizing bool, alpha, beta float64, profile WeightProfile, oppHorizon int, deadline time.Time) float64 {
	oppMoves := generateSafeMoves(board, opp)
	if len(oppMoves) == 0 {
		child := applyFrozenMove(board, ourIndex, move)
		return searchNode(child, ourIndex, depth, maximizing, alpha, beta, profile, oppHorizon, deadline)
	}
	oppMoves = orderByPrediction(board, opp, oppMoves)

	worst := math.Inf(1)
	for _, oppMove := range oppMoves {
		if time.Now().After(deadline) {
			break
		}
		child := applyMoveWithOpponent(board, ourIndex, move, opp, oppMove)
		score := searchNode(child, ourIndex, depth, maximizing, alpha, beta, profile, oppHorizon, deadline)
		if score < worst {
			worst = score
		}
	}
	return worst
}

// searchNode is the recursive minimax body. ourIndex never changes across
// the recursion; maximizing/minimizing alternate the alpha-beta role
// rather than which snake is moving — the minimizing ply is a structural
// device of the alpha-beta alternation, re-enumerating our own moves to
// find a worst-case bound, not a second agent's turn. Opponent moves are
// injected explicitly via branchOnOpponent from the maximizing ply only.
func searchNode(board Board, ourIndex int, depth int, maximizing bool, alpha, beta float64, profile WeightProfile, oppHorizon int, deadline time.Time) float64 {
	if time.Now().After(deadline) {
		return Evaluate(board, ourIndex, cheapProfile(), nil)
	}
	if depth == 0 {
		return Evaluate(board, ourIndex, profile, nil)
	}

	moves := generateSafeMoves(board, ourIndex)
	if len(moves) == 0 {
		return Evaluate(board, ourIndex, profile, nil)
	}

	opp := nearestOpponent(board, ourIndex)

	if maximizing {
		best := math.Inf(-1)
		for _, move := range moves {
			if time.Now().After(deadline) {
				break
			}
			var score float64
			if oppHorizon > 0 && opp != -1 {
				score = branchOnOpponent(board, ourIndex, move, opp, depth-1, false, alpha, beta, profile, oppHorizon-1, deadline)
			} else {
				child := applyFrozenMove(board, ourIndex, move)
				score = searchNode(child, ourIndex, depth-1, false, alpha, beta, profile, 0, deadline)
			}
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	worst := math.Inf(1)
	for _, move := range moves {
		if time.Now().After(deadline) {
			break
		}
		child := applyFrozenMove(board, ourIndex, move)
		score := searchNode(child, ourIndex, depth-1, true, alpha, beta, profile, oppHorizon, deadline)
		if score < worst {
			worst = score
		}
		if worst < beta {
			beta = worst
		}
		if beta <= alpha {
			break
		}
	}
	return worst
}

// scoredMove pairs a candidate move with a minimax score.
type scoredMove struct {
	move  Direction
	score float64
}

// selectByTieBreak sorts candidates by minimax score descending; within
// 50 points, prefers the higher depth-0 pre-score; still tied, uses a
// deterministic per-(snake-id, turn, move) bias.
func selectByTieBreak(results []scoredMove, depth0 map[Direction]float64, board Board, ourIndex int, turn int) MoveDecision {
	snakeID := board.Snakes[ourIndex].ID

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.score-b.score) >= 50 {
			return a.score > b.score
		}
		da, db := depth0[a.move], depth0[b.move]
		if da != db {
			return da > db
		}
		return tieBreakBias(snakeID, turn, a.move) > tieBreakBias(snakeID, turn, b.move)
	})

	top := results[0]
	return MoveDecision{Move: top.move, Score: top.score}
}

// tieBreakBias hashes the snake id to a bucket in [0,100), combines it
// with the turn, and adds a small direction-ordered increment
// (up < down < left < right) small enough to matter only when every
// other signal is exactly tied.
func tieBreakBias(snakeID string, turn int, move Direction) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(snakeID))
	bucket := float64(h.Sum32() % 100)

	dirRank := map[Direction]float64{Up: 0, Down: 1, Left: 2, Right: 3}[move]

	return bucket + float64(turn%97)*0.01 + dirRank*0.0001
}

package main

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDynamicDepthBySnakeCount(t *testing.T) {
	solo := Board{Width: 11, Height: 11, Snakes: []Snake{
		{ID: "us", Health: 100, Body: []Point{{X: 5, Y: 5}}, Head: Point{X: 5, Y: 5}},
	}}
	require.Equal(t, 10, dynamicDepth(solo, 0))

	oneOnOne := Board{Width: 11, Height: 11, Snakes: []Snake{
		{ID: "us", Health: 100, Body: []Point{{X: 5, Y: 5}}, Head: Point{X: 5, Y: 5}},
		{ID: "them", Health: 100, Body: []Point{{X: 1, Y: 1}}, Head: Point{X: 1, Y: 1}},
	}}
	require.Equal(t, 8, dynamicDepth(oneOnOne, 0))

	crowded := Board{Width: 5, Height: 5, Snakes: []Snake{
		snakeOfLength("us", 4, 0),
		snakeOfLength("a", 4, 1),
		snakeOfLength("b", 4, 2),
	}}
	require.Equal(t, 5, dynamicDepth(crowded, 0))

	open := Board{Width: 11, Height: 11, Snakes: []Snake{
		{ID: "us", Health: 100, Body: []Point{{X: 5, Y: 5}}, Head: Point{X: 5, Y: 5}},
		{ID: "a", Health: 100, Body: []Point{{X: 1, Y: 1}}, Head: Point{X: 1, Y: 1}},
		{ID: "b", Health: 100, Body: []Point{{X: 9, Y: 9}}, Head: Point{X: 9, Y: 9}},
	}}
	require.Equal(t, 6, dynamicDepth(open, 0))
}

func TestChooseMoveCoreNoSafeMoveReportsSentinel(t *testing.T) {
	board := Board{
		Width: 3, Height: 3,
		Snakes: []Snake{
			{ID: "a", Health: 100, Body: []Point{{X: 1, Y: 1}}, Head: Point{X: 1, Y: 1}},
			{ID: "b", Health: 100, Body: []Point{
				{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0},
			}, Head: Point{X: 1, Y: 0}},
		},
	}
	decision := chooseMoveCore(board, 0, 1, 4, defaultProfile(), time.Now().Add(time.Second))
	require.Equal(t, Up, decision.Move)
	require.Equal(t, float64(noSafeMoveScore), decision.Score)
}

func TestChooseMoveCoreSingleSafeMoveShortCircuits(t *testing.T) {
	board := Board{
		Width: 3, Height: 3,
		Snakes: []Snake{
			{ID: "a", Health: 100, Body: []Point{{X: 0, Y: 0}, {X: 0, Y: 1}}, Head: Point{X: 0, Y: 0}},
			{ID: "b", Health: 100, Body: []Point{{X: 2, Y: 0}, {X: 1, Y: 0}}, Head: Point{X: 2, Y: 0}},
		},
	}
	// a's only in-bounds, non-neck, non-collision move is Right, since
	// Down/Left leave the board and Up is the neck.
	decision := chooseMoveCore(board, 0, 1, 4, defaultProfile(), time.Now().Add(time.Second))
	require.Equal(t, Right, decision.Move)
}

func TestChooseMoveCorePastDeadlineUsesDepthZeroScores(t *testing.T) {
	board := Board{
		Width: 11, Height: 11,
		Snakes: []Snake{
			{ID: "us", Health: 100, Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 4}}, Head: Point{X: 5, Y: 5}},
			{ID: "them", Health: 100, Body: []Point{{X: 1, Y: 1}, {X: 1, Y: 0}}, Head: Point{X: 1, Y: 1}},
		},
	}
	// A deadline already in the past forces every candidate's search
	// branch to short-circuit to its depth-0 pre-score.
	decision := chooseMoveCore(board, 0, 1, 6, defaultProfile(), time.Now().Add(-time.Second))
	require.Contains(t, AllDirections, decision.Move)
}

func TestSpaceFilterFallsBackWhenEverySafeMoveIsCramped(t *testing.T) {
	// a's only safe move is Right, into a 2-cell pocket ((1,0) and
	// (2,0)) walled off by b's non-tail body — less than a's own length
	// of 3, so the filter should return the original unfiltered safe set
	// rather than emptying it.
	board := Board{
		Width: 5, Height: 5,
		Snakes: []Snake{
			{ID: "a", Health: 100, Body: []Point{
				{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
			}, Head: Point{X: 0, Y: 0}},
			{ID: "b", Health: 100, Body: []Point{
				{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 0},
			}, Head: Point{X: 1, Y: 1}},
		},
	}
	safe := generateSafeMoves(board, 0)
	require.Equal(t, []Direction{Right}, safe)
	filtered := spaceFilter(board, 0, safe)
	require.Equal(t, safe, filtered)
}

func TestTieBreakBiasIsDeterministic(t *testing.T) {
	a := tieBreakBias("snake-123", 42, Up)
	b := tieBreakBias("snake-123", 42, Up)
	require.Equal(t, a, b)
}

func TestTieBreakBiasOrdersDirectionsWhenOtherwiseTied(t *testing.T) {
	up := tieBreakBias("snake-123", 42, Up)
	down := tieBreakBias("snake-123", 42, Down)
	left := tieBreakBias("snake-123", 42, Left)
	right := tieBreakBias("snake-123", 42, Right)
	require.Less(t, up, down)
	require.Less(t, down, left)
	require.Less(t, left, right)
}

func TestSelectByTieBreakPrefersHigherScoreWhenGapIsLarge(t *testing.T) {
	board := Board{Snakes: []Snake{{ID: "a"}}}
	results := []scoredMove{
		{move: Up, score: 100},
		{move: Down, score: 0},
	}
	depth0 := map[Direction]float64{Up: 0, Down: 0}
	decision := selectByTieBreak(results, depth0, board, 0, 1)
	require.Equal(t, Up, decision.Move)
	require.Equal(t, 100.0, decision.Score)
}

func TestSelectByTieBreakFallsBackToDepthZeroWithinGap(t *testing.T) {
	board := Board{Snakes: []Snake{{ID: "a"}}}
	results := []scoredMove{
		{move: Up, score: 10},
		{move: Down, score: 10},
	}
	depth0 := map[Direction]float64{Up: 5, Down: 50}
	decision := selectByTieBreak(results, depth0, board, 0, 1)
	require.Equal(t, Down, decision.Move, "scores are within 50 of each other, so the higher depth-0 pre-score wins")
}

func TestSearchNodeReturnsEvaluateAtDepthZero(t *testing.T) {
	board := Board{
		Width: 11, Height: 11,
		Snakes: []Snake{
			{ID: "us", Health: 100, Body: []Point{{X: 5, Y: 5}}, Head: Point{X: 5, Y: 5}},
		},
	}
	profile := defaultProfile()
	score := searchNode(board, 0, 0, true, math.Inf(-1), math.Inf(1), profile, 0, time.Now().Add(time.Second))
	require.Equal(t, Evaluate(board, 0, profile, nil), score)
}

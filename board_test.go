package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveHead(t *testing.T) {
	head := Point{X: 5, Y: 5}
	require.Equal(t, Point{X: 5, Y: 6}, moveHead(head, Up))
	require.Equal(t, Point{X: 5, Y: 4}, moveHead(head, Down))
	require.Equal(t, Point{X: 4, Y: 5}, moveHead(head, Left))
	require.Equal(t, Point{X: 6, Y: 5}, moveHead(head, Right))
}

func TestInBounds(t *testing.T) {
	board := Board{Width: 11, Height: 11}
	require.True(t, inBounds(board, Point{X: 0, Y: 0}))
	require.True(t, inBounds(board, Point{X: 10, Y: 10}))
	require.False(t, inBounds(board, Point{X: -1, Y: 0}))
	require.False(t, inBounds(board, Point{X: 11, Y: 0}))
}

func TestNonTailBody(t *testing.T) {
	snake := Snake{Body: []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}}
	require.Equal(t, []Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, nonTailBody(snake))

	single := Snake{Body: []Point{{X: 0, Y: 0}}}
	require.Equal(t, single.Body, nonTailBody(single))
}

func TestIsSnakeDead(t *testing.T) {
	require.True(t, isSnakeDead(Snake{}))
	require.True(t, isSnakeDead(Snake{Body: []Point{{}}, Health: 0}))
	require.False(t, isSnakeDead(Snake{Body: []Point{{}}, Health: 1}))
}

func TestCopyBoardIsDeep(t *testing.T) {
	board := Board{
		Width: 5, Height: 5,
		Food:   []Point{{X: 1, Y: 1}},
		Snakes: []Snake{{ID: "a", Body: []Point{{X: 0, Y: 0}}}},
	}

	clone := copyBoard(board)
	clone.Food[0] = Point{X: 9, Y: 9}
	clone.Snakes[0].Body[0] = Point{X: 9, Y: 9}

	require.Equal(t, Point{X: 1, Y: 1}, board.Food[0])
	require.Equal(t, Point{X: 0, Y: 0}, board.Snakes[0].Body[0])
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 7, manhattan(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))
	require.Equal(t, 0, manhattan(Point{X: 2, Y: 2}, Point{X: 2, Y: 2}))
}

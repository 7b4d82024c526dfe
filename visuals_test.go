package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisualizeBoardInvalidDimensions(t *testing.T) {
	require.Equal(t, "invalid board dimensions", visualizeBoard(Board{Width: 0, Height: 5}))
}

func TestVisualizeBoardRendersWallAndSnakeHead(t *testing.T) {
	board := Board{
		Width: 3, Height: 3,
		Snakes: []Snake{
			{ID: "a", Health: 100, Body: []Point{{X: 1, Y: 1}}, Head: Point{X: 1, Y: 1}},
		},
	}
	out := visualizeBoard(board, WithNewlineCharacter("\n"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5, "3x3 board plus one wall cell on every side")
	require.True(t, strings.HasPrefix(lines[0], "x"))
	require.Contains(t, out, "A", "the snake's head renders uppercase")
}

func TestVisualizeBoardPlacesFoodAndHazards(t *testing.T) {
	board := Board{
		Width:   3,
		Height:  3,
		Food:    []Point{{X: 0, Y: 0}},
		Hazards: []Point{{X: 2, Y: 2}},
	}
	out := visualizeBoard(board)
	require.Contains(t, out, "*")
	require.Contains(t, out, "H")
}

func TestVisualizeVoronoiRendersOwnersAndUnassigned(t *testing.T) {
	voronoi := [][]int{
		{0, -1},
		{-1, 1},
	}
	out := VisualizeVoronoi(voronoi, nil, WithNewlineCharacter("\n"))
	require.Contains(t, out, "A")
	require.Contains(t, out, "B")
	require.Contains(t, out, ".")
}

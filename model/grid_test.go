package model

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from rows of '#' (alive) and '.' (dead)
func gridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			g.Set(x, y, c == '#')
		}
	}
	return g
}

func gridRows(g *Grid) []string {
	rows := make([]string, g.GetHeight())
	for y := 0; y < g.GetHeight(); y++ {
		var sb strings.Builder
		for x := 0; x < g.GetWidth(); x++ {
			if g.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func fullGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, true)
		}
	}
	return g
}

func TestCountAliveNeighbors_Bounds(t *testing.T) {
	g := fullGrid(4, 3)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 3, 0, 3},
		{"bottom-left corner", 0, 2, 3},
		{"bottom-right corner", 3, 2, 3},
		{"top edge", 1, 0, 5},
		{"left edge", 0, 1, 5},
		{"right edge", 3, 1, 5},
		{"bottom edge", 2, 2, 5},
		{"interior", 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, g.CountAliveNeighbors(tt.x, tt.y))
		})
	}
}

func TestCountAliveNeighbors_SingleCellGrid(t *testing.T) {
	g := fullGrid(1, 1)
	require.Equal(t, 0, g.CountAliveNeighbors(0, 0))
}

func TestCountAliveNeighbors_DoesNotCountSelf(t *testing.T) {
	g := gridFromRows(
		"...",
		".#.",
		"...",
	)
	require.Equal(t, 0, g.CountAliveNeighbors(1, 1))
	for _, c := range []GridCoords{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		require.Equal(t, 1, g.CountAliveNeighbors(c.X, c.Y), "cell %v", c)
	}
}

func TestNextGeneration_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "empty stays empty",
			in:   []string{"...", "...", "..."},
			want: []string{"...", "...", "..."},
		},
		{
			name: "isolated cell dies",
			in:   []string{"...", ".#.", "..."},
			want: []string{"...", "...", "..."},
		},
		{
			name: "birth with three neighbors",
			in:   []string{"#.#", "...", "#.."},
			want: []string{"...", ".#.", "..."},
		},
		{
			name: "survival with two neighbors",
			in:   []string{"#..", ".#.", "..#"},
			want: []string{"...", ".#.", "..."},
		},
		{
			name: "block is stable with three neighbors each",
			in:   []string{"##.", "##.", "..."},
			want: []string{"##.", "##.", "..."},
		},
		{
			name: "L tromino survives on two and fills in a block",
			in:   []string{"##.", "#..", "..."},
			want: []string{"##.", "##.", "..."},
		},
		{
			name: "one neighbor starves",
			in:   []string{"##.", "...", "..."},
			want: []string{"...", "...", "..."},
		},
		{
			name: "overpopulation kills the centre",
			in:   []string{"#.#", ".#.", "#.#"},
			want: []string{".#.", "#.#", ".#."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(tt.in...)
			require.Equal(t, tt.want, gridRows(g.NextGeneration(nil)))
			require.Equal(t, tt.want, gridRows(g.NextGenerationBounded(nil)))
		})
	}
}

func TestNextGeneration_Blinker(t *testing.T) {
	horizontal := gridFromRows(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	vertical := []string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	}

	once := horizontal.NextGeneration(nil)
	require.Equal(t, vertical, gridRows(once))

	twice := once.NextGeneration(nil)
	require.True(t, twice.Equal(horizontal))
}

func TestNextGeneration_Simultaneous(t *testing.T) {
	g := gridFromRows(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	before := gridRows(g)

	next := g.NextGeneration(nil)
	require.Equal(t, before, gridRows(g), "previous generation must not be written")

	// Scribbling on the output must not leak back into the input
	next.Set(0, 0, true)
	next.Set(2, 2, false)
	require.Equal(t, before, gridRows(g))
	require.Equal(t, []string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	}, gridRows(g.NextGeneration(nil)))
}

func TestNextGenerationBounded_MatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	full := NewGrid(24, 18)
	full.RandomConfiguration(0.3, rng)
	bounded := gridFromRows(gridRows(full)...)
	pool := NewGridPool()

	for gen := 0; gen < 40; gen++ {
		nextFull := full.NextGeneration(nil)
		nextBounded := bounded.NextGenerationBounded(pool)
		require.True(t, nextFull.Equal(nextBounded), "generation %d", gen+1)
		GridToPool(bounded, pool)
		full, bounded = nextFull, nextBounded
	}
}

func TestCountLivingCells(t *testing.T) {
	g := gridFromRows(
		"#..#",
		".##.",
	)
	require.Equal(t, 4, g.CountLivingCells())
	require.Equal(t, 0, NewGrid(3, 3).CountLivingCells())
}

func TestForEachAlive(t *testing.T) {
	g := gridFromRows(
		"#..",
		"..#",
	)
	var got []GridCoords
	g.ForEachAlive(func(c GridCoords) { got = append(got, c) })
	require.Equal(t, []GridCoords{{0, 0}, {2, 1}}, got)
}

func TestGetBoundingBoxSize(t *testing.T) {
	require.Equal(t, 0, NewGrid(5, 5).GetBoundingBoxSize())

	g := gridFromRows(
		".....",
		".#...",
		"...#.",
		".....",
	)
	require.Equal(t, 6, g.GetBoundingBoxSize())
}

func TestGetGridHash(t *testing.T) {
	a := gridFromRows("#.", ".#")
	b := gridFromRows("#.", ".#")
	c := gridFromRows(".#", "#.")
	require.Equal(t, a.GetGridHash(), b.GetGridHash())
	require.NotEqual(t, a.GetGridHash(), c.GetGridHash())
}

func TestRandomConfiguration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g := NewGrid(10, 10)
	g.RandomConfiguration(0, rng)
	require.Equal(t, 0, g.CountLivingCells())

	g.RandomConfiguration(1, rng)
	require.Equal(t, 100, g.CountLivingCells())

	// Cells that lose the draw keep their previous state
	g.RandomConfiguration(0, rng)
	require.Equal(t, 100, g.CountLivingCells())

	g = NewGrid(100, 100)
	g.RandomConfiguration(0.25, rng)
	require.InDelta(t, 2500, g.CountLivingCells(), 300)
}

func TestGridPool_ReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(4, 4)
	g.Set(1, 1, true)
	GridToPool(g, pool)

	reused := pool.Get(3, 2)
	require.Equal(t, 3, reused.GetWidth())
	require.Equal(t, 2, reused.GetHeight())
	require.Equal(t, 0, reused.CountLivingCells())

	GridToPool(reused, nil)
}

func TestGridPool_PutClearsGrid(t *testing.T) {
	pool := NewGridPool()
	g := gridFromRows(
		"#.#",
		".##",
	)
	pool.Put(g)

	require.Equal(t, 0, g.CountLivingCells())
	require.Equal(t, 3, g.GetWidth())
	require.Equal(t, 2, g.GetHeight())
}

func TestClear(t *testing.T) {
	g := gridFromRows(
		"##..",
		"..##",
		"#..#",
	)
	require.Equal(t, 12, g.GetBoundingBoxSize())

	g.Clear()
	require.Equal(t, 0, g.CountLivingCells())
	require.Equal(t, 0, g.GetBoundingBoxSize())
	require.Equal(t, 4, g.GetWidth())

	g.Set(3, 2, true)
	require.Equal(t, 1, g.GetBoundingBoxSize())
}

package world

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatWorldShape(t *testing.T) {
	entries := FlatWorld()
	require.Len(t, entries, 100)
	for _, e := range entries {
		assert.Equal(t, EntrySimple, e.Kind)
		assert.Equal(t, float32(0), e.Position.Y)
	}
}

func TestPyramidWorldLayers(t *testing.T) {
	entries := PyramidWorld()
	// Layers of 5x5 down to 1x1.
	require.Len(t, entries, 25+16+9+4+1)

	perLayer := make(map[int]int)
	for _, e := range entries {
		require.Equal(t, EntryDetailed, e.Kind)
		y := int(e.Position.Y)
		perLayer[y]++
		assert.Equal(t, fmt.Sprintf("pyramid_layer_%d", y), e.Type)
		require.NotNil(t, e.Color)
		assert.Equal(t, pyramidLayers[y], *e.Color)
	}
	for y := 0; y < 5; y++ {
		size := 5 - y
		assert.Equal(t, size*size, perLayer[y], "layer %d", y)
	}
}

func TestCheckerboardWorldAlternates(t *testing.T) {
	entries := CheckerboardWorld()
	require.Len(t, entries, 64)
	for _, e := range entries {
		require.Equal(t, EntryDetailed, e.Kind)
		assert.Equal(t, "checkerboard", e.Type)
		require.NotNil(t, e.Color)
		want := White
		if (int(e.Position.X)+int(e.Position.Z))%2 != 0 {
			want = Black
		}
		assert.Equal(t, want, *e.Color)
	}
}

func TestHillsWorldIsDeterministic(t *testing.T) {
	a := HillsWorld(1337)()
	b := HillsWorld(1337)()
	assert.Equal(t, a, b)

	c := HillsWorld(7)()
	assert.NotEqual(t, a, c, "different seeds should build different hills")
}

func TestHillsWorldColumns(t *testing.T) {
	entries := HillsWorld(1337)()

	type column struct {
		top    int
		blocks map[int]Entry
	}
	columns := make(map[[2]int]*column)
	for _, e := range entries {
		require.Equal(t, EntryDetailed, e.Kind)
		key := [2]int{int(e.Position.X), int(e.Position.Z)}
		col, ok := columns[key]
		if !ok {
			col = &column{top: -1, blocks: make(map[int]Entry)}
			columns[key] = col
		}
		y := int(e.Position.Y)
		col.blocks[y] = e
		if y > col.top {
			col.top = y
		}
	}

	require.Len(t, columns, hillsGridSize*hillsGridSize)
	for key, col := range columns {
		assert.LessOrEqual(t, col.top, hillsMaxHeight-1, "column %v too tall", key)
		for y := 0; y <= col.top; y++ {
			e, ok := col.blocks[y]
			require.True(t, ok, "column %v has a gap at y=%d", key, y)
			if y == col.top {
				assert.Equal(t, "grass", e.Type)
			} else {
				assert.Equal(t, "dirt", e.Type)
			}
		}
	}
}

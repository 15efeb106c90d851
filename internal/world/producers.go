package world

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// Builtin producer functions. These double as templates for user-authored
// worlds: each one is a plain Producer that could live in a user's file.

// FlatWorld is a 10x10 ground layer at y=0. The simplest possible world.
func FlatWorld() []Entry {
	entries := make([]Entry, 0, 100)
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			entries = append(entries, At(float32(x), 0, float32(z)))
		}
	}
	return entries
}

// pyramidLayers is the color per pyramid layer, bottom to top.
var pyramidLayers = []Color{Red, Blue, Green, Yellow, Orange}

// PyramidWorld builds a five-layer pyramid. Each layer is smaller than the
// one below and gets its own color and a type of pyramid_layer_<n>, to
// show how detailed entries carry colors and types.
func PyramidWorld() []Entry {
	var entries []Entry
	for y := 0; y < len(pyramidLayers); y++ {
		size := len(pyramidLayers) - y
		col := pyramidLayers[y]
		typ := fmt.Sprintf("pyramid_layer_%d", y)
		for x := 0; x < size; x++ {
			for z := 0; z < size; z++ {
				pos := Vec3{X: float32(x + y), Y: float32(y), Z: float32(z + y)}
				entries = append(entries, Detailed(pos, typ, &col))
			}
		}
	}
	return entries
}

// CheckerboardWorld is an 8x8 floor of alternating white and black blocks.
func CheckerboardWorld() []Entry {
	entries := make([]Entry, 0, 64)
	for x := 0; x < 8; x++ {
		for z := 0; z < 8; z++ {
			col := White
			if (x+z)%2 != 0 {
				col = Black
			}
			entries = append(entries, Detailed(Vec3{X: float32(x), Z: float32(z)}, "checkerboard", &col))
		}
	}
	return entries
}

const (
	hillsGridSize  = 16
	hillsMaxHeight = 5
	// hillsFrequency spaces the noise samples so a 16x16 grid spans a few
	// gentle rises rather than per-block jitter.
	hillsFrequency = 0.1

	// Perlin shape: smoothing, frequency multiplier, octaves.
	hillsAlpha   = 2.0
	hillsBeta    = 2.0
	hillsOctaves = 3
)

// HillsWorld returns a producer for a rolling Perlin-noise height field:
// dirt columns with a grass block on top. The same seed always builds the
// same hills.
func HillsWorld(seed int64) Producer {
	return func() []Entry {
		noise := perlin.NewPerlin(hillsAlpha, hillsBeta, hillsOctaves, seed)
		var entries []Entry
		for x := 0; x < hillsGridSize; x++ {
			for z := 0; z < hillsGridSize; z++ {
				n := noise.Noise2D(float64(x)*hillsFrequency, float64(z)*hillsFrequency)
				// Noise2D is in [-1, 1]; map to a column height of 1..hillsMaxHeight.
				h := 1 + int(((n+1)/2)*float64(hillsMaxHeight-1)+0.5)
				if h < 1 {
					h = 1
				}
				if h > hillsMaxHeight {
					h = hillsMaxHeight
				}
				for y := 0; y < h; y++ {
					pos := Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
					if y == h-1 {
						entries = append(entries, Detailed(pos, "grass", &Green))
					} else {
						entries = append(entries, Detailed(pos, "dirt", &Brown))
					}
				}
			}
		}
		return entries
	}
}

package world

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Scene is where blocks become visible. AddBlock attaches a cube and
// returns its handle; RemoveBlock detaches it. The Builder detaches every
// cube it attached before dropping the block that owns it.
type Scene interface {
	AddBlock(pos Vec3, col Color) uuid.UUID
	RemoveBlock(id uuid.UUID)
}

// Defaults for the builtin random world.
const (
	DefaultWorldSize      = 16
	DefaultRandomBlocks   = 20
	DefaultMaxStackHeight = 3
)

// Options controls the Builder's builtin random world. Zero fields are
// replaced with the defaults above; Seed 0 uses a time-based seed.
type Options struct {
	WorldSize      int
	RandomBlocks   int
	MaxStackHeight int
	Seed           int64
}

// Info is an aggregate snapshot of the current world.
type Info struct {
	TotalBlocks int
	WorldSize   int
	BlockTypes  []string // distinct, sorted
}

// Builder turns producer functions into the live block world. It owns the
// block registry and the scene cubes behind it; exactly one world is live
// at a time, replaced by GenerateWorld and emptied by ClearWorld.
type Builder struct {
	scene  Scene
	blocks []Block

	worldSize      int
	randomBlocks   int
	maxStackHeight int
	rng            *rand.Rand
}

// NewBuilder returns a builder rendering into scene. Zero opts fields fall
// back to the defaults.
func NewBuilder(scene Scene, opts Options) *Builder {
	if opts.WorldSize <= 0 {
		opts.WorldSize = DefaultWorldSize
	}
	if opts.RandomBlocks <= 0 {
		opts.RandomBlocks = DefaultRandomBlocks
	}
	if opts.MaxStackHeight <= 0 {
		opts.MaxStackHeight = DefaultMaxStackHeight
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Builder{
		scene:          scene,
		worldSize:      opts.WorldSize,
		randomBlocks:   opts.RandomBlocks,
		maxStackHeight: opts.MaxStackHeight,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// GenerateWorld replaces the current world with the output of p. The old
// blocks are cleared first (cubes detached from the scene), then one block
// is created per valid entry. Entries that are neither Simple nor Detailed
// are skipped without error. A nil p uses the builtin random world.
// Returns the new block slice.
func (b *Builder) GenerateWorld(p Producer) []Block {
	b.ClearWorld()
	if p == nil {
		p = b.RandomWorld
	}
	entries := p()
	blocks := make([]Block, 0, len(entries))
	for _, e := range entries {
		blk, ok := blockFor(e)
		if !ok {
			continue
		}
		if b.scene != nil {
			blk.handle = b.scene.AddBlock(blk.Position, blk.Color)
		}
		blocks = append(blocks, blk)
	}
	b.blocks = blocks
	return b.blocks
}

// blockFor maps one entry to a block. ok is false for entries that should
// be skipped.
func blockFor(e Entry) (blk Block, ok bool) {
	switch e.Kind {
	case EntrySimple:
		return Block{Position: e.Position, Type: DefaultType, Color: DefaultColor}, true
	case EntryDetailed:
		blk = Block{Position: e.Position, Type: e.Type, Color: DefaultColor}
		if blk.Type == "" {
			blk.Type = DefaultType
		}
		if e.Color != nil {
			blk.Color = *e.Color
		}
		return blk, true
	default:
		return Block{}, false
	}
}

// ClearWorld detaches every block's cube from the scene and empties the
// registry. Calling it again with an empty registry is a no-op.
func (b *Builder) ClearWorld() {
	for _, blk := range b.blocks {
		if b.scene != nil && blk.handle != uuid.Nil {
			b.scene.RemoveBlock(blk.handle)
		}
	}
	b.blocks = nil
}

// Count returns the number of blocks in the current world.
func (b *Builder) Count() int {
	return len(b.blocks)
}

// Info returns an aggregate snapshot of the current world. Pure read.
func (b *Builder) Info() Info {
	seen := make(map[string]struct{})
	for _, blk := range b.blocks {
		seen[blk.Type] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return Info{
		TotalBlocks: len(b.blocks),
		WorldSize:   b.worldSize,
		BlockTypes:  types,
	}
}

// RandomWorld is the builtin default producer: a flat ground layer
// covering worldSize x worldSize at y=0, plus randomBlocks extra blocks
// stacked at random heights between 1 and maxStackHeight.
func (b *Builder) RandomWorld() []Entry {
	entries := make([]Entry, 0, b.worldSize*b.worldSize+b.randomBlocks)
	for x := 0; x < b.worldSize; x++ {
		for z := 0; z < b.worldSize; z++ {
			entries = append(entries, At(float32(x), 0, float32(z)))
		}
	}
	for i := 0; i < b.randomBlocks; i++ {
		x := b.rng.Intn(b.worldSize)
		z := b.rng.Intn(b.worldSize)
		y := 1 + b.rng.Intn(b.maxStackHeight)
		entries = append(entries, At(float32(x), float32(y), float32(z)))
	}
	return entries
}

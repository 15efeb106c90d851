package world

// EntryKind tags the two placement shapes a producer may return. The zero
// value is EntryInvalid so a zero Entry is skipped rather than placed.
type EntryKind int

const (
	EntryInvalid EntryKind = iota
	EntrySimple
	EntryDetailed
)

// Entry is one block placement returned by a producer function. Simple
// entries carry only a position and get the default type and color.
// Detailed entries may additionally set Type and Color; fields left empty
// or nil fall back to the defaults.
//
// Anything that is not a well-formed Simple or Detailed entry is silently
// skipped by the Builder. That is deliberate: producer functions are
// written by beginners, and a stray bad entry must never crash the game.
type Entry struct {
	Kind     EntryKind
	Position Vec3
	Type     string // Detailed only; "" means DefaultType
	Color    *Color // Detailed only; nil means DefaultColor
}

// Producer is a user-authored function that decides where blocks go. It
// takes no arguments and returns the full list of placements for a world.
// This is the one extension point end users are meant to write.
type Producer func() []Entry

// At returns a simple placement: a block at (x, y, z) with the default
// type and color.
func At(x, y, z float32) Entry {
	return Entry{Kind: EntrySimple, Position: Vec3{X: x, Y: y, Z: z}}
}

// Detailed returns a detailed placement at pos. An empty typ means the
// default type; a nil col means the default color.
func Detailed(pos Vec3, typ string, col *Color) Entry {
	return Entry{Kind: EntryDetailed, Position: pos, Type: typ, Color: col}
}

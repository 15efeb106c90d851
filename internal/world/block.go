// Package world turns producer functions, small functions returning lists
// of block placements, into the live block world. The Builder owns every
// block it creates and the scene cube attached to it; rendering itself
// happens elsewhere, behind the Scene interface.
package world

import "github.com/google/uuid"

// Vec3 is a position in world space. Block worlds are unit-cube grids, so
// producers usually return whole numbers, but fractional positions work too.
type Vec3 struct {
	X, Y, Z float32
}

// Color is an RGBA color for a block. The scene converts it to whatever the
// renderer needs.
type Color struct {
	R, G, B, A uint8
}

// Named colors matching what the builtin producers use.
var (
	Green  = Color{46, 160, 67, 255}
	Red    = Color{220, 68, 58, 255}
	Blue   = Color{66, 104, 214, 255}
	Yellow = Color{238, 210, 68, 255}
	Orange = Color{236, 138, 52, 255}
	White  = Color{245, 245, 245, 255}
	Black  = Color{28, 28, 28, 255}
	Gray   = Color{130, 130, 130, 255}
	Cyan   = Color{72, 200, 216, 255}
	Brown  = Color{133, 87, 35, 255}
)

// DefaultType and DefaultColor are used for every placement that does not
// say otherwise: a plain grass block.
const DefaultType = "grass"

var DefaultColor = Green

// Block is one placed unit of the world: a position, a type name, a color,
// and the handle of its cube in the render scene. Blocks are created and
// destroyed only by the Builder; the scene cube behind a block is a
// rendering projection, not a second owner.
type Block struct {
	Position Vec3
	Type     string
	Color    Color

	handle uuid.UUID
}

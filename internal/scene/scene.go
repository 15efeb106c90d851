// Package scene is the raylib side of the world: it keeps the retained
// list of block cubes, the first-person camera, and a helper grid, and
// draws them each frame. The world builder attaches and detaches cubes
// through the Scene's handle API and stays free of any raylib types.
package scene

import (
	"blockworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

const (
	gridExtent     = 50
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120

	// Camera eye height above the ground plane, roughly a standing person.
	eyeHeight = 1.8
)

// cubeOutline fades block edges so stacked same-color blocks stay
// distinguishable.
var cubeOutline = rl.NewColor(0, 0, 0, 60)

// cube is one attached block: its handle, world position, and color.
type cube struct {
	id  uuid.UUID
	pos rl.Vector3
	col rl.Color
}

// Scene holds the camera and the retained cubes. Update runs camera
// logic; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	cursorDone bool
	cubes      []cube
}

// New returns a scene with a first-person camera standing just outside
// the default world's corner, looking into it. Grid is visible by default.
func New() *Scene {
	s := &Scene{GridVisible: true}
	s.Camera.Position = rl.NewVector3(0, eyeHeight, -4)
	s.Camera.Target = rl.NewVector3(4, eyeHeight-0.2, 4)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 90
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// AddBlock attaches one unit cube at pos and returns its handle.
func (s *Scene) AddBlock(pos world.Vec3, col world.Color) uuid.UUID {
	id := uuid.New()
	s.cubes = append(s.cubes, cube{
		id:  id,
		pos: rl.NewVector3(pos.X, pos.Y, pos.Z),
		col: rl.NewColor(col.R, col.G, col.B, col.A),
	})
	return id
}

// RemoveBlock detaches the cube with the given handle. Unknown handles
// are ignored.
func (s *Scene) RemoveBlock(id uuid.UUID) {
	for i, c := range s.cubes {
		if c.id == id {
			s.cubes = append(s.cubes[:i], s.cubes[i+1:]...)
			return
		}
	}
}

// Count returns the number of attached cubes.
func (s *Scene) Count() int {
	return len(s.cubes)
}

// Update runs once per frame: captures the cursor on the first call and
// lets raylib's first-person camera handle WASD movement and mouse look.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFirstPerson)
}

// Draw renders the 3D scene: grid first, then the cubes in attach order,
// so duplicate positions resolve last-write-wins visually.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	for _, c := range s.cubes {
		rl.DrawCube(c.pos, 1, 1, 1, c.col)
		rl.DrawCubeWires(c.pos, 1, 1, 1, cubeOutline)
	}
	rl.EndMode3D()
}

// drawGrid draws minor/major lines on the XZ plane at Y=0 so an empty
// world still gives a sense of scale.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	for i := -gridExtent; i <= gridExtent; i++ {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		fi := float32(i)
		rl.DrawLine3D(rl.NewVector3(fi, 0, -gridExtent), rl.NewVector3(fi, 0, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, fi), rl.NewVector3(gridExtent, 0, fi), c)
	}
}

package scene

import (
	"blockworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// The Scene doubles as the player's input source: it knows the camera
// (position, look direction) and can query raylib's key state.

// inputKeys maps the avatar's key names onto raylib keys.
var inputKeys = map[string]int32{
	"w":           rl.KeyW,
	"a":           rl.KeyA,
	"s":           rl.KeyS,
	"d":           rl.KeyD,
	"left shift":  rl.KeyLeftShift,
	"right shift": rl.KeyRightShift,
}

// Ready reports whether the window exists and input state can be queried.
// Before that, avatar queries fall back to safe defaults.
func (s *Scene) Ready() bool {
	return rl.IsWindowReady()
}

// Down reports whether the named key is currently held. Unknown names are
// never down.
func (s *Scene) Down(key string) bool {
	k, ok := inputKeys[key]
	if !ok {
		return false
	}
	return rl.IsKeyDown(k)
}

// Position returns the camera's position, i.e. the player's eyes.
func (s *Scene) Position() world.Vec3 {
	p := s.Camera.Position
	return world.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// LookDirection returns the normalized direction the camera faces.
func (s *Scene) LookDirection() world.Vec3 {
	d := rl.Vector3Normalize(rl.Vector3Subtract(s.Camera.Target, s.Camera.Position))
	return world.Vec3{X: d.X, Y: d.Y, Z: d.Z}
}

// Package player adapts the engine's live input and camera state into the
// movement info the HUD displays. Locomotion, gravity, and collision stay
// in the engine; nothing here moves the player.
package player

import "blockworld/internal/world"

// Movement speeds shown in the HUD. The engine's controller does the
// actual moving; these only label the current mode.
const (
	NormalSpeed float32 = 5
	RunSpeed    float32 = 8
)

// Key names the avatar queries from the input source.
const (
	KeyForward    = "w"
	KeyLeft       = "a"
	KeyBack       = "s"
	KeyRight      = "d"
	KeyLeftShift  = "left shift"
	KeyRightShift = "right shift"
)

// InputSource is the engine's live input and body state. Ready reports
// whether the source can be queried at all; every other method may only be
// trusted while Ready returns true. Consolidating availability into this
// one check keeps the callers free of per-call defensive handling.
type InputSource interface {
	Ready() bool
	Down(key string) bool
	Position() world.Vec3
	LookDirection() world.Vec3
}

// MovementInfo is a per-tick snapshot of the player's movement state.
type MovementInfo struct {
	Position         world.Vec3
	IsMoving         bool
	IsRunning        bool
	Speed            float32
	LookingDirection world.Vec3
}

// Avatar observes the player through an InputSource. It keeps the last
// known position so a briefly unavailable source degrades to stale-but-sane
// values instead of an error.
type Avatar struct {
	input        InputSource
	lastPosition world.Vec3
}

// New returns an avatar reading from input. A nil input is allowed and
// behaves like a source that is never ready.
func New(input InputSource) *Avatar {
	return &Avatar{input: input}
}

// GetMovementInfo derives the current movement snapshot. If the input
// source is unavailable it returns safe defaults (last known position,
// no movement, normal speed) and never fails; the frame loop depends on
// that.
func (a *Avatar) GetMovementInfo() MovementInfo {
	if a.input == nil || !a.input.Ready() {
		return MovementInfo{Position: a.lastPosition, Speed: NormalSpeed}
	}

	pos := a.input.Position()
	a.lastPosition = pos

	moving := a.input.Down(KeyForward) || a.input.Down(KeyLeft) ||
		a.input.Down(KeyBack) || a.input.Down(KeyRight)
	running := a.input.Down(KeyLeftShift) || a.input.Down(KeyRightShift)
	speed := NormalSpeed
	if running {
		speed = RunSpeed
	}

	return MovementInfo{
		Position:         pos,
		IsMoving:         moving,
		IsRunning:        running,
		Speed:            speed,
		LookingDirection: a.input.LookDirection(),
	}
}

package player

import (
	"testing"

	"blockworld/internal/world"

	"github.com/stretchr/testify/assert"
)

type fakeInput struct {
	ready bool
	keys  map[string]bool
	pos   world.Vec3
	look  world.Vec3
}

func (f *fakeInput) Ready() bool               { return f.ready }
func (f *fakeInput) Down(key string) bool      { return f.keys[key] }
func (f *fakeInput) Position() world.Vec3      { return f.pos }
func (f *fakeInput) LookDirection() world.Vec3 { return f.look }

func TestMovementInfoWhenSourceUnavailable(t *testing.T) {
	a := New(&fakeInput{ready: false})

	info := a.GetMovementInfo()

	assert.Equal(t, world.Vec3{}, info.Position)
	assert.False(t, info.IsMoving)
	assert.False(t, info.IsRunning)
	assert.Equal(t, NormalSpeed, info.Speed)
	assert.Equal(t, world.Vec3{}, info.LookingDirection)
}

func TestMovementInfoWithNilSource(t *testing.T) {
	a := New(nil)

	assert.NotPanics(t, func() {
		info := a.GetMovementInfo()
		assert.Equal(t, NormalSpeed, info.Speed)
	})
}

func TestMovementInfoWalking(t *testing.T) {
	in := &fakeInput{
		ready: true,
		keys:  map[string]bool{KeyForward: true},
		pos:   world.Vec3{X: 1, Y: 2, Z: 3},
		look:  world.Vec3{Z: 1},
	}
	a := New(in)

	info := a.GetMovementInfo()

	assert.True(t, info.IsMoving)
	assert.False(t, info.IsRunning)
	assert.Equal(t, NormalSpeed, info.Speed)
	assert.Equal(t, world.Vec3{X: 1, Y: 2, Z: 3}, info.Position)
	assert.Equal(t, world.Vec3{Z: 1}, info.LookingDirection)
}

func TestMovementInfoRunning(t *testing.T) {
	in := &fakeInput{
		ready: true,
		keys:  map[string]bool{KeyBack: true, KeyRightShift: true},
	}
	a := New(in)

	info := a.GetMovementInfo()

	assert.True(t, info.IsMoving)
	assert.True(t, info.IsRunning)
	assert.Equal(t, RunSpeed, info.Speed)
}

func TestLastKnownPositionSurvivesOutage(t *testing.T) {
	in := &fakeInput{ready: true, pos: world.Vec3{X: 4, Y: 1, Z: 4}}
	a := New(in)
	a.GetMovementInfo()

	in.ready = false
	info := a.GetMovementInfo()

	assert.Equal(t, world.Vec3{X: 4, Y: 1, Z: 4}, info.Position, "position falls back to last known")
	assert.False(t, info.IsMoving)
}

// Package graphics owns the raylib window and the main loop. Each frame
// it dispatches pressed keys as named events, calls update, then clears
// the screen and calls draw. Everything runs on one thread; the callbacks
// are never invoked concurrently.
package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// eventKeys maps raylib keys onto the key-event names the game dispatches
// on: help, reload, world selection, menu, quit.
var eventKeys = []struct {
	key  int32
	name string
}{
	{rl.KeyH, "h"},
	{rl.KeyR, "r"},
	{rl.KeyOne, "1"},
	{rl.KeyTwo, "2"},
	{rl.KeyThree, "3"},
	{rl.KeyFour, "4"},
	{rl.KeyFive, "5"},
	{rl.KeyG, "g"},
	{rl.KeyEscape, "escape"},
}

// skyColor is the clear color behind the 3D scene.
var skyColor = rl.NewColor(140, 190, 232, 255)

// Run opens the window and drives the main loop until done reports true
// or the window is closed. input receives one call per pressed event key;
// update runs before drawing; draw runs between BeginDrawing and
// EndDrawing. Returns an error if the window cannot be created, the one
// startup failure this layer can detect.
func Run(title string, fullscreen bool, update, draw func(), input func(key string), done func() bool) error {
	if fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), title)
	} else {
		rl.InitWindow(windowWidth, windowHeight, title)
	}
	if !rl.IsWindowReady() {
		return errors.New("graphics: window failed to initialize")
	}
	defer rl.CloseWindow()

	// ESC is dispatched to the game (which decides to quit), not handled
	// by raylib directly.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() && !done() {
		for _, ek := range eventKeys {
			if rl.IsKeyPressed(ek.key) {
				input(ek.name)
			}
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(skyColor)
		draw()
		rl.EndDrawing()
	}
	return nil
}

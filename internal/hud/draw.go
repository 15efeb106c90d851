package hud

import (
	"strings"
	"time"

	"blockworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	bigFont    = 28
	padding    = 12
	lineHeight = fontSize + 4
)

// Label colors follow the original layout: title white, position cyan,
// world info yellow, FPS green.
var (
	titleColor = rl.White
	posColor   = rl.NewColor(90, 200, 220, 255)
	worldColor = rl.NewColor(238, 210, 68, 255)
	fpsColor   = rl.Green
	panelColor = rl.NewColor(20, 20, 20, 170)
)

func toRaylib(c world.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw renders the HUD as a 2D overlay. Call after the 3D scene, inside
// the frame's drawing block.
func (h *HUD) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	// Left column: title, position, world info.
	y := int32(padding)
	drawLabel(h.title, padding, y, titleColor)
	y += lineHeight
	drawLabel(h.positionText, padding, y, posColor)
	y += lineHeight
	drawLabel(h.worldText, padding, y, worldColor)

	// FPS top-right.
	if h.showFPS {
		w := rl.MeasureText(h.fpsText, fontSize)
		drawLabel(h.fpsText, screenW-w-padding, padding, fpsColor)
	}

	// Help block bottom-left.
	if h.helpVisible {
		lines := int32(strings.Count(helpText, "\n") + 1)
		drawLabel(helpText, padding, screenH-lines*lineHeight-padding, rl.White)
	}

	// Generator menu, centered vertically on the left.
	if h.menuVisible && h.menuText != "" {
		lines := int32(strings.Count(h.menuText, "\n") + 1)
		drawLabel(h.menuText, padding, (screenH-lines*lineHeight)/2, rl.White)
	}

	// Welcome banner and transient message, centered.
	if h.welcomeVisible {
		drawCentered(welcomeText, screenW, screenH/2-2*lineHeight, bigFont, rl.Green)
	}
	if h.message != "" && time.Now().Before(h.messageUntil) {
		drawCentered(h.message, screenW, screenH/2+2*lineHeight, bigFont, toRaylib(h.messageColor))
	}
}

// drawLabel draws text over a dark backing rectangle so it stays readable
// against the world.
func drawLabel(text string, x, y int32, col rl.Color) {
	lines := strings.Count(text, "\n") + 1
	w := measureMultiline(text)
	rl.DrawRectangle(x-4, y-2, w+8, int32(lines*lineHeight), panelColor)
	rl.DrawText(text, x, y, fontSize, col)
}

// drawCentered centers each message horizontally at the given y.
func drawCentered(text string, screenW, y, size int32, col rl.Color) {
	for _, line := range strings.Split(text, "\n") {
		w := rl.MeasureText(line, size)
		rl.DrawText(line, (screenW-w)/2, y, size, col)
		y += size + 6
	}
}

// measureMultiline returns the widest line's width at the label font size.
func measureMultiline(text string) int32 {
	var w int32
	for _, line := range strings.Split(text, "\n") {
		if lw := rl.MeasureText(line, fontSize); lw > w {
			w = lw
		}
	}
	return w
}

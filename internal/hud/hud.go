// Package hud holds the on-screen text of the game: title, player and
// world lines, FPS, help, and transient messages. It owns display strings
// and visibility flags only; it never touches game logic.
package hud

import (
	"fmt"
	"strings"
	"time"

	"blockworld/internal/player"
	"blockworld/internal/world"
)

const helpText = "Controls:\n" +
	"WASD - Move\n" +
	"Mouse - Look\n" +
	"Shift - Run\n" +
	"H - Toggle Help\n" +
	"R - Reload World\n" +
	"1-5 - Pick World\n" +
	"G - World Menu\n" +
	"ESC - Quit"

const welcomeText = "Welcome to the Block World Sandbox!\n" +
	"Press 1-5 to build a world, H for help"

// HUD is the full on-screen text state. Update* methods reformat the
// stored strings; Draw (see draw.go) renders them.
type HUD struct {
	title        string
	positionText string
	worldText    string
	fpsText      string

	helpVisible    bool
	welcomeVisible bool
	menuVisible    bool
	showFPS        bool
	menuText       string

	message      string
	messageColor world.Color
	messageUntil time.Time
}

// New returns a HUD showing the welcome banner and placeholder lines.
func New() *HUD {
	return &HUD{
		title:          "Block World Sandbox",
		positionText:   "Position: (0.0, 0.0, 0.0)",
		worldText:      "Blocks: 0",
		fpsText:        "FPS: --",
		welcomeVisible: true,
		showFPS:        true,
	}
}

// UpdatePlayerInfo reformats the position line from the latest movement
// snapshot, with a marker for walking or running.
func (h *HUD) UpdatePlayerInfo(info player.MovementInfo) {
	text := fmt.Sprintf("Position: (%.1f, %.1f, %.1f)",
		info.Position.X, info.Position.Y, info.Position.Z)
	if info.IsRunning {
		text += " [running]"
	} else if info.IsMoving {
		text += " [walking]"
	}
	h.positionText = text
}

// UpdateWorldInfo reformats the world line from a world snapshot.
func (h *HUD) UpdateWorldInfo(info world.Info) {
	h.worldText = fmt.Sprintf("Blocks: %d | Size: %dx%d",
		info.TotalBlocks, info.WorldSize, info.WorldSize)
}

// UpdateFPS reformats the FPS line.
func (h *HUD) UpdateFPS(fps float64) {
	h.fpsText = fmt.Sprintf("FPS: %.0f", fps)
}

// SetTitle replaces the title line, e.g. with the current world's name.
func (h *HUD) SetTitle(title string) {
	h.title = title
}

// SetShowFPS sets whether the FPS line is drawn.
func (h *HUD) SetShowFPS(show bool) {
	h.showFPS = show
}

// ToggleHelp flips the help block's visibility.
func (h *HUD) ToggleHelp() {
	h.helpVisible = !h.helpVisible
}

// HelpVisible reports whether the help block is shown.
func (h *HUD) HelpVisible() bool {
	return h.helpVisible
}

// SetWorlds fills the generator menu with the selectable world names, in
// number-key order.
func (h *HUD) SetWorlds(names []string) {
	var sb strings.Builder
	sb.WriteString("Worlds:")
	for i, name := range names {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, name)
	}
	h.menuText = sb.String()
}

// ToggleMenu flips the generator menu's visibility.
func (h *HUD) ToggleMenu() {
	h.menuVisible = !h.menuVisible
}

// MenuVisible reports whether the generator menu is shown.
func (h *HUD) MenuVisible() bool {
	return h.menuVisible
}

// HideWelcome hides the welcome banner. Called after the first world load.
func (h *HUD) HideWelcome() {
	h.welcomeVisible = false
}

// WelcomeVisible reports whether the welcome banner is shown.
func (h *HUD) WelcomeVisible() bool {
	return h.welcomeVisible
}

// ShowMessage displays a transient message in the center of the screen.
// duration is advisory: the message stops drawing once it passes, but
// nothing evicts it actively; the next ShowMessage simply replaces it.
func (h *HUD) ShowMessage(text string, duration time.Duration, col world.Color) {
	h.message = text
	h.messageColor = col
	h.messageUntil = time.Now().Add(duration)
}

// Message returns the current transient message ("" when none was set).
func (h *HUD) Message() string {
	return h.message
}

// Accessors for the formatted lines, used by tests and the draw code.

func (h *HUD) Title() string        { return h.title }
func (h *HUD) PositionText() string { return h.positionText }
func (h *HUD) WorldText() string    { return h.worldText }
func (h *HUD) FPSText() string      { return h.fpsText }

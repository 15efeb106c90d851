// Package game is the single-threaded game loop: it owns the world
// builder, the player avatar, and the HUD, and routes the engine's frame
// ticks and key events to them. Everything runs synchronously inside one
// callback; the loop creates no goroutines of its own.
package game

import (
	"time"

	"blockworld/internal/hud"
	"blockworld/internal/logger"
	"blockworld/internal/player"
	"blockworld/internal/world"
)

// State of the loop: Idle before the first world load, Running after.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// defaultHillsSeed keeps the hills world stable across reloads within a
// run without making it a config knob.
const defaultHillsSeed = 1337

// messageDuration is how long world-load messages stay on screen.
const messageDuration = 3 * time.Second

// choice couples a selectable world's key and display name with its
// producer. A nil producer means the builder's builtin random world.
type choice struct {
	key      string
	name     string
	producer world.Producer
}

// Game wires one Builder, one Avatar, and one HUD together and dispatches
// ticks and key events between them.
type Game struct {
	builder *world.Builder
	avatar  *player.Avatar
	hud     *hud.HUD
	log     *logger.Logger

	state   State
	current string // key of the world the r key reloads
	done    bool
	worlds  []choice

	now           func() time.Time
	frameCount    int
	lastFPSUpdate time.Time
}

// New returns an idle game. startWorld is the key the first r press
// loads; unknown keys fall back to the flat world.
func New(builder *world.Builder, avatar *player.Avatar, h *hud.HUD, log *logger.Logger, startWorld string) *Game {
	g := &Game{
		builder: builder,
		avatar:  avatar,
		hud:     h,
		log:     log,
		current: startWorld,
		now:     time.Now,
		worlds: []choice{
			{key: "flat", name: "Flat World", producer: world.FlatWorld},
			{key: "pyramid", name: "Pyramid World", producer: world.PyramidWorld},
			{key: "checkerboard", name: "Checkerboard World", producer: world.CheckerboardWorld},
			{key: "random", name: "Random World", producer: nil},
			{key: "hills", name: "Hills World", producer: world.HillsWorld(defaultHillsSeed)},
		},
	}
	g.lastFPSUpdate = g.now()
	h.SetWorlds(g.WorldNames())
	return g
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Done reports whether the user asked to quit.
func (g *Game) Done() bool {
	return g.done
}

// WorldNames lists the selectable worlds in number-key order.
func (g *Game) WorldNames() []string {
	names := make([]string, len(g.worlds))
	for i, c := range g.worlds {
		names[i] = c.name
	}
	return names
}

// byKey finds a world by key. Unknown keys fall back to the flat world,
// labelled as the default, so a bad start_world never blocks play.
func (g *Game) byKey(key string) choice {
	for _, c := range g.worlds {
		if c.key == key {
			return c
		}
	}
	c := g.worlds[0]
	c.name = c.name + " (Default)"
	return c
}

// ReloadWorld replaces the current world with the named one and updates
// the HUD. The first call moves the loop from Idle to Running.
func (g *Game) ReloadWorld(key string) {
	c := g.byKey(key)
	g.builder.GenerateWorld(c.producer)
	g.current = c.key

	g.hud.SetTitle(c.name)
	g.hud.ShowMessage(c.name+" loaded!", messageDuration, world.White)
	g.hud.HideWelcome()
	g.state = StateRunning

	g.log.Logf("world loaded: %s (%d blocks)", c.name, g.builder.Count())
}

// Tick runs once per frame. While Running it pulls the avatar snapshot,
// pushes it with the world info into the HUD, and refreshes the FPS
// estimate once per wall-clock second. A panic anywhere inside is
// recovered and logged so a transient read error never kills the frame
// loop.
func (g *Game) Tick() {
	defer func() {
		if r := recover(); r != nil {
			g.log.Logf("tick error (non-critical): %v", r)
		}
	}()

	if g.state != StateRunning {
		return
	}

	g.hud.UpdatePlayerInfo(g.avatar.GetMovementInfo())
	g.hud.UpdateWorldInfo(g.builder.Info())

	g.frameCount++
	now := g.now()
	if elapsed := now.Sub(g.lastFPSUpdate); elapsed >= time.Second {
		g.hud.UpdateFPS(float64(g.frameCount) / elapsed.Seconds())
		g.frameCount = 0
		g.lastFPSUpdate = now
	}
}

// Input handles one key event from the engine. Unknown keys are ignored.
func (g *Game) Input(key string) {
	switch key {
	case "h":
		g.hud.ToggleHelp()
	case "r":
		g.ReloadWorld(g.current)
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if idx < len(g.worlds) {
			g.ReloadWorld(g.worlds[idx].key)
		}
	case "g":
		g.hud.ToggleMenu()
	case "escape":
		g.Quit()
	}
}

// Quit marks the loop done; the engine's main loop stops on the next
// iteration.
func (g *Game) Quit() {
	if !g.done {
		g.done = true
		g.log.Log("quit requested")
	}
}

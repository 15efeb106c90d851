package main

import (
	"fmt"
	"os"

	"blockworld/internal/game"
	"blockworld/internal/gameconfig"
	"blockworld/internal/graphics"
	"blockworld/internal/hud"
	"blockworld/internal/logger"
	"blockworld/internal/player"
	"blockworld/internal/scene"
	"blockworld/internal/world"
)

func main() {
	prefs, err := gameconfig.Load(gameconfig.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "blockworld:", err)
		os.Exit(1)
	}

	log := logger.New(logger.DefaultPath)
	scn := scene.New()
	builder := world.NewBuilder(scn, world.Options{
		WorldSize:      prefs.WorldSize,
		RandomBlocks:   prefs.RandomBlocks,
		MaxStackHeight: prefs.MaxStackHeight,
	})
	avatar := player.New(scn)
	h := hud.New()
	h.SetShowFPS(prefs.ShowFPS)
	if prefs.ShowHelp {
		h.ToggleHelp()
	}
	g := game.New(builder, avatar, h, log, prefs.StartWorld)

	err = graphics.Run("Block World Sandbox", prefs.Fullscreen,
		func() {
			scn.Update()
			g.Tick()
		},
		func() {
			scn.Draw()
			h.Draw()
		},
		g.Input,
		g.Done,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "blockworld:", err)
		os.Exit(1)
	}
}

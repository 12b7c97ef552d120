package main

import (
	"context"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"chirp8/chip8"
	"chirp8/emu"
	"chirp8/emu/log"
	"chirp8/hw"
	"chirp8/rom"
)

// emuMain runs the emulator with the given rom.
func emuMain(args Run) {
	var exitcode int
	sdl.Main(func() {
		cfg := emu.LoadConfigOrDefault()
		if args.Scale > 0 {
			cfg.Video.Scale = args.Scale
		}

		loader := emu.NewLoader(chip8.Source{}, args.RomPath)
		inst, err := loader.Load(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load rom: %v\n", err)
			exitcode = 1
			return
		}

		video, err := hw.NewVideo("chirp8", cfg.Video)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start video: %v\n", err)
			exitcode = 1
			return
		}
		defer video.Close()

		// Both colors survived VideoConfig.Check, they parse.
		on, _ := emu.ParseColor(cfg.Video.OnColor)
		off, _ := emu.ParseColor(cfg.Video.OffColor)

		loop := hw.NewLoop(video, hw.NewKeymap(cfg.Input))

		if keys, ok := inst.(interface {
			KeyDown(key byte)
			KeyUp(key byte)
		}); ok {
			loop.SetKeyHandler(func(key byte, down bool) {
				if down {
					keys.KeyDown(key)
				} else {
					keys.KeyUp(key)
				}
			})
		}

		if snd, ok := inst.(interface{ SoundTimer() byte }); ok && !cfg.Audio.DisableAudio {
			beeper, err := hw.NewBeeper()
			if err != nil {
				log.ModSound.Warnf("audio disabled: %v", err)
			} else {
				defer beeper.Close()
				loop.SetFrameHook(func() {
					beeper.RunFrame(snd.SoundTimer() > 0)
				})
			}
		}

		lc := emu.NewLifecycle(loop.Intervals(), loop.Refreshes(), video, on, off)
		lc.Activate(inst)
		loop.Run()
		lc.Deactivate()
	})
	os.Exit(exitcode)
}

// romInfosMain shows infos about a ROM image.
func romInfosMain(args RomInfos) {
	infos, err := rom.ReadInfos(context.Background(), args.RomPath)
	checkf(err, "failed to read rom")

	if args.JSON {
		checkf(infos.WriteJSON(os.Stdout), "failed to encode infos")
		fmt.Println()
		return
	}
	infos.PrintInfos(os.Stdout)
}

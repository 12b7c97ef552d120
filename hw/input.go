package hw

import (
	"github.com/veandco/go-sdl2/sdl"

	"chirp8/emu"
	"chirp8/emu/log"
)

// Keymap translates SDL scancodes to CHIP-8 keypad key values (0x0-0xF).
type Keymap map[sdl.Scancode]byte

// NewKeymap resolves the configured key names. Unknown names are dropped
// with a warning, leaving that keypad key unmapped.
func NewKeymap(cfg emu.InputConfig) Keymap {
	km := make(Keymap, len(cfg.Keys))
	for key, name := range cfg.Keys {
		sc := sdl.GetScancodeFromName(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			log.ModInput.Warnf("unknown key name %q for keypad key %X", name, key)
			continue
		}
		km[sc] = byte(key)
	}
	return km
}

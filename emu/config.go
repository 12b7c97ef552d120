package emu

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"chirp8/emu/log"
)

type Config struct {
	Video VideoConfig `toml:"video"`
	Audio AudioConfig `toml:"audio"`
	Input InputConfig `toml:"input"`
}

type VideoConfig struct {
	Scale        int32  `toml:"scale"`
	OnColor      string `toml:"on_color"`
	OffColor     string `toml:"off_color"`
	DisableVSync bool   `toml:"disable_vsync"`
}

// Check falls back to default values for settings that do not parse.
func (vcfg *VideoConfig) Check() {
	if vcfg.Scale <= 0 {
		vcfg.Scale = defaultConfig.Video.Scale
	}
	if _, err := ParseColor(vcfg.OnColor); err != nil {
		log.ModVideo.Warnf("invalid on_color %q, fallback to %q", vcfg.OnColor, defaultConfig.Video.OnColor)
		vcfg.OnColor = defaultConfig.Video.OnColor
	}
	if _, err := ParseColor(vcfg.OffColor); err != nil {
		log.ModVideo.Warnf("invalid off_color %q, fallback to %q", vcfg.OffColor, defaultConfig.Video.OffColor)
		vcfg.OffColor = defaultConfig.Video.OffColor
	}
}

type AudioConfig struct {
	DisableAudio bool `toml:"disable_audio"`
}

// InputConfig maps each of the 16 keypad keys to a keyboard key name (SDL
// scancode names).
type InputConfig struct {
	Keys [16]string `toml:"keys"`
}

func (cfg *InputConfig) Init() {
	for i, k := range cfg.Keys {
		if k == "" {
			cfg.Keys[i] = defaultKeys[i]
		}
	}
}

// Classic COSMAC keypad layout folded onto the left side of a QWERTY
// keyboard, indexed by keypad key value.
var defaultKeys = [16]string{
	"X", "1", "2", "3",
	"Q", "W", "E", "A",
	"S", "D", "Z", "C",
	"4", "R", "F", "V",
}

var defaultConfig = Config{
	Video: VideoConfig{
		Scale:    10,
		OnColor:  "#33ff66",
		OffColor: "#000000",
	},
}

var ConfigDir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("chirp8")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the chirp8 config
// directory, or provides a default one.
func LoadConfigOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(ConfigDir(), cfgFilename), &cfg)
	if err != nil {
		cfg = defaultConfig
	}
	cfg.Input.Init()
	cfg.Video.Check()
	return cfg
}

// SaveConfig into the chirp8 config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir(), cfgFilename), buf, 0644)
}

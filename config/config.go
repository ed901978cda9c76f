// Package config holds the user settings of the emulator front ends. Settings
// are stored as JSON; every field missing from the file keeps its default.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/meadori/nescore/controller"
	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/logger"
)

// Error patterns returned by Load and Save.
const (
	ErrRead    = "config: read %s: %v"
	ErrParse   = "config: parse %s: %v"
	ErrInvalid = "config: invalid %s: %v"
	ErrWrite   = "config: write %s: %v"
)

// Config is the complete set of user settings.
type Config struct {
	Video  VideoConfig  `json:"video"`
	Input  InputConfig  `json:"input"`
	Server ServerConfig `json:"server"`
	Debug  DebugConfig  `json:"debug"`
}

// VideoConfig contains presentation settings.
type VideoConfig struct {
	Scale     float64 `json:"scale"`     // window scale factor
	Scanlines bool    `json:"scanlines"` // darken every other line
}

// InputConfig maps keyboard keys, by name, to controller buttons.
type InputConfig struct {
	Player1 KeyMapping `json:"player1"`
}

// KeyMapping associates a key name with each button.
type KeyMapping struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Select string `json:"select"`
	Start  string `json:"start"`
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

// Keys returns the key names in button order.
func (k KeyMapping) Keys() [8]string {
	return [8]string{
		controller.A:      k.A,
		controller.B:      k.B,
		controller.Select: k.Select,
		controller.Start:  k.Start,
		controller.Up:     k.Up,
		controller.Down:   k.Down,
		controller.Left:   k.Left,
		controller.Right:  k.Right,
	}
}

// ServerConfig contains settings for the remote debugger service.
type ServerConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

// DebugConfig contains development options.
type DebugConfig struct {
	Trace         string `json:"trace"`    // file to write an execution trace to
	LogEcho       bool   `json:"log_echo"` // mirror the emulator log to stderr
	Statsview     bool   `json:"statsview"`
	StatsviewAddr string `json:"statsview_addr"` // empty for the default address
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Video: VideoConfig{
			Scale:     1.5,
			Scanlines: true,
		},
		Input: InputConfig{
			Player1: KeyMapping{
				A:      "Z",
				B:      "X",
				Select: "Shift",
				Start:  "Enter",
				Up:     "ArrowUp",
				Down:   "ArrowDown",
				Left:   "ArrowLeft",
				Right:  "ArrowRight",
			},
		},
		Server: ServerConfig{
			Enabled: true,
			Port:    50051,
		},
	}
}

// Load reads settings from path. A missing file is not an error: the default
// settings are returned.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf("config", "%s not found, using defaults", path)
			return c, nil
		}
		return nil, curated.Errorf(ErrRead, path, err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, curated.Errorf(ErrParse, path, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	logger.Logf("config", "loaded %s", path)
	return c, nil
}

// Save writes the settings to path, creating its directory if necessary.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return curated.Errorf(ErrWrite, path, err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return curated.Errorf(ErrWrite, path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return curated.Errorf(ErrWrite, path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Video.Scale <= 0 || c.Video.Scale > 8 {
		return curated.Errorf(ErrInvalid, "video scale", c.Video.Scale)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return curated.Errorf(ErrInvalid, "server port", c.Server.Port)
	}
	for i, k := range c.Input.Player1.Keys() {
		if strings.TrimSpace(k) == "" {
			return curated.Errorf(ErrInvalid, "key mapping", controller.Button(i))
		}
	}
	return nil
}

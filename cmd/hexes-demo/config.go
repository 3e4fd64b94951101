package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional settings read from hexes.toml. Every field has a
// default, so the demo runs fine with no config file at all.
type Config struct {
	// LogFile receives debug logs from the dispatch loop. Empty disables
	// logging.
	LogFile string `toml:"log_file"`

	// QuitKey is the key that exits the demo.
	QuitKey string `toml:"quit_key"`

	// ListCommand is run to fill the listing pane, and re-run after every
	// event so the pane tracks the directory.
	ListCommand string `toml:"list_command"`

	// SidebarWidth is the fixed width of the right-hand input pane.
	SidebarWidth int `toml:"sidebar_width"`

	// StatusHeight is the fixed height of the bottom status bar.
	StatusHeight int `toml:"status_height"`
}

func defaultConfig() Config {
	return Config{
		QuitKey:      "q",
		ListCommand:  "ls",
		SidebarWidth: 20,
		StatusHeight: 3,
	}
}

// loadConfig reads the TOML file at path over the defaults. A missing file is
// not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse %s: %w", path, err)
	}

	if config.SidebarWidth <= 0 || config.StatusHeight <= 0 {
		return config, fmt.Errorf("%s: pane sizes must be positive", path)
	}
	return config, nil
}

// quitRune returns the first rune of QuitKey, falling back to 'q'.
func (c Config) quitRune() rune {
	for _, r := range c.QuitKey {
		return r
	}
	return 'q'
}

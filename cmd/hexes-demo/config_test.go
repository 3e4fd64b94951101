package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "hexes.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	want := defaultConfig()
	if config != want {
		t.Errorf("config = %+v, want defaults %+v", config, want)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexes.toml")
	content := `
quit_key = "x"
sidebar_width = 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if config.QuitKey != "x" || config.SidebarWidth != 30 {
		t.Errorf("overrides not applied: %+v", config)
	}
	// Untouched keys keep their defaults.
	if config.ListCommand != "ls" || config.StatusHeight != 3 {
		t.Errorf("defaults lost for absent keys: %+v", config)
	}
}

func TestLoadConfig_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexes.toml")
	if err := os.WriteFile(path, []byte("quit_key = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestLoadConfig_RejectsNonPositivePaneSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexes.toml")
	if err := os.WriteFile(path, []byte("sidebar_width = 0"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("zero sidebar width should fail")
	}
}

func TestConfig_QuitRune(t *testing.T) {
	if r := defaultConfig().quitRune(); r != 'q' {
		t.Errorf("default quit rune = %q, want 'q'", r)
	}
	c := Config{QuitKey: "x"}
	if r := c.quitRune(); r != 'x' {
		t.Errorf("quit rune = %q, want 'x'", r)
	}
	if r := (Config{}).quitRune(); r != 'q' {
		t.Errorf("empty quit key rune = %q, want fallback 'q'", r)
	}
}

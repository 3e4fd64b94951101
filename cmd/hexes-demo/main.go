// Command hexes-demo is a small file browser built on the hexes toolkit.
//
// The screen splits into three panes: a scrolling directory listing, a status
// bar, and an editable sidebar. Keys:
//
//	q          quit
//	j, k       scroll the listing (also the arrow keys)
//	e          edit the sidebar; Enter echoes the text into the status bar
//
// An optional hexes.toml next to the binary overrides the defaults; see
// Config for the recognized keys.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"hexes"
)

func main() {
	configPath := flag.String("config", "hexes.toml", "path to the demo config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "hexes-demo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	config, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	listing := hexes.NewBox(
		hexes.WithTitle("files"),
		hexes.WithStyle(hexes.Style{Scroll: true}),
	)
	status := hexes.NewBox(
		hexes.WithTitle("status"),
		hexes.WithStyle(hexes.Style{Height: hexes.Fixed(config.StatusHeight)}),
		hexes.WithText("j/k scroll, e edit, q quit"),
	)
	sidebar := hexes.NewBox(
		hexes.WithTitle("input"),
		hexes.WithEditable(),
		hexes.WithStyle(hexes.Style{Width: hexes.Fixed(config.SidebarWidth)}),
	)
	root := hexes.NewBox(
		hexes.WithStyle(hexes.Style{Layout: hexes.Horizontal, Border: hexes.BorderNone}),
		hexes.WithChildren(
			hexes.NewBox(
				hexes.WithStyle(hexes.Style{Border: hexes.BorderNone}),
				hexes.WithChildren(listing, status),
			),
			sidebar,
		),
	)

	var opts []hexes.AppOption
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, hexes.WithLogger(logger))
	}

	app, err := hexes.NewApp(root, opts...)
	if err != nil {
		return err
	}

	app.On(hexes.OnRune(config.quitRune()), func(a *hexes.App) { a.Quit() })

	scroll := func(delta int) hexes.Behavior {
		return func(*hexes.App) { listing.Scroll(delta) }
	}
	app.On(hexes.OnRune('j'), scroll(1))
	app.On(hexes.OnRune('k'), scroll(-1))
	app.On(hexes.OnKey(hexes.KeyDown), scroll(1))
	app.On(hexes.OnKey(hexes.KeyUp), scroll(-1))

	app.On(hexes.OnRune('e'), func(a *hexes.App) {
		err := a.Edit(sidebar, func(_ *hexes.App, _ *hexes.Box, text string) {
			status.SetText("you typed: " + text)
		})
		if err != nil {
			a.Logger().Warn("edit request rejected", "err", err)
		}
	})

	// Refresh reschedules itself, so the listing is re-read once per loop
	// iteration, like a cooperative background task.
	var refresh hexes.Behavior
	refresh = func(a *hexes.App) {
		if out, err := listDirectory(config.ListCommand); err != nil {
			status.SetText(err.Error())
		} else {
			listing.SetText(out)
		}
		a.Schedule(refresh)
	}
	app.On(hexes.Ready(), refresh)

	return app.Run()
}

// listDirectory runs the configured listing command and returns its output
// with the trailing newline removed.
func listDirectory(command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty list command")
	}
	out, err := exec.Command(fields[0], fields[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("run %q: %w", command, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

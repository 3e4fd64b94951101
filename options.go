package hexes

import (
	"fmt"
	"log/slog"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithDriver replaces the terminal driver. Use this to run against a
// MockDriver in tests or a custom backend.
func WithDriver(d Driver) AppOption {
	return func(a *App) error {
		if d == nil {
			return fmt.Errorf("hexes: WithDriver requires a non-nil driver")
		}
		a.driver = d
		return nil
	}
}

// WithLogger sets the logger used by the dispatch loop and behaviors.
// Logs are discarded by default.
func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) error {
		if logger == nil {
			return fmt.Errorf("hexes: WithLogger requires a non-nil logger")
		}
		a.logger = logger
		return nil
	}
}

// WithEditTerminator sets the key that ends an edit session.
// Default is Enter; Ctrl+G matches the classic textbox binding.
func WithEditTerminator(k Key) AppOption {
	return func(a *App) error {
		if k == KeyNone || k == KeyRune {
			return fmt.Errorf("hexes: edit terminator must be a specific special key, got %s", k)
		}
		a.terminator = k
		return nil
	}
}

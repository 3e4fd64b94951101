package hexes

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellDriver is the production Driver backed by a tcell screen.
type TcellDriver struct {
	screen tcell.Screen
}

var _ Driver = (*TcellDriver)(nil)

// NewTcellDriver creates a driver for the process's terminal. The terminal
// is not touched until Init is called.
func NewTcellDriver() *TcellDriver {
	return &TcellDriver{}
}

// Init allocates and initializes the tcell screen, entering raw input mode
// and the alternate screen buffer.
func (d *TcellDriver) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	d.screen = screen
	return nil
}

// Fini restores the terminal to its pre-Init state.
func (d *TcellDriver) Fini() {
	if d.screen != nil {
		d.screen.Fini()
		d.screen = nil
	}
}

// Size returns the terminal dimensions in cells.
func (d *TcellDriver) Size() (width, height int) {
	return d.screen.Size()
}

// PollEvent blocks until an event the toolkit understands arrives. Mouse,
// paste, and unmapped key events are discarded here so the dispatch loop
// only ever sees the closed Event enumeration.
func (d *TcellDriver) PollEvent() Event {
	for {
		ev := d.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			// The screen was finalized under us; the event stream is gone.
			return ErrorEvent{Err: errors.New("terminal event stream closed")}
		case *tcell.EventError:
			return ErrorEvent{Err: errors.New(tev.Error())}
		case *tcell.EventResize:
			width, height := tev.Size()
			d.screen.Sync()
			return ResizeEvent{Width: width, Height: height}
		case *tcell.EventKey:
			if kev, ok := translateKey(tev); ok {
				return kev
			}
		}
	}
}

// SetCell paints a single rune at (x, y).
func (d *TcellDriver) SetCell(x, y int, r rune) {
	d.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
}

// Clear erases the whole screen.
func (d *TcellDriver) Clear() {
	d.screen.Clear()
}

// Show flushes pending paints to the terminal.
func (d *TcellDriver) Show() {
	d.screen.Show()
}

// translateKey maps a tcell key event into the toolkit's key enumeration.
// Keys outside the enumeration report ok=false and are dropped.
func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}, true
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}, true
	case tcell.KeyTab:
		return KeyEvent{Key: KeyTab}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace}, true
	case tcell.KeyDelete:
		return KeyEvent{Key: KeyDelete}, true
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}, true
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}, true
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}, true
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}, true
	case tcell.KeyHome:
		return KeyEvent{Key: KeyHome}, true
	case tcell.KeyEnd:
		return KeyEvent{Key: KeyEnd}, true
	case tcell.KeyPgUp:
		return KeyEvent{Key: KeyPageUp}, true
	case tcell.KeyPgDn:
		return KeyEvent{Key: KeyPageDown}, true
	case tcell.KeyCtrlC:
		return KeyEvent{Key: KeyCtrlC}, true
	case tcell.KeyCtrlG:
		return KeyEvent{Key: KeyCtrlG}, true
	default:
		return KeyEvent{}, false
	}
}

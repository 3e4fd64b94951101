package hexes

import (
	"errors"
	"strings"
)

// errEventScriptDrained ends a test run whose script forgot to quit.
var errEventScriptDrained = errors.New("hexes: mock event script drained")

// MockDriver is an in-memory Driver for tests. It records everything painted
// into a rune grid and serves input from a scripted event queue, so dispatch
// loop tests run without a terminal.
type MockDriver struct {
	width  int
	height int
	cells  []rune

	events []Event
	next   int

	initCount int
	finiCount int
	showCount int
	inited    bool
}

var _ Driver = (*MockDriver)(nil)

// NewMockDriver creates a mock terminal with the given dimensions.
func NewMockDriver(width, height int) *MockDriver {
	m := &MockDriver{width: width, height: height}
	m.reset()
	return m
}

func (m *MockDriver) reset() {
	m.cells = make([]rune, m.width*m.height)
	for i := range m.cells {
		m.cells[i] = ' '
	}
}

// QueueEvents appends scripted events for PollEvent to serve in order.
func (m *MockDriver) QueueEvents(events ...Event) {
	m.events = append(m.events, events...)
}

// QueueKeys is shorthand for queueing one rune keypress per character.
func (m *MockDriver) QueueKeys(runes ...rune) {
	for _, r := range runes {
		m.events = append(m.events, KeyEvent{Key: KeyRune, Rune: r})
	}
}

// Resize changes the reported dimensions and queues the matching
// ResizeEvent, the way a real terminal delivers a resize.
func (m *MockDriver) Resize(width, height int) {
	m.width = width
	m.height = height
	m.reset()
	m.QueueEvents(ResizeEvent{Width: width, Height: height})
}

// Init marks the driver acquired.
func (m *MockDriver) Init() error {
	m.initCount++
	m.inited = true
	return nil
}

// Fini marks the driver released.
func (m *MockDriver) Fini() {
	m.finiCount++
	m.inited = false
}

// Size returns the mock dimensions.
func (m *MockDriver) Size() (width, height int) {
	return m.width, m.height
}

// PollEvent serves the next scripted event. When the script runs dry it
// reports a fatal error instead of blocking, so a test that would otherwise
// hang fails visibly.
func (m *MockDriver) PollEvent() Event {
	if m.next >= len(m.events) {
		return ErrorEvent{Err: errEventScriptDrained}
	}
	ev := m.events[m.next]
	m.next++
	return ev
}

// SetCell records a painted rune.
func (m *MockDriver) SetCell(x, y int, r rune) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = r
}

// Clear erases the grid.
func (m *MockDriver) Clear() {
	m.reset()
}

// Show counts frame flushes.
func (m *MockDriver) Show() {
	m.showCount++
}

// --- Test helper methods ---

// RuneAt returns the rune last painted at (x, y), or a space out of bounds.
func (m *MockDriver) RuneAt(x, y int) rune {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return ' '
	}
	return m.cells[y*m.width+x]
}

// String renders the grid to a newline-separated string for snapshots.
func (m *MockDriver) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			sb.WriteRune(m.cells[y*m.width+x])
		}
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the grid with trailing spaces removed per line.
func (m *MockDriver) StringTrimmed() string {
	lines := strings.Split(m.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// ShowCount returns how many frames were flushed.
func (m *MockDriver) ShowCount() int {
	return m.showCount
}

// InitCount returns how many times Init was called.
func (m *MockDriver) InitCount() int {
	return m.initCount
}

// FiniCount returns how many times Fini was called.
func (m *MockDriver) FiniCount() int {
	return m.finiCount
}

// Acquired returns whether the driver is currently between Init and Fini.
func (m *MockDriver) Acquired() bool {
	return m.inited
}

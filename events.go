package hexes

// Event is a notification produced by the terminal driver. The concrete
// types are KeyEvent, ResizeEvent, and ErrorEvent; the dispatch loop
// processes them strictly one at a time, in arrival order.
type Event interface {
	isEvent()
}

// KeyEvent reports a single keypress.
type KeyEvent struct {
	Key  Key
	Rune rune // populated when Key == KeyRune
}

func (KeyEvent) isEvent() {}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// ErrorEvent reports a fatal terminal failure. The dispatch loop terminates
// when it sees one; the error is wrapped in a DriverError and returned from
// Run after driver resources are released.
type ErrorEvent struct {
	Err error
}

func (ErrorEvent) isEvent() {}

// eventKind discriminates EventID variants.
type eventKind uint8

const (
	eventReady eventKind = iota
	eventRune
	eventKey
)

// EventID identifies a dispatchable event for behavior registration: the
// ready lifecycle token, a printable character, or a special key. It is a
// small comparable value, suitable as a map key.
type EventID struct {
	kind eventKind
	key  Key
	r    rune
}

// Ready returns the lifecycle event identifier, fired exactly once after
// the first successful layout and render, before the first key is read.
func Ready() EventID {
	return EventID{kind: eventReady}
}

// OnRune returns the event identifier for a printable character key.
func OnRune(r rune) EventID {
	return EventID{kind: eventRune, r: r}
}

// OnKey returns the event identifier for a special key.
// OnKey(KeyRune) is not a valid identifier; use OnRune instead.
func OnKey(k Key) EventID {
	return EventID{kind: eventKey, key: k}
}

// String returns a human-readable form of the identifier, for logs.
func (id EventID) String() string {
	switch id.kind {
	case eventReady:
		return "ready"
	case eventRune:
		return string(id.r)
	default:
		return id.key.String()
	}
}

// keyEventID maps an incoming key event to its registry identifier.
func keyEventID(ev KeyEvent) EventID {
	if ev.Key == KeyRune {
		return OnRune(ev.Rune)
	}
	return OnKey(ev.Key)
}

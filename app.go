package hexes

import (
	"fmt"
	"io"
	"log/slog"
)

// App owns the root box, the behavior registry, and the active edit session,
// and drives them all from a single dispatch loop. Create one with NewApp,
// register behaviors with On, then call Run, which blocks until a behavior
// calls Quit or the terminal driver fails.
//
// Everything runs on the goroutine that called Run: behaviors, layout and
// rendering are never concurrent with each other, so the box tree needs no
// locking by construction. Suspension only happens at the top of the loop
// while waiting for the next event.
type App struct {
	root     *Box
	driver   Driver
	registry *registry
	logger   *slog.Logger
	buf      *Buffer

	// queue holds behaviors deferred to the next loop iteration.
	queue []Behavior

	// edit is the active edit session, nil when dispatching normally.
	edit       *editSession
	terminator Key

	quitting bool
}

// NewApp creates an application around the given root box.
// By default it talks to the process's terminal through a tcell driver,
// discards logs, and terminates edit sessions on Enter.
func NewApp(root *Box, opts ...AppOption) (*App, error) {
	if root == nil {
		return nil, fmt.Errorf("hexes: NewApp requires a root box")
	}
	a := &App{
		root:       root,
		driver:     NewTcellDriver(),
		registry:   newRegistry(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		terminator: KeyEnter,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Root returns the application's root box.
func (a *App) Root() *Box {
	return a.root
}

// Logger returns the application's logger for use inside behaviors.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// On binds a behavior to an event identifier: the Ready lifecycle token or a
// key. Each identifier holds a single behavior; registering again replaces
// the previous one. A nil behavior removes the binding.
func (a *App) On(id EventID, fn Behavior) {
	a.logger.Debug("register behavior", "event", id.String())
	a.registry.register(id, fn)
}

// Schedule enqueues fn for invocation on the next loop iteration. The queue
// is drained once per iteration, after the current behavior returns and
// before the next key is read; scheduling never creates concurrency, only
// queued sequential execution.
func (a *App) Schedule(fn Behavior) {
	a.queue = append(a.queue, fn)
}

// Quit asks the dispatch loop to stop. It is observed at the top of the next
// loop iteration, so the behavior that called it always finishes first.
func (a *App) Quit() {
	a.quitting = true
}

// Edit starts an edit session on box: until the termination key is seen,
// keypresses append to the box's text instead of dispatching behaviors, and
// callback then receives the accumulated characters. Returns ErrNotEditable
// if the box is not editable and ErrEditActive if a session is already
// running; both leave the dispatch state untouched.
//
// The engine does not restart sessions: call Edit again from within the
// callback for continuous editing.
func (a *App) Edit(box *Box, callback EditCallback) error {
	if a.edit != nil {
		return ErrEditActive
	}
	if box == nil || !box.Editable() {
		return ErrNotEditable
	}
	a.logger.Debug("edit session started", "box", box.String())
	a.edit = &editSession{box: box, callback: callback}
	return nil
}

// Editing returns whether an edit session is currently active.
func (a *App) Editing() bool {
	return a.edit != nil
}

// Run acquires the terminal and blocks in the dispatch loop until a behavior
// calls Quit or the driver fails fatally. The terminal is restored to its
// pre-run state on every exit path: normal quit, driver failure, or a panic
// raised by a behavior.
func (a *App) Run() error {
	if err := a.driver.Init(); err != nil {
		return fmt.Errorf("hexes: acquire terminal: %w", err)
	}
	defer a.driver.Fini()

	width, height := a.driver.Size()
	a.buf = NewBuffer(width, height)
	a.layoutAndRender()

	// The ready behavior fires exactly once, after the first successful
	// layout and render, before the first key is read.
	if ready := a.registry.lookup(Ready()); ready != nil {
		a.Schedule(ready)
	}

	return a.loop()
}

// loop is the dispatch state machine. Events are processed strictly one at a
// time in arrival order; no behavior runs concurrently with another or with
// a render pass.
func (a *App) loop() error {
	for {
		a.drainQueue()

		if a.quitting {
			a.logger.Debug("quit observed, leaving dispatch loop")
			return nil
		}
		if a.root.consumeDirty() {
			a.layoutAndRender()
		}

		switch ev := a.driver.PollEvent().(type) {
		case ResizeEvent:
			a.logger.Debug("terminal resized", "width", ev.Width, "height", ev.Height)
			a.buf.Resize(ev.Width, ev.Height)
			a.driver.Clear()
			a.layoutAndRender()
		case KeyEvent:
			if a.edit != nil {
				a.feedEdit(ev)
			} else {
				a.dispatch(keyEventID(ev))
			}
		case ErrorEvent:
			a.logger.Error("terminal driver failure", "err", ev.Err)
			return &DriverError{Err: ev.Err}
		}
	}
}

// drainQueue runs the behaviors scheduled as of this iteration. Behaviors
// scheduled while draining wait for the next iteration, so a behavior that
// reschedules itself cannot starve input.
func (a *App) drainQueue() {
	pending := a.queue
	a.queue = nil
	for _, fn := range pending {
		fn(a)
	}
}

// dispatch invokes the behavior registered for id, if any. Unregistered
// identifiers are silently ignored.
func (a *App) dispatch(id EventID) {
	fn := a.registry.lookup(id)
	if fn == nil {
		return
	}
	a.logger.Debug("dispatch", "event", id.String())
	fn(a)
}

// feedEdit routes one keypress into the active edit session, keeping the
// target box's text visibly current. On termination the session is cleared
// before the callback runs, so the callback may immediately re-arm editing.
func (a *App) feedEdit(ev KeyEvent) {
	session := a.edit
	done, changed := session.feed(ev, a.terminator)
	if changed && a.root.consumeDirty() {
		a.layoutAndRender()
	}
	if !done {
		return
	}
	a.edit = nil
	a.logger.Debug("edit session finished", "box", session.box.String(), "text", session.text())
	if session.callback != nil {
		session.callback(a, session.box, session.text())
	}
}

// layoutAndRender recomputes the full tree against the current terminal size
// and flushes a complete frame to the driver.
func (a *App) layoutAndRender() {
	width, height := a.driver.Size()
	if bw, bh := a.buf.Size(); bw != width || bh != height {
		a.buf.Resize(width, height)
	}
	Calculate(a.root, NewRect(0, 0, width, height))
	a.buf.Clear()
	Render(a.root, a.buf)
	flush(a.driver, a.buf)
	a.root.dirty = false
}

// Package hexes is a box-model toolkit for terminal user interfaces.
//
// An application describes its screen as a tree of rectangular boxes, each
// carrying layout directives (axis, flow, fixed size) and optional text.
// The layout engine turns that tree plus the terminal dimensions into a
// concrete rectangle per box; the renderer paints borders and text into a
// cell buffer that is flushed to the terminal through a small driver
// interface backed by tcell.
//
// A single dispatch loop reads keys and resizes, re-runs layout and render
// when anything changes, and invokes behaviors registered against key
// events or the ready lifecycle token. Behaviors run one at a time on the
// loop goroutine; Schedule defers work to the next iteration and Edit
// routes keypresses into one editable box until a terminating key.
//
//	root := hexes.NewBox(
//		hexes.WithStyle(hexes.Style{Layout: hexes.Horizontal}),
//		hexes.WithChildren(left, right),
//	)
//	app, err := hexes.NewApp(root)
//	if err != nil {
//		log.Fatal(err)
//	}
//	app.On(hexes.OnRune('q'), func(a *hexes.App) { a.Quit() })
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
package hexes

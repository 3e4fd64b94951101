package hexes

// Behavior is a callback bound to an event identifier. Behaviors run on the
// dispatch loop with the owning Application as context and always run to
// completion before the next event is read.
type Behavior func(*App)

// registry maps event identifiers to behaviors. Each identifier holds a
// single slot: registering again replaces the previous behavior.
type registry struct {
	behaviors map[EventID]Behavior
}

func newRegistry() *registry {
	return &registry{behaviors: make(map[EventID]Behavior)}
}

// register binds fn to id, replacing any previous binding (last write wins).
// A nil fn removes the binding.
func (r *registry) register(id EventID, fn Behavior) {
	if fn == nil {
		delete(r.behaviors, id)
		return
	}
	r.behaviors[id] = fn
}

// lookup returns the behavior bound to id, or nil. Dispatching an
// unregistered identifier is a silent no-op, not an error.
func (r *registry) lookup(id EventID) Behavior {
	return r.behaviors[id]
}

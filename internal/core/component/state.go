package component

// State is the typed activation slot a Conditional persists its flag in.
// It is owned by the caller, lives alongside the instance and survives
// across ticks. Access is single-writer per instance; the wrapper
// performs no locking of its own.
type State struct {
	active bool
}

// Active reports whether the wrapped component's OnApply was delivered
// more recently than its OnRemove. False before first evaluation.
func (s *State) Active() bool {
	return s != nil && s.active
}

func (s *State) set(v bool) {
	s.active = v
}

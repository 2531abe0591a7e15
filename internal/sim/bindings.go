package sim

// Bindings maps a key, as reported by the terminal front-end, to an action.
type Bindings map[string]Action

// DefaultBindings returns the stock key map. Keys are case-sensitive.
func DefaultBindings() Bindings {
	return Bindings{
		"q":      ActionQuit,
		"ctrl+c": ActionQuit,
		"w":      ActionPanNorth,
		"k":      ActionPanNorth,
		"a":      ActionPanWest,
		"h":      ActionPanWest,
		"s":      ActionPanSouth,
		"j":      ActionPanSouth,
		"d":      ActionPanEast,
		"l":      ActionPanEast,
		"c":      ActionClear,
		"r":      ActionRandomize,
		" ":      ActionTogglePause,
		"+":      ActionSpeedUp,
		"-":      ActionSpeedDown,
		"n":      ActionStep,
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (b Bindings) Lookup(key string) Action {
	if a, ok := b[key]; ok {
		return a
	}
	return ActionNone
}

package input

import "gridsnake/game/types"

// KeyTable maps frontend key codes to intents. Keys missing from the
// table are silently ignored.
type KeyTable[K comparable] map[K]Intent

// Lookup returns the intent bound to k.
func (kt KeyTable[K]) Lookup(k K) (Intent, bool) {
	in, ok := kt[k]
	if !ok || in.Type == IntentNone {
		return Intent{}, false
	}
	return in, true
}

// Arrows builds the four arrow bindings from frontend key codes.
func Arrows[K comparable](up, down, left, right K) KeyTable[K] {
	return KeyTable[K]{
		up:    Steer(types.Up),
		down:  Steer(types.Down),
		left:  Steer(types.Left),
		right: Steer(types.Right),
	}
}

// With returns a copy of kt extended by other. Bindings in other win.
func (kt KeyTable[K]) With(other KeyTable[K]) KeyTable[K] {
	out := make(KeyTable[K], len(kt)+len(other))
	for k, v := range kt {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

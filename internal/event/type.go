package event

import "strings"

// Type identifies the kind of an event. Types are bit flags so a
// subscription signature can match several kinds with one mask.
//
// A concrete event always carries exactly one bit. Composite values
// appear only as subscription signatures.
type Type uint32

const (
	// TypeNone matches no events.
	TypeNone Type = 0

	// TypeKeyPressed indicates a key was pressed.
	TypeKeyPressed Type = 1 << iota

	// TypeKeyReleased indicates a key was released.
	// Terminal sources cannot observe key release and never produce it;
	// it exists for signatures and synthetic events.
	TypeKeyReleased

	// TypeWindowResized indicates the window or terminal changed size.
	TypeWindowResized

	// TypeFocusGained indicates the window received focus.
	TypeFocusGained

	// TypeFocusLost indicates the window lost focus.
	TypeFocusLost
)

// Has returns true if t contains the specified type bit.
func (t Type) Has(typ Type) bool {
	return t&typ != 0
}

// With returns a new Type with the specified type added.
func (t Type) With(typ Type) Type {
	return t | typ
}

// Without returns a new Type with the specified type removed.
func (t Type) Without(typ Type) Type {
	return t &^ typ
}

// IsSingle returns true if exactly one type bit is set, i.e. t is
// valid as the type of a concrete event.
func (t Type) IsSingle() bool {
	return t != 0 && t&(t-1) == 0
}

// typeNames maps single type bits to their canonical names.
var typeNames = map[Type]string{
	TypeKeyPressed:    "key_pressed",
	TypeKeyReleased:   "key_released",
	TypeWindowResized: "window_resized",
	TypeFocusGained:   "focus_gained",
	TypeFocusLost:     "focus_lost",
}

// String returns a human-readable representation. Composite values
// are pipe-joined, e.g. "key_pressed|key_released".
func (t Type) String() string {
	if t == TypeNone {
		return "none"
	}

	var parts []string
	for bit := Type(1); bit != 0 && bit <= t; bit <<= 1 {
		if t&bit == 0 {
			continue
		}
		if name, ok := typeNames[bit]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, "unknown")
		}
	}
	return strings.Join(parts, "|")
}

// TypeFromName returns the Type for a canonical name (case-insensitive).
// Returns TypeNone if the name is not recognized.
func TypeFromName(name string) Type {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t
		}
	}
	return TypeNone
}

package input

import "strings"

// Mod represents keyboard modifier keys.
type Mod uint8

const (
	// ModNone indicates no modifiers.
	ModNone Mod = 0

	// ModShift indicates the Shift key.
	ModShift Mod = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key.
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Mod) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// Key is the payload of a TypeKeyPressed event.
type Key struct {
	// Rune is the character for printable keys, 0 for special keys.
	Rune rune

	// Name is the special key name ("Enter", "Esc"); empty for rune keys.
	Name string

	// Mod contains the active modifier keys.
	Mod Mod
}

// IsRune returns true if this is a character key.
func (k Key) IsRune() bool {
	return k.Rune != 0
}

// String returns a canonical representation like "a", "Esc", or "Ctrl+c".
func (k Key) String() string {
	name := k.Name
	if k.IsRune() {
		name = string(k.Rune)
	}
	if mods := k.Mod.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// Resize is the payload of a TypeWindowResized event.
type Resize struct {
	Width  int
	Height int
}

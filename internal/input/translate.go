package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/eventkit/internal/event"
)

// sourceName tags events produced by this package.
const sourceName = "input"

// Translate converts a raw terminal event into a bus event.
// The second return value is false for terminal events the dispatcher
// has no type for (mouse, paste, interrupts); callers skip those.
func Translate(ev tcell.Event) (event.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return event.NewWithSource(event.TypeKeyPressed, keyPayload(e), sourceName), true

	case *tcell.EventResize:
		w, h := e.Size()
		return event.NewWithSource(event.TypeWindowResized, Resize{Width: w, Height: h}, sourceName), true

	case *tcell.EventFocus:
		typ := event.TypeFocusLost
		if e.Focused {
			typ = event.TypeFocusGained
		}
		return event.NewWithSource(typ, nil, sourceName), true

	default:
		return event.Event{}, false
	}
}

// keyPayload converts a tcell key event to a Key payload. Control
// chords arrive from tcell as dedicated key codes named "Ctrl-X"; they
// are normalized to a lowercase rune with ModCtrl set so that
// Key.String() yields "Ctrl+x".
func keyPayload(e *tcell.EventKey) Key {
	k := Key{Mod: convertMod(e.Modifiers())}
	if e.Key() == tcell.KeyRune {
		k.Rune = e.Rune()
		return k
	}

	name := keyName(e.Key())
	if rest, ok := strings.CutPrefix(name, "Ctrl-"); ok {
		k.Mod |= ModCtrl
		if r := []rune(rest); len(r) == 1 {
			k.Rune = unicode.ToLower(r[0])
			return k
		}
		k.Name = rest
		return k
	}

	k.Name = name
	return k
}

// keyName returns a stable name for a special key.
func keyName(k tcell.Key) string {
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// convertMod converts tcell modifier state to our Mod bitmask.
func convertMod(m tcell.ModMask) Mod {
	var mod Mod
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= ModMeta
	}
	return mod
}

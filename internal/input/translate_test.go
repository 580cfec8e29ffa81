package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/eventkit/internal/event"
)

func TestTranslate_KeyRune(t *testing.T) {
	ev, ok := Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModCtrl))
	if !ok {
		t.Fatal("expected key event to translate")
	}
	if !ev.Is(event.TypeKeyPressed) {
		t.Fatalf("expected key_pressed, got %v", ev.Type())
	}

	key, isKey := ev.Payload().(Key)
	if !isKey {
		t.Fatalf("expected Key payload, got %T", ev.Payload())
	}
	if key.Rune != 'a' {
		t.Errorf("expected rune a, got %q", key.Rune)
	}
	if !key.Mod.Has(ModCtrl) {
		t.Errorf("expected Ctrl modifier, got %v", key.Mod)
	}
	if !key.IsRune() {
		t.Error("expected IsRune for a character key")
	}
	if ev.Metadata().Source != "input" {
		t.Errorf("expected source input, got %q", ev.Metadata().Source)
	}
}

func TestTranslate_SpecialKey(t *testing.T) {
	ev, ok := Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !ok {
		t.Fatal("expected key event to translate")
	}

	key := ev.Payload().(Key)
	if key.IsRune() {
		t.Error("expected special key, not a rune")
	}
	if key.Name == "" {
		t.Error("expected a key name for Escape")
	}
}

func TestTranslate_ControlChord(t *testing.T) {
	ev, ok := Translate(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
	if !ok {
		t.Fatal("expected key event to translate")
	}

	key := ev.Payload().(Key)
	if got := key.String(); got != "Ctrl+q" {
		t.Errorf("expected Ctrl+q, got %q", got)
	}
}

func TestTranslate_Resize(t *testing.T) {
	ev, ok := Translate(tcell.NewEventResize(80, 24))
	if !ok {
		t.Fatal("expected resize event to translate")
	}
	if !ev.Is(event.TypeWindowResized) {
		t.Fatalf("expected window_resized, got %v", ev.Type())
	}

	size := ev.Payload().(Resize)
	if size.Width != 80 || size.Height != 24 {
		t.Errorf("expected 80x24, got %dx%d", size.Width, size.Height)
	}
}

func TestTranslate_Focus(t *testing.T) {
	tests := []struct {
		name    string
		focused bool
		want    event.Type
	}{
		{name: "gained", focused: true, want: event.TypeFocusGained},
		{name: "lost", focused: false, want: event.TypeFocusLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := Translate(tcell.NewEventFocus(tt.focused))
			if !ok {
				t.Fatal("expected focus event to translate")
			}
			if !ev.Is(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, ev.Type())
			}
		})
	}
}

func TestTranslate_UnknownEventSkipped(t *testing.T) {
	if _, ok := Translate(tcell.NewEventInterrupt(nil)); ok {
		t.Error("expected interrupt event to be skipped")
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "plain rune", key: Key{Rune: 'a'}, want: "a"},
		{name: "special key", key: Key{Name: "Esc"}, want: "Esc"},
		{name: "ctrl rune", key: Key{Rune: 'c', Mod: ModCtrl}, want: "Ctrl+c"},
		{name: "ctrl alt special", key: Key{Name: "F1", Mod: ModCtrl | ModAlt}, want: "Ctrl+Alt+F1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConvertMod(t *testing.T) {
	got := convertMod(tcell.ModShift | tcell.ModAlt)
	if !got.Has(ModShift) || !got.Has(ModAlt) {
		t.Errorf("expected Shift+Alt, got %v", got)
	}
	if got.Has(ModCtrl) || got.Has(ModMeta) {
		t.Errorf("unexpected modifiers in %v", got)
	}
}

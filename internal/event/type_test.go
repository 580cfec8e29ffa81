package event

import "testing"

func TestType_BitFlags(t *testing.T) {
	// Every concrete type must be a distinct power of two.
	all := []Type{TypeKeyPressed, TypeKeyReleased, TypeWindowResized, TypeFocusGained, TypeFocusLost}
	seen := TypeNone
	for _, typ := range all {
		if !typ.IsSingle() {
			t.Errorf("%v: expected a single bit", typ)
		}
		if seen.Has(typ) {
			t.Errorf("%v: overlaps another type", typ)
		}
		seen = seen.With(typ)
	}
}

func TestType_SetOperations(t *testing.T) {
	sig := TypeKeyPressed.With(TypeKeyReleased)

	if !sig.Has(TypeKeyPressed) || !sig.Has(TypeKeyReleased) {
		t.Error("expected signature to contain both key types")
	}
	if sig.Has(TypeWindowResized) {
		t.Error("expected signature not to contain window_resized")
	}
	if sig.IsSingle() {
		t.Error("expected composite signature to not be single")
	}
	if got := sig.Without(TypeKeyReleased); got != TypeKeyPressed {
		t.Errorf("Without: expected key_pressed, got %v", got)
	}
	if TypeNone.IsSingle() {
		t.Error("expected TypeNone to not be single")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeNone, "none"},
		{TypeKeyPressed, "key_pressed"},
		{TypeKeyReleased, "key_released"},
		{TypeWindowResized, "window_resized"},
		{TypeKeyPressed | TypeKeyReleased, "key_pressed|key_released"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"key_pressed", TypeKeyPressed},
		{"KEY_RELEASED", TypeKeyReleased},
		{" focus_gained ", TypeFocusGained},
		{"bogus", TypeNone},
		{"", TypeNone},
	}

	for _, tt := range tests {
		if got := TypeFromName(tt.name); got != tt.want {
			t.Errorf("TypeFromName(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

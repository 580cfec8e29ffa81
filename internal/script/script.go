// Package script loads event handlers written in Lua.
//
// A handler script declares the event types it wants and a function
// that receives each matching event:
//
//	signature = { "key_pressed", "key_released" }
//
//	function on_event(ev)
//	    print("got " .. ev.type)
//	    return false -- true stops propagation
//	end
//
// Scripts run in a sandboxed state with only the base, table, string,
// and math libraries opened. A Handler is not goroutine-safe: the
// underlying Lua state must be used from one goroutine, which matches
// the single-threaded bus it subscribes to.
package script

import (
	"context"
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/eventkit/internal/event"
	"github.com/dshills/eventkit/internal/input"
)

// Handler is an event.Handler backed by a Lua script.
type Handler struct {
	state *lua.LState
	fn    *lua.LFunction
	sig   event.Type
	path  string
}

// Load reads a Lua script and returns a Handler for it.
// The script must define an on_event function and a signature global
// (a type name or a list of type names).
func Load(path string) (*Handler, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	openSafeLibraries(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", path, err)
	}

	sig, err := readSignature(L)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", path, err)
	}

	fn, ok := L.GetGlobal("on_event").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", path, ErrNoHandler)
	}

	return &Handler{state: L, fn: fn, sig: sig, path: path}, nil
}

// LoadDir loads every *.lua file in dir, in lexical order.
// On any failure the already-loaded handlers are closed.
func LoadDir(dir string) ([]*Handler, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return nil, err
	}

	handlers := make([]*Handler, 0, len(paths))
	for _, path := range paths {
		h, err := Load(path)
		if err != nil {
			for _, loaded := range handlers {
				loaded.Close()
			}
			return nil, err
		}
		handlers = append(handlers, h)
	}
	return handlers, nil
}

// Signature returns the event types the script asked for.
func (h *Handler) Signature() event.Type {
	return h.sig
}

// Path returns the script file this handler was loaded from.
func (h *Handler) Path() string {
	return h.path
}

// Handle implements event.Handler by calling the script's on_event
// function. The Lua return value is the stop-propagation flag; a Lua
// error surfaces as a handler error. The context is not propagated
// into Lua: scripts run to completion.
func (h *Handler) Handle(ctx context.Context, ev event.Event) (bool, error) {
	err := h.state.CallByParam(lua.P{
		Fn:      h.fn,
		NRet:    1,
		Protect: true,
	}, h.eventTable(ev))
	if err != nil {
		return false, fmt.Errorf("script %s: %w", h.path, err)
	}

	ret := h.state.Get(-1)
	h.state.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state. The Handler must not be used after.
func (h *Handler) Close() {
	h.state.Close()
}

// eventTable converts an event into the table passed to on_event.
func (h *Handler) eventTable(ev event.Event) *lua.LTable {
	t := h.state.NewTable()
	t.RawSetString("type", lua.LString(ev.Type().String()))
	t.RawSetString("id", lua.LString(ev.Metadata().ID))
	t.RawSetString("source", lua.LString(ev.Metadata().Source))

	switch p := ev.Payload().(type) {
	case input.Key:
		if p.IsRune() {
			t.RawSetString("rune", lua.LString(string(p.Rune)))
		} else {
			t.RawSetString("key", lua.LString(p.Name))
		}
		t.RawSetString("mods", lua.LString(p.Mod.String()))
	case input.Resize:
		t.RawSetString("width", lua.LNumber(p.Width))
		t.RawSetString("height", lua.LNumber(p.Height))
	}
	return t
}

// readSignature combines the script's signature global into a bitmask.
func readSignature(L *lua.LState) (event.Type, error) {
	var sig event.Type
	switch v := L.GetGlobal("signature").(type) {
	case lua.LString:
		sig = event.TypeFromName(string(v))
	case *lua.LTable:
		v.ForEach(func(_, val lua.LValue) {
			sig = sig.With(event.TypeFromName(lua.LVAsString(val)))
		})
	}

	if sig == event.TypeNone {
		return event.TypeNone, ErrNoSignature
	}
	return sig, nil
}

// openSafeLibraries opens only Lua standard libraries that cannot
// touch the file system or the process (no io, os, debug, package),
// then removes the file and chunk loaders that base registers.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// base brings dofile/loadfile/load along; a script could use them
	// to read and execute arbitrary files.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Package app wires the event bus, terminal input, configuration and
// script handlers into a runnable application.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/eventkit/internal/config"
	"github.com/dshills/eventkit/internal/event"
	"github.com/dshills/eventkit/internal/input"
	"github.com/dshills/eventkit/internal/script"
)

// Options configures application creation.
type Options struct {
	// ConfigPath is the TOML config file. Empty means defaults only
	// and no file watching.
	ConfigPath string

	// LogLevel overrides the configured level when non-empty.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Screen supplies an existing terminal screen. Tests pass a
	// tcell simulation screen. Nil means allocate the real terminal.
	Screen tcell.Screen
}

// Application owns the bus, the input source and the loaded script
// handlers for one run of the program.
type Application struct {
	cfg     config.Config
	cfgPath string
	logger  *Logger
	bus     *event.Bus
	source  *input.Source
	watcher *config.Watcher

	scripts    []*script.Handler
	scriptSubs []*event.Subscription
	monitorSub *event.Subscription

	// pendingMu guards pendingCfg, which the watcher goroutine sets
	// and the run loop applies before dispatching the next event.
	pendingMu  sync.Mutex
	pendingCfg *config.Config

	quitKey   string
	lastEvent string
	quit      bool

	shutdownOnce sync.Once
}

// New creates an application from opts. The returned application is
// not touching the terminal yet; Run does that.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := NewLogger(ParseLogLevel(level), opts.LogOutput)

	a := &Application{
		cfg:     cfg,
		cfgPath: opts.ConfigPath,
		logger:  logger,
		quitKey: cfg.Input.QuitKey,
	}

	a.bus = event.NewBus(
		event.WithQueueCapacity(cfg.Bus.QueueCapacity),
		event.WithErrorHandler(func(ev event.Event, err error) {
			logger.Error("handler failed on %s: %v", ev.Type(), err)
		}),
		event.WithPanicHandler(func(ev event.Event, rec any, stack []byte) {
			logger.Error("handler panicked on %s: %v\n%s", ev.Type(), rec, stack)
		}),
	)

	if opts.Screen != nil {
		a.source = input.NewSourceFromScreen(opts.Screen)
	} else {
		src, err := input.NewSource()
		if err != nil {
			return nil, &InitError{Component: "input", Err: err}
		}
		a.source = src
	}

	// The monitor subscribes before any script so stop requests from
	// scripts cannot hide the quit key.
	sub, err := a.bus.SubscribeFunc(
		event.TypeKeyPressed|event.TypeKeyReleased|event.TypeWindowResized|
			event.TypeFocusGained|event.TypeFocusLost,
		a.monitor,
	)
	if err != nil {
		return nil, &InitError{Component: "monitor", Err: err}
	}
	a.monitorSub = sub

	if err := a.loadScripts(cfg.Scripts.Dir); err != nil {
		return nil, &InitError{Component: "scripts", Err: err}
	}

	return a, nil
}

// Run initializes the terminal and processes events until the quit
// key is pressed, the screen is finalized, or ctx is canceled.
func (a *Application) Run(ctx context.Context) error {
	if err := a.source.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer a.Shutdown()

	if a.cfgPath != "" {
		w, err := config.Watch(a.cfgPath, a.storePending, func(err error) {
			a.logger.Warn("config reload failed: %v", err)
		})
		if err != nil {
			a.logger.Warn("config watching disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.logger.Info("running, quit key is %s", a.quitKey)
	a.render()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, ok := a.source.Poll()
		if !ok {
			return nil
		}

		a.applyPending()

		if err := a.bus.Enqueue(ev); err != nil {
			a.logger.Error("enqueue failed: %v", err)
			continue
		}
		if err := a.bus.Drain(ctx); err != nil {
			return err
		}

		a.render()

		if a.quit {
			return ErrQuit
		}
	}
}

// Shutdown releases the terminal, the config watcher and every script
// handler. Safe to call multiple times.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			a.watcher.Close()
		}
		a.monitorSub.Close()
		a.closeScripts()
		a.source.Fini()
		a.logger.Info("shut down")
	})
}

// Stats reports the bus counters accumulated so far.
func (a *Application) Stats() event.Stats {
	return a.bus.Stats()
}

// monitor records the last event for the status line and flags the
// quit key. It never stops propagation.
func (a *Application) monitor(ctx context.Context, ev event.Event) (bool, error) {
	switch p := ev.Payload().(type) {
	case input.Key:
		a.lastEvent = fmt.Sprintf("%s %s", ev.Type(), p)
		if ev.Is(event.TypeKeyPressed) && p.String() == a.quitKey {
			a.quit = true
		}
	case input.Resize:
		a.lastEvent = fmt.Sprintf("%s %dx%d", ev.Type(), p.Width, p.Height)
	default:
		a.lastEvent = ev.Type().String()
	}
	a.logger.Debug("event %s", a.lastEvent)
	return false, nil
}

func (a *Application) loadScripts(dir string) error {
	if dir == "" {
		return nil
	}
	handlers, err := script.LoadDir(dir)
	if err != nil {
		return err
	}
	for _, h := range handlers {
		sub, err := a.bus.Subscribe(h.Signature(), h)
		if err != nil {
			h.Close()
			return fmt.Errorf("subscribing %s: %w", h.Path(), err)
		}
		a.scripts = append(a.scripts, h)
		a.scriptSubs = append(a.scriptSubs, sub)
		a.logger.Info("loaded script %s for %s", h.Path(), h.Signature())
	}
	return nil
}

func (a *Application) closeScripts() {
	for _, sub := range a.scriptSubs {
		sub.Close()
	}
	for _, h := range a.scripts {
		h.Close()
	}
	a.scriptSubs = nil
	a.scripts = nil
}

// storePending runs on the watcher goroutine. The bus is single
// threaded, so the new config is parked here and applied by the run
// loop before the next event is dispatched.
func (a *Application) storePending(cfg config.Config) {
	a.pendingMu.Lock()
	a.pendingCfg = &cfg
	a.pendingMu.Unlock()
}

func (a *Application) applyPending() {
	a.pendingMu.Lock()
	cfg := a.pendingCfg
	a.pendingCfg = nil
	a.pendingMu.Unlock()

	if cfg == nil {
		return
	}
	a.applyConfig(*cfg)
}

func (a *Application) applyConfig(cfg config.Config) {
	a.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	a.quitKey = cfg.Input.QuitKey

	// Scripts reload on every applied config: a rewrite that keeps the
	// same dir usually means the scripts themselves changed.
	a.closeScripts()
	if err := a.loadScripts(cfg.Scripts.Dir); err != nil {
		a.logger.Error("reloading scripts: %v", err)
	}

	a.cfg = cfg
	a.logger.Info("configuration reloaded")
}

func (a *Application) render() {
	screen := a.source.Screen()
	screen.Clear()

	stats := a.bus.Stats()
	lines := []string{
		fmt.Sprintf("eventkit  (press %s to quit)", a.quitKey),
		fmt.Sprintf("last: %s", a.lastEvent),
		fmt.Sprintf("dispatched %d  delivered %d  stopped %d  errors %d",
			stats.Dispatched, stats.Delivered, stats.Stopped, stats.HandlerErrors),
	}
	for y, line := range lines {
		for x, r := range line {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}

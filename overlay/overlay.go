// Package overlay coordinates one shared blur session across concurrently
// dispatched commands, the way a desktop-shell command handler drives the
// engine: at most one system context and at most one window, both held in a
// single mutex-guarded slot structure.
//
// Lifecycle commands (EnsureStarted, EnsureStopped) serialize under the
// guard; parameter updates and FPS queries read the current session under
// the same guard and are best-effort against current state, silently doing
// nothing when no session is active.
package overlay

import (
	"log/slog"
	"sync"

	"github.com/glasskit/blurwindow"
)

// Session is the window surface the controller drives. *blurwindow.Window
// satisfies it; tests substitute doubles.
type Session interface {
	Start() error
	Stop() error
	Destroy()
	FPS() float32

	SetEffectType(blurwindow.EffectType) error
	SetStrength(float32) error
	SetBlurParam(float32) error
	SetTintColor(r, g, b, a float32) error
	SetNoiseIntensity(float32) error
	SetNoiseScale(float32) error
	SetNoiseSpeed(float32) error
	SetNoiseType(blurwindow.NoiseType) error
	SetRainIntensity(float32) error
	SetRainDropSpeed(float32) error
	SetRainRefraction(float32) error
	SetRainTrailLength(float32) error
	SetRainDropSizeRange(minSize, maxSize float32) error
}

// Engine is the system surface the controller drives.
type Engine interface {
	CreateWindow(blurwindow.WindowOptions) (Session, error)
	Close() error
}

// InitFunc lazily initializes the engine the first time a session is needed.
type InitFunc func() (Engine, error)

// Controller holds the shared system and window slots. Both slots are
// guarded by one mutex, so lazy initialization followed by window creation
// is atomic with respect to every other command.
type Controller struct {
	init InitFunc
	cfg  Config
	log  *slog.Logger

	mu  sync.Mutex
	eng Engine
	win Session
}

// New returns a controller backed by the native blurwindow engine,
// initialized lazily on the first EnsureStarted.
func New(cfg Config, logger *slog.Logger) *Controller {
	return newController(cfg, logger, func() (Engine, error) {
		sys, err := blurwindow.Init(blurwindow.SystemOptions{
			EnableLogging: cfg.EnableLogging,
			LogPath:       cfg.LogPath,
			DefaultPreset: cfg.Preset,
		})
		if err != nil {
			return nil, err
		}
		return systemEngine{sys}, nil
	})
}

func newController(cfg Config, logger *slog.Logger, init InitFunc) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{init: init, cfg: cfg, log: logger}
}

// systemEngine adapts *blurwindow.System to the Engine interface.
type systemEngine struct {
	sys *blurwindow.System
}

func (e systemEngine) CreateWindow(opts blurwindow.WindowOptions) (Session, error) {
	return e.sys.CreateWindow(opts)
}

func (e systemEngine) Close() error {
	return e.sys.Close()
}

// EnsureStarted brings the shared overlay up. If a session already exists it
// succeeds immediately with no side effects; otherwise it initializes the
// engine if absent, creates a window from the configured defaults, starts
// it, and applies the optional effect selector.
func (c *Controller) EnsureStarted(effect *blurwindow.EffectType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.win != nil {
		return nil
	}

	if c.eng == nil {
		eng, err := c.init()
		if err != nil {
			return err
		}
		c.eng = eng
	}

	win, err := c.eng.CreateWindow(blurwindow.WindowOptions{
		Bounds:       c.cfg.Bounds,
		TopMost:      c.cfg.TopMost,
		ClickThrough: c.cfg.ClickThrough,
	})
	if err != nil {
		// The engine stays initialized for the next attempt.
		return err
	}

	if err := win.Start(); err != nil {
		win.Destroy()
		return err
	}

	if effect != nil {
		if err := win.SetEffectType(*effect); err != nil {
			c.log.Warn("overlay: set effect type", "error", err)
		}
	}

	c.win = win
	c.log.Info("overlay started",
		"bounds", c.cfg.Bounds,
		"top_most", c.cfg.TopMost,
		"click_through", c.cfg.ClickThrough)
	return nil
}

// EnsureStopped tears the shared overlay down if one exists; otherwise it is
// a no-op.
func (c *Controller) EnsureStopped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	if c.win == nil {
		return
	}
	if err := c.win.Stop(); err != nil {
		c.log.Warn("overlay: stop", "error", err)
	}
	c.win.Destroy()
	c.win = nil
	c.log.Info("overlay stopped")
}

// Active reports whether a session currently exists.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.win != nil
}

// FPS returns the current session's frame rate, or 0 when no session is
// active.
func (c *Controller) FPS() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.win == nil {
		return 0
	}
	return c.win.FPS()
}

// Close stops any active session and shuts the engine down.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	if c.eng == nil {
		return nil
	}
	err := c.eng.Close()
	c.eng = nil
	return err
}

package blurwindow

import (
	"runtime"
	"sync"
)

// Window owns one native blur window handle created from a live System.
// It moves through three states: created (not started), running, and
// destroyed. Every operation on a destroyed window fails with
// ErrInvalidHandle without touching the native layer.
//
// A Window is safe for use from multiple goroutines.
type Window struct {
	api engineAPI
	sys *System // the owning context; not owned by the window

	mu      sync.Mutex
	handle  uintptr
	running bool
}

// Start begins rendering. Starting an already-running window is a no-op
// success. On a native failure the window stays valid and stopped.
func (w *Window) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handle == 0 {
		return ErrInvalidHandle
	}
	if w.running {
		return nil
	}
	if err := w.api.Start(w.handle).Err(); err != nil {
		return err
	}
	w.running = true
	return nil
}

// Stop halts rendering. Stopping an already-stopped window is a no-op
// success.
func (w *Window) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handle == 0 {
		return ErrInvalidHandle
	}
	if !w.running {
		return nil
	}
	if err := w.api.Stop(w.handle).Err(); err != nil {
		return err
	}
	w.running = false
	return nil
}

// Running reports whether the window is currently rendering.
func (w *Window) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Destroy releases the native window. It is idempotent and valid in any
// state; after Destroy every other operation fails with ErrInvalidHandle.
// Destroy also runs as a finalizer backstop if the value is dropped
// undestroyed.
func (w *Window) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handle == 0 {
		return
	}
	w.api.DestroyWindow(w.handle)
	w.handle = 0
	w.running = false
	runtime.SetFinalizer(w, nil)
}

func (w *Window) finalize() {
	w.Destroy()
}

// FPS returns the last frames-per-second measurement reported by the engine.
// This is a query, not a fallible operation: a destroyed window reports the
// engine's null-handle sentinel (-1) without a native call.
func (w *Window) FPS() float32 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handle == 0 {
		return -1
	}
	return w.api.GetFps(w.handle)
}

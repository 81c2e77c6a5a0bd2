package blurwindow

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/glasskit/blurwindow/internal/ffi"
)

// System owns the single native system context. It must be initialized with
// Init before any Window can be created, and closed exactly once when done;
// Close is idempotent and also runs as a finalizer backstop if the value is
// dropped unclosed.
//
// A System is safe for use from multiple goroutines.
type System struct {
	api engineAPI

	mu     sync.Mutex
	handle uintptr

	opts SystemOptions
}

// Init loads the native library if needed and initializes the blur system.
// On failure the engine's last-error detail is included when available.
//
// Re-initializing is not supported: callers needing a fresh context must
// Close this one and construct a new value.
func Init(opts SystemOptions) (*System, error) {
	if err := ffi.Load(); err != nil {
		return nil, err
	}
	return initSystem(nativeEngine{}, opts)
}

func initSystem(api engineAPI, opts SystemOptions) (*System, error) {
	if strings.IndexByte(opts.LogPath, 0) >= 0 {
		return nil, fmt.Errorf("log path: %w", ErrInvalidParameter)
	}

	handle := api.Init(opts.EnableLogging, opts.LogPath, opts.DefaultPreset)
	if handle == 0 {
		// The last-error string is only authoritative at init time.
		if detail := api.LastError(); detail != "" {
			return nil, fmt.Errorf("%w: %s", ErrInitFailed, detail)
		}
		return nil, ErrInitFailed
	}

	s := &System{api: api, handle: handle, opts: opts}
	runtime.SetFinalizer(s, (*System).finalize)
	return s, nil
}

// Options returns the configuration snapshot the system was initialized with.
func (s *System) Options() SystemOptions {
	return s.opts
}

// Close shuts the blur system down and releases the native handle. It is
// idempotent; closing an already-closed system is a no-op.
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == 0 {
		return nil
	}
	s.api.Shutdown(s.handle)
	s.handle = 0
	runtime.SetFinalizer(s, nil)
	return nil
}

func (s *System) finalize() {
	_ = s.Close()
}

// EnableLogging toggles the engine's internal logging at runtime. An empty
// path selects the console sink.
func (s *System) EnableLogging(enable bool, path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return fmt.Errorf("log path: %w", ErrInvalidParameter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == 0 {
		return ErrNotInitialized
	}
	s.api.EnableLogging(s.handle, enable, path)
	return nil
}

// CreateWindow allocates a window-scoped render/capture pipeline bound to the
// given owner and bounds. The returned Window must not outlive this System.
func (s *System) CreateWindow(opts WindowOptions) (*Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == 0 {
		return nil, ErrNotInitialized
	}

	handle := s.api.CreateWindow(s.handle, opts.Owner, opts.Bounds, opts.TopMost, opts.ClickThrough)
	if handle == 0 {
		return nil, ErrCreateFailed
	}

	w := &Window{api: s.api, sys: s, handle: handle}
	runtime.SetFinalizer(w, (*Window).finalize)
	return w, nil
}

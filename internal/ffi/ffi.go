// Package ffi provides Go bindings to the native blurwindow engine via purego.
// Using purego for FFI eliminates the need for CGo and keeps the module
// cross-compilable.
//
// Functions in this package mirror the C ABI exactly: handles are opaque
// pointer-sized tokens (0 = null), enums and booleans cross as int32, scalars
// as float32, and strings as null-terminated byte buffers.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

// Library function pointers (populated by Load)
var (
	// System lifecycle
	fnInit          func(opts uintptr) uintptr
	fnShutdown      func(sys uintptr)
	fnGetLastError  func() uintptr
	fnEnableLogging func(sys uintptr, enable int32, path uintptr)

	// Window lifecycle
	fnCreateWindow  func(sys uintptr, owner uintptr, opts uintptr) uintptr
	fnDestroyWindow func(window uintptr)
	fnStart         func(window uintptr) int32
	fnStop          func(window uintptr) int32
	fnGetFps        func(window uintptr) float32

	// Window parameters
	fnSetPreset     func(window uintptr, preset int32) int32
	fnSetPipeline   func(window uintptr, jsonConfig uintptr) int32
	fnSetBounds     func(window uintptr, bounds uintptr) int32
	fnSetEffectType func(window uintptr, effectType int32) int32
	fnSetStrength   func(window uintptr, strength float32) int32
	fnSetBlurParam  func(window uintptr, param float32) int32
	fnSetTintColor  func(window uintptr, r, g, b, a float32) int32

	// Noise overlay
	fnSetNoiseIntensity func(window uintptr, intensity float32) int32
	fnSetNoiseScale     func(window uintptr, scale float32) int32
	fnSetNoiseSpeed     func(window uintptr, speed float32) int32
	fnSetNoiseType      func(window uintptr, noiseType int32) int32

	// Rain effect
	fnSetRainIntensity   func(window uintptr, intensity float32) int32
	fnSetRainDropSpeed   func(window uintptr, speed float32) int32
	fnSetRainRefraction  func(window uintptr, strength float32) int32
	fnSetRainTrailLength func(window uintptr, length float32) int32
	fnSetRainDropSize    func(window uintptr, minSize, maxSize float32) int32
)

// SystemOptionsC matches the C struct layout of BlurSystemOptionsC.
type SystemOptionsC struct {
	EnableLogging int32
	LogPath       uintptr
	DefaultPreset int32
}

// RectC matches the C struct layout of BlurRect.
type RectC struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// WindowOptionsC matches the C struct layout of BlurWindowOptionsC.
type WindowOptionsC struct {
	Owner        uintptr
	Bounds       RectC
	TopMost      int32
	ClickThrough int32
}

// getLibraryPath returns the path to the blurwindow dynamic library.
func getLibraryPath() string {
	// Check environment variable first
	if path := os.Getenv("BLURWINDOW_LIB_PATH"); path != "" {
		return path
	}

	var libName string
	switch runtime.GOOS {
	case "darwin":
		libName = "libblurwindow.dylib"
	case "windows":
		libName = "blurwindow.dll"
	default:
		libName = "libblurwindow.so"
	}

	// Check common locations
	searchPaths := []string{
		libName,
		filepath.Join(".", libName),
		filepath.Join("build", "lib", libName),
	}

	// Also check relative to the executable
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}

	// Default to the library name and let the system loader resolve it
	return libName
}

// Load loads the blurwindow dynamic library and registers all function
// pointers. Safe to call from multiple goroutines; the library is loaded at
// most once.
func Load() error {
	libOnce.Do(func() {
		libPath := getLibraryPath()

		libHandle, libErr = openLibrary(libPath)
		if libErr != nil {
			libErr = fmt.Errorf("failed to load blurwindow library from %s: %w", libPath, libErr)
			return
		}

		registerSystemFunctions()
		registerWindowFunctions()
		registerParameterFunctions()
	})

	return libErr
}

func registerSystemFunctions() {
	purego.RegisterLibFunc(&fnInit, libHandle, "blur_init")
	purego.RegisterLibFunc(&fnShutdown, libHandle, "blur_shutdown")
	purego.RegisterLibFunc(&fnGetLastError, libHandle, "blur_get_last_error")
	purego.RegisterLibFunc(&fnEnableLogging, libHandle, "blur_enable_logging")
}

func registerWindowFunctions() {
	purego.RegisterLibFunc(&fnCreateWindow, libHandle, "blur_create_window")
	purego.RegisterLibFunc(&fnDestroyWindow, libHandle, "blur_destroy_window")
	purego.RegisterLibFunc(&fnStart, libHandle, "blur_start")
	purego.RegisterLibFunc(&fnStop, libHandle, "blur_stop")
	purego.RegisterLibFunc(&fnGetFps, libHandle, "blur_get_fps")
}

func registerParameterFunctions() {
	purego.RegisterLibFunc(&fnSetPreset, libHandle, "blur_set_preset")
	purego.RegisterLibFunc(&fnSetPipeline, libHandle, "blur_set_pipeline")
	purego.RegisterLibFunc(&fnSetBounds, libHandle, "blur_set_bounds")
	purego.RegisterLibFunc(&fnSetEffectType, libHandle, "blur_set_effect_type")
	purego.RegisterLibFunc(&fnSetStrength, libHandle, "blur_set_strength")
	purego.RegisterLibFunc(&fnSetBlurParam, libHandle, "blur_set_blur_param")
	purego.RegisterLibFunc(&fnSetTintColor, libHandle, "blur_set_tint_color")
	purego.RegisterLibFunc(&fnSetNoiseIntensity, libHandle, "blur_set_noise_intensity")
	purego.RegisterLibFunc(&fnSetNoiseScale, libHandle, "blur_set_noise_scale")
	purego.RegisterLibFunc(&fnSetNoiseSpeed, libHandle, "blur_set_noise_speed")
	purego.RegisterLibFunc(&fnSetNoiseType, libHandle, "blur_set_noise_type")
	purego.RegisterLibFunc(&fnSetRainIntensity, libHandle, "blur_set_rain_intensity")
	purego.RegisterLibFunc(&fnSetRainDropSpeed, libHandle, "blur_set_rain_drop_speed")
	purego.RegisterLibFunc(&fnSetRainRefraction, libHandle, "blur_set_rain_refraction")
	purego.RegisterLibFunc(&fnSetRainTrailLength, libHandle, "blur_set_rain_trail_length")
	purego.RegisterLibFunc(&fnSetRainDropSize, libHandle, "blur_set_rain_drop_size")
}

// ============================================================================
// String Helpers
// ============================================================================

// ErrEmbeddedNul reports a Go string that cannot cross the ABI because it
// contains a terminator byte.
var ErrEmbeddedNul = errors.New("string contains embedded NUL byte")

// CString converts a Go string into a null-terminated byte buffer suitable
// for passing across the ABI. Strings containing an embedded NUL are
// rejected, since the native side would silently truncate them.
func CString(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, ErrEmbeddedNul
		}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// GoString converts a null-terminated C string pointer to a Go string.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	// Find the null terminator
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length > 1<<20 { // Safety limit: 1MB
			break
		}
	}
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(buf)
}

// bytesPtr returns the address of the first byte of b, or 0 for an empty
// buffer.
func bytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// ============================================================================
// System Lifecycle
// ============================================================================

// Init calls blur_init. logPath must already be null-terminated, or nil for
// the console sink. Returns the system handle, 0 on failure.
func Init(enableLogging int32, logPath []byte, defaultPreset int32) uintptr {
	opts := SystemOptionsC{
		EnableLogging: enableLogging,
		LogPath:       bytesPtr(logPath),
		DefaultPreset: defaultPreset,
	}
	h := fnInit(uintptr(unsafe.Pointer(&opts)))
	runtime.KeepAlive(&opts)
	runtime.KeepAlive(logPath)
	return h
}

// Shutdown calls blur_shutdown.
func Shutdown(sys uintptr) {
	fnShutdown(sys)
}

// LastError returns the engine's last error string, if any.
func LastError() string {
	return GoString(fnGetLastError())
}

// EnableLogging calls blur_enable_logging. path must already be
// null-terminated, or nil for the console sink.
func EnableLogging(sys uintptr, enable int32, path []byte) {
	fnEnableLogging(sys, enable, bytesPtr(path))
	runtime.KeepAlive(path)
}

// ============================================================================
// Window Lifecycle
// ============================================================================

// CreateWindow calls blur_create_window. Returns the window handle, 0 on
// failure.
func CreateWindow(sys uintptr, owner uintptr, bounds RectC, topMost, clickThrough int32) uintptr {
	opts := WindowOptionsC{
		Owner:        owner,
		Bounds:       bounds,
		TopMost:      topMost,
		ClickThrough: clickThrough,
	}
	h := fnCreateWindow(sys, owner, uintptr(unsafe.Pointer(&opts)))
	runtime.KeepAlive(&opts)
	return h
}

// DestroyWindow calls blur_destroy_window.
func DestroyWindow(window uintptr) {
	fnDestroyWindow(window)
}

// Start calls blur_start.
func Start(window uintptr) int32 {
	return fnStart(window)
}

// Stop calls blur_stop.
func Stop(window uintptr) int32 {
	return fnStop(window)
}

// GetFps calls blur_get_fps.
func GetFps(window uintptr) float32 {
	return fnGetFps(window)
}

// ============================================================================
// Window Parameters
// ============================================================================

// SetPreset calls blur_set_preset.
func SetPreset(window uintptr, preset int32) int32 {
	return fnSetPreset(window, preset)
}

// SetPipeline calls blur_set_pipeline. jsonConfig must already be
// null-terminated.
func SetPipeline(window uintptr, jsonConfig []byte) int32 {
	code := fnSetPipeline(window, bytesPtr(jsonConfig))
	runtime.KeepAlive(jsonConfig)
	return code
}

// SetBounds calls blur_set_bounds.
func SetBounds(window uintptr, bounds RectC) int32 {
	code := fnSetBounds(window, uintptr(unsafe.Pointer(&bounds)))
	runtime.KeepAlive(&bounds)
	return code
}

// SetEffectType calls blur_set_effect_type.
func SetEffectType(window uintptr, effectType int32) int32 {
	return fnSetEffectType(window, effectType)
}

// SetStrength calls blur_set_strength.
func SetStrength(window uintptr, strength float32) int32 {
	return fnSetStrength(window, strength)
}

// SetBlurParam calls blur_set_blur_param.
func SetBlurParam(window uintptr, param float32) int32 {
	return fnSetBlurParam(window, param)
}

// SetTintColor calls blur_set_tint_color.
func SetTintColor(window uintptr, r, g, b, a float32) int32 {
	return fnSetTintColor(window, r, g, b, a)
}

// SetNoiseIntensity calls blur_set_noise_intensity.
func SetNoiseIntensity(window uintptr, intensity float32) int32 {
	return fnSetNoiseIntensity(window, intensity)
}

// SetNoiseScale calls blur_set_noise_scale.
func SetNoiseScale(window uintptr, scale float32) int32 {
	return fnSetNoiseScale(window, scale)
}

// SetNoiseSpeed calls blur_set_noise_speed.
func SetNoiseSpeed(window uintptr, speed float32) int32 {
	return fnSetNoiseSpeed(window, speed)
}

// SetNoiseType calls blur_set_noise_type.
func SetNoiseType(window uintptr, noiseType int32) int32 {
	return fnSetNoiseType(window, noiseType)
}

// SetRainIntensity calls blur_set_rain_intensity.
func SetRainIntensity(window uintptr, intensity float32) int32 {
	return fnSetRainIntensity(window, intensity)
}

// SetRainDropSpeed calls blur_set_rain_drop_speed.
func SetRainDropSpeed(window uintptr, speed float32) int32 {
	return fnSetRainDropSpeed(window, speed)
}

// SetRainRefraction calls blur_set_rain_refraction.
func SetRainRefraction(window uintptr, strength float32) int32 {
	return fnSetRainRefraction(window, strength)
}

// SetRainTrailLength calls blur_set_rain_trail_length.
func SetRainTrailLength(window uintptr, length float32) int32 {
	return fnSetRainTrailLength(window, length)
}

// SetRainDropSize calls blur_set_rain_drop_size.
func SetRainDropSize(window uintptr, minSize, maxSize float32) int32 {
	return fnSetRainDropSize(window, minSize, maxSize)
}

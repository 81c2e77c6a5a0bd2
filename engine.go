package blurwindow

import (
	"github.com/glasskit/blurwindow/internal/ffi"
)

// engineAPI is the set of native entry points this package calls. The
// production implementation dispatches through internal/ffi; tests substitute
// a recording double so lifecycle invariants can be checked without the
// native library.
type engineAPI interface {
	Init(enableLogging bool, logPath string, preset QualityPreset) uintptr
	Shutdown(sys uintptr)
	LastError() string
	EnableLogging(sys uintptr, enable bool, path string)

	CreateWindow(sys, owner uintptr, bounds Rect, topMost, clickThrough bool) uintptr
	DestroyWindow(win uintptr)
	Start(win uintptr) Code
	Stop(win uintptr) Code
	GetFps(win uintptr) float32

	SetPreset(win uintptr, preset QualityPreset) Code
	SetPipeline(win uintptr, jsonConfig string) Code
	SetBounds(win uintptr, bounds Rect) Code
	SetEffectType(win uintptr, t EffectType) Code
	SetStrength(win uintptr, strength float32) Code
	SetBlurParam(win uintptr, param float32) Code
	SetTintColor(win uintptr, r, g, b, a float32) Code
	SetNoiseIntensity(win uintptr, intensity float32) Code
	SetNoiseScale(win uintptr, scale float32) Code
	SetNoiseSpeed(win uintptr, speed float32) Code
	SetNoiseType(win uintptr, t NoiseType) Code
	SetRainIntensity(win uintptr, intensity float32) Code
	SetRainDropSpeed(win uintptr, speed float32) Code
	SetRainRefraction(win uintptr, strength float32) Code
	SetRainTrailLength(win uintptr, length float32) Code
	SetRainDropSize(win uintptr, minSize, maxSize float32) Code
}

// nativeEngine is the purego-backed production implementation.
type nativeEngine struct{}

func (nativeEngine) Init(enableLogging bool, logPath string, preset QualityPreset) uintptr {
	var path []byte
	if logPath != "" {
		// Callers validate the path before reaching the boundary.
		path, _ = ffi.CString(logPath)
	}
	return ffi.Init(boolToInt32(enableLogging), path, int32(preset))
}

func (nativeEngine) Shutdown(sys uintptr) {
	ffi.Shutdown(sys)
}

func (nativeEngine) LastError() string {
	return ffi.LastError()
}

func (nativeEngine) EnableLogging(sys uintptr, enable bool, path string) {
	var p []byte
	if path != "" {
		p, _ = ffi.CString(path)
	}
	ffi.EnableLogging(sys, boolToInt32(enable), p)
}

func (nativeEngine) CreateWindow(sys, owner uintptr, bounds Rect, topMost, clickThrough bool) uintptr {
	return ffi.CreateWindow(sys, owner, rectC(bounds), boolToInt32(topMost), boolToInt32(clickThrough))
}

func (nativeEngine) DestroyWindow(win uintptr) {
	ffi.DestroyWindow(win)
}

func (nativeEngine) Start(win uintptr) Code {
	return Code(ffi.Start(win))
}

func (nativeEngine) Stop(win uintptr) Code {
	return Code(ffi.Stop(win))
}

func (nativeEngine) GetFps(win uintptr) float32 {
	return ffi.GetFps(win)
}

func (nativeEngine) SetPreset(win uintptr, preset QualityPreset) Code {
	return Code(ffi.SetPreset(win, int32(preset)))
}

func (nativeEngine) SetPipeline(win uintptr, jsonConfig string) Code {
	b, err := ffi.CString(jsonConfig)
	if err != nil {
		return CodeInvalidParameter
	}
	return Code(ffi.SetPipeline(win, b))
}

func (nativeEngine) SetBounds(win uintptr, bounds Rect) Code {
	return Code(ffi.SetBounds(win, rectC(bounds)))
}

func (nativeEngine) SetEffectType(win uintptr, t EffectType) Code {
	return Code(ffi.SetEffectType(win, int32(t)))
}

func (nativeEngine) SetStrength(win uintptr, strength float32) Code {
	return Code(ffi.SetStrength(win, strength))
}

func (nativeEngine) SetBlurParam(win uintptr, param float32) Code {
	return Code(ffi.SetBlurParam(win, param))
}

func (nativeEngine) SetTintColor(win uintptr, r, g, b, a float32) Code {
	return Code(ffi.SetTintColor(win, r, g, b, a))
}

func (nativeEngine) SetNoiseIntensity(win uintptr, intensity float32) Code {
	return Code(ffi.SetNoiseIntensity(win, intensity))
}

func (nativeEngine) SetNoiseScale(win uintptr, scale float32) Code {
	return Code(ffi.SetNoiseScale(win, scale))
}

func (nativeEngine) SetNoiseSpeed(win uintptr, speed float32) Code {
	return Code(ffi.SetNoiseSpeed(win, speed))
}

func (nativeEngine) SetNoiseType(win uintptr, t NoiseType) Code {
	return Code(ffi.SetNoiseType(win, int32(t)))
}

func (nativeEngine) SetRainIntensity(win uintptr, intensity float32) Code {
	return Code(ffi.SetRainIntensity(win, intensity))
}

func (nativeEngine) SetRainDropSpeed(win uintptr, speed float32) Code {
	return Code(ffi.SetRainDropSpeed(win, speed))
}

func (nativeEngine) SetRainRefraction(win uintptr, strength float32) Code {
	return Code(ffi.SetRainRefraction(win, strength))
}

func (nativeEngine) SetRainTrailLength(win uintptr, length float32) Code {
	return Code(ffi.SetRainTrailLength(win, length))
}

func (nativeEngine) SetRainDropSize(win uintptr, minSize, maxSize float32) Code {
	return Code(ffi.SetRainDropSize(win, minSize, maxSize))
}

func rectC(r Rect) ffi.RectC {
	return ffi.RectC{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

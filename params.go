package blurwindow

import (
	"fmt"
	"strings"
)

// Parameter setters. Each translates a typed value into exactly one native
// call; properties are independent, and repeating a setter with the same
// value is always safe. The only validation performed locally is the
// rejection of string payloads containing an embedded terminator byte, which
// the native side would silently truncate.

// call runs f against the window handle under the state lock, guarding
// against a destroyed handle.
func (w *Window) call(f func(win uintptr) Code) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.handle == 0 {
		return ErrInvalidHandle
	}
	return f(w.handle).Err()
}

// SetPreset selects the quality preset for this window.
func (w *Window) SetPreset(preset QualityPreset) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetPreset(win, preset)
	})
}

// SetPipeline replaces the effect pipeline from a JSON configuration string.
// The payload is passed through opaque; only an embedded NUL is rejected, as
// ErrInvalidParameter, before any native call.
func (w *Window) SetPipeline(jsonConfig string) error {
	if strings.IndexByte(jsonConfig, 0) >= 0 {
		return fmt.Errorf("pipeline config: %w", ErrInvalidParameter)
	}
	return w.call(func(win uintptr) Code {
		return w.api.SetPipeline(win, jsonConfig)
	})
}

// SetBounds moves and resizes the window.
func (w *Window) SetBounds(bounds Rect) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetBounds(win, bounds)
	})
}

// SetEffectType selects the active blur effect.
func (w *Window) SetEffectType(t EffectType) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetEffectType(win, t)
	})
}

// SetStrength sets the overall blend strength, 0 (transparent) to 1 (full).
func (w *Window) SetStrength(strength float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetStrength(win, strength)
	})
}

// SetBlurParam sets the primary parameter of the active effect (sigma for
// Gaussian, radius for Box, and so on).
func (w *Window) SetBlurParam(param float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetBlurParam(win, param)
	})
}

// SetTintColor sets the tint color; components are 0-1.
func (w *Window) SetTintColor(r, g, b, a float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetTintColor(win, r, g, b, a)
	})
}

// SetNoiseIntensity sets the noise overlay intensity, 0-1.
func (w *Window) SetNoiseIntensity(intensity float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetNoiseIntensity(win, intensity)
	})
}

// SetNoiseScale sets the spatial scale of the noise pattern.
func (w *Window) SetNoiseScale(scale float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetNoiseScale(win, scale)
	})
}

// SetNoiseSpeed sets the noise animation speed (0 for static).
func (w *Window) SetNoiseSpeed(speed float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetNoiseSpeed(win, speed)
	})
}

// SetNoiseType selects the noise pattern.
func (w *Window) SetNoiseType(t NoiseType) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetNoiseType(win, t)
	})
}

// SetRainIntensity sets the rain effect intensity.
func (w *Window) SetRainIntensity(intensity float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetRainIntensity(win, intensity)
	})
}

// SetRainDropSpeed sets the falling speed of rain drops.
func (w *Window) SetRainDropSpeed(speed float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetRainDropSpeed(win, speed)
	})
}

// SetRainRefraction sets the refraction strength of rain drops.
func (w *Window) SetRainRefraction(strength float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetRainRefraction(win, strength)
	})
}

// SetRainTrailLength sets the length of drop trails.
func (w *Window) SetRainTrailLength(length float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetRainTrailLength(win, length)
	})
}

// SetRainDropSizeRange sets the minimum and maximum drop size.
func (w *Window) SetRainDropSizeRange(minSize, maxSize float32) error {
	return w.call(func(win uintptr) Code {
		return w.api.SetRainDropSize(win, minSize, maxSize)
	})
}

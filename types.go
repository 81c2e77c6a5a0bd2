// Package blurwindow manages the lifecycle, concurrency safety, and parameter
// protocol of the native blurwindow effects engine, reached through its C ABI.
//
// A System owns the single native system context; Windows are created from a
// live System and own one native window handle each. Raw integers and handles
// never leak past this package: enumerations, booleans, and colors are typed
// here and converted to the flat shapes the ABI expects at the boundary only.
package blurwindow

// QualityPreset selects the renderer's quality/performance trade-off.
// Ordinal values are part of the wire contract and must not be renumbered.
type QualityPreset int32

const (
	PresetHigh        QualityPreset = 0 // multi-pass, highest quality
	PresetBalanced    QualityPreset = 1
	PresetPerformance QualityPreset = 2
	PresetMinimal     QualityPreset = 3 // minimum overhead
)

// EffectType selects the active blur effect.
type EffectType int32

const (
	EffectGaussian EffectType = 0
	EffectBox      EffectType = 1
	EffectKawase   EffectType = 2
	EffectRadial   EffectType = 3
)

// NoiseType selects the noise overlay pattern.
type NoiseType int32

const (
	NoiseWhite   NoiseType = 0
	NoiseSin     NoiseType = 1
	NoiseGrid    NoiseType = 2
	NoisePerlin  NoiseType = 3
	NoiseSimplex NoiseType = 4
	NoiseVoronoi NoiseType = 5
)

// Rect is a window bounds rectangle in pixel coordinates.
type Rect struct {
	Left   int32 `toml:"left"`
	Top    int32 `toml:"top"`
	Right  int32 `toml:"right"`
	Bottom int32 `toml:"bottom"`
}

// Width returns the rectangle width.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the rectangle height.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// SystemOptions configures system initialization.
type SystemOptions struct {
	// EnableLogging turns on the engine's internal logging.
	EnableLogging bool
	// LogPath is the engine log file; empty means the console sink.
	LogPath string
	// DefaultPreset is the quality level new windows start with.
	DefaultPreset QualityPreset
}

// DefaultSystemOptions returns the options the engine's own demos use.
func DefaultSystemOptions() SystemOptions {
	return SystemOptions{
		EnableLogging: true,
		DefaultPreset: PresetBalanced,
	}
}

// WindowOptions configures window creation.
type WindowOptions struct {
	// Owner is the platform window identity the overlay is bound to
	// (0 for a standalone overlay).
	Owner uintptr
	// Bounds is the initial window position and size.
	Bounds Rect
	// TopMost keeps the overlay above other windows.
	TopMost bool
	// ClickThrough lets mouse clicks pass through the overlay.
	ClickThrough bool
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

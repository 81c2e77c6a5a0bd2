package overlay

import "github.com/glasskit/blurwindow"

// Patch structs mirror the shell command arguments: every field is optional,
// and only the fields present are applied. Updates are best-effort against
// current state; with no active session they do nothing.

// EffectUpdate adjusts the blur effect parameters.
type EffectUpdate struct {
	Type     *blurwindow.EffectType
	Strength *float32
	Param    *float32
	Tint     *[4]float32 // r, g, b, a
}

// NoiseUpdate adjusts the noise overlay parameters.
type NoiseUpdate struct {
	Intensity *float32
	Scale     *float32
	Speed     *float32
	Type      *blurwindow.NoiseType
}

// RainUpdate adjusts the rain effect parameters. Drop size is applied only
// when both bounds are present.
type RainUpdate struct {
	Intensity   *float32
	DropSpeed   *float32
	Refraction  *float32
	TrailLength *float32
	MinSize     *float32
	MaxSize     *float32
}

// UpdateEffect applies the present fields of u to the current session.
func (c *Controller) UpdateEffect(u EffectUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.win == nil {
		return
	}
	if u.Type != nil {
		c.report(c.win.SetEffectType(*u.Type))
	}
	if u.Strength != nil {
		c.report(c.win.SetStrength(*u.Strength))
	}
	if u.Param != nil {
		c.report(c.win.SetBlurParam(*u.Param))
	}
	if u.Tint != nil {
		t := *u.Tint
		c.report(c.win.SetTintColor(t[0], t[1], t[2], t[3]))
	}
}

// UpdateNoise applies the present fields of u to the current session.
func (c *Controller) UpdateNoise(u NoiseUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.win == nil {
		return
	}
	if u.Intensity != nil {
		c.report(c.win.SetNoiseIntensity(*u.Intensity))
	}
	if u.Scale != nil {
		c.report(c.win.SetNoiseScale(*u.Scale))
	}
	if u.Speed != nil {
		c.report(c.win.SetNoiseSpeed(*u.Speed))
	}
	if u.Type != nil {
		c.report(c.win.SetNoiseType(*u.Type))
	}
}

// UpdateRain applies the present fields of u to the current session.
func (c *Controller) UpdateRain(u RainUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.win == nil {
		return
	}
	if u.Intensity != nil {
		c.report(c.win.SetRainIntensity(*u.Intensity))
	}
	if u.DropSpeed != nil {
		c.report(c.win.SetRainDropSpeed(*u.DropSpeed))
	}
	if u.Refraction != nil {
		c.report(c.win.SetRainRefraction(*u.Refraction))
	}
	if u.TrailLength != nil {
		c.report(c.win.SetRainTrailLength(*u.TrailLength))
	}
	if u.MinSize != nil && u.MaxSize != nil {
		c.report(c.win.SetRainDropSizeRange(*u.MinSize, *u.MaxSize))
	}
}

func (c *Controller) report(err error) {
	if err != nil {
		c.log.Warn("overlay: parameter update", "error", err)
	}
}

package blurwindow

import (
	"errors"
	"testing"
)

func newTestWindow(t *testing.T) (*fakeEngine, *Window) {
	t.Helper()
	fake := newFakeEngine()
	sys, err := initSystem(fake, DefaultSystemOptions())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sys.Close() })

	win, err := sys.CreateWindow(WindowOptions{
		Bounds: Rect{Left: 0, Top: 0, Right: 640, Bottom: 480},
	})
	if err != nil {
		t.Fatal(err)
	}
	return fake, win
}

func TestWindowLifecycle(t *testing.T) {
	fake, win := newTestWindow(t)

	if win.Running() {
		t.Error("new window reports running")
	}
	if err := win.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !win.Running() {
		t.Error("started window reports not running")
	}
	if err := win.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if win.Running() {
		t.Error("stopped window reports running")
	}
	win.Destroy()

	if got := fake.callCount("Start"); got != 1 {
		t.Errorf("Start calls = %d, want 1", got)
	}
	if got := fake.callCount("Stop"); got != 1 {
		t.Errorf("Stop calls = %d, want 1", got)
	}
	if got := fake.callCount("DestroyWindow"); got != 1 {
		t.Errorf("DestroyWindow calls = %d, want 1", got)
	}
}

func TestStartAlreadyRunningIsNoOp(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	if err := win.Start(); err != nil {
		t.Fatal(err)
	}
	if err := win.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if got := fake.callCount("Start"); got != 1 {
		t.Errorf("Start calls = %d, want 1", got)
	}
}

func TestStopWhenNotRunningIsNoOp(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	if err := win.Stop(); err != nil {
		t.Fatalf("Stop on created window: %v", err)
	}
	if got := fake.callCount("Stop"); got != 0 {
		t.Errorf("Stop calls = %d, want 0", got)
	}
}

func TestStartFailureLeavesStateUnchanged(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	fake.startCode = CodeBackendFailed
	if err := win.Start(); !errors.Is(err, ErrBackendFailed) {
		t.Fatalf("err = %v, want ErrBackendFailed", err)
	}
	if win.Running() {
		t.Error("failed start left window running")
	}

	// The handle stays valid; a retry reaches the native layer again.
	fake.startCode = CodeOK
	if err := win.Start(); err != nil {
		t.Fatalf("retry Start: %v", err)
	}
	if got := fake.callCount("Start"); got != 2 {
		t.Errorf("Start calls = %d, want 2", got)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	fake, win := newTestWindow(t)

	win.Destroy()
	win.Destroy()

	if got := fake.callCount("DestroyWindow"); got != 1 {
		t.Errorf("DestroyWindow calls = %d, want 1", got)
	}
	if got := win.FPS(); got != -1 {
		t.Errorf("FPS after destroy = %v, want -1", got)
	}
}

func TestDestroyedWindowFailsWithoutNativeCalls(t *testing.T) {
	fake, win := newTestWindow(t)
	win.Destroy()
	before := fake.totalCalls()

	ops := []struct {
		name string
		op   func() error
	}{
		{"Start", win.Start},
		{"Stop", win.Stop},
		{"SetPreset", func() error { return win.SetPreset(PresetMinimal) }},
		{"SetPipeline", func() error { return win.SetPipeline("{}") }},
		{"SetBounds", func() error { return win.SetBounds(Rect{Right: 1, Bottom: 1}) }},
		{"SetEffectType", func() error { return win.SetEffectType(EffectKawase) }},
		{"SetStrength", func() error { return win.SetStrength(0.5) }},
		{"SetBlurParam", func() error { return win.SetBlurParam(3) }},
		{"SetTintColor", func() error { return win.SetTintColor(0, 0, 0, 1) }},
		{"SetNoiseIntensity", func() error { return win.SetNoiseIntensity(0.1) }},
		{"SetNoiseScale", func() error { return win.SetNoiseScale(100) }},
		{"SetNoiseSpeed", func() error { return win.SetNoiseSpeed(1) }},
		{"SetNoiseType", func() error { return win.SetNoiseType(NoisePerlin) }},
		{"SetRainIntensity", func() error { return win.SetRainIntensity(0.3) }},
		{"SetRainDropSpeed", func() error { return win.SetRainDropSpeed(2) }},
		{"SetRainRefraction", func() error { return win.SetRainRefraction(0.6) }},
		{"SetRainTrailLength", func() error { return win.SetRainTrailLength(0.4) }},
		{"SetRainDropSizeRange", func() error { return win.SetRainDropSizeRange(1, 4) }},
	}
	for _, tt := range ops {
		if err := tt.op(); !errors.Is(err, ErrInvalidHandle) {
			t.Errorf("%s: err = %v, want ErrInvalidHandle", tt.name, err)
		}
	}
	if fake.totalCalls() != before {
		t.Errorf("destroyed window reached the native layer: %d extra calls",
			fake.totalCalls()-before)
	}
}

func TestFPS(t *testing.T) {
	fake, win := newTestWindow(t)
	fake.fps = 143.5

	if got := win.FPS(); got != 143.5 {
		t.Errorf("FPS = %v, want 143.5", got)
	}

	win.Destroy()
	before := fake.callCount("GetFps")
	if got := win.FPS(); got != -1 {
		t.Errorf("FPS after destroy = %v, want -1", got)
	}
	if fake.callCount("GetFps") != before {
		t.Error("FPS on destroyed window reached the native layer")
	}
}

func TestTintColorCrossesBoundaryExactly(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	if err := win.SetTintColor(0.2, 0.4, 0.6, 1.0); err != nil {
		t.Fatal(err)
	}
	want := [4]float32{0.2, 0.4, 0.6, 1.0}
	if fake.tint != want {
		t.Errorf("tint = %v, want %v", fake.tint, want)
	}
}

func TestSetPipelineRejectsEmbeddedNul(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	before := fake.totalCalls()
	err := win.SetPipeline("{\"version\":1\x00}")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if fake.totalCalls() != before {
		t.Error("rejected payload reached the native layer")
	}
}

func TestSettersForwardValues(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	if err := win.SetEffectType(EffectRadial); err != nil {
		t.Fatal(err)
	}
	if fake.effectType != EffectRadial {
		t.Errorf("effectType = %d, want %d", fake.effectType, EffectRadial)
	}

	if err := win.SetNoiseType(NoiseVoronoi); err != nil {
		t.Fatal(err)
	}
	if fake.noiseType != NoiseVoronoi {
		t.Errorf("noiseType = %d, want %d", fake.noiseType, NoiseVoronoi)
	}

	if err := win.SetRainDropSizeRange(1.5, 6.25); err != nil {
		t.Fatal(err)
	}
	if fake.dropSize != [2]float32{1.5, 6.25} {
		t.Errorf("dropSize = %v, want [1.5 6.25]", fake.dropSize)
	}

	if err := win.SetBounds(Rect{Left: 5, Top: 6, Right: 7, Bottom: 8}); err != nil {
		t.Fatal(err)
	}
	if fake.bounds != (Rect{Left: 5, Top: 6, Right: 7, Bottom: 8}) {
		t.Errorf("bounds = %+v", fake.bounds)
	}
}

func TestSetterNativeFailureIsMapped(t *testing.T) {
	fake, win := newTestWindow(t)
	defer win.Destroy()

	fake.setCode = CodeInvalidParameter
	if err := win.SetStrength(2.5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
	fake.setCode = CodeCaptureFailed
	if err := win.SetNoiseSpeed(1); !errors.Is(err, ErrCaptureFailed) {
		t.Errorf("err = %v, want ErrCaptureFailed", err)
	}
}

package blurwindow

import (
	"sync"
)

// fakeEngine is a recording engineAPI double. It hands out fake handles,
// counts every native entry-point invocation, and records the last values
// that crossed the boundary.
type fakeEngine struct {
	mu    sync.Mutex
	calls map[string]int

	failInit   bool
	lastError  string
	failCreate bool

	startCode Code
	stopCode  Code
	setCode   Code

	fps        float32
	nextHandle uintptr
	live       map[uintptr]bool

	tint        [4]float32
	pipeline    string
	bounds      Rect
	strength    float32
	blurParam   float32
	effectType  EffectType
	noiseType   NoiseType
	preset      QualityPreset
	dropSize    [2]float32
	initLogging bool
	initLogPath string
	initPreset  QualityPreset
	createOpts  struct {
		owner                 uintptr
		bounds                Rect
		topMost, clickThrough bool
	}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		calls:      make(map[string]int),
		live:       make(map[uintptr]bool),
		nextHandle: 0x1000,
		fps:        60,
	}
}

func (f *fakeEngine) count(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

// callCount returns the recorded invocation count for one entry point.
func (f *fakeEngine) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

// totalCalls returns the number of native invocations across all entry
// points.
func (f *fakeEngine) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeEngine) Init(enableLogging bool, logPath string, preset QualityPreset) uintptr {
	f.count("Init")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInit {
		return 0
	}
	f.initLogging = enableLogging
	f.initLogPath = logPath
	f.initPreset = preset
	f.nextHandle++
	f.live[f.nextHandle] = true
	return f.nextHandle
}

func (f *fakeEngine) Shutdown(sys uintptr) {
	f.count("Shutdown")
	f.mu.Lock()
	delete(f.live, sys)
	f.mu.Unlock()
}

func (f *fakeEngine) LastError() string {
	f.count("LastError")
	return f.lastError
}

func (f *fakeEngine) EnableLogging(sys uintptr, enable bool, path string) {
	f.count("EnableLogging")
}

func (f *fakeEngine) CreateWindow(sys, owner uintptr, bounds Rect, topMost, clickThrough bool) uintptr {
	f.count("CreateWindow")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return 0
	}
	f.createOpts.owner = owner
	f.createOpts.bounds = bounds
	f.createOpts.topMost = topMost
	f.createOpts.clickThrough = clickThrough
	f.nextHandle++
	f.live[f.nextHandle] = true
	return f.nextHandle
}

func (f *fakeEngine) DestroyWindow(win uintptr) {
	f.count("DestroyWindow")
	f.mu.Lock()
	delete(f.live, win)
	f.mu.Unlock()
}

func (f *fakeEngine) Start(win uintptr) Code {
	f.count("Start")
	return f.startCode
}

func (f *fakeEngine) Stop(win uintptr) Code {
	f.count("Stop")
	return f.stopCode
}

func (f *fakeEngine) GetFps(win uintptr) float32 {
	f.count("GetFps")
	return f.fps
}

func (f *fakeEngine) SetPreset(win uintptr, preset QualityPreset) Code {
	f.count("SetPreset")
	f.mu.Lock()
	f.preset = preset
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetPipeline(win uintptr, jsonConfig string) Code {
	f.count("SetPipeline")
	f.mu.Lock()
	f.pipeline = jsonConfig
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetBounds(win uintptr, bounds Rect) Code {
	f.count("SetBounds")
	f.mu.Lock()
	f.bounds = bounds
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetEffectType(win uintptr, t EffectType) Code {
	f.count("SetEffectType")
	f.mu.Lock()
	f.effectType = t
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetStrength(win uintptr, strength float32) Code {
	f.count("SetStrength")
	f.mu.Lock()
	f.strength = strength
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetBlurParam(win uintptr, param float32) Code {
	f.count("SetBlurParam")
	f.mu.Lock()
	f.blurParam = param
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetTintColor(win uintptr, r, g, b, a float32) Code {
	f.count("SetTintColor")
	f.mu.Lock()
	f.tint = [4]float32{r, g, b, a}
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetNoiseIntensity(win uintptr, intensity float32) Code {
	f.count("SetNoiseIntensity")
	return f.setCode
}

func (f *fakeEngine) SetNoiseScale(win uintptr, scale float32) Code {
	f.count("SetNoiseScale")
	return f.setCode
}

func (f *fakeEngine) SetNoiseSpeed(win uintptr, speed float32) Code {
	f.count("SetNoiseSpeed")
	return f.setCode
}

func (f *fakeEngine) SetNoiseType(win uintptr, t NoiseType) Code {
	f.count("SetNoiseType")
	f.mu.Lock()
	f.noiseType = t
	f.mu.Unlock()
	return f.setCode
}

func (f *fakeEngine) SetRainIntensity(win uintptr, intensity float32) Code {
	f.count("SetRainIntensity")
	return f.setCode
}

func (f *fakeEngine) SetRainDropSpeed(win uintptr, speed float32) Code {
	f.count("SetRainDropSpeed")
	return f.setCode
}

func (f *fakeEngine) SetRainRefraction(win uintptr, strength float32) Code {
	f.count("SetRainRefraction")
	return f.setCode
}

func (f *fakeEngine) SetRainTrailLength(win uintptr, length float32) Code {
	f.count("SetRainTrailLength")
	return f.setCode
}

func (f *fakeEngine) SetRainDropSize(win uintptr, minSize, maxSize float32) Code {
	f.count("SetRainDropSize")
	f.mu.Lock()
	f.dropSize = [2]float32{minSize, maxSize}
	f.mu.Unlock()
	return f.setCode
}

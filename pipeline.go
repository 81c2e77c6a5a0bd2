package blurwindow

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is a typed description of an effect pipeline. It marshals to the
// JSON shape the engine's config loader reads and writes:
//
//	{"version":1,"pipeline":[{"type":"gaussian","params":{...}}]}
//
// Beyond this shape the payload is the engine's concern; nothing here
// validates effect names or parameters.
type Pipeline struct {
	Version int           `json:"version"`
	Effects []EffectStage `json:"pipeline"`
}

// EffectStage is one effect in a pipeline.
type EffectStage struct {
	Type   string             `json:"type"`
	Params map[string]float64 `json:"params,omitempty"`
}

// NewPipeline returns an empty version-1 pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{Version: 1}
}

// Append adds an effect stage and returns the pipeline for chaining.
func (p *Pipeline) Append(effectType string, params map[string]float64) *Pipeline {
	p.Effects = append(p.Effects, EffectStage{Type: effectType, Params: params})
	return p
}

// JSON renders the pipeline as the engine's JSON payload.
func (p *Pipeline) JSON() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal pipeline: %w", err)
	}
	return string(b), nil
}

// Save writes the pipeline to a configuration file.
func (p *Pipeline) Save(path string) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pipeline: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// LoadPipeline reads a pipeline configuration file.
func LoadPipeline(path string) (*Pipeline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Pipeline
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse pipeline %s: %w", path, err)
	}
	return &p, nil
}

// ApplyPipeline renders p to JSON and applies it to the window.
func (w *Window) ApplyPipeline(p *Pipeline) error {
	payload, err := p.JSON()
	if err != nil {
		return err
	}
	return w.SetPipeline(payload)
}

package voice

import (
	"context"
	"fmt"
	"time"
)

// Result is the outcome of a successful process_audio call.
type Result struct {
	Transcript string
	Output     string
	Mode       Mode
	Confidence float64
	Engine     string
	LatencyMs  int64
}

// VoiceEngine owns an ordered list of STT engines and an optional
// restructurer. It is constructed once per daemon and shared across
// connections, per spec.md §5.
type VoiceEngine struct {
	enabled             bool
	engines             []Engine
	restructurer        Restructurer
	confidenceThreshold float64
}

// Config carries the pieces needed to assemble a VoiceEngine.
type Config struct {
	Enabled             bool
	Engines             []Engine
	Restructurer        Restructurer
	ConfidenceThreshold float64
}

func New(cfg Config) *VoiceEngine {
	return &VoiceEngine{
		enabled:             cfg.Enabled,
		engines:             cfg.Engines,
		restructurer:        cfg.Restructurer,
		confidenceThreshold: cfg.ConfidenceThreshold,
	}
}

func (v *VoiceEngine) Enabled() bool { return v.enabled }

// EngineNames lists every configured engine's name, in initialization
// order, regardless of current availability.
func (v *VoiceEngine) EngineNames() []string {
	names := make([]string, 0, len(v.engines))
	for _, e := range v.engines {
		names = append(names, e.Name())
	}
	return names
}

// ActiveEngineName returns the first available engine's name, or "" if
// none are available.
func (v *VoiceEngine) ActiveEngineName() string {
	for _, e := range v.engines {
		if e.IsAvailable() {
			return e.Name()
		}
	}
	return ""
}

// ProcessAudio implements spec.md §4.6's process_audio algorithm: engine
// failover, confidence thresholding, and optional restructuring.
func (v *VoiceEngine) ProcessAudio(ctx context.Context, wavBytes []byte, mode Mode, cwd, shell string) (Result, error) {
	if !v.enabled {
		return Result{}, fmt.Errorf("disabled")
	}

	start := time.Now()

	var (
		transcription Transcription
		engineName    string
		succeeded     bool
	)
	for _, e := range v.engines {
		if !e.IsAvailable() {
			continue
		}
		t, err := e.Transcribe(ctx, wavBytes)
		if err != nil {
			continue
		}
		transcription = t
		engineName = e.Name()
		succeeded = true
		break
	}
	if !succeeded {
		return Result{}, fmt.Errorf("All STT engines failed")
	}

	if transcription.Confidence < v.confidenceThreshold {
		return Result{}, fmt.Errorf("low confidence (%.2f, %.2f)", transcription.Confidence, v.confidenceThreshold)
	}

	output := transcription.Transcript
	if v.restructurer != nil {
		output = v.restructurer.Restructure(ctx, transcription.Transcript, mode, cwd, shell)
	}

	return Result{
		Transcript: transcription.Transcript,
		Output:     output,
		Mode:       mode,
		Confidence: transcription.Confidence,
		Engine:     engineName,
		LatencyMs:  time.Since(start).Milliseconds(),
	}, nil
}

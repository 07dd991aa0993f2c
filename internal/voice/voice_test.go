package voice

import (
	"context"
	"errors"
	"testing"
)

type fakeEngine struct {
	name      string
	available bool
	result    Transcription
	err       error
}

func (f *fakeEngine) Name() string      { return f.name }
func (f *fakeEngine) IsAvailable() bool { return f.available }
func (f *fakeEngine) Transcribe(ctx context.Context, wavBytes []byte) (Transcription, error) {
	if f.err != nil {
		return Transcription{}, f.err
	}
	return f.result, nil
}

type fakeRestructurer struct {
	out string
}

func (f *fakeRestructurer) Restructure(ctx context.Context, transcript string, mode Mode, cwd, shell string) string {
	return f.out
}

func TestProcessAudioDisabled(t *testing.T) {
	v := New(Config{Enabled: false})
	_, err := v.ProcessAudio(context.Background(), []byte("RIFF...."), ModeCommand, "/", "zsh")
	if err == nil || err.Error() != "disabled" {
		t.Fatalf("expected disabled error, got %v", err)
	}
}

func TestProcessAudioFailsOverToSecondEngine(t *testing.T) {
	first := &fakeEngine{name: "a", available: true, err: errors.New("boom")}
	second := &fakeEngine{name: "b", available: true, result: Transcription{Transcript: "ls -la", Confidence: 0.9}}
	v := New(Config{Enabled: true, Engines: []Engine{first, second}, ConfidenceThreshold: 0.5})

	res, err := v.ProcessAudio(context.Background(), []byte("RIFF...."), ModeCommand, "/tmp", "zsh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Engine != "b" {
		t.Errorf("expected engine b to win, got %s", res.Engine)
	}
	if res.Output != "ls -la" {
		t.Errorf("expected raw transcript passthrough, got %q", res.Output)
	}
}

func TestProcessAudioAllEnginesFail(t *testing.T) {
	a := &fakeEngine{name: "a", available: true, err: errors.New("nope")}
	v := New(Config{Enabled: true, Engines: []Engine{a}, ConfidenceThreshold: 0.5})

	_, err := v.ProcessAudio(context.Background(), []byte("RIFF...."), ModeCommand, "/", "zsh")
	if err == nil || err.Error() != "All STT engines failed" {
		t.Fatalf("expected STT failure error, got %v", err)
	}
}

func TestProcessAudioLowConfidence(t *testing.T) {
	a := &fakeEngine{name: "a", available: true, result: Transcription{Transcript: "ls", Confidence: 0.1}}
	v := New(Config{Enabled: true, Engines: []Engine{a}, ConfidenceThreshold: 0.5})

	_, err := v.ProcessAudio(context.Background(), []byte("RIFF...."), ModeCommand, "/", "zsh")
	if err == nil {
		t.Fatalf("expected low confidence error")
	}
}

func TestProcessAudioAppliesRestructurer(t *testing.T) {
	a := &fakeEngine{name: "a", available: true, result: Transcription{Transcript: "list files", Confidence: 0.9}}
	v := New(Config{
		Enabled:             true,
		Engines:             []Engine{a},
		Restructurer:        &fakeRestructurer{out: "ls -la"},
		ConfidenceThreshold: 0.5,
	})

	res, err := v.ProcessAudio(context.Background(), []byte("RIFF...."), ModeCommand, "/", "zsh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Output != "ls -la" {
		t.Errorf("expected restructured output, got %q", res.Output)
	}
	if res.Transcript != "list files" {
		t.Errorf("expected raw transcript preserved, got %q", res.Transcript)
	}
}

func TestActiveEngineNameSkipsUnavailable(t *testing.T) {
	a := &fakeEngine{name: "a", available: false}
	b := &fakeEngine{name: "b", available: true}
	v := New(Config{Enabled: true, Engines: []Engine{a, b}})

	if got := v.ActiveEngineName(); got != "b" {
		t.Errorf("expected b, got %q", got)
	}
}

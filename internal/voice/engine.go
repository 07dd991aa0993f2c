// Package voice implements the STT engine capability (spec.md §4.6): two
// concrete transcription backends with failover, an optional
// transcript restructurer, and the WAV encoding helper the on-device
// backend needs.
package voice

import "context"

// Transcription is the result of a successful STT call.
type Transcription struct {
	Transcript string
	Confidence float64
}

// Engine is the STT capability: a named backend that can report its own
// availability and transcribe WAV bytes. Capability-based, not
// inheritance-based, per spec.md §9 — concrete engines satisfy this
// interface independently.
type Engine interface {
	Name() string
	IsAvailable() bool
	Transcribe(ctx context.Context, wavBytes []byte) (Transcription, error)
}

// Mode selects the restructurer's output shape.
type Mode string

const (
	ModeCommand Mode = "command"
	ModeNatural Mode = "natural"
)

// Restructurer rewrites a raw transcript into either a shell command or
// cleaned prose. It never returns an error: every backend falls back to
// the raw transcript on failure, per spec.md §4.6.
type Restructurer interface {
	Restructure(ctx context.Context, transcript string, mode Mode, cwd, shell string) string
}

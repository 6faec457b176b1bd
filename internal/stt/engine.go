package stt

import "context"

// Segment is a transcribed portion of the source media.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is the output of a transcription run.
type Result struct {
	Text     string
	Segments []Segment
	Language string  // detected language; may be empty if the engine does not report one
	Duration float64 // total media duration in seconds; 0 if unavailable
}

// Engine defines the interface for speech-to-text engines.
type Engine interface {
	// Transcribe transcribes the media file at audioPath with segment-level
	// timestamps. The language hint may be empty for auto-detection.
	Transcribe(ctx context.Context, audioPath, language string) (*Result, error)

	// Name returns the name of the engine (e.g., "whisper")
	Name() string
}

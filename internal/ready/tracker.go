// Package ready tracks which model backends the service may route requests to.
package ready

import "sync"

// State is a point-in-time snapshot of backend availability.
type State struct {
	Transcription bool
	Generation    bool
}

// Tracker records whether the transcription engine is loaded and whether the
// generation backend answered its last probe. It is created before the HTTP
// listener binds and shared by every handler, so reads and the per-probe
// rewrite of the generation flag are guarded by a mutex.
type Tracker struct {
	mu    sync.RWMutex
	state State
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// SetTranscriptionReady marks the in-process transcription engine as loaded.
// Called once, at startup, before traffic is accepted.
func (t *Tracker) SetTranscriptionReady() {
	t.mu.Lock()
	t.state.Transcription = true
	t.mu.Unlock()
}

// SetGenerationReady records the outcome of a generation-backend probe. The
// backend is an external service that may come and go, so this is rewritten
// on every health check.
func (t *Tracker) SetGenerationReady(ok bool) {
	t.mu.Lock()
	t.state.Generation = ok
	t.mu.Unlock()
}

// Snapshot returns the current availability flags.
func (t *Tracker) Snapshot() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// TranscriptionReady reports whether /transcribe may proceed.
func (t *Tracker) TranscriptionReady() bool {
	return t.Snapshot().Transcription
}

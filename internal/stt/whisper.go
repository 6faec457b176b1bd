package stt

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

//go:embed assets/whisper_runner.py
var runnerScript []byte

// WhisperEngine transcribes media by shelling out to a faster-whisper helper
// script. The model weights live in the helper's process; from this side the
// engine is "loaded" once the helper has instantiated the model successfully.
type WhisperEngine struct {
	model  string
	python string
	device string
	logger *zap.Logger
}

// LoadWhisper instantiates the whisper model through the helper script and
// returns an engine bound to it. An error here means the mandatory
// transcription dependency is unusable and the process should not serve.
func LoadWhisper(ctx context.Context, model, python, device string, logger *zap.Logger) (*WhisperEngine, error) {
	if model == "" {
		model = "base"
	}
	if python == "" {
		python = "python3"
	}
	if device == "" {
		device = "auto"
	}
	if _, err := exec.LookPath(python); err != nil {
		return nil, fmt.Errorf("python interpreter %q not found: %w", python, err)
	}

	e := &WhisperEngine{model: model, python: python, device: device, logger: logger}

	scriptPath, cleanup, err := e.writeScript()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cmd := exec.CommandContext(ctx, python, scriptPath, "--model", model, "--device", device, "--check")
	cmd.Env = os.Environ()
	if out, err := cmd.Output(); err != nil {
		return nil, fmt.Errorf("load whisper model %q: %w", model, runnerError(err, out))
	}
	logger.Info("whisper model loaded", zap.String("model", model), zap.String("device", device))
	return e, nil
}

// Name returns the engine name.
func (e *WhisperEngine) Name() string {
	return "whisper"
}

// Transcribe runs the helper against audioPath and maps its JSON output.
func (e *WhisperEngine) Transcribe(ctx context.Context, audioPath, language string) (*Result, error) {
	scriptPath, cleanup, err := e.writeScript()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	args := []string{scriptPath, "--audio", audioPath, "--model", e.model, "--device", e.device}
	if language != "" {
		args = append(args, "--language", language)
	}
	cmd := exec.CommandContext(ctx, e.python, args...)
	cmd.Env = os.Environ()
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("whisper failed: %w", runnerError(err, out))
	}
	return parseRunnerOutput(out)
}

// writeScript stages the embedded helper into the temp dir. The script is
// rewritten per call so concurrent requests never race on a partial write.
func (e *WhisperEngine) writeScript() (string, func(), error) {
	f, err := os.CreateTemp("", "whisper_runner-*.py")
	if err != nil {
		return "", nil, fmt.Errorf("write helper script: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(runnerScript); err != nil {
		f.Close()
		os.Remove(path)
		return "", nil, fmt.Errorf("write helper script: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("write helper script: %w", err)
	}
	return path, func() { os.Remove(path) }, nil
}

type runnerOutput struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

func parseRunnerOutput(out []byte) (*Result, error) {
	var parsed runnerOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}
	res := &Result{
		Text:     strings.TrimSpace(parsed.Text),
		Language: parsed.Language,
		Duration: parsed.Duration,
		Segments: make([]Segment, 0, len(parsed.Segments)),
	}
	for _, s := range parsed.Segments {
		res.Segments = append(res.Segments, Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}
	return res, nil
}

// runnerError prefers the helper's stderr over the bare exit status.
func runnerError(err error, out []byte) error {
	if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
		return fmt.Errorf("%s", lastLine(string(ee.Stderr)))
	}
	if len(out) > 0 {
		return fmt.Errorf("%w: %s", err, lastLine(string(out)))
	}
	return err
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

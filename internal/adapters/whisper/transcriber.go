package whisper

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/tkaraca/trscribe/internal/domain"
	"github.com/tkaraca/trscribe/internal/ports"
)

//go:embed assets/faster_whisper.py
var helperScript []byte

// Fixed decoding configuration. The tool transcribes Turkish only, on CPU,
// with int8 weights and voice-activity detection.
const (
	language        = "tr"
	beamSize        = 5
	computeType     = "int8"
	device          = "cpu"
	vadMinSilenceMs = 500
	vadSpeechPadMs  = 300
)

// Transcriber implements ports.Transcriber by running faster-whisper
// through an embedded Python helper.
type Transcriber struct {
	python string
	// progress receives the engine's stderr lines live; defaults to
	// os.Stdout so model-load and transcription progress stays visible
	// during long runs.
	progress io.Writer
}

// NewTranscriber creates a faster-whisper transcriber. python overrides the
// interpreter; empty selects the platform default.
func NewTranscriber(python string) *Transcriber {
	if python == "" {
		python = defaultPython()
	}
	return &Transcriber{python: python, progress: os.Stdout}
}

func defaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

type helperOutput struct {
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Elapsed  float64 `json:"elapsed"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe invokes the engine once and materializes all returned segments.
// Engine failures are not retried; the stderr tail is folded into the error.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	if _, err := exec.LookPath(t.python); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrEngineNotFound, t.python)
	}

	scriptPath := filepath.Join(os.TempDir(), "trscribe_faster_whisper.py")
	if err := os.WriteFile(scriptPath, helperScript, 0o755); err != nil {
		return nil, fmt.Errorf("write helper script: %w", err)
	}
	defer os.Remove(scriptPath)

	args := t.buildArgs(scriptPath, audioPath, opts)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.python, args...)
	cmd.Stdout = &stdout
	// Tee stderr: progress lines reach the console as they are printed,
	// while the buffer keeps the tail for diagnostics on failure.
	cmd.Stderr = io.MultiWriter(t.progress, &stderr)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTranscriptionFailed, errorTail(stderr.Bytes(), err))
	}

	return parseHelperOutput(stdout.Bytes(), opts.Size)
}

func (t *Transcriber) buildArgs(scriptPath, audioPath string, opts ports.TranscribeOpts) []string {
	args := []string{
		scriptPath,
		"--audio", audioPath,
		"--model", opts.Model.Ref,
		"--language", language,
		"--beam-size", strconv.Itoa(beamSize),
		"--compute-type", computeType,
		"--device", device,
		"--vad-min-silence-ms", strconv.Itoa(vadMinSilenceMs),
		"--vad-speech-pad-ms", strconv.Itoa(vadSpeechPadMs),
	}
	if !opts.Model.Bundled && opts.Model.CacheDir != "" {
		args = append(args, "--download-root", opts.Model.CacheDir)
	}
	return args
}

func parseHelperOutput(data []byte, modelSize string) (*domain.Transcript, error) {
	var parsed helperOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse helper output: %w", err)
	}

	tr := &domain.Transcript{
		Model:         modelSize,
		Language:      parsed.Language,
		Elapsed:       parsed.Elapsed,
		TranscribedAt: time.Now(),
	}
	for _, s := range parsed.Segments {
		tr.Segments = append(tr.Segments, domain.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}
	return tr, nil
}

// errorTail extracts the last non-empty stderr line for the error message,
// skipping the helper's own progress lines.
func errorTail(stderr []byte, fallback error) string {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line != "" {
			return line
		}
	}
	return fallback.Error()
}

// Ensure Transcriber implements the port
var _ ports.Transcriber = (*Transcriber)(nil)

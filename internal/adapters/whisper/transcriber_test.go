package whisper

import (
	"errors"
	"strings"
	"testing"

	"github.com/tkaraca/trscribe/internal/ports"
)

func TestBuildArgsDownloadMode(t *testing.T) {
	tr := NewTranscriber("")
	opts := ports.TranscribeOpts{
		Model: ports.ResolvedModel{Ref: "medium", CacheDir: "/home/u/.cache/whisper-models"},
		Size:  "medium",
	}

	args := tr.buildArgs("/tmp/helper.py", "/audio/kayit.mp3", opts)
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"--audio /audio/kayit.mp3",
		"--model medium",
		"--language tr",
		"--beam-size 5",
		"--compute-type int8",
		"--device cpu",
		"--vad-min-silence-ms 500",
		"--vad-speech-pad-ms 300",
		"--download-root /home/u/.cache/whisper-models",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q in %q", want, joined)
		}
	}
}

func TestBuildArgsBundledModeOmitsDownloadRoot(t *testing.T) {
	tr := NewTranscriber("")
	opts := ports.TranscribeOpts{
		Model: ports.ResolvedModel{Ref: "/opt/trscribe/model", Bundled: true},
		Size:  "medium",
	}

	args := tr.buildArgs("/tmp/helper.py", "/audio/kayit.mp3", opts)
	joined := strings.Join(args, " ")

	if strings.Contains(joined, "--download-root") {
		t.Error("bundled mode must not pass --download-root")
	}
	if !strings.Contains(joined, "--model /opt/trscribe/model") {
		t.Errorf("args missing bundled model path in %q", joined)
	}
}

func TestParseHelperOutput(t *testing.T) {
	data := []byte(`{
		"language": "tr",
		"duration": 130.4,
		"elapsed": 42.7,
		"segments": [
			{"start": 0.0, "end": 2.5, "text": " Merhaba "},
			{"start": 2.5, "end": 5.1, "text": "dünya"}
		]
	}`)

	tr, err := parseHelperOutput(data, "medium")
	if err != nil {
		t.Fatalf("parseHelperOutput() returned error: %v", err)
	}

	if tr.Model != "medium" {
		t.Errorf("Model = %q, want %q", tr.Model, "medium")
	}
	if tr.Language != "tr" {
		t.Errorf("Language = %q, want %q", tr.Language, "tr")
	}
	if tr.Elapsed != 42.7 {
		t.Errorf("Elapsed = %v, want 42.7", tr.Elapsed)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(tr.Segments))
	}
	if tr.Segments[0].Text != "Merhaba" {
		t.Errorf("segment text = %q, want trimmed", tr.Segments[0].Text)
	}
	if tr.Segments[1].Start != 2.5 || tr.Segments[1].End != 5.1 {
		t.Errorf("segment timing = %v-%v, want 2.5-5.1", tr.Segments[1].Start, tr.Segments[1].End)
	}
}

func TestParseHelperOutputEmptySegments(t *testing.T) {
	tr, err := parseHelperOutput([]byte(`{"language":"tr","duration":9.0,"elapsed":1.2,"segments":[]}`), "small")
	if err != nil {
		t.Fatalf("parseHelperOutput() returned error: %v", err)
	}
	if !tr.Empty() {
		t.Error("transcript should be empty")
	}
}

func TestParseHelperOutputInvalidJSON(t *testing.T) {
	if _, err := parseHelperOutput([]byte("Traceback (most recent call last):"), "medium"); err == nil {
		t.Error("parseHelperOutput() should fail on non-JSON output")
	}
}

func TestErrorTail(t *testing.T) {
	stderr := []byte("Loading model...\nTranscribing...\nRuntimeError: unsupported audio format\n")
	got := errorTail(stderr, errors.New("exit status 1"))
	if got != "RuntimeError: unsupported audio format" {
		t.Errorf("errorTail() = %q", got)
	}
}

func TestErrorTailFallsBackToExitError(t *testing.T) {
	got := errorTail(nil, errors.New("exit status 1"))
	if got != "exit status 1" {
		t.Errorf("errorTail() = %q", got)
	}
}

func TestDefaultPython(t *testing.T) {
	tr := NewTranscriber("")
	if tr.python == "" {
		t.Error("default python interpreter must not be empty")
	}
}

func TestPythonOverride(t *testing.T) {
	tr := NewTranscriber("/usr/local/bin/python3.12")
	if tr.python != "/usr/local/bin/python3.12" {
		t.Errorf("python = %q, want override", tr.python)
	}
}

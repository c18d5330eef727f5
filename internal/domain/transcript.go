package domain

import (
	"fmt"
	"strings"
	"time"
)

// Segment represents a timed segment of transcribed speech
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript represents the full transcription result
type Transcript struct {
	Segments      []Segment `json:"segments"`
	Model         string    `json:"model"`
	Language      string    `json:"language"`
	Elapsed       float64   `json:"elapsed_seconds"`
	TranscribedAt time.Time `json:"transcribed_at"`
}

// Empty reports whether the engine produced no speech segments
func (t *Transcript) Empty() bool {
	return len(t.Segments) == 0
}

// ToText returns all segment texts, trimmed and joined with single spaces,
// preserving segment order
func (t *Transcript) ToText() string {
	parts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		parts = append(parts, strings.TrimSpace(seg.Text))
	}
	return strings.Join(parts, " ")
}

// ToTimestamped returns one line per segment in the form
// "[MM:SS -> MM:SS]  <text>"
func (t *Transcript) ToTimestamped() []string {
	lines := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		lines = append(lines, fmt.Sprintf("[%s -> %s]  %s",
			FormatTimestamp(seg.Start), FormatTimestamp(seg.End), strings.TrimSpace(seg.Text)))
	}
	return lines
}

// FormatTimestamp converts seconds to "MM:SS". Sub-second precision is
// discarded by truncation, not rounding. Minutes past 99 are not clipped.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// NoSpeechSentinel is the entire output file content when the engine
// returned zero segments.
const NoSpeechSentinel = "No speech detected in the audio.\n"

// Report renders the transcript output file: header block, full text, and
// timestamped section. source is the input file's base name.
func (t *Transcript) Report(source string) string {
	if t.Empty() {
		return NoSpeechSentinel
	}

	var sb strings.Builder
	sb.WriteString("=== TRANSCRIPT (Turkish) ===\n")
	sb.WriteString(fmt.Sprintf("Source: %s\n", source))
	sb.WriteString(fmt.Sprintf("Model: whisper-%s\n", t.Model))
	sb.WriteString(fmt.Sprintf("Duration: %.1fs\n", t.Elapsed))
	sb.WriteString(strings.Repeat("=", 40))
	sb.WriteString("\n\n")

	sb.WriteString(t.ToText())
	sb.WriteString("\n\n")

	sb.WriteString("=== TIMESTAMPED ===\n\n")
	sb.WriteString(strings.Join(t.ToTimestamped(), "\n"))
	sb.WriteString("\n")

	return sb.String()
}

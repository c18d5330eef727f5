package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tkaraca/trscribe/internal/domain"
)

// transcriptSuffix is appended to the input's base name when no explicit
// output path is given.
const transcriptSuffix = "_transcript.txt"

// DefaultOutputPath derives the transcript path from the input path:
// the extension is stripped and the fixed suffix appended, keeping the
// input's directory.
func DefaultOutputPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + transcriptSuffix
}

// WriteTranscript renders the transcript report and writes it to path.
// Write failures propagate to the caller unrecovered.
func WriteTranscript(path string, tr *domain.Transcript, source string) error {
	return os.WriteFile(path, []byte(tr.Report(source)), 0644)
}

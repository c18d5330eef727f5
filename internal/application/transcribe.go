package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tkaraca/trscribe/internal/adapters/whisper"
	"github.com/tkaraca/trscribe/internal/domain"
	"github.com/tkaraca/trscribe/internal/ports"
)

// Request describes one transcription run. Immutable once constructed,
// consumed exactly once.
type Request struct {
	AudioPath  string
	ModelSize  string
	OutputPath string // empty means derive from AudioPath
}

// Prepared is a validated request: the input file exists and the model has
// been resolved. No engine work has happened yet.
type Prepared struct {
	AudioPath string // absolute
	Size      string
	Model     ports.ResolvedModel
}

// TranscribeService orchestrates the pipeline: input check, model
// resolution, engine invocation, Turkish post-processing.
type TranscribeService struct {
	resolver    ports.ModelResolver
	transcriber ports.Transcriber
}

// NewTranscribeService creates a new transcription service
func NewTranscribeService(resolver ports.ModelResolver, transcriber ports.Transcriber) *TranscribeService {
	return &TranscribeService{
		resolver:    resolver,
		transcriber: transcriber,
	}
}

// Prepare validates the input path and resolves the model. The existence
// check runs first so a bad path never triggers any model work.
func (s *TranscribeService) Prepare(req Request) (Prepared, error) {
	audioPath, err := filepath.Abs(req.AudioPath)
	if err != nil {
		return Prepared{}, fmt.Errorf("%w: %s", domain.ErrAudioNotFound, req.AudioPath)
	}
	info, err := os.Stat(audioPath)
	if err != nil || !info.Mode().IsRegular() {
		return Prepared{}, fmt.Errorf("%w: %s", domain.ErrAudioNotFound, audioPath)
	}

	size := req.ModelSize
	if size == "" {
		size = whisper.DefaultModel
	}

	resolved, err := s.resolver.Resolve(size)
	if err != nil {
		return Prepared{}, err
	}

	return Prepared{AudioPath: audioPath, Size: size, Model: resolved}, nil
}

// Run invokes the engine once on a prepared request, materializes all
// segments, and applies Turkish post-processing to each.
func (s *TranscribeService) Run(ctx context.Context, p Prepared) (*domain.Transcript, error) {
	transcript, err := s.transcriber.Transcribe(ctx, p.AudioPath, ports.TranscribeOpts{
		Model: p.Model,
		Size:  p.Size,
	})
	if err != nil {
		return nil, err
	}

	for i := range transcript.Segments {
		transcript.Segments[i].Text = domain.PostProcess(transcript.Segments[i].Text)
	}

	return transcript, nil
}

// Transcribe runs the full pipeline for one request.
func (s *TranscribeService) Transcribe(ctx context.Context, req Request) (*domain.Transcript, error) {
	prepared, err := s.Prepare(req)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, prepared)
}

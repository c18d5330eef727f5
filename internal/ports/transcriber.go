package ports

import (
	"context"

	"github.com/tkaraca/trscribe/internal/domain"
)

// ResolvedModel is the outcome of model resolution: either a bundled model
// directory on disk, or a bare size identifier the engine downloads into
// CacheDir on first use.
type ResolvedModel struct {
	Ref      string // directory path (bundled) or size identifier (download)
	Bundled  bool
	CacheDir string // engine download cache, empty in bundled mode
}

// ModelResolver decides between a bundled model and download mode.
// Resolution never touches the network.
type ModelResolver interface {
	Resolve(size string) (ResolvedModel, error)
}

// TranscribeOpts configures a single engine invocation
type TranscribeOpts struct {
	Model ResolvedModel
	// Size is the requested model identifier, used for labeling the
	// transcript even when a bundled directory is in play.
	Size string
}

// Transcriber handles speech-to-text conversion through the external engine
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, opts TranscribeOpts) (*domain.Transcript, error)
}

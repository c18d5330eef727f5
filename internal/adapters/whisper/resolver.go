package whisper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tkaraca/trscribe/internal/config"
	"github.com/tkaraca/trscribe/internal/domain"
	"github.com/tkaraca/trscribe/internal/ports"
)

// weightsFile is the binary weights file a bundled model directory must
// contain to be usable.
const weightsFile = "model.bin"

// Resolver picks between a model directory bundled beside the executable and
// download mode, where the engine fetches weights into a cache directory.
// Resolution never performs network access.
type Resolver struct {
	exeDir   string
	cacheDir string
}

// NewResolver creates a resolver probing next to the running executable.
func NewResolver() (*Resolver, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot locate executable: %w", err)
	}

	cacheDir, err := config.ModelCacheDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoCacheDir, err)
	}

	return &Resolver{exeDir: filepath.Dir(exe), cacheDir: cacheDir}, nil
}

// NewResolverAt creates a resolver with explicit directories.
func NewResolverAt(exeDir, cacheDir string) *Resolver {
	return &Resolver{exeDir: exeDir, cacheDir: cacheDir}
}

// Resolve returns the bundled model directory if one exists beside the
// executable, otherwise ensures the download cache exists and returns the
// requested size identifier unchanged. Safe to call repeatedly.
func (r *Resolver) Resolve(size string) (ports.ResolvedModel, error) {
	if !IsValidModel(size) {
		return ports.ResolvedModel{}, fmt.Errorf("%w: %q", domain.ErrUnknownModel, size)
	}

	bundled := filepath.Join(r.exeDir, "model")
	if dirExists(bundled) && fileExists(filepath.Join(bundled, weightsFile)) {
		return ports.ResolvedModel{Ref: bundled, Bundled: true}, nil
	}

	if err := os.MkdirAll(r.cacheDir, 0755); err != nil {
		return ports.ResolvedModel{}, fmt.Errorf("failed to create model cache %s: %w", r.cacheDir, err)
	}

	return ports.ResolvedModel{Ref: size, CacheDir: r.cacheDir}, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Ensure Resolver implements the port
var _ ports.ModelResolver = (*Resolver)(nil)

package domain

import "errors"

var (
	// Input errors
	ErrAudioNotFound = errors.New("audio file not found")
	ErrNoSelection   = errors.New("no file selected")

	// Model errors
	ErrUnknownModel = errors.New("unknown model size")
	ErrNoCacheDir   = errors.New("cannot determine model cache directory")

	// Engine errors
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrEngineNotFound      = errors.New("python interpreter not found (faster-whisper requires python3)")
)

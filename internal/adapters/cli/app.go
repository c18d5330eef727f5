package cli

import (
	"github.com/tkaraca/trscribe/internal/adapters/cli/tui"
	"github.com/tkaraca/trscribe/internal/adapters/whisper"
	"github.com/tkaraca/trscribe/internal/application"
	"github.com/tkaraca/trscribe/internal/config"
	"github.com/tkaraca/trscribe/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	Resolver    *whisper.Resolver
	Transcriber *whisper.Transcriber
	Picker      ports.FilePicker

	TranscribeSvc *application.TranscribeService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	resolver, err := whisper.NewResolver()
	if err != nil {
		return nil, err
	}

	transcriber := whisper.NewTranscriber(cfg.Paths.Python)
	svc := application.NewTranscribeService(resolver, transcriber)

	return &App{
		Config:        cfg,
		Resolver:      resolver,
		Transcriber:   transcriber,
		Picker:        tui.NewFilePicker(),
		TranscribeSvc: svc,
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}

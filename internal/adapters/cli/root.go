package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkaraca/trscribe/internal/adapters/whisper"
	"github.com/tkaraca/trscribe/internal/application"
)

var (
	modelFlag  string
	outputFlag string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trscribe [file]",
		Short: "Transcribe Turkish audio to text",
		Long: `trscribe transcribes Turkish speech from an audio file into a plain-text
transcript (full text plus timestamped segments) using Whisper.

Run without arguments to pick the audio file interactively.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "",
		fmt.Sprintf("Whisper model size: %s (default %q)",
			strings.Join(whisper.ModelSizes, ", "), whisper.DefaultModel))
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"Output text file path (default: <input>"+transcriptSuffix+")")

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	model := modelFlag
	if model == "" {
		model = app.Config.Defaults.Model
	}
	if model == "" {
		model = whisper.DefaultModel
	}
	if !whisper.IsValidModel(model) {
		return fmt.Errorf("invalid model %q (choose from: %s)", model, strings.Join(whisper.ModelSizes, ", "))
	}

	var audioPath string
	if len(args) == 1 {
		audioPath = args[0]
	} else {
		audioPath = pickAudioFile(app)
		if audioPath == "" {
			// User cancelled or no picker could run; deliberately not an
			// error, unlike the other failure paths.
			fmt.Println("No file selected.")
			os.Exit(0)
		}
	}

	return runTranscribe(app, audioPath, model)
}

func pickAudioFile(app *App) string {
	if !app.Picker.Available() {
		return ""
	}
	path, err := app.Picker.Pick()
	if err != nil {
		return ""
	}
	return path
}

func runTranscribe(app *App, input, model string) error {
	prepared, err := app.TranscribeSvc.Prepare(application.Request{
		AudioPath: input,
		ModelSize: model,
	})
	if err != nil {
		return err
	}

	if prepared.Model.Bundled {
		fmt.Printf("Model  : %s (bundled)\n", prepared.Model.Ref)
	} else {
		fmt.Printf("Model  : %s (download)\n", prepared.Model.Ref)
	}
	fmt.Printf("Input  : %s\n", filepath.Base(prepared.AudioPath))

	transcript, err := app.TranscribeSvc.Run(context.Background(), prepared)
	if err != nil {
		return err
	}

	outPath := outputFlag
	if outPath == "" {
		outPath = DefaultOutputPath(prepared.AudioPath)
	}

	if err := WriteTranscript(outPath, transcript, filepath.Base(prepared.AudioPath)); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	fmt.Printf("Output : %s\n", outPath)
	return nil
}

// Execute runs the CLI
func Execute() {
	setupConsole()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Launched with no arguments at all (likely double-clicked): keep the
	// console window open until a keypress.
	if len(os.Args) == 1 {
		fmt.Println()
		fmt.Print("Press Enter to exit...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
}

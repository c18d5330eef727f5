package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/tkaraca/trscribe/internal/ports"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// audioExtensions filters the picker to common audio formats. The filter is
// advisory; the engine decides what it can actually decode.
var audioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".wma"}

// FilePicker is the interactive terminal file selector. It reports
// unavailable when stdout is not a terminal (headless or piped execution),
// and a failed or cancelled run degrades to "no selection" instead of an
// error.
type FilePicker struct{}

// NewFilePicker creates the terminal file picker
func NewFilePicker() *FilePicker {
	return &FilePicker{}
}

// Available reports whether an interactive picker can be shown
func (*FilePicker) Available() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Pick runs the picker and returns the chosen path. An empty path with a
// nil error means the user cancelled or the picker could not run.
func (*FilePicker) Pick() (string, error) {
	p := tea.NewProgram(newPickerModel())

	final, err := p.Run()
	if err != nil {
		return "", nil
	}
	return final.(pickerModel).selected, nil
}

type pickerModel struct {
	picker   filepicker.Model
	selected string
	errMsg   string
}

func newPickerModel() pickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = audioExtensions
	fp.CurrentDirectory = "."
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	return pickerModel{picker: fp}
}

func (m pickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.errMsg = path + " is not an audio file"
	}

	return m, cmd
}

func (m pickerModel) View() string {
	s := titleStyle.Render("Select an audio file to transcribe") + "\n\n"
	if m.errMsg != "" {
		s += errStyle.Render(m.errMsg) + "\n\n"
	}
	s += m.picker.View()
	s += "\n" + helpStyle.Render("(enter to select, q to cancel)") + "\n"
	return s
}

// Ensure FilePicker implements the port
var _ ports.FilePicker = (*FilePicker)(nil)

package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate progress indicator ending in a success or
// failure line.
type Spinner interface {
	SetTitle(title string)
	Succeed(msg string)
	Fail(msg string)
}

// Progress creates spinners.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w, or os.Stderr when w is nil.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *Progress {
	if w == nil {
		w = os.Stderr
	}
	return &Progress{theme: theme, headless: hm, writer: w}
}

// Spinner starts a spinner. In headless mode it prints the title as a log line.
func (p *Progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessSpinner(p.theme, title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// Plain starts a spinner that only prints lines, for steps whose child
// process writes to the terminal itself.
func (p *Progress) Plain(title string) Spinner {
	return newHeadlessSpinner(p.theme, title, p.writer)
}

// --- interactiveSpinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner animates until Succeed or Fail prints its final line.
type interactiveSpinner struct {
	theme   *Theme
	program *tea.Program
	writer  io.Writer
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title), tea.WithOutput(w), tea.WithInput(nil))
	s := &interactiveSpinner{theme: theme, program: p, writer: w}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Succeed stops the spinner and prints a success line.
func (s *interactiveSpinner) Succeed(msg string) {
	s.finish(symSuccess(s.theme), msg)
}

// Fail stops the spinner and prints a failure line.
func (s *interactiveSpinner) Fail(msg string) {
	s.finish(symError(s.theme), msg)
}

func (s *interactiveSpinner) finish(sym, msg string) {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
		_, _ = fmt.Fprintf(s.writer, "%s %s\n", sym, msg)
	})
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	theme  *Theme
	writer io.Writer
	done   bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(theme *Theme, title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return &headlessSpinner{theme: theme, writer: w}
}

// SetTitle prints the new title as a log line.
func (s *headlessSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Succeed prints a success line once.
func (s *headlessSpinner) Succeed(msg string) {
	s.finish(symSuccess(s.theme), msg)
}

// Fail prints a failure line once.
func (s *headlessSpinner) Fail(msg string) {
	s.finish(symError(s.theme), msg)
}

func (s *headlessSpinner) finish(sym, msg string) {
	if s.done {
		return
	}
	s.done = true
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", sym, msg)
}

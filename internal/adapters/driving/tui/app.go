package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driving/tui/styles"
)

// previewMsg carries the result of normalizing the current input.
// The input field lets stale results be discarded when typing outpaces
// the engine.
type previewMsg struct {
	input string
	out   string
	err   error
}

// App is the live preview TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// input is the editable source text.
	input textarea.Model

	// preview is the spoken form of the current input.
	preview string

	// err holds the last normalization error.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ta := textarea.New()
	ta.Placeholder = "Type text to normalize..."
	ta.Focus()
	ta.SetHeight(5)

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		input:  ta,
	}, nil
}

// WithContext sets the context used for normalization calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(msg.Width - 4)
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		}

	case previewMsg:
		// Ignore results for text the user has already changed.
		if msg.input != a.input.Value() {
			return a, nil
		}
		a.preview = msg.out
		a.err = msg.err
		return a, nil
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		return a, tea.Batch(cmd, a.previewCmd())
	}
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.styles.Title.Render("Vocalise")
	status := a.styles.Muted.Render(a.statusLine())

	inputBox := a.styles.Border.Width(a.width - 2).Render(a.input.View())

	var body string
	if a.err != nil {
		body = a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err))
	} else if a.preview == "" {
		body = a.styles.Muted.Render("(spoken form appears here)")
	} else {
		body = a.styles.Normal.Render(a.preview)
	}
	previewBox := a.styles.Border.Width(a.width - 2).Render(body)

	help := a.styles.Help.Render("esc/ctrl+c: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		status,
		"",
		a.styles.Subtitle.Render("Input"),
		inputBox,
		"",
		a.styles.Subtitle.Render("Spoken"),
		previewBox,
		"",
		help,
	)
}

// Preview returns the current spoken form (for tests).
func (a *App) Preview() string {
	return a.preview
}

// previewCmd normalizes the current input off the update loop.
func (a *App) previewCmd() tea.Cmd {
	text := a.input.Value()
	return func() tea.Msg {
		out, err := a.ports.Text.Process(a.ctx, text)
		return previewMsg{input: text, out: out, err: err}
	}
}

// statusLine summarizes the active configuration.
func (a *App) statusLine() string {
	if a.ports.Settings == nil {
		return "live preview"
	}
	settings, err := a.ports.Settings.Get()
	if err != nil {
		return "live preview"
	}
	return fmt.Sprintf("live preview | dates: %s", settings.Normalize.DatePolicy.Description())
}

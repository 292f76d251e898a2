package term

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/mui"
)

// Model runs a mui UI as a Bubble Tea program. Every message that reaches
// Update produces one frame.
//
// Usage:
//
//	r := term.NewRenderer(80, 24)
//	m := term.NewModel(r, func(ctx *mui.Context) { ... },
//	    mui.WithStyle(term.Style()))
//	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
type Model struct {
	gui      *mui.GUI
	renderer *Renderer
	build    func(ctx *mui.Context)
	logger   *slog.Logger
	err      error
}

// NewModel creates a model that builds each frame with build and draws it
// with r. Text is measured with r's cell metrics.
func NewModel(r *Renderer, build func(ctx *mui.Context), opts ...mui.ContextOption) *Model {
	return &Model{
		gui:      mui.New(r, r.canvas.metrics, opts...),
		renderer: r,
		build:    build,
		logger:   slog.Default(),
	}
}

// SetLogger replaces the logger frame errors are reported to.
func (m *Model) SetLogger(l *slog.Logger) {
	m.logger = l
}

// GUI returns the underlying GUI.
func (m *Model) GUI() *mui.GUI {
	return m.gui
}

// Err returns the error of the last frame, if it was discarded.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.gui.Resize(msg.Width, msg.Height)
	}

	in := m.gui.Input()
	Feed(in, msg)
	m.Frame()
	ReleaseKeys(in)
	return m, nil
}

// Frame builds and renders one frame outside the Bubble Tea loop.
func (m *Model) Frame() {
	m.err = m.gui.Frame(m.build)
	if m.err != nil {
		m.logger.Warn("frame not rendered", "err", m.err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.renderer.View()
}

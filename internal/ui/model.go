package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/history"
	"github.com/imdyangs/past-present-future/internal/reading"
	"github.com/imdyangs/past-present-future/internal/render"
	"github.com/imdyangs/past-present-future/internal/session"
	"github.com/imdyangs/past-present-future/internal/spread"
)

// HistoryFeed supplies recent draws and change notifications
type HistoryFeed interface {
	Visible(ctx context.Context) []history.Entry
	Subscribe(fn func([]history.Entry)) (unsubscribe func())
}

// HealthFunc probes the reading service
type HealthFunc func(ctx context.Context) (string, error)

// Config wires a Model to the session
type Config struct {
	DeckName string
	Drawer   *session.Drawer
	Readings *session.Orchestrator
	History  HistoryFeed
	Health   HealthFunc
	Logger   *zap.Logger
	Styles   *Styles
}

type (
	revealedMsg struct {
		spread spread.Spread
		err    error
	}
	readingMsg struct {
		result session.Result
		err    error
	}
	historyMsg []history.Entry
	healthMsg  struct {
		status string
		err    error
	}
)

// Model is the bubbletea model for the interactive session
type Model struct {
	cfg    Config
	styles Styles
	logger *zap.Logger

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int

	spread    spread.Spread
	hasSpread bool
	revealing bool

	requesting bool
	started    time.Time
	result     *session.Result
	modalOpen  bool

	recent  []history.Entry
	updates chan []history.Entry
	unsub   func()

	status string
	err    error
}

// New creates a Model
func New(cfg Config) *Model {
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := &Model{
		cfg:      cfg,
		styles:   styles,
		logger:   logger,
		spinner:  sp,
		viewport: viewport.New(render.DefaultWidth, 20),
		width:    render.DefaultWidth,
		height:   24,
		updates:  make(chan []history.Entry, 1),
	}
	if cfg.History != nil {
		m.unsub = cfg.History.Subscribe(m.pushHistory)
	}
	return m
}

// pushHistory runs under the history lock, so it only hands the entries
// over without blocking.
func (m *Model) pushHistory(entries []history.Entry) {
	select {
	case m.updates <- entries:
	default:
		select {
		case <-m.updates:
		default:
		}
		select {
		case m.updates <- entries:
		default:
		}
	}
}

// Close releases the history subscription
func (m *Model) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

// Init loads history and probes the reading service
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistory(), m.waitHistory(), m.probeHealth())
}

func (m *Model) loadHistory() tea.Cmd {
	feed := m.cfg.History
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		return historyMsg(feed.Visible(context.Background()))
	}
}

func (m *Model) waitHistory() tea.Cmd {
	if m.cfg.History == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		return historyMsg(<-updates)
	}
}

func (m *Model) probeHealth() tea.Cmd {
	health := m.cfg.Health
	if health == nil {
		return nil
	}
	return func() tea.Msg {
		status, err := health(context.Background())
		return healthMsg{status: status, err: err}
	}
}

func (m *Model) reveal() tea.Cmd {
	drawer := m.cfg.Drawer
	return func() tea.Msg {
		s, err := drawer.Reveal(context.Background())
		return revealedMsg{spread: s, err: err}
	}
}

func (m *Model) getReading() tea.Cmd {
	readings := m.cfg.Readings
	return func() tea.Msg {
		res, err := readings.GetReading(context.Background())
		return readingMsg{result: res, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(5, msg.Height-8)
		m.refreshModal()
		return m, nil

	case revealedMsg:
		m.revealing = false
		if msg.err != nil {
			if !errors.Is(msg.err, session.ErrDrawInProgress) {
				m.err = msg.err
			}
			return m, nil
		}
		m.err = nil
		m.spread = msg.spread
		m.hasSpread = true
		m.requesting = false
		m.result = nil
		m.modalOpen = false
		return m, nil

	case readingMsg:
		if errors.Is(msg.err, session.ErrSuperseded) {
			m.logger.Debug("dropping reading for an earlier spread")
			return m, nil
		}
		m.requesting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		res := msg.result
		m.result = &res
		m.modalOpen = m.cfg.Readings.Snapshot().Open
		m.refreshModal()
		return m, nil

	case historyMsg:
		m.recent = msg
		return m, m.waitHistory()

	case healthMsg:
		if msg.err != nil {
			m.logger.Info("reading service unreachable", zap.Error(msg.err))
			m.status = "reading service offline"
		} else {
			m.logger.Debug("reading service healthy", zap.String("status", msg.status))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.revealing && !m.requesting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Close()
		return m, tea.Quit

	case "r":
		if m.revealing {
			return m, nil
		}
		m.revealing = true
		m.requesting = false
		m.modalOpen = false
		return m, tea.Batch(m.reveal(), m.spinner.Tick)

	case "g", "enter":
		if !m.hasSpread || m.revealing {
			return m, nil
		}
		if m.requesting {
			// Joins the in-flight request and restores the open intent.
			return m, m.getReading()
		}
		m.requesting = true
		m.started = time.Now()
		return m, tea.Batch(m.getReading(), m.spinner.Tick)

	case "esc":
		if m.modalOpen || m.requesting {
			m.cfg.Readings.Close()
			m.modalOpen = false
		}
		return m, nil

	case "o":
		if res, ok := m.cfg.Readings.Open(); ok {
			m.result = &res
			m.modalOpen = true
			m.refreshModal()
		}
		return m, nil
	}

	if m.modalOpen {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshModal() {
	if m.result == nil {
		return
	}
	body, err := render.Reading(m.result.Reading, m.viewport.Width)
	if err != nil {
		m.logger.Warn("markdown render failed", zap.Error(err))
		body = m.result.Reading.Markdown()
	}
	if m.result.Notice != "" {
		body = m.styles.Notice.Width(m.viewport.Width).Render(m.result.Notice) + "\n" + body
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

// View renders the screen
func (m *Model) View() string {
	var b strings.Builder
	title := m.styles.Title.Render(reading.Title)
	if m.cfg.DeckName != "" {
		title += "  " + m.styles.Muted.Render(m.cfg.DeckName)
	}
	b.WriteString(title)
	b.WriteString("\n")

	if m.modalOpen && m.result != nil {
		b.WriteString(m.styles.Modal.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("↑/↓ scroll · esc close · r new spread · q quit"))
		return b.String()
	}

	switch {
	case m.revealing:
		b.WriteString(m.spinner.View() + " Shuffling…\n")
	case m.hasSpread:
		b.WriteString(m.spreadView())
		b.WriteString("\n")
	default:
		b.WriteString(m.styles.Muted.Render("Press r to draw three cards."))
		b.WriteString("\n")
	}

	if m.requesting {
		elapsed := time.Since(m.started).Round(time.Second)
		b.WriteString(fmt.Sprintf("%s Reading the cards… %s\n", m.spinner.View(), m.styles.Muted.Render(elapsed.String())))
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Muted.Render(m.status))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Position.Render("RECENT"))
		b.WriteString("\n")
		for _, e := range m.recent {
			b.WriteString(render.HistoryLine(e))
			b.WriteString("\n")
		}
	}

	help := "r draw · q quit"
	if m.hasSpread {
		help = "r redraw · g reading · q quit"
		if m.result != nil {
			help = "r redraw · g reading · o reopen · q quit"
		}
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

func (m *Model) spreadView() string {
	panelWidth := max(18, (m.width-6)/spread.Size-4)
	panels := make([]string, 0, spread.Size)
	for i, c := range m.spread {
		lines := []string{
			m.styles.Position.Render(spread.Positions[i].Label()),
			m.styles.CardName.Render(c.Name),
		}
		for _, line := range render.WrapText(c.Meaning, panelWidth) {
			lines = append(lines, m.styles.Meaning.Render(line))
		}
		panels = append(panels, m.styles.Panel.Width(panelWidth).Render(strings.Join(lines, "\n")))
	}
	if m.width < 3*(panelWidth+4) {
		return lipgloss.JoinVertical(lipgloss.Left, panels...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// Run starts the interactive program
func Run(cfg Config) error {
	m := New(cfg)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

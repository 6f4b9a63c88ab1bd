package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/logging"
	"github.com/five82/glide/internal/prefs"
	"github.com/five82/glide/internal/slider"
	"github.com/five82/glide/internal/state"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Config       *config.Config
	Logger       *logging.Logger
	PollTick     time.Duration
	ThemeName    string
	WarningPanel bool
	PrefsPath    string
	// Scheduler overrides the program-driven timer service. Tests pass a
	// slider.ManualScheduler.
	Scheduler slider.Scheduler
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	logger    *logging.Logger
	prefsPath string
	pollTick  time.Duration
	sched     slider.Scheduler
	timers    *teaScheduler

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	stage    *stage

	// Pointer state
	pressed bool

	// Overlays
	showHelp     bool
	showWarnings bool
	modal        Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewWithWriter(io.Discard, logging.Options{Level: cfg.LogLevel})
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:          ctx,
		store:        opts.Store,
		config:       cfg,
		logger:       logger,
		prefsPath:    prefsPath,
		pollTick:     pollTick,
		sched:        opts.Scheduler,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(opts.ThemeName),
		showWarnings: opts.WarningPanel,
	}
	if m.sched == nil {
		m.timers = newTeaScheduler()
		m.sched = m.timers
	}
	m.help = newHelp(m.theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.stage != nil {
			// The document dispatches resize, which the slider re-snaps on.
			m.stage.doc.SetViewportWidth(float64(m.width))
		} else {
			m.rebuild()
		}
		return m, nil

	case timerMsg:
		if m.timers != nil {
			m.timers.fire(msg.timer)
		}
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.stage == nil || m.stage.revision != m.snapshot.Revision {
			m.rebuild()
		}
		return m, nil
	}

	return m, nil
}

// rebuild replaces the stage with one built from the current snapshot,
// keeping the visible slide where the new deck still has it.
func (m *Model) rebuild() {
	if !m.ready || !m.snapshot.HasDeck() {
		return
	}
	options := m.config.Slider.Merge(m.snapshot.Deck.Slider)
	if m.stage != nil {
		if current := m.stage.currentSlide(); current > 0 {
			options.StartAtPage = slider.Ptr(min(current, len(m.snapshot.Deck.Slides)-1))
		}
		m.stage.dispose()
		m.modal = nil
	}
	m.stage = newStage(m.snapshot.Deck, m.snapshot.Revision, stageConfig{
		width:    m.width,
		options:  options,
		sched:    m.sched,
		logger:   m.logger.Logger,
		warnings: m.config.ShowWarnings,
	})
	m.logger.Debug("slider built",
		"slider", m.stage.slider.ID(),
		"revision", m.snapshot.Revision,
		"slides", len(m.snapshot.Deck.Slides),
	)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleWarnings):
		m.showWarnings = !m.showWarnings
		m.savePrefs()
		return m, nil
	}

	if m.stage == nil {
		return m, nil
	}
	s := m.stage.slider

	switch {
	case key.Matches(msg, m.keys.ArrowLeft):
		m.stage.doc.Dispatch(nil, &slider.Event{Type: slider.EventKeyDown, Key: "ArrowLeft"})
	case key.Matches(msg, m.keys.ArrowRight):
		m.stage.doc.Dispatch(nil, &slider.Event{Type: slider.EventKeyDown, Key: "ArrowRight"})
	case key.Matches(msg, m.keys.Prev):
		s.GotoPrev()
	case key.Matches(msg, m.keys.Next):
		s.GotoNext()
	case key.Matches(msg, m.keys.First):
		s.GotoDot(0)
	case key.Matches(msg, m.keys.Last):
		s.GotoDot(s.DotCount() - 1)
	case key.Matches(msg, m.keys.Dot):
		s.GotoDot(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.ToggleAutoplay):
		if s.Settings().Autoplay <= 0 {
			m.logger.Info("autoplay is not configured for this deck")
			break
		}
		s.SetAutoplay(!s.AutoplayRunning())
	case key.Matches(msg, m.keys.Open):
		m.openSlide(m.stage.currentSlide())
	}
	return m, nil
}

func (m *Model) openSlide(index int) {
	if m.stage == nil || index < 0 || index >= len(m.stage.deck.Slides) {
		return
	}
	m.modal = newDetailModal(m.stage.deck, index)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, WarningPanel: m.showWarnings}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	r := m.regions()
	parts := []string{m.renderHeader()}

	if m.stage == nil || m.stage.slider.Inert() {
		parts = append(parts, m.renderPlaceholder(r.slidesHeight), strings.Repeat(" ", m.width))
	} else {
		styles := m.theme.Styles()
		parts = append(parts,
			m.stage.renderSlides(styles, m.width, r.slidesHeight),
			m.stage.renderDots(styles, m.width),
		)
	}

	if r.panelHeight > 0 {
		parts = append(parts, m.renderWarnings())
	}
	parts = append(parts, m.renderStatus())
	return strings.Join(parts, "\n")
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := "no deck"
	if m.snapshot.HasDeck() {
		title = m.snapshot.Deck.Title
	}
	parts := []string{
		bg.Render("glide", styles.Logo),
		bg.Render(title, styles.Text.Bold(true)),
	}
	if m.snapshot.Source != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.snapshot.Source, max(m.width/3, 12)), styles.FaintText))
	}
	return bg.FillLine(bg.Spaces(1)+bg.Join(parts, "  "), m.width)
}

func (m Model) renderPlaceholder(height int) string {
	styles := m.theme.Styles()
	msg := styles.MutedText.Render("Waiting for deck…")
	if err := m.snapshot.LastError; err != nil {
		msg = styles.DangerText.Render(err.Error())
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	if m.stage != nil && !m.stage.slider.Inert() {
		s := m.stage.slider
		parts = append(parts, bg.Render(fmt.Sprintf("page %d/%d", s.ActiveDot()+1, s.DotCount()), styles.AccentText))
		if m.width >= LayoutCompactWidth {
			bp := "default"
			if s.Breakpoint() >= 0 {
				bp = fmt.Sprintf("breakpoint %d", s.Breakpoint())
			}
			parts = append(parts, bg.Render(bp, styles.MutedText))
			if s.Dragging() {
				parts = append(parts, bg.Render(fmt.Sprintf("dragging %+.0f", s.LastDragDelta()), styles.WarningText))
			}
		}
		if s.AutoplayRunning() {
			parts = append(parts, bg.Render("autoplay", styles.SuccessText))
		}
	}
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("offline", styles.DangerText))
	} else if m.snapshot.LastError != nil && m.snapshot.HasDeck() {
		parts = append(parts, bg.Render("reload failed", styles.WarningText))
	}

	h := m.help
	h.Width = max(m.width/2, 10)
	parts = append(parts, h.ShortHelpView(m.keys.ShortHelp()))
	return bg.FillLine(bg.Spaces(1)+bg.Join(parts, " · "), m.width)
}

type regions struct {
	slidesTop    int
	slidesHeight int
	dotsRow      int
	panelHeight  int
}

// regions splits the screen: header, slides, dots, optional warnings panel,
// status line.
func (m Model) regions() regions {
	panel := 0
	if m.showWarnings {
		panel = WarningPanelLines + 1
	}
	h := max(m.height-3-panel, 3)
	return regions{slidesTop: 1, slidesHeight: h, dotsRow: 1 + h, panelHeight: panel}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	if m.timers != nil {
		m.timers.attach(p.Send)
	}
	_, err := p.Run()
	if m.timers != nil {
		m.timers.attach(nil)
	}
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/oh-coconuts/internal/core"
	"github.com/vovakirdan/oh-coconuts/internal/registry"
	"github.com/vovakirdan/oh-coconuts/internal/storage"
)

// Session identifies who is playing. Every local run and every SSH
// connection gets its own session ID.
type Session struct {
	ID     string
	Player string
}

// NewSession creates a session with a fresh UUID.
func NewSession(player string) Session {
	return Session{ID: uuid.NewString(), Player: player}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	session    Session
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	results    ResultsModel
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	roundSaved bool // Whether the round has been recorded for current game over
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSession sets the session the rounds are recorded under.
func WithSession(s Session) Option {
	return func(m *Model) {
		m.session = s
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case rounds are not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		session:    NewSession(""),
		logger:     log.New(io.Discard),
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Bottom row is reserved for the help bar
	m.screen = core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	return m
}

// playHeight is the screen height left for the game above the help bar.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// The results panel scrolls with the arrow keys
	if m.showingResults() {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleResize processes window resize events.
// The game scales its field to any size, so the round carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if m.showingResults() {
		m.results, _ = m.results.Update(msg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.roundSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the round on game over (once)
	if m.gameState.GameOver && !m.roundSaved {
		m.recordRound()
		m.roundSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRound saves the finished round and builds the results panel.
func (m *Model) recordRound() {
	s := m.gameState
	round := storage.Round{
		SessionID: m.session.ID,
		Player:    m.session.Player,
		Destroyed: s.Destroyed,
		Beached:   s.Beached,
		Health:    s.Health,
		Ticks:     s.Ticks,
		CrabAlive: s.CrabAlive,
	}

	m.logger.Info("round finished",
		"session", m.session.ID,
		"player", m.session.Player,
		"destroyed", s.Destroyed,
		"beached", s.Beached,
		"health", s.Health,
	)

	if m.store == nil {
		return
	}

	id, err := m.store.SaveRound(round)
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not record round", "err", err)
	}
	round.ID = id
	m.results = NewResultsModel(m.store, round, m.width, m.height)
}

// showingResults reports whether the results panel replaces the field.
func (m Model) showingResults() bool {
	return m.store != nil && m.gameState.GameOver && m.roundSaved
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showingResults() {
		return m.results.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

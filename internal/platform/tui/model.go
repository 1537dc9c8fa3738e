package tui

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroid-smasher/internal/config"
	"github.com/vovakirdan/asteroid-smasher/internal/core"
	"github.com/vovakirdan/asteroid-smasher/internal/smash"
)

// helpRows is the height of the help footer below the game screen.
const helpRows = 1

// ScoreHistory appends finished rounds. *storage.Store implements it.
type ScoreHistory interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options wires a round to its collaborators.
type Options struct {
	Game    config.SmashConfig
	Runtime core.RuntimeConfig
	Record  smash.HighScoreStore // Required
	History ScoreHistory         // Optional
	Sound   smash.Sound          // Optional
	Logger  *log.Logger          // Optional
}

// Model is the Bubble Tea model for running rounds.
type Model struct {
	opts      Options
	ctrl      *smash.Controller
	input     *MouseInput
	presenter *ScreenPresenter
	logger    *log.Logger
	keys      GameKeyMap
	help      help.Model
	seed      int64
	lastTick  time.Time
	quitting  bool
}

// NewModel reads the high score and sets up the first round.
func NewModel(opts Options) (Model, error) {
	if opts.Record == nil {
		return Model{}, errors.New("tui: high score store is required")
	}

	// Use time-based seed if not specified
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:      opts,
		presenter: NewScreenPresenter(core.Max(1, opts.Runtime.ScreenW), core.Max(1, opts.Runtime.ScreenH-helpRows)),
		logger:    logger,
		keys:      DefaultGameKeyMap(),
		help:      h,
		seed:      seed,
	}
	if err := m.startRound(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startRound builds a fresh controller. The high score is read again so a
// record set by the previous round is shown.
func (m *Model) startRound() error {
	field := smash.Field{W: m.opts.Game.Field.Width, H: m.opts.Game.Field.Height}
	screen := m.presenter.Screen()
	vp := smash.NewViewport(field, screen.Width(), screen.Height())

	start := core.Point{X: field.W / 2, Y: field.H / 2}
	if m.input != nil {
		start = m.input.Poll().Pointer
	}
	m.input = NewMouseInput(vp, start)

	ctrl, err := smash.NewController(m.opts.Game, m.seed, m.input, m.presenter, m.opts.Record, m.opts.Sound)
	if err != nil {
		return err
	}
	m.ctrl = ctrl
	m.lastTick = time.Time{}
	m.presenter.Render(ctrl.Frame())

	m.logger.Info("round started", "seed", m.seed, "high_score", ctrl.StoredHighScore())
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Quit goes through the controller on
// the next tick like any other event.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.input.RequestQuit()

	case key.Matches(msg, m.keys.Restart):
		if m.ctrl.Phase() != smash.PhaseEnded {
			return m, nil
		}
		m.seed++
		if err := m.startRound(); err != nil {
			m.logger.Error("cannot start round", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize refits the screen. The play-field is logical, so the round
// carries on unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.presenter.Resize(msg.Width, core.Max(1, msg.Height-helpRows))

	screen := m.presenter.Screen()
	field := smash.Field{W: m.opts.Game.Field.Width, H: m.opts.Game.Field.Height}
	m.input.SetViewport(smash.NewViewport(field, screen.Width(), screen.Height()))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one controller step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed int
	elapsed, m.lastTick = elapsedMs(m.lastTick, now, m.opts.Runtime)

	result := m.ctrl.Step(elapsed)
	if result.Quit {
		m.logger.Debug("quit requested", "score", result.Score, "phase", result.Phase)
		m.quitting = true
		return m, tea.Quit
	}

	if result.Ended {
		m.finishRound(result)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finishRound logs the result and appends it to the history once.
func (m Model) finishRound(result smash.StepResult) {
	frame := m.ctrl.Frame()
	m.logger.Info("round ended",
		"score", result.Score,
		"high_score", frame.HighScore,
		"new_record", frame.NewHighScore,
		"ticks", m.ctrl.Ticks(),
	)

	if result.WriteErr != nil {
		m.logger.Error("cannot save high score", "score", result.Score, "err", result.WriteErr)
	}

	if m.opts.History != nil && result.Score > 0 {
		if _, err := m.opts.History.SaveScore(smash.GameID, result.Score); err != nil {
			m.logger.Warn("cannot save round", "score", result.Score, "err", err)
		}
	}
}

// Controller returns the running round.
func (m Model) Controller() *smash.Controller {
	return m.ctrl
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	keys := m.keys
	keys.Restart.SetEnabled(m.ctrl.Phase() == smash.PhaseEnded)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := "move: aim • click: smash"
	if h := m.help.View(keys); h != "" {
		footer += " • " + h
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.presenter.Screen()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(footer))
	return b.String()
}

// Run starts the Bubble Tea program and plays until the user quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // The hand follows the pointer without a button held
	)

	_, err = p.Run()
	return err
}

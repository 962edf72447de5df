package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binbreak/internal/animation"
	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/core"
	"github.com/vovakirdan/binbreak/internal/highscore"
	"github.com/vovakirdan/binbreak/internal/quiz"
)

// GameRecorder stores finished games. *storage.Store implements it.
type GameRecorder interface {
	SaveGame(mode bitmode.Mode, score, rounds, maxStreak uint32) (int64, error)
}

// Options configures an AppModel. Zero values select the defaults.
type Options struct {
	Runtime   core.RuntimeConfig
	Rules     quiz.Rules
	Animation animation.Settings
	Prefs     *bitmode.Preferences // nil selects bitmode.DefaultPreferences

	Scores  highscore.Store // nil keeps high scores in memory only
	History GameRecorder    // nil disables game history

	// StartMode skips the title menu. Leaving that game quits the program.
	StartMode *bitmode.Mode

	ScreenshotDir string // empty disables ctrl+s
	Logger        *log.Logger
	Clock         func() time.Time
}

// appState is the closed set of top-level screens.
type appState interface {
	isAppState()
}

type menuState struct {
	menu *Menu
}

type playingState struct {
	session  *quiz.Session
	recorded bool // finished game already written to History
}

type exitState struct{}

func (menuState) isAppState()     {}
func (*playingState) isAppState() {}
func (exitState) isAppState()     {}

// AppModel is the Bubble Tea model driving the title menu and the game.
//
// Frames are polled only while the puzzle timer runs or the banner
// animates. Otherwise no frame is scheduled and the program sleeps
// until the next key.
type AppModel struct {
	opts   Options
	keys   KeyMap
	logger *log.Logger
	now    func() time.Time

	state  appState
	prefs  bitmode.Preferences
	screen *core.Screen
	pacer  framePacer
	games  int64 // sessions started, offsets a fixed seed
}

// NewAppModel creates the model on the title menu, or directly in a game
// when opts.StartMode is set.
func NewAppModel(opts Options) *AppModel {
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Rules == (quiz.Rules{}) {
		opts.Rules = quiz.DefaultRules()
	}
	if opts.Animation == (animation.Settings{}) {
		opts.Animation = animation.DefaultSettings()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	m := &AppModel{
		opts:   opts,
		keys:   DefaultKeyMap(),
		logger: opts.Logger,
		now:    opts.Clock,
		prefs:  bitmode.DefaultPreferences(),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		pacer:  newFramePacer(opts.Runtime.FramePeriod(), opts.Clock()),
	}
	if opts.Prefs != nil {
		m.prefs = opts.Prefs.Normalize()
	}
	if opts.StartMode != nil {
		m.state = m.startGame(*opts.StartMode)
	} else {
		m.state = m.newMenu()
	}
	return m
}

func (m *AppModel) newMenu() menuState {
	return menuState{menu: NewMenu(m.prefs, m.opts.Animation, m.keys, animation.WithClock(m.now))}
}

// startGame opens the high-score table and creates a session for mode.
func (m *AppModel) startGame(mode bitmode.Mode) *playingState {
	seed := m.opts.Runtime.Seed
	if seed != 0 {
		seed += m.games
	}
	m.games++

	scores := highscore.Open(m.opts.Scores, m.logger)
	m.logger.Info("game started", "mode", mode.ID)
	return &playingState{
		session: quiz.NewSession(mode, scores, quiz.Options{
			Rules:  m.opts.Rules,
			Seed:   seed,
			Logger: m.logger,
		}),
	}
}

// Init starts the frame loop when the first screen needs it.
func (m *AppModel) Init() tea.Cmd {
	if m.polling() {
		return m.pacer.schedule(m.now())
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
	case FrameMsg:
		m.handleFrame()
	}

	if _, ok := m.state.(exitState); ok {
		return m, tea.Quit
	}
	if m.polling() {
		return m, m.pacer.schedule(m.now())
	}
	return m, nil
}

// polling reports whether the current screen needs timed frames.
func (m *AppModel) polling() bool {
	switch st := m.state.(type) {
	case menuState:
		return st.menu.Animating()
	case *playingState:
		return st.session.TimerRunning()
	case exitState:
		return false
	}
	return false
}

// handleFrame advances the running puzzle by the time since the last frame.
func (m *AppModel) handleFrame() {
	dt := m.pacer.step(m.now())
	if st, ok := m.state.(*playingState); ok {
		st.session.Advance(dt)
		m.afterGameUpdate(st)
	}
}

// handleKey dispatches one key. Ctrl+C and ctrl+s bypass the screens.
func (m *AppModel) handleKey(msg tea.KeyMsg) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.state = exitState{}
		return
	}
	if m.opts.ScreenshotDir != "" && key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return
	}
	if action == core.ActionNone {
		return
	}

	switch st := m.state.(type) {
	case menuState:
		switch st.menu.HandleAction(action) {
		case MenuStart:
			m.prefs = st.menu.Preferences()
			m.state = m.startGame(st.menu.SelectedMode())
		case MenuExit:
			m.prefs = st.menu.Preferences()
			m.state = exitState{}
		case MenuStay:
		}
	case *playingState:
		st.session.HandleAction(action)
		m.afterGameUpdate(st)
	case exitState:
	}
}

// afterGameUpdate records a finished game once and leaves the game when
// the player asked to.
func (m *AppModel) afterGameUpdate(st *playingState) {
	s := st.session
	if s.Finished() {
		if !st.recorded {
			st.recorded = true
			m.recordGame(s.Summary())
		}
	} else {
		st.recorded = false
	}

	if !s.ExitIntended() {
		return
	}
	if m.opts.StartMode != nil {
		m.state = exitState{}
		return
	}
	m.state = m.newMenu()
}

func (m *AppModel) recordGame(sum quiz.Summary) {
	m.logger.Info("game over",
		"mode", sum.Mode.ID,
		"score", sum.Score,
		"rounds", sum.Rounds,
		"max_streak", sum.MaxStreak,
		"new_high", sum.NewHighScore)
	if m.opts.History == nil {
		return
	}
	if _, err := m.opts.History.SaveGame(sum.Mode, sum.Score, sum.Rounds, sum.MaxStreak); err != nil {
		m.logger.Warn("failed to record game", "err", err)
	}
}

// render draws the current screen into the buffer.
func (m *AppModel) render() {
	m.screen.Clear()
	switch st := m.state.(type) {
	case menuState:
		st.menu.Render(m.screen)
	case *playingState:
		st.session.Render(m.screen)
	case exitState:
	}
}

// View renders the current state.
func (m *AppModel) View() string {
	if _, ok := m.state.(exitState); ok {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Preferences returns the menu preferences as of the last transition.
func (m *AppModel) Preferences() bitmode.Preferences {
	return m.prefs
}

// saveScreenshot writes the current screen as plain text.
func (m *AppModel) saveScreenshot() (string, error) {
	m.render()

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := "menu"
	if st, ok := m.state.(*playingState); ok {
		name = st.session.Mode().ID
	}
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("binbreak_%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// Run starts an interactive program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

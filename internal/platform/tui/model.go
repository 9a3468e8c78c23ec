package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
	"github.com/vovakirdan/real-or-ai/internal/core"
	"github.com/vovakirdan/real-or-ai/internal/quiz"
)

// Options configures a quiz run.
type Options struct {
	Source           catalog.Source
	Shuffle          bool
	Quiz             []quiz.Option
	Theme            Theme
	ShowInstructions bool
	CardWidth        int         // 0 fits cards to the terminal
	Logger           *log.Logger // nil discards
	RunID            string
}

// Model is the Bubble Tea model for playing a quiz.
type Model struct {
	session quiz.Session
	source  catalog.Source
	shuffle bool
	rng     *rand.Rand
	config  core.RuntimeConfig

	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	progress progress.Model
	theme    Theme

	cursor           int
	status           string
	statusID         int
	showInstructions bool
	cardWidth        int

	logger   *log.Logger
	runID    string
	quitting bool
}

// NewModel builds the catalog from opts.Source and starts a session.
// A zero seed in cfg is replaced with a time-based one.
func NewModel(cfg core.RuntimeConfig, opts Options) (Model, error) {
	cfg = cfg.ResolveSeed()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		source:           opts.Source,
		shuffle:          opts.Shuffle,
		rng:              cfg.NewRand(),
		config:           cfg,
		keys:             DefaultKeyMap(),
		help:             help.New(),
		progress:         progress.New(progress.WithGradient(string(colorBlue), string(colorGreen))),
		theme:            opts.Theme,
		showInstructions: opts.ShowInstructions,
		cardWidth:        opts.CardWidth,
		logger:           logger.With("run", opts.RunID),
		runID:            opts.RunID,
	}
	m.mapper = NewKeyMapper(m.keys)
	m.help.Width = cfg.ScreenW
	m.progress.Width = progressWidth(cfg.ScreenW)

	cat, err := m.buildCatalog()
	if err != nil {
		return Model{}, err
	}
	session, err := quiz.New(cat, opts.Quiz...)
	if err != nil {
		return Model{}, err
	}
	m.session = session

	m.logger.Info("session started",
		"catalog", cat.Title(),
		"levels", cat.Len(),
		"seed", cfg.Seed,
		"protocol", session.Options().Protocol,
		"end", session.Options().EndPolicy,
	)
	return m, nil
}

// buildCatalog builds a fresh catalog, shuffled when enabled.
func (m Model) buildCatalog() (*catalog.Catalog, error) {
	var rng catalog.Intner
	if m.shuffle {
		rng = m.rng
	}
	cat, err := m.source.Build(rng)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(m.mapper.MapKey(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = progressWidth(msg.Width)
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleInput applies one decoded key press.
func (m Model) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		score := m.session.Score()
		m.logger.Info("quit",
			"phase", m.session.Phase(),
			"levels_correct", score.LevelsCorrect,
			"levels_played", score.LevelsPlayed,
		)
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = moveCursor(m.cursor, in.Action, m.session.CurrentLevel())
		return m, nil

	case core.ActionToggle:
		return m.toggle(m.cursor)

	case core.ActionPick:
		if in.Index < m.session.CurrentLevel().Len() {
			m.cursor = in.Index
		}
		return m.toggle(in.Index)

	case core.ActionCheck:
		if m.session.Options().Protocol == quiz.ProtocolSinglePhase {
			return m.advance()
		}
		return m.check()

	case core.ActionNext:
		return m.advance()

	case core.ActionRestart:
		return m.restart()
	}

	return m, nil
}

func (m Model) toggle(i int) (tea.Model, tea.Cmd) {
	next, err := m.session.Toggle(i)
	if err != nil {
		return m.reject("toggle", err)
	}
	m.session = next
	m.logger.Debug("toggled", "level", next.State().LevelIndex, "image", i, "selected", next.State().Selected)
	return m, nil
}

func (m Model) check() (tea.Model, tea.Cmd) {
	next, err := m.session.Check()
	if err != nil {
		return m.reject("check", err)
	}
	m.session = next

	res, _ := next.LastResult()
	m.logger.Info("level checked",
		"level", res.LevelIndex,
		"title", res.Title,
		"selected", res.Selected,
		"correct", res.Perfect(),
	)
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	prev := m.session
	next, err := prev.Advance()
	if err != nil {
		return m.reject("advance", err)
	}
	m.session = next
	m.cursor = 0

	if prev.Phase() == quiz.PhaseSelecting {
		// Single-phase records on advance.
		if res, ok := next.LastResult(); ok {
			m.logger.Info("level answered", "level", res.LevelIndex, "title", res.Title, "correct", res.Perfect())
		}
	}

	switch {
	case next.Phase() == quiz.PhaseGameOver:
		score := next.Score()
		m.logger.Info("game over",
			"levels_correct", score.LevelsCorrect,
			"levels_played", score.LevelsPlayed,
			"accuracy", fmt.Sprintf("%.2f", score.Accuracy()),
		)
	case next.Round() != prev.Round():
		m.logger.Info("wrapped", "round", next.Round())
		return m.setStatus(fmt.Sprintf("Round %d: back to level 1", next.Round()+1))
	}
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	cat, err := m.buildCatalog()
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		return m.setStatus("Restart failed: " + err.Error())
	}
	next, err := m.session.Restart(cat)
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		return m.setStatus("Restart failed: " + err.Error())
	}

	m.session = next
	m.cursor = 0
	m.logger.Info("restarted", "levels", cat.Len())
	return m.setStatus("New game, images reshuffled")
}

// reject turns a refused transition into a status line. The session is
// left as it was.
func (m Model) reject(op string, err error) (tea.Model, tea.Cmd) {
	m.logger.Debug("rejected", "op", op, "phase", m.session.Phase(), "error", err)
	return m.setStatus(rejectMessage(op, m.session, err))
}

// rejectMessage explains a refused transition in player terms.
func rejectMessage(op string, s quiz.Session, err error) string {
	if errors.Is(err, quiz.ErrInvalidIndex) {
		return fmt.Sprintf("This level has only %d images", s.CurrentLevel().Len())
	}

	switch s.Phase() {
	case quiz.PhaseGameOver:
		return "Game over: press r to play again"
	case quiz.PhaseChecking:
		if op == "toggle" || op == "check" {
			return "Answers are locked: press n for the next level"
		}
	case quiz.PhaseSelecting:
		if s.State().Selected.IsEmpty() {
			return "Select images to check"
		}
		if op == "advance" {
			return "Check your answers first"
		}
	}
	return err.Error()
}

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	return m, clearStatusCmd(m.statusID, statusTimeout)
}

// moveCursor moves within the grid implied by the level layout.
func moveCursor(cursor int, a core.Action, lvl catalog.Level) int {
	n := lvl.Len()
	if n == 0 {
		return 0
	}
	cols := lvl.Layout().Columns()

	next := cursor
	switch a {
	case core.ActionLeft:
		next--
	case core.ActionRight:
		next++
	case core.ActionUp:
		next -= cols
	case core.ActionDown:
		next += cols
	}

	if next < 0 || next >= n {
		return cursor
	}
	return next
}

func progressWidth(screenW int) int {
	w := screenW - 20
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

// Session returns the current quiz session.
func (m Model) Session() quiz.Session {
	return m.session
}

// Cursor returns the index of the highlighted image.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and returns the final session.
func Run(cfg core.RuntimeConfig, opts Options) (quiz.Session, error) {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return quiz.Session{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return quiz.Session{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.session, nil
	}
	return m.session, nil
}

// SPDX-License-Identifier: MPL-2.0

// Package tui wires the Command Store, the dispatcher, and the screen
// renderer into a single github.com/charmbracelet/bubbletea program. The
// explicit input/dispatcher/renderer task architecture is layered inside
// Bubble Tea's own Update loop: every tea.KeyMsg is forwarded to a
// dispatcher goroutine over a buffered channel, which pushes back the
// resulting AppEvent over a second buffered channel for Update to apply
// under the state's lock.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/rvigo/cl/internal/clipboard"
	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/config"
	"github.com/rvigo/cl/internal/executor"
	"github.com/rvigo/cl/internal/store"
	"github.com/rvigo/cl/internal/tui/dispatch"
	"github.com/rvigo/cl/internal/tui/screen"
	"github.com/rvigo/cl/internal/tui/state"
)

// channelCapacity bounds the input and event channels; producers block
// when full, providing backpressure on the input path.
const channelCapacity = 16

// pollInterval drives the renderer's periodic re-draw tick, independent of
// key events, so clock-driven state (the yank indicator) stays current.
const pollInterval = 50 * time.Millisecond

const yankDuration = 3 * time.Second

type tickMsg time.Time

type eventMsg dispatch.AppEvent

// Model is the bubbletea model wiring the store, state, and dispatcher
// together.
type Model struct {
	store      *store.Store
	state      *state.State
	prefs      config.Preferences
	clipboard  clipboard.Provider
	executor   *executor.Executor
	logger     *log.Logger
	width      int
	height     int
	inputCh    chan dispatch.InputMessage
	eventCh    chan dispatch.AppEvent
	shouldQuit bool
	callback   *command.Command
}

// New builds a Model over s, seeded with cl's persisted preferences and an
// OS clipboard/executor.
func New(s *store.Store, prefs config.Preferences, clip clipboard.Provider, exec *executor.Executor, logger *log.Logger) *Model {
	return &Model{
		store:     s,
		state:     state.New(s),
		prefs:     prefs,
		clipboard: clip,
		executor:  exec,
		logger:    logger,
		inputCh:   make(chan dispatch.InputMessage, channelCapacity),
		eventCh:   make(chan dispatch.AppEvent, channelCapacity),
	}
}

// Init starts the dispatcher goroutine and schedules the first tick and
// event listen.
func (m *Model) Init() tea.Cmd {
	go m.runDispatcher()
	return tea.Batch(m.waitForEvent(), tickCmd())
}

// runDispatcher is the dispatcher task: it receives InputMessages, takes a
// read-only state snapshot, selects a handler, and forwards the resulting
// AppEvent. It never touches the state lock directly beyond Snapshot.
func (m *Model) runDispatcher() {
	for msg := range m.inputCh {
		snap := m.state.Snapshot()
		event := dispatch.Dispatch(msg.Key, snap)
		m.eventCh <- event
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-m.eventCh)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		m.inputCh <- dispatch.InputMessage{Key: msg}
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case eventMsg:
		cmd := m.applyEvent(dispatch.AppEvent(msg))
		if m.shouldQuit {
			return m, tea.Quit
		}
		return m, tea.Batch(cmd, m.waitForEvent())
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return screen.Render(m.state, m.width, m.height)
}

// Callback returns the command flagged to run after the terminal is
// restored, if the user pressed Enter on a selection before quitting.
func (m *Model) Callback() (command.Command, bool) {
	if m.callback == nil {
		return command.Command{}, false
	}
	return *m.callback, true
}

// Run launches the program on the real terminal and, if the user selected a
// command to run, executes it after the terminal is restored.
func Run(ctx context.Context, s *store.Store, prefs config.Preferences, clip clipboard.Provider, exec *executor.Executor, logger *log.Logger) error {
	m := New(s, prefs, clip, exec, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(*Model)
	if !ok {
		return nil
	}
	c, ok := final.Callback()
	if !ok {
		return nil
	}

	rendered := c.Command
	_, err = exec.Run(ctx, rendered, executor.Options{Quiet: prefs.QuietMode})
	return err
}

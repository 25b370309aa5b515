package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/minaorangina/sibyl/engine"
	"github.com/minaorangina/sibyl/game"
	"github.com/minaorangina/sibyl/protocol"
)

// snapshotMsg carries a session snapshot into the update loop
type snapshotMsg protocol.Snapshot

// turnDoneMsg reports a finished session turn
type turnDoneMsg struct {
	outcome engine.Outcome
	err     error
}

// Model is the terminal renderer for one session
type Model struct {
	session     *engine.Session
	unsubscribe func()
	snaps       chan protocol.Snapshot
	ctx         context.Context
	cancel      context.CancelFunc

	snap    protocol.Snapshot
	input   textinput.Model
	spinner spinner.Model
	cursor  int
	err     error
}

// NewModel attaches a renderer to session
func NewModel(session *engine.Session) *Model {
	input := textinput.New()
	input.Placeholder = "Ask the oracle a question..."
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Moon

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		session: session,
		snaps:   make(chan protocol.Snapshot, 1),
		ctx:     ctx,
		cancel:  cancel,
		snap:    session.Snapshot(),
		input:   input,
		spinner: spin,
		cursor:  game.CenterPile,
	}
	m.unsubscribe = session.Subscribe(m.notify)
	return m
}

// notify keeps only the latest snapshot so a slow terminal never stalls
// the session
func (m *Model) notify(snap protocol.Snapshot) {
	for {
		select {
		case m.snaps <- snap:
			return
		default:
		}
		select {
		case <-m.snaps:
		default:
		}
	}
}

func waitForActivity(snaps <-chan protocol.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-snaps)
	}
}

func (m *Model) turn(fn func(ctx context.Context) (engine.Outcome, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		out, err := fn(ctx)
		return turnDoneMsg{outcome: out, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForActivity(m.snaps))
}

func (m *Model) phase() string {
	return m.snap.Phase
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		m.setSnapshot(protocol.Snapshot(msg))
		if m.phase() == game.PhaseShuffling.String() {
			return m, tea.Batch(waitForActivity(m.snaps), m.spinner.Tick)
		}
		return m, waitForActivity(m.snaps)

	case turnDoneMsg:
		m.err = nil
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
		}
		m.setSnapshot(m.session.Snapshot())
		return m, nil

	case spinner.TickMsg:
		if m.phase() != game.PhaseShuffling.String() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.phase() == game.PhaseQuestion.String() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setSnapshot(snap protocol.Snapshot) {
	wasQuestion := m.phase() == game.PhaseQuestion.String()
	m.snap = snap

	if m.phase() == game.PhaseQuestion.String() && !wasQuestion {
		m.input.Reset()
		m.input.Focus()
		m.cursor = game.CenterPile
	}
	if m.phase() != game.PhaseQuestion.String() {
		m.input.Blur()
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.unsubscribe()
	return m, tea.Quit
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.phase() == game.PhaseQuestion.String() {
		switch msg.Type {
		case tea.KeyEsc:
			return m.quit()
		case tea.KeyEnter:
			question := m.input.Value()
			if strings.TrimSpace(question) == "" {
				m.err = engine.ErrEmptyQuestion
				return m, nil
			}
			m.err = nil
			return m, m.turn(func(ctx context.Context) (engine.Outcome, error) {
				return engine.Outcome{}, m.session.Begin(ctx, question)
			})
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m.quit()

	case "r":
		if err := m.session.Reset(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.setSnapshot(m.session.Snapshot())
		return m, nil
	}

	if m.phase() != game.PhasePlaying.String() {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.cursor = move(m.cursor, -1, 0)
	case "down", "j":
		m.cursor = move(m.cursor, 1, 0)
	case "left", "h":
		m.cursor = move(m.cursor, 0, -1)
	case "right", "l":
		m.cursor = move(m.cursor, 0, 1)
	case "enter", " ":
		pile := m.cursor
		return m, m.turn(func(ctx context.Context) (engine.Outcome, error) {
			return m.session.ClickPile(ctx, pile)
		})
	case "s":
		return m, m.turn(m.session.Step)
	case "a":
		return m, m.turn(m.session.AutoPlay)
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("✨ Sibyl's Oracle ✨"))
	b.WriteString("\n\n")

	switch m.phase() {
	case game.PhaseQuestion.String():
		b.WriteString(styleSubtitle.Render("Ask your question and the cards will reveal your fate..."))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case game.PhaseShuffling.String():
		b.WriteString(fmt.Sprintf("%s Shuffling the cards... the oracle is listening\n", m.spinner.View()))

	case game.PhasePlaying.String():
		b.WriteString(styleQuestion.Render(m.snap.Question))
		b.WriteString("\n")
		b.WriteString(renderBoard(m.snap, m.cursor))
		b.WriteString("\n")
		b.WriteString(m.hint())

	case game.PhaseResult.String():
		b.WriteString(m.resultView())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleError.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) hint() string {
	sel := m.snap.Selected
	if sel == nil || m.snap.Animating {
		return ""
	}
	return fmt.Sprintf("Place %s on %s", sel.Card.Label, pileLabel(sel.TargetPile))
}

func (m *Model) resultView() string {
	var b strings.Builder
	if m.snap.Result == game.Success.String() {
		b.WriteString(styleTitle.Render("The oracle has spoken!"))
	} else {
		b.WriteString(styleTitle.Render("Fate is uncertain"))
	}
	b.WriteString("\n\n")
	b.WriteString(styleQuestion.Render(m.snap.Question))
	b.WriteString("\n\n")
	if m.snap.Result == game.Success.String() {
		b.WriteString(styleYes.Render("✓ YES, it will come to pass"))
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render("Every card has been revealed. The universe is on your side."))
	} else {
		b.WriteString(styleNo.Render("✗ NO, it will not come to pass"))
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render("Some cards stay hidden. The path is not yet clear."))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) help() string {
	switch m.phase() {
	case game.PhaseQuestion.String():
		return "enter: consult the oracle • esc: quit"
	case game.PhasePlaying.String():
		return "←↑↓→/hjkl: move • enter: place • s: step • a: auto-play • r: reset • q: quit"
	case game.PhaseResult.String():
		return "r: ask again • q: quit"
	}
	return "q: quit"
}

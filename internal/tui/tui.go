package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"softypoker/pkg/deck"
	"softypoker/pkg/playable/videopoker"
	"softypoker/pkg/poker"
)

// logLines is how many event messages are shown under the table
const logLines = 8

const cardBack = "░░"

// Options configures the host
type Options struct {
	Player string
	// CashOutStep is the delay per credit when winnings are counted into the credits.
	// Zero shows the new credits immediately.
	CashOutStep time.Duration
	// DealDelay is the pause before each dealt or replaced card is turned face up.
	// Zero shows the cards immediately.
	DealDelay time.Duration
}

// countMsg advances the credit counter by one
type countMsg struct{}

// revealMsg turns the next face-down card up
type revealMsg struct{}

// Model is the Bubble Tea model hosting a single video poker session
type Model struct {
	session *videopoker.Session
	logger  logrus.FieldLogger
	options Options
	keys    keyMap
	help    help.Model

	gameLog []string
	// displayCredits trails the session credits while winnings are counted in
	displayCredits int
	counting       bool
	// faceDown holds the positions still waiting to be revealed, in reveal order
	faceDown  []int
	revealing bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a model and subscribes it to the session's events
func NewModel(session *videopoker.Session, logger logrus.FieldLogger, options Options) *Model {
	h := help.New()
	h.Styles.ShortKey = ActionsStyle
	h.Styles.ShortDesc = InfoStyle

	m := &Model{
		session:        session,
		logger:         logger.WithField("player", options.Player),
		options:        options,
		keys:           newKeyMap(),
		help:           h,
		gameLog:        []string{},
		displayCredits: session.Credits(),
	}

	m.keys.enableOnly(session.AvailableActions())
	session.Subscribe(m.onEvent)
	return m
}

func (m *Model) onEvent(e *videopoker.Event) {
	m.gameLog = append(m.gameLog, e.LogMessage().String())
	if count := len(m.gameLog); count > logLines {
		m.gameLog = m.gameLog[count-logLines:]
	}

	// debits show immediately, only winnings are counted in
	if e.Credits < m.displayCredits {
		m.displayCredits = e.Credits
	}

	if m.options.DealDelay <= 0 {
		return
	}

	switch e.Type {
	case videopoker.EventHandDealt:
		m.faceDown = m.faceDown[:0]
		for i := range e.Cards {
			m.faceDown = append(m.faceDown, i)
		}
	case videopoker.EventCardReplaced:
		m.faceDown = append(m.faceDown, e.Position)
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("SoftyPoker")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case countMsg:
		return m, m.count()

	case revealMsg:
		return m, m.reveal()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		// the table is busy until every card is face up
		if m.revealing {
			return m, nil
		}

		cmd, ok := m.keys.command(msg)
		if !ok {
			return m, nil
		}

		if m.session.Perform(cmd.action, cmd.position) {
			m.logger.WithField("action", cmd.action.String()).Debug("performed")
		}

		m.keys.enableOnly(m.session.AvailableActions())
		return m, tea.Batch(m.startRevealing(), m.startCounting())
	}

	return m, nil
}

// startCounting begins the credit animation if the credits went up
func (m *Model) startCounting() tea.Cmd {
	if m.counting || m.displayCredits >= m.session.Credits() {
		return nil
	}

	if m.options.CashOutStep <= 0 {
		m.displayCredits = m.session.Credits()
		return nil
	}

	m.counting = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.options.CashOutStep, func(time.Time) tea.Msg {
		return countMsg{}
	})
}

// count moves one credit from the winnings into the displayed credits
func (m *Model) count() tea.Cmd {
	credits := m.session.Credits()
	if m.displayCredits < credits {
		m.displayCredits++
	} else {
		m.displayCredits = credits
	}

	if m.displayCredits == credits {
		m.counting = false
		return nil
	}

	return m.tick()
}

// startRevealing begins turning cards face up if any are waiting
func (m *Model) startRevealing() tea.Cmd {
	if m.revealing || len(m.faceDown) == 0 {
		return nil
	}

	m.revealing = true
	return m.revealTick()
}

func (m *Model) revealTick() tea.Cmd {
	return tea.Tick(m.options.DealDelay, func(time.Time) tea.Msg {
		return revealMsg{}
	})
}

// reveal turns the next card face up
func (m *Model) reveal() tea.Cmd {
	if len(m.faceDown) > 0 {
		m.faceDown = m.faceDown[1:]
	}

	if len(m.faceDown) == 0 {
		m.revealing = false
		return nil
	}

	return m.revealTick()
}

func (m *Model) isFaceDown(position int) bool {
	for _, p := range m.faceDown {
		if p == position {
			return true
		}
	}

	return false
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.session.Snapshot()

	header := HeaderStyle.Render(fmt.Sprintf("SoftyPoker · %s", m.options.Player))
	sections := []string{
		header,
		m.renderPaytable(state),
		m.renderHand(state),
	}

	if state.Phase == videopoker.PhaseGambling {
		sections = append(sections, m.renderGamble(state))
	}

	sections = append(sections,
		m.renderStatus(state),
		m.help.View(m.keys),
		InfoStyle.Render(strings.Join(m.gameLog, "\n")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPaytable lists the payouts for the current bet and highlights the last win
func (m *Model) renderPaytable(state *videopoker.State) string {
	showWin := state.Phase == videopoker.PhaseBetting || state.Phase == videopoker.PhaseGameOver

	var content strings.Builder
	for _, row := range state.Payouts {
		line := fmt.Sprintf("%-16s %6d", row.Category, row.Payout)
		if showWin && row.Category == state.Category && state.Category != poker.NoWin {
			content.WriteString(WinningRowStyle.Render(line))
		} else {
			content.WriteString(PaytableStyle.Render(line))
		}

		content.WriteString("\n")
	}

	return strings.TrimSuffix(content.String(), "\n")
}

func (m *Model) renderHand(state *videopoker.State) string {
	if len(state.Hand) == 0 {
		return InfoStyle.Render("no cards dealt")
	}

	boxes := make([]string, len(state.Hand))
	for i, card := range state.Hand {
		label := InfoStyle.Render(fmt.Sprintf("%d", i+1))
		style := CardBoxStyle
		if card.Held && state.Phase == videopoker.PhaseDealt {
			label = HeldStyle.Render("HELD")
			style = HeldCardBoxStyle
		}

		face := renderCard(card)
		if m.isFaceDown(i) {
			face = CardBackStyle.Render(cardBack)
		}

		boxes[i] = lipgloss.JoinVertical(lipgloss.Center, style.Render(face), label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *Model) renderGamble(state *videopoker.State) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		CardBoxStyle.Render(renderCard(state.GambleCard)),
		WarningStyle.Render(fmt.Sprintf("  gambling %d: higher or lower?", state.GamblePrize)),
	)
}

func (m *Model) renderStatus(state *videopoker.State) string {
	status := fmt.Sprintf("Credits: %d  Bet: %d", m.displayCredits, state.Bet)
	if state.Phase == videopoker.PhaseGameOver {
		return lipgloss.JoinHorizontal(lipgloss.Top, CreditsStyle.Render(status), ErrorStyle.Render("  GAME OVER"))
	}

	if m.counting {
		return lipgloss.JoinHorizontal(lipgloss.Top, CreditsStyle.Render(status), WarningStyle.Render("  counting..."))
	}

	return CreditsStyle.Render(status)
}

func renderCard(card *deck.Card) string {
	if card.Suit.IsRed() {
		return RedCardStyle.Render(card.Pretty())
	}

	return BlackCardStyle.Render(card.Pretty())
}

// Run starts the program and blocks until the player quits
func Run(m *Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

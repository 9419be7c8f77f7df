package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"softypoker/internal/rng"
	"softypoker/pkg/playable/videopoker"
)

func newTestModel(t *testing.T, step time.Duration) (*Model, *videopoker.Session) {
	t.Helper()
	return newTestModelWithOptions(t, Options{Player: "Lucky Otter", CashOutStep: step})
}

func newTestModelWithOptions(t *testing.T, options Options) (*Model, *videopoker.Session) {
	t.Helper()

	opts := videopoker.DefaultOptions()
	opts.Generator = rng.NewSeeded(1)
	session, err := videopoker.NewSession(logrus.StandardLogger(), opts)
	require.NoError(t, err)

	return NewModel(session, logrus.StandardLogger(), options), session
}

func press(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestKeyMap_command(t *testing.T) {
	a := assert.New(t)

	keys := newKeyMap()
	keys.enableOnly([]videopoker.Action{videopoker.ActionToggleHold, videopoker.ActionRedraw})

	cmd, ok := keys.command(keyMsg("3"))
	a.True(ok)
	a.Equal(command{action: videopoker.ActionToggleHold, position: 2}, cmd)

	cmd, ok = keys.command(keyMsg("r"))
	a.True(ok)
	a.Equal(videopoker.ActionRedraw, cmd.action)

	// disabled bindings don't match
	_, ok = keys.command(keyMsg("d"))
	a.False(ok)

	keys.enableOnly([]videopoker.Action{videopoker.ActionCollect})
	cmd, ok = keys.command(keyMsg("c"))
	a.True(ok)
	a.Equal(videopoker.ActionCollect, cmd.action)

	keys.enableOnly([]videopoker.Action{
		videopoker.ActionGuessHigher,
		videopoker.ActionGuessLower,
		videopoker.ActionCashOut,
	})

	cmd, ok = keys.command(keyMsg("c"))
	a.True(ok)
	a.Equal(videopoker.ActionCashOut, cmd.action)

	cmd, ok = keys.command(keyMsg("right"))
	a.True(ok)
	a.Equal(videopoker.ActionGuessHigher, cmd.action)

	cmd, ok = keys.command(keyMsg("left"))
	a.True(ok)
	a.Equal(videopoker.ActionGuessLower, cmd.action)

	_, ok = keys.command(keyMsg("x"))
	a.False(ok)
}

func TestKeyMap_bindings(t *testing.T) {
	keys := newKeyMap()
	bindings := keys.bindings()
	for action := videopoker.ActionStart; action <= videopoker.ActionReset; action++ {
		assert.NotNil(t, bindings[action], action.String())
	}

	assert.Len(t, keys.FullHelp()[0], len(bindings)+1)
}

func TestModel_playRound(t *testing.T) {
	a := assert.New(t)

	m, session := newTestModel(t, 0)
	a.Equal(videopoker.PhaseIdle, session.Phase())
	a.Contains(m.View(), "start")

	press(m, "s")
	a.Equal(videopoker.PhaseBetting, session.Phase())

	press(m, "b")
	a.Equal(2, session.Bet())

	press(m, "d")
	a.Equal(videopoker.PhaseDealt, session.Phase())
	a.Equal(8, m.displayCredits)

	press(m, "1")
	press(m, "5")
	a.Equal([]int{0, 4}, session.Hand().HeldPositions())
	a.Contains(m.View(), "HELD")

	// not valid yet
	press(m, "c")
	a.Equal(videopoker.PhaseDealt, session.Phase())

	press(m, "r")
	a.Equal(videopoker.PhaseDrawn, session.Phase())

	press(m, "c")
	a.NotEqual(videopoker.PhaseDrawn, session.Phase())
	a.Equal(session.Credits(), m.displayCredits)
	a.False(m.counting)

	view := m.View()
	a.Contains(view, "SoftyPoker · Lucky Otter")
	a.Contains(view, "Super Royal")
	a.NotEmpty(m.gameLog)
}

func TestModel_gameLogIsCapped(t *testing.T) {
	m, _ := newTestModel(t, 0)
	press(m, "s")
	for i := 0; i < 20; i++ {
		press(m, "b")
	}

	assert.Len(t, m.gameLog, logLines)
}

func TestModel_countsWinnings(t *testing.T) {
	a := assert.New(t)

	m, session := newTestModel(t, time.Millisecond)
	a.Equal(10, m.displayCredits)

	// pretend three credits were just won
	m.displayCredits = session.Credits() - 3
	cmd := m.startCounting()
	a.NotNil(cmd)
	a.True(m.counting)
	a.Nil(m.startCounting())

	_, cmd = m.Update(countMsg{})
	a.NotNil(cmd)
	a.Equal(session.Credits()-2, m.displayCredits)
	a.Contains(m.View(), "counting...")

	_, cmd = m.Update(countMsg{})
	a.NotNil(cmd)
	_, cmd = m.Update(countMsg{})
	a.Nil(cmd)
	a.Equal(session.Credits(), m.displayCredits)
	a.False(m.counting)
}

func TestModel_revealsCardsOneAtATime(t *testing.T) {
	a := assert.New(t)

	m, session := newTestModelWithOptions(t, Options{Player: "Lucky Otter", DealDelay: time.Millisecond})
	press(m, "s")
	cmd := press(m, "d")
	a.NotNil(cmd)
	a.True(m.revealing)
	a.Equal([]int{0, 1, 2, 3, 4}, m.faceDown)
	a.Equal(5, strings.Count(m.View(), cardBack))

	// keys wait until every card is face up
	press(m, "1")
	a.Empty(session.Hand().HeldPositions())

	for left := 4; left > 0; left-- {
		_, cmd = m.Update(revealMsg{})
		a.NotNil(cmd)
		a.Len(m.faceDown, left)
		a.Equal(left, strings.Count(m.View(), cardBack))
	}

	_, cmd = m.Update(revealMsg{})
	a.Nil(cmd)
	a.False(m.revealing)
	a.NotContains(m.View(), cardBack)

	press(m, "1")
	press(m, "2")
	a.Equal([]int{0, 1}, session.Hand().HeldPositions())

	cmd = press(m, "r")
	a.NotNil(cmd)
	a.Equal(videopoker.PhaseDrawn, session.Phase())
	a.Equal([]int{2, 3, 4}, m.faceDown)
	a.Equal(3, strings.Count(m.View(), cardBack))

	for i := 0; i < 3; i++ {
		m.Update(revealMsg{})
	}

	a.False(m.revealing)
	a.Empty(m.faceDown)
}

func TestModel_noDealDelayShowsCards(t *testing.T) {
	m, _ := newTestModel(t, 0)
	press(m, "s")
	press(m, "d")

	assert.False(t, m.revealing)
	assert.Empty(t, m.faceDown)
	assert.NotContains(t, m.View(), cardBack)
}

func TestModel_quit(t *testing.T) {
	a := assert.New(t)

	m, _ := newTestModel(t, 0)
	cmd := press(m, "q")
	a.NotNil(cmd)
	a.True(m.quitting)
	a.Equal("", m.View())

	m, _ = newTestModel(t, 0)
	press(m, "esc")
	a.True(m.quitting)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, 0)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"softypoker/pkg/playable/videopoker"
)

// command is what a key press asks the session to do
type command struct {
	action   videopoker.Action
	position int
}

type keyMap struct {
	Start   key.Binding
	Bet     key.Binding
	Deal    key.Binding
	Hold    key.Binding
	Redraw  key.Binding
	Collect key.Binding
	Gamble  key.Binding
	Higher  key.Binding
	Lower   key.Binding
	CashOut key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Bet:     key.NewBinding(key.WithKeys("b", "+"), key.WithHelp("b", "bet")),
		Deal:    key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "deal")),
		Hold:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "hold")),
		Redraw:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redraw")),
		Collect: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collect")),
		Gamble:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gamble")),
		Higher:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "higher")),
		Lower:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "lower")),
		CashOut: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cash out")),
		Reset:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindings pairs each action with its key binding
func (k *keyMap) bindings() map[videopoker.Action]*key.Binding {
	return map[videopoker.Action]*key.Binding{
		videopoker.ActionStart:       &k.Start,
		videopoker.ActionIncreaseBet: &k.Bet,
		videopoker.ActionDeal:        &k.Deal,
		videopoker.ActionToggleHold:  &k.Hold,
		videopoker.ActionRedraw:      &k.Redraw,
		videopoker.ActionCollect:     &k.Collect,
		videopoker.ActionGamble:      &k.Gamble,
		videopoker.ActionGuessHigher: &k.Higher,
		videopoker.ActionGuessLower:  &k.Lower,
		videopoker.ActionCashOut:     &k.CashOut,
		videopoker.ActionReset:       &k.Reset,
	}
}

// enableOnly enables the bindings for the available actions
// Disabled bindings don't match and are left out of the help.
func (k *keyMap) enableOnly(actions []videopoker.Action) {
	available := make(map[videopoker.Action]bool, len(actions))
	for _, action := range actions {
		available[action] = true
	}

	for action, binding := range k.bindings() {
		binding.SetEnabled(available[action])
	}
}

// command maps a key press to a session command
// Only enabled bindings match, so "c" collects after the redraw and cashes out while gambling.
func (k keyMap) command(msg tea.KeyMsg) (command, bool) {
	switch {
	case key.Matches(msg, k.Start):
		return command{action: videopoker.ActionStart}, true
	case key.Matches(msg, k.Bet):
		return command{action: videopoker.ActionIncreaseBet}, true
	case key.Matches(msg, k.Deal):
		return command{action: videopoker.ActionDeal}, true
	case key.Matches(msg, k.Hold):
		return command{action: videopoker.ActionToggleHold, position: int(msg.String()[0] - '1')}, true
	case key.Matches(msg, k.Redraw):
		return command{action: videopoker.ActionRedraw}, true
	case key.Matches(msg, k.Collect):
		return command{action: videopoker.ActionCollect}, true
	case key.Matches(msg, k.CashOut):
		return command{action: videopoker.ActionCashOut}, true
	case key.Matches(msg, k.Gamble):
		return command{action: videopoker.ActionGamble}, true
	case key.Matches(msg, k.Higher):
		return command{action: videopoker.ActionGuessHigher}, true
	case key.Matches(msg, k.Lower):
		return command{action: videopoker.ActionGuessLower}, true
	case key.Matches(msg, k.Reset):
		return command{action: videopoker.ActionReset}, true
	}

	return command{}, false
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Start, k.Bet, k.Deal, k.Gamble, k.Hold, k.Redraw,
		k.Collect, k.Lower, k.Higher, k.CashOut, k.Reset, k.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package videopoker

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is a command the host sends on behalf of the player
type Action int

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(a),
		Name: a.String(),
	})
}

// Action constants
const (
	ActionStart Action = iota
	ActionIncreaseBet
	ActionDeal
	ActionToggleHold
	ActionRedraw
	ActionCollect
	ActionGamble
	ActionGuessHigher
	ActionGuessLower
	ActionCashOut
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionIncreaseBet:
		return "increase-bet"
	case ActionDeal:
		return "deal"
	case ActionToggleHold:
		return "toggle-hold"
	case ActionRedraw:
		return "redraw"
	case ActionCollect:
		return "collect"
	case ActionGamble:
		return "gamble"
	case ActionGuessHigher:
		return "guess-higher"
	case ActionGuessLower:
		return "guess-lower"
	case ActionCashOut:
		return "cash-out"
	case ActionReset:
		return "reset"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its name
func ActionFromString(action string) (Action, error) {
	s := strings.ToLower(strings.TrimSpace(action))
	for a := ActionStart; a <= ActionReset; a++ {
		if a.String() == s {
			return a, nil
		}
	}

	return -1, fmt.Errorf("invalid action: %s", action)
}

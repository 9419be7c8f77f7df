package videopoker

import (
	"softypoker/pkg/deck"
	"softypoker/pkg/poker"
)

// State is a read-only view of the session for hosts
type State struct {
	SessionID   string            `json:"sessionId"`
	Phase       Phase             `json:"phase"`
	Bet         int               `json:"bet"`
	Credits     int               `json:"credits"`
	Prize       int               `json:"prize"`
	Category    poker.Category    `json:"category"`
	Hand        deck.Hand         `json:"hand"`
	CardsLeft   int               `json:"cardsLeft"`
	GambleCard  *deck.Card        `json:"gambleCard,omitempty"`
	GamblePrize int               `json:"gamblePrize"`
	Actions     []Action          `json:"actions"`
	Payouts     []poker.PayoutRow `json:"payouts"`
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() *State {
	state := &State{
		SessionID: s.ID,
		Phase:     s.phase,
		Bet:       s.bet,
		Credits:   s.credits,
		Prize:     s.prize,
		Category:  s.category,
		Hand:      s.hand.Clone(),
		CardsLeft: s.deck.CardsLeft(),
		Actions:   s.AvailableActions(),
		Payouts:   s.options.Paytable.Table(s.bet),
	}

	if s.phase == PhaseGambling {
		state.GambleCard = s.gamble.Current().Clone()
		state.GamblePrize = s.gamble.Prize()
	}

	return state
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Credits returns the current credits
func (s *Session) Credits() int {
	return s.credits
}

// Bet returns the current bet
func (s *Session) Bet() int {
	return s.bet
}

// Hand returns a copy of the current hand
func (s *Session) Hand() deck.Hand {
	return s.hand.Clone()
}

// Paytable returns the session's paytable
func (s *Session) Paytable() poker.Paytable {
	return s.options.Paytable
}

// AvailableActions returns every action that would change the state right now
// ActionToggleHold is listed once and applies to any position.
func (s *Session) AvailableActions() []Action {
	actions := make([]Action, 0, 3)
	for action := ActionStart; action <= ActionReset; action++ {
		if s.checkAction(action) == nil {
			actions = append(actions, action)
		}
	}

	return actions
}

// CanPerform returns true if the action would change the state
func (s *Session) CanPerform(action Action) bool {
	return s.checkAction(action) == nil
}

package videopoker

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"softypoker/pkg/deck"
	"softypoker/pkg/playable"
	"softypoker/pkg/poker"
)

// eventLogLimit is how many events a session keeps for Events()
const eventLogLimit = 25

// EventType identifies what happened
type EventType string

// EventType constants
const (
	EventGameStarted          EventType = "game-started"
	EventBetChanged           EventType = "bet-changed"
	EventHandDealt            EventType = "hand-dealt"
	EventHoldToggled          EventType = "hold-toggled"
	EventCardReplaced         EventType = "card-replaced"
	EventPrizeAwarded         EventType = "prize-awarded"
	EventGameOverReached      EventType = "game-over-reached"
	EventGameReset            EventType = "game-reset"
	EventGamblingStarted      EventType = "gambling-started"
	EventGamblingCardRevealed EventType = "gambling-card-revealed"
	EventGamblingCashedOut    EventType = "gambling-cashed-out"
	EventGamblingLost         EventType = "gambling-lost"
)

// Event is emitted after every state change
// Hosts render and play sounds from events; nothing flows back into the session.
type Event struct {
	ID       string            `json:"id"`
	Type     EventType         `json:"type"`
	Time     time.Time         `json:"time"`
	Bet      int               `json:"bet,omitempty"`
	Credits  int               `json:"credits"`
	Cards    []*deck.Card      `json:"cards,omitempty"`
	Position int               `json:"position"`
	Card     *deck.Card        `json:"card,omitempty"`
	Amount   int               `json:"amount,omitempty"`
	Category poker.Category    `json:"category"`
	Correct  bool              `json:"correct,omitempty"`
	Held     bool              `json:"held,omitempty"`
	Payouts  []poker.PayoutRow `json:"payouts,omitempty"`
}

func newEvent(eventType EventType) *Event {
	return &Event{
		ID:   uuid.New().String(),
		Type: eventType,
		Time: time.Now(),
	}
}

// LogMessage renders the event for a host's message log
func (e *Event) LogMessage() *playable.LogMessage {
	var msg *playable.LogMessage
	switch e.Type {
	case EventGameStarted:
		msg = playable.SimpleLogMessage("game started with %d credits", e.Credits)
	case EventBetChanged:
		msg = playable.SimpleLogMessage("bet is now %d", e.Bet)
	case EventHandDealt:
		msg = playable.SimpleLogMessage("dealt for %d", e.Bet).WithCards(e.Cards...)
	case EventHoldToggled:
		if e.Held {
			msg = playable.SimpleLogMessage("holding card %d", e.Position+1).WithCards(e.Card)
		} else {
			msg = playable.SimpleLogMessage("released card %d", e.Position+1).WithCards(e.Card)
		}
	case EventCardReplaced:
		msg = playable.SimpleLogMessage("card %d replaced", e.Position+1).WithCards(e.Card)
	case EventPrizeAwarded:
		if e.Amount > 0 {
			msg = playable.SimpleLogMessage("%s pays %d", e.Category, e.Amount)
		} else {
			msg = playable.SimpleLogMessage("no win")
		}
	case EventGameOverReached:
		msg = playable.SimpleLogMessage("game over")
	case EventGameReset:
		msg = playable.SimpleLogMessage("new game with %d credits", e.Credits)
	case EventGamblingStarted:
		msg = playable.SimpleLogMessage("gambling %d", e.Amount).WithCards(e.Card)
	case EventGamblingCardRevealed:
		if e.Correct {
			msg = playable.SimpleLogMessage("correct, prize is now %d", e.Amount).WithCards(e.Card)
		} else {
			msg = playable.SimpleLogMessage("wrong guess").WithCards(e.Card)
		}
	case EventGamblingCashedOut:
		msg = playable.SimpleLogMessage("cashed out %d", e.Amount)
	case EventGamblingLost:
		msg = playable.SimpleLogMessage("prize lost")
	default:
		panic(fmt.Sprintf("unknown event type: %s", e.Type))
	}

	msg.UUID = e.ID
	msg.Time = e.Time
	return msg
}

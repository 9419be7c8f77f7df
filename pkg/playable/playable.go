package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"softypoker/pkg/deck"
)

// LogMessage is the format a game hands to a host for its message log
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// WithCards attaches the cards to the message
func (l *LogMessage) WithCards(cards ...*deck.Card) *LogMessage {
	l.Cards = cards
	return l
}

// String returns the message with any cards appended
func (l *LogMessage) String() string {
	if len(l.Cards) == 0 {
		return l.Message
	}

	return fmt.Sprintf("%s [%s]", l.Message, deck.CardsToString(l.Cards))
}

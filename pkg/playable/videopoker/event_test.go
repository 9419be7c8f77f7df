package videopoker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"softypoker/pkg/deck"
	"softypoker/pkg/poker"
)

func TestEvent_LogMessage(t *testing.T) {
	a := assert.New(t)

	e := newEvent(EventHandDealt)
	e.Bet = 2
	e.Cards = deck.CardsFromString("2c,3d,4h,5s,7c")
	msg := e.LogMessage()
	a.Equal(e.ID, msg.UUID)
	a.Equal(e.Time, msg.Time)
	a.Equal("dealt for 2", msg.Message)
	a.Len(msg.Cards, 5)

	e = newEvent(EventHoldToggled)
	e.Position = 2
	e.Held = true
	e.Card = deck.CardFromString("4h")
	a.Equal("holding card 3", e.LogMessage().Message)

	e.Held = false
	a.Equal("released card 3", e.LogMessage().Message)

	e = newEvent(EventPrizeAwarded)
	e.Amount = 36
	e.Category = poker.FullHouse
	a.Equal("Full House pays 36", e.LogMessage().Message)

	e.Amount = 0
	e.Category = poker.NoWin
	a.Equal("no win", e.LogMessage().Message)

	e = newEvent(EventGamblingCardRevealed)
	e.Card = deck.CardFromString("ks")
	e.Correct = true
	e.Amount = 80
	a.Equal("correct, prize is now 80", e.LogMessage().Message)

	e.Correct = false
	a.Equal("wrong guess", e.LogMessage().Message)

	e = newEvent(EventType("bogus"))
	a.PanicsWithValue("unknown event type: bogus", func() {
		e.LogMessage()
	})
}

func TestEvent_LogMessage_everyType(t *testing.T) {
	types := []EventType{
		EventGameStarted,
		EventBetChanged,
		EventHandDealt,
		EventHoldToggled,
		EventCardReplaced,
		EventPrizeAwarded,
		EventGameOverReached,
		EventGameReset,
		EventGamblingStarted,
		EventGamblingCardRevealed,
		EventGamblingCashedOut,
		EventGamblingLost,
	}

	for _, eventType := range types {
		e := newEvent(eventType)
		e.Card = deck.CardFromString("ah")
		assert.NotEmpty(t, e.LogMessage().Message, eventType)
	}
}

func TestEvent_MarshalJSON_firstPosition(t *testing.T) {
	a := assert.New(t)

	e := newEvent(EventCardReplaced)
	e.Position = 0
	e.Card = deck.CardFromString("as")

	data, err := json.Marshal(e)
	a.NoError(err)

	var decoded map[string]interface{}
	a.NoError(json.Unmarshal(data, &decoded))
	a.Contains(decoded, "position")
	a.Equal(float64(0), decoded["position"])
}

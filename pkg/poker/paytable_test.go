package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"softypoker/pkg/deck"
)

func TestStandard(t *testing.T) {
	a := assert.New(t)
	p := Standard()

	a.Equal(deck.Hearts, p.PremiumSuit())
	a.Equal([]Category{
		SuperRoyal, RoyalFlush, StraightFlush, FourOfAKind, FullHouse,
		Flush, Straight, ThreeOfAKind, TwoPair, JacksOrBetter,
	}, p.Categories())
	a.Equal(0, p.Multiplier(NoWin))
}

func TestPaytable_Table(t *testing.T) {
	p := Standard()

	rows := p.Table(2)
	assert.Len(t, rows, 10)
	assert.Equal(t, PayoutRow{Category: SuperRoyal, Payout: 672}, rows[0])
	assert.Equal(t, PayoutRow{Category: JacksOrBetter, Payout: 2}, rows[9])

	// pure function of the bet
	assert.Equal(t, p.Table(3), p.Table(3))
}

func TestNewPaytable(t *testing.T) {
	multipliers := map[Category]int{Flush: 5}
	p := NewPaytable(multipliers, deck.Clubs)

	// mutating the input does not change the table
	multipliers[Flush] = 100
	assert.Equal(t, 5, p.Multiplier(Flush))
	assert.Equal(t, []Category{Flush}, p.Categories())

	assert.PanicsWithValue(t, "negative multiplier for Flush", func() {
		NewPaytable(map[Category]int{Flush: -1}, deck.Clubs)
	})
}

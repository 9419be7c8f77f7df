package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"softypoker/internal/rng"
	"softypoker/pkg/deck"
)

func TestPaytable_Evaluate(t *testing.T) {
	tests := []struct {
		hand     string
		bet      int
		prize    int
		category Category
	}{
		{"TH,JH,QH,KH,AH", 1, 336, SuperRoyal},
		{"AH,KH,QH,JH,TH", 5, 1680, SuperRoyal},
		{"TS,JS,QS,KS,AS", 1, 198, RoyalFlush},
		{"5H,6H,7H,8H,9H", 2, 268, StraightFlush},
		{"AD,2D,3D,4D,5D", 1, 134, StraightFlush},
		{"2C,2D,2H,2S,9D", 1, 72, FourOfAKind},
		{"3C,3D,3H,9S,9D", 1, 36, FullHouse},
		{"2C,5C,9C,JC,KC", 1, 19, Flush},
		{"4H,5D,6C,7S,8H", 1, 11, Straight},
		{"AC,2D,3H,4S,5C", 1, 11, Straight},
		{"TC,JD,QH,KS,AC", 1, 11, Straight},
		{"JH,JD,JS,4C,7D", 1, 7, ThreeOfAKind},
		{"JH,JD,4C,4S,7D", 1, 3, TwoPair},
		{"JH,JD,4C,5S,7D", 1, 1, JacksOrBetter},
		{"AH,AD,4C,5S,7D", 3, 3, JacksOrBetter},
		{"TH,TD,4C,5S,7D", 1, 0, NoWin},
		{"2H,3D,4C,5S,9D", 1, 0, NoWin},
		{"QC,KD,AH,2S,3C", 1, 0, NoWin},
	}

	p := Standard()
	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			prize, cat, err := p.Evaluate(deck.CardsFromString(tt.hand), tt.bet)
			assert.NoError(t, err)
			assert.Equal(t, tt.category, cat)
			assert.Equal(t, tt.prize, prize)
		})
	}
}

func TestPaytable_Evaluate_malformed(t *testing.T) {
	a := assert.New(t)
	p := Standard()

	for _, hand := range []string{"", "TH,JH,QH,KH", "TH,JH,QH,KH,AH,2C"} {
		cards := deck.CardsFromString(hand)
		prize, cat, err := p.Evaluate(cards, 1)
		a.Equal(0, prize)
		a.Equal(NoWin, cat)

		var malformed *MalformedHandError
		a.True(errors.As(err, &malformed))
		a.Equal(len(cards), malformed.Size)
	}

	_, _, err := p.Evaluate(deck.CardsFromString("TH,JH,QH,KH,AH"), 0)
	a.EqualError(err, "bet must be > 0, got 0")
}

func TestPaytable_Evaluate_deterministic(t *testing.T) {
	p := Standard()
	d := deck.New(rng.NewSeeded(5))

	for i := 0; i < 500; i++ {
		d.Shuffle()
		hand := d.Cards[:5]
		cat, err := Classify(hand, deck.Hearts)
		assert.NoError(t, err)

		for bet := 1; bet <= 5; bet++ {
			prize, cat2, err := p.Evaluate(hand, bet)
			assert.NoError(t, err)
			assert.Equal(t, cat, cat2)
			assert.Equal(t, p.Multiplier(cat)*bet, prize)
		}
	}
}

func TestHandAnalyzer_Getters(t *testing.T) {
	a := assert.New(t)

	h, err := NewHandAnalyzer(deck.CardsFromString("3C,3D,3H,9S,9D"), deck.Hearts)
	a.NoError(err)
	fh, ok := h.GetFullHouse()
	a.True(ok)
	a.Equal([]int{3, 9}, fh)
	_, ok = h.GetThreeOfAKind()
	a.False(ok)

	h, _ = NewHandAnalyzer(deck.CardsFromString("KH,KD,4C,4S,7D"), deck.Hearts)
	tp, ok := h.GetTwoPair()
	a.True(ok)
	a.Equal([]int{13, 4}, tp)
	_, ok = h.GetHighPair()
	a.False(ok)

	h, _ = NewHandAnalyzer(deck.CardsFromString("2C,2D,2H,2S,9D"), deck.Hearts)
	r, ok := h.GetFourOfAKind()
	a.True(ok)
	a.Equal(2, r)

	h, _ = NewHandAnalyzer(deck.CardsFromString("AC,2D,3H,4S,5C"), deck.Hearts)
	a.True(h.IsStraight())
	a.False(h.IsFlush())
	a.False(h.GetRoyalFlush())

	// ace wraps only at the bottom
	h, _ = NewHandAnalyzer(deck.CardsFromString("QC,KD,AH,2S,3C"), deck.Hearts)
	a.False(h.IsStraight())

	// premium suit is configurable on the analyzer
	h, _ = NewHandAnalyzer(deck.CardsFromString("TS,JS,QS,KS,AS"), deck.Spades)
	a.Equal(SuperRoyal, h.GetCategory())
}

func TestClassify_wheel(t *testing.T) {
	tests := []struct {
		hand     string
		category Category
	}{
		{"5C,AD,3H,2S,4C", Straight},
		{"AD,2D,3D,4D,5D", StraightFlush},
		{"AC,2D,3H,4S,6C", NoWin},
		{"AC,KD,3H,4S,5C", NoWin},
		{"2C,3D,4H,5S,6C", Straight},
	}

	for _, test := range tests {
		category, err := Classify(deck.CardsFromString(test.hand), deck.Hearts)
		assert.NoError(t, err, test.hand)
		assert.Equal(t, test.category, category, test.hand)
	}
}

package poker

import (
	"fmt"

	"softypoker/pkg/deck"
)

// Paytable maps each paying category to its multiplier
// A Paytable is immutable once built; the zero value pays nothing.
type Paytable struct {
	multipliers map[Category]int
	premium     deck.Suit
}

// PayoutRow is a single line of the displayed paytable for a bet
type PayoutRow struct {
	Category Category `json:"category"`
	Payout   int      `json:"payout"`
}

// NewPaytable returns a paytable for the multipliers
// Royal flushes in the premium suit pay the SuperRoyal multiplier.
func NewPaytable(multipliers map[Category]int, premium deck.Suit) Paytable {
	m := make(map[Category]int, len(multipliers))
	for cat, mult := range multipliers {
		if mult < 0 {
			panic(fmt.Sprintf("negative multiplier for %s", cat))
		}

		m[cat] = mult
	}

	return Paytable{
		multipliers: m,
		premium:     premium,
	}
}

// Standard returns the fixed SoftyPoker paytable
func Standard() Paytable {
	return NewPaytable(map[Category]int{
		SuperRoyal:    336,
		RoyalFlush:    198,
		StraightFlush: 134,
		FourOfAKind:   72,
		FullHouse:     36,
		Flush:         19,
		Straight:      11,
		ThreeOfAKind:  7,
		TwoPair:       3,
		JacksOrBetter: 1,
	}, deck.Hearts)
}

// PremiumSuit returns the suit a royal flush must be in to be a SuperRoyal
func (p Paytable) PremiumSuit() deck.Suit {
	return p.premium
}

// Multiplier returns the multiplier for the category
func (p Paytable) Multiplier(cat Category) int {
	return p.multipliers[cat]
}

// Payout returns multiplier × bet
func (p Paytable) Payout(cat Category, bet int) int {
	return p.Multiplier(cat) * bet
}

// Categories returns the paying categories, best first
func (p Paytable) Categories() []Category {
	cats := make([]Category, 0, len(p.multipliers))
	for cat := SuperRoyal; cat > NoWin; cat-- {
		if p.multipliers[cat] > 0 {
			cats = append(cats, cat)
		}
	}

	return cats
}

// Table returns the displayed payout for each paying category at the bet
func (p Paytable) Table(bet int) []PayoutRow {
	cats := p.Categories()
	rows := make([]PayoutRow, len(cats))
	for i, cat := range cats {
		rows[i] = PayoutRow{
			Category: cat,
			Payout:   p.Payout(cat, bet),
		}
	}

	return rows
}

// Evaluate classifies the hand and returns the prize for the bet
func (p Paytable) Evaluate(cards []*deck.Card, bet int) (int, Category, error) {
	if bet <= 0 {
		return 0, NoWin, fmt.Errorf("bet must be > 0, got %d", bet)
	}

	cat, err := Classify(cards, p.premium)
	if err != nil {
		return 0, NoWin, err
	}

	return p.Payout(cat, bet), cat, nil
}

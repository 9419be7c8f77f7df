package poker

import (
	"encoding/json"
	"fmt"
)

// Category is a paying hand category, i.e., Royal Flush
// Higher values beat lower values.
type Category int

// Category constants
const (
	NoWin Category = iota
	JacksOrBetter
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	SuperRoyal
)

// String returns the display name used on the paytable
func (c Category) String() string {
	switch c {
	case NoWin:
		return "No Win"
	case JacksOrBetter:
		return "Jacks or Better"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	case SuperRoyal:
		return "Super Royal"
	}

	panic(fmt.Sprintf("unknown category: %d", c))
}

// MarshalJSON encodes the category with its display name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(c),
		Name: c.String(),
	})
}

// IsWin returns true if the category pays anything
func (c Category) IsWin() bool {
	return c > NoWin
}

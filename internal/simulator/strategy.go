package simulator

import (
	"fmt"

	"softypoker/pkg/deck"
	"softypoker/pkg/poker"
)

// ChooseHolds returns the positions a simple player would hold
// Made hands of a straight or better are held whole. Otherwise any pairs are
// kept, then four to a flush, then jacks or better.
func ChooseHolds(hand deck.Hand, premium deck.Suit) []int {
	category, err := poker.Classify(hand, premium)
	if err != nil {
		panic(fmt.Sprintf("could not classify dealt hand %s: %v", hand, err))
	}

	if category >= poker.Straight {
		return []int{0, 1, 2, 3, 4}
	}

	rankCounts := make(map[int]int)
	suitCounts := make(map[deck.Suit]int)
	for _, card := range hand {
		rankCounts[card.Rank]++
		suitCounts[card.Suit]++
	}

	holds := make([]int, 0, len(hand))
	for i, card := range hand {
		if rankCounts[card.Rank] >= 2 {
			holds = append(holds, i)
		}
	}

	if len(holds) > 0 {
		return holds
	}

	for suit, count := range suitCounts {
		if count == 4 {
			for i, card := range hand {
				if card.Suit == suit {
					holds = append(holds, i)
				}
			}

			return holds
		}
	}

	for i, card := range hand {
		if card.Rank >= deck.Jack {
			holds = append(holds, i)
		}
	}

	return holds
}

// GuessHigher returns the guess a simple player makes against the card
func GuessHigher(card *deck.Card) bool {
	return card.Rank < 8
}

package deck

// Hand represents a collection of cards
type Hand []*Card

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c != nil && c.Equal(card) {
			return true
		}
	}

	return false
}

// HeldPositions returns the positions of all held cards
func (h Hand) HeldPositions() []int {
	positions := make([]int, 0, len(h))
	for i, c := range h {
		if c.Held {
			positions = append(positions, i)
		}
	}

	return positions
}

// ClearHolds unsets the held flag on every card
func (h Hand) ClearHolds() {
	for _, c := range h {
		c.Held = false
	}
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a deep copy of the hand
// The cards are copied so the clone can be handed to callers that must not mutate the original.
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		if c != nil {
			h2[i] = c.Clone()
		}
	}

	return h2
}

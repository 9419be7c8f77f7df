package poker

import (
	"sort"

	"softypoker/pkg/deck"
)

// HandAnalyzer classifies a five-card video poker hand
type HandAnalyzer struct {
	cards      []*deck.Card
	premium    deck.Suit
	rankCounts map[int]int
	suitCounts map[deck.Suit]int
	// rank values sorted ascending, ace high
	values   []int
	flush    bool
	straight bool

	category Category
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// A royal flush in the premium suit is classified as a SuperRoyal.
func NewHandAnalyzer(cards []*deck.Card, premium deck.Suit) (*HandAnalyzer, error) {
	if len(cards) != HandSize {
		return nil, &MalformedHandError{Size: len(cards)}
	}

	newCards := make([]*deck.Card, len(cards))
	copy(newCards, cards)

	h := &HandAnalyzer{
		cards:   newCards,
		premium: premium,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()

	return h, nil
}

// Classify returns the category for the five cards
func Classify(cards []*deck.Card, premium deck.Suit) (Category, error) {
	h, err := NewHandAnalyzer(cards, premium)
	if err != nil {
		return NoWin, err
	}

	return h.GetCategory(), nil
}

// analyzeHand builds the rank and suit frequencies
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.rankCounts = make(map[int]int, HandSize)
	h.suitCounts = make(map[deck.Suit]int, 4)
	h.values = make([]int, 0, HandSize)

	for _, card := range h.cards {
		h.rankCounts[card.Rank]++
		h.suitCounts[card.Suit]++
		h.values = append(h.values, card.Rank)
	}

	sort.Ints(h.values)

	h.flush = len(h.suitCounts) == 1

	// five distinct ranks means there can't be any pairs
	if len(h.rankCounts) == HandSize {
		h.straight = h.values[HandSize-1]-h.values[0] == 4 || h.isWheel()
	}
}

// isWheel returns true for A-2-3-4-5, the only run where the ace counts as one
// Only valid when all five ranks are distinct.
func (h *HandAnalyzer) isWheel() bool {
	low := make([]int, 0, HandSize)
	for _, card := range h.cards {
		low = append(low, card.AceLowRank())
	}

	sort.Ints(low)
	return low[0] == deck.LowAce && low[HandSize-1]-low[0] == 4
}

// calculateCategory determines the category in strict descending precedence
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	if h.GetRoyalFlush() {
		if h.cards[0].Suit == h.premium {
			h.category = SuperRoyal
		} else {
			h.category = RoyalFlush
		}
	} else if h.flush && h.straight {
		h.category = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.category = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.category = FullHouse
	} else if h.flush {
		h.category = Flush
	} else if h.straight {
		h.category = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.category = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.category = TwoPair
	} else if _, ok := h.GetHighPair(); ok {
		h.category = JacksOrBetter
	} else {
		h.category = NoWin
	}
}

// GetCategory returns the paying category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// IsFlush returns true if all five cards share a suit
func (h *HandAnalyzer) IsFlush() bool {
	return h.flush
}

// IsStraight returns true if the five ranks form a run (including the wheel)
func (h *HandAnalyzer) IsStraight() bool {
	return h.straight
}

// GetRoyalFlush will return true if there's a royal flush in any suit
func (h *HandAnalyzer) GetRoyalFlush() bool {
	if !h.flush || len(h.rankCounts) != HandSize {
		return false
	}

	for rank := deck.Ten; rank <= deck.Ace; rank++ {
		if h.rankCounts[rank] != 1 {
			return false
		}
	}

	return true
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	ranks := h.ranksWithCount(4)
	if len(ranks) == 1 {
		return ranks[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	trips := h.ranksWithCount(3)
	pairs := h.ranksWithCount(2)
	if len(trips) == 1 && len(pairs) == 1 {
		return []int{trips[0], pairs[0]}, true
	}

	return nil, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
// A full house does not count as three of a kind.
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	trips := h.ranksWithCount(3)
	if len(trips) == 1 && len(h.ranksWithCount(2)) == 0 {
		return trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the two pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	pairs := h.ranksWithCount(2)
	if len(pairs) == 2 {
		return pairs, true
	}

	return nil, false
}

// GetHighPair will return the rank of a pair of jacks or better, if possible
func (h *HandAnalyzer) GetHighPair() (int, bool) {
	pairs := h.ranksWithCount(2)
	if len(pairs) == 1 && pairs[0] >= deck.Jack {
		return pairs[0], true
	}

	return 0, false
}

// ranksWithCount returns every rank appearing exactly n times, highest first
func (h *HandAnalyzer) ranksWithCount(n int) []int {
	ranks := make([]int, 0, 2)
	for rank, count := range h.rankCounts {
		if count == n {
			ranks = append(ranks, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

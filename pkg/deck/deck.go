package deck

import (
	"errors"

	"softypoker/internal/rng"
)

// ErrEmptyDeck is an error when Draw() is attempted and there are no more cards
var ErrEmptyDeck = errors.New("deck is empty")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// Cards are dealt from the end of the slice.
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits() {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle discards whatever is left of the deck, builds a full deck and shuffles it
func (d *Deck) Shuffle() {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes and returns the last card in the deck
// If there are no more cards, an ErrEmptyDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEmptyDeck
	}

	card := d.Cards[n-1]
	d.Cards[n-1] = nil
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// RemoveCard removes the card from the deck
// Returns true if the card was found
func (d *Deck) RemoveCard(card *Card) bool {
	for i, c := range d.Cards {
		if c.Equal(card) {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return true
		}
	}

	return false
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// IsEmpty returns true if there are no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}

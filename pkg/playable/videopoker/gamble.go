package videopoker

import (
	"fmt"

	"softypoker/internal/rng"
	"softypoker/pkg/deck"
)

// Gamble is the high-low double-or-nothing game
// It owns its own deck, separate from the round deck, and lives for the rest of the session.
type Gamble struct {
	deck    *deck.Deck
	current *deck.Card
	// ranks already shown that must not come up on the next reveal
	usedRanks map[int]bool
	prize     int
	rebuilds  int
}

func newGamble(gen rng.Generator) *Gamble {
	d := deck.New(gen)
	d.Shuffle()

	current, err := d.Draw()
	if err != nil {
		panic(fmt.Sprintf("fresh gamble deck could not draw: %v", err))
	}

	return &Gamble{
		deck:      d,
		current:   current,
		usedRanks: make(map[int]bool),
	}
}

// Current returns the card the next guess is compared against
func (g *Gamble) Current() *deck.Card {
	return g.current
}

// Prize returns the amount currently at risk
func (g *Gamble) Prize() int {
	return g.prize
}

// CardsLeft returns the number of cards left in the gamble deck
func (g *Gamble) CardsLeft() int {
	return g.deck.CardsLeft()
}

// rebuild starts a fresh gamble deck
// The current card stays in play, so it is taken back out of the new deck.
// The arcade game drew a new current card from the fresh deck instead; keeping it
// means the card the player guessed against never changes under them.
func (g *Gamble) rebuild() {
	g.deck.Shuffle()
	g.deck.RemoveCard(g.current)
	g.usedRanks = make(map[int]bool)
	g.rebuilds++
}

// isUsed returns true if the rank can't be revealed next
// The current rank is always excluded so a reveal can never tie.
func (g *Gamble) isUsed(rank int) bool {
	return rank == g.current.Rank || g.usedRanks[rank]
}

// drawUnused draws until it finds a rank that hasn't been used
// Attempts are bounded by the deck size; when the bound is hit the deck is rebuilt.
func (g *Gamble) drawUnused() *deck.Card {
	if g.deck.IsEmpty() {
		g.rebuild()
	}

	attempts := 0
	maxAttempts := g.deck.CardsLeft()
	for {
		if g.deck.IsEmpty() || attempts >= maxAttempts {
			g.rebuild()
			attempts = 0
			maxAttempts = g.deck.CardsLeft()
		}

		card, err := g.deck.Draw()
		if err != nil {
			// rebuild above guarantees at least one card
			panic(fmt.Sprintf("gamble deck could not draw: %v", err))
		}

		attempts++
		if !g.isUsed(card.Rank) {
			return card
		}
	}
}

// reveal draws the next card and resolves the guess
// On a correct guess the prize doubles; on a wrong guess it's forfeited.
func (g *Gamble) reveal(guessHigher bool) (*deck.Card, bool) {
	next := g.drawUnused()

	correct := next.Rank < g.current.Rank
	if guessHigher {
		correct = next.Rank > g.current.Rank
	}

	g.usedRanks[g.current.Rank] = true
	g.current = next

	if correct {
		g.prize *= 2
	} else {
		g.prize = 0
	}

	return next, correct
}

// takePrize empties the prize and returns it
func (g *Gamble) takePrize() int {
	prize := g.prize
	g.prize = 0
	return prize
}

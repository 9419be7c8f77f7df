package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits returns all four suits in build order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Card is an individual playing card
// Rank and Suit never change once the card is built. Held is only meaningful
// while the player is choosing which cards to keep.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
	Held bool `json:"held"`
}

// face cards
const (
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace    = 14
	LowAce = 1
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

// RankString returns the single character used for the rank (2-9, T, J, Q, K, A)
func RankString(rank int) string {
	switch rank {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	if rank >= MinRank && rank < Ten {
		return strconv.Itoa(rank)
	}

	panic(fmt.Sprintf("unknown rank: %d", rank))
}

// Letter returns the upper-case letter for the suit
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// String returns the short notation, i.e., TH for the ten of hearts
func (c *Card) String() string {
	return RankString(c.Rank) + c.Suit.Letter()
}

// Pretty returns the rank with the suit symbol, i.e., T♡
func (c *Card) Pretty() string {
	return RankString(c.Rank) + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// Clone returns a copy of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([2-9tjqka]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit>, where rank is 2-9, T, J, Q, K, A or
// the numeric value 10-14, and the suit is one of [cdhs]. Case is ignored.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		rank = r
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2C,TH,AS,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		if card == nil {
			continue
		}

		c[i] = card.String()
	}

	return strings.Join(c, ",")
}

package videopoker

import (
	"softypoker/internal/rng"
	"softypoker/pkg/poker"
)

// Options contains options for creating a new video poker session
type Options struct {
	StartingCredits int
	MaxBet          int
	Paytable        poker.Paytable
	// Generator is the randomness source for both decks. It is created once per process.
	Generator rng.Generator
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingCredits: 10,
		MaxBet:          5,
		Paytable:        poker.Standard(),
		Generator:       rng.Crypto{},
	}
}

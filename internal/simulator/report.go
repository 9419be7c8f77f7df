package simulator

import (
	"softypoker/pkg/poker"
)

// Report is the outcome of one or more simulated sessions
type Report struct {
	Sessions  int `json:"sessions"`
	Rounds    int `json:"rounds"`
	GameOvers int `json:"gameOvers"`

	StartingCredits int `json:"startingCredits"`
	FinalCredits    int `json:"finalCredits"`

	// Wagered is the sum of every bet
	Wagered int `json:"wagered"`
	// Won is the sum of every collected paytable prize
	Won int `json:"won"`
	// GambleNet is what the high-low game added to (or took from) the credits
	GambleNet   int `json:"gambleNet"`
	GamblesWon  int `json:"gamblesWon"`
	GamblesLost int `json:"gamblesLost"`

	Hits map[poker.Category]int `json:"hits"`
}

func newReport() *Report {
	return &Report{
		Hits: make(map[poker.Category]int),
	}
}

func (r *Report) merge(other *Report) {
	r.Sessions += other.Sessions
	r.Rounds += other.Rounds
	r.GameOvers += other.GameOvers
	r.StartingCredits += other.StartingCredits
	r.FinalCredits += other.FinalCredits
	r.Wagered += other.Wagered
	r.Won += other.Won
	r.GambleNet += other.GambleNet
	r.GamblesWon += other.GamblesWon
	r.GamblesLost += other.GamblesLost

	for cat, hits := range other.Hits {
		r.Hits[cat] += hits
	}
}

// Returned is every credit paid back to the player
func (r *Report) Returned() int {
	return r.Won + r.GambleNet
}

// RTP returns the return to player as a fraction of the amount wagered
func (r *Report) RTP() float64 {
	if r.Wagered == 0 {
		return 0
	}

	return float64(r.Returned()) / float64(r.Wagered)
}

// HitRate returns how often the category came up per round
func (r *Report) HitRate(cat poker.Category) float64 {
	if r.Rounds == 0 {
		return 0
	}

	return float64(r.Hits[cat]) / float64(r.Rounds)
}

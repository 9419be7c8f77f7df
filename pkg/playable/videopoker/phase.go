package videopoker

// Phase is the state of the session
type Phase string

// Phase constants
const (
	// PhaseIdle is before the game has been started
	PhaseIdle Phase = "idle"

	// PhaseBetting means the bet can be adjusted and a hand can be dealt
	PhaseBetting Phase = "betting"

	// PhaseDealt means five cards are in the hand and the player is choosing holds
	PhaseDealt Phase = "dealt"

	// PhaseDrawn means the redraw is done and the prize is waiting to be collected
	PhaseDrawn Phase = "drawn"

	// PhaseGambling means the last prize is being risked on high-low guesses
	PhaseGambling Phase = "gambling"

	// PhaseGameOver means the player ran out of credits
	PhaseGameOver Phase = "game-over"
)

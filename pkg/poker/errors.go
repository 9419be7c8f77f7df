package poker

import "fmt"

// HandSize is the number of cards in an evaluable hand
const HandSize = 5

// MalformedHandError is returned when a hand does not have exactly five cards
type MalformedHandError struct {
	Size int
}

func (m *MalformedHandError) Error() string {
	return fmt.Sprintf("hand must have exactly %d cards, got %d", HandSize, m.Size)
}

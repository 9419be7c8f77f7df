package videopoker

import "fmt"

// InvalidTransitionError is logged when an action is attempted from a phase that doesn't allow it
// These are never returned to the host; the action is simply ignored.
type InvalidTransitionError struct {
	Action Action
	Phase  Phase
	Reason string
}

func (i *InvalidTransitionError) Error() string {
	if i.Reason != "" {
		return fmt.Sprintf("cannot %s from phase %s: %s", i.Action, i.Phase, i.Reason)
	}

	return fmt.Sprintf("cannot %s from phase %s", i.Action, i.Phase)
}

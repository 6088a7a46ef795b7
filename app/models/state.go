package models

import "fmt"

// State is the moderation state of a Message or an Order.
type State int

const (
	StatePending  State = 1
	StateApproved State = 2
	StateRejected State = 3
	// StateFinished applies to orders only.
	StateFinished State = 4
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Transition is a named move to To, allowed only from the listed states.
type Transition struct {
	Name string
	From []State
	To   State
}

var (
	Confirm  = Transition{Name: "confirm", From: []State{StatePending}, To: StateApproved}
	Reject   = Transition{Name: "reject", From: []State{StatePending}, To: StateRejected}
	Resubmit = Transition{Name: "resubmit", From: []State{StatePending, StateApproved, StateRejected}, To: StatePending}
	Finish   = Transition{Name: "finish", From: []State{StateApproved}, To: StateFinished}
)

// Allows reports whether t may start from s.
func (t Transition) Allows(s State) bool {
	for _, from := range t.From {
		if from == s {
			return true
		}
	}
	return false
}

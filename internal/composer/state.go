package composer

import (
	"time"

	"github.com/giftworks/holiday-shop-backend/internal/orders"
)

// Step names a wizard position. Steps advance strictly in order; a snapshot
// only ever holds the data of the steps already completed.
type Step string

const (
	StepEmail    Step = "email"
	StepChoice1  Step = "choice1"
	StepChoice2  Step = "choice2"
	StepShipping Step = "shipping"
	StepReview   Step = "review"
	StepDone     Step = "done"
)

// State is the server-side snapshot of one wizard session. It is the only
// place in-progress selections live; nothing touches the orders table until
// the final submission.
type State struct {
	SessionID string                    `json:"session_id"`
	Email     string                    `json:"email,omitempty"`
	Choice1   *orders.Choice1Input      `json:"choice1,omitempty"`
	Choice2   *orders.Choice2Input      `json:"choice2,omitempty"`
	Shipping  *orders.ShippingInput     `json:"shipping,omitempty"`
	Receipt   *orders.SubmitOrderResult `json:"receipt,omitempty"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// CurrentStep derives the wizard position from which data is present.
func (s *State) CurrentStep() Step {
	switch {
	case s.Receipt != nil:
		return StepDone
	case s.Shipping != nil:
		return StepReview
	case s.Choice2 != nil:
		return StepShipping
	case s.Choice1 != nil:
		return StepChoice2
	case s.Email != "":
		return StepChoice1
	default:
		return StepEmail
	}
}

// prerequisite returns the step whose data must already be captured before
// the given step may be entered.
func prerequisite(step Step) Step {
	switch step {
	case StepChoice1:
		return StepEmail
	case StepChoice2:
		return StepChoice1
	case StepShipping:
		return StepChoice2
	case StepReview:
		return StepShipping
	default:
		return StepEmail
	}
}

// allows reports whether the session may enter the given step. When it may
// not, the returned step is where the client should be sent instead: sessions
// that already hold a receipt go to the done step, everything else restarts
// from the beginning of the wizard.
func (s *State) allows(step Step) (bool, Step) {
	if s.Receipt != nil {
		return false, StepDone
	}
	order := []Step{StepEmail, StepChoice1, StepChoice2, StepShipping, StepReview}
	reached := s.CurrentStep()
	for _, candidate := range order {
		if candidate == step {
			return true, ""
		}
		if candidate == reached {
			return false, StepEmail
		}
	}
	return false, StepEmail
}

// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// Step identifies where the user is in the booking flow.
type Step int

const (
	// StepIdle means no booking is in progress. Seat selection is
	// only accepted in this step.
	StepIdle Step = iota
	// StepDetails means the passenger detail form is open.
	StepDetails
	// StepPayment means the simulated payment prompt is open. The
	// passenger draft has been captured into the session.
	StepPayment
	// StepSuccess means the payment committed and the ticket is being
	// shown. The seat collection already carries the booking.
	StepSuccess
)

// String returns the step name for logs and tests.
func (s Step) String() string {
	switch s {
	case StepIdle:
		return "IDLE"
	case StepDetails:
		return "DETAILS"
	case StepPayment:
		return "PAYMENT"
	case StepSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

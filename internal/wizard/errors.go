package wizard

import "errors"

var (
	// ErrInvalidTransition indicates the requested transition is not legal
	// from the machine's current step.
	ErrInvalidTransition = errors.New("transition not allowed from current step")

	// ErrUnknownOption indicates the chosen option value is not in the
	// catalog for the current step.
	ErrUnknownOption = errors.New("unknown wizard option")

	// ErrSelectionIncomplete indicates direct configuration was confirmed
	// before both classification axes were picked.
	ErrSelectionIncomplete = errors.New("both phase and data collection must be selected")

	// ErrStepNotReachable indicates a jump to a step the researcher has not
	// reached through forward/back transitions.
	ErrStepNotReachable = errors.New("wizard step not reachable")

	// ErrNotComplete indicates the result was requested before the review
	// step was confirmed.
	ErrNotComplete = errors.New("wizard not complete")
)

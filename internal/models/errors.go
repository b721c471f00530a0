package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var ErrGoalNotFound = fmt.Errorf("%w savings goal with this ID", ErrResourceNotFound)

// ValidationError is returned when a goal violates one of its invariants.
// Its text is safe to show to API clients.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

var (
	ErrGoalNameEmpty         = ValidationError("the goal name must not be empty")
	ErrGoalTargetNotPositive = ValidationError("the target amount must be larger than zero")
	ErrGoalYearsTooFew       = ValidationError("the number of years to save must be at least one")
	ErrGoalCurrentNegative   = ValidationError("the current amount must not be negative")
)

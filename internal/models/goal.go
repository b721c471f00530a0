package models

import (
	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// GoalEditable contains the fields of a savings goal that clients set.
type GoalEditable struct {
	Name          string          `json:"name" example:"Car"`                 // Name of the goal
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"12000"`       // How much money should be saved
	YearsToSave   int             `json:"yearsToSave" example:"2" minimum:"1"` // Number of years to reach the target
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"2000"`       // How much money is already saved
}

// Goal is a savings goal as held by the store.
type Goal struct {
	ID uint64 `json:"id" example:"1"` // ID of the goal, assigned on creation
	GoalEditable
}

// GoalPatch is a partial update. Nil fields keep their current value.
type GoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	YearsToSave   *int
	CurrentAmount *decimal.Decimal
}

// Validate checks all goal invariants and returns the first violation.
func (e GoalEditable) Validate() error {
	if e.Name == "" {
		return ErrGoalNameEmpty
	}

	if !e.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if e.YearsToSave < 1 {
		return ErrGoalYearsTooFew
	}

	if e.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

// Validate checks the fields that are set in the patch.
func (p GoalPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrGoalNameEmpty
	}

	if p.TargetAmount != nil && !p.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if p.YearsToSave != nil && *p.YearsToSave < 1 {
		return ErrGoalYearsTooFew
	}

	if p.CurrentAmount != nil && p.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

// Apply returns a copy of the goal with all fields set in the patch replaced.
// The ID is never changed.
func (g Goal) Apply(p GoalPatch) Goal {
	if p.Name != nil {
		g.Name = *p.Name
	}

	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}

	if p.YearsToSave != nil {
		g.YearsToSave = *p.YearsToSave
	}

	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}

	return g
}

// ProgressPercent returns how much of the target has been saved, in percent.
//
// Goals with a target that is not positive report 0.
func (g Goal) ProgressPercent() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
}

// MonthlyTarget returns the amount that needs to be saved each month
// to reach the target in time.
//
// Goals with less than one year to save report 0. The number of months
// is computed as a decimal so that it cannot overflow.
func (g Goal) MonthlyTarget() decimal.Decimal {
	if g.YearsToSave < 1 {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(g.YearsToSave)).Mul(monthsPerYear)
	return g.TargetAmount.Div(months)
}

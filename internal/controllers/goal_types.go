package controllers

import (
	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/shopspring/decimal"
)

// GoalCreate is the request body for creating a goal. All fields are required.
type GoalCreate struct {
	Name          *string          `json:"name" binding:"required" example:"Car"`                 // Name of the goal
	TargetAmount  *decimal.Decimal `json:"targetAmount" binding:"required" example:"12000"`       // Amount to save in total
	YearsToSave   *int             `json:"yearsToSave" binding:"required" example:"2" minimum:"1"` // Years until the target amount should be reached
	CurrentAmount *decimal.Decimal `json:"currentAmount" binding:"required" example:"2000"`      // Amount saved so far
}

// model returns the editable fields of the goal.
//
// It must only be called after successful binding.
func (g GoalCreate) model() models.GoalEditable {
	return models.GoalEditable{
		Name:          *g.Name,
		TargetAmount:  *g.TargetAmount,
		YearsToSave:   *g.YearsToSave,
		CurrentAmount: *g.CurrentAmount,
	}
}

// GoalUpdate is the request body for updating a goal.
// Only fields that are set are updated.
type GoalUpdate struct {
	Name          *string          `json:"name" example:"Car"`
	TargetAmount  *decimal.Decimal `json:"targetAmount" example:"12000"`
	YearsToSave   *int             `json:"yearsToSave" example:"2" minimum:"1"`
	CurrentAmount *decimal.Decimal `json:"currentAmount" example:"3000"`
}

func (g GoalUpdate) model() models.GoalPatch {
	return models.GoalPatch{
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		YearsToSave:   g.YearsToSave,
		CurrentAmount: g.CurrentAmount,
	}
}

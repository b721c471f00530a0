package controllers

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templates embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

var (
	printer = message.NewPrinter(language.AmericanEnglish)
	hundred = decimal.NewFromInt(100)
)

// GoalCard is the presentation of one goal on the dashboard.
type GoalCard struct {
	ID            uint64
	Name          string
	Progress      string // percentage with one decimal
	ProgressWidth string // CSS width of the progress bar, at most 100%
	Target        string
	Current       string
	Timeline      string
	Monthly       string
}

// newGoalCard formats a goal for the dashboard.
func newGoalCard(goal models.Goal) GoalCard {
	progress := goal.ProgressPercent()

	width := progress
	if width.GreaterThan(hundred) {
		width = hundred
	}

	timeline := printer.Sprintf("%d years", goal.YearsToSave)
	if goal.YearsToSave == 1 {
		timeline = "1 year"
	}

	return GoalCard{
		ID:            goal.ID,
		Name:          goal.Name,
		Progress:      progress.StringFixed(1),
		ProgressWidth: width.StringFixed(1) + "%",
		Target:        formatAmount(goal.TargetAmount, 3),
		Current:       formatAmount(goal.CurrentAmount, 3),
		Timeline:      timeline,
		Monthly:       formatAmount(goal.MonthlyTarget(), 2),
	}
}

// formatAmount rounds the amount to at most maxFractionDigits and formats
// it with en-US digit grouping. The amount is never converted to a float.
func formatAmount(amount decimal.Decimal, maxFractionDigits int32) string {
	rounded := amount.Round(maxFractionDigits)

	formatted := humanize.BigComma(rounded.Abs().Truncate(0).BigInt())
	if _, fraction, ok := strings.Cut(rounded.String(), "."); ok {
		formatted += "." + fraction
	}

	if rounded.IsNegative() {
		formatted = "-" + formatted
	}

	return formatted
}

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetDashboard)
}

// GetDashboard renders all goals as cards.
func (co Controller) GetDashboard(c *gin.Context) {
	goals := co.Store.List()

	cards := make([]GoalCard, 0, len(goals))
	for _, goal := range goals {
		cards = append(cards, newGoalCard(goal))
	}

	c.Render(http.StatusOK, render.HTML{
		Template: dashboardTemplate,
		Name:     "dashboard.html",
		Data: gin.H{
			"Goals": cards,
		},
	})
}

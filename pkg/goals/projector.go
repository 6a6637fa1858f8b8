// Package goals computes forward-looking savings goal projections.
package goals

import (
	"math"
	"time"

	"github.com/finchapp/finch/pkg/constants"
	"github.com/finchapp/finch/pkg/datetime"
	"github.com/finchapp/finch/pkg/mathutil"
)

// StatusColor is the traffic-light status of a goal.
type StatusColor string

const (
	StatusGreen StatusColor = "green"
	StatusAmber StatusColor = "amber"
	StatusRed   StatusColor = "red"
)

// GoalStatus is the projection for a single goal at a given instant.
type GoalStatus struct {
	DaysRemaining            int         `json:"daysRemaining"`
	WeeklyContributionNeeded float64     `json:"weeklyContributionNeeded"`
	PercentageComplete       int         `json:"percentageComplete"`
	StatusColor              StatusColor `json:"statusColor"`
}

// Project computes the projection for a goal with the given target and
// current amounts and deadline, relative to now. A missing or unparseable
// deadline yields the degenerate amber status; undated impulse goals always
// take this path.
func Project(targetAmount, currentAmount float64, deadline string, now time.Time) GoalStatus {
	deadlineT, err := datetime.ParseDate(deadline)
	if deadline == "" || err != nil {
		return GoalStatus{StatusColor: StatusAmber}
	}

	daysRemaining := datetime.DaysUntil(now, deadlineT)

	var weekly float64
	if currentAmount < targetAmount {
		// Overdue or same-day deadlines fall back to a single week to avoid
		// dividing by zero.
		safeWeeks := float64(daysRemaining) / constants.DaysPerWeek
		if safeWeeks <= 0 {
			safeWeeks = 1
		}
		weekly = mathutil.Round((targetAmount - currentAmount) / safeWeeks)
	}

	percent := 0
	if targetAmount > 0 {
		percent = int(math.Round(math.Min(100, mathutil.CalculatePercentage(currentAmount, targetAmount))))
	}

	return GoalStatus{
		DaysRemaining:            daysRemaining,
		WeeklyContributionNeeded: weekly,
		PercentageComplete:       percent,
		StatusColor:              statusColor(daysRemaining, percent),
	}
}

// statusColor applies the tie-break rules in order, then the overdue
// override.
func statusColor(daysRemaining, percent int) StatusColor {
	color := StatusGreen
	if daysRemaining < constants.GoalRedDays && percent < constants.GoalRedPercent {
		color = StatusRed
	} else if daysRemaining < constants.GoalAmberDays && percent < constants.GoalAmberPercent {
		color = StatusAmber
	}
	if daysRemaining == 0 && percent < 100 {
		color = StatusRed
	}
	return color
}
